package cue

// Line couples one raw input line with its 1-based line number and the
// sheet under construction, so diagnostics can always name their origin.
type Line struct {
	Number int
	Text   string
	Sheet  *CueSheet
}

func (l Line) warn(text string) {
	l.Sheet.AddWarning(l, text)
}
