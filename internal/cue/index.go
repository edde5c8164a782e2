package cue

// Index is a timecode marker within a track. Index 0 conventionally marks
// the pregap start and index 1 the audible start of the track. Number is -1
// until set; Position is nil when the marker carries no usable timecode.
type Index struct {
	Number   int
	Position *Position
}

// NewIndex returns an index with an unset number.
func NewIndex() *Index {
	return &Index{Number: -1}
}
