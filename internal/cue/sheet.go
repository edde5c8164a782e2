package cue

import "slices"

// CueSheet is the root of the parsed representation of one cue sheet.
//
// Optional header fields are nil when the corresponding command never
// appeared in the input; nil is distinct from a field that was set to the
// empty string. The sheet also owns the ordered diagnostics accumulated
// while it was built.
//
// A CueSheet is mutable for its whole lifetime and is not safe for
// concurrent mutation. The parser is its sole writer until the finished
// sheet is handed to the caller.
type CueSheet struct {
	Genre      *string
	Year       *string
	DiscID     *string
	Comment    *string
	Catalog    *string
	Performer  *string
	Title      *string
	Songwriter *string
	CDTextFile *string

	Files []*FileData

	messages []Message
}

// NewCueSheet returns an empty sheet ready for population.
func NewCueSheet() *CueSheet {
	return &CueSheet{}
}

// AddWarning records a warning tied to the given input line. Warnings mark
// grammar deviations that were recovered with a defined fallback.
func (s *CueSheet) AddWarning(line Line, text string) {
	s.messages = append(s.messages, Message{
		Severity:   SeverityWarning,
		LineNumber: line.Number,
		Input:      line.Text,
		Text:       text,
	})
}

// AddError records an error tied to the given input line. Errors are
// reserved for deviations with no safe fallback; the tolerant grammar
// recovers almost everything as a warning instead.
func (s *CueSheet) AddError(line Line, text string) {
	s.messages = append(s.messages, Message{
		Severity:   SeverityError,
		LineNumber: line.Number,
		Input:      line.Text,
		Text:       text,
	})
}

// Messages returns a copy of the diagnostics collected so far, in
// detection order.
func (s *CueSheet) Messages() []Message {
	return slices.Clone(s.messages)
}

// HasErrors reports whether any diagnostic of error severity was recorded.
func (s *CueSheet) HasErrors() bool {
	for _, m := range s.messages {
		if m.Severity == SeverityError {
			return true
		}
	}
	return false
}

// AllTrackData flattens the tracks of every file into one slice, preserving
// file order and track order within each file.
func (s *CueSheet) AllTrackData() []*TrackData {
	var tracks []*TrackData
	for _, file := range s.Files {
		tracks = append(tracks, file.Tracks...)
	}
	return tracks
}
