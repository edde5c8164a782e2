package cue

import "fmt"

// Severity classifies a diagnostic message.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Message is one diagnostic produced while building a CueSheet. It records
// the 1-based number and raw text of the input line it refers to, together
// with a human-readable description of the deviation. Messages are
// append-only: once attached to a sheet they are never mutated.
type Message struct {
	Severity   Severity
	LineNumber int
	Input      string
	Text       string
}

func (m Message) String() string {
	return fmt.Sprintf("%s [line %d] %s (%s)", m.Severity, m.LineNumber, m.Text, m.Input)
}
