package cue

import "fmt"

// Position is a disc timecode expressed as minutes, seconds, and frames.
// There are 75 frames in one second by convention. Seconds above 59 or
// frames above 74 are out of convention but deliberately representable;
// range policing is left to the caller.
//
// Position values are compared structurally. Treat them as immutable once
// constructed.
type Position struct {
	Minutes int
	Seconds int
	Frames  int
}

// NewPosition builds a Position from its three components.
func NewPosition(minutes, seconds, frames int) Position {
	return Position{Minutes: minutes, Seconds: seconds, Frames: frames}
}

// String formats the position in the canonical mm:ss:ff form with each
// component zero-padded to two digits.
func (p Position) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", p.Minutes, p.Seconds, p.Frames)
}
