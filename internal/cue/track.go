package cue

import "slices"

// TrackData describes one TRACK entry within a file. Number is -1 until a
// valid track number is seen; optional string fields are nil when unset.
// Indices keep their insertion order and belong to this track only.
type TrackData struct {
	Number     int
	DataType   *string
	ISRCCode   *string
	Performer  *string
	Title      *string
	Songwriter *string
	Pregap     *Position
	Postgap    *Position
	Indices    []*Index

	flags []string
}

// NewTrackData returns a track with an unset number.
func NewTrackData() *TrackData {
	return &TrackData{Number: -1}
}

// AddFlag records a FLAGS token on the track. Duplicate tokens collapse to
// a single entry; first-seen order is preserved.
func (t *TrackData) AddFlag(flag string) {
	if slices.Contains(t.flags, flag) {
		return
	}
	t.flags = append(t.flags, flag)
}

// Flags returns a copy of the track's flag set in first-seen order.
func (t *TrackData) Flags() []string {
	return slices.Clone(t.flags)
}
