package cue

import "testing"

func TestPositionString(t *testing.T) {
	tests := []struct {
		position Position
		want     string
	}{
		{NewPosition(0, 0, 0), "00:00:00"},
		{NewPosition(3, 24, 45), "03:24:45"},
		{NewPosition(79, 59, 74), "79:59:74"},
		{NewPosition(0, 99, 99), "00:99:99"},
	}
	for _, tt := range tests {
		if got := tt.position.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.position, got, tt.want)
		}
	}
}

func TestPositionFormatParseRoundTrip(t *testing.T) {
	// Every valid two-digit mm:ss:ff string survives parse-then-format
	// unchanged.
	samples := []Position{
		{0, 0, 0},
		{0, 0, 74},
		{0, 59, 0},
		{12, 34, 56},
		{99, 99, 99},
	}
	for _, sample := range samples {
		text := sample.String()
		line := Line{Number: 1, Text: "INDEX 01 " + text, Sheet: NewCueSheet()}
		parsed := parsePosition(line, text)
		if parsed == nil {
			t.Fatalf("parsePosition(%q) unexpectedly failed", text)
		}
		if got := parsed.String(); got != text {
			t.Errorf("format(parse(%q)) = %q", text, got)
		}
		if warnings := line.Sheet.Messages(); len(warnings) != 0 {
			t.Errorf("parsePosition(%q) warned: %v", text, warnings)
		}
	}
}

func TestPositionEquality(t *testing.T) {
	if NewPosition(1, 2, 3) != NewPosition(1, 2, 3) {
		t.Fatal("identical positions must compare equal")
	}
	if NewPosition(1, 2, 3) == NewPosition(1, 2, 4) {
		t.Fatal("different positions must not compare equal")
	}
}
