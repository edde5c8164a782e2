package cue

import (
	"errors"
	"strings"
	"testing"
)

func strp(s string) *string { return &s }

func TestParseMinimalSheet(t *testing.T) {
	input := "FILE \"a.wav\" WAVE\n  TRACK 01 AUDIO\n    INDEX 01 00:00:00\n"

	sheet := ParseString(input)
	if got := len(sheet.Messages()); got != 0 {
		t.Fatalf("expected no diagnostics, got %d: %v", got, sheet.Messages())
	}
	if len(sheet.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(sheet.Files))
	}

	file := sheet.Files[0]
	if file.File == nil || *file.File != "a.wav" {
		t.Fatalf("unexpected file name: %v", file.File)
	}
	if file.FileType == nil || *file.FileType != "WAVE" {
		t.Fatalf("unexpected file type: %v", file.FileType)
	}
	if len(file.Tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(file.Tracks))
	}

	track := file.Tracks[0]
	if track.Number != 1 {
		t.Fatalf("unexpected track number: %d", track.Number)
	}
	if track.DataType == nil || *track.DataType != "AUDIO" {
		t.Fatalf("unexpected data type: %v", track.DataType)
	}
	if len(track.Indices) != 1 {
		t.Fatalf("expected 1 index, got %d", len(track.Indices))
	}

	index := track.Indices[0]
	if index.Number != 1 {
		t.Fatalf("unexpected index number: %d", index.Number)
	}
	if index.Position == nil || *index.Position != NewPosition(0, 0, 0) {
		t.Fatalf("unexpected index position: %v", index.Position)
	}
}

func TestParseTrackBeforeFile(t *testing.T) {
	sheet := ParseString("TRACK 01 AUDIO\nINDEX 01 00:00:00\n")

	if len(sheet.Files) != 1 {
		t.Fatalf("expected a fabricated file entry, got %d files", len(sheet.Files))
	}
	file := sheet.Files[0]
	if file.File != nil || file.FileType != nil {
		t.Fatalf("fabricated file entry should have unset fields, got %v %v", file.File, file.FileType)
	}
	if len(file.Tracks) != 1 {
		t.Fatalf("expected the track to be created, got %d", len(file.Tracks))
	}

	messages := sheet.Messages()
	if len(messages) == 0 {
		t.Fatal("expected at least one warning")
	}
	if messages[0].LineNumber != 1 {
		t.Fatalf("warning should reference line 1, got %d", messages[0].LineNumber)
	}
	if messages[0].Severity != SeverityWarning {
		t.Fatalf("expected a warning, got %s", messages[0].Severity)
	}
}

func TestParseInvalidCatalog(t *testing.T) {
	sheet := ParseString("CATALOG abc123\n")

	if sheet.Catalog == nil || *sheet.Catalog != "abc123" {
		t.Fatalf("catalog literal should be stored, got %v", sheet.Catalog)
	}
	messages := sheet.Messages()
	if len(messages) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(messages), messages)
	}
	if messages[0].Severity != SeverityWarning {
		t.Fatalf("expected warning severity, got %s", messages[0].Severity)
	}
}

func TestParseValidCatalog(t *testing.T) {
	sheet := ParseString("CATALOG 1234567890123\n")
	if len(sheet.Messages()) != 0 {
		t.Fatalf("digit-only catalog should not warn: %v", sheet.Messages())
	}
	if sheet.Catalog == nil || *sheet.Catalog != "1234567890123" {
		t.Fatalf("unexpected catalog: %v", sheet.Catalog)
	}
}

func TestParseRemDateLastWriteWins(t *testing.T) {
	sheet := ParseString("REM DATE 1999\nREM DATE 2001\n")

	if sheet.Year == nil || *sheet.Year != "2001" {
		t.Fatalf("expected last write to win, got %v", sheet.Year)
	}
	if len(sheet.Messages()) != 0 {
		t.Fatalf("header overwrite must not warn: %v", sheet.Messages())
	}
}

func TestParseRemHeaders(t *testing.T) {
	input := strings.Join([]string{
		"REM GENRE Electronica",
		"REM DATE 1998",
		"REM DISCID 860B640B",
		`REM COMMENT "ExactAudioCopy v0.95b4"`,
		"REM this is a plain comment",
	}, "\n")
	sheet := ParseString(input)

	if len(sheet.Messages()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", sheet.Messages())
	}
	if sheet.Genre == nil || *sheet.Genre != "Electronica" {
		t.Fatalf("unexpected genre: %v", sheet.Genre)
	}
	if sheet.Year == nil || *sheet.Year != "1998" {
		t.Fatalf("unexpected year: %v", sheet.Year)
	}
	if sheet.DiscID == nil || *sheet.DiscID != "860B640B" {
		t.Fatalf("unexpected discid: %v", sheet.DiscID)
	}
	if sheet.Comment == nil || *sheet.Comment != "ExactAudioCopy v0.95b4" {
		t.Fatalf("unexpected comment: %v", sheet.Comment)
	}
}

func TestParseUnsupportedCommand(t *testing.T) {
	input := "FILE a.wav WAVE\nBOGUS argument\n"
	sheet := ParseString(input)

	messages := sheet.Messages()
	if len(messages) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(messages), messages)
	}
	m := messages[0]
	if m.LineNumber != 2 {
		t.Fatalf("warning should reference line 2, got %d", m.LineNumber)
	}
	if m.Input != "BOGUS argument" {
		t.Fatalf("warning should carry the raw line, got %q", m.Input)
	}
	if !strings.Contains(m.Text, "unsupported command") {
		t.Fatalf("unexpected warning text: %q", m.Text)
	}
	// The bogus line must not disturb the tree.
	if len(sheet.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(sheet.Files))
	}
}

func TestParseCommandsAreCaseInsensitive(t *testing.T) {
	input := "file a.wav wave\ntrack 01 audio\nindex 01 00:02:00\n"
	sheet := ParseString(input)

	if len(sheet.Messages()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", sheet.Messages())
	}
	tracks := sheet.AllTrackData()
	if len(tracks) != 1 || tracks[0].Number != 1 {
		t.Fatalf("unexpected track data: %+v", tracks)
	}
}

func TestParsePerformerContextSensitive(t *testing.T) {
	input := strings.Join([]string{
		`PERFORMER "Various Artists"`,
		"FILE a.wav WAVE",
		"TRACK 01 AUDIO",
		`PERFORMER Someone`,
	}, "\n")
	sheet := ParseString(input)

	if sheet.Performer == nil || *sheet.Performer != "Various Artists" {
		t.Fatalf("unexpected sheet performer: %v", sheet.Performer)
	}
	track := sheet.Files[0].Tracks[0]
	if track.Performer == nil || *track.Performer != "Someone" {
		t.Fatalf("unexpected track performer: %v", track.Performer)
	}
}

func TestParseTrackFields(t *testing.T) {
	input := strings.Join([]string{
		"FILE a.wav WAVE",
		"TRACK 01 AUDIO",
		"ISRC GBAYE9800104",
		`TITLE "First Song"`,
		"SONGWRITER Writer",
		"PREGAP 00:02:00",
		"POSTGAP 00:01:00",
		"FLAGS DCP 4CH DCP",
		"INDEX 00 00:00:00",
		"INDEX 01 00:02:00",
	}, "\n")
	sheet := ParseString(input)

	if len(sheet.Messages()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", sheet.Messages())
	}
	track := sheet.Files[0].Tracks[0]
	if track.ISRCCode == nil || *track.ISRCCode != "GBAYE9800104" {
		t.Fatalf("unexpected isrc: %v", track.ISRCCode)
	}
	if track.Pregap == nil || *track.Pregap != NewPosition(0, 2, 0) {
		t.Fatalf("unexpected pregap: %v", track.Pregap)
	}
	if track.Postgap == nil || *track.Postgap != NewPosition(0, 1, 0) {
		t.Fatalf("unexpected postgap: %v", track.Postgap)
	}
	if got := track.Flags(); len(got) != 2 || got[0] != "DCP" || got[1] != "4CH" {
		t.Fatalf("duplicate flags should collapse, got %v", got)
	}
	if len(track.Indices) != 2 {
		t.Fatalf("expected 2 indices, got %d", len(track.Indices))
	}
	if track.Indices[0].Number != 0 || track.Indices[1].Number != 1 {
		t.Fatalf("unexpected index numbers: %d %d", track.Indices[0].Number, track.Indices[1].Number)
	}
}

func TestParseFlagsWithoutArguments(t *testing.T) {
	input := "FILE a.wav WAVE\nTRACK 01 AUDIO\nFLAGS\n"
	sheet := ParseString(input)

	if len(sheet.Messages()) != 0 {
		t.Fatalf("bare FLAGS must not warn: %v", sheet.Messages())
	}
	if got := sheet.Files[0].Tracks[0].Flags(); len(got) != 0 {
		t.Fatalf("expected empty flag set, got %v", got)
	}
}

func TestParseTrackCommandsWithoutTrack(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"index", "INDEX 01 00:00:00"},
		{"isrc", "ISRC GBAYE9800104"},
		{"pregap", "PREGAP 00:02:00"},
		{"postgap", "POSTGAP 00:01:00"},
		{"flags", "FLAGS DCP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := ParseString("FILE a.wav WAVE\n" + tt.line + "\n")
			messages := sheet.Messages()
			if len(messages) != 1 {
				t.Fatalf("expected one warning, got %d: %v", len(messages), messages)
			}
			if messages[0].LineNumber != 2 {
				t.Fatalf("warning should reference line 2, got %d", messages[0].LineNumber)
			}
			// The line is dropped; no orphan track appears.
			if len(sheet.Files[0].Tracks) != 0 {
				t.Fatalf("no track should be fabricated for field commands")
			}
		})
	}
}

func TestParseMalformedNumbers(t *testing.T) {
	input := "FILE a.wav WAVE\nTRACK xx AUDIO\nINDEX yy 00:00:00\n"
	sheet := ParseString(input)

	track := sheet.Files[0].Tracks[0]
	if track.Number != -1 {
		t.Fatalf("unparsable track number should stay -1, got %d", track.Number)
	}
	if len(track.Indices) != 1 || track.Indices[0].Number != -1 {
		t.Fatalf("unparsable index number should stay -1, got %+v", track.Indices)
	}
	if track.Indices[0].Position == nil {
		t.Fatal("index position should still be parsed")
	}
	if len(sheet.Messages()) != 2 {
		t.Fatalf("expected two warnings, got %v", sheet.Messages())
	}
}

func TestParseMalformedPosition(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"single digits", "0:0:0"},
		{"missing field", "00:00"},
		{"extra field", "00:00:00:00"},
		{"letters", "aa:bb:cc"},
		{"empty", ":"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := ParseString("FILE a.wav WAVE\nTRACK 01 AUDIO\nINDEX 01 " + tt.token + "\n")
			track := sheet.Files[0].Tracks[0]
			if len(track.Indices) != 1 {
				t.Fatalf("index entry should still be created, got %d", len(track.Indices))
			}
			if track.Indices[0].Position != nil {
				t.Fatalf("malformed position should stay unset, got %v", track.Indices[0].Position)
			}
			if len(sheet.Messages()) != 1 {
				t.Fatalf("expected one warning, got %v", sheet.Messages())
			}
		})
	}
}

func TestParsePermissiveFrameRange(t *testing.T) {
	// Frames beyond 74 and seconds beyond 59 are out of convention but
	// stored as given.
	sheet := ParseString("FILE a.wav WAVE\nTRACK 01 AUDIO\nINDEX 01 00:99:99\n")
	if len(sheet.Messages()) != 0 {
		t.Fatalf("out-of-range fields must not warn: %v", sheet.Messages())
	}
	position := sheet.Files[0].Tracks[0].Indices[0].Position
	if position == nil || *position != NewPosition(0, 99, 99) {
		t.Fatalf("unexpected position: %v", position)
	}
}

func TestParseBlankLinesSkipped(t *testing.T) {
	sheet := ParseString("\n   \nFILE a.wav WAVE\n\t\n")
	if len(sheet.Messages()) != 0 {
		t.Fatalf("blank lines must not warn: %v", sheet.Messages())
	}
	if len(sheet.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(sheet.Files))
	}
}

func TestParseUnterminatedQuote(t *testing.T) {
	sheet := ParseString("FILE \"unterminated name WAVE\n")

	messages := sheet.Messages()
	if len(messages) < 1 {
		t.Fatal("expected a warning for the unterminated quote")
	}
	if !strings.Contains(messages[0].Text, "unterminated quote") {
		t.Fatalf("unexpected warning text: %q", messages[0].Text)
	}
	file := sheet.Files[0]
	if file.File == nil || *file.File != "unterminated name WAVE" {
		t.Fatalf("remainder of line should become the token, got %v", file.File)
	}
}

func TestParseDiagnosticsAreOrdered(t *testing.T) {
	input := "BOGUS one\nFILE a.wav\nBOGUS two\n"
	sheet := ParseString(input)

	messages := sheet.Messages()
	if len(messages) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(messages), messages)
	}
	for i := 1; i < len(messages); i++ {
		if messages[i].LineNumber < messages[i-1].LineNumber {
			t.Fatalf("diagnostics out of order: %v", messages)
		}
	}
}

func TestParseMultipleFiles(t *testing.T) {
	input := strings.Join([]string{
		`FILE "side a.wav" WAVE`,
		"TRACK 01 AUDIO",
		"INDEX 01 00:00:00",
		`FILE "side b.wav" WAVE`,
		"TRACK 02 AUDIO",
		"INDEX 01 00:00:00",
	}, "\n")
	sheet := ParseString(input)

	if len(sheet.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(sheet.Files))
	}
	if got := len(sheet.AllTrackData()); got != 2 {
		t.Fatalf("expected 2 tracks across files, got %d", got)
	}
	// The second FILE closes the first track context.
	if len(sheet.Files[1].Tracks) != 1 || sheet.Files[1].Tracks[0].Number != 2 {
		t.Fatalf("track 02 should attach to the second file: %+v", sheet.Files[1].Tracks)
	}
}

func TestParseVeryLongLine(t *testing.T) {
	// Content lines are unbounded; a comment far beyond any buffered
	// reader's default window must parse like any other line.
	long := strings.Repeat("x", 80*1024)
	input := "REM COMMENT " + long + "\nFILE a.wav WAVE\n"

	sheet, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("long content line must not fail the parse: %v", err)
	}
	if sheet.Comment == nil || *sheet.Comment != long {
		t.Fatalf("comment not stored intact, got %d bytes", len(stringOrEmpty(sheet.Comment)))
	}
	if len(sheet.Files) != 1 {
		t.Fatalf("lines after the long one should still parse, got %d files", len(sheet.Files))
	}
	if len(sheet.Messages()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", sheet.Messages())
	}
}

func TestParseNoTrailingNewline(t *testing.T) {
	sheet, err := Parse(strings.NewReader("FILE a.wav WAVE\nTRACK 01 AUDIO"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sheet.Files) != 1 || len(sheet.Files[0].Tracks) != 1 {
		t.Fatalf("final unterminated line should parse: %+v", sheet.Files)
	}
}

func TestParseCarriageReturns(t *testing.T) {
	sheet, err := Parse(strings.NewReader("FILE a.wav WAVE\r\nTRACK 01 AUDIO\r\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sheet.Messages()) != 0 {
		t.Fatalf("CRLF input must not warn: %v", sheet.Messages())
	}
	file := sheet.Files[0]
	if file.FileType == nil || *file.FileType != "WAVE" {
		t.Fatalf("trailing CR should be stripped, got %q", *file.FileType)
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestParseReadFailure(t *testing.T) {
	sheet, err := Parse(failingReader{})
	if err == nil {
		t.Fatal("expected an error for an unreadable source")
	}
	if sheet != nil {
		t.Fatalf("no sheet should be returned on read failure, got %+v", sheet)
	}
	if !strings.Contains(err.Error(), "disk on fire") {
		t.Fatalf("underlying cause should be wrapped, got %v", err)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "TRACK 01 AUDIO", []string{"TRACK", "01", "AUDIO"}},
		{"quoted", `FILE "two words.wav" WAVE`, []string{"FILE", "two words.wav", "WAVE"}},
		{"empty quotes", `TITLE ""`, []string{"TITLE", ""}},
		{"tabs", "TRACK\t01\tAUDIO", []string{"TRACK", "01", "AUDIO"}},
		{"leading space", "   REM DATE 1999", []string{"REM", "DATE", "1999"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := Line{Number: 1, Text: tt.line, Sheet: NewCueSheet()}
			got := tokenize(line)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("token %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
