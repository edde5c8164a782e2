package cue

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultIndent is the indentation emitted per nesting level when a
// Serializer does not specify its own.
const DefaultIndent = "  "

// Serializer writes a CueSheet back to textual form. It does the inverse
// job of Parse, but from the entity tree alone: output is canonical, not a
// reproduction of whatever input the sheet came from. Fields appear in a
// fixed order, unset fields are omitted, numbers at or above zero are
// zero-padded to two digits, and values containing whitespace are wrapped
// in double quotes.
type Serializer struct {
	// Indent is the character sequence for one indentation level.
	// Empty means DefaultIndent.
	Indent string
}

// Serialize renders the sheet as newline-terminated lines.
func (s Serializer) Serialize(sheet *CueSheet) string {
	var b strings.Builder
	s.writeSheet(&b, sheet, "")
	return b.String()
}

func (s Serializer) indent() string {
	if s.Indent == "" {
		return DefaultIndent
	}
	return s.Indent
}

func (s Serializer) writeSheet(b *strings.Builder, sheet *CueSheet, indentation string) {
	writeStringField(b, indentation, "REM GENRE", sheet.Genre)
	writeStringField(b, indentation, "REM DATE", sheet.Year)
	writeStringField(b, indentation, "REM DISCID", sheet.DiscID)
	writeStringField(b, indentation, "REM COMMENT", sheet.Comment)
	writeStringField(b, indentation, "CATALOG", sheet.Catalog)
	writeStringField(b, indentation, "PERFORMER", sheet.Performer)
	writeStringField(b, indentation, "TITLE", sheet.Title)
	writeStringField(b, indentation, "SONGWRITER", sheet.Songwriter)
	writeStringField(b, indentation, "CDTEXTFILE", sheet.CDTextFile)

	for _, file := range sheet.Files {
		s.writeFile(b, file, indentation)
	}
}

func (s Serializer) writeFile(b *strings.Builder, file *FileData, indentation string) {
	b.WriteString(indentation)
	b.WriteString("FILE")
	if file.File != nil {
		b.WriteByte(' ')
		b.WriteString(quoteIfNecessary(*file.File))
	}
	if file.FileType != nil {
		b.WriteByte(' ')
		b.WriteString(quoteIfNecessary(*file.FileType))
	}
	b.WriteByte('\n')

	for _, track := range file.Tracks {
		s.writeTrack(b, track, indentation+s.indent())
	}
}

func (s Serializer) writeTrack(b *strings.Builder, track *TrackData, indentation string) {
	b.WriteString(indentation)
	b.WriteString("TRACK")
	if track.Number > -1 {
		fmt.Fprintf(b, " %02d", track.Number)
	}
	if track.DataType != nil {
		b.WriteByte(' ')
		b.WriteString(quoteIfNecessary(*track.DataType))
	}
	b.WriteByte('\n')

	childIndentation := indentation + s.indent()
	writeStringField(b, childIndentation, "ISRC", track.ISRCCode)
	writeStringField(b, childIndentation, "PERFORMER", track.Performer)
	writeStringField(b, childIndentation, "TITLE", track.Title)
	writeStringField(b, childIndentation, "SONGWRITER", track.Songwriter)
	writePositionField(b, childIndentation, "PREGAP", track.Pregap)
	writePositionField(b, childIndentation, "POSTGAP", track.Postgap)

	if flags := track.Flags(); len(flags) > 0 {
		b.WriteString(childIndentation)
		b.WriteString("FLAGS")
		for _, flag := range flags {
			b.WriteByte(' ')
			b.WriteString(quoteIfNecessary(flag))
		}
		b.WriteByte('\n')
	}

	for _, index := range track.Indices {
		s.writeIndex(b, index, childIndentation)
	}
}

func (s Serializer) writeIndex(b *strings.Builder, index *Index, indentation string) {
	b.WriteString(indentation)
	b.WriteString("INDEX")
	if index.Number > -1 {
		fmt.Fprintf(b, " %02d", index.Number)
	}
	if index.Position != nil {
		b.WriteByte(' ')
		b.WriteString(index.Position.String())
	}
	b.WriteByte('\n')
}

// writeStringField emits one `COMMAND value` line, or nothing when the
// value is unset.
func writeStringField(b *strings.Builder, indentation, command string, value *string) {
	if value == nil {
		return
	}
	b.WriteString(indentation)
	b.WriteString(command)
	b.WriteByte(' ')
	b.WriteString(quoteIfNecessary(*value))
	b.WriteByte('\n')
}

func writePositionField(b *strings.Builder, indentation, command string, value *Position) {
	if value == nil {
		return
	}
	b.WriteString(indentation)
	b.WriteString(command)
	b.WriteByte(' ')
	b.WriteString(value.String())
	b.WriteByte('\n')
}

// quoteIfNecessary wraps the value in double quotes when it contains any
// whitespace character.
func quoteIfNecessary(value string) string {
	for _, r := range value {
		if unicode.IsSpace(r) {
			return `"` + value + `"`
		}
	}
	return value
}
