package cue

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"cuekit/internal/fileutil"
)

// Parse consumes r line by line and builds a CueSheet from it.
//
// Parsing is a single sequential pass with no lookahead. Malformed content
// never fails the parse: every deviation from the grammar is recorded as a
// warning on the returned sheet and a defined fallback is applied. The only
// error condition is a failure to read from r itself, in which case no
// sheet is returned.
func Parse(r io.Reader) (*CueSheet, error) {
	p := parser{sheet: NewCueSheet()}

	// Lines are read without a length cap; an oversized line is still
	// content and must not abort the parse.
	reader := bufio.NewReader(r)
	lineNumber := 0
	for {
		text, err := reader.ReadString('\n')
		if text != "" {
			lineNumber++
			text = strings.TrimSuffix(text, "\n")
			text = strings.TrimSuffix(text, "\r")
			p.parseLine(Line{Number: lineNumber, Text: text, Sheet: p.sheet})
		}
		if err == io.EOF {
			return p.sheet, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read cue sheet: %w", err)
		}
	}
}

// ParseString parses a cue sheet held in memory.
func ParseString(text string) *CueSheet {
	// strings.Reader cannot fail, so neither can Parse.
	sheet, _ := Parse(strings.NewReader(text))
	return sheet
}

// ParseFile reads the file at path, resolving its text encoding, and parses
// it as a cue sheet.
func ParseFile(path string) (*CueSheet, error) {
	text, err := fileutil.ReadTextFile(path, fileutil.EncodingAuto)
	if err != nil {
		return nil, fmt.Errorf("read cue sheet %s: %w", path, err)
	}
	return Parse(strings.NewReader(text))
}

// parser carries the context that spans lines: the sheet under construction
// and the FILE and TRACK entries that subsequent commands attach to.
type parser struct {
	sheet *CueSheet
	file  *FileData
	track *TrackData
}

func (p *parser) parseLine(line Line) {
	if strings.TrimSpace(line.Text) == "" {
		return
	}
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return
	}

	switch strings.ToUpper(tokens[0]) {
	case "REM":
		p.parseRem(line, tokens)
	case "CATALOG":
		p.parseCatalog(line, tokens)
	case "PERFORMER":
		p.parsePerformer(line, tokens)
	case "TITLE":
		p.parseTitle(line, tokens)
	case "SONGWRITER":
		p.parseSongwriter(line, tokens)
	case "CDTEXTFILE":
		p.parseCDTextFile(line, tokens)
	case "FILE":
		p.parseFile(line, tokens)
	case "TRACK":
		p.parseTrack(line, tokens)
	case "ISRC":
		p.parseISRC(line, tokens)
	case "PREGAP":
		p.parsePregap(line, tokens)
	case "POSTGAP":
		p.parsePostgap(line, tokens)
	case "FLAGS":
		p.parseFlags(line, tokens)
	case "INDEX":
		p.parseIndex(line, tokens)
	default:
		line.warn(fmt.Sprintf("unsupported command %q", tokens[0]))
	}
}

// tokenize splits a line into whitespace-separated tokens. A double-quoted
// segment forms a single token even when it contains whitespace; the quotes
// themselves are stripped. An unterminated quote is tolerated by taking the
// remainder of the line as the token, with a warning.
func tokenize(line Line) []string {
	var tokens []string
	runes := []rune(line.Text)
	i := 0
	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			break
		}
		if runes[i] == '"' {
			i++
			start := i
			for i < len(runes) && runes[i] != '"' {
				i++
			}
			if i >= len(runes) {
				line.warn("unterminated quote; treating remainder of line as one token")
				tokens = append(tokens, string(runes[start:]))
				break
			}
			tokens = append(tokens, string(runes[start:i]))
			i++
		} else {
			start := i
			for i < len(runes) && !unicode.IsSpace(runes[i]) {
				i++
			}
			tokens = append(tokens, string(runes[start:i]))
		}
	}
	return tokens
}

// parseRem handles the two-word REM commands. Sub-commands outside the
// recognized set are ordinary comments and are ignored without complaint.
// Repeated REM headers overwrite the previous value; last write wins.
func (p *parser) parseRem(line Line, tokens []string) {
	if len(tokens) < 2 {
		return
	}
	var field **string
	switch strings.ToUpper(tokens[1]) {
	case "GENRE":
		field = &p.sheet.Genre
	case "DATE":
		field = &p.sheet.Year
	case "DISCID":
		field = &p.sheet.DiscID
	case "COMMENT":
		field = &p.sheet.Comment
	default:
		return
	}
	command := "REM " + strings.ToUpper(tokens[1])
	if len(tokens) < 3 {
		line.warn(command + " expects a value")
		return
	}
	if len(tokens) > 3 {
		line.warn(command + " expects a single value; joining extra tokens")
	}
	value := strings.Join(tokens[2:], " ")
	*field = &value
}

func (p *parser) parseCatalog(line Line, tokens []string) {
	value, ok := singleValue(line, tokens, "CATALOG")
	if !ok {
		return
	}
	if !isDigits(value) {
		line.warn(fmt.Sprintf("invalid catalog number %q; expected a run of digits", value))
	}
	p.sheet.Catalog = &value
}

// PERFORMER, TITLE, and SONGWRITER apply to the current track when one is
// open and to the sheet header otherwise.

func (p *parser) parsePerformer(line Line, tokens []string) {
	value, ok := singleValue(line, tokens, "PERFORMER")
	if !ok {
		return
	}
	if p.track != nil {
		p.track.Performer = &value
	} else {
		p.sheet.Performer = &value
	}
}

func (p *parser) parseTitle(line Line, tokens []string) {
	value, ok := singleValue(line, tokens, "TITLE")
	if !ok {
		return
	}
	if p.track != nil {
		p.track.Title = &value
	} else {
		p.sheet.Title = &value
	}
}

func (p *parser) parseSongwriter(line Line, tokens []string) {
	value, ok := singleValue(line, tokens, "SONGWRITER")
	if !ok {
		return
	}
	if p.track != nil {
		p.track.Songwriter = &value
	} else {
		p.sheet.Songwriter = &value
	}
}

func (p *parser) parseCDTextFile(line Line, tokens []string) {
	value, ok := singleValue(line, tokens, "CDTEXTFILE")
	if !ok {
		return
	}
	p.sheet.CDTextFile = &value
}

// parseFile opens a new FILE context. The entry is created even when
// arguments are missing, so later tracks always have a container.
func (p *parser) parseFile(line Line, tokens []string) {
	file := NewFileData()
	if len(tokens) < 3 {
		line.warn("FILE expects a file name and file type")
	} else if len(tokens) > 3 {
		line.warn("FILE expects a file name and file type; extra arguments ignored")
	}
	if len(tokens) >= 2 {
		name := tokens[1]
		file.File = &name
	}
	if len(tokens) >= 3 {
		fileType := tokens[2]
		file.FileType = &fileType
	}
	p.sheet.Files = append(p.sheet.Files, file)
	p.file = file
	p.track = nil
}

// parseTrack opens a new TRACK context under the current file. A TRACK seen
// before any FILE still creates the track; it is attached to a fabricated
// empty file entry and a warning records the missing context.
func (p *parser) parseTrack(line Line, tokens []string) {
	track := NewTrackData()
	if len(tokens) < 3 {
		line.warn("TRACK expects a track number and data type")
	} else if len(tokens) > 3 {
		line.warn("TRACK expects a track number and data type; extra arguments ignored")
	}
	if len(tokens) >= 2 {
		if number, err := strconv.Atoi(tokens[1]); err == nil {
			track.Number = number
		} else {
			line.warn(fmt.Sprintf("invalid track number %q", tokens[1]))
		}
	}
	if len(tokens) >= 3 {
		dataType := tokens[2]
		track.DataType = &dataType
	}

	if p.file == nil {
		line.warn("TRACK before any FILE; attaching to an empty file entry")
		p.file = NewFileData()
		p.sheet.Files = append(p.sheet.Files, p.file)
	}
	p.file.Tracks = append(p.file.Tracks, track)
	p.track = track
}

func (p *parser) parseISRC(line Line, tokens []string) {
	track := p.currentTrack(line, "ISRC")
	if track == nil {
		return
	}
	value, ok := singleValue(line, tokens, "ISRC")
	if !ok {
		return
	}
	track.ISRCCode = &value
}

func (p *parser) parsePregap(line Line, tokens []string) {
	track := p.currentTrack(line, "PREGAP")
	if track == nil {
		return
	}
	if token, ok := positionArgument(line, tokens, "PREGAP"); ok {
		track.Pregap = parsePosition(line, token)
	}
}

func (p *parser) parsePostgap(line Line, tokens []string) {
	track := p.currentTrack(line, "POSTGAP")
	if track == nil {
		return
	}
	if token, ok := positionArgument(line, tokens, "POSTGAP"); ok {
		track.Postgap = parsePosition(line, token)
	}
}

// parseFlags records FLAGS tokens on the current track. FLAGS with no
// arguments is legal and leaves the set empty.
func (p *parser) parseFlags(line Line, tokens []string) {
	track := p.currentTrack(line, "FLAGS")
	if track == nil {
		return
	}
	for _, flag := range tokens[1:] {
		track.AddFlag(flag)
	}
}

func (p *parser) parseIndex(line Line, tokens []string) {
	track := p.currentTrack(line, "INDEX")
	if track == nil {
		return
	}
	index := NewIndex()
	if len(tokens) < 3 {
		line.warn("INDEX expects an index number and a mm:ss:ff position")
	} else if len(tokens) > 3 {
		line.warn("INDEX expects an index number and a mm:ss:ff position; extra arguments ignored")
	}
	if len(tokens) >= 2 {
		if number, err := strconv.Atoi(tokens[1]); err == nil {
			index.Number = number
		} else {
			line.warn(fmt.Sprintf("invalid index number %q", tokens[1]))
		}
	}
	if len(tokens) >= 3 {
		index.Position = parsePosition(line, tokens[2])
	}
	track.Indices = append(track.Indices, index)
}

// currentTrack returns the open track, or nil with a warning when a
// track-level command appears outside any TRACK. Field-level commands never
// fabricate a track; the line is dropped.
func (p *parser) currentTrack(line Line, command string) *TrackData {
	if p.track == nil {
		line.warn(command + " before any TRACK; line ignored")
		return nil
	}
	return p.track
}

// singleValue extracts the single argument of commands shaped like
// `COMMAND <value>`. A missing argument warns and reports !ok; extra
// arguments warn and are joined into one value.
func singleValue(line Line, tokens []string, command string) (string, bool) {
	if len(tokens) < 2 {
		line.warn(command + " expects a value")
		return "", false
	}
	if len(tokens) > 2 {
		line.warn(command + " expects a single value; joining extra tokens")
	}
	return strings.Join(tokens[1:], " "), true
}

// positionArgument extracts the position token of commands shaped like
// `COMMAND <mm:ss:ff>`.
func positionArgument(line Line, tokens []string, command string) (string, bool) {
	if len(tokens) < 2 {
		line.warn(command + " expects a mm:ss:ff position")
		return "", false
	}
	if len(tokens) > 2 {
		line.warn(command + " expects a single mm:ss:ff position; extra arguments ignored")
	}
	return tokens[1], true
}

// parsePosition parses a mm:ss:ff token: three colon-separated fields of
// exactly two digits each. The field values themselves are stored as given;
// seconds above 59 or frames above 74 are accepted for compatibility with
// sheets that stray from redbook convention. A token that does not match
// the pattern warns and yields no position.
func parsePosition(line Line, token string) *Position {
	parts := strings.Split(token, ":")
	if len(parts) != 3 || !isTwoDigits(parts[0]) || !isTwoDigits(parts[1]) || !isTwoDigits(parts[2]) {
		line.warn(fmt.Sprintf("invalid position %q; expected mm:ss:ff", token))
		return nil
	}
	minutes, _ := strconv.Atoi(parts[0])
	seconds, _ := strconv.Atoi(parts[1])
	frames, _ := strconv.Atoi(parts[2])
	position := NewPosition(minutes, seconds, frames)
	return &position
}

func isTwoDigits(s string) bool {
	return len(s) == 2 && isDigits(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
