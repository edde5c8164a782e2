package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cuekit/internal/cue"
)

type sheetView struct {
	Genre      *string    `json:"genre,omitempty"`
	Year       *string    `json:"year,omitempty"`
	DiscID     *string    `json:"discid,omitempty"`
	Comment    *string    `json:"comment,omitempty"`
	Catalog    *string    `json:"catalog,omitempty"`
	Performer  *string    `json:"performer,omitempty"`
	Title      *string    `json:"title,omitempty"`
	Songwriter *string    `json:"songwriter,omitempty"`
	CDTextFile *string    `json:"cdtextfile,omitempty"`
	Files      []fileView `json:"files"`
}

type fileView struct {
	File     *string     `json:"file,omitempty"`
	FileType *string     `json:"file_type,omitempty"`
	Tracks   []trackView `json:"tracks"`
}

type trackView struct {
	Number     int         `json:"number"`
	DataType   *string     `json:"data_type,omitempty"`
	ISRC       *string     `json:"isrc,omitempty"`
	Performer  *string     `json:"performer,omitempty"`
	Title      *string     `json:"title,omitempty"`
	Songwriter *string     `json:"songwriter,omitempty"`
	Pregap     *string     `json:"pregap,omitempty"`
	Postgap    *string     `json:"postgap,omitempty"`
	Flags      []string    `json:"flags,omitempty"`
	Indices    []indexView `json:"indices"`
}

type indexView struct {
	Number   int     `json:"number"`
	Position *string `json:"position,omitempty"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Display the structure of a parsed cue sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()

			sheet, err := ctx.parseSheet(args[0])
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, newSheetView(sheet))
			}
			printSheet(cmd, sheet, styledOutput(cfg.Display.Color))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of tables")
	return cmd
}

func newSheetView(sheet *cue.CueSheet) sheetView {
	view := sheetView{
		Genre:      sheet.Genre,
		Year:       sheet.Year,
		DiscID:     sheet.DiscID,
		Comment:    sheet.Comment,
		Catalog:    sheet.Catalog,
		Performer:  sheet.Performer,
		Title:      sheet.Title,
		Songwriter: sheet.Songwriter,
		CDTextFile: sheet.CDTextFile,
		Files:      []fileView{},
	}
	for _, file := range sheet.Files {
		fv := fileView{File: file.File, FileType: file.FileType, Tracks: []trackView{}}
		for _, track := range file.Tracks {
			tv := trackView{
				Number:     track.Number,
				DataType:   track.DataType,
				ISRC:       track.ISRCCode,
				Performer:  track.Performer,
				Title:      track.Title,
				Songwriter: track.Songwriter,
				Pregap:     positionString(track.Pregap),
				Postgap:    positionString(track.Postgap),
				Flags:      track.Flags(),
				Indices:    []indexView{},
			}
			for _, index := range track.Indices {
				tv.Indices = append(tv.Indices, indexView{
					Number:   index.Number,
					Position: positionString(index.Position),
				})
			}
			fv.Tracks = append(fv.Tracks, tv)
		}
		view.Files = append(view.Files, fv)
	}
	return view
}

func positionString(p *cue.Position) *string {
	if p == nil {
		return nil
	}
	s := p.String()
	return &s
}

func printSheet(cmd *cobra.Command, sheet *cue.CueSheet, styled bool) {
	out := cmd.OutOrStdout()

	headerRows := [][]string{}
	addHeaderRow := func(name string, value *string) {
		if value != nil {
			headerRows = append(headerRows, []string{name, *value})
		}
	}
	addHeaderRow("Genre", sheet.Genre)
	addHeaderRow("Date", sheet.Year)
	addHeaderRow("Disc ID", sheet.DiscID)
	addHeaderRow("Comment", sheet.Comment)
	addHeaderRow("Catalog", sheet.Catalog)
	addHeaderRow("Performer", sheet.Performer)
	addHeaderRow("Title", sheet.Title)
	addHeaderRow("Songwriter", sheet.Songwriter)
	addHeaderRow("CD-Text file", sheet.CDTextFile)

	if len(headerRows) > 0 {
		fmt.Fprintln(out, renderTable(
			[]string{"Header", "Value"},
			headerRows,
			[]columnAlignment{alignLeft, alignLeft},
			styled,
		))
	}

	for _, file := range sheet.Files {
		fmt.Fprintf(out, "FILE %s (%s): %d track(s)\n",
			stringOrDash(file.File), stringOrDash(file.FileType), len(file.Tracks))
		if len(file.Tracks) == 0 {
			continue
		}
		rows := make([][]string, 0, len(file.Tracks))
		for _, track := range file.Tracks {
			rows = append(rows, []string{
				trackNumber(track.Number),
				stringOrDash(track.DataType),
				stringOrDash(track.Title),
				stringOrDash(track.Performer),
				trackStart(track),
				strings.Join(track.Flags(), " "),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Track", "Type", "Title", "Performer", "Start", "Flags"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			styled,
		))
	}
}

func stringOrDash(value *string) string {
	if value == nil {
		return "-"
	}
	return *value
}

func trackNumber(number int) string {
	if number < 0 {
		return "-"
	}
	return fmt.Sprintf("%02d", number)
}

// trackStart reports the position of index 01 when present, otherwise the
// first index that carries a position.
func trackStart(track *cue.TrackData) string {
	var fallback string
	for _, index := range track.Indices {
		if index.Position == nil {
			continue
		}
		if index.Number == 1 {
			return index.Position.String()
		}
		if fallback == "" {
			fallback = index.Position.String()
		}
	}
	if fallback == "" {
		return "-"
	}
	return fallback
}
