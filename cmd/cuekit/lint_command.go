package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cuekit/internal/cue"
)

type lintReport struct {
	File     string        `json:"file"`
	Messages []lintMessage `json:"messages"`
}

type lintMessage struct {
	Severity string `json:"severity"`
	Line     int    `json:"line"`
	Input    string `json:"input"`
	Text     string `json:"text"`
}

func newLintCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var strict bool

	cmd := &cobra.Command{
		Use:   "lint <file>...",
		Short: "Parse cue sheets and report every deviation from the grammar",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.log()

			failures := 0
			var reports []lintReport
			for _, path := range args {
				sheet, err := ctx.parseSheet(path)
				if err != nil {
					return err
				}
				messages := sheet.Messages()
				logger.Debug("parsed cue sheet", "file", path, "diagnostics", len(messages))

				if jsonOut {
					reports = append(reports, newLintReport(path, messages))
				} else {
					printLintReport(cmd, path, messages, styledOutput(cfg.Display.Color))
				}

				if sheet.HasErrors() || (strict && len(messages) > 0) {
					failures++
				}
			}

			if jsonOut {
				if err := writeJSON(cmd, reports); err != nil {
					return err
				}
			}
			if failures > 0 {
				return fmt.Errorf("lint failed for %d of %d sheet(s)", failures, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of tables")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")
	return cmd
}

func newLintReport(path string, messages []cue.Message) lintReport {
	report := lintReport{File: path, Messages: []lintMessage{}}
	for _, m := range messages {
		report.Messages = append(report.Messages, lintMessage{
			Severity: string(m.Severity),
			Line:     m.LineNumber,
			Input:    m.Input,
			Text:     m.Text,
		})
	}
	return report
}

func printLintReport(cmd *cobra.Command, path string, messages []cue.Message, styled bool) {
	out := cmd.OutOrStdout()
	if len(messages) == 0 {
		fmt.Fprintf(out, "%s: no issues\n", path)
		return
	}

	rows := make([][]string, 0, len(messages))
	for _, m := range messages {
		rows = append(rows, []string{
			string(m.Severity),
			strconv.Itoa(m.LineNumber),
			m.Text,
			m.Input,
		})
	}
	fmt.Fprintf(out, "%s: %d issue(s)\n", path, len(messages))
	fmt.Fprintln(out, renderTable(
		[]string{"Severity", "Line", "Message", "Input"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
		styled,
	))
}
