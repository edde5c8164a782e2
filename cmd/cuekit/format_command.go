package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cuekit/internal/cue"
)

func newFormatCommand(ctx *commandContext) *cobra.Command {
	var indentFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "format <file>",
		Short: "Re-serialize a cue sheet in canonical field order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.log()

			sheet, err := ctx.parseSheet(args[0])
			if err != nil {
				return err
			}
			if messages := sheet.Messages(); len(messages) > 0 {
				logger.Warn("input sheet had diagnostics; output reflects the tolerant fallbacks",
					"file", args[0], "diagnostics", len(messages))
			}

			indent := cfg.Output.Indent
			if cmd.Flags().Changed("indent") {
				indent = indentFlag
			}
			serializer := cue.Serializer{Indent: indent}
			text := serializer.Serialize(sheet)

			if outputFlag == "" {
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}
			if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outputFlag, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&indentFlag, "indent", cue.DefaultIndent, "Indentation per nesting level")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}
