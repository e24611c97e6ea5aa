package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssinspect"
	"github.com/yacobolo/cssinspect/internal/hostdoc"
)

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Replay an edit session and export the stylesheet",
	Long: `Replay a YAML edit script (select/set/linked/reset/undo/redo steps)
against the document fixture, then print the exported stylesheet for the
accumulated overrides. Use --out to write it to a file instead; the write
is a hand-off only and never affects session state.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		registry, err := buildRegistry(logger)
		if err != nil {
			return err
		}
		doc, err := loadDocument(logger)
		if err != nil {
			return err
		}

		script, err := hostdoc.LoadScript(args[0])
		if err != nil {
			return err
		}

		inspector := cssinspect.New(registry)
		if err := script.Run(doc, inspector); err != nil {
			return fmt.Errorf("session failed: %w", err)
		}

		undo, redo := inspector.History().Depth()
		logger.Debug().
			Int("steps", len(script.Steps)).
			Int("undo-depth", undo).
			Int("redo-depth", redo).
			Msg("session complete")

		sheet := inspector.ExportStylesheet()

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, []byte(sheet), 0o644); err != nil {
				// Fire-and-forget hand-off: report it, session state is intact.
				logger.Error().Err(err).Str("path", out).Msg("writing stylesheet")
				return fmt.Errorf("writing stylesheet: %w", err)
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		}

		if !getBoolWithFallback("quiet", "quiet", false) {
			fmt.Print(sheet)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().String("out", "", "Write the exported stylesheet to a file")
}
