package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssinspect"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [category]",
	Short: "List registry tokens by category",
	Long: `List the design tokens the registry was built with: the built-in table
plus any CSS token files loaded from --tokens-dir. Declaration order by
default; --sort re-sorts each category alphabetically for display.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		registry, err := buildRegistry(logger)
		if err != nil {
			return err
		}

		var category cssinspect.Category
		if len(args) == 1 {
			category = cssinspect.Category(args[0])
			if len(registry.TokensInCategory(category)) == 0 {
				return fmt.Errorf("unknown or empty category %q", args[0])
			}
		}

		alphabetical, _ := cmd.Flags().GetBool("sort")
		cssinspect.WriteTokenReport(os.Stdout, registry, category, alphabetical,
			cssinspect.ReportConfig{UseColors: useColors()})
		return nil
	},
}

func init() {
	tokensCmd.Flags().Bool("sort", false, "Sort tokens alphabetically within each category")
}
