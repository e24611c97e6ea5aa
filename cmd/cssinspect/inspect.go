package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssinspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <query>",
	Short: "Show the meaningful style properties of an element",
	Long: `Select an element from the document fixture (".class" or tag name) and
print its meaningful properties grouped by section, with token matches
resolved through the registry. Modified properties are marked with *.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		logger := newLogger()

		registry, err := buildRegistry(logger)
		if err != nil {
			return err
		}
		doc, err := loadDocument(logger)
		if err != nil {
			return err
		}

		node := doc.Find(args[0])
		if node == nil {
			return fmt.Errorf("no element matches %q", args[0])
		}

		inspector := cssinspect.New(registry)
		inspector.SelectElement(node)

		if getBoolWithFallback("quiet", "quiet", false) {
			return nil
		}

		cssinspect.WritePropertyReport(os.Stdout, inspector.Presenter(), node,
			cssinspect.ReportConfig{UseColors: useColors()})
		return nil
	},
}
