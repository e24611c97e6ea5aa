package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssinspect.yaml config file",
	Long:  `Create a .cssinspect.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssinspect.yaml"); err == nil && !force {
			return fmt.Errorf(".cssinspect.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssinspect.yaml", []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssinspect.yaml")
		return nil
	},
}

const defaultConfig = `# cssinspect configuration
# Docs: https://github.com/yacobolo/cssinspect

# Document fixture with the rendered element tree
document: document.yaml

# Root font size (px) for resolving rem lengths to absolute form
root-font-size: 16

# Project token files (optional; built-in table is always loaded)
tokens:
  dir: web/ui/src/styles
  include:
    - "**/tokens.css"
    - "**/*.tokens.css"

verbose: false
color: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
