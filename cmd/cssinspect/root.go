package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssinspect",
	Short: "Style inspector for token-based design systems",
	Long: `Inspect rendered elements, map effective styles back to design tokens,
edit properties by token, and export the edits as a stylesheet.
Documents and edit sessions are YAML fixtures; tokens come from the
built-in table plus any CSS token files in the source directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".cssinspect.yaml", "Config file path")
	rootCmd.PersistentFlags().String("document", "document.yaml", "Document fixture path")
	rootCmd.PersistentFlags().String("tokens-dir", "", "Directory with CSS token files")
	rootCmd.PersistentFlags().StringSlice("include", nil, "Glob patterns for token files (default: tokens.css conventions)")
	rootCmd.PersistentFlags().Float64("root-font-size", 16, "Root font size in px for resolving rem lengths")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
