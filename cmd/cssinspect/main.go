// Package main provides the cssinspect CLI: inspect a styled element tree,
// replay edit sessions, and export the resulting stylesheet.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
