// Package main provides the entry point for the fontmerge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fontmerge",
	Short: "Build one merged font from several Latin and CJK inputs",
	Long: "fontmerge subsets multiple fonts to a common target character set, assigns each " +
		"codepoint to exactly one font by priority order, merges the subsets with pyftmerge " +
		"and renames the result.",
}

func main() {
	// Load .env file if it exists (e.g. PYFTMERGE_BIN)
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
