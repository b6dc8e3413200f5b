package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/fontmerge/internal/fontio"
	"github.com/jonathan/fontmerge/internal/observability"
)

var inspectCommand = &cobra.Command{
	Use:   "inspect <font.ttf> [font.ttf ...]",
	Short: "Print the merge-relevant metadata of one or more fonts",
	Long: `Reads each font and prints what the merge pipeline would see: unitsPerEm, outline
format, variable-font flag, glyph count and Unicode coverage size. Useful to check input
compatibility before a merge.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspectCmd,
}

func init() {
	rootCmd.AddCommand(inspectCommand)
}

func runInspectCmd(_ *cobra.Command, args []string) error {
	reader := fontio.NewReader()
	printer := observability.NewPrinter(os.Stdout)

	for _, path := range args {
		tag := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		desc, err := reader.ReadDescriptor(path, tag)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", path, err)
		}
		printer.PrintDescriptor(desc)
	}
	return nil
}
