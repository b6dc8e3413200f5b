// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/fontmerge/internal/pipeline"
	"github.com/jonathan/fontmerge/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDescriptor outputs a human-readable summary of one font's metadata.
func (p *Printer) PrintDescriptor(desc *types.FontDescriptor) {
	if desc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Path:        %s\n", desc.Path))
	sb.WriteString(fmt.Sprintf("UnitsPerEm:  %d\n", desc.UnitsPerEm))
	sb.WriteString(fmt.Sprintf("Outline:     %s\n", desc.Outline))
	sb.WriteString(fmt.Sprintf("Variable:    %t\n", desc.Variable))
	sb.WriteString(fmt.Sprintf("Glyphs:      %d\n", desc.NumGlyphs))
	sb.WriteString(fmt.Sprintf("Coverage:    %d codepoints", desc.Coverage.Len()))

	p.printBox(fmt.Sprintf("Font: %s", desc.Tag), sb.String())
}

// PrintStats outputs the final run summary: per-font assignments in priority
// order, the unassigned count and the output glyph count.
func (p *Printer) PrintStats(stats *pipeline.Stats) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target codepoints:  %d\n", stats.TargetSize))
	for _, tag := range stats.Order {
		sb.WriteString(fmt.Sprintf("  %-8s owns %d\n", tag, stats.Assigned[tag]))
	}
	sb.WriteString(fmt.Sprintf("Unassigned:         %d\n", stats.Unassigned))
	sb.WriteString(fmt.Sprintf("Output:             %s\n", stats.OutPath))
	sb.WriteString(fmt.Sprintf("Glyphs in output:   %d", stats.GlyphCount))

	p.printBox("Merge summary", sb.String())
}
