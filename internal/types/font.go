// Package types defines the shared domain types used across the merge pipeline.
package types

// FontTag is a stable identifier for one candidate font within a run.
// Latin inputs are synthesized as "latin0", "latin1", ...; the CJK inputs
// use the fixed role tags "zh-tw", "zh-cn" and "ja".
type FontTag = string

// OutlineFormat classifies the glyph-shape representation of a font by the
// outline table families it contains.
type OutlineFormat string

const (
	// OutlineGlyf marks a TrueType font carrying only a glyf table.
	OutlineGlyf OutlineFormat = "glyf"
	// OutlineCFF marks a font carrying only CFF or CFF2 outlines.
	OutlineCFF OutlineFormat = "cff"
	// OutlineMixed marks a font carrying both glyf and CFF outlines.
	// Rare but possible; logged, not itself fatal.
	OutlineMixed OutlineFormat = "mixed-in-one"
	// OutlineUnknown marks a font carrying neither outline table family.
	OutlineUnknown OutlineFormat = "unknown"
)

// FontDescriptor is the immutable per-font snapshot read once at the start
// of a run.
type FontDescriptor struct {
	Tag        FontTag       // Stable identifier within the run
	Path       string        // Input file path
	UnitsPerEm uint16        // Declared em-square resolution
	Outline    OutlineFormat // Outline table classification
	Variable   bool          // Has a variation-axis (fvar) table
	NumGlyphs  uint16        // Glyph count of the input font
	Coverage   CodeSet       // Unicode codepoints the font has a glyph for
}
