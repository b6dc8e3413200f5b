// Package charset builds the target codepoint set for a merge run from the
// fixed ASCII range, optional corpus texts and optional named Unicode blocks.
package charset

// blockRange is an inclusive codepoint range.
type blockRange struct {
	Lo, Hi rune
}

// Fixed Unicode ranges. Loaded once at process start, never mutated.
var (
	asciiBasic = blockRange{0x0020, 0x007E} // printable ASCII
	latin1Sup  = blockRange{0x00A0, 0x00FF}

	cjkPunct  = blockRange{0x3000, 0x303F}
	hiragana  = blockRange{0x3040, 0x309F}
	katakana  = blockRange{0x30A0, 0x30FF}
	halfwidth = blockRange{0xFF00, 0xFFEF}

	cjkUnified = blockRange{0x4E00, 0x9FFF}
	cjkExtA    = blockRange{0x3400, 0x4DBF}
	cjkCompat  = blockRange{0xF900, 0xFAFF}
)

// Blocks selects the named Unicode block additions for BuildTarget. Each
// flag corresponds to one CLI --add-* switch.
type Blocks struct {
	Latin1        bool // Latin-1 Supplement
	CJKPunct      bool // CJK Symbols and Punctuation
	JPSyllabaries bool // Hiragana + Katakana
	Halfwidth     bool // Halfwidth and Fullwidth Forms
	HanBasic      bool // CJK Unified + Extension A + Compatibility
}
