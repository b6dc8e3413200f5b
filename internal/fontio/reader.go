// Package fontio implements the font-engineering collaborators of the merge
// pipeline: reading font metadata, physical subsetting, table dropping and
// name-table rewriting. All decision logic lives elsewhere; this package is
// mechanical I/O over font binaries.
package fontio

import (
	"os"
	"unicode/utf16"

	"github.com/tdewolff/font"

	"github.com/jonathan/fontmerge/internal/types"
)

// maxCodepoint is the last Unicode scalar value probed for coverage.
const maxCodepoint = 0x10FFFF

// Reader reads FontDescriptors from font files on disk.
type Reader struct{}

// NewReader returns a font file reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadDescriptor parses the font at path and snapshots the metadata the
// pipeline needs: unitsPerEm, outline table classification, variable-font
// flag, glyph count and the full Unicode coverage set.
func (r *Reader) ReadDescriptor(path string, tag types.FontTag) (*types.FontDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnreadableFontError{Path: path, Cause: err}
	}

	sfnt, err := font.ParseFont(data, 0)
	if err != nil {
		return nil, &UnreadableFontError{Path: path, Cause: err}
	}

	return &types.FontDescriptor{
		Tag:        tag,
		Path:       path,
		UnitsPerEm: sfnt.Head.UnitsPerEm,
		Outline:    classifyOutline(sfnt),
		Variable:   hasTable(sfnt, "fvar"),
		NumGlyphs:  sfnt.NumGlyphs(),
		Coverage:   coverageSet(sfnt),
	}, nil
}

// CountGlyphs returns the glyph count of the font at path.
func (r *Reader) CountGlyphs(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, &UnreadableFontError{Path: path, Cause: err}
	}
	sfnt, err := font.ParseFont(data, 0)
	if err != nil {
		return 0, &UnreadableFontError{Path: path, Cause: err}
	}
	return int(sfnt.NumGlyphs()), nil
}

func hasTable(sfnt *font.SFNT, name string) bool {
	_, ok := sfnt.Tables[name]
	return ok
}

// classifyOutline inspects which outline table families are present.
func classifyOutline(sfnt *font.SFNT) types.OutlineFormat {
	hasGlyf := hasTable(sfnt, "glyf")
	hasCFF := hasTable(sfnt, "CFF ") || hasTable(sfnt, "CFF2")
	switch {
	case hasGlyf && hasCFF:
		return types.OutlineMixed
	case hasGlyf:
		return types.OutlineGlyf
	case hasCFF:
		return types.OutlineCFF
	default:
		return types.OutlineUnknown
	}
}

// coverageSet probes the cmap for every Unicode scalar value. Glyph index 0
// is notdef, so a zero mapping means the codepoint is not covered.
func coverageSet(sfnt *font.SFNT) types.CodeSet {
	coverage := make(types.CodeSet)
	for cp := rune(0); cp <= maxCodepoint; cp++ {
		if utf16.IsSurrogate(cp) {
			continue
		}
		if sfnt.GlyphIndex(cp) != 0 {
			coverage.Add(cp)
		}
	}
	return coverage
}
