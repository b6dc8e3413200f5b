package fontio

import (
	"fmt"
	"os"
	"sort"

	"github.com/tdewolff/font"

	"github.com/jonathan/fontmerge/internal/types"
)

// Subsetter produces physical subset files containing only the glyphs
// reachable from a set of kept codepoints.
type Subsetter struct{}

// NewSubsetter returns a font file subsetter.
func NewSubsetter() *Subsetter {
	return &Subsetter{}
}

// Subset writes a subset of the font at path to outPath, keeping the glyphs
// for keep plus the notdef glyph, with all remaining tables preserved so
// layout features survive. Tables named in dropTables are removed from the
// result; it returns the names actually removed.
func (s *Subsetter) Subset(path string, keep types.CodeSet, dropTables []string, outPath string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnreadableFontError{Path: path, Cause: err}
	}
	sfnt, err := font.ParseFont(data, 0)
	if err != nil {
		return nil, &UnreadableFontError{Path: path, Cause: err}
	}

	glyphIDs := glyphIDsFor(sfnt, keep)
	subset, err := sfnt.Subset(glyphIDs, font.SubsetOptions{Tables: font.KeepAllTables})
	if err != nil {
		return nil, fmt.Errorf("subsetting %s failed: %w", path, err)
	}
	out := subset.Write()

	var removed []string
	if len(dropTables) > 0 {
		out, removed, err = RemoveTables(out, dropTables)
		if err != nil {
			return nil, fmt.Errorf("dropping tables from %s subset failed: %w", path, err)
		}
	}

	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return nil, fmt.Errorf("writing subset %s failed: %w", outPath, err)
	}
	return removed, nil
}

// glyphIDsFor maps kept codepoints to glyph IDs, always including glyph 0
// (notdef). Several codepoints can share a glyph; duplicates are collapsed
// and the result is ascending.
func glyphIDsFor(sfnt *font.SFNT, keep types.CodeSet) []uint16 {
	seen := map[uint16]bool{0: true}
	glyphIDs := []uint16{0}
	for _, cp := range keep.Sorted() {
		gid := sfnt.GlyphIndex(cp)
		if gid == 0 || seen[gid] {
			continue
		}
		seen[gid] = true
		glyphIDs = append(glyphIDs, gid)
	}
	sort.Slice(glyphIDs, func(i, j int) bool { return glyphIDs[i] < glyphIDs[j] })
	return glyphIDs
}
