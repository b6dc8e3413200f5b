// Package priority expands a user-specified preference token list into a
// concrete, deduplicated font ordering.
package priority

import (
	"strings"

	"github.com/jonathan/fontmerge/internal/types"
)

// LatinGroupToken is the literal token that expands in place to all Latin
// font tags, preserving their input order.
const LatinGroupToken = "latin"

// SplitTokens splits a comma-separated preference string into raw tokens.
// Trimming and empty-token handling happen in Resolve.
func SplitTokens(preferOrder string) []string {
	return strings.Split(preferOrder, ",")
}

// Resolve expands tokens into a concrete font ordering:
//   - tokens are trimmed; empty tokens are dropped
//   - the literal "latin" token expands to latinTags in their input order
//   - duplicates keep their first occurrence position
//   - tags not present in fontPaths, or mapped to an empty path, are dropped
//
// An empty resulting order is a fatal configuration error.
func Resolve(tokens []string, latinTags []types.FontTag, fontPaths map[types.FontTag]string) ([]types.FontTag, error) {
	expanded := make([]types.FontTag, 0, len(tokens)+len(latinTags))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if tok == LatinGroupToken {
			expanded = append(expanded, latinTags...)
			continue
		}
		expanded = append(expanded, tok)
	}

	seen := make(map[types.FontTag]bool, len(expanded))
	order := make([]types.FontTag, 0, len(expanded))
	for _, tag := range expanded {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		if fontPaths[tag] == "" {
			// Unknown tag or a known tag with no input path.
			continue
		}
		order = append(order, tag)
	}

	if len(order) == 0 {
		return nil, &EmptyOrderError{}
	}
	return order, nil
}

// DefaultOrder is the ordering used when no preference string is supplied:
// all Latin tags in input order, then the two mandatory CJK tags, then the
// optional Japanese tag if an input was given for it.
func DefaultOrder(latinTags []types.FontTag, hasJA bool) []types.FontTag {
	order := make([]types.FontTag, 0, len(latinTags)+3)
	order = append(order, latinTags...)
	order = append(order, "zh-tw", "zh-cn")
	if hasJA {
		order = append(order, "ja")
	}
	return order
}
