package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/fontmerge/internal/types"
)

// UnitsPerEmMismatchError reports inputs with differing em-square
// resolutions. Merging requires a single shared scale, so this is fatal
// before any subsetting work begins.
type UnitsPerEmMismatchError struct {
	// Values maps every font tag in the order to its unitsPerEm.
	Values map[types.FontTag]uint16
}

func (e *UnitsPerEmMismatchError) Error() string {
	tags := make([]string, 0, len(e.Values))
	for tag := range e.Values {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	pairs := make([]string, 0, len(tags))
	for _, tag := range tags {
		pairs = append(pairs, fmt.Sprintf("%s=%d", tag, e.Values[tag]))
	}
	return fmt.Sprintf("unitsPerEm mismatch across inputs (must match for merge). Found: %s",
		strings.Join(pairs, ", "))
}

// OutlineFormatMismatchError reports a mix of TrueType (glyf) and CFF/CFF2
// inputs across different fonts. Mixed outline families cannot be merged
// into one font safely.
type OutlineFormatMismatchError struct{}

func (e *OutlineFormatMismatchError) Error() string {
	return "mixed TrueType (glyf) and CFF/CFF2 inputs; use all-glyf fonts or all-CFF fonts"
}
