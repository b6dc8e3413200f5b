// Package partition assigns each target codepoint to exactly one font.
package partition

import "github.com/jonathan/fontmerge/internal/types"

// Assignment maps each font tag to the disjoint subset of target codepoints
// it owns. The union of all assigned subsets plus the unassigned codepoints
// equals the target set exactly.
type Assignment map[types.FontTag]types.CodeSet

// Partition walks the target codepoints in ascending numeric order and
// assigns each to the first font in order whose coverage contains it.
// Priority order is a strict precedence list: the scan stops at the first
// match. Codepoints no font covers are counted as unassigned and belong to
// no font's subset.
func Partition(targets types.CodeSet, order []types.FontTag, coverage map[types.FontTag]types.CodeSet) (Assignment, int) {
	assigned := make(Assignment, len(order))
	for _, tag := range order {
		assigned[tag] = make(types.CodeSet)
	}

	unassigned := 0
	for _, cp := range targets.Sorted() {
		owner := types.FontTag("")
		for _, tag := range order {
			if coverage[tag].Has(cp) {
				owner = tag
				break
			}
		}
		if owner == "" {
			unassigned++
			continue
		}
		assigned[owner].Add(cp)
	}

	return assigned, unassigned
}
