// Package validation rejects structurally incompatible font combinations
// before any expensive subsetting or merge work happens.
package validation

import (
	"fmt"

	"github.com/jonathan/fontmerge/internal/types"
)

// Validate checks the fonts in order for merge compatibility. It fails on a
// unitsPerEm mismatch or on mixed glyf/CFF outline families across fonts,
// and returns non-fatal warnings for variable-font inputs and for fonts
// whose outline classification is mixed-in-one or unknown.
func Validate(order []types.FontTag, descriptors map[types.FontTag]*types.FontDescriptor) ([]string, error) {
	upems := make(map[types.FontTag]uint16, len(order))
	outlineKinds := make(map[types.OutlineFormat]bool)
	var warnings []string

	for _, tag := range order {
		desc := descriptors[tag]
		upems[tag] = desc.UnitsPerEm
		outlineKinds[desc.Outline] = true

		switch desc.Outline {
		case types.OutlineMixed:
			warnings = append(warnings, fmt.Sprintf("%s: carries both glyf and CFF outlines", tag))
		case types.OutlineUnknown:
			warnings = append(warnings, fmt.Sprintf("%s: no recognized outline table", tag))
		}
	}

	distinct := make(map[uint16]bool, len(upems))
	for _, upem := range upems {
		distinct[upem] = true
	}
	if len(distinct) > 1 {
		return nil, &UnitsPerEmMismatchError{Values: upems}
	}

	if outlineKinds[types.OutlineGlyf] && outlineKinds[types.OutlineCFF] {
		return nil, &OutlineFormatMismatchError{}
	}

	for _, tag := range order {
		if descriptors[tag].Variable {
			warnings = append(warnings, fmt.Sprintf(
				"%s: variable font input; consider instancing to a static font before merging", tag))
		}
	}

	return warnings, nil
}
