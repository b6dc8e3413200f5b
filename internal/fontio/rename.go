package fontio

import (
	"encoding/binary"
	"os"
	"strings"
	"unicode/utf16"
)

// Standard name table identifiers rewritten by SetNames.
const (
	nameIDFamily     = 1
	nameIDSubfamily  = 2
	nameIDFull       = 4
	nameIDPostScript = 6
)

const (
	platformUnicode   = 0
	platformMacintosh = 1
	platformWindows   = 3
)

// Renamer rewrites the standard name-table identifiers of a font file.
type Renamer struct{}

// NewRenamer returns a font file renamer.
func NewRenamer() *Renamer {
	return &Renamer{}
}

// SetNames rewrites Family, Subfamily, Full Name and PostScript Name across
// all platform/encoding records of the font at path. Records whose platform
// encoding cannot represent the new value keep their original bytes; an
// individual record failure never aborts the rename.
func (r *Renamer) SetNames(path, family, subfamily string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &UnreadableFontError{Path: path, Cause: err}
	}

	nameTable, err := tableData(data, "name")
	if err != nil {
		return err
	}
	if nameTable == nil {
		return &TableError{Message: "name table not present"}
	}

	fullName := family
	if subfamily != "Regular" {
		fullName = family + " " + subfamily
	}
	replacements := map[uint16]string{
		nameIDFamily:     family,
		nameIDSubfamily:  subfamily,
		nameIDFull:       fullName,
		nameIDPostScript: strings.ReplaceAll(fullName, " ", ""),
	}

	rewritten, err := rewriteNameTable(nameTable, replacements)
	if err != nil {
		return err
	}
	out, err := ReplaceTable(data, "name", rewritten)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

// rewriteNameTable rebuilds the name table, substituting string data for the
// replaced name IDs. Existing records are updated in place; no records are
// added or removed, so language coverage stays as the merger produced it.
func rewriteNameTable(table []byte, replacements map[uint16]string) ([]byte, error) {
	if len(table) < 6 {
		return nil, &TableError{Message: "name table too short"}
	}
	count := int(binary.BigEndian.Uint16(table[2:]))
	storageOffset := int(binary.BigEndian.Uint16(table[4:]))
	if len(table) < 6+count*12 {
		return nil, &TableError{Message: "name records truncated"}
	}

	type nameString struct {
		platformID uint16
		value      []byte
	}
	strs := make([]nameString, count)
	for i := 0; i < count; i++ {
		record := table[6+i*12:]
		platformID := binary.BigEndian.Uint16(record)
		nameID := binary.BigEndian.Uint16(record[6:])
		length := int(binary.BigEndian.Uint16(record[8:]))
		offset := int(binary.BigEndian.Uint16(record[10:]))

		var value []byte
		if storageOffset+offset+length <= len(table) {
			value = table[storageOffset+offset : storageOffset+offset+length]
		}
		if replacement, ok := replacements[nameID]; ok {
			if encoded, ok := encodeNameString(platformID, replacement); ok {
				value = encoded
			}
			// Encoding failure: keep the original bytes for this record.
		}
		strs[i] = nameString{platformID: platformID, value: value}
	}

	// Rebuild: header + untouched records with recomputed string offsets,
	// identical string data shared between records.
	storage := make([]byte, 0, len(table))
	offsets := make(map[string]int, count)
	out := make([]byte, 6+count*12)
	copy(out, table[:6])
	binary.BigEndian.PutUint16(out[4:], uint16(6+count*12))

	for i := 0; i < count; i++ {
		record := out[6+i*12:]
		copy(record[:8], table[6+i*12:6+i*12+8])

		key := string(strs[i].value)
		offset, ok := offsets[key]
		if !ok {
			offset = len(storage)
			offsets[key] = offset
			storage = append(storage, strs[i].value...)
		}
		binary.BigEndian.PutUint16(record[8:], uint16(len(strs[i].value)))
		binary.BigEndian.PutUint16(record[10:], uint16(offset))
	}
	return append(out, storage...), nil
}

// encodeNameString encodes s for the record's platform: UTF-16BE for the
// Unicode and Windows platforms, single-byte MacRoman-compatible ASCII for
// Macintosh. Returns false when the platform cannot represent the value.
func encodeNameString(platformID uint16, s string) ([]byte, bool) {
	switch platformID {
	case platformUnicode, platformWindows:
		units := utf16.Encode([]rune(s))
		out := make([]byte, len(units)*2)
		for i, unit := range units {
			binary.BigEndian.PutUint16(out[i*2:], unit)
		}
		return out, true
	case platformMacintosh:
		out := make([]byte, 0, len(s))
		for _, r := range s {
			if r > 0x7E {
				return nil, false
			}
			out = append(out, byte(r))
		}
		return out, true
	default:
		return nil, false
	}
}
