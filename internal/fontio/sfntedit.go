package fontio

import (
	"encoding/binary"
	"math/bits"
)

// Raw SFNT table-directory splicing. The subsetter and renamer both need to
// rewrite single tables in an already-serialized font without reparsing it
// into a full object model: the table directory is rebuilt, offsets and
// checksums recomputed, and head.checkSumAdjustment fixed up.

const (
	sfntHeaderLen      = 12
	tableRecordLen     = 16
	checksumAdjustment = 0xB1B0AFBA
)

type tableRecord struct {
	name string
	data []byte
}

// parseTables splits an SFNT binary into its table directory entries,
// preserving directory order.
func parseTables(data []byte) (version uint32, tables []tableRecord, err error) {
	if len(data) < sfntHeaderLen {
		return 0, nil, &TableError{Message: "file shorter than sfnt header"}
	}
	version = binary.BigEndian.Uint32(data)
	numTables := int(binary.BigEndian.Uint16(data[4:]))
	if len(data) < sfntHeaderLen+numTables*tableRecordLen {
		return 0, nil, &TableError{Message: "table directory truncated"}
	}

	tables = make([]tableRecord, 0, numTables)
	for i := 0; i < numTables; i++ {
		entry := data[sfntHeaderLen+i*tableRecordLen:]
		name := string(entry[:4])
		offset := binary.BigEndian.Uint32(entry[8:])
		length := binary.BigEndian.Uint32(entry[12:])
		if uint64(offset)+uint64(length) > uint64(len(data)) {
			return 0, nil, &TableError{Message: "table " + name + " extends past end of file"}
		}
		tables = append(tables, tableRecord{name: name, data: data[offset : offset+length]})
	}
	return version, tables, nil
}

// RemoveTables returns the font with the named tables removed, along with
// the names that were actually present. Names not found are ignored.
func RemoveTables(data []byte, names []string) ([]byte, []string, error) {
	version, tables, err := parseTables(data)
	if err != nil {
		return nil, nil, err
	}

	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}

	kept := make([]tableRecord, 0, len(tables))
	var removed []string
	for _, table := range tables {
		if drop[table.name] {
			removed = append(removed, table.name)
			continue
		}
		kept = append(kept, table)
	}
	if len(removed) == 0 {
		return data, nil, nil
	}

	out, err := writeTables(version, kept)
	return out, removed, err
}

// ReplaceTable returns the font with the named table's contents replaced.
func ReplaceTable(data []byte, name string, table []byte) ([]byte, error) {
	version, tables, err := parseTables(data)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range tables {
		if tables[i].name == name {
			tables[i].data = table
			found = true
			break
		}
	}
	if !found {
		return nil, &TableError{Message: "table " + name + " not present"}
	}
	return writeTables(version, tables)
}

// tableData returns the raw contents of the named table, or nil if absent.
func tableData(data []byte, name string) ([]byte, error) {
	_, tables, err := parseTables(data)
	if err != nil {
		return nil, err
	}
	for _, table := range tables {
		if table.name == name {
			return table.data, nil
		}
	}
	return nil, nil
}

// writeTables serializes the tables into a fresh SFNT binary: directory in
// table order, contents padded to 4 bytes, per-table checksums recomputed
// and head.checkSumAdjustment fixed afterwards.
func writeTables(version uint32, tables []tableRecord) ([]byte, error) {
	numTables := len(tables)
	if numTables == 0 {
		return nil, &TableError{Message: "no tables left to write"}
	}
	offset := sfntHeaderLen + numTables*tableRecordLen
	total := offset
	for _, table := range tables {
		total += pad4(len(table.data))
	}

	out := make([]byte, total)
	binary.BigEndian.PutUint32(out, version)
	binary.BigEndian.PutUint16(out[4:], uint16(numTables))
	entrySelector := uint16(bits.Len(uint(numTables))) - 1
	searchRange := uint16(1<<entrySelector) * 16
	binary.BigEndian.PutUint16(out[6:], searchRange)
	binary.BigEndian.PutUint16(out[8:], entrySelector)
	binary.BigEndian.PutUint16(out[10:], uint16(numTables)*16-searchRange)

	headOffset := -1
	for i, table := range tables {
		copy(out[offset:], table.data)
		if table.name == "head" {
			headOffset = offset
			// Zero checkSumAdjustment before any checksumming.
			if len(table.data) < 12 {
				return nil, &TableError{Message: "head table too short"}
			}
			binary.BigEndian.PutUint32(out[offset+8:], 0)
		}

		entry := out[sfntHeaderLen+i*tableRecordLen:]
		copy(entry[:4], table.name)
		binary.BigEndian.PutUint32(entry[4:], tableChecksum(out[offset:offset+pad4(len(table.data))]))
		binary.BigEndian.PutUint32(entry[8:], uint32(offset))
		binary.BigEndian.PutUint32(entry[12:], uint32(len(table.data)))
		offset += pad4(len(table.data))
	}

	if headOffset >= 0 {
		adjustment := checksumAdjustment - tableChecksum(out)
		binary.BigEndian.PutUint32(out[headOffset+8:], adjustment)
	}
	return out, nil
}

// tableChecksum sums the data as big-endian uint32s; the tail is treated as
// zero-padded to a 4-byte boundary.
func tableChecksum(data []byte) uint32 {
	var sum uint32
	for len(data) >= 4 {
		sum += binary.BigEndian.Uint32(data)
		data = data[4:]
	}
	if len(data) > 0 {
		var tail [4]byte
		copy(tail[:], data)
		sum += binary.BigEndian.Uint32(tail[:])
	}
	return sum
}

func pad4(n int) int {
	return (n + 3) &^ 3
}
