// Package dbf implements the subset of the dBASE III attribute table
// format that accompanies a shapefile: a fixed header, a field
// descriptor table terminated by 0x0D, and fixed-width ASCII records.
package dbf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	headerTerminator = 0x0D
	fieldDescSize    = 32
	deletionFlagSize = 1
)

// FieldType is the single-byte dBASE field type tag.
type FieldType byte

const (
	Character FieldType = 'C'
	Number    FieldType = 'N'
	Float     FieldType = 'F'
	Date      FieldType = 'D'
	Logical   FieldType = 'L'
)

// Field describes one column of the attribute table.
type Field struct {
	Name     string
	Type     FieldType
	Length   int
	Decimals int
}

// Record is one attribute row, keyed by field name. Values are Go's
// native string/float64/bool/nil depending on FieldType.
type Record map[string]any

// Header carries the table-level metadata preceding the field
// descriptors.
type Header struct {
	Year, Month, Day int
	RecordCount      int
}

func readHeader(data []byte) (Header, int, int, error) {
	if len(data) < 32 {
		return Header{}, 0, 0, fmt.Errorf("dbf: header shorter than 32 bytes")
	}
	recordCount := binary.LittleEndian.Uint32(data[4:8])
	headerSize := binary.LittleEndian.Uint16(data[8:10])
	recordSize := binary.LittleEndian.Uint16(data[10:12])
	if int(headerSize) > len(data) {
		return Header{}, 0, 0, fmt.Errorf("dbf: header size %d exceeds file length %d", headerSize, len(data))
	}
	h := Header{
		Year:        2000 + int(data[1]),
		Month:       int(data[2]),
		Day:         int(data[3]),
		RecordCount: int(recordCount),
	}
	return h, int(headerSize), int(recordSize), nil
}

func readFields(data []byte, headerSize int) ([]Field, error) {
	var fields []Field
	offset := 32
	for offset+fieldDescSize <= headerSize && data[offset] != headerTerminator {
		nameBytes := data[offset : offset+11]
		nameEnd := bytes.IndexByte(nameBytes, 0)
		if nameEnd == -1 {
			nameEnd = len(nameBytes)
		}
		fields = append(fields, Field{
			Name:     strings.TrimSpace(string(nameBytes[:nameEnd])),
			Type:     FieldType(data[offset+11]),
			Length:   int(data[offset+16]),
			Decimals: int(data[offset+17]),
		})
		offset += fieldDescSize
	}
	return fields, nil
}

// ReadAll parses a complete .dbf byte stream into its header, field
// descriptors, and records.
func ReadAll(r io.Reader) (Header, []Field, []Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Header{}, nil, nil, err
	}
	header, headerSize, recordSize, err := readHeader(data)
	if err != nil {
		return Header{}, nil, nil, err
	}
	fields, err := readFields(data, headerSize)
	if err != nil {
		return Header{}, nil, nil, err
	}

	var records []Record
	for i := 0; i < header.RecordCount; i++ {
		recOffset := headerSize + i*recordSize
		if recOffset+recordSize > len(data) {
			break
		}
		fieldOffset := recOffset + deletionFlagSize
		rec := make(Record, len(fields))
		for _, f := range fields {
			if fieldOffset+f.Length > len(data) {
				break
			}
			raw := strings.TrimSpace(string(data[fieldOffset : fieldOffset+f.Length]))
			rec[f.Name] = coerce(f.Type, raw)
			fieldOffset += f.Length
		}
		records = append(records, rec)
	}
	return header, fields, records, nil
}

func coerce(t FieldType, raw string) any {
	switch t {
	case Number, Float:
		if raw == "" {
			return nil
		}
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
		return raw
	case Logical:
		switch raw {
		case "T", "t", "Y", "y":
			return true
		case "F", "f", "N", "n":
			return false
		default:
			return nil
		}
	default:
		return raw
	}
}
