package dbf

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
)

// WriteAll encodes fields and records as a dBASE III table. A field that
// a record lacks, or holds as nil, is written as blanks. WriteAll does
// not compare the record count with any shape stream; that check is left
// to the caller that pairs this table with shapes.
func WriteAll(w io.Writer, fields []Field, records []Record) error {
	headerSize := 32 + fieldDescSize*len(fields) + 1
	recordSize := deletionFlagSize
	for _, f := range fields {
		recordSize += f.Length
	}

	header := make([]byte, headerSize)
	header[0] = 0x03 // dBASE III without memo
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(records)))
	binary.LittleEndian.PutUint16(header[8:10], uint16(headerSize))
	binary.LittleEndian.PutUint16(header[10:12], uint16(recordSize))

	offset := 32
	for _, f := range fields {
		if len(f.Name) > 11 {
			return fmt.Errorf("dbf: field name %q longer than 11 bytes", f.Name)
		}
		copy(header[offset:offset+11], f.Name)
		header[offset+11] = byte(f.Type)
		header[offset+16] = byte(f.Length)
		header[offset+17] = byte(f.Decimals)
		offset += fieldDescSize
	}
	header[offset] = headerTerminator

	if _, err := w.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		buf := make([]byte, recordSize)
		buf[0] = ' ' // not deleted
		pos := deletionFlagSize
		for _, f := range fields {
			encoded := encodeField(f, rec[f.Name])
			copy(buf[pos:pos+f.Length], padField(encoded, f))
			pos += f.Length
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	// dBASE files conventionally end with an EOF marker byte.
	_, err := w.Write([]byte{0x1A})
	return err
}

func encodeField(f Field, v any) string {
	if v == nil {
		return ""
	}
	switch f.Type {
	case Number, Float:
		switch n := v.(type) {
		case float64:
			if f.Decimals > 0 {
				return strconv.FormatFloat(n, 'f', f.Decimals, 64)
			}
			return strconv.FormatFloat(n, 'f', -1, 64)
		default:
			return fmt.Sprintf("%v", v)
		}
	case Logical:
		if b, ok := v.(bool); ok {
			if b {
				return "T"
			}
			return "F"
		}
		return "?"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// padField left-pads numeric values and right-pads text values to the
// field's fixed width, truncating on overflow rather than erroring,
// matching dBASE's fixed-width-field contract.
func padField(s string, f Field) []byte {
	buf := make([]byte, f.Length)
	for i := range buf {
		buf[i] = ' '
	}
	if len(s) > f.Length {
		s = s[:f.Length]
	}
	switch f.Type {
	case Number, Float:
		copy(buf[f.Length-len(s):], s)
	default:
		copy(buf, s)
	}
	return buf
}
