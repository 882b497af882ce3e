package shp

import (
	"errors"
	"fmt"
	"io"
)

// Reader sequentially decodes records from a .shp stream. Construction
// reads and validates the header; every subsequent call to Next reads
// exactly one record, so callers that never finish iterating never pay
// for records they do not need.
type Reader struct {
	r      io.Reader
	Header Header
}

// NewReader reads the 100-byte header from r and returns a Reader
// positioned at the first record.
func NewReader(r io.Reader) (*Reader, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	return &Reader{r: r, Header: h}, nil
}

// Next returns the next record, io.EOF when the stream is exhausted, or
// a decode error. The returned shape may be a NullShape.
func (rd *Reader) Next() (Record, error) {
	rec, err := ReadRecord(rd.r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, err
	}
	return rec, nil
}

// ReadAll drains the reader, collecting every record. Validate is
// applied to each shape so a single malformed record fails the whole
// read rather than silently truncating the result. Each record's tag
// must match the header's declared shape type (a Null record is exempt
// either way), and the running byte total of every record header plus
// content must equal the file header's declared FileLength.
func ReadAll(r io.Reader) (Header, []Record, error) {
	rd, err := NewReader(r)
	if err != nil {
		return Header{}, nil, err
	}
	var records []Record
	fileWords := int64(HeaderSize / 2)
	for {
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Header{}, nil, err
		}
		if _, isNull := rec.Shape.(NullShape); !isNull && rec.Shape.ShapeType() != rd.Header.ShapeType {
			return Header{}, nil, &ErrMalformedRecord{
				RecordNumber: rec.Number,
				Reason:       fmt.Sprintf("shape type %s does not match header type %s", rec.Shape.ShapeType(), rd.Header.ShapeType),
			}
		}
		if err := Validate(rec.Shape); err != nil {
			return Header{}, nil, err
		}
		fileWords += 4 + int64(rec.ContentLength)
		records = append(records, rec)
	}
	if fileWords != int64(rd.Header.FileLength) {
		return Header{}, nil, &ErrFileLengthMismatch{Declared: int64(rd.Header.FileLength), Computed: fileWords}
	}
	return rd.Header, records, nil
}

// ReadIndex decodes a .shx stream into its ordered list of entries. The
// .shx header is byte-identical in shape to the .shp header; only the
// trailing entry table differs.
func ReadIndex(r io.Reader) (Header, []ShapeIndexEntry, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return Header{}, nil, err
	}
	var entries []ShapeIndexEntry
	for {
		buf := make([]byte, 8)
		if err := readFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Header{}, nil, err
		}
		entries = append(entries, ShapeIndexEntry{
			Offset:        readInt32BE(buf[0:4]),
			ContentLength: readInt32BE(buf[4:8]),
		})
	}
	return h, entries, nil
}
