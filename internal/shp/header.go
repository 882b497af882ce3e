package shp

import "io"

const (
	fileCode    int32 = 0x0000270A
	fileVersion int32 = 1000

	// HeaderSize is the fixed length, in bytes, of the .shp/.shx header.
	HeaderSize = 100
)

// Header is the 100-byte preamble shared by .shp and .shx.
// FileLength is the total file length in 16-bit words, including the
// header itself.
type Header struct {
	FileLength int32
	ShapeType  ShapeType
	Bounds     Bounds
	ZRange     Range
	MRange     Range
}

// ReadHeader parses the fixed 100-byte header from r.
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderSize)
	if err := readFull(r, buf); err != nil {
		return Header{}, err
	}
	return parseHeader(buf)
}

func parseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, &ErrMalformedRecord{Reason: "header shorter than 100 bytes"}
	}
	if got := readInt32BE(buf[0:4]); got != fileCode {
		return Header{}, &ErrInvalidFileCode{Got: got}
	}
	fileLength := readInt32BE(buf[24:28])
	version := readInt32LE(buf[28:32])
	if version != fileVersion {
		return Header{}, &ErrUnsupportedVersion{Got: version}
	}
	shapeType := ShapeType(readInt32LE(buf[32:36]))
	if !shapeType.Valid() {
		return Header{}, &ErrUnsupportedShapeType{Got: int32(shapeType)}
	}

	h := Header{
		FileLength: fileLength,
		ShapeType:  shapeType,
		Bounds: Bounds{
			MinX: readFloat64LE(buf[36:44]),
			MinY: readFloat64LE(buf[44:52]),
			MaxX: readFloat64LE(buf[52:60]),
			MaxY: readFloat64LE(buf[60:68]),
		},
		ZRange: Range{
			Min: readFloat64LE(buf[68:76]),
			Max: readFloat64LE(buf[76:84]),
		},
		MRange: Range{
			Min: readFloat64LE(buf[84:92]),
			Max: readFloat64LE(buf[92:100]),
		},
	}
	return h, nil
}

// WriteHeader writes the fixed 100-byte header to w.
func WriteHeader(w io.Writer, h Header) error {
	buf := make([]byte, HeaderSize)
	putInt32BE(buf[0:4], fileCode)
	// bytes [4:24] are five reserved big-endian words, left zero.
	putInt32BE(buf[24:28], h.FileLength)
	putInt32LE(buf[28:32], fileVersion)
	putInt32LE(buf[32:36], int32(h.ShapeType))

	putFloat64LE(buf[36:44], h.Bounds.MinX)
	putFloat64LE(buf[44:52], h.Bounds.MinY)
	putFloat64LE(buf[52:60], h.Bounds.MaxX)
	putFloat64LE(buf[60:68], h.Bounds.MaxY)
	putFloat64LE(buf[68:76], h.ZRange.Min)
	putFloat64LE(buf[76:84], h.ZRange.Max)
	putFloat64LE(buf[84:92], h.MRange.Min)
	putFloat64LE(buf[92:100], h.MRange.Max)

	_, err := w.Write(buf)
	return err
}
