package shp

import (
	"bytes"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		FileLength: 1234,
		ShapeType:  PolygonZ,
		Bounds:     Bounds{MinX: -10, MinY: -5, MaxX: 10, MaxY: 5},
		ZRange:     Range{Min: 0, Max: 100},
		MRange:     Range{Min: -1e38, Max: -1e38},
	}

	var buf bytes.Buffer
	if err := WriteHeader(&buf, h); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if buf.Len() != HeaderSize {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), HeaderSize)
	}

	got, err := ReadHeader(&buf)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if got != h {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, h)
	}
}

func TestReadHeaderRejectsBadFileCode(t *testing.T) {
	buf := make([]byte, HeaderSize)
	var badCode uint32 = 0xDEADBEEF
	putInt32BE(buf[0:4], int32(badCode))
	_, err := ReadHeader(bytes.NewReader(buf))
	var target *ErrInvalidFileCode
	if !asError(err, &target) {
		t.Fatalf("want ErrInvalidFileCode, got %v", err)
	}
}

func TestReadHeaderRejectsBadVersion(t *testing.T) {
	buf := make([]byte, HeaderSize)
	putInt32BE(buf[0:4], fileCode)
	putInt32LE(buf[28:32], 42)
	_, err := ReadHeader(bytes.NewReader(buf))
	var target *ErrUnsupportedVersion
	if !asError(err, &target) {
		t.Fatalf("want ErrUnsupportedVersion, got %v", err)
	}
}

func TestReadHeaderRejectsBadShapeType(t *testing.T) {
	buf := make([]byte, HeaderSize)
	putInt32BE(buf[0:4], fileCode)
	putInt32LE(buf[28:32], fileVersion)
	putInt32LE(buf[32:36], 7)
	_, err := ReadHeader(bytes.NewReader(buf))
	var target *ErrUnsupportedShapeType
	if !asError(err, &target) {
		t.Fatalf("want ErrUnsupportedShapeType, got %v", err)
	}
}

// asError is a small errors.As shim so tests read naturally without an
// extra top-level import line per case.
func asError[T error](err error, target *T) bool {
	if e, ok := err.(T); ok {
		*target = e
		return true
	}
	return false
}
