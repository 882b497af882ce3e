package shp

import (
	"bytes"
	"io"
	"testing"
)

func TestWriteReadRecordPoint(t *testing.T) {
	var buf bytes.Buffer
	p := PointShape{X: 1.5, Y: -2.5}
	if _, err := WriteRecord(&buf, 1, p); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}

	rec, err := ReadRecord(&buf)
	if err != nil {
		t.Fatalf("ReadRecord: %v", err)
	}
	if rec.Number != 1 {
		t.Fatalf("record number = %d, want 1", rec.Number)
	}
	got, ok := rec.Shape.(PointShape)
	if !ok {
		t.Fatalf("shape type = %T, want PointShape", rec.Shape)
	}
	if got != p {
		t.Fatalf("got %+v, want %+v", got, p)
	}
}

func TestReadRecordDetectsLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRecordHeader(&buf, RecordHeader{RecordNumber: 1, ContentLength: 20}); err != nil {
		t.Fatal(err)
	}
	content := make([]byte, 40)
	putInt32LE(content[0:4], int32(Point))
	putFloat64LE(content[4:12], 1.0)
	putFloat64LE(content[12:20], 2.0)
	// content declares 20 words (40 bytes) but a Point only needs 16
	// bytes of payload after the tag; the remaining bytes are garbage
	// that should trip the consumed-vs-declared check.
	buf.Write(content)

	_, err := ReadRecord(&buf)
	var mismatch *ErrLengthMismatch
	if !asError(err, &mismatch) {
		t.Fatalf("want ErrLengthMismatch, got %v", err)
	}
}

func TestReadRecordEOFAtBoundary(t *testing.T) {
	_, err := ReadRecord(bytes.NewReader(nil))
	if err != io.EOF {
		t.Fatalf("got %v, want io.EOF", err)
	}
}

func TestValidatePartMonotonicity(t *testing.T) {
	pts := []XY{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	good := PolyLineShape{Parts: []int32{0, 2}, Points: pts}
	if err := Validate(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := PolyLineShape{Parts: []int32{0, 0}, Points: pts}
	if err := Validate(bad); err == nil {
		t.Fatal("expected error for non-increasing parts")
	}

	badStart := PolyLineShape{Parts: []int32{1}, Points: pts}
	if err := Validate(badStart); err == nil {
		t.Fatal("expected error for parts not starting at 0")
	}
}
