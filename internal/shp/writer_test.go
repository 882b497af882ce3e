package shp

import (
	"bytes"
	"testing"
)

func TestWriteShapesRoundTrip(t *testing.T) {
	shapes := []Shape{
		PolygonShape{
			Box:    Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
			Parts:  []int32{0},
			Points: []XY{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}},
		},
		PolygonShape{
			Box:    Bounds{MinX: 20, MinY: 20, MaxX: 30, MaxY: 30},
			Parts:  []int32{0},
			Points: []XY{{20, 20}, {20, 30}, {30, 30}, {30, 20}, {20, 20}},
		},
	}

	var shp, shx bytes.Buffer
	if err := WriteShapes(&shp, &shx, Polygon, shapes); err != nil {
		t.Fatalf("WriteShapes: %v", err)
	}

	header, records, err := ReadAll(bytes.NewReader(shp.Bytes()))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if header.ShapeType != Polygon {
		t.Fatalf("header shape type = %s, want Polygon", header.ShapeType)
	}
	wantBounds := Bounds{MinX: 0, MinY: 0, MaxX: 30, MaxY: 30}
	if header.Bounds != wantBounds {
		t.Fatalf("aggregated bounds = %+v, want %+v", header.Bounds, wantBounds)
	}
	if len(records) != len(shapes) {
		t.Fatalf("got %d records, want %d", len(records), len(shapes))
	}
	for i, rec := range records {
		if rec.Number != int32(i+1) {
			t.Fatalf("record %d has number %d", i, rec.Number)
		}
		got, ok := rec.Shape.(PolygonShape)
		if !ok {
			t.Fatalf("record %d is %T, want PolygonShape", i, rec.Shape)
		}
		want := shapes[i].(PolygonShape)
		if !pointsEqual(got.Points, want.Points) {
			t.Fatalf("record %d points = %v, want %v", i, got.Points, want.Points)
		}
	}

	idxHeader, entries, err := ReadIndex(bytes.NewReader(shx.Bytes()))
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}
	if idxHeader.ShapeType != Polygon {
		t.Fatalf("index header shape type = %s, want Polygon", idxHeader.ShapeType)
	}
	if len(entries) != len(shapes) {
		t.Fatalf("got %d index entries, want %d", len(entries), len(shapes))
	}
	if entries[0].Offset != HeaderSize/2 {
		t.Fatalf("first entry offset = %d, want %d", entries[0].Offset, HeaderSize/2)
	}
}

func TestWriteShapesEmptyFile(t *testing.T) {
	var shp, shx bytes.Buffer
	if err := WriteShapes(&shp, &shx, Point, nil); err != nil {
		t.Fatalf("WriteShapes: %v", err)
	}
	header, records, err := ReadAll(bytes.NewReader(shp.Bytes()))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
	if header.Bounds != (Bounds{}) {
		t.Fatalf("empty file bounds = %+v, want zero value", header.Bounds)
	}
}

func TestReadAllRejectsTypeMismatch(t *testing.T) {
	var shp, shx bytes.Buffer
	shapes := []Shape{PointShape{X: 1, Y: 1}}
	if err := WriteShapes(&shp, &shx, Point, shapes); err != nil {
		t.Fatalf("WriteShapes: %v", err)
	}
	// Overwrite the header's shape type so it disagrees with the one
	// record actually on the wire.
	buf := shp.Bytes()
	putInt32LE(buf[32:36], int32(Polygon))

	_, _, err := ReadAll(bytes.NewReader(buf))
	var mismatch *ErrMalformedRecord
	if !asError(err, &mismatch) {
		t.Fatalf("want ErrMalformedRecord, got %v", err)
	}
}

func TestReadAllAllowsNullInNonNullFile(t *testing.T) {
	var shp, shx bytes.Buffer
	shapes := []Shape{PointShape{X: 1, Y: 1}, NullShape{}}
	if err := WriteShapes(&shp, &shx, Point, shapes); err != nil {
		t.Fatalf("WriteShapes: %v", err)
	}
	_, records, err := ReadAll(bytes.NewReader(shp.Bytes()))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}

func TestReadAllDetectsFileLengthMismatch(t *testing.T) {
	var shp, shx bytes.Buffer
	shapes := []Shape{PointShape{X: 1, Y: 1}}
	if err := WriteShapes(&shp, &shx, Point, shapes); err != nil {
		t.Fatalf("WriteShapes: %v", err)
	}
	// Corrupt the header's declared file length so it disagrees with the
	// body actually on the wire.
	buf := shp.Bytes()
	putInt32BE(buf[24:28], 9999)

	_, _, err := ReadAll(bytes.NewReader(buf))
	var mismatch *ErrFileLengthMismatch
	if !asError(err, &mismatch) {
		t.Fatalf("want ErrFileLengthMismatch, got %v", err)
	}
}

func TestAggregateHeaderSkipsNoData(t *testing.T) {
	shapes := []Shape{
		PointMShape{X: 0, Y: 0, M: noDataThreshold},
		PointMShape{X: 1, Y: 1, M: 5},
	}
	h := aggregateHeader(PointM, shapes)
	if h.MRange.Min != 5 || h.MRange.Max != 5 {
		t.Fatalf("m range = %+v, want {5 5}", h.MRange)
	}
}

func TestAggregateHeaderSkipsNullBounds(t *testing.T) {
	shapes := []Shape{
		PointShape{X: 122, Y: 37},
		NullShape{},
	}
	h := aggregateHeader(Point, shapes)
	want := Bounds{MinX: 122, MinY: 37, MaxX: 122, MaxY: 37}
	if h.Bounds != want {
		t.Fatalf("bounds = %+v, want %+v", h.Bounds, want)
	}
}

func pointsEqual(a, b []XY) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
