package shapefile

import (
	"bytes"
	"testing"
)

func TestReadAsFiltersAndAsserts(t *testing.T) {
	shapes := []Shape{
		PointShape{X: 1, Y: 2},
		PointShape{X: 3, Y: 4},
	}
	var shp, shx bytes.Buffer
	w := NewWriter(&shp, &shx, Point)
	if err := w.WriteShapes(shapes); err != nil {
		t.Fatalf("WriteShapes: %v", err)
	}

	r, err := OpenShp(bytes.NewReader(shp.Bytes()))
	if err != nil {
		t.Fatalf("OpenShp: %v", err)
	}

	points, err := ReadAs[PointShape](r)
	if err != nil {
		t.Fatalf("ReadAs[PointShape]: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}

	if _, err := ReadAs[PolygonShape](r); err == nil {
		t.Fatal("expected ErrMismatchShapeType for mismatched ReadAs")
	}
}

func TestShapesInBounds(t *testing.T) {
	shapes := []Shape{
		PointShape{X: 0, Y: 0},
		PointShape{X: 100, Y: 100},
	}
	var shp, shx bytes.Buffer
	w := NewWriter(&shp, &shx, Point)
	if err := w.WriteShapes(shapes); err != nil {
		t.Fatalf("WriteShapes: %v", err)
	}

	r, err := OpenShp(bytes.NewReader(shp.Bytes()))
	if err != nil {
		t.Fatalf("OpenShp: %v", err)
	}

	near := r.ShapesInBounds(Bounds{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1})
	if len(near) != 1 {
		t.Fatalf("got %d shapes near origin, want 1", len(near))
	}
	if got := near[0].(PointShape); got.X != 0 || got.Y != 0 {
		t.Fatalf("got %+v, want {0 0}", got)
	}
}

func TestWriteShapesRejectsMismatchedType(t *testing.T) {
	var shp, shx bytes.Buffer
	w := NewWriter(&shp, &shx, Point)
	err := w.WriteShapes([]Shape{PolygonShape{Parts: []int32{0}, Points: []XY{{0, 0}}}})
	if err == nil {
		t.Fatal("expected ErrMismatchShapeType")
	}
}
