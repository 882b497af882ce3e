package shp

import "testing"

func TestValidateRejectsEmptyMultiPoint(t *testing.T) {
	err := Validate(MultiPointShape{Box: Bounds{}, Points: nil})
	var malformed *ErrMalformedRecord
	if !asError(err, &malformed) {
		t.Fatalf("want ErrMalformedRecord, got %v", err)
	}
}

func TestValidateAllowsSinglePoint(t *testing.T) {
	if err := Validate(PointShape{X: 1, Y: 2}); err != nil {
		t.Fatalf("Validate(PointShape): %v", err)
	}
}

func TestValidateAllowsPopulatedMultiPoint(t *testing.T) {
	shape := MultiPointShape{Box: Bounds{MaxX: 1, MaxY: 1}, Points: []XY{{0, 0}, {1, 1}}}
	if err := Validate(shape); err != nil {
		t.Fatalf("Validate(MultiPointShape): %v", err)
	}
}
