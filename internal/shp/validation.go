package shp

// Validate checks a shape's structural invariants beyond what decoding
// already enforces: part-index monotonicity for PolyLine/Polygon/
// MultiPatch kinds, and a non-empty point array for every multi-point
// kind (IsMulti). Ring closure is not enforced here; callers that need
// strict topology should check it explicitly, since real-world
// shapefiles routinely ship unclosed rings.
func Validate(s Shape) error {
	if s.ShapeType().IsMulti() && pointCount(s) == 0 {
		return &ErrMalformedRecord{Reason: "multi-point shape has no points"}
	}
	switch v := s.(type) {
	case PolyLineShape:
		return validateParts(v.Parts, len(v.Points))
	case PolyLineZShape:
		return validateParts(v.Parts, len(v.Points))
	case PolyLineMShape:
		return validateParts(v.Parts, len(v.Points))
	case PolygonShape:
		return validateParts(v.Parts, len(v.Points))
	case PolygonZShape:
		return validateParts(v.Parts, len(v.Points))
	case PolygonMShape:
		return validateParts(v.Parts, len(v.Points))
	case MultiPatchShape:
		if len(v.PartTypes) != len(v.Parts) {
			return &ErrMalformedRecord{Reason: "part type count does not match part count"}
		}
		return validateParts(v.Parts, len(v.Points))
	default:
		return nil
	}
}

// pointCount returns the number of points carried by shapes that have a
// Points field; zero for Null and the single-point Point variants.
func pointCount(s Shape) int {
	switch v := s.(type) {
	case MultiPointShape:
		return len(v.Points)
	case MultiPointZShape:
		return len(v.Points)
	case MultiPointMShape:
		return len(v.Points)
	case PolyLineShape:
		return len(v.Points)
	case PolyLineZShape:
		return len(v.Points)
	case PolyLineMShape:
		return len(v.Points)
	case PolygonShape:
		return len(v.Points)
	case PolygonZShape:
		return len(v.Points)
	case PolygonMShape:
		return len(v.Points)
	case MultiPatchShape:
		return len(v.Points)
	default:
		return 0
	}
}
