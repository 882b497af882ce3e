package shp

// ShapeType is the little-endian int32 tag stored in the file header and
// repeated in every record header.
type ShapeType int32

const (
	Null        ShapeType = 0
	Point       ShapeType = 1
	PolyLine    ShapeType = 3
	Polygon     ShapeType = 5
	MultiPoint  ShapeType = 8
	PointZ      ShapeType = 11
	PolyLineZ   ShapeType = 13
	PolygonZ    ShapeType = 15
	MultiPointZ ShapeType = 18
	PointM      ShapeType = 21
	PolyLineM   ShapeType = 23
	PolygonM    ShapeType = 25
	MultiPointM ShapeType = 28
	MultiPatch  ShapeType = 31
)

var shapeTypeNames = map[ShapeType]string{
	Null:        "Null",
	Point:       "Point",
	PolyLine:    "PolyLine",
	Polygon:     "Polygon",
	MultiPoint:  "MultiPoint",
	PointZ:      "PointZ",
	PolyLineZ:   "PolyLineZ",
	PolygonZ:    "PolygonZ",
	MultiPointZ: "MultiPointZ",
	PointM:      "PointM",
	PolyLineM:   "PolyLineM",
	PolygonM:    "PolygonM",
	MultiPointM: "MultiPointM",
	MultiPatch:  "MultiPatch",
}

func (t ShapeType) String() string {
	if name, ok := shapeTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether t is one of the fourteen kinds the format defines.
func (t ShapeType) Valid() bool {
	_, ok := shapeTypeNames[t]
	return ok
}

// HasZ reports whether records of this type carry a Z range and per-point
// Z ordinates.
func (t ShapeType) HasZ() bool {
	switch t {
	case PointZ, PolyLineZ, PolygonZ, MultiPointZ, MultiPatch:
		return true
	default:
		return false
	}
}

// HasM reports whether records of this type carry an M range and
// per-point M ordinates. Z-flavored types carry M as well as Z; M-flavored
// types carry only M.
func (t ShapeType) HasM() bool {
	switch t {
	case PointZ, PolyLineZ, PolygonZ, MultiPointZ, MultiPatch,
		PointM, PolyLineM, PolygonM, MultiPointM:
		return true
	default:
		return false
	}
}

// HasParts reports whether the variant carries a parts index
// (PolyLine, Polygon, and MultiPatch kinds).
func (t ShapeType) HasParts() bool {
	switch t {
	case PolyLine, PolyLineZ, PolyLineM, Polygon, PolygonZ, PolygonM, MultiPatch:
		return true
	default:
		return false
	}
}

// IsMulti reports whether the variant carries more than one point and so
// has a point count field (everything but Point/PointZ/PointM/Null).
func (t ShapeType) IsMulti() bool {
	switch t {
	case Null, Point, PointZ, PointM:
		return false
	default:
		return true
	}
}
