package shp

// XY is a single X/Y coordinate pair.
type XY struct {
	X, Y float64
}

// Shape is the tagged union of the fourteen geometry kinds the format
// defines. Every concrete variant below implements it.
type Shape interface {
	ShapeType() ShapeType
	Bounds() Bounds
	contentLength() int
	writeContent(w *byteWriter)
}

func readShapeContent(t ShapeType, r *byteReader) (Shape, error) {
	switch t {
	case Null:
		return NullShape{}, nil
	case Point:
		return readPoint(r)
	case PointZ:
		return readPointZ(r)
	case PointM:
		return readPointM(r)
	case MultiPoint:
		return readMultiPoint(r)
	case MultiPointZ:
		return readMultiPointZ(r)
	case MultiPointM:
		return readMultiPointM(r)
	case PolyLine:
		return readPolyLine(r)
	case PolyLineZ:
		return readPolyLineZ(r)
	case PolyLineM:
		return readPolyLineM(r)
	case Polygon:
		return readPolygon(r)
	case PolygonZ:
		return readPolygonZ(r)
	case PolygonM:
		return readPolygonM(r)
	case MultiPatch:
		return readMultiPatch(r)
	default:
		return nil, &ErrUnsupportedShapeType{Got: int32(t)}
	}
}

// NullShape carries no geometry. Readers must tolerate it anywhere in a
// record stream.
type NullShape struct{}

func (NullShape) ShapeType() ShapeType    { return Null }
func (NullShape) Bounds() Bounds     { return Bounds{} }
func (NullShape) contentLength() int      { return 4 }
func (NullShape) writeContent(w *byteWriter) {}
