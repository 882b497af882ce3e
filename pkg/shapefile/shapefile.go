package shapefile

import (
	"fmt"
	"io"
	"os"

	"github.com/beetlebugorg/shapefile/internal/shp"
)

// Re-exported geometry types so callers never need to import
// internal/shp directly.
type (
	Shape       = shp.Shape
	ShapeType   = shp.ShapeType
	XY          = shp.XY
	Bounds      = shp.Bounds
	Range       = shp.Range
	Header      = shp.Header
	PartType    = shp.PartType
	NullShape   = shp.NullShape
	PointShape  = shp.PointShape
	PointZShape = shp.PointZShape
	PointMShape = shp.PointMShape

	MultiPointShape  = shp.MultiPointShape
	MultiPointZShape = shp.MultiPointZShape
	MultiPointMShape = shp.MultiPointMShape

	PolyLineShape  = shp.PolyLineShape
	PolyLineZShape = shp.PolyLineZShape
	PolyLineMShape = shp.PolyLineMShape

	PolygonShape  = shp.PolygonShape
	PolygonZShape = shp.PolygonZShape
	PolygonMShape = shp.PolygonMShape

	MultiPatchShape = shp.MultiPatchShape

	ShapeIndexEntry = shp.ShapeIndexEntry
)

const (
	Null        = shp.Null
	Point       = shp.Point
	PolyLine    = shp.PolyLine
	Polygon     = shp.Polygon
	MultiPoint  = shp.MultiPoint
	PointZ      = shp.PointZ
	PolyLineZ   = shp.PolyLineZ
	PolygonZ    = shp.PolygonZ
	MultiPointZ = shp.MultiPointZ
	PointM      = shp.PointM
	PolyLineM   = shp.PolyLineM
	PolygonM    = shp.PolygonM
	MultiPointM = shp.MultiPointM
	MultiPatch  = shp.MultiPatch
)

// Re-exported error types.
type (
	ErrInvalidFileCode       = shp.ErrInvalidFileCode
	ErrUnsupportedVersion    = shp.ErrUnsupportedVersion
	ErrUnsupportedShapeType  = shp.ErrUnsupportedShapeType
	ErrMismatchShapeType     = shp.ErrMismatchShapeType
	ErrMalformedRecord       = shp.ErrMalformedRecord
	ErrFileTooLarge          = shp.ErrFileTooLarge
	ErrMismatchedSinkLengths = shp.ErrMismatchedSinkLengths
)

// NoData reports whether v is the Esri sentinel for an absent M/Z value.
func NoData(v float64) bool { return shp.NoData(v) }

// Validate checks a shape's structural invariants (part-index
// monotonicity for PolyLine/Polygon/MultiPatch kinds).
func Validate(s Shape) error { return shp.Validate(s) }

// ReadIndex decodes a .shx stream into its header and ordered entries.
func ReadIndex(r io.Reader) (Header, []ShapeIndexEntry, error) {
	return shp.ReadIndex(r)
}

// Reader holds a fully decoded shapefile: header, shapes in file order,
// and an optional spatial index built lazily on first bounds query.
type Reader struct {
	header Header
	shapes []Shape
	index  *spatialIndex
}

// OpenShp reads a .shp stream in full.
func OpenShp(r io.Reader) (*Reader, error) {
	header, records, err := shp.ReadAll(r)
	if err != nil {
		return nil, err
	}
	shapes := make([]Shape, len(records))
	for i, rec := range records {
		shapes[i] = rec.Shape
	}
	return &Reader{header: header, shapes: shapes}, nil
}

// Open reads the .shp file at path (the .shx and .dbf companions, if
// present alongside it, are not required for this call; use OpenTriple
// to also load attributes).
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("shapefile: %w", err)
	}
	defer f.Close()
	return OpenShp(f)
}

// Header returns the file-level header this reader decoded.
func (r *Reader) Header() Header { return r.header }

// Shapes returns every decoded shape in file order.
func (r *Reader) Shapes() []Shape { return r.shapes }

// ReadAs filters and asserts every shape to T, failing with
// ErrMismatchShapeType if the header's declared type does not match
// T's zero value's ShapeType().
func ReadAs[T Shape](r *Reader) ([]T, error) {
	var zero T
	if r.header.ShapeType != zero.ShapeType() {
		return nil, &ErrMismatchShapeType{Requested: zero.ShapeType(), Actual: r.header.ShapeType}
	}
	out := make([]T, 0, len(r.shapes))
	for _, s := range r.shapes {
		if _, isNull := s.(NullShape); isNull {
			continue
		}
		t, ok := s.(T)
		if !ok {
			return nil, &ErrMismatchShapeType{Requested: zero.ShapeType(), Actual: s.ShapeType()}
		}
		out = append(out, t)
	}
	return out, nil
}

// ShapesInBounds returns every shape whose bounding box intersects b,
// building the reader's spatial index on first use.
func (r *Reader) ShapesInBounds(b Bounds) []Shape {
	if r.index == nil {
		r.index = newSpatialIndex(r.shapes)
	}
	return r.index.query(b)
}

// Writer streams shapes to a .shp/.shx pair, running the two-pass
// algorithm on WriteShapes. See path.go for the .dbf-aware variant
// opened via Create.
type Writer struct {
	shapeType shp.ShapeType
	shp       io.Writer
	shx       io.Writer
}

// NewWriter constructs a Writer over already-open sinks. shapeType fixes
// the header's declared type; WriteShapes rejects a shape whose tag
// disagrees, matching every shapefile writer's single-type-per-file
// convention.
func NewWriter(shpW, shxW io.Writer, shapeType ShapeType) *Writer {
	return &Writer{shapeType: shapeType, shp: shpW, shx: shxW}
}

// WriteShapes encodes shapes as the complete .shp/.shx pair.
func (w *Writer) WriteShapes(shapes []Shape) error {
	for _, s := range shapes {
		if _, isNull := s.(NullShape); isNull {
			continue
		}
		if s.ShapeType() != w.shapeType {
			return &ErrMismatchShapeType{Requested: w.shapeType, Actual: s.ShapeType()}
		}
	}
	return shp.WriteShapes(w.shp, w.shx, w.shapeType, shapes)
}
