package shp

// PolyLineShape is an ordered collection of one or more parts, each a
// polyline of two or more points.
type PolyLineShape struct {
	Box    Bounds
	Parts  []int32
	Points []XY
}

func (PolyLineShape) ShapeType() ShapeType { return PolyLine }
func (p PolyLineShape) Bounds() Bounds { return p.Box }

func (p PolyLineShape) contentLength() int {
	return 4 + 32 + 4 + 4 + 4*len(p.Parts) + 16*len(p.Points)
}

func (p PolyLineShape) writeContent(w *byteWriter) {
	w.bounds(p.Box)
	w.int32LE(int32(len(p.Parts)))
	w.int32LE(int32(len(p.Points)))
	w.parts(p.Parts)
	w.points(p.Points)
}

func readPolyLineBase(r *byteReader) (Bounds, []int32, []XY, error) {
	box, ok := r.bounds()
	if !ok {
		return Bounds{}, nil, nil, errShortPolyLine
	}
	numParts, ok := r.int32LE()
	if !ok || numParts < 0 {
		return Bounds{}, nil, nil, errShortPolyLine
	}
	numPoints, ok := r.int32LE()
	if !ok || numPoints < 0 {
		return Bounds{}, nil, nil, errShortPolyLine
	}
	parts, ok := r.parts(numParts)
	if !ok {
		return Bounds{}, nil, nil, errShortPolyLine
	}
	pts, ok := r.points(numPoints)
	if !ok {
		return Bounds{}, nil, nil, errShortPolyLine
	}
	return box, parts, pts, nil
}

func readPolyLine(r *byteReader) (Shape, error) {
	box, parts, pts, err := readPolyLineBase(r)
	if err != nil {
		return nil, err
	}
	return PolyLineShape{Box: box, Parts: parts, Points: pts}, nil
}

// PolyLineZShape adds a Z range/array and optional M range/array.
type PolyLineZShape struct {
	Box    Bounds
	Parts  []int32
	Points []XY
	ZRange Range
	Z      []float64
	MRange Range
	M      []float64
}

func (PolyLineZShape) ShapeType() ShapeType { return PolyLineZ }
func (p PolyLineZShape) Bounds() Bounds { return p.Box }

func (p PolyLineZShape) contentLength() int {
	n := len(p.Points)
	length := 4 + 32 + 4 + 4 + 4*len(p.Parts) + 16*n + 16 + 8*n
	if p.M != nil {
		length += 16 + 8*n
	}
	return length
}

func (p PolyLineZShape) writeContent(w *byteWriter) {
	w.bounds(p.Box)
	w.int32LE(int32(len(p.Parts)))
	w.int32LE(int32(len(p.Points)))
	w.parts(p.Parts)
	w.points(p.Points)
	w.float64LE(p.ZRange.Min)
	w.float64LE(p.ZRange.Max)
	w.ordinates(p.Z)
	if p.M != nil {
		w.float64LE(p.MRange.Min)
		w.float64LE(p.MRange.Max)
		w.ordinates(p.M)
	}
}

func readPolyLineZ(r *byteReader) (Shape, error) {
	box, parts, pts, err := readPolyLineBase(r)
	if err != nil {
		return nil, err
	}
	n := int32(len(pts))
	zmin, ok := r.float64LE()
	if !ok {
		return nil, errShortPolyLine
	}
	zmax, ok := r.float64LE()
	if !ok {
		return nil, errShortPolyLine
	}
	z, ok := r.ordinates(n)
	if !ok {
		return nil, errShortPolyLine
	}
	shape := PolyLineZShape{Box: box, Parts: parts, Points: pts, ZRange: Range{Min: zmin, Max: zmax}, Z: z}
	if r.remaining() >= 16+8*int(n) {
		mmin, _ := r.float64LE()
		mmax, _ := r.float64LE()
		m, ok := r.ordinates(n)
		if !ok {
			return nil, errShortPolyLine
		}
		shape.MRange = Range{Min: mmin, Max: mmax}
		shape.M = m
	}
	return shape, nil
}

// PolyLineMShape adds an M range/array.
type PolyLineMShape struct {
	Box    Bounds
	Parts  []int32
	Points []XY
	MRange Range
	M      []float64
}

func (PolyLineMShape) ShapeType() ShapeType { return PolyLineM }
func (p PolyLineMShape) Bounds() Bounds { return p.Box }

func (p PolyLineMShape) contentLength() int {
	n := len(p.Points)
	return 4 + 32 + 4 + 4 + 4*len(p.Parts) + 16*n + 16 + 8*n
}

func (p PolyLineMShape) writeContent(w *byteWriter) {
	w.bounds(p.Box)
	w.int32LE(int32(len(p.Parts)))
	w.int32LE(int32(len(p.Points)))
	w.parts(p.Parts)
	w.points(p.Points)
	w.float64LE(p.MRange.Min)
	w.float64LE(p.MRange.Max)
	w.ordinates(p.M)
}

func readPolyLineM(r *byteReader) (Shape, error) {
	box, parts, pts, err := readPolyLineBase(r)
	if err != nil {
		return nil, err
	}
	n := int32(len(pts))
	mmin, ok := r.float64LE()
	if !ok {
		return nil, errShortPolyLine
	}
	mmax, ok := r.float64LE()
	if !ok {
		return nil, errShortPolyLine
	}
	m, ok := r.ordinates(n)
	if !ok {
		return nil, errShortPolyLine
	}
	return PolyLineMShape{Box: box, Parts: parts, Points: pts, MRange: Range{Min: mmin, Max: mmax}, M: m}, nil
}

var errShortPolyLine = &ErrMalformedRecord{Reason: "polyline record truncated"}

// validateParts enforces the monotonicity invariant shared by PolyLine,
// Polygon, and MultiPatch: parts[0] == 0, strictly increasing, and the
// final part starts before the point count ends.
func validateParts(parts []int32, numPoints int) error {
	if len(parts) == 0 {
		return &ErrMalformedRecord{Reason: "no parts"}
	}
	if parts[0] != 0 {
		return &ErrMalformedRecord{Reason: "first part does not start at 0"}
	}
	for i := 1; i < len(parts); i++ {
		if parts[i] <= parts[i-1] {
			return &ErrMalformedRecord{Reason: "part indices are not strictly increasing"}
		}
	}
	if int(parts[len(parts)-1]) >= numPoints {
		return &ErrMalformedRecord{Reason: "last part starts at or beyond the point count"}
	}
	return nil
}
