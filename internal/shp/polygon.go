package shp

// PolygonShape is one or more rings, each a closed loop of four or more
// points with the first and last coincident.
// Ring winding (clockwise outer, counter-clockwise hole) is preserved on
// read but never enforced; Esri readers are expected to tolerate
// malformed winding in the wild.
type PolygonShape struct {
	Box    Bounds
	Parts  []int32
	Points []XY
}

func (PolygonShape) ShapeType() ShapeType { return Polygon }
func (p PolygonShape) Bounds() Bounds { return p.Box }

func (p PolygonShape) contentLength() int {
	return 4 + 32 + 4 + 4 + 4*len(p.Parts) + 16*len(p.Points)
}

func (p PolygonShape) writeContent(w *byteWriter) {
	w.bounds(p.Box)
	w.int32LE(int32(len(p.Parts)))
	w.int32LE(int32(len(p.Points)))
	w.parts(p.Parts)
	w.points(p.Points)
}

func readPolygon(r *byteReader) (Shape, error) {
	box, parts, pts, err := readPolyLineBase(r)
	if err != nil {
		return nil, err
	}
	return PolygonShape{Box: box, Parts: parts, Points: pts}, nil
}

// PolygonZShape adds a Z range/array and optional M range/array.
type PolygonZShape struct {
	Box    Bounds
	Parts  []int32
	Points []XY
	ZRange Range
	Z      []float64
	MRange Range
	M      []float64
}

func (PolygonZShape) ShapeType() ShapeType { return PolygonZ }
func (p PolygonZShape) Bounds() Bounds { return p.Box }

func (p PolygonZShape) contentLength() int {
	n := len(p.Points)
	length := 4 + 32 + 4 + 4 + 4*len(p.Parts) + 16*n + 16 + 8*n
	if p.M != nil {
		length += 16 + 8*n
	}
	return length
}

func (p PolygonZShape) writeContent(w *byteWriter) {
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

func readPolygonZ(r *byteReader) (Shape, error) {
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
	shape := PolygonZShape{Box: box, Parts: parts, Points: pts, ZRange: Range{Min: zmin, Max: zmax}, Z: z}
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

// PolygonMShape adds an M range/array.
type PolygonMShape struct {
	Box    Bounds
	Parts  []int32
	Points []XY
	MRange Range
	M      []float64
}

func (PolygonMShape) ShapeType() ShapeType { return PolygonM }
func (p PolygonMShape) Bounds() Bounds { return p.Box }

func (p PolygonMShape) contentLength() int {
	n := len(p.Points)
	return 4 + 32 + 4 + 4 + 4*len(p.Parts) + 16*n + 16 + 8*n
}

func (p PolygonMShape) writeContent(w *byteWriter) {
	w.bounds(p.Box)
	w.int32LE(int32(len(p.Parts)))
	w.int32LE(int32(len(p.Points)))
	w.parts(p.Parts)
	w.points(p.Points)
	w.float64LE(p.MRange.Min)
	w.float64LE(p.MRange.Max)
	w.ordinates(p.M)
}

func readPolygonM(r *byteReader) (Shape, error) {
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
	return PolygonMShape{Box: box, Parts: parts, Points: pts, MRange: Range{Min: mmin, Max: mmax}, M: m}, nil
}

// ringClosed reports whether points[start:end] begins and ends on the
// same coordinate, per the closed-ring invariant.
func ringClosed(points []XY, start, end int) bool {
	if end-start < 1 {
		return false
	}
	first, last := points[start], points[end-1]
	return first.X == last.X && first.Y == last.Y
}
