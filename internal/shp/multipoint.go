package shp

// MultiPointShape is an unordered set of X/Y points sharing one bbox.
type MultiPointShape struct {
	Box    Bounds
	Points []XY
}

func (MultiPointShape) ShapeType() ShapeType { return MultiPoint }
func (m MultiPointShape) Bounds() Bounds { return m.Box }
func (m MultiPointShape) contentLength() int  { return 4 + 32 + 4 + 16*len(m.Points) }

func (m MultiPointShape) writeContent(w *byteWriter) {
	w.bounds(m.Box)
	w.int32LE(int32(len(m.Points)))
	w.points(m.Points)
}

func readMultiPoint(r *byteReader) (Shape, error) {
	box, ok := r.bounds()
	if !ok {
		return nil, errShortMultiPoint
	}
	n, ok := r.int32LE()
	if !ok || n < 0 {
		return nil, errShortMultiPoint
	}
	pts, ok := r.points(n)
	if !ok {
		return nil, errShortMultiPoint
	}
	return MultiPointShape{Box: box, Points: pts}, nil
}

// MultiPointZShape adds a Z range/array and optional M range/array.
type MultiPointZShape struct {
	Box    Bounds
	Points []XY
	ZRange Range
	Z      []float64
	MRange Range
	M      []float64 // nil when the optional M trailer is absent
}

func (MultiPointZShape) ShapeType() ShapeType { return MultiPointZ }
func (m MultiPointZShape) Bounds() Bounds { return m.Box }

func (m MultiPointZShape) contentLength() int {
	n := len(m.Points)
	length := 4 + 32 + 4 + 16*n + 16 + 8*n
	if m.M != nil {
		length += 16 + 8*n
	}
	return length
}

func (m MultiPointZShape) writeContent(w *byteWriter) {
	w.bounds(m.Box)
	w.int32LE(int32(len(m.Points)))
	w.points(m.Points)
	w.float64LE(m.ZRange.Min)
	w.float64LE(m.ZRange.Max)
	w.ordinates(m.Z)
	if m.M != nil {
		w.float64LE(m.MRange.Min)
		w.float64LE(m.MRange.Max)
		w.ordinates(m.M)
	}
}

func readMultiPointZ(r *byteReader) (Shape, error) {
	box, ok := r.bounds()
	if !ok {
		return nil, errShortMultiPoint
	}
	n, ok := r.int32LE()
	if !ok || n < 0 {
		return nil, errShortMultiPoint
	}
	pts, ok := r.points(n)
	if !ok {
		return nil, errShortMultiPoint
	}
	zmin, ok := r.float64LE()
	if !ok {
		return nil, errShortMultiPoint
	}
	zmax, ok := r.float64LE()
	if !ok {
		return nil, errShortMultiPoint
	}
	z, ok := r.ordinates(n)
	if !ok {
		return nil, errShortMultiPoint
	}
	shape := MultiPointZShape{Box: box, Points: pts, ZRange: Range{Min: zmin, Max: zmax}, Z: z}
	// The M array is optional: a conforming writer may omit it entirely
	// when every point's M is absent.
	if r.remaining() >= 16+8*int(n) {
		mmin, _ := r.float64LE()
		mmax, _ := r.float64LE()
		m, ok := r.ordinates(n)
		if !ok {
			return nil, errShortMultiPoint
		}
		shape.MRange = Range{Min: mmin, Max: mmax}
		shape.M = m
	}
	return shape, nil
}

// MultiPointMShape adds an M range/array to a multipoint.
type MultiPointMShape struct {
	Box    Bounds
	Points []XY
	MRange Range
	M      []float64
}

func (MultiPointMShape) ShapeType() ShapeType { return MultiPointM }
func (m MultiPointMShape) Bounds() Bounds { return m.Box }

func (m MultiPointMShape) contentLength() int {
	n := len(m.Points)
	return 4 + 32 + 4 + 16*n + 16 + 8*n
}

func (m MultiPointMShape) writeContent(w *byteWriter) {
	w.bounds(m.Box)
	w.int32LE(int32(len(m.Points)))
	w.points(m.Points)
	w.float64LE(m.MRange.Min)
	w.float64LE(m.MRange.Max)
	w.ordinates(m.M)
}

func readMultiPointM(r *byteReader) (Shape, error) {
	box, ok := r.bounds()
	if !ok {
		return nil, errShortMultiPoint
	}
	n, ok := r.int32LE()
	if !ok || n < 0 {
		return nil, errShortMultiPoint
	}
	pts, ok := r.points(n)
	if !ok {
		return nil, errShortMultiPoint
	}
	mmin, ok := r.float64LE()
	if !ok {
		return nil, errShortMultiPoint
	}
	mmax, ok := r.float64LE()
	if !ok {
		return nil, errShortMultiPoint
	}
	m, ok := r.ordinates(n)
	if !ok {
		return nil, errShortMultiPoint
	}
	return MultiPointMShape{Box: box, Points: pts, MRange: Range{Min: mmin, Max: mmax}, M: m}, nil
}

var errShortMultiPoint = &ErrMalformedRecord{Reason: "multipoint record truncated"}
