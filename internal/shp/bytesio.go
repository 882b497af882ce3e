package shp

// byteReader walks a single record's content buffer, tracking how many
// bytes have been consumed so callers can cross-check against the
// record header's declared content length.
type byteReader struct {
	buf []byte
	pos int
}

func newByteReader(buf []byte) *byteReader {
	return &byteReader{buf: buf}
}

func (r *byteReader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *byteReader) consumed() int {
	return r.pos
}

func (r *byteReader) take(n int) ([]byte, bool) {
	if r.remaining() < n {
		return nil, false
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, true
}

func (r *byteReader) int32LE() (int32, bool) {
	b, ok := r.take(4)
	if !ok {
		return 0, false
	}
	return readInt32LE(b), true
}

func (r *byteReader) float64LE() (float64, bool) {
	b, ok := r.take(8)
	if !ok {
		return 0, false
	}
	return readFloat64LE(b), true
}

func (r *byteReader) bounds() (Bounds, bool) {
	minX, ok := r.float64LE()
	if !ok {
		return Bounds{}, false
	}
	minY, ok := r.float64LE()
	if !ok {
		return Bounds{}, false
	}
	maxX, ok := r.float64LE()
	if !ok {
		return Bounds{}, false
	}
	maxY, ok := r.float64LE()
	if !ok {
		return Bounds{}, false
	}
	return Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, true
}

// points reads n consecutive X/Y pairs.
func (r *byteReader) points(n int32) ([]XY, bool) {
	pts := make([]XY, n)
	for i := range pts {
		x, ok := r.float64LE()
		if !ok {
			return nil, false
		}
		y, ok := r.float64LE()
		if !ok {
			return nil, false
		}
		pts[i] = XY{X: x, Y: y}
	}
	return pts, true
}

// ordinates reads n consecutive scalar values (a Z or M column).
func (r *byteReader) ordinates(n int32) ([]float64, bool) {
	vals := make([]float64, n)
	for i := range vals {
		v, ok := r.float64LE()
		if !ok {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

// parts reads n little-endian int32 part-start indices.
func (r *byteReader) parts(n int32) ([]int32, bool) {
	idx := make([]int32, n)
	for i := range idx {
		v, ok := r.int32LE()
		if !ok {
			return nil, false
		}
		idx[i] = v
	}
	return idx, true
}

// byteWriter accumulates a single record's content in wire order.
type byteWriter struct {
	buf []byte
}

func (w *byteWriter) int32LE(v int32) {
	b := make([]byte, 4)
	putInt32LE(b, v)
	w.buf = append(w.buf, b...)
}

func (w *byteWriter) float64LE(v float64) {
	b := make([]byte, 8)
	putFloat64LE(b, v)
	w.buf = append(w.buf, b...)
}

func (w *byteWriter) bounds(b Bounds) {
	w.float64LE(b.MinX)
	w.float64LE(b.MinY)
	w.float64LE(b.MaxX)
	w.float64LE(b.MaxY)
}

func (w *byteWriter) points(pts []XY) {
	for _, p := range pts {
		w.float64LE(p.X)
		w.float64LE(p.Y)
	}
}

func (w *byteWriter) ordinates(vals []float64) {
	for _, v := range vals {
		w.float64LE(v)
	}
}

func (w *byteWriter) parts(idx []int32) {
	for _, v := range idx {
		w.int32LE(v)
	}
}
