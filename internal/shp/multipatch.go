package shp

// PartType tags each part of a MultiPatch with how it should be
// triangulated/rendered.
type PartType int32

const (
	TriangleStrip PartType = 0
	TriangleFan   PartType = 1
	OuterRing     PartType = 2
	InnerRing     PartType = 3
	FirstRing     PartType = 4
	Ring          PartType = 5
)

// MultiPatchShape is a collection of surface patches, each with its own
// part type, always carrying Z.
type MultiPatchShape struct {
	Box       Bounds
	Parts     []int32
	PartTypes []PartType
	Points    []XY
	ZRange    Range
	Z         []float64
	MRange    Range
	M         []float64
}

func (MultiPatchShape) ShapeType() ShapeType { return MultiPatch }
func (m MultiPatchShape) Bounds() Bounds { return m.Box }

func (m MultiPatchShape) contentLength() int {
	n := len(m.Points)
	length := 4 + 32 + 4 + 4 + 4*len(m.Parts) + 4*len(m.Parts) + 16*n + 16 + 8*n
	if m.M != nil {
		length += 16 + 8*n
	}
	return length
}

func (m MultiPatchShape) writeContent(w *byteWriter) {
	w.bounds(m.Box)
	w.int32LE(int32(len(m.Parts)))
	w.int32LE(int32(len(m.Points)))
	w.parts(m.Parts)
	for _, t := range m.PartTypes {
		w.int32LE(int32(t))
	}
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

func readMultiPatch(r *byteReader) (Shape, error) {
	box, ok := r.bounds()
	if !ok {
		return nil, errShortMultiPatch
	}
	numParts, ok := r.int32LE()
	if !ok || numParts < 0 {
		return nil, errShortMultiPatch
	}
	numPoints, ok := r.int32LE()
	if !ok || numPoints < 0 {
		return nil, errShortMultiPatch
	}
	parts, ok := r.parts(numParts)
	if !ok {
		return nil, errShortMultiPatch
	}
	rawTypes, ok := r.parts(numParts)
	if !ok {
		return nil, errShortMultiPatch
	}
	partTypes := make([]PartType, len(rawTypes))
	for i, v := range rawTypes {
		partTypes[i] = PartType(v)
	}
	pts, ok := r.points(numPoints)
	if !ok {
		return nil, errShortMultiPatch
	}
	zmin, ok := r.float64LE()
	if !ok {
		return nil, errShortMultiPatch
	}
	zmax, ok := r.float64LE()
	if !ok {
		return nil, errShortMultiPatch
	}
	z, ok := r.ordinates(numPoints)
	if !ok {
		return nil, errShortMultiPatch
	}
	shape := MultiPatchShape{
		Box: box, Parts: parts, PartTypes: partTypes, Points: pts,
		ZRange: Range{Min: zmin, Max: zmax}, Z: z,
	}
	if r.remaining() >= 16+8*int(numPoints) {
		mmin, _ := r.float64LE()
		mmax, _ := r.float64LE()
		m, ok := r.ordinates(numPoints)
		if !ok {
			return nil, errShortMultiPatch
		}
		shape.MRange = Range{Min: mmin, Max: mmax}
		shape.M = m
	}
	return shape, nil
}

var errShortMultiPatch = &ErrMalformedRecord{Reason: "multipatch record truncated"}
