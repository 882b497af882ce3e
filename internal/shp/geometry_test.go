package shp

import "testing"

func TestNoData(t *testing.T) {
	cases := []struct {
		v    float64
		want bool
	}{
		{-1e38, true},
		{-1e39, true},
		{-1e37, false},
		{0, false},
		{1e38, false},
	}
	for _, c := range cases {
		if got := NoData(c.v); got != c.want {
			t.Errorf("NoData(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestShapeContentLengthRoundTrip(t *testing.T) {
	cases := []Shape{
		PointShape{X: 1, Y: 2},
		PointZShape{X: 1, Y: 2, Z: 3, M: 4},
		PointMShape{X: 1, Y: 2, M: 4},
		MultiPointShape{Box: Bounds{MaxX: 1, MaxY: 1}, Points: []XY{{0, 0}, {1, 1}}},
		MultiPointZShape{
			Box: Bounds{MaxX: 1, MaxY: 1}, Points: []XY{{0, 0}, {1, 1}},
			ZRange: Range{Min: 0, Max: 1}, Z: []float64{0, 1},
		},
		MultiPatchShape{
			Box:       Bounds{MaxX: 1, MaxY: 1},
			Parts:     []int32{0},
			PartTypes: []PartType{OuterRing},
			Points:    []XY{{0, 0}, {0, 1}, {1, 1}, {0, 0}},
			ZRange:    Range{Min: 0, Max: 0},
			Z:         []float64{0, 0, 0, 0},
		},
	}

	for _, s := range cases {
		bw := &byteWriter{}
		s.writeContent(bw)
		// contentLength() counts the 4-byte shape-type tag that
		// writeContent does not itself emit.
		if got, want := len(bw.buf)+4, s.contentLength(); got != want {
			t.Errorf("%T: encoded %d bytes (+tag), contentLength() = %d", s, got, want)
		}

		br := newByteReader(bw.buf)
		decoded, err := readShapeContent(s.ShapeType(), br)
		if err != nil {
			t.Errorf("%T: decode failed: %v", s, err)
			continue
		}
		if br.remaining() != 0 {
			t.Errorf("%T: %d bytes left over after decode", s, br.remaining())
		}
		if decoded.Bounds() != s.Bounds() {
			t.Errorf("%T: bounds = %+v, want %+v", s, decoded.Bounds(), s.Bounds())
		}
	}
}

func TestMultiPointZOptionalMTrailer(t *testing.T) {
	withM := MultiPointZShape{
		Box: Bounds{MaxX: 1, MaxY: 1}, Points: []XY{{0, 0}, {1, 1}},
		ZRange: Range{Min: 0, Max: 1}, Z: []float64{0, 1},
		MRange: Range{Min: 2, Max: 3}, M: []float64{2, 3},
	}
	withoutM := MultiPointZShape{
		Box: Bounds{MaxX: 1, MaxY: 1}, Points: []XY{{0, 0}, {1, 1}},
		ZRange: Range{Min: 0, Max: 1}, Z: []float64{0, 1},
	}

	for name, s := range map[string]MultiPointZShape{"withM": withM, "withoutM": withoutM} {
		bw := &byteWriter{}
		s.writeContent(bw)
		br := newByteReader(bw.buf)
		decoded, err := readMultiPointZ(br)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		got := decoded.(MultiPointZShape)
		if (got.M == nil) != (s.M == nil) {
			t.Fatalf("%s: M presence = %v, want %v", name, got.M != nil, s.M != nil)
		}
	}
}
