package shp

import "math"

// Bounds is the X/Y bounding box carried in the header and every
// multi-point record.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Range is a scalar [Min, Max] interval, used for the header's Z and M
// ranges.
type Range struct {
	Min, Max float64
}

func (b Bounds) extend(x, y float64) Bounds {
	if b.MinX > x {
		b.MinX = x
	}
	if b.MaxX < x {
		b.MaxX = x
	}
	if b.MinY > y {
		b.MinY = y
	}
	if b.MaxY < y {
		b.MaxY = y
	}
	return b
}

func (b Bounds) union(o Bounds) Bounds {
	if o.MinX < b.MinX {
		b.MinX = o.MinX
	}
	if o.MaxX > b.MaxX {
		b.MaxX = o.MaxX
	}
	if o.MinY < b.MinY {
		b.MinY = o.MinY
	}
	if o.MaxY > b.MaxY {
		b.MaxY = o.MaxY
	}
	return b
}

// Intersects reports whether b and o share any area, including touching
// edges.
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX && b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

func emptyBounds() Bounds {
	return Bounds{
		MinX: math.MaxFloat64,
		MinY: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MaxY: -math.MaxFloat64,
	}
}

// extendRange folds v into r, skipping NO_DATA sentinels so that an
// all-absent M or Z column collapses to the zero range rather than to
// -1e38.
func extendRange(r Range, v float64) Range {
	if NoData(v) {
		return r
	}
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}

func emptyRange() Range {
	return Range{Min: math.MaxFloat64, Max: -math.MaxFloat64}
}

// resolved returns the zero range if r was never extended, rather than
// the sentinel min/max it started from.
func (r Range) resolved() Range {
	if r.Min > r.Max {
		return Range{}
	}
	return r
}
