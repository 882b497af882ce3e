package shapefile

import (
	"github.com/dhconnelly/rtreego"
)

// rtreego requires a minimum bounding box size on every dimension;
// degenerate point shapes get nudged out to this epsilon so they are
// still indexable.
const boundsEpsilon = 1e-6

type spatialIndex struct {
	tree  *rtreego.Rtree
	byPtr map[rtreego.Spatial]Shape
}

type indexedShape struct {
	bounds Bounds
	rect   *rtreego.Rect
}

func (s *indexedShape) Bounds() *rtreego.Rect {
	return s.rect
}

func toRect(b Bounds) *rtreego.Rect {
	width := b.MaxX - b.MinX
	height := b.MaxY - b.MinY
	if width < boundsEpsilon {
		width = boundsEpsilon
	}
	if height < boundsEpsilon {
		height = boundsEpsilon
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{width, height})
	if err != nil {
		// NewRect only fails on a non-positive size, which toRect never
		// produces given the epsilon floor above.
		panic(err)
	}
	return rect
}

func newSpatialIndex(shapes []Shape) *spatialIndex {
	tree := rtreego.NewTree(2, 25, 50)
	byPtr := make(map[rtreego.Spatial]Shape, len(shapes))
	for _, s := range shapes {
		if _, isNull := s.(NullShape); isNull {
			continue
		}
		b := s.Bounds()
		entry := &indexedShape{bounds: b, rect: toRect(b)}
		tree.Insert(entry)
		byPtr[entry] = s
	}
	return &spatialIndex{tree: tree, byPtr: byPtr}
}

func (idx *spatialIndex) query(b Bounds) []Shape {
	results := idx.tree.SearchIntersect(toRect(b))
	shapes := make([]Shape, 0, len(results))
	for _, r := range results {
		shapes = append(shapes, idx.byPtr[r])
	}
	return shapes
}
