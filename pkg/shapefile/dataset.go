package shapefile

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"
	"golang.org/x/sync/errgroup"
)

// Entry describes one shapefile within a Dataset: its path, decoded
// header, and shape count, without retaining the full decoded shape
// slice (call Open(entry.Path) for that).
type Entry struct {
	Path      string
	Header    Header
	ShapeType ShapeType
	Count     int
}

// Dataset indexes every .shp file in a directory by header bounding
// box, loading files concurrently via golang.org/x/sync/errgroup.
type Dataset struct {
	entries []Entry
	tree    *rtreego.Rtree
}

type indexedEntry struct {
	Entry
	rect *rtreego.Rect
}

func (e *indexedEntry) Bounds() *rtreego.Rect { return e.rect }

// LoadDataset walks dir for *.shp files and decodes each concurrently,
// building a spatial index over their header bounds.
func LoadDataset(dir string, opts LoadOptions) (*Dataset, []error, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.shp"))
	if err != nil {
		return nil, nil, fmt.Errorf("shapefile: %w", err)
	}
	sort.Strings(paths)

	g := new(errgroup.Group)
	g.SetLimit(opts.workers())

	var mu sync.Mutex
	entries := make([]Entry, 0, len(paths))
	var loadErrs []error

	for _, path := range paths {
		path := path
		g.Go(func() error {
			entry, err := loadEntry(path)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				loadErrs = append(loadErrs, fmt.Errorf("%s: %w", path, err))
				if opts.SkipErrors {
					return nil
				}
				return err
			}
			entries = append(entries, entry)
			return nil
		})
	}

	if err := g.Wait(); err != nil && !opts.SkipErrors {
		return nil, loadErrs, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	tree := rtreego.NewTree(2, 25, 50)
	for i := range entries {
		tree.Insert(&indexedEntry{Entry: entries[i], rect: toRect(entries[i].Header.Bounds)})
	}

	return &Dataset{entries: entries, tree: tree}, loadErrs, nil
}

func loadEntry(path string) (Entry, error) {
	r, err := Open(path)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Path:      path,
		Header:    r.Header(),
		ShapeType: r.Header().ShapeType,
		Count:     len(r.Shapes()),
	}, nil
}

// Entries returns every successfully loaded entry, sorted by path.
func (d *Dataset) Entries() []Entry { return d.entries }

// Query returns every entry whose header bounds intersect b.
func (d *Dataset) Query(b Bounds) []Entry {
	results := d.tree.SearchIntersect(toRect(b))
	out := make([]Entry, 0, len(results))
	for _, r := range results {
		out = append(out, r.(*indexedEntry).Entry)
	}
	return out
}
