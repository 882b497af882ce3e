package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/shapefile/pkg/shapefile"
)

func main() {
	r, err := shapefile.Open("parcels.shp")
	if err != nil {
		log.Fatal(err)
	}

	// Define a viewport and query the reader's R-tree index for
	// visible shapes (O(log n) rather than scanning every record).
	viewport := shapefile.Bounds{
		MinX: -71.1, MaxX: -71.0,
		MinY: 42.3, MaxY: 42.4,
	}

	visible := r.ShapesInBounds(viewport)
	fmt.Printf("Visible shapes: %d\n", len(visible))

	for _, s := range visible {
		b := s.Bounds()
		fmt.Printf("  %s: bounds=[%.4f,%.4f]-[%.4f,%.4f]\n", s.ShapeType(), b.MinX, b.MinY, b.MaxX, b.MaxY)
	}
}
