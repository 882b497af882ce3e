package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/shapefile/pkg/shapefile"
)

func main() {
	r, err := shapefile.Open("coastline.shp")
	if err != nil {
		log.Fatal(err)
	}

	h := r.Header()
	fmt.Printf("Shape type: %s\n", h.ShapeType)
	fmt.Printf("Records: %d\n", len(r.Shapes()))
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		h.Bounds.MinX, h.Bounds.MinY,
		h.Bounds.MaxX, h.Bounds.MaxY)
}
