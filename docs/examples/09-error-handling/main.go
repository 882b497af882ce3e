package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/shapefile/pkg/shapefile"
)

func safeOpen(path string) (*shapefile.Reader, error) {
	r, err := shapefile.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("shapefile not found: %s", path)
		}

		var badCode *shapefile.ErrInvalidFileCode
		var badVersion *shapefile.ErrUnsupportedVersion
		switch {
		case errors.As(err, &badCode):
			return nil, fmt.Errorf("%s is not an Esri shapefile: %w", path, err)
		case errors.As(err, &badVersion):
			return nil, fmt.Errorf("%s uses an unsupported format version: %w", path, err)
		}

		log.Printf("failed to open %s: %v", path, err)
		return nil, err
	}

	if len(r.Shapes()) == 0 {
		log.Printf("warning: %s contains no records", path)
	}
	return r, nil
}

func main() {
	r, err := safeOpen("coastline.shp")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Loaded %d records (%s)\n", len(r.Shapes()), r.Header().ShapeType)

	if _, err := safeOpen("NONEXISTENT.shp"); err != nil {
		log.Printf("expected error: %v", err)
	}
}
