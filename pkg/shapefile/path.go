package shapefile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beetlebugorg/shapefile/internal/dbf"
)

// OpenTriple opens the .shp at path (given with or without its ".shp"
// extension) and, when present alongside it, the .dbf of the same base
// name, returning the decoded shapes and their paired attribute records
// in file order.
func OpenTriple(path string) (*Reader, []dbf.Record, error) {
	base := strings.TrimSuffix(path, ".shp")
	r, err := Open(base + ".shp")
	if err != nil {
		return nil, nil, err
	}

	dbfFile, err := os.Open(base + ".dbf")
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil, nil
		}
		return nil, nil, fmt.Errorf("shapefile: %w", err)
	}
	defer dbfFile.Close()

	_, _, records, err := dbf.ReadAll(dbfFile)
	if err != nil {
		return nil, nil, fmt.Errorf("shapefile: %w", err)
	}
	return r, records, nil
}

// Create opens base+".shp" and base+".shx" for writing, truncating any
// existing files, and returns a Writer over the pair.
func Create(base string, shapeType ShapeType) (*Writer, func() error, error) {
	shpFile, err := os.Create(base + ".shp")
	if err != nil {
		return nil, nil, fmt.Errorf("shapefile: %w", err)
	}
	shxFile, err := os.Create(base + ".shx")
	if err != nil {
		shpFile.Close()
		return nil, nil, fmt.Errorf("shapefile: %w", err)
	}
	w := NewWriter(shpFile, shxFile, shapeType)
	closeFn := func() error {
		shxErr := shxFile.Close()
		shpErr := shpFile.Close()
		if shpErr != nil {
			return shpErr
		}
		return shxErr
	}
	return w, closeFn, nil
}

// WriteShapesAndRecords writes shapes to the .shp/.shx pair and records
// to dbfW as a paired .dbf, failing if the two slices disagree in
// length.
func WriteShapesAndRecords(w *Writer, dbfW io.Writer, fields []dbf.Field, shapes []Shape, records []dbf.Record) error {
	if len(shapes) != len(records) {
		return &ErrMismatchedSinkLengths{Shapes: len(shapes), Records: len(records)}
	}
	if err := w.WriteShapes(shapes); err != nil {
		return err
	}
	return dbf.WriteAll(dbfW, fields, records)
}
