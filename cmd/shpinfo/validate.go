package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/shapefile/pkg/shapefile"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.shp>",
	Short: "Re-derive the universal shapefile properties and report violations",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	r, err := shapefile.Open(path)
	if err != nil {
		return err
	}

	var violations []string
	header := r.Header()
	shapes := r.Shapes()

	bounds := header.Bounds
	for i, s := range shapes {
		b := s.Bounds()
		if _, isNull := s.(shapefile.NullShape); isNull {
			continue
		}
		if s.ShapeType() != header.ShapeType {
			violations = append(violations, fmt.Sprintf("record %d: type %s does not match header type %s", i+1, s.ShapeType(), header.ShapeType))
		}
		if b.MinX < bounds.MinX || b.MinY < bounds.MinY || b.MaxX > bounds.MaxX || b.MaxY > bounds.MaxY {
			violations = append(violations, fmt.Sprintf("record %d: bbox %+v exceeds header bbox %+v", i+1, b, bounds))
		}
		if err := shapefile.Validate(s); err != nil {
			violations = append(violations, fmt.Sprintf("record %d: %v", i+1, err))
		}
	}

	if shxPath := strings.TrimSuffix(path, ".shp") + ".shx"; fileExists(shxPath) {
		if shxViolations := checkIndexCoherence(shxPath, header.ShapeType); len(shxViolations) > 0 {
			violations = append(violations, shxViolations...)
		}
	}

	out := cmd.OutOrStdout()
	if len(violations) == 0 {
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("%s: all properties hold (%d records)", path, len(shapes))))
		return nil
	}
	fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("%s: %d violation(s)", path, len(violations))))
	for _, v := range violations {
		fmt.Fprintln(out, "  "+v)
	}
	return fmt.Errorf("validation failed")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func checkIndexCoherence(shxPath string, shapeType shapefile.ShapeType) []string {
	f, err := os.Open(shxPath)
	if err != nil {
		return []string{fmt.Sprintf(".shx: %v", err)}
	}
	defer f.Close()

	idxHeader, _, err := shapefile.ReadIndex(f)
	if err != nil {
		return []string{fmt.Sprintf(".shx: %v", err)}
	}
	if idxHeader.ShapeType != shapeType {
		return []string{fmt.Sprintf(".shx: index shape type %s does not match .shp type %s", idxHeader.ShapeType, shapeType)}
	}
	return nil
}
