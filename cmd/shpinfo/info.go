package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/shapefile/pkg/shapefile"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.shp>",
	Short: "Print header fields and computed aggregates",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	r, err := shapefile.Open(args[0])
	if err != nil {
		return err
	}
	h := r.Header()
	shapes := r.Shapes()

	var b strings.Builder
	b.WriteString(titleStyle.Render(args[0]) + "\n")
	b.WriteString(field("Shape Type", h.ShapeType.String()) + "\n")
	b.WriteString(field("Records", len(shapes)) + "\n")
	b.WriteString(field("Bounds", fmt.Sprintf("[%.6f, %.6f] - [%.6f, %.6f]",
		h.Bounds.MinX, h.Bounds.MinY, h.Bounds.MaxX, h.Bounds.MaxY)) + "\n")
	if h.ShapeType.HasZ() {
		b.WriteString(field("Z Range", fmt.Sprintf("[%.3f, %.3f]", h.ZRange.Min, h.ZRange.Max)) + "\n")
	}
	if h.ShapeType.HasM() {
		b.WriteString(field("M Range", fmt.Sprintf("[%.3f, %.3f]", h.MRange.Min, h.MRange.Max)) + "\n")
	}

	fmt.Fprint(cmd.OutOrStdout(), b.String())
	return nil
}
