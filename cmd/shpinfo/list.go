package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/shapefile/pkg/shapefile"
)

var listType string

var listCmd = &cobra.Command{
	Use:   "list <file.shp>",
	Short: "List records, optionally filtered by shape type",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listType, "type", "", "filter to one shape type (e.g. Polygon)")
}

func runList(cmd *cobra.Command, args []string) error {
	r, err := shapefile.Open(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, s := range r.Shapes() {
		if listType != "" && s.ShapeType().String() != listType {
			continue
		}
		fmt.Fprintf(out, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("#%d", i+1)),
			valueStyle.Render(describeShape(s)))
	}
	return nil
}

func describeShape(s shapefile.Shape) string {
	b := s.Bounds()
	return fmt.Sprintf("%-12s bounds=[%.3f,%.3f]-[%.3f,%.3f]",
		s.ShapeType(), b.MinX, b.MinY, b.MaxX, b.MaxY)
}
