// Package main provides the shpinfo command-line tool for inspecting,
// listing, validating, and browsing shapefiles.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shpinfo",
	Short: "Inspect Esri Shapefiles",
	Long: `shpinfo - inspect, list, validate, and browse Esri Shapefiles

Examples:
  shpinfo info coastline.shp
  shpinfo list parcels.shp --type Polygon
  shpinfo validate rivers.shp
  shpinfo browse cities.shp`,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(browseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
