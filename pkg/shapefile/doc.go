// Package shapefile provides the public surface over internal/shp and
// internal/dbf: opening and creating a shapefile triple (.shp/.shx/.dbf),
// typed record reads, a spatial index for single-file bounds queries,
// and a Dataset that indexes a directory of shapefiles together.
package shapefile
