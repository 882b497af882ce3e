// Package shp implements the Esri Shapefile geometry codec: the
// .shp main file and the .shx record index, including all fourteen
// shape-type variants and their Z/M extensions.
package shp
