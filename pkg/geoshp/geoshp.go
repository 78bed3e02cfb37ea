// Package geoshp provides a clean public API for reading ESRI shapefiles
// (.shp/.shx/.dbf), indexing their geometry for spatial queries, and
// geocoding free-text addresses against the loaded records.
//
// A typical read/query workflow:
//
//	reader, err := geoshp.Open("/data/roads")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
//	nearby, err := reader.WithinDistance(geoshp.Point{X: -71.06, Y: 42.36}, 0.01)
//
// A typical geocoding workflow:
//
//	geocoder := geoshp.NewGeocoder()
//	if err := geocoder.Load("/data/addresses"); err != nil {
//	    log.Fatal(err)
//	}
//	result := geocoder.Geocode("123 Main Street, Anytown, CA 12345")
package geoshp

import "geoshp/internal/geotypes"

// Point is an immutable 2D coordinate pair.
type Point = geotypes.Point

// BoundingBox is an axis-aligned rectangle.
type BoundingBox = geotypes.BoundingBox

// NewPoint constructs a Point.
func NewPoint(x, y float64) Point {
	return geotypes.NewPoint(x, y)
}

// NewBoundingBox constructs a non-empty bounding box.
func NewBoundingBox(minX, minY, maxX, maxY float64) BoundingBox {
	return geotypes.NewBoundingBox(minX, minY, maxX, maxY)
}
