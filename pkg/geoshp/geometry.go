package geoshp

import "geoshp/internal/geotypes"

// GeometryType tags the variant held by a Geometry.
type GeometryType = geotypes.GeometryType

// The geometry variants a shapefile record can hold. GeometryNull covers
// both Null-shape records and variants this module doesn't decode (Z, M,
// MultiPoint, MultiPatch).
const (
	GeometryNull     = geotypes.GeometryNull
	GeometryPoint    = geotypes.GeometryPoint
	GeometryPolyline = geotypes.GeometryPolyline
	GeometryPolygon  = geotypes.GeometryPolygon
)

// Geometry is a tagged variant over {Null, Point, Polyline, Polygon}. See
// geotypes.Geometry for field semantics.
type Geometry = geotypes.Geometry
