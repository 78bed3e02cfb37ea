// Package geotypes defines the geometric primitives shared by the shapefile
// decoders, the R-tree, the spatial facade, and the geocoder: Point,
// BoundingBox, and the tagged-variant Geometry.
//
// Per the design notes this favors a pattern-matched tagged union over
// runtime dispatch (no Geometry interface, no vtables) so bounds/contains
// stay on the hot path of both decoding and spatial queries.
package geotypes

import "math"

// Tolerance is the absolute tolerance used by Point equality.
const Tolerance = 1e-9

// Point is an immutable 2D coordinate pair.
type Point struct {
	X, Y float64
}

// NewPoint constructs a Point. Both coordinates must be finite; callers that
// decode untrusted input should check IsFinite before relying on a
// downstream computation.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// IsFinite reports whether both coordinates are finite (not NaN or ±Inf).
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Equal reports whether p and other are equal within Tolerance.
func (p Point) Equal(other Point) bool {
	return math.Abs(p.X-other.X) <= Tolerance && math.Abs(p.Y-other.Y) <= Tolerance
}

// DistanceTo returns the planar Euclidean distance between p and other.
// No geodesic correction is applied; coordinates are consumed as-is.
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}
