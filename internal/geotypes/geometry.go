package geotypes

// GeometryType tags the variant held by a Geometry.
type GeometryType int

const (
	// GeometryNull represents a shapefile Null-shape record, or any
	// record whose variant this module doesn't support (Z, M,
	// MultiPoint, MultiPatch).
	GeometryNull GeometryType = iota
	GeometryPoint
	GeometryPolyline
	GeometryPolygon
)

// String returns a human-readable name for the geometry type.
func (t GeometryType) String() string {
	switch t {
	case GeometryPoint:
		return "Point"
	case GeometryPolyline:
		return "Polyline"
	case GeometryPolygon:
		return "Polygon"
	default:
		return "Null"
	}
}

// Geometry is a tagged variant over {Null, Point, Polyline, Polygon}.
//
// Polyline.Parts is an ordered sequence of parts, each an ordered sequence
// of vertices (>= 2). Polygon.Parts is an ordered sequence of rings, each a
// closed vertex sequence (first == last); ring 0 is the outer boundary and
// subsequent rings are holes. Ring orientation on disk is not used to tell
// outer from inner; position is.
type Geometry struct {
	Type  GeometryType
	Point Point
	Parts [][]Point
}

// NullGeometry returns the Null-shape geometry.
func NullGeometry() Geometry {
	return Geometry{Type: GeometryNull}
}

// NewPointGeometry returns a Point geometry.
func NewPointGeometry(p Point) Geometry {
	return Geometry{Type: GeometryPoint, Point: p}
}

// NewPolylineGeometry returns a Polyline geometry over the given parts.
func NewPolylineGeometry(parts [][]Point) Geometry {
	return Geometry{Type: GeometryPolyline, Parts: parts}
}

// NewPolygonGeometry returns a Polygon geometry over the given rings.
func NewPolygonGeometry(rings [][]Point) Geometry {
	return Geometry{Type: GeometryPolygon, Parts: rings}
}

// Bounds returns the bounding box of the geometry. Null geometries, and
// Polyline/Polygon geometries with no parts, return the empty sentinel.
func (g Geometry) Bounds() BoundingBox {
	switch g.Type {
	case GeometryPoint:
		return FromPoint(g.Point)
	case GeometryPolyline, GeometryPolygon:
		bounds := EmptyBoundingBox()
		for _, part := range g.Parts {
			for _, pt := range part {
				bounds = bounds.Union(FromPoint(pt))
			}
		}
		return bounds
	default:
		return EmptyBoundingBox()
	}
}

// Clone returns a deep copy of g; the returned value shares no backing
// arrays with g.
func (g Geometry) Clone() Geometry {
	clone := Geometry{Type: g.Type, Point: g.Point}
	if g.Parts != nil {
		clone.Parts = make([][]Point, len(g.Parts))
		for i, part := range g.Parts {
			clone.Parts[i] = append([]Point(nil), part...)
		}
	}
	return clone
}

// Centroid returns the bbox-centroid approximation of the geometry's
// center; the geocoder reports this for both forward and reverse matches
// rather than a true geometric centroid.
func (g Geometry) Centroid() Point {
	return g.Bounds().Centroid()
}

// Contains performs ray-casting point-in-polygon containment: a point is
// inside iff it is inside the outer ring (Parts[0]) and inside no hole
// ring (Parts[1:]). The even-odd rule applies per ring. Contains reports
// false for any non-Polygon geometry or a polygon with no rings.
func (g Geometry) Contains(p Point) bool {
	if g.Type != GeometryPolygon || len(g.Parts) == 0 {
		return false
	}
	if !ringContains(g.Parts[0], p) {
		return false
	}
	for _, hole := range g.Parts[1:] {
		if ringContains(hole, p) {
			return false
		}
	}
	return true
}

// ringContains implements the even-odd ray-casting rule for a single
// closed ring.
func ringContains(ring []Point, p Point) bool {
	if len(ring) < 3 {
		return false
	}
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := ring[i], ring[j]
		intersects := (vi.Y > p.Y) != (vj.Y > p.Y)
		if intersects {
			xIntersect := (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}
