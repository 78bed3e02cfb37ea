package geotypes

import "math"

// BoundingBox is an axis-aligned rectangle. The zero value is the empty
// bounding box: Empty distinguishes "no points were ever unioned into this
// box" from a degenerate box with zero area (a single point or a vertical
// or horizontal line both have Area() == 0 but are not Empty).
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
	Empty                  bool
}

// EmptyBoundingBox returns the empty sentinel bounding box. Decoders that
// encounter no points (e.g. a Null-shape record) produce this value.
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{Empty: true}
}

// NewBoundingBox constructs a non-empty bounding box. Panics would be
// inappropriate for untrusted input, so callers that decode bytes should
// validate minX <= maxX and minY <= maxY themselves and fail with
// MalformedShp if the invariant doesn't hold.
func NewBoundingBox(minX, minY, maxX, maxY float64) BoundingBox {
	return BoundingBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// FromPoint returns the degenerate bounding box containing exactly p.
func FromPoint(p Point) BoundingBox {
	return BoundingBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

// Contains reports whether p lies within b, inclusive of the boundary.
func (b BoundingBox) Contains(p Point) bool {
	if b.Empty {
		return false
	}
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Intersects reports whether b and other overlap, inclusive of shared
// boundaries. Two boxes are disjoint iff one lies strictly left of, right
// of, above, or below the other; Intersects is symmetric.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	if b.Empty || other.Empty {
		return false
	}
	if b.MaxX < other.MinX || other.MaxX < b.MinX {
		return false
	}
	if b.MaxY < other.MinY || other.MaxY < b.MinY {
		return false
	}
	return true
}

// Area returns the box's area. May be zero for point or line degenerate
// boxes. Returns zero for the empty box.
func (b BoundingBox) Area() float64 {
	if b.Empty {
		return 0
	}
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// Union returns the smallest bounding box containing both b and other.
// Unioning with an empty box returns the other box unchanged.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	if b.Empty {
		return other
	}
	if other.Empty {
		return b
	}
	return BoundingBox{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// Expand returns a new bounding box enlarged by d in every direction
// (b's min corner minus (d, d), max corner plus (d, d)). Used for the
// tiny-bbox range query that seeds point-in-polygon and the expansion
// bbox that seeds within-distance queries.
func (b BoundingBox) Expand(d float64) BoundingBox {
	if b.Empty {
		return b
	}
	return BoundingBox{
		MinX: b.MinX - d,
		MinY: b.MinY - d,
		MaxX: b.MaxX + d,
		MaxY: b.MaxY + d,
	}
}

// Centroid returns the arithmetic midpoint of the box's min/max corners:
// an approximation of the geometric center, not a true area centroid.
func (b BoundingBox) Centroid() Point {
	if b.Empty {
		return Point{}
	}
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// enlargementArea returns the area that would be added to b's area by
// unioning it with other, i.e. Union(other).Area() - b.Area(). Used by the
// R-tree's least-enlargement child selection.
func (b BoundingBox) enlargementArea(other BoundingBox) float64 {
	return b.Union(other).Area() - b.Area()
}

// EnlargementArea is the exported form of enlargementArea, used by the
// R-tree package.
func (b BoundingBox) EnlargementArea(other BoundingBox) float64 {
	return b.enlargementArea(other)
}

// DistanceToPoint returns the Euclidean distance from p to the closest
// point on b, zero when p is inside b (or on its boundary).
func (b BoundingBox) DistanceToPoint(p Point) float64 {
	if b.Empty {
		return math.Inf(1)
	}
	dx := 0.0
	switch {
	case p.X < b.MinX:
		dx = b.MinX - p.X
	case p.X > b.MaxX:
		dx = p.X - b.MaxX
	}
	dy := 0.0
	switch {
	case p.Y < b.MinY:
		dy = b.MinY - p.Y
	case p.Y > b.MaxY:
		dy = p.Y - b.MaxY
	}
	return math.Sqrt(dx*dx + dy*dy)
}
