package geotypes

import "testing"

func TestContainsImpliesWithinBounds(t *testing.T) {
	b := NewBoundingBox(0, 0, 10, 10)
	points := []Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 5, Y: 5}}
	for _, p := range points {
		if !b.Contains(p) {
			t.Fatalf("expected %v to be contained in %v", p, b)
		}
		if p.X < b.MinX || p.X > b.MaxX || p.Y < b.MinY || p.Y > b.MaxY {
			t.Errorf("Contains(%v) true but point outside bounds %v", p, b)
		}
	}
	if b.Area() < 0 {
		t.Errorf("Area() = %v, want >= 0", b.Area())
	}
}

func TestIntersectsSymmetric(t *testing.T) {
	cases := []struct {
		a, b BoundingBox
	}{
		{NewBoundingBox(0, 0, 5, 5), NewBoundingBox(3, 3, 8, 8)},
		{NewBoundingBox(0, 0, 1, 1), NewBoundingBox(10, 10, 11, 11)},
		{NewBoundingBox(0, 0, 5, 5), NewBoundingBox(5, 5, 10, 10)},
		{EmptyBoundingBox(), NewBoundingBox(0, 0, 1, 1)},
	}
	for _, c := range cases {
		if c.a.Intersects(c.b) != c.b.Intersects(c.a) {
			t.Errorf("Intersects not symmetric for %v, %v", c.a, c.b)
		}
	}
}

func TestUnionWithEmpty(t *testing.T) {
	b := NewBoundingBox(1, 1, 2, 2)
	if got := b.Union(EmptyBoundingBox()); got != b {
		t.Errorf("Union with empty = %v, want %v unchanged", got, b)
	}
	if got := EmptyBoundingBox().Union(b); got != b {
		t.Errorf("Empty.Union(b) = %v, want %v", got, b)
	}
}

func TestDistanceToPointZeroInside(t *testing.T) {
	b := NewBoundingBox(0, 0, 10, 10)
	if d := b.DistanceToPoint(Point{X: 5, Y: 5}); d != 0 {
		t.Errorf("DistanceToPoint inside = %v, want 0", d)
	}
	if d := b.DistanceToPoint(Point{X: 15, Y: 5}); d != 5 {
		t.Errorf("DistanceToPoint outside on X = %v, want 5", d)
	}
}
