package spatial

import (
	"testing"

	"geoshp/internal/geotypes"
	"geoshp/internal/shapefile"
)

func square(cx, cy, half float64) geotypes.Geometry {
	ring := []geotypes.Point{
		{X: cx - half, Y: cy - half},
		{X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half},
		{X: cx - half, Y: cy + half},
		{X: cx - half, Y: cy - half},
	}
	return geotypes.NewPolygonGeometry([][]geotypes.Point{ring})
}

func TestBuildIndexAndRangeQuery(t *testing.T) {
	records := []shapefile.ShapeRecord{
		{RecordNumber: 1, Geometry: square(0, 0, 1)},
		{RecordNumber: 2, Geometry: square(10, 10, 1)},
	}
	idx := NewIndex(4)
	idx.BuildIndex(records)

	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}

	got := idx.RangeQuery(geotypes.NewBoundingBox(-2, -2, 2, 2))
	if len(got) != 1 || got[0].RecordNumber != 1 {
		t.Errorf("RangeQuery = %+v, want record 1 only", got)
	}
}

func TestPointInPolygonHit(t *testing.T) {
	records := []shapefile.ShapeRecord{
		{RecordNumber: 1, Geometry: square(0, 0, 5)},
		{RecordNumber: 2, Geometry: square(100, 100, 5)},
	}
	idx := NewIndex(4)
	idx.BuildIndex(records)

	rec, ok := idx.PointInPolygon(geotypes.Point{X: 1, Y: 1})
	if !ok {
		t.Fatal("PointInPolygon reported no hit for a point inside record 1's square")
	}
	if rec.RecordNumber != 1 {
		t.Errorf("PointInPolygon matched record %d, want 1", rec.RecordNumber)
	}
}

func TestPointInPolygonMiss(t *testing.T) {
	records := []shapefile.ShapeRecord{
		{RecordNumber: 1, Geometry: square(0, 0, 1)},
	}
	idx := NewIndex(4)
	idx.BuildIndex(records)

	_, ok := idx.PointInPolygon(geotypes.Point{X: 50, Y: 50})
	if ok {
		t.Error("PointInPolygon reported a hit far outside the only candidate")
	}
}

func TestPointInPolygonSkipsNonPolygon(t *testing.T) {
	records := []shapefile.ShapeRecord{
		{RecordNumber: 1, Geometry: geotypes.NewPointGeometry(geotypes.Point{X: 0, Y: 0})},
	}
	idx := NewIndex(4)
	idx.BuildIndex(records)

	_, ok := idx.PointInPolygon(geotypes.Point{X: 0, Y: 0})
	if ok {
		t.Error("PointInPolygon matched a non-polygon candidate")
	}
}

func TestNearest(t *testing.T) {
	records := []shapefile.ShapeRecord{
		{RecordNumber: 1, Geometry: geotypes.NewPointGeometry(geotypes.Point{X: 0, Y: 0})},
		{RecordNumber: 2, Geometry: geotypes.NewPointGeometry(geotypes.Point{X: 10, Y: 10})},
		{RecordNumber: 3, Geometry: geotypes.NewPointGeometry(geotypes.Point{X: 1, Y: 0})},
	}
	idx := NewIndex(4)
	idx.BuildIndex(records)

	got, err := idx.Nearest(geotypes.Point{X: 0, Y: 0}, 2)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if len(got) != 2 || got[0].RecordNumber != 1 || got[1].RecordNumber != 3 {
		t.Errorf("Nearest = %+v, want records [1 3] in order", got)
	}
}

func TestNearestRejectsNonPositiveK(t *testing.T) {
	records := []shapefile.ShapeRecord{
		{RecordNumber: 1, Geometry: geotypes.NewPointGeometry(geotypes.Point{X: 0, Y: 0})},
	}
	idx := NewIndex(4)
	idx.BuildIndex(records)

	if _, err := idx.Nearest(geotypes.Point{X: 0, Y: 0}, 0); err == nil {
		t.Error("Nearest with k=0 should return an error")
	}
}

func TestWithinDistanceRejectsNegative(t *testing.T) {
	records := []shapefile.ShapeRecord{
		{RecordNumber: 1, Geometry: geotypes.NewPointGeometry(geotypes.Point{X: 0, Y: 0})},
	}
	idx := NewIndex(4)
	idx.BuildIndex(records)

	if _, err := idx.WithinDistance(geotypes.Point{X: 0, Y: 0}, -1); err == nil {
		t.Error("WithinDistance with negative distance should return an error")
	}
}
