// Package spatial adapts the R-tree to a collection of shapefile records:
// it builds an index over their geometry bounds and turns the R-tree's
// opaque data indices back into record values for every query.
package spatial

import (
	"geoshp/internal/geotypes"
	"geoshp/internal/rtree"
	"geoshp/internal/shapefile"
)

// Index binds an R-tree to a vector of records. The record vector is
// never mutated after BuildIndex; query methods return record values (not
// indices) in whatever order the underlying R-tree returns them.
//
// Not safe for concurrent use: no operation on one Index may run
// concurrently with any other.
type Index struct {
	records []shapefile.ShapeRecord
	tree    *rtree.RTree
}

// NewIndex creates an empty index with the given R-tree fan-out (0 or 1
// selects the default).
func NewIndex(maxEntries int) *Index {
	return &Index{tree: rtree.New(maxEntries)}
}

// BuildIndex takes ownership of records and inserts each one's geometry
// bounds into the R-tree, keyed by its position in the slice.
func (idx *Index) BuildIndex(records []shapefile.ShapeRecord) {
	idx.records = records
	for i, rec := range records {
		idx.tree.Insert(rec.Geometry.Bounds(), i)
	}
}

// Len returns the number of indexed records.
func (idx *Index) Len() int { return len(idx.records) }

// Record returns the record at position i, or the zero value and false if
// i is out of range.
func (idx *Index) Record(i int) (shapefile.ShapeRecord, bool) {
	if i < 0 || i >= len(idx.records) {
		return shapefile.ShapeRecord{}, false
	}
	return idx.records[i], true
}

// RangeQuery returns every record whose geometry bounds intersect bbox.
func (idx *Index) RangeQuery(bbox geotypes.BoundingBox) []shapefile.ShapeRecord {
	return idx.resolve(idx.tree.RangeQuery(bbox))
}

// Nearest returns the k records whose geometry bounds are closest to
// point, in ascending distance order. Returns an InvalidQuery error if k
// is not positive.
func (idx *Index) Nearest(point geotypes.Point, k int) ([]shapefile.ShapeRecord, error) {
	indices, err := idx.tree.Nearest(point, k)
	if err != nil {
		return nil, err
	}
	return idx.resolve(indices), nil
}

// WithinDistance returns every record whose geometry bounds lie within
// maxDistance of point. Returns an InvalidQuery error if maxDistance is
// negative.
func (idx *Index) WithinDistance(point geotypes.Point, maxDistance float64) ([]shapefile.ShapeRecord, error) {
	indices, err := idx.tree.WithinDistance(point, maxDistance)
	if err != nil {
		return nil, err
	}
	return idx.resolve(indices), nil
}

// PointInPolygon performs a tiny-bbox range query around point (half-extent
// pointQueryEpsilon) and tests containment against each candidate's
// polygon geometry with an exact ray-cast, skipping non-polygon
// candidates. Returns the first hit and true, or the zero value and false
// if no candidate contains the point. Result order among multiple hits is
// unspecified.
func (idx *Index) PointInPolygon(point geotypes.Point) (shapefile.ShapeRecord, bool) {
	search := geotypes.FromPoint(point).Expand(pointQueryEpsilon)
	for _, dataIndex := range idx.tree.RangeQuery(search) {
		rec := idx.records[dataIndex]
		if rec.Geometry.Contains(point) {
			return rec, true
		}
	}
	return shapefile.ShapeRecord{}, false
}

// pointQueryEpsilon is the half-extent, in coordinate units, of the
// candidate bbox seeded around a point-in-polygon query.
const pointQueryEpsilon = 1e-4

func (idx *Index) resolve(indices []int) []shapefile.ShapeRecord {
	if len(indices) == 0 {
		return nil
	}
	records := make([]shapefile.ShapeRecord, len(indices))
	for i, dataIndex := range indices {
		records[i] = idx.records[dataIndex]
	}
	return records
}
