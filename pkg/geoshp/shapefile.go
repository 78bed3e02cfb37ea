package geoshp

import (
	"geoshp/internal/shapefile"
	"geoshp/internal/shp"
	"geoshp/internal/spatial"
)

// ShapeRecord pairs a decoded geometry with its attribute map and 1-based
// on-disk record number.
type ShapeRecord = shapefile.ShapeRecord

// ShapeType is the on-disk shape type code from the .shp header.
type ShapeType = shp.ShapeType

// ShapefileReader opens a .shp/.shx/.dbf family and serves indexed record
// reads and spatial queries against it.
//
// Not safe for concurrent use: no operation on one ShapefileReader may run
// concurrently with any other.
type ShapefileReader struct {
	reader *shapefile.Reader
	index  *spatial.Index
}

// Open opens the shapefile family under base (e.g. "/data/roads" opens
// "/data/roads.shp", "/data/roads.shx", and "/data/roads.dbf" if present)
// with default options (spatial index built eagerly).
func Open(base string) (*ShapefileReader, error) {
	return OpenWithOptions(base, DefaultReaderOptions())
}

// OpenWithOptions opens the shapefile family under base with the given
// options.
func OpenWithOptions(base string, opts ReaderOptions) (*ShapefileReader, error) {
	reader, err := shapefile.Open(base)
	if err != nil {
		return nil, err
	}

	out := &ShapefileReader{reader: reader}
	if opts.BuildIndex {
		records, err := reader.ReadAllRecords()
		if err != nil {
			reader.Close()
			return nil, err
		}
		index := spatial.NewIndex(opts.MaxEntries)
		index.BuildIndex(records)
		out.index = index
	}
	return out, nil
}

// Close releases the underlying file handles. Safe to call more than once.
func (r *ShapefileReader) Close() error {
	return r.reader.Close()
}

// RecordCount returns the number of records.
func (r *ShapefileReader) RecordCount() int {
	return r.reader.RecordCount()
}

// ShapeType returns the file-level dominant shape type.
func (r *ShapefileReader) ShapeType() ShapeType {
	return r.reader.ShapeType()
}

// Bounds returns the file-level overall bounding box.
func (r *ShapefileReader) Bounds() BoundingBox {
	return r.reader.Bounds()
}

// FieldDefinitions returns the .dbf column definitions, or nil if no .dbf
// was present.
func (r *ShapefileReader) FieldDefinitions() []FieldDefinition {
	return r.reader.FieldDefinitions()
}

// Info returns a human-readable summary of the opened shapefile: record
// count, shape type, bounds, and field definitions.
func (r *ShapefileReader) Info() string {
	return r.reader.Info()
}

// ReadRecord reads record i (0-based). Returns (ShapeRecord{}, false, nil)
// if the record is deleted or i is out of range.
func (r *ShapefileReader) ReadRecord(i int) (ShapeRecord, bool, error) {
	return r.reader.ReadRecord(i)
}

// ReadAllRecords reads every record in order, skipping deleted and
// individually malformed ones.
func (r *ShapefileReader) ReadAllRecords() ([]ShapeRecord, error) {
	return r.reader.ReadAllRecords()
}

// RangeQuery returns every record whose geometry bounds intersect bbox.
// Uses the spatial index when one was built (ReaderOptions.BuildIndex);
// otherwise falls back to a full linear scan.
func (r *ShapefileReader) RangeQuery(bbox BoundingBox) ([]ShapeRecord, error) {
	if r.index != nil {
		return r.index.RangeQuery(bbox), nil
	}
	return r.reader.ReadRecordsInBounds(bbox)
}

// Nearest returns the k records whose geometry bounds are closest to
// point, in ascending distance order. Requires a spatial index
// (ReaderOptions.BuildIndex); returns an InvalidQuery error otherwise.
func (r *ShapefileReader) Nearest(point Point, k int) ([]ShapeRecord, error) {
	if r.index == nil {
		return nil, errNoSpatialIndex("Nearest")
	}
	return r.index.Nearest(point, k)
}

// WithinDistance returns every record whose geometry bounds lie within
// maxDistance of point. Requires a spatial index
// (ReaderOptions.BuildIndex); returns an InvalidQuery error otherwise.
func (r *ShapefileReader) WithinDistance(point Point, maxDistance float64) ([]ShapeRecord, error) {
	if r.index == nil {
		return nil, errNoSpatialIndex("WithinDistance")
	}
	return r.index.WithinDistance(point, maxDistance)
}

// PointInPolygon returns the first record whose polygon geometry contains
// point, and true, or the zero value and false if no record's index was
// built or no candidate contains the point.
func (r *ShapefileReader) PointInPolygon(point Point) (ShapeRecord, bool) {
	if r.index == nil {
		return ShapeRecord{}, false
	}
	return r.index.PointInPolygon(point)
}
