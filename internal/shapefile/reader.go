// Package shapefile is the facade: it opens the
// three-file ESRI shapefile family (.shp geometry, .shx index, .dbf
// attributes) under a common base name, parses their headers, and serves
// O(1) indexed record reads plus bulk/bounded scans.
package shapefile

import (
	"fmt"
	"os"
	"strings"

	"geoshp/internal/binio"
	"geoshp/internal/dbf"
	"geoshp/internal/geoerr"
	"geoshp/internal/geotypes"
	"geoshp/internal/logging"
	"geoshp/internal/shp"
)

// Reader opens base.shp (required), base.shx (required), and base.dbf
// (optional), and serves record reads against them.
//
// Failure policy: a malformed header fails Open entirely, leaving the
// Reader unopened. A malformed individual record fails only that record's
// read; bulk reads skip it and continue.
type Reader struct {
	shpFile *os.File
	shxFile *os.File
	dbfFile *os.File

	shpReader *binio.Reader
	shxHeader shp.Header
	shxIndex  []shp.ShxEntry
	dbfDecode *dbf.Decoder

	opened bool
}

// Open opens the .shp/.shx/.dbf files under base (e.g. "/data/roads" opens
// "/data/roads.shp", "/data/roads.shx", and "/data/roads.dbf" if present)
// and parses all headers.
func Open(base string) (*Reader, error) {
	r := &Reader{}

	shpFile, err := os.Open(base + ".shp")
	if err != nil {
		return nil, geoerr.NewIOError("open .shp", err)
	}
	r.shpFile = shpFile

	shxFile, err := os.Open(base + ".shx")
	if err != nil {
		shpFile.Close()
		return nil, geoerr.NewIOError("open .shx", err)
	}
	r.shxFile = shxFile

	if dbfFile, err := os.Open(base + ".dbf"); err == nil {
		r.dbfFile = dbfFile
	} else if !os.IsNotExist(err) {
		r.Close()
		return nil, geoerr.NewIOError("open .dbf", err)
	}

	if err := r.open(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Reader) open() error {
	shxInfo, err := r.shxFile.Stat()
	if err != nil {
		return geoerr.NewIOError("stat .shx", err)
	}
	header, index, err := shp.ReadShxIndex(r.shxFile, shxInfo.Size())
	if err != nil {
		return err
	}
	r.shxHeader = header
	r.shxIndex = index

	r.shpReader = binio.New(r.shpFile)
	if _, err := shp.ReadHeader(r.shpReader); err != nil {
		return err
	}

	if r.dbfFile != nil {
		decoder, err := dbf.Open(r.dbfFile)
		if err != nil {
			return err
		}
		r.dbfDecode = decoder
	}

	r.opened = true
	logging.Infof("shapefile: opened, %d records, shape type %d", r.RecordCount(), r.shxHeader.ShapeType)
	return nil
}

// Close releases the underlying file handles. Safe to call more than
// once.
func (r *Reader) Close() error {
	var firstErr error
	for _, f := range []*os.File{r.shpFile, r.shxFile, r.dbfFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.shpFile, r.shxFile, r.dbfFile = nil, nil, nil
	return firstErr
}

// RecordCount returns the number of records: from the .dbf if present,
// else derived from the .shx index.
func (r *Reader) RecordCount() int {
	if r.dbfDecode != nil {
		return r.dbfDecode.RecordCount()
	}
	return len(r.shxIndex)
}

// ShapeType returns the file-level dominant shape type from the main
// header as stored in the .shx file (which repeats the .shp header).
func (r *Reader) ShapeType() shp.ShapeType {
	return r.shxHeader.ShapeType
}

// Bounds returns the file-level overall bounding box from the main header
// as stored in the .shx file (which repeats the .shp header).
func (r *Reader) Bounds() geotypes.BoundingBox {
	return r.shxHeader.Bounds
}

// FieldDefinitions returns the .dbf column definitions, or nil if no .dbf
// was present.
func (r *Reader) FieldDefinitions() []dbf.FieldDefinition {
	if r.dbfDecode == nil {
		return nil
	}
	return r.dbfDecode.Fields()
}

// ReadRecord reads record i (0-based array index; on-disk record numbers
// are 1-based) via an O(1) seek through the .shx index, then the geometry,
// then the .dbf attribute row.
//
// Returns (ShapeRecord{}, false, nil) only when the .dbf flags the record
// as deleted or i is out of range; any other malformed-record condition
// returns a non-nil error so bulk readers can skip just that record.
func (r *Reader) ReadRecord(i int) (ShapeRecord, bool, error) {
	if i < 0 || i >= len(r.shxIndex) {
		return ShapeRecord{}, false, nil
	}

	entry := r.shxIndex[i]
	rec, err := shp.ReadRecordAt(r.shpReader, entry.ByteOffset())
	if err != nil {
		return ShapeRecord{}, false, err
	}

	attrs := map[string]dbf.FieldValue{}
	if r.dbfDecode != nil {
		decoded, present, err := r.dbfDecode.Record(i)
		if err != nil {
			if geoerr.IsOutOfRange(err) {
				return ShapeRecord{}, false, nil
			}
			return ShapeRecord{}, false, err
		}
		if !present {
			return ShapeRecord{}, false, nil
		}
		attrs = decoded
	}

	return ShapeRecord{
		RecordNumber: rec.Number,
		Geometry:     rec.Geometry,
		Attributes:   attrs,
	}, true, nil
}

// ReadAllRecords reads every record in order, skipping deleted records
// and logging (but not failing on) individually malformed ones.
func (r *Reader) ReadAllRecords() ([]ShapeRecord, error) {
	count := r.RecordCount()
	records := make([]ShapeRecord, 0, count)
	for i := 0; i < count; i++ {
		rec, ok, err := r.ReadRecord(i)
		if err != nil {
			logging.Errorf("shapefile: skipping malformed record %d: %v", i, err)
			continue
		}
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Info returns a human-readable summary of the opened shapefile: record
// count, shape type, bounds, and field definitions.
func (r *Reader) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shapefile: %d records, shape type %v\n", r.RecordCount(), r.ShapeType())
	bounds := r.Bounds()
	fmt.Fprintf(&b, "  Bounds: (%.6f, %.6f) - (%.6f, %.6f)\n", bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY)
	fields := r.FieldDefinitions()
	fmt.Fprintf(&b, "  Fields: %d\n", len(fields))
	for _, f := range fields {
		fmt.Fprintf(&b, "    %s (%v, length %d, decimal %d)\n", f.Name, f.Type, f.Length, f.DecimalCount)
	}
	return b.String()
}

// ReadRecordsInBounds is the naive, un-indexed scan: it reads every
// record and keeps those whose geometry bounds intersect bbox. Callers
// who want better than O(n) should build an R-tree over the records
// instead (see the spatial package).
func (r *Reader) ReadRecordsInBounds(bbox geotypes.BoundingBox) ([]ShapeRecord, error) {
	all, err := r.ReadAllRecords()
	if err != nil {
		return nil, err
	}
	filtered := make([]ShapeRecord, 0, len(all))
	for _, rec := range all {
		if rec.Geometry.Bounds().Intersects(bbox) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}
