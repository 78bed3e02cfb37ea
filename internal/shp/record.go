package shp

import (
	"bytes"

	"geoshp/internal/binio"
	"geoshp/internal/geoerr"
	"geoshp/internal/geotypes"
)

// Record is a decoded .shp geometry record plus its 1-based on-disk
// record number.
type Record struct {
	Number   int
	Geometry geotypes.Geometry
}

// ReadRecordAt reads the record whose content begins at byteOffset (as
// given by the corresponding .shx entry) from src.
//
// Each record is:
//
//	record number (BE i32, 1-based)
//	content length (BE i32, in 16-bit words)
//	record shape type (LE i32) -- may be NullShape regardless of file-level type
//	variant body
//
// The record's content is bounded by its declared length; this decoder
// never reads past that boundary even if the variant's own counts would
// imply more data, by parsing out of a fixed-size buffer rather than the
// live source.
func ReadRecordAt(r *binio.Reader, byteOffset int64) (Record, error) {
	if err := r.SeekTo(byteOffset); err != nil {
		return Record{}, err
	}

	recordNumber, err := r.ReadInt32(binio.BigEndian)
	if err != nil {
		return Record{}, err
	}
	contentLengthWords, err := r.ReadInt32(binio.BigEndian)
	if err != nil {
		return Record{}, err
	}
	if contentLengthWords < 0 {
		return Record{}, geoerr.NewMalformedShp("negative content length")
	}

	bodyBytes := int(contentLengthWords) * wordSizeInBytes
	if bodyBytes < shapeTypeBytes {
		return Record{}, geoerr.NewMalformedShp("content length shorter than shape type field")
	}

	body, err := r.ReadBytes(bodyBytes)
	if err != nil {
		return Record{}, err
	}

	geom, err := decodeGeometryBody(body)
	if err != nil {
		if geoerr.IsUnexpectedEOF(err) {
			return Record{}, geoerr.NewMalformedShp("content length shorter than variant demands")
		}
		return Record{}, err
	}

	return Record{Number: int(recordNumber), Geometry: geom}, nil
}

// decodeGeometryBody parses a record's bounded content bytes (shape type
// onward) into a Geometry. All reads are bounds-checked against body's
// length, which is exactly the record's declared content length -- a
// part index or point count that would read past the end of body fails
// with MalformedShp rather than reading adjacent records' bytes.
func decodeGeometryBody(body []byte) (geotypes.Geometry, error) {
	br := binio.New(bytes.NewReader(body))

	shapeTypeRaw, err := br.ReadInt32(binio.LittleEndian)
	if err != nil {
		return geotypes.Geometry{}, err
	}
	shapeType := ShapeType(shapeTypeRaw)

	if shapeType == ShapeTypeNull || !shapeType.supported() {
		return geotypes.NullGeometry(), nil
	}

	switch shapeType {
	case ShapeTypePoint:
		x, err := br.ReadFloat64(binio.LittleEndian)
		if err != nil {
			return geotypes.Geometry{}, err
		}
		y, err := br.ReadFloat64(binio.LittleEndian)
		if err != nil {
			return geotypes.Geometry{}, err
		}
		return geotypes.NewPointGeometry(geotypes.NewPoint(x, y)), nil

	case ShapeTypePolyLine, ShapeTypePolygon:
		return decodePartedGeometry(br, shapeType)

	default:
		return geotypes.NullGeometry(), nil
	}
}

// decodePartedGeometry decodes the shared Polyline/Polygon body: bbox,
// part count, point count, part-start indices, then (x, y) pairs sliced
// into parts by the start indices (the last part extends to num_points).
func decodePartedGeometry(br *binio.Reader, shapeType ShapeType) (geotypes.Geometry, error) {
	// bbox (4 doubles) -- not re-validated against the points, just
	// consumed; the geometry's own Bounds() is recomputed from points.
	if _, err := br.ReadBytes(4 * 8); err != nil {
		return geotypes.Geometry{}, err
	}

	numParts, err := br.ReadInt32(binio.LittleEndian)
	if err != nil {
		return geotypes.Geometry{}, err
	}
	numPoints, err := br.ReadInt32(binio.LittleEndian)
	if err != nil {
		return geotypes.Geometry{}, err
	}
	if numParts < 0 || numPoints < 0 {
		return geotypes.Geometry{}, geoerr.NewMalformedShp("negative part or point count")
	}

	partStarts := make([]int32, numParts)
	for i := range partStarts {
		v, err := br.ReadInt32(binio.LittleEndian)
		if err != nil {
			return geotypes.Geometry{}, err
		}
		partStarts[i] = v
	}

	points := make([]geotypes.Point, numPoints)
	for i := range points {
		x, err := br.ReadFloat64(binio.LittleEndian)
		if err != nil {
			return geotypes.Geometry{}, err
		}
		y, err := br.ReadFloat64(binio.LittleEndian)
		if err != nil {
			return geotypes.Geometry{}, err
		}
		points[i] = geotypes.NewPoint(x, y)
	}

	parts := make([][]geotypes.Point, 0, numParts)
	for i, start := range partStarts {
		if start < 0 || int(start) > len(points) {
			return geotypes.Geometry{}, geoerr.NewMalformedShp("part start index out of range")
		}
		end := len(points)
		if i+1 < len(partStarts) {
			next := partStarts[i+1]
			if next < start || int(next) > len(points) {
				return geotypes.Geometry{}, geoerr.NewMalformedShp("part start index out of range")
			}
			end = int(next)
		}
		parts = append(parts, points[start:end])
	}

	if shapeType == ShapeTypePolygon {
		return geotypes.NewPolygonGeometry(parts), nil
	}
	return geotypes.NewPolylineGeometry(parts), nil
}
