package shapefile

import (
	"geoshp/internal/dbf"
	"geoshp/internal/geotypes"
)

// ShapeRecord pairs a decoded geometry with its attribute map and 1-based
// on-disk record number. The record exclusively owns its
// geometry and attribute map; Clone produces an independent copy.
type ShapeRecord struct {
	RecordNumber int
	Geometry     geotypes.Geometry
	Attributes   map[string]dbf.FieldValue
}

// Clone returns a deep copy of r.
func (r ShapeRecord) Clone() ShapeRecord {
	attrs := make(map[string]dbf.FieldValue, len(r.Attributes))
	for k, v := range r.Attributes {
		attrs[k] = v
	}
	return ShapeRecord{
		RecordNumber: r.RecordNumber,
		Geometry:     r.Geometry.Clone(),
		Attributes:   attrs,
	}
}

// Attribute returns the named attribute as text, or "" if absent. This is
// the accessor the address parser and geocoder use to pull a configured
// address field out of a record.
func (r ShapeRecord) Attribute(name string) string {
	v, ok := r.Attributes[name]
	if !ok {
		return ""
	}
	return v.String()
}
