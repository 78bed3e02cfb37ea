package geoshp

import "geoshp/internal/rtree"

// ReaderOptions configures the spatial index a ShapefileReader builds over
// its records.
type ReaderOptions struct {
	// MaxEntries is the R-tree fan-out per node. Values <= 1 fall back to
	// rtree.DefaultMaxEntries.
	MaxEntries int

	// BuildIndex controls whether Open eagerly builds a spatial index for
	// RangeQuery/Nearest/WithinDistance/PointInPolygon. When false,
	// RangeQuery falls back to a ReadRecordsInBounds linear scan, Nearest
	// and WithinDistance return an InvalidQuery error, and PointInPolygon
	// reports no hit.
	BuildIndex bool
}

// DefaultReaderOptions returns the default reader options: a spatial index
// is built eagerly with the R-tree's default fan-out.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{
		MaxEntries: rtree.DefaultMaxEntries,
		BuildIndex: true,
	}
}

// GeocoderOptions configures a Geocoder's address ingestion.
type GeocoderOptions struct {
	// AddressField is the .dbf attribute column Load reads raw address
	// text from. DefaultAddressField is used when empty.
	AddressField string
}

// DefaultGeocoderOptions returns the default geocoder options.
func DefaultGeocoderOptions() GeocoderOptions {
	return GeocoderOptions{AddressField: DefaultAddressField}
}
