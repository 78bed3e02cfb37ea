package geoshp

import (
	"fmt"

	"geoshp/internal/geoerr"
)

// IsInvalidQuery reports whether err is (or wraps) an invalid-query error:
// a non-positive k to Nearest, a negative distance to WithinDistance or
// ReverseGeocode.
func IsInvalidQuery(err error) bool {
	return geoerr.IsInvalidQuery(err)
}

// IsOutOfRange reports whether err is (or wraps) a record-index-out-of-range
// error.
func IsOutOfRange(err error) bool {
	return geoerr.IsOutOfRange(err)
}

func errNoSpatialIndex(op string) error {
	return geoerr.NewInvalidQuery(fmt.Sprintf("%s: no spatial index was built (see ReaderOptions.BuildIndex)", op))
}
