package geoshp

import "geoshp/internal/geocode"

// DefaultAddressField is the .dbf attribute column Load reads raw address
// text from when the caller doesn't configure one.
const DefaultAddressField = geocode.DefaultAddressField

// ParsedAddress is a free-text address broken into its structural
// components.
type ParsedAddress = geocode.ParsedAddress

// GeocodeResult is the outcome of a forward or reverse geocode.
type GeocodeResult = geocode.GeocodeResult

// GeocoderStatistics is a human-readable summary of a geocoder's loaded
// dataset.
type GeocoderStatistics = geocode.Statistics

// ParseAddress parses free-text address s into its structural components.
func ParseAddress(s string) ParsedAddress {
	return geocode.Parse(s)
}

// NormalizeAddress upper-cases s, collapses punctuation and whitespace,
// and trims it -- the same normalization ParseAddress applies internally.
func NormalizeAddress(s string) string {
	return geocode.Normalize(s)
}

// Geocoder resolves free-text addresses to coordinates (forward geocoding)
// and coordinates to addresses (reverse geocoding) against a loaded
// shapefile.
//
// Not safe for concurrent use: no operation on one Geocoder may run
// concurrently with any other.
type Geocoder struct {
	inner *geocode.Geocoder
}

// NewGeocoder returns an empty geocoder, ready for Load.
func NewGeocoder() *Geocoder {
	return &Geocoder{inner: geocode.NewGeocoder()}
}

// Load opens the shapefile at base with default options (DefaultAddressField)
// and builds the geocoder's inverted and spatial indexes.
func (g *Geocoder) Load(base string) error {
	return g.inner.Load(base, DefaultAddressField)
}

// LoadWithOptions opens the shapefile at base and builds the geocoder's
// inverted and spatial indexes using opts.AddressField as the address
// attribute column.
func (g *Geocoder) LoadWithOptions(base string, opts GeocoderOptions) error {
	return g.inner.Load(base, opts.AddressField)
}

// Geocode resolves a free-text address to the best-matching record's
// coordinate. Returns an unset GeocodeResult if the input is empty,
// doesn't parse to a valid address, or no candidate clears the confidence
// threshold.
func (g *Geocoder) Geocode(s string) GeocodeResult {
	return g.inner.Geocode(s)
}

// BatchGeocode geocodes each input string in order.
func (g *Geocoder) BatchGeocode(inputs []string) []GeocodeResult {
	return g.inner.BatchGeocode(inputs)
}

// ReverseGeocode resolves a coordinate to the record that contains it, or
// failing that, the closest record within maxDistance. Returns an
// InvalidQuery error if maxDistance is negative.
func (g *Geocoder) ReverseGeocode(point Point, maxDistance float64) (GeocodeResult, error) {
	return g.inner.ReverseGeocode(point, maxDistance)
}

// Statistics returns the current record and per-index entry counts.
func (g *Geocoder) Statistics() GeocoderStatistics {
	return g.inner.Statistics()
}
