package geocode

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"geoshp/internal/geoerr"
	"geoshp/internal/geotypes"
	"geoshp/internal/logging"
	"geoshp/internal/rtree"
	"geoshp/internal/shapefile"
)

// DefaultAddressField is the attribute column Load reads the raw address
// text from when the caller doesn't specify one.
const DefaultAddressField = "ADDRESS"

// confidenceThreshold is the minimum forward-geocode confidence score a
// candidate must clear to be returned at all.
const confidenceThreshold = 0.3

// exactMatchThreshold is the confidence score above which a forward-geocode
// result is reported as match type "exact" rather than "fuzzy".
const exactMatchThreshold = 0.9

// Weights for the confidence score's components: street-name similarity,
// house-number equality, city similarity, zip equality.
const (
	weightStreet = 0.4
	weightHouse  = 0.3
	weightCity   = 0.2
	weightZip    = 0.1
)

// GeocodeResult is the outcome of a forward or reverse geocode. An unset
// result has zero Confidence and an empty MatchType.
type GeocodeResult struct {
	Coordinate     geotypes.Point
	MatchedAddress ParsedAddress
	Confidence     float64
	MatchType      string
}

// Geocoder owns a vector of shapefile records and three inverted indexes
// over their parsed address components (street, city, zip), plus a
// spatial index over the same records for reverse geocoding.
//
// The record vector is owned exclusively here; the spatial index holds
// only opaque positions into it and is re-resolved against this vector on
// every query, avoiding a pointer aliased across two owners.
//
// Not safe for concurrent use: no operation on one Geocoder may run
// concurrently with any other.
type Geocoder struct {
	records   []shapefile.ShapeRecord
	addresses []ParsedAddress
	streetIdx map[string]*roaring.Bitmap
	cityIdx   map[string]*roaring.Bitmap
	zipIdx    map[string]*roaring.Bitmap
	spatial   *rtree.RTree
}

// NewGeocoder returns an empty geocoder, ready for Load.
func NewGeocoder() *Geocoder {
	return &Geocoder{
		streetIdx: make(map[string]*roaring.Bitmap),
		cityIdx:   make(map[string]*roaring.Bitmap),
		zipIdx:    make(map[string]*roaring.Bitmap),
		spatial:   rtree.New(rtree.DefaultMaxEntries),
	}
}

// Load opens the shapefile at base, reads every record, extracts and
// parses the addressField attribute (DefaultAddressField if empty) from
// each, and builds the inverted indexes and spatial index in the same
// pass. Every record gets its geometry indexed spatially; each non-empty
// street, city, or zip component of its parsed address is added to the
// matching text index whether or not the address is IsValid, so a record
// with an empty or unparseable address contributes to no text index.
func (g *Geocoder) Load(base, addressField string) error {
	if addressField == "" {
		addressField = DefaultAddressField
	}

	reader, err := shapefile.Open(base)
	if err != nil {
		return err
	}
	defer reader.Close()

	records, err := reader.ReadAllRecords()
	if err != nil {
		return err
	}

	g.records = records
	g.addresses = make([]ParsedAddress, len(records))

	for i, rec := range records {
		raw := rec.Attribute(addressField)
		addr := Parse(raw)
		g.addresses[i] = addr

		if addr.StreetName != "" {
			g.addToIndex(g.streetIdx, addr.StreetName, i)
		}
		if addr.City != "" {
			g.addToIndex(g.cityIdx, addr.City, i)
		}
		if addr.ZipCode != "" {
			g.addToIndex(g.zipIdx, zipPrefix(addr.ZipCode), i)
		}

		g.spatial.Insert(rec.Geometry.Bounds(), i)
	}

	logging.Infof("geocoder: loaded %d records from %s", len(records), base)
	return nil
}

func (g *Geocoder) addToIndex(idx map[string]*roaring.Bitmap, key string, recordIdx int) {
	bitmap, ok := idx[key]
	if !ok {
		bitmap = roaring.New()
		idx[key] = bitmap
	}
	bitmap.Add(uint32(recordIdx))
}

// Geocode resolves a free-text address to the best-matching record's
// coordinate. Returns an unset GeocodeResult (confidence 0, empty
// MatchType) if the input is empty, doesn't parse to a valid address, or
// no candidate clears the confidence threshold.
func (g *Geocoder) Geocode(s string) GeocodeResult {
	if s == "" {
		return GeocodeResult{}
	}

	query := Parse(s)
	if !query.IsValid() {
		return GeocodeResult{}
	}

	bitmap, ok := g.streetIdx[query.StreetName]
	if !ok {
		return GeocodeResult{}
	}

	var best GeocodeResult
	iter := bitmap.Iterator()
	for iter.HasNext() {
		recordIdx := int(iter.Next())
		candidate := g.addresses[recordIdx]
		score := confidenceScore(query, candidate)
		if score < confidenceThreshold || score <= best.Confidence {
			continue
		}
		matchType := "fuzzy"
		if score > exactMatchThreshold {
			matchType = "exact"
		}
		best = GeocodeResult{
			Coordinate:     g.records[recordIdx].Geometry.Centroid(),
			MatchedAddress: candidate,
			Confidence:     score,
			MatchType:      matchType,
		}
	}

	return best
}

// confidenceScore computes the weighted similarity between a parsed
// query address and a parsed candidate address. Missing components on
// either side simply don't contribute -- there's no renormalization by
// how many components were present.
func confidenceScore(query, candidate ParsedAddress) float64 {
	var score float64
	if query.StreetName != "" && candidate.StreetName != "" {
		score += weightStreet * JaroWinklerSimilarity(query.StreetName, candidate.StreetName)
	}
	if query.HouseNumber != "" && candidate.HouseNumber != "" && query.HouseNumber == candidate.HouseNumber {
		score += weightHouse
	}
	if query.City != "" && candidate.City != "" {
		score += weightCity * JaroWinklerSimilarity(query.City, candidate.City)
	}
	if query.ZipCode != "" && candidate.ZipCode != "" && zipPrefix(query.ZipCode) == zipPrefix(candidate.ZipCode) {
		score += weightZip
	}
	return score
}

// BatchGeocode geocodes each input string in order.
func (g *Geocoder) BatchGeocode(inputs []string) []GeocodeResult {
	results := make([]GeocodeResult, len(inputs))
	for i, s := range inputs {
		results[i] = g.Geocode(s)
	}
	return results
}

// ReverseGeocode resolves a coordinate to the record that contains it
// (confidence 1.0, match type "reverse"), or, failing that, the closest
// record within maxDistance of the point by centroid distance (confidence
// 1 - distance/maxDistance). Returns an unset result if no record
// qualifies.
func (g *Geocoder) ReverseGeocode(point geotypes.Point, maxDistance float64) (GeocodeResult, error) {
	if maxDistance < 0 {
		return GeocodeResult{}, geoerr.NewInvalidQuery("ReverseGeocode: maxDistance must be non-negative")
	}

	if recordIdx, ok := g.pointInPolygon(point); ok {
		return GeocodeResult{
			Coordinate:     g.records[recordIdx].Geometry.Centroid(),
			MatchedAddress: g.addresses[recordIdx],
			Confidence:     1.0,
			MatchType:      "reverse",
		}, nil
	}

	bestIdx := -1
	bestDist := math.Inf(1)
	for i, rec := range g.records {
		dist := point.DistanceTo(rec.Geometry.Centroid())
		if dist <= maxDistance && dist < bestDist {
			bestIdx = i
			bestDist = dist
		}
	}
	if bestIdx == -1 {
		return GeocodeResult{}, nil
	}

	confidence := 1.0
	if maxDistance > 0 {
		confidence = 1 - bestDist/maxDistance
	}
	return GeocodeResult{
		Coordinate:     g.records[bestIdx].Geometry.Centroid(),
		MatchedAddress: g.addresses[bestIdx],
		Confidence:     confidence,
		MatchType:      "reverse",
	}, nil
}

const pointInPolygonEpsilon = 1e-4

// pointInPolygon is the geocoder's own point-in-polygon lookup: it
// range-queries its spatial index directly and resolves hits through its
// own record vector, rather than delegating to the spatial package (which
// would need its own copy of the same records).
func (g *Geocoder) pointInPolygon(point geotypes.Point) (int, bool) {
	search := geotypes.FromPoint(point).Expand(pointInPolygonEpsilon)
	for _, recordIdx := range g.spatial.RangeQuery(search) {
		if g.records[recordIdx].Geometry.Contains(point) {
			return recordIdx, true
		}
	}
	return -1, false
}

// Statistics is a human-readable summary of the loaded dataset.
type Statistics struct {
	RecordCount int
	StreetCount int
	CityCount   int
	ZipCount    int
}

// Statistics returns the current record and per-index entry counts.
func (g *Geocoder) Statistics() Statistics {
	return Statistics{
		RecordCount: len(g.records),
		StreetCount: len(g.streetIdx),
		CityCount:   len(g.cityIdx),
		ZipCount:    len(g.zipIdx),
	}
}

// String renders Statistics as a short human-readable summary.
func (s Statistics) String() string {
	return fmt.Sprintf("records=%d streets=%d cities=%d zips=%d", s.RecordCount, s.StreetCount, s.CityCount, s.ZipCount)
}
