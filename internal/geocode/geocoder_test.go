package geocode

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoshp/internal/geotypes"
)

func putBE32g(buf *bytes.Buffer, v int32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}

func putLE32g(buf *bytes.Buffer, v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}

func putLE64g(buf *bytes.Buffer, v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	buf.Write(b[:])
}

func putUint32LEg(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func putUint16LEg(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

// buildAddressedPolygonShapefile writes a .shp/.shx/.dbf triple under
// dir/base holding one square polygon record centered at (cx, cy) with a
// single dbf field ADDRESS:C:addrWidth carrying address.
func buildAddressedPolygonShapefile(t *testing.T, dir, base string, cx, cy float64, address string) string {
	t.Helper()

	half := 5.0
	ring := []geotypes.Point{
		{X: cx - half, Y: cy - half},
		{X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half},
		{X: cx - half, Y: cy + half},
		{X: cx - half, Y: cy - half},
	}

	var body bytes.Buffer
	putLE32g(&body, 5) // shape type Polygon
	putLE64g(&body, cx-half)
	putLE64g(&body, cy-half)
	putLE64g(&body, cx+half)
	putLE64g(&body, cy+half)
	putLE32g(&body, 1)                // num parts
	putLE32g(&body, int32(len(ring))) // num points
	putLE32g(&body, 0)              // part start
	for _, p := range ring {
		putLE64g(&body, p.X)
		putLE64g(&body, p.Y)
	}

	var record bytes.Buffer
	putBE32g(&record, 1)
	putBE32g(&record, int32(body.Len()/2))
	record.Write(body.Bytes())

	fileLengthWords := int32((100 + record.Len()) / 2)

	var mainHeader bytes.Buffer
	putBE32g(&mainHeader, 9994)
	for i := 0; i < 5; i++ {
		putBE32g(&mainHeader, 0)
	}
	putBE32g(&mainHeader, fileLengthWords)
	putLE32g(&mainHeader, 1000)
	putLE32g(&mainHeader, 5) // shape type Polygon
	putLE64g(&mainHeader, cx-half)
	putLE64g(&mainHeader, cy-half)
	putLE64g(&mainHeader, cx+half)
	putLE64g(&mainHeader, cy+half)
	for i := 0; i < 4; i++ {
		putLE64g(&mainHeader, 0)
	}

	var shp bytes.Buffer
	shp.Write(mainHeader.Bytes())
	shp.Write(record.Bytes())

	var shx bytes.Buffer
	shx.Write(mainHeader.Bytes())
	putBE32g(&shx, 50)
	putBE32g(&shx, int32(body.Len()/2))

	const addrWidth = 40
	const headerFixedSize = 32
	const fieldDescriptorSize = 32
	dbfHeaderLen := headerFixedSize + fieldDescriptorSize + 1
	recordLen := 1 + addrWidth

	var dbf bytes.Buffer
	header := make([]byte, headerFixedSize)
	putUint32LEg(header[4:8], 1)
	putUint16LEg(header[8:10], uint16(dbfHeaderLen))
	putUint16LEg(header[10:12], uint16(recordLen))
	dbf.Write(header)

	desc := make([]byte, fieldDescriptorSize)
	copy(desc[0:11], "ADDRESS")
	desc[11] = 'C'
	desc[16] = addrWidth
	dbf.Write(desc)
	dbf.WriteByte(0x0D)

	dbf.WriteByte(' ')
	field := make([]byte, addrWidth)
	copy(field, address)
	for i := len(address); i < addrWidth; i++ {
		field[i] = ' '
	}
	dbf.Write(field)

	if err := os.WriteFile(filepath.Join(dir, base+".shp"), shp.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, base+".shx"), shx.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, base+".dbf"), dbf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	return filepath.Join(dir, base)
}

func TestGeocoderLoadAndForwardGeocode(t *testing.T) {
	dir := t.TempDir()
	base := buildAddressedPolygonShapefile(t, dir, "addr", 0, 0, "123 MAIN STREET ANYTOWN CA 12345")

	g := NewGeocoder()
	require.NoError(t, g.Load(base, ""))

	stats := g.Statistics()
	assert.Equal(t, 1, stats.RecordCount)
	assert.Equal(t, 1, stats.StreetCount)
	assert.Equal(t, 1, stats.CityCount)
	assert.Equal(t, 1, stats.ZipCount)

	result := g.Geocode("123 Main Street, Anytown, CA 12345")
	require.NotEmpty(t, result.MatchType, "expected a match for an address matching the loaded record")
	assert.Equal(t, geotypes.Point{X: 0, Y: 0}, result.Coordinate)
	assert.Greater(t, result.Confidence, confidenceThreshold)
}

func TestGeocoderGeocodeNoMatch(t *testing.T) {
	dir := t.TempDir()
	base := buildAddressedPolygonShapefile(t, dir, "addr", 0, 0, "123 MAIN STREET ANYTOWN CA 12345")

	g := NewGeocoder()
	require.NoError(t, g.Load(base, ""))

	result := g.Geocode("999 Nonexistent Boulevard, Nowhere, WY 99999")
	assert.Empty(t, result.MatchType, "should not match an unrelated address")
}

func TestGeocoderGeocodeEmptyInput(t *testing.T) {
	g := NewGeocoder()
	result := g.Geocode("")
	assert.Empty(t, result.MatchType)
	assert.Zero(t, result.Confidence)
}

func TestGeocoderBatchGeocode(t *testing.T) {
	dir := t.TempDir()
	base := buildAddressedPolygonShapefile(t, dir, "addr", 0, 0, "123 MAIN STREET ANYTOWN CA 12345")

	g := NewGeocoder()
	require.NoError(t, g.Load(base, ""))

	results := g.BatchGeocode([]string{
		"123 Main Street, Anytown, CA 12345",
		"",
	})
	require.Len(t, results, 2)
	assert.NotEmpty(t, results[0].MatchType, "expected a match")
	assert.Empty(t, results[1].MatchType, "expected no match for empty input")
}

func TestGeocoderReverseGeocodeContainment(t *testing.T) {
	dir := t.TempDir()
	base := buildAddressedPolygonShapefile(t, dir, "addr", 100, 100, "1 CIVIC CENTER PLAZA SPRINGFIELD IL 62701")

	g := NewGeocoder()
	require.NoError(t, g.Load(base, ""))

	result, err := g.ReverseGeocode(geotypes.Point{X: 100, Y: 100}, 1)
	require.NoError(t, err)
	assert.Equal(t, "reverse", result.MatchType)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestGeocoderReverseGeocodeNearestFallback(t *testing.T) {
	dir := t.TempDir()
	base := buildAddressedPolygonShapefile(t, dir, "addr", 0, 0, "1 CIVIC CENTER PLAZA SPRINGFIELD IL 62701")

	g := NewGeocoder()
	require.NoError(t, g.Load(base, ""))

	result, err := g.ReverseGeocode(geotypes.Point{X: 20, Y: 0}, 100)
	require.NoError(t, err)
	assert.Equal(t, "reverse", result.MatchType)
	assert.Greater(t, result.Confidence, 0.0)
	assert.Less(t, result.Confidence, 1.0)
}

func TestGeocoderReverseGeocodeOutOfRange(t *testing.T) {
	dir := t.TempDir()
	base := buildAddressedPolygonShapefile(t, dir, "addr", 0, 0, "1 CIVIC CENTER PLAZA SPRINGFIELD IL 62701")

	g := NewGeocoder()
	require.NoError(t, g.Load(base, ""))

	result, err := g.ReverseGeocode(geotypes.Point{X: 1000, Y: 1000}, 1)
	require.NoError(t, err)
	assert.Empty(t, result.MatchType)
}

func TestGeocoderReverseGeocodeRejectsNegativeDistance(t *testing.T) {
	g := NewGeocoder()
	_, err := g.ReverseGeocode(geotypes.Point{X: 0, Y: 0}, -1)
	assert.Error(t, err)
}
