// Package shp decodes the ESRI .shp main file and the .shx index file:
// the shared 100-byte main header, the SHX offset/length table, and
// variant geometry records.
package shp

import (
	"io"

	"geoshp/internal/binio"
	"geoshp/internal/geoerr"
	"geoshp/internal/geotypes"
)

const (
	headerSize      = 100
	fileCodeValue   = 9994
	shxEntrySize    = 8
	recordHeadSize  = 8 // record number (4) + content length (4)
	shapeTypeBytes  = 4
	wordSizeInBytes = 2
)

// Header is the shared 100-byte .shp/.shx main header.
type Header struct {
	ShapeType       ShapeType
	Bounds          geotypes.BoundingBox
	FileLengthWords int32
}

// ReadHeader parses the fixed 100-byte main header from the current
// position of r (expected to be offset 0).
//
// Layout:
//
//	file code (BE i32)            must equal 9994
//	5 unused i32s                 skipped
//	file length (BE i32, words)
//	version (LE i32)
//	shape type (LE i32)
//	overall bbox: 4 LE doubles
//	Z/M ranges: 4 LE doubles      skipped
func ReadHeader(r *binio.Reader) (Header, error) {
	fileCode, err := r.ReadInt32(binio.BigEndian)
	if err != nil {
		return Header{}, err
	}
	if fileCode != fileCodeValue {
		return Header{}, geoerr.NewMalformedShp("bad file code")
	}

	if _, err := r.ReadBytes(5 * 4); err != nil { // 5 unused BE i32s
		return Header{}, err
	}

	fileLengthWords, err := r.ReadInt32(binio.BigEndian)
	if err != nil {
		return Header{}, err
	}
	if fileLengthWords < 0 {
		return Header{}, geoerr.NewMalformedShp("negative file length")
	}

	if _, err := r.ReadInt32(binio.LittleEndian); err != nil { // version
		return Header{}, err
	}

	shapeTypeRaw, err := r.ReadInt32(binio.LittleEndian)
	if err != nil {
		return Header{}, err
	}

	minX, err := r.ReadFloat64(binio.LittleEndian)
	if err != nil {
		return Header{}, err
	}
	minY, err := r.ReadFloat64(binio.LittleEndian)
	if err != nil {
		return Header{}, err
	}
	maxX, err := r.ReadFloat64(binio.LittleEndian)
	if err != nil {
		return Header{}, err
	}
	maxY, err := r.ReadFloat64(binio.LittleEndian)
	if err != nil {
		return Header{}, err
	}

	if _, err := r.ReadBytes(4 * 8); err != nil { // Z/M ranges
		return Header{}, err
	}

	return Header{
		ShapeType:       ShapeType(shapeTypeRaw),
		Bounds:          geotypes.NewBoundingBox(minX, minY, maxX, maxY),
		FileLengthWords: fileLengthWords,
	}, nil
}

// ShxEntry is one 8-byte .shx index entry.
type ShxEntry struct {
	OffsetWords int32
	LengthWords int32
}

// ReadShxIndex parses the full .shx file: the shared header followed by
// one 8-byte (offset, length) entry per record.
func ReadShxIndex(src io.ReadSeeker, fileSize int64) (Header, []ShxEntry, error) {
	r := binio.New(src)
	if err := r.SeekTo(0); err != nil {
		return Header{}, nil, err
	}
	header, err := ReadHeader(r)
	if err != nil {
		return Header{}, nil, err
	}

	remaining := fileSize - headerSize
	if remaining < 0 || remaining%shxEntrySize != 0 {
		return Header{}, nil, geoerr.NewMalformedShp("shx file length not a multiple of entry size")
	}
	count := int(remaining / shxEntrySize)

	entries := make([]ShxEntry, 0, count)
	for i := 0; i < count; i++ {
		offsetWords, err := r.ReadInt32(binio.BigEndian)
		if err != nil {
			return Header{}, nil, err
		}
		lengthWords, err := r.ReadInt32(binio.BigEndian)
		if err != nil {
			return Header{}, nil, err
		}
		if offsetWords < 0 || lengthWords < 0 {
			return Header{}, nil, geoerr.NewMalformedShp("negative shx offset or length")
		}
		entries = append(entries, ShxEntry{OffsetWords: offsetWords, LengthWords: lengthWords})
	}

	return header, entries, nil
}

// ByteOffset converts a word offset (as stored in the SHX table) to an
// absolute byte offset in the .shp file.
func (e ShxEntry) ByteOffset() int64 {
	return int64(e.OffsetWords) * wordSizeInBytes
}

// ByteLength converts a word length (as stored in the SHX table) to a
// byte count.
func (e ShxEntry) ByteLength() int64 {
	return int64(e.LengthWords) * wordSizeInBytes
}
