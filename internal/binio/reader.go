// Package binio is the low-level helper that reads fixed-width integers
// and IEEE-754 doubles from a seekable byte source.
//
// Shapefile headers mix big-endian (file code, file length, index
// offsets/lengths, record headers) with little-endian (everything else),
// so every read takes an explicit byte order. There is no buffered
// lookahead: callers seek to absolute offsets computed from header
// metadata and pull fixed-width fields directly off the wire.
package binio

import (
	"encoding/binary"
	"io"
	"math"

	"geoshp/internal/geoerr"
)

// Reader reads fixed-width fields from a seekable source at explicit
// offsets.
type Reader struct {
	src io.ReadSeeker
}

// New wraps src in a Reader.
func New(src io.ReadSeeker) *Reader {
	return &Reader{src: src}
}

// SeekTo seeks the underlying source to an absolute byte offset.
func (r *Reader) SeekTo(offset int64) error {
	if _, err := r.src.Seek(offset, io.SeekStart); err != nil {
		return geoerr.NewIOError("seek", err)
	}
	return nil
}

// ReadBytes reads exactly n bytes. Returns UnexpectedEOF if fewer than n
// bytes remain.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(r.src, buf)
	if err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, &geoerr.UnexpectedEOF{Wanted: n, Got: read}
		}
		return nil, geoerr.NewIOError("read", err)
	}
	return buf, nil
}

// ReadInt32 reads a 4-byte signed integer in the given byte order.
func (r *Reader) ReadInt32(order binary.ByteOrder) (int32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(order.Uint32(buf)), nil
}

// ReadUint32 reads a 4-byte unsigned integer in the given byte order.
func (r *Reader) ReadUint32(order binary.ByteOrder) (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(buf), nil
}

// ReadUint16 reads a 2-byte unsigned integer in the given byte order.
func (r *Reader) ReadUint16(order binary.ByteOrder) (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(buf), nil
}

// ReadFloat64 reads an 8-byte IEEE-754 double in the given byte order.
func (r *Reader) ReadFloat64(order binary.ByteOrder) (float64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	bits := order.Uint64(buf)
	return math.Float64frombits(bits), nil
}

// BigEndian and LittleEndian are re-exported so callers need not import
// encoding/binary themselves.
var (
	BigEndian    = binary.BigEndian
	LittleEndian = binary.LittleEndian
)

// DecodeInt32 decodes a 4-byte signed integer from a byte slice without an
// io.Reader, for callers (like the DBF field descriptor loop) that already
// hold the whole header in memory.
func DecodeInt32(b []byte, order binary.ByteOrder) int32 {
	return int32(order.Uint32(b))
}

// DecodeUint32 decodes a 4-byte unsigned integer from a byte slice.
func DecodeUint32(b []byte, order binary.ByteOrder) uint32 {
	return order.Uint32(b)
}

// DecodeUint16 decodes a 2-byte unsigned integer from a byte slice.
func DecodeUint16(b []byte, order binary.ByteOrder) uint16 {
	return order.Uint16(b)
}

// DecodeFloat64 decodes an 8-byte IEEE-754 double from a byte slice.
func DecodeFloat64(b []byte, order binary.ByteOrder) float64 {
	return math.Float64frombits(order.Uint64(b))
}
