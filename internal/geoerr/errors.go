// Package geoerr defines the error taxonomy shared by the decoders, the
// R-tree, and the geocoder: IOError, MalformedShp, MalformedDbf,
// OutOfRange, and InvalidQuery.
package geoerr

import (
	"errors"
	"fmt"
)

// IOError wraps a failure from an underlying byte source (file open,
// read, or seek failure). It is distinct from UnexpectedEOF, which
// indicates the source was reachable but shorter than the format demands.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error during %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// NewIOError wraps err as an IOError for operation op. Returns nil if err
// is nil.
func NewIOError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Err: err}
}

// UnexpectedEOF indicates fewer bytes remained in the source than the
// format required.
type UnexpectedEOF struct {
	Wanted, Got int
}

func (e *UnexpectedEOF) Error() string {
	return fmt.Sprintf("unexpected EOF: wanted %d bytes, got %d", e.Wanted, e.Got)
}

// MalformedShp indicates a structural violation of the .shp/.shx wire
// format: bad file code, negative counts, a content length shorter than
// the variant demands, or a part index out of range.
type MalformedShp struct {
	Reason string
}

func (e *MalformedShp) Error() string {
	return fmt.Sprintf("malformed shp: %s", e.Reason)
}

// NewMalformedShp constructs a MalformedShp with the given reason.
func NewMalformedShp(reason string) error {
	return &MalformedShp{Reason: reason}
}

// MalformedDbf indicates a structural violation of the dBase III wire
// format: a missing header terminator, field descriptors overrunning the
// declared header length, or an invalid field length.
type MalformedDbf struct {
	Reason string
}

func (e *MalformedDbf) Error() string {
	return fmt.Sprintf("malformed dbf: %s", e.Reason)
}

// NewMalformedDbf constructs a MalformedDbf with the given reason.
func NewMalformedDbf(reason string) error {
	return &MalformedDbf{Reason: reason}
}

// OutOfRange indicates the caller requested a record index >= the record
// count.
type OutOfRange struct {
	Index, Count int
}

func (e *OutOfRange) Error() string {
	return fmt.Sprintf("record index %d out of range (count=%d)", e.Index, e.Count)
}

// InvalidQuery indicates a syntactically invalid query argument: k=0 to
// k-NN, or a negative distance to within-distance. Trivially empty inputs
// (an empty geocode string) are not InvalidQuery; they produce an empty
// result instead.
type InvalidQuery struct {
	Reason string
}

func (e *InvalidQuery) Error() string {
	return fmt.Sprintf("invalid query: %s", e.Reason)
}

// NewInvalidQuery constructs an InvalidQuery with the given reason.
func NewInvalidQuery(reason string) error {
	return &InvalidQuery{Reason: reason}
}

// Is* helpers let callers branch on the taxonomy without importing the
// concrete types directly.

func IsMalformedShp(err error) bool {
	var target *MalformedShp
	return errors.As(err, &target)
}

func IsMalformedDbf(err error) bool {
	var target *MalformedDbf
	return errors.As(err, &target)
}

func IsOutOfRange(err error) bool {
	var target *OutOfRange
	return errors.As(err, &target)
}

func IsInvalidQuery(err error) bool {
	var target *InvalidQuery
	return errors.As(err, &target)
}

func IsUnexpectedEOF(err error) bool {
	var target *UnexpectedEOF
	return errors.As(err, &target)
}
