// Package dbf decodes a dBase III-compatible attribute stream: the
// header, its field descriptors, and typed per-record field values.
package dbf

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"geoshp/internal/binio"
	"geoshp/internal/geoerr"
	"geoshp/internal/logging"
)

const (
	headerFixedSize     = 32
	fieldDescriptorSize = 32
	headerTerminator    = 0x0D
	deletionFlagDeleted = '*'
)

// Decoder reads header metadata and individual records from a .dbf byte
// source. It keeps the source open and seeks to each record's computed
// offset on demand; there is no in-memory cache of records beyond the
// header and field descriptors.
type Decoder struct {
	reader       *binio.Reader
	recordCount  int
	headerLength uint16
	recordLength uint16
	fields       []FieldDefinition
}

// Open parses the .dbf header and field descriptors from src and returns a
// Decoder ready to serve RecordCount/Fields/Record calls.
func Open(src io.ReadSeeker) (*Decoder, error) {
	r := binio.New(src)
	if err := r.SeekTo(0); err != nil {
		return nil, err
	}

	header, err := r.ReadBytes(headerFixedSize)
	if err != nil {
		return nil, err
	}

	recordCount := binio.DecodeUint32(header[4:8], binio.LittleEndian)
	headerLength := binio.DecodeUint16(header[8:10], binio.LittleEndian)
	recordLength := binio.DecodeUint16(header[10:12], binio.LittleEndian)

	if headerLength < headerFixedSize+1 {
		return nil, geoerr.NewMalformedDbf("header length shorter than fixed header")
	}

	descriptorBytes := int(headerLength) - headerFixedSize - 1 // -1 for the 0x0D terminator
	if descriptorBytes < 0 || descriptorBytes%fieldDescriptorSize != 0 {
		return nil, geoerr.NewMalformedDbf("field descriptors overrun declared header length")
	}

	fieldCount := descriptorBytes / fieldDescriptorSize
	fields := make([]FieldDefinition, 0, fieldCount)
	for i := 0; i < fieldCount; i++ {
		desc, err := r.ReadBytes(fieldDescriptorSize)
		if err != nil {
			return nil, err
		}
		name := strings.TrimRight(string(bytes.TrimRight(desc[0:11], "\x00")), " ")
		typeChar := desc[11]
		length := int(desc[16])
		decimalCount := int(desc[17])
		fields = append(fields, FieldDefinition{
			Name:         name,
			Type:         fieldTypeFromByte(typeChar),
			Length:       length,
			DecimalCount: decimalCount,
		})
	}

	terminator, err := r.ReadBytes(1)
	if err != nil {
		return nil, err
	}
	if terminator[0] != headerTerminator {
		return nil, geoerr.NewMalformedDbf("missing header terminator byte")
	}

	logging.Debugf("dbf: parsed header, %d records, %d fields", recordCount, len(fields))

	return &Decoder{
		reader:       r,
		recordCount:  int(recordCount),
		headerLength: headerLength,
		recordLength: recordLength,
		fields:       fields,
	}, nil
}

// RecordCount returns the number of records declared in the header.
func (d *Decoder) RecordCount() int { return d.recordCount }

// Fields returns the field (column) definitions in on-disk order.
func (d *Decoder) Fields() []FieldDefinition {
	return append([]FieldDefinition(nil), d.fields...)
}

// Record reads record i (0-based) and decodes it into a field-name-keyed
// attribute map. Returns (nil, false, nil) if the record is flagged
// deleted on disk. Returns geoerr.OutOfRange if i >= RecordCount().
func (d *Decoder) Record(i int) (map[string]FieldValue, bool, error) {
	if i < 0 || i >= d.recordCount {
		return nil, false, &geoerr.OutOfRange{Index: i, Count: d.recordCount}
	}

	offset := int64(d.headerLength) + int64(i)*int64(d.recordLength)
	if err := d.reader.SeekTo(offset); err != nil {
		return nil, false, err
	}

	raw, err := d.reader.ReadBytes(int(d.recordLength))
	if err != nil {
		return nil, false, err
	}

	if raw[0] == deletionFlagDeleted {
		return nil, false, nil
	}

	attrs := make(map[string]FieldValue, len(d.fields))
	pos := 1 // byte 0 is the deletion flag
	for _, field := range d.fields {
		end := pos + field.Length
		if end > len(raw) {
			end = len(raw)
		}
		cell := strings.TrimSpace(string(raw[pos:end]))
		attrs[field.Name] = convertFieldValue(field.Type, cell)
		pos = end
	}

	return attrs, true, nil
}

// convertFieldValue maps a trimmed ASCII field value per FieldType:
// Character -> text; Numeric/Float -> double (0.0 on parse failure, not
// an error); Logical -> boolean, true iff the trimmed value is one of
// T/t/Y/y; Date -> text (not parsed); Unknown -> text.
func convertFieldValue(t FieldType, raw string) FieldValue {
	switch t {
	case Numeric, Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return DoubleValue(0.0)
		}
		return DoubleValue(f)
	case Logical:
		switch raw {
		case "T", "t", "Y", "y":
			return BoolValue(true)
		default:
			return BoolValue(false)
		}
	default:
		return TextValue(raw)
	}
}
