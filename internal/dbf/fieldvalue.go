package dbf

import "fmt"

// FieldType enumerates the dBase III field types this decoder recognizes.
// Any on-disk type character not in {C,N,L,D,F} decodes as Unknown.
type FieldType int

const (
	Character FieldType = iota
	Numeric
	Logical
	Date
	Float
	Unknown
)

// String returns the canonical one-letter dBase type code, or "?" for
// Unknown.
func (t FieldType) String() string {
	switch t {
	case Character:
		return "C"
	case Numeric:
		return "N"
	case Logical:
		return "L"
	case Date:
		return "D"
	case Float:
		return "F"
	default:
		return "?"
	}
}

func fieldTypeFromByte(b byte) FieldType {
	switch b {
	case 'C':
		return Character
	case 'N':
		return Numeric
	case 'L':
		return Logical
	case 'D':
		return Date
	case 'F':
		return Float
	default:
		return Unknown
	}
}

// ValueKind tags the variant held by a FieldValue.
type ValueKind int

const (
	KindText ValueKind = iota
	KindDouble
	KindBool
	KindInteger
)

// FieldValue is the sum type over {text, double, boolean, integer} that a
// decoded attribute column cell holds.
type FieldValue struct {
	Kind    ValueKind
	Text    string
	Double  float64
	Bool    bool
	Integer int64
}

// TextValue constructs a text FieldValue.
func TextValue(s string) FieldValue { return FieldValue{Kind: KindText, Text: s} }

// DoubleValue constructs a double FieldValue.
func DoubleValue(f float64) FieldValue { return FieldValue{Kind: KindDouble, Double: f} }

// BoolValue constructs a boolean FieldValue.
func BoolValue(b bool) FieldValue { return FieldValue{Kind: KindBool, Bool: b} }

// IntegerValue constructs an integer FieldValue.
func IntegerValue(i int64) FieldValue { return FieldValue{Kind: KindInteger, Integer: i} }

// String renders the value as text regardless of its kind, used by the
// address parser to pull an attribute column as free text.
func (v FieldValue) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindDouble:
		return fmt.Sprintf("%g", v.Double)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindInteger:
		return fmt.Sprintf("%d", v.Integer)
	default:
		return ""
	}
}

// FieldDefinition describes one column of the attribute table: its name,
// on-disk type, byte width, and decimal count.
type FieldDefinition struct {
	Name         string
	Type         FieldType
	Length       int
	DecimalCount int
}
