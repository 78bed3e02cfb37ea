package geoshp

import "geoshp/internal/dbf"

// FieldType enumerates the dBase III field types a .dbf column can hold.
type FieldType = dbf.FieldType

// The field types this module recognizes; any on-disk type character
// outside this set decodes as FieldUnknown.
const (
	FieldCharacter = dbf.Character
	FieldNumeric   = dbf.Numeric
	FieldLogical   = dbf.Logical
	FieldDate      = dbf.Date
	FieldFloat     = dbf.Float
	FieldUnknown   = dbf.Unknown
)

// FieldDefinition describes one column of a .dbf attribute table.
type FieldDefinition = dbf.FieldDefinition

// FieldValue is the sum type over {text, double, boolean, integer} a
// decoded attribute cell holds.
type FieldValue = dbf.FieldValue
