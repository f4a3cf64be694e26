package bytecode

import "fmt"

// Type identifies which Value variant a tag byte introduces.
// All type tags live in the 0x20-0x24 band, disjoint from the opcode band.
type Type byte

const (
	TypeInt    Type = 0x20 // platform-width signed integer
	TypeFloat  Type = 0x21 // IEEE-754 64-bit float
	TypeBool   Type = 0x22 // two-state flag
	TypeString Type = 0x23 // owned UTF-8 text
	TypeChar   Type = 0x24 // single Unicode scalar
)

// DecodeType resolves a tag byte to its value type.
// Exactly the bytes 0x20-0x24 are valid; anything else returns
// ErrInvalidType carrying the offending byte.
func DecodeType(b byte) (Type, error) {
	switch t := Type(b); t {
	case TypeInt, TypeFloat, TypeBool, TypeString, TypeChar:
		return t, nil
	default:
		return 0, fmt.Errorf("%w: 0x%02X", ErrInvalidType, b)
	}
}

// TypeOf returns the type tag of a value. Total and pure: every variant
// carries exactly one Type, enforced by the sealed Value interface.
func TypeOf(v Value) Type {
	return v.kind()
}

// String returns the display name of a type.
// Undefined tags stringify as Type(0xNN).
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeBool:
		return "Bool"
	case TypeString:
		return "String"
	case TypeChar:
		return "Char"
	default:
		return fmt.Sprintf("Type(0x%02X)", byte(t))
	}
}
