package bytecode

import "golang.org/x/exp/constraints"

// Value is a runtime value: a closed sum over five variants, each carrying a
// native payload. The unexported kind method seals the interface, so the
// variant set cannot grow outside this package, and every variant must name
// its Type to compile.
//
// Values are immutable and value-semantic. Copying a Value copies its
// payload; no variant shares state with another.
type Value interface {
	kind() Type
}

// Int is a signed platform-width integer value.
type Int int

// Float is a 64-bit IEEE-754 value. The bit pattern is semantically
// significant: NaN payloads, signed zero, and infinities round-trip exactly
// as bits through the codec.
type Float float64

// Bool is a two-state flag value.
type Bool bool

// Str is an owned sequence of UTF-8 text.
type Str string

// Char is a single Unicode scalar value. The codec stores only its low 8
// bits, see Encode.
type Char rune

func (Int) kind() Type   { return TypeInt }
func (Float) kind() Type { return TypeFloat }
func (Bool) kind() Type  { return TypeBool }
func (Str) kind() Type   { return TypeString }
func (Char) kind() Type  { return TypeChar }

// ---------------------------------------------------------------------------
// Construction: total, infallible conversions from native primitives
// ---------------------------------------------------------------------------

// FromInt converts any integer width into an Int value. Narrowing into the
// platform-width representation truncates; precision loss is accepted and
// not diagnosed at this layer.
func FromInt[T constraints.Integer](n T) Value {
	return Int(n)
}

// FromFloat converts any floating width into a Float value via standard
// floating widening.
func FromFloat[T constraints.Float](f T) Value {
	return Float(f)
}

// FromBool converts a bool into a Bool value.
func FromBool(b bool) Value {
	return Bool(b)
}

// FromString converts text into a Str value.
func FromString(s string) Value {
	return Str(s)
}

// FromChar converts a Unicode scalar into a Char value.
func FromChar(r rune) Value {
	return Char(r)
}

// ---------------------------------------------------------------------------
// Extraction: narrowing back to native primitives
// ---------------------------------------------------------------------------

// AsInt extracts the payload of an Int value.
// Any other variant fails with ErrInvalidConversion naming both types.
func AsInt(v Value) (int, error) {
	n, ok := v.(Int)
	if !ok {
		return 0, conversionError(v, TypeInt)
	}
	return int(n), nil
}

// AsFloat extracts the payload of a Float value.
func AsFloat(v Value) (float64, error) {
	f, ok := v.(Float)
	if !ok {
		return 0, conversionError(v, TypeFloat)
	}
	return float64(f), nil
}

// AsBool extracts the payload of a Bool value.
func AsBool(v Value) (bool, error) {
	b, ok := v.(Bool)
	if !ok {
		return false, conversionError(v, TypeBool)
	}
	return bool(b), nil
}

// AsString extracts the payload of a Str value.
func AsString(v Value) (string, error) {
	s, ok := v.(Str)
	if !ok {
		return "", conversionError(v, TypeString)
	}
	return string(s), nil
}

// AsChar extracts the payload of a Char value.
func AsChar(v Value) (rune, error) {
	c, ok := v.(Char)
	if !ok {
		return 0, conversionError(v, TypeChar)
	}
	return rune(c), nil
}
