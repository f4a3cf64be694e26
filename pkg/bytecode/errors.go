package bytecode

import (
	"errors"
	"fmt"
)

// Error sentinels for the three failure families. Callers match with
// errors.Is; the wrapped message carries the diagnostic detail (offending
// byte, actual/requested types, expected/got sizes).
var (
	// ErrInvalidOpCode reports a byte outside the opcode tag band.
	ErrInvalidOpCode = errors.New("invalid opcode")

	// ErrInvalidType reports a byte outside the value type tag band.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidConversion reports a narrowing extraction against a value
	// of a different kind.
	ErrInvalidConversion = errors.New("invalid conversion")

	// ErrMissingTag reports an empty decode buffer.
	ErrMissingTag = errors.New("missing type tag")

	// ErrIncompatibleSize reports a payload whose length does not match
	// what its resolved type requires.
	ErrIncompatibleSize = errors.New("incompatible payload size")
)

// conversionError builds an ErrInvalidConversion naming both the actual and
// the requested type.
func conversionError(from Value, to Type) error {
	return fmt.Errorf("%w: %s to %s", ErrInvalidConversion, TypeOf(from), to)
}

// sizeError builds an ErrIncompatibleSize for a fixed-size payload.
func sizeError(t Type, want, got int) error {
	return fmt.Errorf("%w: %s payload must be %d bytes, got %d", ErrIncompatibleSize, t, want, got)
}
