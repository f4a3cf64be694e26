package bytecode

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode holds CBOR encoding options with canonical mode for
// deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("bytecode: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// valueEnvelope frames a sequence of canonically encoded values for storage
// or cross-process transport. The CBOR layer carries opaque byte strings
// only; the canonical codec stays the single source of truth for value
// bytes.
type valueEnvelope struct {
	Values [][]byte `cbor:"1,keyasint"`
}

// MarshalValues serializes values into a CBOR envelope. Each value is framed
// as its canonical byte encoding, so the envelope round-trips every value
// the codec round-trips.
func MarshalValues(values []Value) ([]byte, error) {
	env := valueEnvelope{Values: make([][]byte, len(values))}
	for i, v := range values {
		env.Values[i] = Encode(v)
	}
	return cborEncMode.Marshal(env)
}

// UnmarshalValues deserializes a CBOR envelope back into values. A malformed
// envelope or a malformed value inside it surfaces as an error; nothing is
// corrected silently beyond the codec's own permissive-read rules.
func UnmarshalValues(data []byte) ([]Value, error) {
	var env valueEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("bytecode: unmarshal value envelope: %w", err)
	}

	values := make([]Value, len(env.Values))
	for i, raw := range env.Values {
		v, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("bytecode: envelope value %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}
