package bytecode

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Payload size contracts per variant. Str uses a length prefix instead of a
// fixed payload.
const (
	numericPayloadSize = 8 // Int and Float
	boolPayloadSize    = 1
	charPayloadSize    = 1
	strLenPrefixSize   = 4
)

// Encode serializes a value to its canonical byte encoding: one tag byte
// followed by the variant-specific payload, little-endian throughout.
// The returned buffer is freshly allocated and owned by the caller.
func Encode(v Value) []byte {
	switch v := v.(type) {
	case Int:
		buf := make([]byte, 0, 1+numericPayloadSize)
		buf = append(buf, byte(TypeInt))
		return binary.LittleEndian.AppendUint64(buf, uint64(int64(v)))

	case Float:
		buf := make([]byte, 0, 1+numericPayloadSize)
		buf = append(buf, byte(TypeFloat))
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(float64(v)))

	case Bool:
		payload := byte(0x00)
		if v {
			payload = 0x01
		}
		return []byte{byte(TypeBool), payload}

	case Str:
		buf := make([]byte, 0, 1+strLenPrefixSize+len(v))
		buf = append(buf, byte(TypeString))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(v)))
		return append(buf, string(v)...)

	case Char:
		// Only the low 8 bits of the scalar are stored. Codepoints above
		// 255 do not survive encoding; kept for format compatibility.
		return []byte{byte(TypeChar), byte(v)}
	}

	// The kind method seals the variant set; nothing else can reach here.
	panic(fmt.Sprintf("bytecode: unknown value variant %T", v))
}

// Decode parses a canonical byte encoding back into a value.
//
// An empty buffer fails with ErrMissingTag. An unrecognized tag fails with
// ErrInvalidType. Each variant enforces an exact payload-size contract and
// fails with ErrIncompatibleSize on any mismatch. Decode never panics on
// untrusted input: a Bool payload is read as nonzero-is-true, and invalid
// UTF-8 in a Str payload is replaced with U+FFFD instead of failing.
func Decode(data []byte) (Value, error) {
	if len(data) == 0 {
		return nil, ErrMissingTag
	}

	t, err := DecodeType(data[0])
	if err != nil {
		return nil, err
	}
	payload := data[1:]

	switch t {
	case TypeInt:
		if len(payload) != numericPayloadSize {
			return nil, sizeError(t, numericPayloadSize, len(payload))
		}
		return Int(int64(binary.LittleEndian.Uint64(payload))), nil

	case TypeFloat:
		if len(payload) != numericPayloadSize {
			return nil, sizeError(t, numericPayloadSize, len(payload))
		}
		return Float(math.Float64frombits(binary.LittleEndian.Uint64(payload))), nil

	case TypeBool:
		if len(payload) != boolPayloadSize {
			return nil, sizeError(t, boolPayloadSize, len(payload))
		}
		return Bool(payload[0] != 0), nil

	case TypeString:
		if len(payload) < strLenPrefixSize {
			return nil, fmt.Errorf("%w: %s payload needs a %d-byte length prefix, got %d bytes",
				ErrIncompatibleSize, t, strLenPrefixSize, len(payload))
		}
		n := binary.LittleEndian.Uint32(payload)
		text := payload[strLenPrefixSize:]
		if uint64(len(text)) != uint64(n) {
			return nil, fmt.Errorf("%w: %s payload declares %d bytes, got %d",
				ErrIncompatibleSize, t, n, len(text))
		}
		return Str(strings.ToValidUTF8(string(text), "�")), nil

	case TypeChar:
		if len(payload) != charPayloadSize {
			return nil, sizeError(t, charPayloadSize, len(payload))
		}
		return Char(payload[0]), nil
	}

	// DecodeType rejects every tag outside the band.
	panic(fmt.Sprintf("bytecode: unreachable type 0x%02X", byte(t)))
}
