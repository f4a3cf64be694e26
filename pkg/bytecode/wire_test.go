package bytecode

import (
	"errors"
	"math"
	"testing"
)

func TestMarshalValuesRoundTrip(t *testing.T) {
	values := []Value{
		Int(-1),
		Float(math.NaN()),
		Float(math.Copysign(0, -1)),
		Bool(true),
		Str(""),
		Str("Hello, World!"),
		Char('a'),
	}

	data, err := MarshalValues(values)
	if err != nil {
		t.Fatalf("MarshalValues failed: %v", err)
	}

	got, err := UnmarshalValues(data)
	if err != nil {
		t.Fatalf("UnmarshalValues failed: %v", err)
	}
	if len(got) != len(values) {
		t.Fatalf("UnmarshalValues returned %d values, want %d", len(got), len(values))
	}
	for i := range values {
		if !valuesEqual(got[i], values[i]) {
			t.Errorf("value %d = %#v, want %#v", i, got[i], values[i])
		}
	}
}

func TestMarshalValuesDeterministic(t *testing.T) {
	values := []Value{Int(1), Str("a"), Bool(false)}

	first, err := MarshalValues(values)
	if err != nil {
		t.Fatalf("MarshalValues failed: %v", err)
	}
	second, err := MarshalValues(values)
	if err != nil {
		t.Fatalf("MarshalValues failed: %v", err)
	}
	if string(first) != string(second) {
		t.Error("canonical CBOR encoding is not deterministic")
	}
}

func TestMarshalValuesEmpty(t *testing.T) {
	data, err := MarshalValues(nil)
	if err != nil {
		t.Fatalf("MarshalValues(nil) failed: %v", err)
	}
	got, err := UnmarshalValues(data)
	if err != nil {
		t.Fatalf("UnmarshalValues failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("UnmarshalValues returned %d values, want 0", len(got))
	}
}

func TestUnmarshalValuesCorruptEnvelope(t *testing.T) {
	if _, err := UnmarshalValues([]byte{0x5F}); err == nil {
		t.Error("UnmarshalValues(truncated CBOR) succeeded, want error")
	}
}

func TestUnmarshalValuesBadInnerValue(t *testing.T) {
	tests := []struct {
		name  string
		inner []byte
		want  error
	}{
		{"invalid tag", []byte{0xFF, 1, 2}, ErrInvalidType},
		{"empty buffer", []byte{}, ErrMissingTag},
		{"short int", []byte{0x20, 1, 2}, ErrIncompatibleSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := cborEncMode.Marshal(valueEnvelope{Values: [][]byte{tt.inner}})
			if err != nil {
				t.Fatalf("building envelope failed: %v", err)
			}
			_, err = UnmarshalValues(data)
			if !errors.Is(err, tt.want) {
				t.Errorf("UnmarshalValues error = %v, want %v", err, tt.want)
			}
		})
	}
}
