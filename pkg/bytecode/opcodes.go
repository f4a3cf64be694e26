package bytecode

import "fmt"

// OpCode represents a single bytecode instruction.
// All opcodes live in the 0x10-0x16 tag band, disjoint from the value type
// band (0x20-0x24). Operands are not encoded at this layer; a chunk builder
// sequences opcodes and operands itself.
type OpCode byte

const (
	OpConstant OpCode = 0x10 // Push constant operand
	OpNegate   OpCode = 0x11 // Negate top of stack
	OpAdd      OpCode = 0x12 // Pop two, push sum
	OpSubtract OpCode = 0x13 // Pop two, push difference
	OpMultiply OpCode = 0x14 // Pop two, push product
	OpDivide   OpCode = 0x15 // Pop two, push quotient
	OpReturn   OpCode = 0x16 // Return top of stack
)

// opCodeNames maps each defined opcode to its mnemonic.
var opCodeNames = map[OpCode]string{
	OpConstant: "CONSTANT",
	OpNegate:   "NEGATE",
	OpAdd:      "ADD",
	OpSubtract: "SUBTRACT",
	OpMultiply: "MULTIPLY",
	OpDivide:   "DIVIDE",
	OpReturn:   "RETURN",
}

// DecodeOpCode resolves a tag byte to its opcode.
// Exactly the bytes 0x10-0x16 are valid; anything else returns
// ErrInvalidOpCode carrying the offending byte.
func DecodeOpCode(b byte) (OpCode, error) {
	op := OpCode(b)
	if _, ok := opCodeNames[op]; !ok {
		return 0, fmt.Errorf("%w: 0x%02X", ErrInvalidOpCode, b)
	}
	return op, nil
}

// String returns the mnemonic name of an opcode.
// Undefined opcodes stringify as UNKNOWN(0xNN).
func (op OpCode) String() string {
	if name, ok := opCodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%02X)", byte(op))
}

// IsArithmetic reports whether op is one of the arithmetic instructions.
func (op OpCode) IsArithmetic() bool {
	return op >= OpNegate && op <= OpDivide
}

// AllOpCodes returns a slice of all defined opcodes.
// Useful for testing that every opcode has a mnemonic and decodes.
func AllOpCodes() []OpCode {
	ops := make([]OpCode, 0, len(opCodeNames))
	for op := range opCodeNames {
		ops = append(ops, op)
	}
	return ops
}

// OpCodeCount returns the number of defined opcodes.
func OpCodeCount() int {
	return len(opCodeNames)
}
