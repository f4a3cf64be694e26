// Package bytecode defines the runtime value representation for cog's
// stack-based virtual machine and the reversible binary encoding for those
// values, along with the instruction opcode set that consumes them.
//
// The format is designed for:
//   - Compact representation (one tag byte plus a fixed or length-prefixed payload)
//   - Fast decoding (single-byte discriminants, little-endian fixed)
//   - Exact round-trips (float bit patterns, full-width integers, empty strings)
//
// # Tag bands
//
// Opcodes and value types occupy disjoint one-byte tag bands:
//
//   - Opcodes:     0x10-0x16 (OpConstant .. OpReturn)
//   - Value types: 0x20-0x24 (TypeInt .. TypeChar)
//
// Keeping the bands disjoint means a future combined instruction+operand
// stream can tell the two apart, provided the consumer knows which band it
// expects at each decode position. This package does not itself disambiguate
// the spaces; OpCode and Type are distinct Go types so the two namespaces
// cannot be mixed by accident.
//
// # Wire format
//
// Every encoded value is a tag byte followed by a variant-specific payload,
// little-endian throughout:
//
//	Int    [0x20][i64:8]
//	Float  [0x21][f64 bits:8]
//	Bool   [0x22][0x00|0x01]
//	Str    [0x23][len:u32][utf8 bytes]
//	Char   [0x24][low 8 bits of the scalar]
//
// Decode enforces exact payload sizes and never panics on untrusted input.
// Two deliberate leniencies exist on the read side: any nonzero Bool payload
// decodes as true, and invalid UTF-8 in a Str payload is replaced with
// U+FFFD instead of failing.
//
// # Purity
//
// Everything in this package is a pure value transformation. No function
// performs I/O, holds mutable state, or retains buffers across calls, so all
// operations are safe to invoke concurrently without coordination.
package bytecode
