package circuit

import "fmt"

// StackLimit is the maximum stack depth the depth-bound gate allows.
const StackLimit = 1024

// OpCode is a single-byte virtual machine instruction.
type OpCode byte

// Supported opcodes. Anything outside this set is treated as a
// pass-through instruction with default metering.
const (
	STOP   OpCode = 0x00
	ADD    OpCode = 0x01
	MUL    OpCode = 0x02
	SUB    OpCode = 0x03
	DIV    OpCode = 0x04
	MOD    OpCode = 0x06
	ADDMOD OpCode = 0x08
	MULMOD OpCode = 0x09
	LT     OpCode = 0x10
	GT     OpCode = 0x11
	EQ     OpCode = 0x14
	AND    OpCode = 0x16
	OR     OpCode = 0x17
	XOR    OpCode = 0x18
	NOT    OpCode = 0x19
	POP    OpCode = 0x50
	MLOAD  OpCode = 0x51
	MSTORE OpCode = 0x52
	SLOAD  OpCode = 0x54
	SSTORE OpCode = 0x55
	JUMP   OpCode = 0x56
	JUMPI  OpCode = 0x57
	PUSH1  OpCode = 0x60
	PUSH2  OpCode = 0x61
	PUSH4  OpCode = 0x63
	PUSH32 OpCode = 0x7f
	DUP1   OpCode = 0x80
	DUP2   OpCode = 0x81
	SWAP1  OpCode = 0x90
	SWAP2  OpCode = 0x91
)

// OpSpec describes the metering and stack effect of one opcode.
type OpSpec struct {
	GasCost       uint64
	StackConsumed int
	StackProduced int
}

// DefaultSpec is the metering applied to unrecognized opcode bytes:
// costed like a cheap instruction, no stack effect.
var DefaultSpec = OpSpec{GasCost: 3, StackConsumed: 0, StackProduced: 0}

var opSpecs = map[OpCode]OpSpec{
	STOP:   {0, 0, 0},
	ADD:    {3, 2, 1},
	MUL:    {5, 2, 1},
	SUB:    {3, 2, 1},
	DIV:    {5, 2, 1},
	MOD:    {5, 2, 1},
	ADDMOD: {8, 3, 1},
	MULMOD: {8, 3, 1},
	LT:     {3, 2, 1},
	GT:     {3, 2, 1},
	EQ:     {3, 2, 1},
	AND:    {3, 2, 1},
	OR:     {3, 2, 1},
	XOR:    {3, 2, 1},
	NOT:    {3, 1, 1},
	POP:    {2, 1, 0},
	MLOAD:  {3, 1, 1},
	MSTORE: {3, 2, 0},
	SLOAD:  {200, 1, 1},
	SSTORE: {20000, 2, 0},
	JUMP:   {8, 1, 0},
	JUMPI:  {10, 2, 0},
	PUSH1:  {3, 0, 1},
	PUSH2:  {3, 0, 1},
	PUSH4:  {3, 0, 1},
	PUSH32: {3, 0, 1},
	DUP1:   {3, 1, 2},
	DUP2:   {3, 1, 2},
	SWAP1:  {3, 2, 2},
	SWAP2:  {3, 2, 2},
}

var opNames = map[OpCode]string{
	STOP: "STOP", ADD: "ADD", MUL: "MUL", SUB: "SUB", DIV: "DIV",
	MOD: "MOD", ADDMOD: "ADDMOD", MULMOD: "MULMOD",
	LT: "LT", GT: "GT", EQ: "EQ", AND: "AND", OR: "OR", XOR: "XOR", NOT: "NOT",
	POP: "POP", MLOAD: "MLOAD", MSTORE: "MSTORE", SLOAD: "SLOAD", SSTORE: "SSTORE",
	JUMP: "JUMP", JUMPI: "JUMPI",
	PUSH1: "PUSH1", PUSH2: "PUSH2", PUSH4: "PUSH4", PUSH32: "PUSH32",
	DUP1: "DUP1", DUP2: "DUP2", SWAP1: "SWAP1", SWAP2: "SWAP2",
}

// Spec returns the metering entry for an opcode, or DefaultSpec for
// unrecognized bytes.
func Spec(op OpCode) OpSpec {
	if s, ok := opSpecs[op]; ok {
		return s
	}
	return DefaultSpec
}

// Known reports whether the opcode has an explicit table entry.
func Known(op OpCode) bool {
	_, ok := opSpecs[op]
	return ok
}

// String returns the mnemonic for the opcode.
func (op OpCode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("opcode(0x%02x)", byte(op))
}
