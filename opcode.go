// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

import "fmt"

// Opcode identifies one instruction of the CHIP-8 set.
type Opcode byte

const (
	OpCls Opcode = iota
	OpRet
	OpJp
	OpCall
	OpSe
	OpSne
	OpSev
	OpLd
	OpAdd
	OpLdv
	OpOr
	OpAnd
	OpXor
	OpAddv
	OpSub
	OpShr
	OpSubn
	OpShl
	OpSnev
	OpLdi
	OpJp0
	OpRnd
	OpDrw
	OpSkp
	OpSknp
	OpLddtv
	OpLdkey
	OpLddt
	OpLdst
	OpAddi
	OpSprite
	OpBcd
	OpSviv
	OpLdiv
)

// Shape describes which operand fields an instruction carries.
type Shape byte

const (
	ShapeExact Shape = iota
	ShapeAddr
	ShapeVx
	ShapeVxVy
	ShapeVxByte
	ShapeVxVyNibble
)

// opcodeTable associates each opcode with its mnemonic, the bits fixed by
// the opcode, and its operand shape.
var opcodeTable = [...]struct {
	name  string
	mask  uint16
	shape Shape
}{
	OpCls:    {"cls", 0x00E0, ShapeExact},
	OpRet:    {"ret", 0x00EE, ShapeExact},
	OpJp:     {"jp", 0x1000, ShapeAddr},
	OpCall:   {"call", 0x2000, ShapeAddr},
	OpSe:     {"se", 0x3000, ShapeVxByte},
	OpSne:    {"sne", 0x4000, ShapeVxByte},
	OpSev:    {"sev", 0x5000, ShapeVxVy},
	OpLd:     {"ld", 0x6000, ShapeVxByte},
	OpAdd:    {"add", 0x7000, ShapeVxByte},
	OpLdv:    {"ldv", 0x8000, ShapeVxVy},
	OpOr:     {"or", 0x8001, ShapeVxVy},
	OpAnd:    {"and", 0x8002, ShapeVxVy},
	OpXor:    {"xor", 0x8003, ShapeVxVy},
	OpAddv:   {"addv", 0x8004, ShapeVxVy},
	OpSub:    {"sub", 0x8005, ShapeVxVy},
	OpShr:    {"shr", 0x8006, ShapeVx},
	OpSubn:   {"subn", 0x8007, ShapeVxVy},
	OpShl:    {"shl", 0x800E, ShapeVx},
	OpSnev:   {"snev", 0x9000, ShapeVxVy},
	OpLdi:    {"ldi", 0xA000, ShapeAddr},
	OpJp0:    {"jp0", 0xB000, ShapeAddr},
	OpRnd:    {"rnd", 0xC000, ShapeVxByte},
	OpDrw:    {"drw", 0xD000, ShapeVxVyNibble},
	OpSkp:    {"skp", 0xE09E, ShapeVx},
	OpSknp:   {"sknp", 0xE0A1, ShapeVx},
	OpLddtv:  {"lddtv", 0xF007, ShapeVx},
	OpLdkey:  {"ldkey", 0xF00A, ShapeVx},
	OpLddt:   {"lddt", 0xF015, ShapeVx},
	OpLdst:   {"ldst", 0xF018, ShapeVx},
	OpAddi:   {"addi", 0xF01E, ShapeVx},
	OpSprite: {"sprite", 0xF029, ShapeVx},
	OpBcd:    {"bcd", 0xF033, ShapeVx},
	OpSviv:   {"sviv", 0xF055, ShapeVx},
	OpLdiv:   {"ldiv", 0xF065, ShapeVx},
}

// String returns the mnemonic.
func (o Opcode) String() string {
	if int(o) < len(opcodeTable) {
		return opcodeTable[o].name
	}
	return fmt.Sprintf("Opcode(%d)", byte(o))
}

// Mask returns the bits fixed by the opcode.
func (o Opcode) Mask() uint16 { return opcodeTable[o].mask }

// Shape returns the operand shape.
func (o Opcode) Shape() Shape { return opcodeTable[o].shape }

// DecodeOpcode resolves a 16-bit word to its Opcode. ok is false when the
// word matches no instruction.
func DecodeOpcode(inst uint16) (Opcode, bool) {
	switch inst >> 12 {
	case 0x0:
		switch inst {
		case 0x00E0:
			return OpCls, true
		case 0x00EE:
			return OpRet, true
		}
	case 0x1:
		return OpJp, true
	case 0x2:
		return OpCall, true
	case 0x3:
		return OpSe, true
	case 0x4:
		return OpSne, true
	case 0x5:
		if inst&0xF == 0 {
			return OpSev, true
		}
	case 0x6:
		return OpLd, true
	case 0x7:
		return OpAdd, true
	case 0x8:
		switch inst & 0xF {
		case 0x0:
			return OpLdv, true
		case 0x1:
			return OpOr, true
		case 0x2:
			return OpAnd, true
		case 0x3:
			return OpXor, true
		case 0x4:
			return OpAddv, true
		case 0x5:
			return OpSub, true
		case 0x6:
			return OpShr, true
		case 0x7:
			return OpSubn, true
		case 0xE:
			return OpShl, true
		}
	case 0x9:
		if inst&0xF == 0 {
			return OpSnev, true
		}
	case 0xA:
		return OpLdi, true
	case 0xB:
		return OpJp0, true
	case 0xC:
		return OpRnd, true
	case 0xD:
		return OpDrw, true
	case 0xE:
		switch byte(inst) {
		case 0x9E:
			return OpSkp, true
		case 0xA1:
			return OpSknp, true
		}
	case 0xF:
		switch byte(inst) {
		case 0x07:
			return OpLddtv, true
		case 0x0A:
			return OpLdkey, true
		case 0x15:
			return OpLddt, true
		case 0x18:
			return OpLdst, true
		case 0x1E:
			return OpAddi, true
		case 0x29:
			return OpSprite, true
		case 0x33:
			return OpBcd, true
		case 0x55:
			return OpSviv, true
		case 0x65:
			return OpLdiv, true
		}
	}
	return 0, false
}

// Instruction is a decoded instruction: the opcode plus whichever operand
// fields its shape carries. Fields outside the shape are zero.
type Instruction struct {
	Op   Opcode
	Addr uint16
	X    byte
	Y    byte
	Byte byte
	N    byte
}

// DecodeInstruction decodes a 16-bit word into an Instruction.
func DecodeInstruction(inst uint16) (Instruction, error) {
	op, ok := DecodeOpcode(inst)
	if !ok {
		return Instruction{}, &UnknownOpcode{Opcode: inst}
	}

	in := Instruction{Op: op}
	switch op.Shape() {
	case ShapeAddr:
		in.Addr = decodeAddr(inst)
	case ShapeVx:
		in.X = decodeVx(inst)
	case ShapeVxVy:
		in.X, in.Y = decodeVx(inst), decodeVy(inst)
	case ShapeVxByte:
		in.X, in.Byte = decodeVx(inst), decodeByte(inst)
	case ShapeVxVyNibble:
		in.X, in.Y, in.N = decodeVx(inst), decodeVy(inst), decodeNibble(inst)
	}
	return in, nil
}

// Encode packs the instruction into its 16-bit word: the opcode mask ORed
// with the encoded operand fields.
func (in Instruction) Encode() uint16 {
	mask := in.Op.Mask()
	switch in.Op.Shape() {
	case ShapeAddr:
		return mask | encodeAddr(in.Addr)
	case ShapeVx:
		return mask | encodeVx(in.X)
	case ShapeVxVy:
		return mask | encodeVx(in.X) | encodeVy(in.Y)
	case ShapeVxByte:
		return mask | encodeVx(in.X) | encodeByte(in.Byte)
	case ShapeVxVyNibble:
		return mask | encodeVx(in.X) | encodeVy(in.Y) | encodeNibble(in.N)
	}
	return mask
}

// String renders the instruction in assembler form, e.g. "drw V1, V2, 0x3".
func (in Instruction) String() string {
	switch in.Op.Shape() {
	case ShapeAddr:
		return fmt.Sprintf("%s 0x%03X", in.Op, in.Addr)
	case ShapeVx:
		return fmt.Sprintf("%s V%X", in.Op, in.X)
	case ShapeVxVy:
		return fmt.Sprintf("%s V%X, V%X", in.Op, in.X, in.Y)
	case ShapeVxByte:
		return fmt.Sprintf("%s V%X, 0x%02X", in.Op, in.X, in.Byte)
	case ShapeVxVyNibble:
		return fmt.Sprintf("%s V%X, V%X, 0x%X", in.Op, in.X, in.Y, in.N)
	}
	return in.Op.String()
}
