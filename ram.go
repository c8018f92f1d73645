// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

const (
	// RAMSize is the full CHIP-8 address space.
	RAMSize = 0x1000

	// ProgramStart is the first program address. Everything below it is
	// the interpreter region and read-only to programs.
	ProgramStart = 0x200

	// fontStart is where the digit sprites live; the 80-byte table ends
	// flush against ProgramStart.
	fontStart = 0x1B0
)

// FontSet holds the sprites for the hex digits 0-F, five bytes per digit,
// MSB leftmost. It is preloaded at 0x1B0-0x1FF.
var FontSet = []byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// RAM is the 4096 byte memory space.
//
// Memory Map:
// +---------------+= 0xFFF (4095) End of Chip-8 RAM
// |               |
// | 0x200 to 0xFFF|
// |     Chip-8    |
// | Program / Data|
// |     Space     |
// |               |
// +---------------+= 0x200 (512) Start of Chip-8 programs
// | 0x1B0 to 0x1FF|  Font sprites 0-F
// +- - - - - - - -+= 0x1B0
// | 0x000 to 0x1AF|
// | Reserved for  |
// |  interpreter  |
// +---------------+= 0x000 (0) Start of Chip-8 RAM
//
// The region below ProgramStart is read-only to programs: WriteByte
// rejects it, while the host-facing Load functions may target it.
type RAM struct {
	mem [RAMSize]byte
}

// NewRAM returns zeroed memory with the font preloaded.
func NewRAM() RAM {
	var r RAM
	copy(r.mem[fontStart:ProgramStart], FontSet)
	return r
}

// ReadByte returns the byte at addr.
func (r *RAM) ReadByte(addr uint16) (byte, error) {
	if addr >= RAMSize {
		return 0, &InvalidAddressError{Addr: addr}
	}
	return r.mem[addr], nil
}

// ReadBytes returns a view of n bytes starting at addr. The slice aliases
// the underlying memory; callers must not retain it across writes.
func (r *RAM) ReadBytes(addr, n uint16) ([]byte, error) {
	if addr >= RAMSize || uint32(addr)+uint32(n) > RAMSize {
		return nil, &InvalidSliceError{Addr: addr, Len: n}
	}
	return r.mem[addr : addr+n], nil
}

// WriteByte stores v at addr. Writes below ProgramStart fail: the font and
// interpreter region are immutable to programs.
func (r *RAM) WriteByte(addr uint16, v byte) error {
	if addr < ProgramStart {
		return &NotWritableError{Addr: addr}
	}
	if addr >= RAMSize {
		return &InvalidAddressError{Addr: addr}
	}
	r.mem[addr] = v
	return nil
}

// Load copies b into memory starting at addr and returns the number of
// bytes written. Load is host-facing and may target any address.
func (r *RAM) Load(addr uint16, b []byte) (uint16, error) {
	if addr >= RAMSize {
		return 0, &InvalidAddressError{Addr: addr}
	}
	if len(b) > int(RAMSize)-int(addr) {
		return 0, &LoadTooLongError{Addr: addr, Len: len(b)}
	}
	copy(r.mem[addr:], b)
	return uint16(len(b)), nil
}

// LoadWords stores words big-endian starting at addr, regardless of host
// endianness, and returns the byte count written (twice the word count).
func (r *RAM) LoadWords(addr uint16, words []uint16) (uint16, error) {
	if addr >= RAMSize {
		return 0, &InvalidAddressError{Addr: addr}
	}
	if len(words)*2 > int(RAMSize)-int(addr) {
		return 0, &LoadTooLongError{Addr: addr, Len: len(words) * 2}
	}
	for i, w := range words {
		r.mem[int(addr)+2*i] = byte(w >> 8)
		r.mem[int(addr)+2*i+1] = byte(w)
	}
	return uint16(len(words) * 2), nil
}

// SpriteAddr returns the address of the font sprite for hex digit d.
func (r *RAM) SpriteAddr(d byte) (uint16, error) {
	if d > 0xF {
		return 0, &InvalidSpriteError{Digit: d}
	}
	return fontStart + 5*uint16(d), nil
}
