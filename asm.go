// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

// Assembler helpers: one function per mnemonic, returning the encoded
// 16-bit instruction word. A program is a []uint16 literal of these calls,
// loadable through RAM.LoadWords or the Program builder.

// Cls clears the display.
func Cls() uint16 { return 0x00E0 }

// Ret returns from a subroutine.
func Ret() uint16 { return 0x00EE }

// Jp jumps to addr.
func Jp(addr uint16) uint16 { return 0x1000 | encodeAddr(addr) }

// Call calls the subroutine at addr.
func Call(addr uint16) uint16 { return 0x2000 | encodeAddr(addr) }

// Se skips the next instruction if Vx == kk.
func Se(x, kk byte) uint16 { return 0x3000 | encodeVx(x) | encodeByte(kk) }

// Sne skips the next instruction if Vx != kk.
func Sne(x, kk byte) uint16 { return 0x4000 | encodeVx(x) | encodeByte(kk) }

// Sev skips the next instruction if Vx == Vy.
func Sev(x, y byte) uint16 { return 0x5000 | encodeVx(x) | encodeVy(y) }

// Ld sets Vx = kk.
func Ld(x, kk byte) uint16 { return 0x6000 | encodeVx(x) | encodeByte(kk) }

// Add sets Vx = Vx + kk.
func Add(x, kk byte) uint16 { return 0x7000 | encodeVx(x) | encodeByte(kk) }

// Ldv sets Vx = Vy.
func Ldv(x, y byte) uint16 { return 0x8000 | encodeVx(x) | encodeVy(y) }

// Or sets Vx = Vx OR Vy.
func Or(x, y byte) uint16 { return 0x8001 | encodeVx(x) | encodeVy(y) }

// And sets Vx = Vx AND Vy.
func And(x, y byte) uint16 { return 0x8002 | encodeVx(x) | encodeVy(y) }

// Xor sets Vx = Vx XOR Vy.
func Xor(x, y byte) uint16 { return 0x8003 | encodeVx(x) | encodeVy(y) }

// Addv sets Vx = Vx + Vy and VF = carry.
func Addv(x, y byte) uint16 { return 0x8004 | encodeVx(x) | encodeVy(y) }

// Sub sets Vx = Vx - Vy and VF = NOT borrow.
func Sub(x, y byte) uint16 { return 0x8005 | encodeVx(x) | encodeVy(y) }

// Shr sets Vx = Vx >> 1 and VF = the shifted-out bit.
func Shr(x byte) uint16 { return 0x8006 | encodeVx(x) }

// Subn sets Vx = Vy - Vx and VF = NOT borrow.
func Subn(x, y byte) uint16 { return 0x8007 | encodeVx(x) | encodeVy(y) }

// Shl sets Vx = Vx << 1 and VF = the shifted-out bit.
func Shl(x byte) uint16 { return 0x800E | encodeVx(x) }

// Snev skips the next instruction if Vx != Vy.
func Snev(x, y byte) uint16 { return 0x9000 | encodeVx(x) | encodeVy(y) }

// Ldi sets I = addr.
func Ldi(addr uint16) uint16 { return 0xA000 | encodeAddr(addr) }

// Jp0 jumps to addr + V0.
func Jp0(addr uint16) uint16 { return 0xB000 | encodeAddr(addr) }

// Rnd sets Vx = random byte AND kk.
func Rnd(x, kk byte) uint16 { return 0xC000 | encodeVx(x) | encodeByte(kk) }

// Drw draws an n-byte sprite from I at (Vx, Vy) and sets VF = collision.
func Drw(x, y, n byte) uint16 {
	return 0xD000 | encodeVx(x) | encodeVy(y) | encodeNibble(n)
}

// Skp skips the next instruction if the key in Vx is pressed.
func Skp(x byte) uint16 { return 0xE09E | encodeVx(x) }

// Sknp skips the next instruction if a key is down and it is not the key
// in Vx. With no key down it does not skip.
func Sknp(x byte) uint16 { return 0xE0A1 | encodeVx(x) }

// Lddtv sets Vx = DT.
func Lddtv(x byte) uint16 { return 0xF007 | encodeVx(x) }

// Ldkey waits for a key press and stores it in Vx.
func Ldkey(x byte) uint16 { return 0xF00A | encodeVx(x) }

// Lddt sets DT = Vx.
func Lddt(x byte) uint16 { return 0xF015 | encodeVx(x) }

// Ldst sets ST = Vx.
func Ldst(x byte) uint16 { return 0xF018 | encodeVx(x) }

// Addi sets I = I + Vx.
func Addi(x byte) uint16 { return 0xF01E | encodeVx(x) }

// Sprite sets I = the font sprite address for digit Vx.
func Sprite(x byte) uint16 { return 0xF029 | encodeVx(x) }

// Bcd stores the BCD expansion of Vx at I, I+1 and I+2.
func Bcd(x byte) uint16 { return 0xF033 | encodeVx(x) }

// Sviv stores V0 through Vx in memory starting at I.
func Sviv(x byte) uint16 { return 0xF055 | encodeVx(x) }

// Ldiv reads V0 through Vx from memory starting at I.
func Ldiv(x byte) uint16 { return 0xF065 | encodeVx(x) }
