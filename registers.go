// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Registers holds the sixteen 8-bit general purpose registers V0-VF. VF is
// the flag register, written as a side effect of arithmetic, shift and
// draw instructions.
type Registers struct {
	v [NumRegisters]byte
}

// Get returns the value of register r.
func (reg *Registers) Get(r byte) (byte, error) {
	if r >= NumRegisters {
		return 0, &InvalidRegisterError{Reg: r}
	}
	return reg.v[r], nil
}

// Set stores val in register r.
func (reg *Registers) Set(r, val byte) error {
	if r >= NumRegisters {
		return &InvalidRegisterError{Reg: r}
	}
	reg.v[r] = val
	return nil
}
