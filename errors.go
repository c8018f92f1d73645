// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

import (
	"errors"
	"fmt"
)

// Peripheral names used to tag hardware failures.
const (
	PeriphDelay  = "delay"
	PeriphScreen = "screen"
	PeriphKeypad = "keypad"
	PeriphBuzzer = "buzzer"
	PeriphRNG    = "rng"
)

// HardwareError wraps an error produced by a peripheral, tagged with the
// capability that produced it. Every other error type in this package is a
// software error: deterministic and program-induced.
type HardwareError struct {
	Peripheral string
	Err        error
}

func (e *HardwareError) Error() string {
	return fmt.Sprintf("chip8: %s: %v", e.Peripheral, e.Err)
}

func (e *HardwareError) Unwrap() error { return e.Err }

// UnknownOpcode is returned when a word does not decode to any instruction.
type UnknownOpcode struct {
	Opcode uint16
}

func (e *UnknownOpcode) Error() string {
	return fmt.Sprintf("chip8: unknown opcode: 0x%04X", e.Opcode)
}

// InvalidAddressError is returned for a byte access outside the 4 KiB
// address space.
type InvalidAddressError struct {
	Addr uint16
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("chip8: invalid address: 0x%04X", e.Addr)
}

// InvalidSliceError is returned when a multi-byte read extends past the end
// of memory.
type InvalidSliceError struct {
	Addr uint16
	Len  uint16
}

func (e *InvalidSliceError) Error() string {
	return fmt.Sprintf("chip8: invalid slice: 0x%04X+%d", e.Addr, e.Len)
}

// InvalidSpriteError is returned for a font lookup of a non-hex digit.
type InvalidSpriteError struct {
	Digit byte
}

func (e *InvalidSpriteError) Error() string {
	return fmt.Sprintf("chip8: no sprite for digit 0x%X", e.Digit)
}

// InvalidRegisterError is returned for a register index outside V0-VF.
type InvalidRegisterError struct {
	Reg byte
}

func (e *InvalidRegisterError) Error() string {
	return fmt.Sprintf("chip8: invalid register: V%X", e.Reg)
}

// NotWritableError is returned for a program write into the interpreter
// region below 0x200.
type NotWritableError struct {
	Addr uint16
}

func (e *NotWritableError) Error() string {
	return fmt.Sprintf("chip8: address not writable: 0x%04X", e.Addr)
}

// NotAlignedError is returned when an instruction fetch lands on an odd
// address.
type NotAlignedError struct {
	PC uint16
}

func (e *NotAlignedError) Error() string {
	return fmt.Sprintf("chip8: fetch not aligned: 0x%04X", e.PC)
}

// StackOverflowError is returned when a call would exceed 16 levels of
// nesting. Frame is the return address that could not be pushed.
type StackOverflowError struct {
	Frame uint16
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("chip8: stack overflow pushing 0x%04X", e.Frame)
}

// ErrStackEmpty is returned by a return with no call outstanding.
var ErrStackEmpty = errors.New("chip8: pop from empty stack")

// StackCorruptError is returned when the stack pointer is outside any
// valid state.
type StackCorruptError struct {
	SP int
}

func (e *StackCorruptError) Error() string {
	return fmt.Sprintf("chip8: stack corrupt: sp=%d", e.SP)
}

// LoadTooLongError is returned when a load does not fit between addr and
// the end of memory.
type LoadTooLongError struct {
	Addr uint16
	Len  int
}

func (e *LoadTooLongError) Error() string {
	return fmt.Sprintf("chip8: load of %d bytes at 0x%04X too long", e.Len, e.Addr)
}

// ClockSpeedError is returned for an execution frequency outside
// [60, 1000000] Hz.
type ClockSpeedError struct {
	Hz uint32
}

func (e *ClockSpeedError) Error() string {
	return fmt.Sprintf("chip8: invalid clock speed: %d Hz", e.Hz)
}

// Compile errors produced by the program builder.
var (
	// ErrNoMain is returned when Compile is called before Main.
	ErrNoMain = errors.New("chip8: program has no main block")

	// ErrTooManySubs is returned when the subroutine id space is full.
	ErrTooManySubs = errors.New("chip8: subroutine table full")

	// ErrTooManyData is returned when the data id space is full.
	ErrTooManyData = errors.New("chip8: data table full")
)

// UnalignedProgramError is returned for a program block whose byte length
// is odd.
type UnalignedProgramError struct {
	Len int
}

func (e *UnalignedProgramError) Error() string {
	return fmt.Sprintf("chip8: program block of %d bytes is not word aligned", e.Len)
}

// UnresolvedRefError is returned when back-patching meets a symbolic id
// with no registered subroutine or data blob.
type UnresolvedRefError struct {
	ID byte
}

func (e *UnresolvedRefError) Error() string {
	return fmt.Sprintf("chip8: unresolved reference: id %d", e.ID)
}
