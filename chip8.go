// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chip8 provides a CHIP-8 virtual machine.
//
// CHIP-8 was most commonly implemented on 4K systems, such as the
// Cosmac VIP and the Telmac 1800. These machines had 4096 (0x1000)
// memory locations, all of which are 8 bits (a byte) which is where the
// term CHIP-8 originated. The CHIP-8 interpreter itself occupies the
// first 512 bytes of the memory space, so programs begin at memory
// location 512 (0x200) and never write below it.
//
// The package splits the machine into an execution engine (CPU), a
// memory subsystem (RAM, Registers, Stack), an instruction codec
// (Opcode, Instruction and the assembler helpers), and a hardware
// abstraction layer over the screen, keypad, buzzer, delay and RNG
// peripherals. A Program builder composes loadable images with
// symbolic references resolved at compile time.
package chip8

import (
	"fmt"
	"io"
	"log"
)

// Sensible defaults
var (
	// DefaultLogger is the default logger to use. Defaults to logging to /dev/null
	DefaultLogger = log.New(io.Discard, "", 0)

	// DefaultClockSpeed is the default execution frequency, in Hz.
	DefaultClockSpeed uint32 = 700
)

const (
	// pollFreq is the keypad polling interval inside ldkey, in
	// microseconds.
	pollFreq = 1000

	// instStep is the width of one instruction in bytes.
	instStep = 2

	// regFlag is the flag register VF.
	regFlag = 0xF
)

// CPU represents a CHIP-8 CPU.
type CPU struct {
	// The 4096 bytes of memory, font preloaded.
	RAM RAM

	// The sixteen general purpose registers V0-VF.
	Reg Registers

	// The address register, which is named I, is 16 bits wide and is used
	// with several opcodes that involve memory operations. Only the low
	// 12 bits are meaningful to them.
	I uint16

	// Program counter.
	PC uint16

	// The stack stores return addresses when subroutines are called, up
	// to 16 levels of nesting.
	Stack Stack

	// The delay and sound timers. Both count down at 60 Hz while the CPU
	// runs; the buzzer follows ST.
	DT byte
	ST byte

	// A logger to log information about the CPU while it's executing. The
	// zero value is the DefaultLogger.
	Logger *log.Logger

	// Per-step delay multiplier. See SetClockDivision.
	clockDiv uint32
}

// NewCPU returns a CPU with the font preloaded and PC at ProgramStart.
func NewCPU() *CPU {
	return &CPU{
		RAM:      NewRAM(),
		PC:       ProgramStart,
		clockDiv: 1,
	}
}

// Load installs a 4 KiB image and resets PC to ProgramStart.
func (c *CPU) Load(ram RAM) {
	c.RAM = ram
	c.PC = ProgramStart
}

// SetClockDivision multiplies the per-step delay by n, slowing execution
// by that factor. The macro-tick still accumulates undivided step delays,
// so the timers slow down with the instruction stream. Values below 1
// reset the division to 1.
func (c *CPU) SetClockDivision(n uint32) {
	if n < 1 {
		n = 1
	}
	c.clockDiv = n
}

// Step advances the machine by one instruction.
func (c *CPU) Step(hw *Hardware) error {
	inst, err := c.readInst(c.PC)
	if err != nil {
		return err
	}
	if err := c.exec(inst, hw); err != nil {
		return err
	}

	c.logger().Printf("op=0x%04X %s\n", inst, c)
	return nil
}

// Run executes instructions at speedHz until an error propagates out.
// beforeTick, if non-nil, is invoked before each step; it must treat the
// VM as read-only but may drive host state such as a debug overlay.
//
// After each step the CPU sleeps for the clock's step delay, and on every
// 60 Hz macro-tick decrements DT and ST (saturating) and sets the buzzer
// to ST > 0. Timers freeze while ldkey blocks waiting for a key.
//
// Run loops forever; hosts stop it by returning an error from a
// peripheral (see ErrQuit), which surfaces wrapped in a HardwareError.
func (c *CPU) Run(hw *Hardware, speedHz uint32, beforeTick func(*CPU, *Hardware)) error {
	clock, err := NewClock(speedHz)
	if err != nil {
		return err
	}

	for {
		if beforeTick != nil {
			beforeTick(c, hw)
		}

		if err := c.Step(hw); err != nil {
			return err
		}

		div := c.clockDiv
		if div < 1 {
			div = 1
		}
		delay := clock.Delay() * div
		tick := clock.Tick()

		if err := hw.Delay.DelayMicros(delay); err != nil {
			return &HardwareError{Peripheral: PeriphDelay, Err: err}
		}

		if tick {
			if c.DT > 0 {
				c.DT--
			}
			if c.ST > 0 {
				c.ST--
			}
			if err := hw.Buzzer.SetState(c.ST > 0); err != nil {
				return &HardwareError{Peripheral: PeriphBuzzer, Err: err}
			}
		}
	}
}

// readInst fetches the big-endian instruction word at addr.
func (c *CPU) readInst(addr uint16) (uint16, error) {
	if addr%instStep != 0 {
		return 0, &NotAlignedError{PC: addr}
	}

	hi, err := c.RAM.ReadByte(addr)
	if err != nil {
		return 0, err
	}
	lo, err := c.RAM.ReadByte(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// setVF writes val to Vx and then the flag to VF. The order matters: VF
// wins when x is the flag register itself.
func (c *CPU) setVF(x, val, flag byte) error {
	if err := c.Reg.Set(x, val); err != nil {
		return err
	}
	return c.Reg.Set(regFlag, flag)
}

func boolFlag(cond bool) byte {
	if cond {
		return 1
	}
	return 0
}

func readKey(hw *Hardware) (byte, bool, error) {
	key, ok, err := hw.Keypad.ReadKey(hw.Delay)
	if err != nil {
		return 0, false, &HardwareError{Peripheral: PeriphKeypad, Err: err}
	}
	return key, ok, nil
}

// exec dispatches a single instruction word.
//
// PC update policy: control transfers (jp, jp0, call, ret) set PC and
// return early; everything else falls through to the default PC += 2 at
// the end, with skips adding an extra 2 when their predicate holds.
func (c *CPU) exec(inst uint16, hw *Hardware) error {
	op, ok := DecodeOpcode(inst)
	if !ok {
		return &UnknownOpcode{Opcode: inst}
	}

	var (
		addr = decodeAddr(inst)
		x    = decodeVx(inst)
		y    = decodeVy(inst)
		kk   = decodeByte(inst)
	)

	// x and y are 4-bit extracted fields, so these cannot fail; the
	// bounds check stays for safety.
	vx, err := c.Reg.Get(x)
	if err != nil {
		return err
	}
	vy, err := c.Reg.Get(y)
	if err != nil {
		return err
	}

	switch op {
	case OpCls:
		if err := hw.Screen.Clear(); err != nil {
			return &HardwareError{Peripheral: PeriphScreen, Err: err}
		}

	case OpRet:
		// The stored frame is the caller's PC at the call site; land on
		// the instruction after it.
		ret, err := c.Stack.Pop()
		if err != nil {
			return err
		}
		c.PC = ret + instStep
		return nil

	case OpJp:
		c.PC = addr
		return nil

	case OpCall:
		if err := c.Stack.Push(c.PC); err != nil {
			return err
		}
		c.PC = addr
		return nil

	case OpSe:
		if vx == kk {
			c.PC += instStep
		}

	case OpSne:
		if vx != kk {
			c.PC += instStep
		}

	case OpSev:
		if vx == vy {
			c.PC += instStep
		}

	case OpSnev:
		if vx != vy {
			c.PC += instStep
		}

	case OpLd:
		if err := c.Reg.Set(x, kk); err != nil {
			return err
		}

	case OpAdd:
		if err := c.Reg.Set(x, vx+kk); err != nil {
			return err
		}

	case OpLdv:
		if err := c.Reg.Set(x, vy); err != nil {
			return err
		}

	case OpOr:
		if err := c.Reg.Set(x, vx|vy); err != nil {
			return err
		}

	case OpAnd:
		if err := c.Reg.Set(x, vx&vy); err != nil {
			return err
		}

	case OpXor:
		if err := c.Reg.Set(x, vx^vy); err != nil {
			return err
		}

	case OpAddv:
		// Overflow is computed before either register write.
		sum := uint16(vx) + uint16(vy)
		if err := c.setVF(x, byte(sum), boolFlag(sum > 0xFF)); err != nil {
			return err
		}

	case OpSub:
		// VF is the NOT-borrow flag: strict inequality.
		if err := c.setVF(x, vx-vy, boolFlag(vx > vy)); err != nil {
			return err
		}

	case OpShr:
		if err := c.setVF(x, vx>>1, vx&1); err != nil {
			return err
		}

	case OpSubn:
		if err := c.setVF(x, vy-vx, boolFlag(vy > vx)); err != nil {
			return err
		}

	case OpShl:
		if err := c.setVF(x, vx<<1, vx>>7); err != nil {
			return err
		}

	case OpLdi:
		c.I = addr

	case OpJp0:
		v0, err := c.Reg.Get(0)
		if err != nil {
			return err
		}
		c.PC = addr + uint16(v0)
		return nil

	case OpRnd:
		r, err := hw.RNG.Rand()
		if err != nil {
			return &HardwareError{Peripheral: PeriphRNG, Err: err}
		}
		if err := c.Reg.Set(x, kk&r); err != nil {
			return err
		}

	case OpDrw:
		// Raw Vx, Vy go to the screen; wrap and collision detection are
		// the screen's contract.
		sprite, err := c.RAM.ReadBytes(c.I, uint16(decodeNibble(inst)))
		if err != nil {
			return err
		}
		erased, err := hw.Screen.Draw(vx, vy, sprite)
		if err != nil {
			return &HardwareError{Peripheral: PeriphScreen, Err: err}
		}
		if err := c.Reg.Set(regFlag, boolFlag(erased)); err != nil {
			return err
		}

	case OpSkp:
		key, ok, err := readKey(hw)
		if err != nil {
			return err
		}
		if ok && key == vx {
			c.PC += instStep
		}

	case OpSknp:
		key, ok, err := readKey(hw)
		if err != nil {
			return err
		}
		if ok && key != vx {
			c.PC += instStep
		}

	case OpLddtv:
		if err := c.Reg.Set(x, c.DT); err != nil {
			return err
		}

	case OpLdkey:
		// The only instruction that legitimately blocks. Timers do not
		// tick during the wait.
		for {
			key, ok, err := readKey(hw)
			if err != nil {
				return err
			}
			if ok {
				if err := c.Reg.Set(x, key); err != nil {
					return err
				}
				break
			}
			if err := hw.Delay.DelayMicros(pollFreq); err != nil {
				return &HardwareError{Peripheral: PeriphDelay, Err: err}
			}
		}

	case OpLddt:
		c.DT = vx

	case OpLdst:
		c.ST = vx

	case OpAddi:
		c.I += uint16(vx)

	case OpSprite:
		a, err := c.RAM.SpriteAddr(vx)
		if err != nil {
			return err
		}
		c.I = a

	case OpBcd:
		if err := c.RAM.WriteByte(c.I, vx/100); err != nil {
			return err
		}
		if err := c.RAM.WriteByte(c.I+1, (vx/10)%10); err != nil {
			return err
		}
		if err := c.RAM.WriteByte(c.I+2, vx%10); err != nil {
			return err
		}

	case OpSviv:
		for r := byte(0); r <= x; r++ {
			v, err := c.Reg.Get(r)
			if err != nil {
				return err
			}
			if err := c.RAM.WriteByte(c.I+uint16(r), v); err != nil {
				return err
			}
		}

	case OpLdiv:
		vals, err := c.RAM.ReadBytes(c.I, uint16(x)+1)
		if err != nil {
			return err
		}
		for r, v := range vals {
			if err := c.Reg.Set(byte(r), v); err != nil {
				return err
			}
		}
	}

	c.PC += instStep
	return nil
}

// String implements the fmt.Stringer interface.
func (c *CPU) String() string {
	return fmt.Sprintf(
		"I=0x%04X pc=0x%04X V=%v stack=%d dt=%d st=%d",
		c.I, c.PC, c.Reg.v, c.Stack.Depth(), c.DT, c.ST,
	)
}

// logger returns the logger to use for debugging.
func (c *CPU) logger() *log.Logger {
	if c.Logger == nil {
		return DefaultLogger
	}
	return c.Logger
}
