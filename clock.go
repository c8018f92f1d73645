// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

// macroTick is one 60 Hz period in microseconds. DT and ST decrement once
// per macro-tick while the CPU runs.
const macroTick = 16666

// Clock converts an execution frequency into a per-step delay and tracks
// the 60 Hz macro-tick for the delay and sound timers.
type Clock struct {
	delay uint32 // microseconds per step
	acc   uint32
}

// NewClock returns a Clock for an execution frequency within
// [60, 1000000] Hz.
func NewClock(hz uint32) (*Clock, error) {
	if hz < 60 || hz > 1000000 {
		return nil, &ClockSpeedError{Hz: hz}
	}
	return &Clock{delay: 1000000 / hz}, nil
}

// Delay returns the per-step delay in microseconds.
func (c *Clock) Delay() uint32 { return c.delay }

// Tick accumulates one step delay and reports whether a macro-tick
// elapsed. The accumulator keeps the remainder so ticks do not drift.
func (c *Clock) Tick() bool {
	c.acc += c.delay
	if c.acc >= macroTick {
		c.acc -= macroTick
		return true
	}
	return false
}
