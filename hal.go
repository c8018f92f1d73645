// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

// The hardware abstraction layer: five capabilities the engine depends on.
// Hosted implementations live in display.go, keypad.go, buzzer.go,
// delay.go and rng.go; tests swap in mocks. Errors returned by a
// peripheral surface from the engine wrapped in a HardwareError.

// Delay pauses execution.
type Delay interface {
	// DelayMicros blocks for at least us microseconds.
	DelayMicros(us uint32) error
}

// Screen is the 64x32 monochrome XOR display.
type Screen interface {
	// Clear blanks the entire display.
	Clear() error

	// Draw XORs an 8-wide sprite into the display at (x mod W, y mod H),
	// wrapping at both edges, and reports whether any previously set
	// pixel was erased.
	Draw(x, y byte, sprite []byte) (bool, error)
}

// Keypad is the 16-key hex keypad.
type Keypad interface {
	// KeyPressed reports whether any key is currently down.
	KeyPressed() (bool, error)

	// ReadKey polls for a key without blocking. ok is false when no key
	// is down. The key value is a 4-bit index 0x0-0xF.
	ReadKey(d Delay) (key byte, ok bool, err error)
}

// Buzzer is the two-state sound output.
type Buzzer interface {
	// SetState turns the buzzer on or off. Idempotent.
	SetState(on bool) error
}

// RNG yields random bytes for the rnd instruction.
type RNG interface {
	// Rand returns a uniformly distributed byte.
	Rand() (byte, error)
}

// Hardware bundles the five peripherals. The engine borrows the bundle
// exclusively during each step; no locking is required.
type Hardware struct {
	Delay  Delay
	Screen Screen
	Keypad Keypad
	Buzzer Buzzer
	RNG    RNG
}
