// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Builds a program with the builder, loads it, and runs it end to end
// against the mock peripherals: sum two registers, expand the result into
// digits through memory, and draw one digit with the font sprites.
func TestIntegration(t *testing.T) {
	prog := NewProgram()

	digits, err := prog.Data([]byte{0, 0, 0})
	require.NoError(t, err)

	// The idle loop the program parks in once done.
	idle, err := prog.Repeat(nil)
	require.NoError(t, err)

	require.NoError(t, prog.Main([]uint16{
		Ld(0, 7),
		Ld(1, 35),
		Addv(0, 1), // V0 = 42
		Ldi(uint16(digits)),
		Bcd(0),     // digits = 0, 4, 2
		Ldiv(2),    // V0..V2 = 0, 4, 2
		Sprite(1),  // I = font sprite for 4
		Drw(3, 4, 5),
		Call(uint16(idle)),
	}))

	img, err := prog.Compile()
	require.NoError(t, err)

	c := NewCPU()
	c.Load(img)

	m := newMockHardware()
	m.delay.failAfter = 30

	err = c.Run(m.hw(), 1000000, nil)
	require.ErrorIs(t, err, errStop)

	// Arithmetic and the BCD round trip.
	require.Equal(t, byte(0), getReg(t, c, 0))
	require.Equal(t, byte(4), getReg(t, c, 1))
	require.Equal(t, byte(2), getReg(t, c, 2))

	// The digit sprite for 4 was drawn at (V3, V4) = (0, 0).
	require.Equal(t, []screenCommand{
		{x: 0, y: 0, sprite: []byte{0x90, 0x90, 0xF0, 0x10, 0x10}},
	}, m.screen.commands)

	// The program parked in the idle loop with one frame outstanding.
	require.Equal(t, 1, c.Stack.Depth())
}
