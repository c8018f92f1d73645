// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgram_Compile(t *testing.T) {
	prog := NewProgram()

	sub, err := prog.Sub([]uint16{
		Ld(2, 22),
		Add(3, 1),
		Ret(),
	})
	require.NoError(t, err)
	require.Equal(t, byte(0), sub)

	data, err := prog.Data([]byte{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, byte(maxSubs), data)

	require.NoError(t, prog.Main([]uint16{
		Call(uint16(sub)),
		Ldi(uint16(data)),
		Add(1, 2),
		Add(3, 4),
	}))

	ram, err := prog.Compile()
	require.NoError(t, err)

	// Layout: main 0x200..0x207, sub 0x208..0x20D, data 0x20E..0x211.
	// The call and ldi ids are rewritten to those addresses.
	b, err := ram.ReadBytes(0x200, 18)
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x22, 0x08, // call 0x208
		0xA2, 0x0E, // ldi 0x20E
		0x71, 0x02, // add 1, 2
		0x73, 0x04, // add 3, 4
		0x62, 0x16, // ld 2, 22
		0x73, 0x01, // add 3, 1
		0x00, 0xEE, // ret
		1, 2, 3, 4, // data blob
	}, b)
}

func TestProgram_Var(t *testing.T) {
	prog := NewProgram()

	v0, err := prog.Var(0xAA)
	require.NoError(t, err)
	require.Equal(t, byte(maxSubs), v0)

	v1, err := prog.Var(0xBB)
	require.NoError(t, err)
	require.Equal(t, byte(maxSubs+1), v1)

	require.NoError(t, prog.Main([]uint16{
		Ldi(uint16(v1)),
	}))

	ram, err := prog.Compile()
	require.NoError(t, err)

	// main is one word; vars follow it in registration order.
	b, err := ram.ReadBytes(0x200, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0xA2, 0x03, 0xAA, 0xBB}, b)
}

func TestProgram_Repeat(t *testing.T) {
	prog := NewProgram()

	loop, err := prog.Repeat([]uint16{
		Ldkey(9),
	})
	require.NoError(t, err)
	require.Equal(t, byte(0), loop)

	require.NoError(t, prog.Main([]uint16{
		Call(uint16(loop)),
	}))

	ram, err := prog.Compile()
	require.NoError(t, err)

	// The repeat body sits at 0x202 and tail-jumps to its own entry.
	b, err := ram.ReadBytes(0x200, 6)
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x22, 0x02, // call 0x202
		0xF9, 0x0A, // ldkey 9
		0x12, 0x02, // jp 0x202
	}, b)
}

func TestProgram_NoMain(t *testing.T) {
	prog := NewProgram()
	_, err := prog.Compile()
	require.ErrorIs(t, err, ErrNoMain)
}

func TestProgram_Unaligned(t *testing.T) {
	prog := NewProgram()

	err := prog.MainBytes([]byte{0x00, 0xE0, 0x12})
	var unaligned *UnalignedProgramError
	require.ErrorAs(t, err, &unaligned)
	require.Equal(t, 3, unaligned.Len)

	_, err = prog.SubBytes([]byte{0x00})
	require.ErrorAs(t, err, &unaligned)
}

func TestProgram_Capacity(t *testing.T) {
	prog := NewProgram()

	for i := 0; i < maxSubs; i++ {
		_, err := prog.Sub([]uint16{Ret()})
		require.NoError(t, err)
	}
	_, err := prog.Sub([]uint16{Ret()})
	require.ErrorIs(t, err, ErrTooManySubs)

	for i := 0; i < maxData; i++ {
		_, err := prog.Var(0)
		require.NoError(t, err)
	}
	_, err = prog.Var(0)
	require.ErrorIs(t, err, ErrTooManyData)
}

func TestProgram_UnresolvedRef(t *testing.T) {
	prog := NewProgram()

	// jp 0x005 targets symbolic id 5, which was never registered.
	require.NoError(t, prog.Main([]uint16{
		Jp(5),
	}))

	_, err := prog.Compile()
	var unresolved *UnresolvedRefError
	require.ErrorAs(t, err, &unresolved)
	require.Equal(t, byte(5), unresolved.ID)
}

// Half-words outside the jp/call/ldi/jp0 family, and ids outside the
// table bounds, pass through the back-patch scan untouched.
func TestProgram_PatchSelectivity(t *testing.T) {
	prog := NewProgram()

	require.NoError(t, prog.Main([]uint16{
		Ld(0, 5),   // 0x6005: high byte not patchable
		Jp(0x3FF),  // 0x13FF: high byte carries address bits, not bare 0x10
		Ldi(0xFF),  // 0xA0FF: patchable high byte, id outside the table bounds
	}))

	ram, err := prog.Compile()
	require.NoError(t, err)

	b, err := ram.ReadBytes(0x200, 6)
	require.NoError(t, err)
	require.Equal(t, []byte{0x60, 0x05, 0x13, 0xFF, 0xA0, 0xFF}, b)
}
