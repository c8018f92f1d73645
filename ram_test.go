// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRAM_Font(t *testing.T) {
	ram := NewRAM()

	b, err := ram.ReadBytes(0x1B0, 5)
	require.NoError(t, err)
	require.Equal(t, []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}, b)

	b, err = ram.ReadBytes(0x1FB, 5)
	require.NoError(t, err)
	require.Equal(t, []byte{0xF0, 0x80, 0xF0, 0x80, 0x80}, b)
}

func TestRAM_SpriteAddr(t *testing.T) {
	ram := NewRAM()

	for d := byte(0); d < 16; d++ {
		addr, err := ram.SpriteAddr(d)
		require.NoError(t, err)
		require.Equal(t, 0x1B0+5*uint16(d), addr)
	}

	_, err := ram.SpriteAddr(16)
	var sprite *InvalidSpriteError
	require.ErrorAs(t, err, &sprite)
	require.Equal(t, byte(16), sprite.Digit)
}

func TestRAM_ReadByte(t *testing.T) {
	ram := NewRAM()

	_, err := ram.ReadByte(0xFFF)
	require.NoError(t, err)

	_, err = ram.ReadByte(0x1000)
	var invalid *InvalidAddressError
	require.ErrorAs(t, err, &invalid)
}

func TestRAM_ReadBytes(t *testing.T) {
	ram := NewRAM()

	// The full address space is one valid slice.
	b, err := ram.ReadBytes(0, 0x1000)
	require.NoError(t, err)
	require.Len(t, b, 0x1000)

	_, err = ram.ReadBytes(0xFFF, 2)
	var slice *InvalidSliceError
	require.ErrorAs(t, err, &slice)

	_, err = ram.ReadBytes(0x1000, 0)
	require.ErrorAs(t, err, &slice)
}

func TestRAM_WriteByte(t *testing.T) {
	ram := NewRAM()

	require.NoError(t, ram.WriteByte(0x200, 0xAB))
	v, err := ram.ReadByte(0x200)
	require.NoError(t, err)
	require.Equal(t, byte(0xAB), v)

	// The interpreter region, font included, is immutable to programs.
	var notWritable *NotWritableError
	require.ErrorAs(t, ram.WriteByte(0x1FF, 1), &notWritable)
	require.ErrorAs(t, ram.WriteByte(0, 1), &notWritable)

	var invalid *InvalidAddressError
	require.ErrorAs(t, ram.WriteByte(0x1000, 1), &invalid)
}

func TestRAM_Load(t *testing.T) {
	ram := NewRAM()

	// Load is host-facing and may target the interpreter region.
	n, err := ram.Load(0x100, []byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, uint16(3), n)

	b, err := ram.ReadBytes(0x100, 3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)

	_, err = ram.Load(0x1000, []byte{1})
	var invalid *InvalidAddressError
	require.ErrorAs(t, err, &invalid)

	_, err = ram.Load(0xF00, make([]byte, 1024))
	var tooLong *LoadTooLongError
	require.ErrorAs(t, err, &tooLong)
	require.Equal(t, uint16(0xF00), tooLong.Addr)
	require.Equal(t, 1024, tooLong.Len)
}

func TestRAM_LoadWords(t *testing.T) {
	ram := NewRAM()

	// Words are serialized big-endian regardless of host endianness.
	n, err := ram.LoadWords(0x300, []uint16{0x0102, 0x0304})
	require.NoError(t, err)
	require.Equal(t, uint16(4), n)

	b, err := ram.ReadBytes(0x300, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b)

	_, err = ram.LoadWords(0xFFE, []uint16{1, 2})
	var tooLong *LoadTooLongError
	require.ErrorAs(t, err, &tooLong)
}
