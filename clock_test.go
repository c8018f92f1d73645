// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewClock_Range(t *testing.T) {
	for _, hz := range []uint32{0, 59, 1000001} {
		_, err := NewClock(hz)
		var speed *ClockSpeedError
		require.ErrorAs(t, err, &speed)
		require.Equal(t, hz, speed.Hz)
	}

	for _, hz := range []uint32{60, 700, 1000000} {
		c, err := NewClock(hz)
		require.NoError(t, err)
		require.Equal(t, 1000000/hz, c.Delay())
	}
}

func TestClock_Tick(t *testing.T) {
	// At 120 Hz every second step crosses the 16666 us macro-tick.
	c, err := NewClock(120)
	require.NoError(t, err)

	require.False(t, c.Tick())
	require.True(t, c.Tick())
	require.False(t, c.Tick())
	require.True(t, c.Tick())
}

func TestClock_TickRemainder(t *testing.T) {
	// At 100 Hz the accumulator carries a remainder: ticks land on steps
	// 2, 4 and then 5 as the remainders pile up.
	c, err := NewClock(100)
	require.NoError(t, err)

	var ticks []int
	for step := 1; step <= 5; step++ {
		if c.Tick() {
			ticks = append(ticks, step)
		}
	}

	require.Equal(t, []int{2, 4, 5}, ticks)
}
