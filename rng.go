// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

import (
	"math/rand"
	"time"
)

// MathRNG implements the RNG capability with math/rand.
type MathRNG struct {
	r *rand.Rand
}

// NewMathRNG returns a time-seeded RNG.
func NewMathRNG() *MathRNG {
	return &MathRNG{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Rand implements RNG.
func (m *MathRNG) Rand() (byte, error) {
	return byte(m.r.Intn(256)), nil
}
