// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

import "errors"

// Mock peripherals for engine tests. The screen records commands, the
// keypad and rng replay canned sequences, the delay counts calls and can
// fail on demand to break out of Run.

var errStop = errors.New("stop")

type screenCommand struct {
	clear  bool
	x, y   byte
	sprite []byte
}

type mockScreen struct {
	commands  []screenCommand
	collision bool
	err       error
}

func (s *mockScreen) Clear() error {
	if s.err != nil {
		return s.err
	}
	s.commands = append(s.commands, screenCommand{clear: true})
	return nil
}

func (s *mockScreen) Draw(x, y byte, sprite []byte) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.commands = append(s.commands, screenCommand{
		x:      x,
		y:      y,
		sprite: append([]byte(nil), sprite...),
	})
	return s.collision, nil
}

// mockKeypad replays a fixed sequence of polls; -1 means no key is down.
type mockKeypad struct {
	seq []int
	err error
}

func (k *mockKeypad) KeyPressed() (bool, error) {
	if k.err != nil {
		return false, k.err
	}
	return len(k.seq) > 0 && k.seq[0] >= 0, nil
}

func (k *mockKeypad) ReadKey(Delay) (byte, bool, error) {
	if k.err != nil {
		return 0, false, k.err
	}
	if len(k.seq) == 0 {
		return 0, false, nil
	}
	v := k.seq[0]
	k.seq = k.seq[1:]
	if v < 0 {
		return 0, false, nil
	}
	return byte(v), true, nil
}

type mockBuzzer struct {
	states []bool
}

func (b *mockBuzzer) SetState(on bool) error {
	b.states = append(b.states, on)
	return nil
}

type mockRNG struct {
	seq []byte
	ptr int
}

func (r *mockRNG) Rand() (byte, error) {
	if len(r.seq) == 0 {
		return 0, nil
	}
	v := r.seq[r.ptr]
	r.ptr = (r.ptr + 1) % len(r.seq)
	return v, nil
}

// mockDelay records each requested delay. With failAfter > 0, the n-th
// call returns errStop, the run-loop tests' way out of the endless loop.
type mockDelay struct {
	calls     []uint32
	failAfter int
}

func (d *mockDelay) DelayMicros(us uint32) error {
	d.calls = append(d.calls, us)
	if d.failAfter > 0 && len(d.calls) >= d.failAfter {
		return errStop
	}
	return nil
}

type mockHardware struct {
	screen *mockScreen
	keypad *mockKeypad
	buzzer *mockBuzzer
	rng    *mockRNG
	delay  *mockDelay
}

func newMockHardware() *mockHardware {
	return &mockHardware{
		screen: &mockScreen{},
		keypad: &mockKeypad{},
		buzzer: &mockBuzzer{},
		rng:    &mockRNG{},
		delay:  &mockDelay{},
	}
}

func (m *mockHardware) hw() *Hardware {
	return &Hardware{
		Delay:  m.delay,
		Screen: m.screen,
		Keypad: m.keypad,
		Buzzer: m.buzzer,
		RNG:    m.rng,
	}
}
