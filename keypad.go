// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

import (
	"errors"
	"time"

	termbox "github.com/nsf/termbox-go"
)

// ErrQuit is returned by the termbox keypad when the escape key is
// pressed. Hosts use it to break out of Run.
var ErrQuit = errors.New("chip8: quit key pressed")

// keyMap maps a standard keyboard to the CHIP-8 hex keypad:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  <-  q w e r
//	7 8 9 E      a s d f
//	A 0 B F      z x c v
var keyMap = map[rune]byte{
	'1': 0x01, '2': 0x02, '3': 0x03, '4': 0x0C,
	'q': 0x04, 'w': 0x05, 'e': 0x06, 'r': 0x0D,
	'a': 0x07, 's': 0x08, 'd': 0x09, 'f': 0x0E,
	'z': 0x0A, 'x': 0x00, 'c': 0x0B, 'v': 0x0F,
}

// keyHold is how long a keypress counts as held. Terminals deliver key
// events rather than key state, so a key is latched briefly after its
// event.
const keyHold = 150 * time.Millisecond

// TermboxKeypad implements the Keypad capability on termbox key events. A
// pump goroutine forwards events to a channel; polls drain the channel
// without blocking and consult the latch.
type TermboxKeypad struct {
	events chan termbox.Event
	last   byte
	lastAt time.Time
	quit   bool
}

// NewTermboxKeypad starts the event pump. termbox must already be
// initialized (NewTermboxDisplay does this).
func NewTermboxKeypad() *TermboxKeypad {
	k := &TermboxKeypad{events: make(chan termbox.Event, 16)}
	go k.pump()
	return k
}

func (k *TermboxKeypad) pump() {
	for {
		k.events <- termbox.PollEvent()
	}
}

// drain applies pending events to the latch.
func (k *TermboxKeypad) drain() {
	for {
		select {
		case ev := <-k.events:
			if ev.Type != termbox.EventKey {
				continue
			}
			if ev.Key == termbox.KeyEsc {
				k.quit = true
				continue
			}
			if key, ok := keyMap[ev.Ch]; ok {
				k.last = key
				k.lastAt = time.Now()
			}
		default:
			return
		}
	}
}

func (k *TermboxKeypad) held() (byte, bool) {
	if !k.lastAt.IsZero() && time.Since(k.lastAt) < keyHold {
		return k.last, true
	}
	return 0, false
}

// KeyPressed implements Keypad.
func (k *TermboxKeypad) KeyPressed() (bool, error) {
	k.drain()
	if k.quit {
		return false, ErrQuit
	}
	_, ok := k.held()
	return ok, nil
}

// ReadKey implements Keypad.
func (k *TermboxKeypad) ReadKey(d Delay) (byte, bool, error) {
	k.drain()
	if k.quit {
		return 0, false, ErrQuit
	}
	key, ok := k.held()
	return key, ok, nil
}
