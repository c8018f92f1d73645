// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

import (
	"math/bits"

	termbox "github.com/nsf/termbox-go"
)

const (
	DisplayWidth  = 64 // Pixels
	DisplayHeight = 32 // Pixels
)

const (
	frameRune = '▒'
	pixelRune = '█'
)

// Viewport offset inside the terminal, leaving room for the border.
const originX, originY = 1, 1

// TermboxDisplay implements the Screen capability on a terminal via
// termbox. Each display row is a uint64 bitmap, MSB leftmost, which makes
// the XOR blit, wrap and collision test single word operations.
type TermboxDisplay struct {
	fg, bg termbox.Attribute
	rows   [DisplayHeight]uint64
}

// NewTermboxDisplay initializes termbox and returns a blank display with
// a frame drawn around the viewport.
func NewTermboxDisplay(fg, bg termbox.Attribute) (*TermboxDisplay, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}

	d := &TermboxDisplay{fg: fg, bg: bg}
	d.drawFrame()
	return d, termbox.Flush()
}

// Close finalizes termbox. Call it before the process exits.
func (d *TermboxDisplay) Close() {
	termbox.Close()
}

// Clear implements Screen.
func (d *TermboxDisplay) Clear() error {
	d.rows = [DisplayHeight]uint64{}
	for y := range d.rows {
		d.renderRow(y)
	}
	return termbox.Flush()
}

// Draw implements Screen. The sprite byte for each row is rotated into
// position so a draw past the right edge wraps to the left; rows past the
// bottom wrap to the top.
func (d *TermboxDisplay) Draw(x, y byte, sprite []byte) (bool, error) {
	collision := false

	for i, b := range sprite {
		row := (int(y) + i) % DisplayHeight
		curr := d.rows[row]
		next := curr ^ bits.RotateLeft64(uint64(b), -(8 + int(x)))

		if curr&next != curr {
			collision = true
		}
		if next != curr {
			d.rows[row] = next
			d.renderRow(row)
		}
	}

	return collision, termbox.Flush()
}

// Print writes a line of text at terminal cell (x, y), outside the
// emulated viewport. Used by debug overlays; call Flush afterwards.
func (d *TermboxDisplay) Print(x, y int, s string) {
	for i, r := range []rune(s) {
		termbox.SetCell(x+i, y, r, d.fg, d.bg)
	}
}

// Flush pushes pending cells to the terminal.
func (d *TermboxDisplay) Flush() error {
	return termbox.Flush()
}

func (d *TermboxDisplay) renderRow(y int) {
	row := d.rows[y]
	for cx := 0; cx < DisplayWidth; cx++ {
		ch := ' '
		if row&(1<<(63-cx)) != 0 {
			ch = pixelRune
		}
		termbox.SetCell(originX+cx, originY+y, ch, d.fg, d.bg)
	}
}

func (d *TermboxDisplay) drawFrame() {
	for cx := 0; cx < DisplayWidth+2; cx++ {
		termbox.SetCell(cx, 0, frameRune, d.fg, d.bg)
		termbox.SetCell(cx, DisplayHeight+1, frameRune, d.fg, d.bg)
	}
	for cy := 0; cy < DisplayHeight+2; cy++ {
		termbox.SetCell(0, cy, frameRune, d.fg, d.bg)
		termbox.SetCell(DisplayWidth+1, cy, frameRune, d.fg, d.bg)
	}
}
