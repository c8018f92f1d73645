// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

const (
	// maxSubs and maxData bound the symbolic id spaces: subroutine ids
	// occupy [0, maxSubs), data ids [maxSubs, maxSubs+maxData).
	maxSubs = 32
	maxData = 64
)

// backpatch opcodes: the high bytes of jp, call, ldi and jp0 words.
var patchOps = [...]byte{0x10, 0x20, 0xA0, 0xB0}

type progRef struct {
	addr uint16
	size uint16
}

// Program composes a loadable 4 KiB image from a main routine, named
// subroutines and data blobs. Sub, Repeat, Data and Var return symbolic
// ids that stand in for addresses inside jp/call/ldi/jp0 instructions;
// Compile lays the blocks out from ProgramStart (main, then subroutines
// in registration order, then data) and rewrites every id into the
// resolved 12-bit address.
//
// Blocks accumulate in a scratch RAM that Compile consumes.
type Program struct {
	tmp  RAM
	addr uint16
	main *progRef
	subs []progRef
	data []progRef
}

// NewProgram returns an empty program.
func NewProgram() *Program {
	return &Program{tmp: NewRAM(), addr: ProgramStart}
}

func (p *Program) loadBytes(b []byte) (progRef, error) {
	n, err := p.tmp.Load(p.addr, b)
	if err != nil {
		return progRef{}, err
	}
	ref := progRef{addr: p.addr, size: n}
	p.addr += n
	return ref, nil
}

func (p *Program) loadWords(words []uint16) (progRef, error) {
	n, err := p.tmp.LoadWords(p.addr, words)
	if err != nil {
		return progRef{}, err
	}
	ref := progRef{addr: p.addr, size: n}
	p.addr += n
	return ref, nil
}

// program blocks hold instructions and must be word aligned; data blobs
// have no such restriction.
func (p *Program) loadProgram(b []byte) (progRef, error) {
	if len(b)%2 != 0 {
		return progRef{}, &UnalignedProgramError{Len: len(b)}
	}
	return p.loadBytes(b)
}

// Main registers the main routine, placed at ProgramStart on compile.
// Calling Main again replaces the previous routine.
func (p *Program) Main(words []uint16) error {
	ref, err := p.loadWords(words)
	if err != nil {
		return err
	}
	p.main = &ref
	return nil
}

// MainBytes is Main for a pre-encoded block. len(b) must be even.
func (p *Program) MainBytes(b []byte) error {
	ref, err := p.loadProgram(b)
	if err != nil {
		return err
	}
	p.main = &ref
	return nil
}

func (p *Program) addSub(ref progRef) (byte, error) {
	if len(p.subs) == maxSubs {
		return 0, ErrTooManySubs
	}
	p.subs = append(p.subs, ref)
	return byte(len(p.subs) - 1), nil
}

// Sub registers a subroutine and returns its symbolic id.
func (p *Program) Sub(words []uint16) (byte, error) {
	ref, err := p.loadWords(words)
	if err != nil {
		return 0, err
	}
	return p.addSub(ref)
}

// SubBytes is Sub for a pre-encoded block. len(b) must be even.
func (p *Program) SubBytes(b []byte) (byte, error) {
	ref, err := p.loadProgram(b)
	if err != nil {
		return 0, err
	}
	return p.addSub(ref)
}

// Repeat registers a subroutine consisting of body followed by a jp back
// to the subroutine's own entry, so the body loops forever. Callers enter
// the loop with call; it never returns.
func (p *Program) Repeat(words []uint16) (byte, error) {
	ref, err := p.loadWords(words)
	if err != nil {
		return 0, err
	}

	// The jp targets the id this subroutine is about to receive.
	self := uint16(len(p.subs))
	jp, err := p.loadWords([]uint16{Jp(self)})
	if err != nil {
		return 0, err
	}
	ref.size += jp.size

	return p.addSub(ref)
}

// Data registers a data blob and returns its symbolic id.
func (p *Program) Data(b []byte) (byte, error) {
	if len(p.data) == maxData {
		return 0, ErrTooManyData
	}
	ref, err := p.loadBytes(b)
	if err != nil {
		return 0, err
	}
	p.data = append(p.data, ref)
	return byte(maxSubs + len(p.data) - 1), nil
}

// Var registers a single initialized byte and returns its symbolic id.
func (p *Program) Var(b byte) (byte, error) {
	return p.Data([]byte{b})
}

// Compile lays out the registered blocks, back-patches symbolic ids, and
// returns the loadable image. The Program is consumed.
func (p *Program) Compile() (RAM, error) {
	if p.main == nil {
		return RAM{}, ErrNoMain
	}

	ram := NewRAM()
	addr := uint16(ProgramStart)

	place := func(ref *progRef) error {
		b, err := p.tmp.ReadBytes(ref.addr, ref.size)
		if err != nil {
			return err
		}
		n, err := ram.Load(addr, b)
		if err != nil {
			return err
		}
		ref.addr = addr
		addr += n
		return nil
	}

	if err := place(p.main); err != nil {
		return RAM{}, err
	}
	for i := range p.subs {
		if err := place(&p.subs[i]); err != nil {
			return RAM{}, err
		}
	}

	// Data blobs follow the instruction region; the back-patch scan
	// stops before them.
	lastInst := addr

	for i := range p.data {
		if err := place(&p.data[i]); err != nil {
			return RAM{}, err
		}
	}

	for at := uint16(ProgramStart); at < lastInst; at += instStep {
		b, err := ram.ReadBytes(at, 2)
		if err != nil {
			return RAM{}, err
		}
		hi, id := b[0], b[1]

		if !patchable(hi) || int(id) >= maxSubs+maxData {
			continue
		}

		target, err := p.resolve(id)
		if err != nil {
			return RAM{}, err
		}

		// The resolved address is 12 bits; the opcode nibble in the high
		// byte stays intact.
		if _, err := ram.Load(at, []byte{hi | byte(target>>8), byte(target)}); err != nil {
			return RAM{}, err
		}
	}

	return ram, nil
}

func patchable(hi byte) bool {
	for _, op := range patchOps {
		if hi == op {
			return true
		}
	}
	return false
}

func (p *Program) resolve(id byte) (uint16, error) {
	if int(id) < maxSubs {
		if int(id) >= len(p.subs) {
			return 0, &UnresolvedRefError{ID: id}
		}
		return p.subs[id].addr, nil
	}

	d := int(id) - maxSubs
	if d >= len(p.data) {
		return 0, &UnresolvedRefError{ID: id}
	}
	return p.data[d].addr, nil
}
