package main

import (
	"fmt"

	"github.com/traverse1984/chip8"
)

// drawOverlay renders registers, timers, stack depth and the next
// instruction beside the viewport. It observes the VM without mutating it.
func drawOverlay(cpu *chip8.CPU, hw *chip8.Hardware) {
	d, ok := hw.Screen.(*chip8.TermboxDisplay)
	if !ok {
		return
	}

	x := chip8.DisplayWidth + 4
	line := 1
	print := func(s string) {
		d.Print(x, line, s)
		line++
	}

	print(fmt.Sprintf("[PC]: 0x%03X   [I]: 0x%04X", cpu.PC, cpu.I))
	print(fmt.Sprintf("[DT]: 0x%02X   [ST]: 0x%02X  ", cpu.DT, cpu.ST))
	print("")

	for r := byte(0); r < 8; r++ {
		lv, _ := cpu.Reg.Get(r)
		rv, _ := cpu.Reg.Get(r + 8)
		print(fmt.Sprintf("[V%X]: 0x%02X   [V%X]: 0x%02X", r, lv, r+8, rv))
	}

	print("")
	print(fmt.Sprintf("stack depth: %d ", cpu.Stack.Depth()))

	if b, err := cpu.RAM.ReadBytes(cpu.PC, 2); err == nil {
		word := uint16(b[0])<<8 | uint16(b[1])
		if in, err := chip8.DecodeInstruction(word); err == nil {
			print(fmt.Sprintf("next: %-24s", in))
		} else {
			print(fmt.Sprintf("next: 0x%04X ?%-12s", word, ""))
		}
	}

	d.Flush()
}
