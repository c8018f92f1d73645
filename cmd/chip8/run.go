package main

import (
	"errors"
	"log"
	"os"

	termbox "github.com/nsf/termbox-go"
	"github.com/traverse1984/chip8"
	"github.com/urfave/cli"
)

var cmdRun = cli.Command{
	Name:   "run",
	Usage:  "Run the built-in counter demo",
	Action: runRun,
	Flags: []cli.Flag{
		cli.UintFlag{
			Name:  "clock",
			Usage: "Execution speed, in hz.",
			Value: uint(chip8.DefaultClockSpeed),
		},
		cli.UintFlag{
			Name:  "div",
			Usage: "Clock division; slows execution by this factor.",
			Value: 1,
		},
		cli.StringFlag{
			Name:  "log",
			Usage: "If provided, specifies a log file to write debug output to.",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Draw a register overlay beside the display.",
		},
		cli.BoolFlag{
			Name:  "mute",
			Usage: "Disable the buzzer.",
		},
	},
}

func runRun(c *cli.Context) error {
	img, err := demoProgram()
	if err != nil {
		return err
	}

	// Initialize peripherals.
	d, err := chip8.NewTermboxDisplay(
		termbox.ColorDefault, // Foreground
		termbox.ColorDefault, // Background
	)
	if err != nil {
		return err
	}
	defer d.Close()

	var buzzer chip8.Buzzer = chip8.NullBuzzer{}
	if !c.Bool("mute") {
		// A missing audio device is not fatal; run silent instead.
		if sb, err := chip8.NewSpeakerBuzzer(); err == nil {
			buzzer = sb
		}
	}

	hw := &chip8.Hardware{
		Delay:  chip8.SleepDelay{},
		Screen: d,
		Keypad: chip8.NewTermboxKeypad(),
		Buzzer: buzzer,
		RNG:    chip8.NewMathRNG(),
	}

	cpu := chip8.NewCPU()
	cpu.Load(img)
	cpu.SetClockDivision(uint32(c.Uint("div")))

	// If a log file is specified, create a logger and add it to the CPU.
	if fname := c.String("log"); fname != "" {
		f, err := os.Create(fname)
		if err != nil {
			return err
		}
		defer f.Close()
		cpu.Logger = log.New(f, "", 0)
	}

	var beforeTick func(*chip8.CPU, *chip8.Hardware)
	if c.Bool("debug") {
		beforeTick = drawOverlay
	}

	err = cpu.Run(hw, uint32(c.Uint("clock")), beforeTick)
	if errors.Is(err, chip8.ErrQuit) {
		return nil
	}
	return err
}

// demoProgram builds the key-driven counter: each keypress adds its hex
// value to a running total, redrawn as three font digits from its BCD
// expansion.
func demoProgram() (chip8.RAM, error) {
	prog := chip8.NewProgram()

	bcd, err := prog.Data([]byte{0, 0, 0})
	if err != nil {
		return chip8.RAM{}, err
	}

	// Redraw: expand V8 into digits at the bcd blob, pull them into
	// V0-V2, and draw each with the font sprites at row V3.
	update, err := prog.Sub([]uint16{
		chip8.Ldi(uint16(bcd)),
		chip8.Bcd(8),
		chip8.Ldiv(2),
		chip8.Cls(),
		chip8.Sprite(0),
		chip8.Drw(4, 3, 5),
		chip8.Sprite(1),
		chip8.Drw(5, 3, 5),
		chip8.Sprite(2),
		chip8.Drw(6, 3, 5),
		chip8.Ret(),
	})
	if err != nil {
		return chip8.RAM{}, err
	}

	looper, err := prog.Repeat([]uint16{
		chip8.Ldkey(9),
		chip8.Addv(8, 9),
		chip8.Call(uint16(update)),
	})
	if err != nil {
		return chip8.RAM{}, err
	}

	if err := prog.Main([]uint16{
		chip8.Ld(3, 2),  // digit row
		chip8.Ld(4, 2),  // hundreds column
		chip8.Ld(5, 8),  // tens column
		chip8.Ld(6, 14), // ones column
		chip8.Ld(8, 0),  // running total
		chip8.Call(uint16(update)),
		chip8.Call(uint16(looper)),
	}); err != nil {
		return chip8.RAM{}, err
	}

	return prog.Compile()
}
