package main

import (
	"log"
	"os"

	"github.com/urfave/cli"
)

const version = "0.1.0"

func main() {
	app := cli.NewApp()
	app.Name = "chip8"
	app.Usage = "CHIP-8 virtual machine with a terminal front-end"
	app.Version = version
	app.Commands = []cli.Command{
		cmdRun,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
