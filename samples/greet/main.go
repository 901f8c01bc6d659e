package main

import (
	_ "embed"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mtlang/api"
	"github.com/sarchlab/mtlang/core"
	"github.com/tebeka/atexit"
)

//go:embed greet.mt
var greet string

func main() {
	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithConsole(core.NewConsole(os.Stdin, os.Stdout)).
		Build("Driver")

	atexit.Exit(driver.Run(greet).ExitCode())
}
