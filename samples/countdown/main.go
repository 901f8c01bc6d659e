package main

import (
	_ "embed"
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mtlang/api"
	"github.com/sarchlab/mtlang/config"
	"github.com/tebeka/atexit"
)

//go:embed countdown.mt
var countdown string

func main() {
	cfg := config.Default()
	cfg.Log.Level = "trace"
	cfg.DumpState = true

	slog.SetDefault(slog.New(cfg.NewHandler(os.Stderr)))

	monitor := monitoring.NewMonitor()

	engine := sim.NewSerialEngine()
	monitor.RegisterEngine(engine)

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithConfig(cfg).
		Build("Driver")

	monitor.StartServer()

	res := driver.Run(countdown)
	slog.Info("Countdown finished",
		"Steps", res.Core.Steps,
		"Status", res.Core.Status.String(),
		"Time", float64(engine.CurrentTime()),
	)

	atexit.Exit(res.ExitCode())
}
