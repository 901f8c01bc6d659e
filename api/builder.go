package api

import (
	"io"
	"os"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mtlang/config"
	"github.com/sarchlab/mtlang/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine  sim.Engine
	freq    sim.Freq
	console core.Console
	out     io.Writer
	cfg     *config.Config
	monitor *monitoring.Monitor
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the cores the driver creates.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithConsole sets the console programs print to and read from.
func (b DriverBuilder) WithConsole(console core.Console) DriverBuilder {
	b.console = console
	return b
}

// WithOutput sets where diagnostics and status lines are written.
func (b DriverBuilder) WithOutput(w io.Writer) DriverBuilder {
	b.out = w
	return b
}

// WithConfig sets the run configuration. The frequency of the config is
// used unless WithFreq is also given.
func (b DriverBuilder) WithConfig(cfg config.Config) DriverBuilder {
	b.cfg = &cfg
	return b
}

// WithMonitor registers every core with the monitor.
func (b DriverBuilder) WithMonitor(monitor *monitoring.Monitor) DriverBuilder {
	b.monitor = monitor
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	cfg := config.Default()
	if b.cfg != nil {
		cfg = *b.cfg
	}

	d := &driverImpl{
		name:    name,
		engine:  b.engine,
		freq:    b.freq,
		console: b.console,
		out:     b.out,
		cfg:     cfg,
		monitor: b.monitor,
	}

	if d.engine == nil {
		d.engine = sim.NewSerialEngine()
	}
	if d.freq == 0 {
		d.freq = cfg.Freq()
	}
	if d.out == nil {
		d.out = os.Stdout
	}
	if d.console == nil {
		d.console = core.NewConsole(os.Stdin, d.out)
	}
	if d.monitor != nil {
		d.monitor.RegisterEngine(d.engine)
	}

	return d
}
