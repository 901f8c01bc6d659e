package core

import (
	"io"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
)

// Core executes a compiled program, one token per tick.
type Core struct {
	*sim.TickingComponent

	console  Console
	maxSteps uint64

	state coreState
	emu   instEmulator
}

// MapProgram sets the program that the core needs to run and resets the
// variable store and the instruction pointer.
func (c *Core) MapProgram(prog *Program) {
	if prog == nil {
		panic("MapProgram expects a compiled program")
	}

	if !prog.Runnable() {
		panic("cannot map a program that failed to compile")
	}

	c.state = newCoreState(prog, c.console, c.maxSteps)

	slog.Debug("MapProgram",
		"Core", c.Name(),
		"Tokens", prog.Len(),
		"Labels", len(prog.Labels),
	)
}

// Tick runs one token. The core stops ticking once the program halts or
// aborts.
func (c *Core) Tick() (madeProgress bool) {
	if c.state.Code == nil || c.state.Status != StatusRunning {
		return false
	}

	err := c.emu.RunInst(&c.state)
	if err != nil {
		slog.Debug("CoreAbort",
			"Core", c.Name(),
			"Time", float64(c.Engine.CurrentTime()*1e9),
			"Error", err,
		)
	}

	if c.state.Status != StatusRunning {
		LogState(&c.state)
		return false
	}

	return true
}

// Result reports where the run stands.
func (c *Core) Result() Result {
	return Result{
		Status: c.state.Status,
		Halt:   c.state.Halt,
		Err:    c.state.Err,
		Steps:  c.state.Steps,
		IP:     c.state.IP,
	}
}

// Variables exposes the variable store of the running program.
func (c *Core) Variables() *Variables {
	return c.state.Vars
}

// DumpState writes the variable store and the label map to w.
func (c *Core) DumpState(w io.Writer) {
	if c.state.Code == nil {
		return
	}

	PrintState(w, &c.state)
}
