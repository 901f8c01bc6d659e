package core

import (
	"os"

	"github.com/sarchlab/akita/v4/sim"
)

// Builder can create new cores.
type Builder struct {
	engine   sim.Engine
	freq     sim.Freq
	console  Console
	maxSteps uint64
}

func NewBuilder() Builder {
	return Builder{
		freq: 1 * sim.GHz,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithConsole sets where Print writes and Input reads.
func (b Builder) WithConsole(console Console) Builder {
	b.console = console
	return b
}

// WithMaxSteps aborts runs that execute more than n tokens. Zero means no
// limit.
func (b Builder) WithMaxSteps(n uint64) Builder {
	b.maxSteps = n
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	if b.engine == nil {
		panic("engine is not set")
	}

	c := &Core{
		console:  b.console,
		maxSteps: b.maxSteps,
	}

	if c.console == nil {
		c.console = NewConsole(os.Stdin, os.Stdout)
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	return c
}
