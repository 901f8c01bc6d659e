// Package api defines the driver API that compiles and runs programs.
package api

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mtlang/config"
	"github.com/sarchlab/mtlang/core"
	"github.com/sarchlab/mtlang/verify"
)

// Exit codes of a run.
const (
	ExitOK    = 0
	ExitUsage = 1 // Missing argument or unreadable source file
	ExitAbort = 2 // Compile errors or a fatal runtime error
)

// Driver provides the interface to compile and run programs.
type Driver interface {
	// Run compiles source text, prints its compile issues and, when the
	// source compiles, runs it to completion.
	Run(src string) Result

	// RunFile reads a source file and runs it.
	RunFile(path string) Result
}

// Result is the outcome of one Run.
type Result struct {
	Issues   []core.Issue
	Lint     []core.Issue
	Compiled bool
	Core     core.Result // Zero unless Compiled
	Err      error       // Read failure when not Compiled, engine failure otherwise
}

// ExitCode maps the result to the process exit code.
func (r Result) ExitCode() int {
	switch {
	case !r.Compiled && r.Err != nil:
		return ExitUsage
	case !r.Compiled, r.Err != nil:
		return ExitAbort
	case r.Core.Status == core.StatusAborted:
		return ExitAbort
	default:
		return ExitOK
	}
}

type driverImpl struct {
	name    string
	engine  sim.Engine
	freq    sim.Freq
	console core.Console
	out     io.Writer
	cfg     config.Config
	monitor *monitoring.Monitor

	runs int
}

func (d *driverImpl) RunFile(path string) Result {
	prog, issues, err := core.CompileFile(path)
	if err != nil {
		fmt.Fprintln(d.out, text.FgRed.Sprintf("Couldn't read the source file: %v", err))
		return Result{Err: err}
	}

	return d.run(prog, issues)
}

func (d *driverImpl) Run(src string) Result {
	prog, issues := core.Compile(src)

	return d.run(prog, issues)
}

func (d *driverImpl) run(prog *core.Program, issues []core.Issue) Result {
	res := Result{Issues: issues}

	verify.WriteIssues(d.out, issues)
	if core.HasErrors(issues) {
		slog.Debug("CompileFailed", "Issues", len(issues))
		return res
	}
	res.Compiled = true

	if d.cfg.Lint {
		res.Lint = verify.RunLint(prog)
		verify.WriteLintIssues(d.out, res.Lint)
	}

	c := d.buildCore()
	c.MapProgram(prog)
	c.TickNow()

	if err := d.engine.Run(); err != nil {
		fmt.Fprintln(d.out, text.FgRed.Sprintf("Simulation failed: %v", err))
		res.Err = err
		return res
	}

	res.Core = c.Result()
	d.report(c, res.Core)

	return res
}

func (d *driverImpl) buildCore() *core.Core {
	d.runs++

	c := core.NewBuilder().
		WithEngine(d.engine).
		WithFreq(d.freq).
		WithConsole(d.console).
		WithMaxSteps(d.cfg.MaxSteps).
		Build(fmt.Sprintf("%s.Core%d", d.name, d.runs))

	if d.monitor != nil {
		d.monitor.RegisterComponent(c)
	}

	return c
}

func (d *driverImpl) report(c *core.Core, res core.Result) {
	slog.Info("RunFinished",
		"Status", res.Status.String(),
		"Steps", res.Steps,
		"IP", res.IP,
		"Time", float64(d.engine.CurrentTime()),
	)

	switch res.Status {
	case core.StatusAborted:
		verify.WriteRuntimeError(d.out, res.Err)
	case core.StatusHalted:
		if res.Halt == core.HaltInputMismatch {
			verify.WriteInputMismatch(d.out)
		}
	}

	if d.cfg.DumpState {
		c.DumpState(d.out)
	}

	if res.Status != core.StatusAborted {
		verify.WriteDone(d.out)
	}
}
