// Command mt runs programs whose opcodes are picked by the length and the
// case of each statement's first word.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mtlang/api"
	"github.com/sarchlab/mtlang/config"
	"github.com/sarchlab/mtlang/core"
	"github.com/sarchlab/mtlang/verify"
	"github.com/tebeka/atexit"
	"gopkg.in/yaml.v3"
)

var version = "0.1.0"

const usage = `Usage:
  mt [run] <file>    run a program
  mt lint <file>     report compile issues and lint findings
  mt tokens <file>   print the tokens and labels as YAML
  mt -h | --help     show this help
  mt -V | --version  print the version

The run configuration is read from the YAML file named by $MT_CONFIG.
`

func main() {
	atexit.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, text.FgRed.Sprint(verify.MsgNoSource))
		return api.ExitUsage
	}

	switch args[0] {
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usage)
		return api.ExitOK
	case "-V", "--version", "version":
		fmt.Fprintf(stdout, "mt %s\n", version)
		return api.ExitOK
	}

	cmd, path := "run", args[0]
	switch args[0] {
	case "run", "lint", "tokens":
		if len(args) < 2 {
			fmt.Fprintln(stdout, text.FgRed.Sprint(verify.MsgNoSource))
			return api.ExitUsage
		}
		cmd, path = args[0], args[1]
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(stdout, text.FgRed.Sprintf("Invalid configuration: %v", err))
		return api.ExitUsage
	}

	logOut, closeLog, err := cfg.OpenLog()
	if err != nil {
		fmt.Fprintln(stdout, text.FgRed.Sprintf("Couldn't open the log file: %v", err))
		return api.ExitUsage
	}
	defer closeLog()

	slog.SetDefault(slog.New(cfg.NewHandler(logOut)))

	if !cfg.Color {
		text.DisableColors()
	}

	switch cmd {
	case "lint":
		return lint(path, stdout)
	case "tokens":
		return dumpTokens(path, stdout)
	default:
		return runFile(path, cfg, stdin, stdout)
	}
}

func runFile(path string, cfg config.Config, stdin io.Reader, stdout io.Writer) int {
	engine := sim.NewSerialEngine()

	builder := api.DriverBuilder{}.
		WithEngine(engine).
		WithConsole(core.NewConsole(stdin, stdout)).
		WithOutput(stdout).
		WithConfig(cfg)

	if cfg.Monitor {
		monitor := monitoring.NewMonitor()
		builder = builder.WithMonitor(monitor)
		monitor.StartServer()
	}

	driver := builder.Build("Driver")

	return driver.RunFile(path).ExitCode()
}

func lint(path string, stdout io.Writer) int {
	prog, issues, err := core.CompileFile(path)
	if err != nil {
		fmt.Fprintln(stdout, text.FgRed.Sprintf("Couldn't read the source file: %v", err))
		return api.ExitUsage
	}

	report := verify.GenerateReport(prog, issues)
	report.WriteReport(stdout)

	if len(report.Errors()) > 0 {
		return api.ExitAbort
	}

	return api.ExitOK
}

type tokenDump struct {
	Tokens []core.Token   `yaml:"tokens"`
	Labels map[string]int `yaml:"labels"`
	Issues []core.Issue   `yaml:"issues,omitempty"`
}

func dumpTokens(path string, stdout io.Writer) int {
	prog, issues, err := core.CompileFile(path)
	if err != nil {
		fmt.Fprintln(stdout, text.FgRed.Sprintf("Couldn't read the source file: %v", err))
		return api.ExitUsage
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	defer enc.Close()

	err = enc.Encode(tokenDump{
		Tokens: prog.Tokens,
		Labels: prog.Labels,
		Issues: issues,
	})
	if err != nil {
		fmt.Fprintln(stdout, text.FgRed.Sprintf("Couldn't encode the tokens: %v", err))
		return api.ExitAbort
	}

	if core.HasErrors(issues) {
		return api.ExitAbort
	}

	return api.ExitOK
}
