package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
)

// LevelTrace sits below debug; one record is logged per executed token.
const LevelTrace slog.Level = slog.LevelDebug - 4

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// PrintState renders the variable store and the label map as tables.
func PrintState(w io.Writer, state *coreState) {
	fmt.Fprintf(w, "==============State@IP %d (%s)==============\n", state.IP, state.Status)

	varTable := table.NewWriter()
	varTable.SetOutputMirror(w)
	varTable.SetTitle("Variables (%d)", state.Vars.Len())
	varTable.AppendHeader(table.Row{"Name", "Type", "Value"})
	for _, name := range state.Vars.Names() {
		val, _ := state.Vars.Get(name)
		varTable.AppendRow(table.Row{name, val.Kind(), fmt.Sprintf("%q", val.Text())})
	}
	varTable.Render()

	labelTable := table.NewWriter()
	labelTable.SetOutputMirror(w)
	labelTable.SetTitle("Labels (%d)", len(state.Code.Labels))
	labelTable.AppendHeader(table.Row{"Label", "Token"})

	names := make([]string, 0, len(state.Code.Labels))
	for name := range state.Code.Labels {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool {
		return state.Code.Labels[names[a]] < state.Code.Labels[names[b]]
	})
	for _, name := range names {
		labelTable.AppendRow(table.Row{name, state.Code.Labels[name]})
	}
	labelTable.Render()

	fmt.Fprintln(w, "================================================")
}

func LogState(state *coreState) {
	vars := make(map[string]string, state.Vars.Len())
	for _, name := range state.Vars.Names() {
		val, _ := state.Vars.Get(name)
		vars[name] = val.Text()
	}

	slog.Debug("StateCheckpoint",
		"IP", state.IP,
		"Steps", state.Steps,
		"Status", state.Status.String(),
		"Variables", vars,
		"Labels", state.Code.Labels,
	)
}
