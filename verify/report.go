package verify

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sarchlab/mtlang/core"
)

// Status lines printed around a run.
const (
	MsgCompileFailed  = "Code can't run as a result of the above errors."
	MsgTerminated     = "The program terminated because of the above error."
	MsgDone           = "Program is done."
	MsgNoSource       = "Didn't provide the source file to run."
	MsgInputMismatchA = "The program expected a "
	MsgInputMismatchB = ", which your input is *not*!"
)

// WriteIssue prints one compile issue.
func WriteIssue(w io.Writer, is core.Issue) {
	switch {
	case is.Level == core.IssueError:
		fmt.Fprintf(w, "%s `%s` on token %d: \"%s\" \n\n",
			text.FgRed.Sprint("Error:"), is.Message, is.Index, is.Statement)
	case is.Index < 0:
		fmt.Fprintf(w, "%s: %s\n", text.FgYellow.Sprint("Warning"), is.Message)
	default:
		fmt.Fprintf(w, "%s on token %d: %s\n",
			text.FgYellow.Sprint("Warning"), is.Index, is.Message)
	}
}

// WriteIssues prints compile issues in the order they were found, followed
// by the compile failure line when any of them is an error.
func WriteIssues(w io.Writer, issues []core.Issue) {
	for _, is := range issues {
		WriteIssue(w, is)
	}

	if core.HasErrors(issues) {
		fmt.Fprintln(w, text.FgRed.Sprint(MsgCompileFailed))
	}
}

// WriteRuntimeError prints the diagnostic of an aborted run.
func WriteRuntimeError(w io.Writer, err error) {
	msg := err.Error()
	ip := -1

	var rerr *core.RuntimeError
	if errors.As(err, &rerr) {
		msg = rerr.Err.Error()
		ip = rerr.IP
	}

	fmt.Fprintf(w, "%s `%s` on token %d \n\n", text.FgRed.Sprint("Error:"), msg, ip)
	fmt.Fprintln(w, text.FgRed.Sprint(MsgTerminated))
}

// WriteInputMismatch prints the notice for a numeric Input that received
// text.
func WriteInputMismatch(w io.Writer) {
	fmt.Fprintf(w, "%s%s%s\n",
		MsgInputMismatchA, text.FgRed.Sprint("Number"), MsgInputMismatchB)
}

// WriteDone prints the completion line.
func WriteDone(w io.Writer) {
	fmt.Fprintln(w, text.FgGreen.Sprint(MsgDone))
}

// Report represents the static diagnostics of a source file.
type Report struct {
	Statements int
	Issues     []core.Issue // Compile issues
	LintIssues []core.Issue
	Labels     map[string]int
}

// GenerateReport runs lint on a compiled program and returns a report. Lint
// is skipped when the program does not compile.
func GenerateReport(prog *core.Program, issues []core.Issue) *Report {
	r := &Report{
		Statements: len(prog.Statements),
		Issues:     issues,
		Labels:     prog.Labels,
	}

	if prog.Runnable() {
		r.LintIssues = RunLint(prog)
	}

	return r
}

// Errors returns the compile errors.
func (r *Report) Errors() []core.Issue {
	return filter(r.Issues, core.IssueError)
}

// Warnings returns the compile warnings.
func (r *Report) Warnings() []core.Issue {
	return filter(r.Issues, core.IssueWarning)
}

// Clean reports whether the source has no issue of any kind.
func (r *Report) Clean() bool {
	return len(r.Issues) == 0 && len(r.LintIssues) == 0
}

func filter(issues []core.Issue, level core.IssueLevel) []core.Issue {
	var out []core.Issue
	for _, is := range issues {
		if is.Level == level {
			out = append(out, is)
		}
	}

	return out
}

// WriteLintIssues prints lint findings.
func WriteLintIssues(w io.Writer, issues []core.Issue) {
	for _, is := range issues {
		fmt.Fprintf(w, "%s on token %d [%s]: %s\n",
			text.FgYellow.Sprint("Lint"), is.Index, is.Code, is.Message)
	}
}

// WriteReport writes a formatted report to a writer.
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "COMPILE")
	fmt.Fprintln(w, separator)
	if len(r.Issues) == 0 {
		fmt.Fprintln(w, "No compile issues found.")
	} else {
		WriteIssues(w, r.Issues)
	}

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "LINT")
	fmt.Fprintln(w, separator)
	switch {
	case len(r.Errors()) > 0:
		fmt.Fprintln(w, "Skipped, the code does not compile.")
	case len(r.LintIssues) == 0:
		fmt.Fprintln(w, "No lint issues found.")
	default:
		WriteLintIssues(w, r.LintIssues)
	}

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Statements: %d, labels: %d\n", r.Statements, len(r.Labels))
	fmt.Fprintf(w, "Result: %d errors, %d warnings, %d lint findings\n",
		len(r.Errors()), len(r.Warnings()), len(r.LintIssues))
}
