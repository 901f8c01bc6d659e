// Package verify checks compiled programs before they run and formats the
// diagnostics of a run.
//
// Two stages are provided:
//
// 1. Static lint (lint.go): finds statements that are certain to abort once
// executed, such as a Branch to a label that is never defined or an
// arithmetic token without exactly three arguments. Lint findings never
// block a run; they are reported next to the compile warnings.
//
// 2. Reports (report.go): renders compile issues, runtime aborts and the
// completion line in the format printed by the mt command, with colors from
// go-pretty's text package.
//
// # Usage Example
//
//	prog, issues := core.Compile(src)
//	report := verify.GenerateReport(prog, issues)
//	report.WriteReport(os.Stdout)
package verify
