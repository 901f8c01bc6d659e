package verify

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/sarchlab/mtlang/core"
)

// Lint codes.
const (
	CodeArgCount          = "arg_count"
	CodeBranchSelector    = "branch_selector"
	CodeMissingLabel      = "missing_label"
	CodeUndefinedVariable = "undefined_variable"
	CodeNumberLiteral     = "number_literal"
	CodeTypeChange        = "type_change"
)

// RunLint performs static checks on a compiled program. Every finding is a
// warning naming a statement that aborts the run when it is executed with
// the bindings visible in the source.
// Returns the findings in statement order, or an empty list.
func RunLint(prog *core.Program) []core.Issue {
	l := linter{
		prog:    prog,
		defined: make(map[string]bool),
		rebound: make(map[string]bool),
		kinds:   make(map[string]core.Kind),
	}

	l.collectDefinitions()

	for i, tok := range prog.Tokens {
		switch tok.Op {
		case core.OpPrint:
			l.checkDefined(i, tok.Args...)
		case core.OpInput:
			l.lintInput(i, tok)
		case core.OpAdd, core.OpSub, core.OpMul, core.OpDiv:
			l.lintArithmetic(i, tok)
		case core.OpVar:
			l.lintVar(i, tok)
		case core.OpBranch:
			l.lintBranch(i, tok)
		}
	}

	return l.issues
}

type linter struct {
	prog    *core.Program
	defined map[string]bool
	rebound map[string]bool // Input targets may hold either tag
	kinds   map[string]core.Kind // Tag of the first binding seen in source order
	issues  []core.Issue
}

func (l *linter) report(i int, code, format string, args ...any) {
	l.issues = append(l.issues, core.Issue{
		Level:   core.IssueWarning,
		Code:    code,
		Index:   i,
		Message: fmt.Sprintf(format, args...),
	})
}

// collectDefinitions records every name some statement binds, regardless of
// whether that statement is reachable.
func (l *linter) collectDefinitions() {
	vars := core.NewVariables()
	for _, name := range vars.Names() {
		val, _ := vars.Get(name)
		l.defined[name] = true
		l.kinds[name] = val.Kind()
	}

	for _, tok := range l.prog.Tokens {
		switch tok.Op {
		case core.OpInput:
			if tok.NArgs == 2 {
				l.defined[tok.Args[1]] = true
				l.rebound[tok.Args[1]] = true
			}
		case core.OpAdd, core.OpSub, core.OpMul, core.OpDiv:
			if tok.NArgs == 3 {
				l.define(tok.Args[2], core.KindNumber)
			}
		case core.OpVar:
			if tok.NArgs > 0 {
				l.define(tok.Name, varKind(tok))
			}
		}
	}
}

func (l *linter) define(name string, kind core.Kind) {
	l.defined[name] = true
	if _, ok := l.kinds[name]; !ok {
		l.kinds[name] = kind
	}
}

func varKind(tok core.Token) core.Kind {
	if isUpper(tok.Args[0]) {
		return core.KindNumber
	}

	return core.KindString
}

func isUpper(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsUpper(r)
}

func (l *linter) checkDefined(i int, names ...string) {
	for _, name := range names {
		if !l.defined[name] {
			l.report(i, CodeUndefinedVariable,
				"Variable `%s` is never defined.", name)
		}
	}
}

func (l *linter) lintInput(i int, tok core.Token) {
	if tok.NArgs != 2 {
		l.report(i, CodeArgCount, "%s", core.ErrInputArgs)
	}
}

func (l *linter) lintArithmetic(i int, tok core.Token) {
	if tok.NArgs != 3 {
		l.report(i, CodeArgCount, "%s", core.ErrInvalidAmountArguments)
		return
	}

	l.checkDefined(i, tok.Args[0], tok.Args[1])

	for _, name := range tok.Args[:2] {
		if l.rebound[name] {
			continue
		}
		if kind, ok := l.kinds[name]; ok && kind == core.KindString {
			l.report(i, CodeTypeChange,
				"%s: `%s` holds a String.", core.ErrArithmeticOnString, name)
		}
	}

	if kind, ok := l.kinds[tok.Args[2]]; ok && kind == core.KindString && !l.rebound[tok.Args[2]] {
		l.report(i, CodeTypeChange,
			"%s: `%s` holds a String.", core.ErrStoringToString, tok.Args[2])
	}
}

func (l *linter) lintVar(i int, tok core.Token) {
	if tok.NArgs == 0 {
		l.report(i, CodeArgCount, "%s", core.ErrVarMissingArgs)
		return
	}

	kind := varKind(tok)
	if kind == core.KindNumber {
		if _, err := core.ParseNumber(tok.Args); err != nil {
			l.report(i, CodeNumberLiteral, "%s", err)
		}
	}

	if first := l.kinds[tok.Name]; first != kind && !l.rebound[tok.Name] {
		if kind == core.KindNumber {
			l.report(i, CodeTypeChange, "%s", core.ErrTypeChangeToNumber)
		} else {
			l.report(i, CodeTypeChange, "%s", core.ErrTypeChangeToString)
		}
	}
}

func (l *linter) lintBranch(i int, tok core.Token) {
	if tok.NArgs != 3 {
		l.report(i, CodeArgCount, "%s", core.ErrBranchArgs)
		return
	}

	if tok.Cmp == core.CmpInvalid {
		l.report(i, CodeBranchSelector, "%s", core.ErrBranchSelector)
	}

	if _, ok := l.prog.Labels[tok.Args[2]]; !ok {
		l.report(i, CodeMissingLabel,
			"%s (`%s`)", core.ErrLabelNotFound, tok.Args[2])
	}

	l.checkDefined(i, tok.Args[0], tok.Args[1])
}
