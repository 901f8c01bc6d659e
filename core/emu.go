package core

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type instEmulator struct {
}

// RunInst executes the token at the instruction pointer. A fatal condition
// moves the state to StatusAborted and is returned as a *RuntimeError.
func (i instEmulator) RunInst(state *coreState) error {
	if state.Status != StatusRunning {
		return nil
	}

	if state.IP < 0 || state.IP >= len(state.Code.Tokens) {
		panic(fmt.Sprintf("instruction pointer %d outside of program (%d tokens)",
			state.IP, len(state.Code.Tokens)))
	}

	tok := state.Code.Tokens[state.IP]

	if state.MaxSteps > 0 && state.Steps >= state.MaxSteps {
		return i.abort(state, tok, ErrStepLimit)
	}
	state.Steps++

	Trace("Inst",
		"IP", state.IP,
		"Op", tok.Op.String(),
		"Name", tok.Name,
		"Args", tok.Args,
	)

	var err error
	switch tok.Op {
	case OpPrint:
		err = i.runPrint(tok, state)
	case OpInput:
		err = i.runInput(tok, state)
	case OpAdd:
		err = i.runArithmetic(tok, state, func(x, y float64) float64 { return x + y })
	case OpSub:
		err = i.runArithmetic(tok, state, func(x, y float64) float64 { return x - y })
	case OpMul:
		err = i.runArithmetic(tok, state, func(x, y float64) float64 { return x * y })
	case OpDiv:
		err = i.runDiv(tok, state)
	case OpVar:
		err = i.runVar(tok, state)
	case OpBranch:
		err = i.runBranch(tok, state)
	case OpLabel:
		state.IP++
	case OpExit:
		i.runExit(state)
	case OpInvalid:
		// Statements that failed to tokenize must never reach a core.
		panic(fmt.Sprintf("trying to execute an Invalid token at IP %d", state.IP))
	default:
		panic(fmt.Sprintf("unknown opcode %d at IP %d", tok.Op, state.IP))
	}

	if err != nil {
		return i.abort(state, tok, err)
	}

	return nil
}

func (i instEmulator) abort(state *coreState, tok Token, err error) error {
	rerr := &RuntimeError{IP: state.IP, Token: tok, Err: err}
	state.Status = StatusAborted
	state.Err = rerr

	slog.Debug("Abort",
		"IP", state.IP,
		"Op", tok.Op.String(),
		"Error", err.Error(),
	)

	return rerr
}

/**
 * @prototype: P name name ...
 */
func (i instEmulator) runPrint(tok Token, state *coreState) error {
	var sb strings.Builder
	for _, name := range tok.Args {
		val, ok := state.Vars.Get(name)
		if !ok {
			return ErrVariableNotFound
		}
		sb.WriteString(val.Text())
	}

	if err := state.Console.WriteLine(sb.String()); err != nil {
		return err
	}

	state.IP++

	return nil
}

/**
 * @prototype: i Mode dst
 * An uppercase mode word reads a number, a lowercase one reads text.
 */
func (i instEmulator) runInput(tok Token, state *coreState) error {
	if tok.NArgs != 2 {
		return ErrInputArgs
	}

	numeric := startsWithASCIIUpper(tok.Args[0])

	line, err := state.Console.ReadLine()
	if err != nil {
		slog.Debug("ReadLine failed", "IP", state.IP, "Error", err)
		return ErrInputUnavailable
	}

	dst := tok.Args[1]
	if !numeric {
		state.Vars.Bind(dst, String(line))
		state.IP++
		return nil
	}

	n, ok := parseInputNumber(line)
	if !ok {
		state.Status = StatusHalted
		state.Halt = HaltInputMismatch
		return nil
	}

	state.Vars.Bind(dst, Number(n))
	state.IP++

	return nil
}

// parseInputNumber accepts decimal and scientific notation plus inf and nan.
func parseInputNumber(s string) (float64, bool) {
	body := strings.TrimLeft(s, "+-")
	if strings.Contains(s, "_") ||
		strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		return 0, false
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return n, true
}

/**
 * @prototype: Ab x y dst
 */
func (i instEmulator) runArithmetic(
	tok Token,
	state *coreState,
	expr func(x, y float64) float64,
) error {
	x, y, err := i.readOperands(tok, state)
	if err != nil {
		return err
	}

	return i.store(tok, state, expr(x, y))
}

/**
 * @prototype: div x y dst
 */
func (i instEmulator) runDiv(tok Token, state *coreState) error {
	x, y, err := i.readOperands(tok, state)
	if err != nil {
		return err
	}

	if y == 0 {
		return ErrZeroDivision
	}

	return i.store(tok, state, x/y)
}

func (i instEmulator) readOperands(tok Token, state *coreState) (x, y float64, err error) {
	if tok.NArgs != 3 {
		return 0, 0, ErrInvalidAmountArguments
	}

	x, err = state.Vars.Number(tok.Args[0])
	if err != nil {
		return 0, 0, err
	}

	y, err = state.Vars.Number(tok.Args[1])
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

func (i instEmulator) store(tok Token, state *coreState, result float64) error {
	dst := tok.Args[2]
	if old, ok := state.Vars.Get(dst); ok && old.Kind() == KindString {
		return ErrStoringToString
	}

	state.Vars.Bind(dst, Number(result))
	state.IP++

	return nil
}

/**
 * @prototype: name Word word ...
 * An uppercase first argument spells a number, otherwise the arguments
 * are joined into a string.
 */
func (i instEmulator) runVar(tok Token, state *coreState) error {
	if tok.NArgs == 0 {
		return ErrVarMissingArgs
	}

	var val Value
	if startsWithUpper(tok.Args[0]) {
		n, err := ParseNumber(tok.Args)
		if err != nil {
			return err
		}
		val = Number(n)
	} else {
		val = String(strings.Join(tok.Args, " "))
	}

	if err := state.Vars.Set(tok.Name, val); err != nil {
		return err
	}

	state.IP++

	return nil
}

/**
 * @prototype: equal x y label | less x y label | great x y label
 */
func (i instEmulator) runBranch(tok Token, state *coreState) error {
	if tok.NArgs != 3 {
		return ErrBranchArgs
	}

	cmp := tok.Cmp
	if cmp == CmpNone {
		cmp = comparatorOf(tok.Name)
	}
	if cmp == CmpInvalid {
		return ErrBranchSelector
	}

	target, ok := state.Code.Labels[tok.Args[2]]
	if !ok {
		return ErrLabelNotFound
	}

	met, err := i.branchConditionMet(tok, state.Vars, cmp)
	if err != nil {
		return err
	}

	if met {
		state.IP = target
		return nil
	}

	state.IP++

	return nil
}

func (i instEmulator) branchConditionMet(tok Token, vars *Variables, cmp Comparator) (bool, error) {
	x, ok := vars.Get(tok.Args[0])
	if !ok {
		return false, ErrVariableDoesNotExist
	}

	y, ok := vars.Get(tok.Args[1])
	if !ok {
		return false, ErrVariableDoesNotExist
	}

	if x.Kind() != y.Kind() {
		return false, ErrVarsNotOfSameType
	}

	switch x := x.(type) {
	case Number:
		y := y.(Number)
		switch cmp {
		case CmpEqual:
			return x == y, nil
		case CmpLess:
			return x < y, nil
		case CmpGreater:
			return x > y, nil
		}
	case String:
		y := y.(String)
		if cmp == CmpEqual {
			return x == y, nil
		}
		return false, ErrInvalidComparisonForTypes
	}

	panic(fmt.Sprintf("unhandled comparison %s on %s", cmp, x.Kind()))
}

func (i instEmulator) runExit(state *coreState) {
	state.Status = StatusHalted
	state.Halt = HaltExit
}

func startsWithUpper(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsUpper(r)
}

func startsWithASCIIUpper(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}
