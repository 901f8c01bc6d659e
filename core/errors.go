package core

import (
	"errors"
	"fmt"
)

// Statement-level errors.
var (
	ErrNoOpcodeProvided   = errors.New("No OpCode provided.")
	ErrCouldntParseOpcode = errors.New("OpCode couldn't be parsed (check spaces)")
	ErrUnknownOperation   = errors.New("Provided Operation is invalid.")
)

// Number literal errors.
var (
	ErrNoNumberProvided     = errors.New("NoNumberProvided")
	ErrInvalidNumberLiteral = errors.New("InvalidNumberLiteral")
	ErrDoubleComma          = errors.New("DoubleComma")
)

// Arithmetic errors.
var (
	ErrZeroDivision           = errors.New("ZeroDivisionError")
	ErrInvalidAmountArguments = errors.New("InvalidAmountArguments")
	ErrVariableDoesNotExist   = errors.New("VariableDoesNotExist")
	ErrArithmeticOnString     = errors.New("ArithmeticOnString")
	ErrStoringToString        = errors.New("StoringToString")
)

// Branch errors.
var (
	ErrVarsNotOfSameType         = errors.New("VarsNotOfSameType")
	ErrInvalidComparisonForTypes = errors.New("InvalidComparisonForTypes")
	ErrBranchArgs                = errors.New("Branch Opcode does not have exactly *3* arguments.")
	ErrBranchSelector            = errors.New("Branch command doesn't start with <e/l/g> (or uppercase version) and is invalid.")
	ErrLabelNotFound             = errors.New("Couldn't find label you are trying to jump to.")
)

// Errors of the remaining opcodes and of the run itself.
var (
	ErrVariableNotFound   = errors.New("Couldn't find var, you are trying to use.")
	ErrInputArgs          = errors.New("Input needs exactly two args.")
	ErrInputUnavailable   = errors.New("Couldn't read a line from the input.")
	ErrVarMissingArgs     = errors.New("Var token is missing argument(s).")
	ErrTypeChangeToNumber = errors.New("Changing type of variable from String to number")
	ErrTypeChangeToString = errors.New("Changing type of variable from Number to String")
	ErrStepLimit          = errors.New("Step limit exceeded.")
)

// ParseError reports a statement that could not be tokenized.
type ParseError struct {
	Kind error // One of ErrNoOpcodeProvided, ErrCouldntParseOpcode, ErrUnknownOperation
	Stmt string
}

func (e *ParseError) Error() string {
	return e.Kind.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// RuntimeError is a fatal condition raised while executing a token.
type RuntimeError struct {
	IP    int
	Token Token
	Err   error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%v on token %d", e.Err, e.IP)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
