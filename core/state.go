package core

// Status is the state of the execution state machine.
type Status int

const (
	StatusRunning Status = iota
	StatusHalted
	StatusAborted
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusHalted:
		return "Halted"
	case StatusAborted:
		return "FatalAbort"
	default:
		return "Status(?)"
	}
}

// HaltReason tells why a run halted normally.
type HaltReason int

const (
	HaltNone HaltReason = iota
	HaltExit
	HaltInputMismatch // Numeric Input received text that is not a number
)

type coreState struct {
	IP     int
	Steps  uint64
	Status Status
	Halt   HaltReason
	Err    error

	Code    *Program
	Vars    *Variables
	Console Console

	MaxSteps uint64
}

func newCoreState(prog *Program, console Console, maxSteps uint64) coreState {
	return coreState{
		Code:     prog,
		Vars:     NewVariables(),
		Console:  console,
		MaxSteps: maxSteps,
	}
}

// Result summarizes a finished or interrupted run.
type Result struct {
	Status Status
	Halt   HaltReason
	Err    error // *RuntimeError when Status is StatusAborted
	Steps  uint64
	IP     int
}
