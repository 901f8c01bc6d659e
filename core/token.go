package core

// Comparator selects the condition a Branch token tests.
type Comparator int

const (
	CmpNone Comparator = iota // not a branch
	CmpEqual
	CmpLess
	CmpGreater
	CmpInvalid // branch whose name starts with another letter
)

// String returns the name of the comparator.
func (c Comparator) String() string {
	switch c {
	case CmpNone:
		return "none"
	case CmpEqual:
		return "equal"
	case CmpLess:
		return "less"
	case CmpGreater:
		return "greater"
	default:
		return "invalid"
	}
}

// MarshalYAML writes the comparator by name.
func (c Comparator) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// Token is one tokenized statement.
type Token struct {
	Op    Opcode     `yaml:"op"`
	Name  string     `yaml:"name"`          // First word with its original case
	Args  []string   `yaml:"args,flow"`     // Remaining words
	NArgs int        `yaml:"nargs"`         // len(Args)
	Cmp   Comparator `yaml:"cmp,omitempty"` // Only set for Branch tokens
}

// exitToken terminates every program.
func exitToken() Token {
	return Token{Op: OpExit}
}

// invalidToken stands in for a statement that failed to tokenize.
func invalidToken() Token {
	return Token{Op: OpInvalid, Name: "Invalid!"}
}
