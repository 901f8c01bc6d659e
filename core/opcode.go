package core

// Opcode represents the operation a token performs.
type Opcode int

// Opcodes. Invalid only marks statements that failed to tokenize.
const (
	OpInvalid Opcode = iota
	OpPrint
	OpInput
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpVar
	OpBranch
	OpLabel
	OpExit
)

var opcodeNames = [...]string{
	OpInvalid: "Invalid",
	OpPrint:   "Print",
	OpInput:   "Input",
	OpAdd:     "Add",
	OpSub:     "Sub",
	OpMul:     "Mul",
	OpDiv:     "Div",
	OpVar:     "Var",
	OpBranch:  "Branch",
	OpLabel:   "Label",
	OpExit:    "Exit",
}

// String returns the name of the opcode.
func (o Opcode) String() string {
	if o < 0 || int(o) >= len(opcodeNames) {
		return "Opcode(?)"
	}

	return opcodeNames[o]
}

// MarshalYAML writes the opcode by name.
func (o Opcode) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// Case is the letter case of the first character of a word.
type Case int

const (
	Lower Case = iota
	Upper
)

// Signature is the (length, case) pair of a statement's first word.
type Signature struct {
	Length int
	Case   Case
}

// signatureTable is never written after initialization.
var signatureTable = map[Signature]Opcode{
	{1, Upper}: OpPrint,
	{1, Lower}: OpInput,
	{2, Upper}: OpAdd,
	{2, Lower}: OpSub,
	{3, Upper}: OpMul,
	{3, Lower}: OpDiv,
	{4, Upper}: OpVar,
	{4, Lower}: OpVar,
	{5, Upper}: OpBranch,
	{5, Lower}: OpBranch,
	{6, Upper}: OpLabel,
	{6, Lower}: OpLabel,
}

// LookupOpcode returns the opcode mapped to a signature.
func LookupOpcode(sig Signature) (Opcode, bool) {
	op, ok := signatureTable[sig]
	return op, ok
}

// Signatures returns every signature that maps to an opcode.
func Signatures() map[Signature]Opcode {
	out := make(map[Signature]Opcode, len(signatureTable))
	for k, v := range signatureTable {
		out[k] = v
	}

	return out
}
