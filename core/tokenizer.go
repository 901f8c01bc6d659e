package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize turns one statement into a token.
//
// Words are separated by single spaces, so runs of spaces produce empty
// arguments.
func Tokenize(stmt string) (Token, error) {
	code := strings.TrimSpace(stmt)
	if code == "" {
		return Token{}, &ParseError{Kind: ErrNoOpcodeProvided, Stmt: code}
	}

	words := strings.Split(code, " ")
	first := words[0]

	if first == "" {
		return Token{}, &ParseError{Kind: ErrCouldntParseOpcode, Stmt: code}
	}
	r, _ := utf8.DecodeRuneInString(first)

	sig := Signature{Length: utf8.RuneCountInString(first), Case: caseOf(r)}
	op, ok := LookupOpcode(sig)
	if !ok {
		return Token{}, &ParseError{Kind: ErrUnknownOperation, Stmt: code}
	}

	args := make([]string, len(words)-1)
	copy(args, words[1:])

	tok := Token{
		Op:    op,
		Name:  first,
		Args:  args,
		NArgs: len(args),
	}
	if op == OpBranch {
		tok.Cmp = comparatorOf(first)
	}

	return tok, nil
}

func caseOf(r rune) Case {
	if unicode.IsUpper(r) {
		return Upper
	}

	return Lower
}

// comparatorOf reads the comparator from the first letter of a branch name.
func comparatorOf(name string) Comparator {
	r, _ := utf8.DecodeRuneInString(name)
	switch unicode.ToLower(r) {
	case 'e':
		return CmpEqual
	case 'l':
		return CmpLess
	case 'g':
		return CmpGreater
	default:
		return CmpInvalid
	}
}
