package core

import (
	"log/slog"
	"os"
	"strings"
)

// StatementSep ends every statement. It cannot be escaped.
const StatementSep = "."

// Program is a tokenized source file ready to be mapped onto a core.
type Program struct {
	Tokens     []Token        `yaml:"tokens"`
	Labels     map[string]int `yaml:"labels"`
	Statements []string       `yaml:"-"` // Raw statement text, one per token before the trailing Exit
	runnable   bool
}

// Runnable reports whether every statement tokenized.
func (p *Program) Runnable() bool {
	return p.runnable
}

// Len returns the number of tokens including the trailing Exit.
func (p *Program) Len() int {
	return len(p.Tokens)
}

// SplitStatements splits source text into statements. The piece after the
// last separator is dropped when blank; ok is false when it is not.
func SplitStatements(src string) (stmts []string, ok bool) {
	stmts = strings.Split(src, StatementSep)
	last := stmts[len(stmts)-1]
	if strings.TrimSpace(last) != "" {
		return stmts, false
	}

	return stmts[:len(stmts)-1], true
}

// Compile tokenizes every statement of src. All statement errors are
// collected; the program is runnable only when there are none.
func Compile(src string) (*Program, []Issue) {
	var issues []Issue

	stmts, ok := SplitStatements(src)
	if !ok {
		issues = append(issues, Issue{
			Level:   IssueWarning,
			Code:    CodeMissingSeparator,
			Index:   -1,
			Message: "You forgot the dot in the last line of your code.",
		})
	}

	p := &Program{
		Tokens:     make([]Token, 0, len(stmts)+1),
		Statements: stmts,
		runnable:   true,
	}

	for i, stmt := range stmts {
		tok, err := Tokenize(stmt)
		if err != nil {
			p.runnable = false
			issues = append(issues, Issue{
				Level:     IssueError,
				Code:      CodeParse,
				Index:     i,
				Message:   err.Error(),
				Statement: strings.TrimSpace(stmt),
				Err:       err,
			})
			tok = invalidToken()
		}

		p.Tokens = append(p.Tokens, tok)
	}

	p.Tokens = append(p.Tokens, exitToken())

	labels, labelIssues := ResolveLabels(p.Tokens)
	p.Labels = labels
	issues = append(issues, labelIssues...)

	slog.Debug("Compiled",
		"Statements", len(stmts),
		"Labels", len(labels),
		"Issues", len(issues),
		"Runnable", p.runnable,
	)

	return p, issues
}

// CompileFile reads and compiles a source file.
func CompileFile(path string) (*Program, []Issue, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	p, issues := Compile(string(b))

	return p, issues, nil
}
