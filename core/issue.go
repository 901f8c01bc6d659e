package core

// IssueLevel represents the severity of a compile issue.
type IssueLevel string

const (
	// IssueError blocks execution.
	IssueError IssueLevel = "error"
	// IssueWarning is reported but does not block execution.
	IssueWarning IssueLevel = "warning"
)

// Issue codes.
const (
	CodeMissingSeparator = "missing_separator"
	CodeDuplicateLabel   = "duplicate_label"
	CodeLabelArgs        = "label_args"
	CodeParse            = "parse"
)

// Issue is a diagnostic found before execution.
type Issue struct {
	Level     IssueLevel `yaml:"level"`
	Code      string     `yaml:"code,omitempty"`
	Index     int        `yaml:"index"`               // Statement index, -1 when not tied to a statement
	Message   string     `yaml:"message"`
	Statement string     `yaml:"statement,omitempty"` // Trimmed statement text for parse errors
	Err       error      `yaml:"-"`
}

// HasErrors reports whether any issue blocks execution.
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Level == IssueError {
			return true
		}
	}

	return false
}
