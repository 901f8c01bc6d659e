package core

import "fmt"

// ResolveLabels maps every label name to the index of its first definition.
func ResolveLabels(tokens []Token) (map[string]int, []Issue) {
	labels := make(map[string]int)
	var issues []Issue

	for i, tok := range tokens {
		if tok.Op != OpLabel {
			continue
		}

		if tok.NArgs > 0 {
			issues = append(issues, Issue{
				Level:   IssueWarning,
				Code:    CodeLabelArgs,
				Index:   i,
				Message: "You have a label with more than zero arguments.",
			})
		}

		if _, ok := labels[tok.Name]; ok {
			issues = append(issues, Issue{
				Level:   IssueWarning,
				Code:    CodeDuplicateLabel,
				Index:   i,
				Message: fmt.Sprintf("You are defining the label `%s` more than once!", tok.Name),
			})
			continue
		}

		labels[tok.Name] = i
	}

	return labels, issues
}
