package derivation

import "github.com/coderdayton/localmind/mathast"

// RuleMatch is one transformation-registry rule applicable at the
// suggestion point, formatted for display.
type RuleMatch struct {
	Name        string
	Description string
	Priority    int
	Before      string
	After       string
}

// NextStepSuggestion is the result of SuggestNextStep.
type NextStepSuggestion struct {
	From       string
	Found      bool
	Best       RuleMatch
	Applicable []RuleMatch
}

// SuggestNextStep parses the last step's rhs and reports the
// transformation-registry rules applicable to it, highest priority first
// (spec.md §4.2).
func SuggestNextStep(steps []Step) NextStepSuggestion {
	if len(steps) == 0 {
		return NextStepSuggestion{}
	}
	last := steps[len(steps)-1]
	suggestion := NextStepSuggestion{From: last.RHS}

	node, err := mathast.Parse(last.RHS)
	if err != nil {
		return suggestion
	}

	target := firstRewritableNode(node)
	if target == nil {
		return suggestion
	}

	for _, rule := range mathast.Registry {
		if !rule.Applies(target) {
			continue
		}
		result, changed := rule.Apply(target)
		if !changed {
			continue
		}
		suggestion.Applicable = append(suggestion.Applicable, RuleMatch{
			Name:        rule.Name,
			Description: rule.Description,
			Priority:    rule.Priority,
			Before:      mathast.Format(target, mathast.DefaultFormatOptions()),
			After:       mathast.Format(result, mathast.DefaultFormatOptions()),
		})
	}
	if len(suggestion.Applicable) > 0 {
		suggestion.Found = true
		suggestion.Best = suggestion.Applicable[0]
	}
	return suggestion
}

// firstRewritableNode returns the leftmost-outermost node any registry rule
// applies productively to, or nil if none does.
func firstRewritableNode(n mathast.Node) mathast.Node {
	var found mathast.Node
	var walk func(mathast.Node) bool
	walk = func(node mathast.Node) bool {
		for _, rule := range mathast.Registry {
			if rule.Applies(node) {
				if _, changed := rule.Apply(node); changed {
					found = node
					return true
				}
			}
		}
		switch v := node.(type) {
		case mathast.Unary:
			return walk(v.Operand)
		case mathast.Binary:
			if walk(v.Left) {
				return true
			}
			return walk(v.Right)
		}
		return false
	}
	walk(n)
	return found
}
