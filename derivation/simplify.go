package derivation

import (
	"strconv"

	"github.com/coderdayton/localmind/mathast"
)

// PathStep is one fired rewrite rule in a SimplificationPath.
type PathStep struct {
	Step           int
	Transformation string
	Description    string
	Before         string
	After          string
}

// SimplificationPath simplifies a single expression and returns the
// sequence of rules fired to reach its canonical form (spec.md §4.2).
func SimplificationPath(expr string) ([]PathStep, error) {
	node, err := mathast.Parse(expr)
	if err != nil {
		return nil, err
	}
	rewrites := mathast.SimplifyPath(node)
	path := make([]PathStep, 0, len(rewrites))
	for i, rw := range rewrites {
		path = append(path, PathStep{
			Step:           i + 1,
			Transformation: rw.Rule.Name,
			Description:    rw.Rule.Description,
			Before:         mathast.Format(rw.Before, mathast.DefaultFormatOptions()),
			After:          mathast.Format(rw.After, mathast.DefaultFormatOptions()),
		})
	}
	return path, nil
}

// SimplifyDerivationResult is the outcome of SimplifyDerivation: a cleaned
// chain with identity and no-progress steps removed, plus why each one
// went away.
type SimplifyDerivationResult struct {
	Steps   []Step
	Reasons []string
}

type simplifiedSide struct {
	node mathast.Node
	text string
	ok   bool
}

func simplifySide(expr string) simplifiedSide {
	node, err := mathast.Parse(expr)
	if err != nil {
		return simplifiedSide{text: expr}
	}
	simplified, _ := mathast.Simplify(node)
	return simplifiedSide{
		node: simplified,
		text: mathast.Format(simplified, mathast.DefaultFormatOptions()),
		ok:   true,
	}
}

// SimplifyDerivation simplifies each step's lhs and rhs independently, then
// removes literal identity steps ("x = x", with no algebra done at all) and
// steps that make no progress relative to the previous kept step's rhs
// (spec.md §4.2). Identity is judged on the RAW, unsimplified sides: every
// mathematically valid step reduces both sides to the same value, so
// comparing simplified forms would drop every real step along with the
// trivial ones.
func SimplifyDerivation(steps []Step) SimplifyDerivationResult {
	result := SimplifyDerivationResult{}
	var lastKeptRHS mathast.Node

	for i, step := range steps {
		stepNumber := i + 1
		rawLHS, lhsErr := mathast.Parse(step.LHS)
		rawRHS, rhsErr := mathast.Parse(step.RHS)
		lhs := simplifySide(step.LHS)
		rhs := simplifySide(step.RHS)

		if lhsErr == nil && rhsErr == nil && mathast.Equal(rawLHS, rawRHS) {
			result.Reasons = append(result.Reasons,
				"step "+strconv.Itoa(stepNumber)+" ("+step.LHS+" = "+step.RHS+") is a literal identity and was dropped")
			continue
		}

		if lastKeptRHS != nil && lhs.ok && mathast.Equal(lastKeptRHS, lhs.node) && rhs.ok && mathast.Equal(lastKeptRHS, rhs.node) {
			result.Reasons = append(result.Reasons,
				"step "+strconv.Itoa(stepNumber)+" makes no progress relative to the previous step and was dropped")
			continue
		}

		result.Steps = append(result.Steps, Step{LHS: lhs.text, RHS: rhs.text})
		if rhs.ok {
			lastKeptRHS = rhs.node
		}
	}
	return result
}
