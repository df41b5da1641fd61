// Package derivation verifies, extends, cleans, diagnoses, and renders
// chains of algebraic equality steps ("x + x = 2x, 2x = 3x") on top of the
// mathast expression engine.
package derivation

import "github.com/coderdayton/localmind/mathast"

// Step is one "lhs = rhs" link in a derivation chain.
type Step struct {
	LHS string
	RHS string
}

// StepVerification is the per-step outcome of Verify.
type StepVerification struct {
	Step  int
	Valid bool
	Error string
}

// ErrorKind discriminates why a derivation failed, per spec.md §7.
type ErrorKind string

const (
	// ErrorInvalidTransformation means lhs_i does not equal rhs_i.
	ErrorInvalidTransformation ErrorKind = "invalid_transformation"
	// ErrorDiscontinuity means rhs_{i-1} does not equal lhs_i.
	ErrorDiscontinuity ErrorKind = "discontinuity"
)

// Result is the outcome of verifying a full derivation chain.
type Result struct {
	Valid       bool
	Steps       []StepVerification
	InvalidStep int // 1-based index of the first failing step, 0 if Valid
	ErrorKind   ErrorKind
	Error       string
}

// parsedStep caches the AST for a step's two sides; nil Node means the side
// failed to parse, which compareNodes treats as "not equal".
type parsedStep struct {
	lhs, rhs     mathast.Node
	lhsErr       error
	rhsErr       error
}

func parseStep(s Step) parsedStep {
	var ps parsedStep
	ps.lhs, ps.lhsErr = mathast.Parse(s.LHS)
	ps.rhs, ps.rhsErr = mathast.Parse(s.RHS)
	return ps
}

func compareNodes(a, b mathast.Node) bool {
	if a == nil || b == nil {
		return false
	}
	eq, err := mathast.Compare(a, b, mathast.DefaultCompareOptions())
	if err != nil {
		return false
	}
	return eq
}

// compareExpressions mirrors spec.md §4.2's compareExpressions(a, b string)
// helper: parse both sides fresh and defer to mathast.Compare.
func compareExpressions(a, b string) bool {
	an, aerr := mathast.Parse(a)
	if aerr != nil {
		return false
	}
	bn, berr := mathast.Parse(b)
	if berr != nil {
		return false
	}
	return compareNodes(an, bn)
}
