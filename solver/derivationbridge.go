package solver

import "github.com/coderdayton/localmind/derivation"

// Derivation bridges the derivation package's chain verifier into the
// solver registry: it extracts lhs=rhs steps from text and reports
// whether the chain holds together.
func Derivation(text, lower string) ComputeResult {
	steps := derivation.ExtractSteps(text)
	if len(steps) == 0 {
		return Unsolved
	}
	result := derivation.Verify(steps)
	if result.Valid {
		return ComputeResult{Solved: true, Result: TextValue("valid"), Method: "derivation_verify", Confidence: 0.9}
	}
	return ComputeResult{Solved: true, Result: TextValue("invalid at step " + itoaSolver(result.InvalidStep) + ": " + result.Error), Method: "derivation_verify", Confidence: 0.9}
}

func itoaSolver(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	if neg {
		b = append([]byte{'-'}, b...)
	}
	return string(b)
}

// DerivationSolver wires Derivation into the registry.
var DerivationSolver = Solver{
	Name:        "derivation",
	Description: "verifies a chain of algebraic derivation steps",
	Types:       DERIVATION,
	Priority:    45,
	Run:         Derivation,
}
