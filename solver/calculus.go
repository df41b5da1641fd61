package solver

import (
	"strings"

	"github.com/coderdayton/localmind/derivation"
	"github.com/coderdayton/localmind/internal/rx"
	"github.com/coderdayton/localmind/mathast"
)

var (
	derivativeAtPointPattern = rx.Compile(`derivative\s+of\s+(.+?)\s+(?:with\s+respect\s+to\s+(\w+)\s+)?at\s+(\w+)\s*=\s*(-?\d+(?:\.\d+)?)`)
	derivativeExprPattern    = rx.Compile(`^\s*(?:d/dx|derivative\s+of)\s+(.+)$`)
	definiteIntegralPattern  = rx.Compile(`integral\s+of\s+(.+?)\s+from\s+(-?\d+(?:\.\d+)?)\s+to\s+(-?\d+(?:\.\d+)?)`)
)

// Calculus covers symbolic differentiation, derivative evaluation at a
// point, and definite integration by Simpson's rule (spec.md §4.4
// calculus tier).
func Calculus(text, lower string) ComputeResult {
	if m, _ := derivativeAtPointPattern.FindStringMatch(lower); m != nil {
		g := m.Groups()
		exprText := strings.TrimSpace(g[1].String())
		variable := strings.TrimSpace(g[2].String())
		if variable == "" {
			variable = "x"
		}
		pointVar := g[3].String()
		pointVal, ok := parseFloatLenient(g[4].String())
		if !ok {
			return Unsolved
		}
		derivativeText, ok := derivation.Differentiate(exprText, variable)
		if !ok {
			return Unsolved
		}
		derivativeExpr, perr := mathast.Parse(derivativeText)
		if perr != nil {
			return Unsolved
		}
		value, eerr := mathast.Eval(derivativeExpr, map[string]float64{pointVar: pointVal})
		if eerr != nil {
			return Unsolved
		}
		return ComputeResult{Solved: true, Result: NumberValue(value), Method: "calculus_derivative_at_point", Confidence: 0.8}
	}

	if m, _ := definiteIntegralPattern.FindStringMatch(lower); m != nil {
		g := m.Groups()
		exprText := strings.TrimSpace(g[1].String())
		lo, okLo := parseFloatLenient(g[2].String())
		hi, okHi := parseFloatLenient(g[3].String())
		if !okLo || !okHi {
			return Unsolved
		}
		expr, perr := mathast.Parse(exprText)
		if perr != nil {
			return Unsolved
		}
		value, ierr := simpsonIntegrate(expr, "x", lo, hi, 200)
		if ierr != nil {
			return Unsolved
		}
		return ComputeResult{Solved: true, Result: NumberValue(round4(value)), Method: "calculus_definite_integral", Confidence: 0.8}
	}

	if m, _ := derivativeExprPattern.FindStringMatch(text); m != nil {
		exprText := strings.TrimSpace(m.Groups()[1].String())
		derivativeText, ok := derivation.Differentiate(exprText, "x")
		if ok {
			return ComputeResult{Solved: true, Result: TextValue(derivativeText), Method: "calculus_symbolic_derivative", Confidence: 0.75}
		}
	}

	return Unsolved
}

// simpsonIntegrate numerically integrates f (expr evaluated over variable)
// on [lo, hi] using composite Simpson's rule with n subintervals, n forced
// even.
func simpsonIntegrate(expr mathast.Node, variable string, lo, hi float64, n int) (float64, error) {
	if n%2 != 0 {
		n++
	}
	h := (hi - lo) / float64(n)
	eval := func(x float64) (float64, error) {
		return mathast.Eval(expr, map[string]float64{variable: x})
	}
	sum, err := eval(lo)
	if err != nil {
		return 0, err
	}
	end, err := eval(hi)
	if err != nil {
		return 0, err
	}
	sum += end
	for i := 1; i < n; i++ {
		x := lo + float64(i)*h
		y, err := eval(x)
		if err != nil {
			return 0, err
		}
		if i%2 == 0 {
			sum += 2 * y
		} else {
			sum += 4 * y
		}
	}
	return sum * h / 3, nil
}

func round4(v float64) float64 {
	scaled := v * 10000
	return float64(int64(scaled+sign(scaled)*0.5)) / 10000
}

// CalculusSolver wires Calculus into the registry.
var CalculusSolver = Solver{
	Name:        "calculus",
	Description: "symbolic differentiation, derivative at a point, definite integration",
	Types:       CALCULUS,
	Priority:    35,
	Run:         Calculus,
}
