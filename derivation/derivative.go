package derivation

import (
	"strings"

	"github.com/coderdayton/localmind/internal/rx"
	"github.com/coderdayton/localmind/mathast"
)

// derivativeNotation matches the two prose forms spec.md §4.2 names for
// requesting a derivative: "d/dx" and "derivative of".
var derivativeNotation = rx.CompileCase(`^\s*(?:d\s*/\s*dx|derivative of)\s*`)

// detectDerivativeRuleError covers power_rule_error, chain_rule_error and
// product_rule_error: it computes the correct symbolic derivative for a
// restricted class of expressions (monomials, sin/cos, e^x, ln) and
// classifies the mismatch by the shape of the differentiated expression.
func detectDerivativeRuleError(step Step, n int) (DetectedMistake, bool) {
	m, err := derivativeNotation.FindStringMatch(step.LHS)
	if err != nil || m == nil {
		return DetectedMistake{}, false
	}
	exprText := strings.TrimSpace(step.LHS[m.Index+m.Length:])
	if strings.HasPrefix(exprText, "(") && strings.HasSuffix(exprText, ")") {
		exprText = exprText[1 : len(exprText)-1]
	}

	expr, perr := mathast.Parse(exprText)
	if perr != nil {
		return DetectedMistake{}, false
	}
	derivative, ok := symbolicDerivative(expr, "x")
	if !ok {
		return DetectedMistake{}, false
	}
	correct, _ := mathast.Simplify(derivative)

	rhs, rerr := mathast.Parse(step.RHS)
	if rerr != nil || compareNodes(rhs, correct) {
		return DetectedMistake{}, false
	}

	mistakeType, explanation, suggestion := classifyDerivativeRule(expr)
	return DetectedMistake{
		Type:         mistakeType,
		StepNumber:   n,
		Confidence:   0.7,
		Found:        step.RHS,
		Expected:     fmtNode(correct),
		Explanation:  explanation,
		Suggestion:   suggestion,
		SuggestedFix: step.LHS + " = " + fmtNode(correct),
	}, true
}

func classifyDerivativeRule(expr mathast.Node) (MistakeType, string, string) {
	if b, ok := expr.(mathast.Binary); ok && b.Op == mathast.Mul {
		if _, _, ok := asFunctionCall(b); ok {
			return ChainRuleError,
				"the derivative of the inner expression was not multiplied in",
				"apply the chain rule: differentiate the outer function, then multiply by the derivative of the inner expression"
		}
		if !isConstantLike(b.Left) && !isConstantLike(b.Right) {
			return ProductRuleError,
				"both factors vary, so the product rule is required",
				"use the product rule: (f*g)' = f'*g + f*g'"
		}
	}
	return PowerRuleError,
		"the power rule was applied incorrectly",
		"bring the exponent down as a coefficient and reduce the exponent by one"
}

func isConstantLike(n mathast.Node) bool {
	_, ok := mathast.AsNumber(n)
	return ok
}

// asFunctionCall recognizes the parser's representation of a named
// function applied to an argument: spec.md §4.1 parses "sin(x)" as the
// identifier "sin" juxtaposed with "(x)", i.e. Binary{Mul, sin, x}.
func asFunctionCall(b mathast.Binary) (string, mathast.Node, bool) {
	if v, ok := b.Left.(mathast.Variable); ok {
		switch v.Name {
		case "sin", "cos", "ln":
			return v.Name, b.Right, true
		}
	}
	return "", nil, false
}

func derivativeOfNamedFunction(name string, arg mathast.Node) (mathast.Node, bool) {
	switch name {
	case "sin":
		return mathast.Binary{Op: mathast.Mul, Left: mathast.Variable{Name: "cos"}, Right: arg}, true
	case "cos":
		return mathast.Unary{Op: mathast.Neg, Operand: mathast.Binary{Op: mathast.Mul, Left: mathast.Variable{Name: "sin"}, Right: arg}}, true
	case "ln":
		return mathast.Binary{Op: mathast.Div, Left: mathast.Number{Value: 1}, Right: arg}, true
	}
	return nil, false
}

// Differentiate parses exprText and returns its derivative with respect
// to variable, formatted back to source text. It reports false when
// exprText fails to parse or falls outside symbolicDerivative's
// supported class.
func Differentiate(exprText, variable string) (string, bool) {
	expr, err := mathast.Parse(exprText)
	if err != nil {
		return "", false
	}
	derivative, ok := symbolicDerivative(expr, variable)
	if !ok {
		return "", false
	}
	simplified, _ := mathast.Simplify(derivative)
	return fmtNode(simplified), true
}

// symbolicDerivative computes d/dv of n for monomials, sums, products,
// e^x, and sin/cos/ln of a single argument (spec.md §4.2's "restricted
// class"). It reports false when n falls outside that class.
func symbolicDerivative(n mathast.Node, v string) (mathast.Node, bool) {
	switch t := n.(type) {
	case mathast.Number:
		return mathast.Number{Value: 0}, true

	case mathast.Variable:
		if t.Name == v {
			return mathast.Number{Value: 1}, true
		}
		return mathast.Number{Value: 0}, true

	case mathast.Unary:
		d, ok := symbolicDerivative(t.Operand, v)
		if !ok {
			return nil, false
		}
		if t.Op == mathast.Neg {
			return mathast.Unary{Op: mathast.Neg, Operand: d}, true
		}
		return d, true

	case mathast.Binary:
		switch t.Op {
		case mathast.Add, mathast.Sub:
			dl, ok1 := symbolicDerivative(t.Left, v)
			dr, ok2 := symbolicDerivative(t.Right, v)
			if !ok1 || !ok2 {
				return nil, false
			}
			return mathast.Binary{Op: t.Op, Left: dl, Right: dr}, true

		case mathast.Mul:
			if name, arg, ok := asFunctionCall(t); ok {
				inner, ok := symbolicDerivative(arg, v)
				if !ok {
					return nil, false
				}
				outer, ok := derivativeOfNamedFunction(name, arg)
				if !ok {
					return nil, false
				}
				return mathast.Binary{Op: mathast.Mul, Left: outer, Right: inner}, true
			}
			dl, ok1 := symbolicDerivative(t.Left, v)
			dr, ok2 := symbolicDerivative(t.Right, v)
			if !ok1 || !ok2 {
				return nil, false
			}
			return mathast.Binary{
				Op:    mathast.Add,
				Left:  mathast.Binary{Op: mathast.Mul, Left: dl, Right: t.Right},
				Right: mathast.Binary{Op: mathast.Mul, Left: t.Left, Right: dr},
			}, true

		case mathast.Pow:
			if baseVar, ok := t.Left.(mathast.Variable); ok && baseVar.Name == "e" {
				inner, ok := symbolicDerivative(t.Right, v)
				if !ok {
					return nil, false
				}
				return mathast.Binary{Op: mathast.Mul, Left: t, Right: inner}, true
			}
			if baseVar, ok := t.Left.(mathast.Variable); ok && baseVar.Name == v {
				if exp, ok := mathast.AsNumber(t.Right); ok {
					return mathast.Binary{
						Op:    mathast.Mul,
						Left:  mathast.Number{Value: exp},
						Right: mathast.Binary{Op: mathast.Pow, Left: baseVar, Right: mathast.Number{Value: exp - 1}},
					}, true
				}
			}
			return nil, false
		}
	}
	return nil, false
}
