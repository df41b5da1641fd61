package solver

import (
	"strings"

	"github.com/coderdayton/localmind/internal/rx"
	"github.com/coderdayton/localmind/mathast"
)

// inlineExpressionPattern finds an arithmetic-looking substring embedded in
// a longer sentence, e.g. "What is 12 * 7?" -> "12 * 7".
var inlineExpressionPattern = rx.CompileCase(`-?\d+(?:\.\d+)?(?:\s*[+\-*/^]\s*-?\d+(?:\.\d+)?)+`)

var questionPrefix = rx.Compile(`^\s*(?:what\s+is|calculate|compute|evaluate|solve)\s*[:\-]?\s*`)

// Arithmetic evaluates a self-contained numeric expression via the math
// parser, never a host `eval` (spec.md §4.4, priority 10). It first tries
// the whole text as an expression (method "arithmetic"), then falls back to
// an embedded expression found inside a longer sentence ("inline_arithmetic").
func Arithmetic(text, lower string) ComputeResult {
	trimmed := rx.ReplaceAll(questionPrefix, strings.TrimSpace(text), "")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "?")

	if result, ok := evalExpression(trimmed); ok {
		return ComputeResult{Solved: true, Result: NumberValue(result), Method: "arithmetic", Confidence: 0.95}
	}

	if match := rx.FindAllStrings(inlineExpressionPattern, text); len(match) > 0 {
		if result, ok := evalExpression(match[0]); ok {
			return ComputeResult{Solved: true, Result: NumberValue(result), Method: "inline_arithmetic", Confidence: 0.85}
		}
	}

	return Unsolved
}

func evalExpression(expr string) (float64, bool) {
	node, err := mathast.Parse(expr)
	if err != nil {
		return 0, false
	}
	if len(mathast.FreeVariables(node)) > 0 {
		return 0, false
	}
	val, err := mathast.Eval(node, nil)
	if err != nil {
		return 0, false
	}
	return val, true
}

// ArithmeticSolver wires Arithmetic into the registry at priority 10.
var ArithmeticSolver = Solver{
	Name:        "arithmetic",
	Description: "safe expression evaluation via the math parser",
	Types:       ARITHMETIC,
	Priority:    10,
	Run:         Arithmetic,
}
