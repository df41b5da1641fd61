// Package classify implements the local compute engine's bitmask
// classifier, solver registry, compute cache, and domain filter
// (spec.md §4.5).
package classify

import (
	"strings"

	"github.com/coderdayton/localmind/internal/rx"
	"github.com/coderdayton/localmind/solver"
)

// guard is a cheap predicate that OR-accumulates a solver.Type bit into the
// classification mask; it must never do the solver's actual work, only
// recognize the shape of a question that family can answer.
type guard struct {
	mask solver.Type
	test func(lower string) bool
}

var hasDigit = rx.CompileCase(`\d`)

var (
	factsPattern       = rx.Compile(`rational|irrational|\bis\s+.*an?\s+integer\b|\bis\s+.*a\s+fraction\b`)
	arithmeticPattern  = rx.Compile(`[+\-*/^]`)
	probabilityPattern = rx.Compile(`\bprobability\b|\bchance\b|\bodds\b`)
	logicPattern       = rx.Compile(`\bif\b.*\bthen\b|\ball\b.*\bare\b|\beither\b.*\bor\b|\bnot\s*\(`)
	formulaT1Pattern   = rx.Compile(`%\s+of|!|mod(?:ulo)?|\bprime\b|\bfibonacci\b`)
	formulaT2Pattern   = rx.Compile(`\bgcd\b|\blcm\b|square\s+root|\bsqrt\b|power\s+of|raised\s+to`)
	formulaT3Pattern   = rx.Compile(`\blog\b|\bln\b|x\^?2.*=\s*0|\bchoose\b|permutations?|\blast\s+digit\b`)
	formulaT4Pattern   = rx.Compile(`\blegs?\b.*\band\b|trailing\s+zeros?|geometric\s+series|compound\s+interest|\bdeterminant\b`)
	wordProblemPattern = rx.Compile(`years?\s+old|percent(?:age)?\s+change|\bbought\b.*\bsold\b|\btravels?\b.*\bmph\b|bat\s+and\s+ball|lily\s*pad|\bmachines?\b|\bcolors?\s+of\s+socks?\b`)
	multiStepPattern   = rx.Compile(`\bhas\b.*\btwice\s+as\s+many\b|\bhas\b.*\bmore\b.*\bthan\b|\bhas\b.*\bhalf\s+as\s+many\b`)
	calculusPattern    = rx.Compile(`\bderivative\b|\bintegral\b|d/dx`)
)

var guards = []guard{
	{solver.FACTS, func(l string) bool {
		return rx.MatchString(factsPattern, l)
	}},
	{solver.ARITHMETIC, func(l string) bool {
		return rx.MatchString(arithmeticPattern, l) && rx.MatchString(hasDigit, l)
	}},
	{solver.PROBABILITY, func(l string) bool {
		return rx.MatchString(probabilityPattern, l)
	}},
	{solver.LOGIC, func(l string) bool {
		return rx.MatchString(logicPattern, l)
	}},
	{solver.FORMULA_T1, func(l string) bool {
		return rx.MatchString(formulaT1Pattern, l)
	}},
	{solver.FORMULA_T2, func(l string) bool {
		return rx.MatchString(formulaT2Pattern, l)
	}},
	{solver.FORMULA_T3, func(l string) bool {
		return rx.MatchString(formulaT3Pattern, l)
	}},
	{solver.FORMULA_T4, func(l string) bool {
		return rx.MatchString(formulaT4Pattern, l)
	}},
	{solver.WORD_PROBLEM, func(l string) bool {
		return rx.MatchString(wordProblemPattern, l)
	}},
	{solver.MULTI_STEP, func(l string) bool {
		return rx.MatchString(multiStepPattern, l)
	}},
	{solver.CALCULUS, func(l string) bool {
		return rx.MatchString(calculusPattern, l)
	}},
	{solver.DERIVATION, func(l string) bool {
		return strings.Count(l, "=") >= 2
	}},
}

// Classify runs every guard and OR-accumulates the matching bits. If no
// guard fires but the text contains a digit, it falls back to ARITHMETIC
// (spec.md §4.5).
func Classify(text string) solver.Type {
	lower := strings.ToLower(text)
	var mask solver.Type
	for _, g := range guards {
		if g.test(lower) {
			mask |= g.mask
		}
	}
	if mask == 0 && rx.MatchString(hasDigit, lower) {
		mask = solver.ARITHMETIC
	}
	return mask
}
