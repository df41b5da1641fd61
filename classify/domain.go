package classify

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/coderdayton/localmind/internal/rx"
	"github.com/coderdayton/localmind/solver"
)

// MethodSolverType maps a solver's result Method string to the Type that
// produced it, the inverse of dispatch, used to filter computations by
// domain relevance (spec.md §4.5).
var MethodSolverType = map[string]solver.Type{
	"math_fact_rationality":      solver.FACTS,
	"math_fact_known_irrational": solver.FACTS,
	"math_fact_integer":          solver.FACTS,
	"math_fact_fraction":         solver.FACTS,
	"arithmetic":                 solver.ARITHMETIC,
	"inline_arithmetic":          solver.ARITHMETIC,
	"formula_percentage":         solver.FORMULA_T1,
	"formula_factorial":          solver.FORMULA_T1,
	"formula_modulo":             solver.FORMULA_T1,
	"formula_prime":              solver.FORMULA_T1,
	"formula_fibonacci":          solver.FORMULA_T1,
	"formula_gcd":                solver.FORMULA_T2,
	"formula_lcm":                solver.FORMULA_T2,
	"formula_power":              solver.FORMULA_T2,
	"formula_sqrt":               solver.FORMULA_T2,
	"formula_quadratic":          solver.FORMULA_T3,
	"formula_combinations":       solver.FORMULA_T3,
	"formula_permutations":       solver.FORMULA_T3,
	"formula_last_digit":         solver.FORMULA_T3,
	"formula_ln":                 solver.FORMULA_T3,
	"formula_log10":              solver.FORMULA_T3,
	"formula_pythagorean":        solver.FORMULA_T4,
	"formula_trailing_zeros":     solver.FORMULA_T4,
	"formula_geometric_series":   solver.FORMULA_T4,
	"formula_compound_interest":  solver.FORMULA_T4,
	"formula_determinant":        solver.FORMULA_T4,
	"crt_bat_ball":               solver.WORD_PROBLEM,
	"crt_lily_pad":               solver.WORD_PROBLEM,
	"crt_widget_machine":         solver.WORD_PROBLEM,
	"crt_harmonic_mean":          solver.WORD_PROBLEM,
	"crt_catch_up":               solver.WORD_PROBLEM,
	"crt_sock_drawer":            solver.WORD_PROBLEM,
	"word_age_projection":        solver.WORD_PROBLEM,
	"word_percent_change":        solver.WORD_PROBLEM,
	"word_profit":                solver.WORD_PROBLEM,
	"word_profit_percent":        solver.WORD_PROBLEM,
	"word_distance":              solver.WORD_PROBLEM,
	"multistep_entity":           solver.MULTI_STEP,
	"multistep_sum":              solver.MULTI_STEP,
	"calculus_derivative_at_point":  solver.CALCULUS,
	"calculus_definite_integral":    solver.CALCULUS,
	"calculus_symbolic_derivative":  solver.CALCULUS,
	"derivation_verify":          solver.DERIVATION,
	"fair_coin_independence":     solver.PROBABILITY,
	"hot_hand_independence":      solver.PROBABILITY,
	"stated_probability_independence": solver.PROBABILITY,
	"logic_modus_ponens":         solver.LOGIC,
	"logic_modus_tollens":        solver.LOGIC,
	"logic_affirming_consequent": solver.LOGIC,
	"logic_denying_antecedent":   solver.LOGIC,
	"logic_syllogism_valid":      solver.LOGIC,
	"logic_syllogism_invalid":    solver.LOGIC,
	"logic_xor":                  solver.LOGIC,
	"logic_de_morgan":            solver.LOGIC,
	"logic_contrapositive":       solver.LOGIC,
}

// domainKeywords associates a context keyword with the solver types
// relevant to that domain (spec.md §4.5's financial/calculus examples).
var domainKeywords = []struct {
	pattern *regexp2.Regexp
	mask    solver.Type
}{
	{rx.Compile(`\b(?:financ(?:e|ial)|invest(?:ment|ing)?|interest\s+rate|loan|mortgage|portfolio)\b`), solver.FORMULA_T1 | solver.FORMULA_T2 | solver.FORMULA_T4},
	{rx.Compile(`\b(?:calculus|engineering|physics|derivative|integral)\b`), solver.CALCULUS},
	{rx.Compile(`\b(?:probability|statistics|odds|likelihood)\b`), solver.PROBABILITY},
	{rx.Compile(`\b(?:logic|proof|syllogism|argument)\b`), solver.LOGIC},
	{rx.Compile(`\b(?:word\s+problem|story\s+problem)\b`), solver.WORD_PROBLEM | solver.MULTI_STEP},
}

// DetectDomain inspects text (typically a system prompt, user query, or
// model "thought") and returns the bitmask of solver types relevant to
// its domain, or 0 if no domain keyword is present.
func DetectDomain(text string) solver.Type {
	lower := strings.ToLower(text)
	var mask solver.Type
	for _, dk := range domainKeywords {
		if rx.MatchString(dk.pattern, lower) {
			mask |= dk.mask
		}
	}
	return mask
}

// FilterByDomain drops computations whose method's solver type doesn't
// intersect mask. A zero mask (no domain detected) passes everything
// through unfiltered.
func FilterByDomain(results []solver.ComputeResult, mask solver.Type) []solver.ComputeResult {
	if mask == 0 {
		return results
	}
	kept := make([]solver.ComputeResult, 0, len(results))
	for _, r := range results {
		if t, ok := MethodSolverType[r.Method]; ok && t&mask != 0 {
			kept = append(kept, r)
		}
	}
	return kept
}
