package solver

import (
	"math"
	"strconv"

	"github.com/coderdayton/localmind/internal/rx"
	"github.com/dlclark/regexp2"
)

var (
	log10Pattern        = rx.Compile(`log(?:10)?\s*\(?\s*(-?\d+(?:\.\d+)?)\)?`)
	lnPattern           = rx.Compile(`\bln\s*\(?\s*(-?\d+(?:\.\d+)?)\)?`)
	quadraticPattern    = rx.Compile(`(-?\d+(?:\.\d+)?)\s*x\^?2\s*\+\s*(-?\d+(?:\.\d+)?)\s*x\s*\+\s*(-?\d+(?:\.\d+)?)\s*=\s*0`)
	combinationsPattern = rx.Compile(`(\d+)\s*(?:choose|c)\s*(\d+)|combinations?\s+of\s+(\d+)\s+(?:things?\s+)?(?:taken\s+)?(\d+)\s+at\s+a\s+time`)
	permutationsPattern = rx.Compile(`(\d+)\s*p\s*(\d+)|permutations?\s+of\s+(\d+)\s+(?:things?\s+)?(?:taken\s+)?(\d+)\s+at\s+a\s+time`)
	lastDigitPattern    = rx.Compile(`last\s+digit\s+of\s+(\d+)\s*\^\s*(\d+)`)
)

// FormulaT3 covers logarithms, quadratics, combinatorics and last-digit
// cycling (spec.md §4.4 formula tier 3).
func FormulaT3(text, lower string) ComputeResult {
	if m, _ := quadraticPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		a, _ := parseFloatLenient(groups[1].String())
		b, _ := parseFloatLenient(groups[2].String())
		c, _ := parseFloatLenient(groups[3].String())
		root, ok := solveQuadratic(a, b, c, lower)
		if ok {
			return ComputeResult{Solved: true, Result: NumberValue(root), Method: "formula_quadratic", Confidence: 0.85}
		}
	}

	if m, _ := combinationsPattern.FindStringMatch(lower); m != nil {
		n, k, ok := pairFromGroups(m, [2]int{1, 2}, [2]int{3, 4})
		if ok {
			return ComputeResult{Solved: true, Result: NumberValue(combinations(n, k)), Method: "formula_combinations", Confidence: 0.9}
		}
	}

	if m, _ := permutationsPattern.FindStringMatch(lower); m != nil {
		n, k, ok := pairFromGroups(m, [2]int{1, 2}, [2]int{3, 4})
		if ok {
			return ComputeResult{Solved: true, Result: NumberValue(permutations(n, k)), Method: "formula_permutations", Confidence: 0.9}
		}
	}

	if m, _ := lastDigitPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		base, _ := strconv.Atoi(groups[1].String())
		exp, _ := strconv.Atoi(groups[2].String())
		return ComputeResult{Solved: true, Result: NumberValue(float64(lastDigitOfPower(base, exp))), Method: "formula_last_digit", Confidence: 0.85}
	}

	if m, _ := lnPattern.FindStringMatch(lower); m != nil {
		n, ok := parseFloatLenient(m.Groups()[1].String())
		if ok && n > 0 {
			return ComputeResult{Solved: true, Result: NumberValue(math.Log(n)), Method: "formula_ln", Confidence: 0.85}
		}
	}

	if m, _ := log10Pattern.FindStringMatch(lower); m != nil {
		n, ok := parseFloatLenient(m.Groups()[1].String())
		if ok && n > 0 {
			return ComputeResult{Solved: true, Result: NumberValue(math.Log10(n)), Method: "formula_log10", Confidence: 0.85}
		}
	}

	return Unsolved
}

// pairFromGroups reads an (n, k) pair from whichever of two alternate
// capture-group pairs actually matched (a pattern like "5 choose 2" vs
// "combinations of 5 things taken 2 at a time" shares one regex with two
// alternatives).
func pairFromGroups(m *regexp2.Match, firstPair, secondPair [2]int) (int, int, bool) {
	groups := m.Groups()
	n, errN := strconv.Atoi(groups[firstPair[0]].String())
	k, errK := strconv.Atoi(groups[firstPair[1]].String())
	if errN == nil && errK == nil {
		return n, k, true
	}
	n, errN = strconv.Atoi(groups[secondPair[0]].String())
	k, errK = strconv.Atoi(groups[secondPair[1]].String())
	if errN == nil && errK == nil {
		return n, k, true
	}
	return 0, 0, false
}

func combinations(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return math.Round(factorial(n) / (factorial(k) * factorial(n-k)))
}

func permutations(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return math.Round(factorial(n) / factorial(n-k))
}

// solveQuadratic returns the real root requested by "larger"/"smaller" in
// the question, defaulting to the larger one.
func solveQuadratic(a, b, c float64, lower string) (float64, bool) {
	if a == 0 {
		return 0, false
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	r1 := (-b + sq) / (2 * a)
	r2 := (-b - sq) / (2 * a)
	larger, smaller := math.Max(r1, r2), math.Min(r1, r2)
	if rx.MatchString(rx.Compile(`\bsmaller\b`), lower) {
		return smaller, true
	}
	return larger, true
}

// lastDigitOfPower exploits the fact that last digits of powers cycle with
// a period of at most 4.
func lastDigitOfPower(base, exp int) int {
	if exp == 0 {
		return 1
	}
	d := absInt(base) % 10
	cycle := make([]int, 0, 4)
	seen := map[int]bool{}
	cur := 1
	for !seen[cur] && len(cycle) < 4 {
		seen[cur] = true
		cur = (cur * d) % 10
		cycle = append(cycle, cur)
	}
	if len(cycle) == 0 {
		return 0
	}
	idx := (exp - 1) % len(cycle)
	return cycle[idx]
}

// FormulaT3Solver wires FormulaT3 into the registry at priority 20.
var FormulaT3Solver = Solver{
	Name:        "formula_t3",
	Description: "logarithms, quadratics, combinatorics, last-digit cycling",
	Types:       FORMULA_T3,
	Priority:    20,
	Run:         FormulaT3,
}
