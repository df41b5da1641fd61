package solver

import (
	"math"
	"strconv"

	"github.com/coderdayton/localmind/internal/rx"
)

var (
	sqrtOfPattern  = rx.Compile(`(?:square\s+root\s+of|sqrt\s*\(?)\s*(-?\d+(?:\.\d+)?)\)?`)
	powerPattern   = rx.Compile(`(-?\d+(?:\.\d+)?)\s*(?:\^|to\s+the\s+power\s+of|raised\s+to)\s*(-?\d+(?:\.\d+)?)`)
	gcdPattern     = rx.Compile(`gcd\s*\(?\s*(\d+)\s*,\s*(\d+)\s*\)?`)
	lcmPattern     = rx.Compile(`lcm\s*\(?\s*(\d+)\s*,\s*(\d+)\s*\)?`)
)

// FormulaT2 covers square root, power, GCD and LCM (spec.md §4.4 formula
// tier 2).
func FormulaT2(text, lower string) ComputeResult {
	if m, _ := gcdPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		a, _ := strconv.Atoi(groups[1].String())
		b, _ := strconv.Atoi(groups[2].String())
		return ComputeResult{Solved: true, Result: NumberValue(float64(gcdInt(a, b))), Method: "formula_gcd", Confidence: 0.9}
	}

	if m, _ := lcmPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		a, _ := strconv.Atoi(groups[1].String())
		b, _ := strconv.Atoi(groups[2].String())
		g := gcdInt(a, b)
		if g != 0 {
			return ComputeResult{Solved: true, Result: NumberValue(float64(a / g * b)), Method: "formula_lcm", Confidence: 0.9}
		}
	}

	if m, _ := powerPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		base, _ := parseFloatLenient(groups[1].String())
		exp, _ := parseFloatLenient(groups[2].String())
		return ComputeResult{Solved: true, Result: NumberValue(math.Pow(base, exp)), Method: "formula_power", Confidence: 0.85}
	}

	if m, _ := sqrtOfPattern.FindStringMatch(lower); m != nil {
		n, ok := parseFloatLenient(m.Groups()[1].String())
		if ok && n >= 0 {
			return ComputeResult{Solved: true, Result: NumberValue(math.Sqrt(n)), Method: "formula_sqrt", Confidence: 0.9}
		}
	}

	return Unsolved
}

func gcdInt(a, b int) int {
	a, b = absInt(a), absInt(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// FormulaT2Solver wires FormulaT2 into the registry at priority 20.
var FormulaT2Solver = Solver{
	Name:        "formula_t2",
	Description: "square root, power, GCD, LCM",
	Types:       FORMULA_T2,
	Priority:    20,
	Run:         FormulaT2,
}
