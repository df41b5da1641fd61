package solver

import (
	"math"
	"strconv"

	"github.com/coderdayton/localmind/internal/rx"
)

var (
	percentOfPattern = rx.Compile(`(-?\d+(?:\.\d+)?)\s*%\s+of\s+(-?\d+(?:\.\d+)?)`)
	factorialPattern = rx.CompileCase(`(\d+)\s*!`)
	moduloPattern    = rx.Compile(`(-?\d+)\s+mod(?:ulo)?\s+(-?\d+)|(-?\d+)\s*%\s*(-?\d+)(?!\s+of\b)`)
	isPrimePattern   = rx.Compile(`is\s+(\d+)\s+(?:a\s+)?prime`)
	fibonacciPattern = rx.Compile(`(\d+)(?:st|nd|rd|th)\s+fibonacci`)
)

// FormulaT1 covers percentage, factorial, modulo, primality and Fibonacci
// lookups (spec.md §4.4 formula tier 1).
func FormulaT1(text, lower string) ComputeResult {
	if m, _ := percentOfPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		pct, _ := parseFloatLenient(groups[1].String())
		base, _ := parseFloatLenient(groups[2].String())
		return ComputeResult{Solved: true, Result: NumberValue(pct / 100 * base), Method: "formula_percentage", Confidence: 0.9}
	}

	if m, _ := factorialPattern.FindStringMatch(lower); m != nil {
		n, err := strconv.Atoi(m.Groups()[1].String())
		if err == nil && n >= 0 && n <= 170 {
			return ComputeResult{Solved: true, Result: NumberValue(factorial(n)), Method: "formula_factorial", Confidence: 0.9}
		}
	}

	if m, _ := moduloPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		a, b := groups[1].String(), groups[2].String()
		if a == "" {
			a, b = groups[3].String(), groups[4].String()
		}
		ai, errA := strconv.Atoi(a)
		bi, errB := strconv.Atoi(b)
		if errA == nil && errB == nil && bi != 0 {
			return ComputeResult{Solved: true, Result: NumberValue(float64(((ai % bi) + bi) % bi)), Method: "formula_modulo", Confidence: 0.85}
		}
	}

	if m, _ := isPrimePattern.FindStringMatch(lower); m != nil {
		n, err := strconv.Atoi(m.Groups()[1].String())
		if err == nil {
			return ComputeResult{Solved: true, Result: TextValue(boolToYesNo(isPrime(n))), Method: "formula_prime", Confidence: 0.9}
		}
	}

	if m, _ := fibonacciPattern.FindStringMatch(lower); m != nil {
		n, err := strconv.Atoi(m.Groups()[1].String())
		if err == nil && n >= 0 && n <= 1000 {
			return ComputeResult{Solved: true, Result: NumberValue(fibonacci(n)), Method: "formula_fibonacci", Confidence: 0.9}
		}
	}

	return Unsolved
}

func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i <= int(math.Sqrt(float64(n))); i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func fibonacci(n int) float64 {
	a, b := 0.0, 1.0
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}

// FormulaT1Solver wires FormulaT1 into the registry at priority 20.
var FormulaT1Solver = Solver{
	Name:        "formula_t1",
	Description: "percentage, factorial, modulo, primality, Fibonacci",
	Types:       FORMULA_T1,
	Priority:    20,
	Run:         FormulaT1,
}
