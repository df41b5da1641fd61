package solver

import (
	"math"
	"strconv"
	"strings"

	"github.com/coderdayton/localmind/internal/rx"
	"github.com/dlclark/regexp2"
)

var (
	pythagoreanPattern    = rx.Compile(`legs?\s+(?:of\s+)?(-?\d+(?:\.\d+)?)\s+and\s+(-?\d+(?:\.\d+)?)`)
	trailingZerosPattern  = rx.CompileCase(`trailing\s+zeros?\s+(?:of|in)\s+(\d+)\s*!`)
	geometricSeriesPattern = rx.Compile(`infinite\s+geometric\s+series\b.{0,60}?first\s+term\s+(-?\d+(?:\.\d+)?).{0,60}?(?:ratio|r)\s*=?\s*(-?\d+(?:\.\d+)?)`)
	compoundInterestPattern = rx.Compile(`principal\s+(?:of\s+)?\$?(-?\d+(?:\.\d+)?).{0,60}?rate\s+(?:of\s+)?(-?\d+(?:\.\d+)?)\s*%.{0,60}?(\d+)\s+years?`)
	determinantPattern     = rx.CompileCase(`determinant\s+of\s+\[\[([^\]]+)\]\s*,?\s*\[([^\]]+)\](?:\s*,?\s*\[([^\]]+)\])?\]`)
)

// FormulaT4 covers Pythagorean triples, trailing zeros of a factorial,
// infinite geometric series, compound interest, and small matrix
// determinants (spec.md §4.4 formula tier 4).
func FormulaT4(text, lower string) ComputeResult {
	if m, _ := pythagoreanPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		a, _ := parseFloatLenient(groups[1].String())
		b, _ := parseFloatLenient(groups[2].String())
		return ComputeResult{Solved: true, Result: NumberValue(math.Hypot(a, b)), Method: "formula_pythagorean", Confidence: 0.9}
	}

	if m, _ := trailingZerosPattern.FindStringMatch(lower); m != nil {
		n, err := strconv.Atoi(m.Groups()[1].String())
		if err == nil {
			return ComputeResult{Solved: true, Result: NumberValue(float64(trailingZerosOfFactorial(n))), Method: "formula_trailing_zeros", Confidence: 0.9}
		}
	}

	if m, _ := geometricSeriesPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		a, _ := parseFloatLenient(groups[1].String())
		r, _ := parseFloatLenient(groups[2].String())
		if math.Abs(r) < 1 {
			return ComputeResult{Solved: true, Result: NumberValue(a / (1 - r)), Method: "formula_geometric_series", Confidence: 0.85}
		}
	}

	if m, _ := compoundInterestPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		principal, _ := parseFloatLenient(groups[1].String())
		rate, _ := parseFloatLenient(groups[2].String())
		years, _ := strconv.Atoi(groups[3].String())
		amount := principal * math.Pow(1+rate/100, float64(years))
		return ComputeResult{Solved: true, Result: NumberValue(amount), Method: "formula_compound_interest", Confidence: 0.85}
	}

	if m, _ := determinantPattern.FindStringMatch(lower); m != nil {
		if det, ok := determinantFromMatch(m); ok {
			return ComputeResult{Solved: true, Result: NumberValue(det), Method: "formula_determinant", Confidence: 0.85}
		}
	}

	return Unsolved
}

func parseRow(s string) []float64 {
	var row []float64
	for _, field := range strings.Split(s, ",") {
		v, ok := parseFloatLenient(field)
		if ok {
			row = append(row, v)
		}
	}
	return row
}

// determinantFromMatch reads a 2x2 or 3x3 matrix out of the pattern's
// per-row capture groups; the third row group is empty for a 2x2 input.
func determinantFromMatch(m *regexp2.Match) (float64, bool) {
	groups := m.Groups()
	var rows [][]float64
	for _, g := range groups[1:] {
		text := g.String()
		if text == "" {
			continue
		}
		rows = append(rows, parseRow(text))
	}
	n := len(rows)
	if n < 2 {
		return 0, false
	}
	for _, row := range rows {
		if len(row) != n {
			return 0, false
		}
	}
	return determinant(rows), true
}

// trailingZerosOfFactorial counts factors of 5 in n! (always the binding
// constraint since factors of 2 are more plentiful).
func trailingZerosOfFactorial(n int) int {
	count := 0
	for p := 5; p <= n; p *= 5 {
		count += n / p
	}
	return count
}

// determinant computes a matrix determinant via Gaussian elimination with
// partial pivoting, O(n^3).
func determinant(rows [][]float64) float64 {
	n := len(rows)
	a := make([][]float64, n)
	for i := range rows {
		a[i] = append([]float64(nil), rows[i]...)
	}
	det := 1.0
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if a[pivot][col] == 0 {
			return 0
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			det = -det
		}
		det *= a[col][col]
		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
		}
	}
	return det
}

// FormulaT4Solver wires FormulaT4 into the registry at priority 20.
var FormulaT4Solver = Solver{
	Name:        "formula_t4",
	Description: "Pythagorean triples, trailing zeros, geometric series, compound interest, determinants",
	Types:       FORMULA_T4,
	Priority:    20,
	Run:         FormulaT4,
}
