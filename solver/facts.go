package solver

import (
	"strconv"
	"strings"

	"github.com/coderdayton/localmind/internal/rx"
)

// perfectSquaresUnder225 backs the "is sqrt(n) rational" fact: sqrt(n) is
// rational (spec.md §4.4) iff n is one of these.
var perfectSquaresUnder225 = map[int]bool{
	1: true, 4: true, 9: true, 16: true, 25: true, 36: true, 49: true,
	64: true, 81: true, 100: true, 121: true, 144: true, 169: true,
	196: true, 225: true,
}

// knownIrrationals are named constants always reported irrational.
var knownIrrationals = map[string]bool{
	"pi": true, "e": true, "phi": true,
	"sqrt(2)": true, "sqrt(3)": true, "sqrt(5)": true, "sqrt(6)": true,
	"sqrt(7)": true, "sqrt(8)": true, "sqrt(9)": false, // 9 is a perfect square
	"sqrt(10)": true, "sqrt(11)": true,
}

var (
	sqrtRationalityPattern = rx.Compile(`(?:is\s+)?(?:the\s+)?(?:square\s+root\s+of\s+(\d+)|sqrt\s*\(\s*(\d+)\s*\))\s+(?:a\s+)?(?:rational|irrational)\s*(?:number)?`)
	namedConstantPattern   = rx.Compile(`\b(pi|e|phi)\b\s+(?:a\s+)?(?:rational|irrational)`)
	integerFactPattern     = rx.Compile(`is\s+(-?\d+(?:\.\d+)?)\s+an?\s+integer`)
	fractionFactPattern    = rx.Compile(`is\s+(-?\d+)\s*/\s*(-?\d+)\s+a\s+fraction`)
)

// Facts answers rationality/integer/fraction classification questions
// about a literal number or named constant (spec.md §4.4, priority 5).
func Facts(text, lower string) ComputeResult {
	if m, _ := sqrtRationalityPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		numText := groups[1].String()
		if numText == "" {
			numText = groups[2].String()
		}
		n, err := strconv.Atoi(numText)
		if err == nil {
			rational := perfectSquaresUnder225[n]
			return ComputeResult{
				Solved:     true,
				Result:     TextValue(boolToRationalText(rational)),
				Method:     "math_fact_rationality",
				Confidence: 0.95,
			}
		}
	}

	if m, _ := namedConstantPattern.FindStringMatch(lower); m != nil {
		name := m.Groups()[1].String()
		if knownIrrationals[name] {
			return ComputeResult{
				Solved:     true,
				Result:     TextValue("irrational"),
				Method:     "math_fact_known_irrational",
				Confidence: 0.95,
			}
		}
	}

	if m, _ := integerFactPattern.FindStringMatch(lower); m != nil {
		numText := m.Groups()[1].String()
		v, err := strconv.ParseFloat(numText, 64)
		if err == nil {
			isInt := v == float64(int64(v))
			return ComputeResult{
				Solved:     true,
				Result:     TextValue(boolToYesNo(isInt)),
				Method:     "math_fact_integer",
				Confidence: 0.9,
			}
		}
	}

	if m, _ := fractionFactPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		_, errA := strconv.Atoi(groups[1].String())
		denom, errB := strconv.Atoi(groups[2].String())
		if errA == nil && errB == nil {
			return ComputeResult{
				Solved:     true,
				Result:     TextValue(boolToYesNo(denom != 0)),
				Method:     "math_fact_fraction",
				Confidence: 0.85,
			}
		}
	}

	_ = strings.TrimSpace(text)
	return Unsolved
}

func boolToRationalText(rational bool) string {
	if rational {
		return "rational"
	}
	return "irrational"
}

func boolToYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// FactsSolver wires Facts into the registry at priority 5.
var FactsSolver = Solver{
	Name:        "facts",
	Description: "rationality, integer and fraction classification of literal numbers and named constants",
	Types:       FACTS,
	Priority:    5,
	Run:         Facts,
}
