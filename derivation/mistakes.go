package derivation

import (
	"math"
	"strconv"
	"strings"

	"github.com/coderdayton/localmind/internal/rx"
	"github.com/coderdayton/localmind/mathast"
)

// MistakeType is the closed set of diagnosable student-error categories
// from spec.md §3. No 13th type is ever introduced.
type MistakeType string

const (
	SignError                    MistakeType = "sign_error"
	DistributionError             MistakeType = "distribution_error"
	SubtractionDistributionError MistakeType = "subtraction_distribution_error"
	CancellationError            MistakeType = "cancellation_error"
	CoefficientError             MistakeType = "coefficient_error"
	ExponentError                MistakeType = "exponent_error"
	OrderOfOperationsError       MistakeType = "order_of_operations"
	FractionError                MistakeType = "fraction_error"
	LikeTermsError               MistakeType = "like_terms_error"
	PowerRuleError               MistakeType = "power_rule_error"
	ChainRuleError                MistakeType = "chain_rule_error"
	ProductRuleError             MistakeType = "product_rule_error"
)

// DetectedMistake is one diagnosed error in a derivation step.
type DetectedMistake struct {
	Type         MistakeType
	StepNumber   int
	Confidence   float64
	Found        string
	Expected     string
	Explanation  string
	Suggestion   string
	SuggestedFix string
}

// MistakeDetectionResult is the outcome of DetectMistakes.
type MistakeDetectionResult struct {
	Mistakes []DetectedMistake
}

type detector func(step Step, stepNumber int) (DetectedMistake, bool)

// detectors runs in order; the first match wins per step (spec.md §4.2).
var detectors = []detector{
	detectSignError,
	detectFractionError,
	detectSubtractionDistribution,
	detectDistribution,
	detectCancellation,
	detectDerivativeRuleError,
	detectCoefficientError,
	detectLikeTermsError,
	detectExponentError,
	detectOrderOfOperations,
}

// DetectMistakes runs every non-equivalent step through the ordered
// detector list and reports the first match per step.
func DetectMistakes(steps []Step) MistakeDetectionResult {
	result := MistakeDetectionResult{}
	for i, step := range steps {
		if compareExpressions(step.LHS, step.RHS) {
			continue // equivalent pairs are skipped, spec.md §4.2
		}
		stepNumber := i + 1
		for _, detect := range detectors {
			if mistake, ok := detect(step, stepNumber); ok {
				result.Mistakes = append(result.Mistakes, mistake)
				break
			}
		}
	}
	return result
}

func fmtNode(n mathast.Node) string {
	return mathast.Format(n, mathast.DefaultFormatOptions())
}

func parseBoth(step Step) (mathast.Node, mathast.Node, bool) {
	lhs, lerr := mathast.Parse(step.LHS)
	rhs, rerr := mathast.Parse(step.RHS)
	return lhs, rhs, lerr == nil && rerr == nil
}

// ---- sign_error ----

func detectSignError(step Step, n int) (DetectedMistake, bool) {
	lhs, rhs, ok := parseBoth(step)
	if !ok {
		return DetectedMistake{}, false
	}
	negatedRHS, _ := mathast.Simplify(mathast.Unary{Op: mathast.Neg, Operand: rhs})
	if !compareNodes(lhs, negatedRHS) {
		return DetectedMistake{}, false
	}
	return DetectedMistake{
		Type:         SignError,
		StepNumber:   n,
		Confidence:   0.85,
		Found:        step.RHS,
		Expected:     fmtNode(negatedRHS),
		Explanation:  "the right-hand side has the opposite sign of the left-hand side",
		Suggestion:   "check the sign when moving or distributing a negative term",
		SuggestedFix: step.LHS + " = " + fmtNode(negatedRHS),
	}, true
}

// ---- distribution_error ----

func detectDistribution(step Step, n int) (DetectedMistake, bool) {
	lhs, rhs, ok := parseBoth(step)
	if !ok {
		return DetectedMistake{}, false
	}
	b, ok := lhs.(mathast.Binary)
	if !ok || b.Op != mathast.Mul {
		return DetectedMistake{}, false
	}
	a, inner := b.Left, b.Right
	innerBin, ok := inner.(mathast.Binary)
	if !ok || (innerBin.Op != mathast.Add && innerBin.Op != mathast.Sub) {
		a, inner = b.Right, b.Left
		innerBin, ok = inner.(mathast.Binary)
		if !ok || (innerBin.Op != mathast.Add && innerBin.Op != mathast.Sub) {
			return DetectedMistake{}, false
		}
	}

	correct, _ := mathast.Simplify(mathast.Binary{
		Op:    innerBin.Op,
		Left:  mathast.Binary{Op: mathast.Mul, Left: a, Right: innerBin.Left},
		Right: mathast.Binary{Op: mathast.Mul, Left: a, Right: innerBin.Right},
	})
	if compareNodes(rhs, correct) {
		return DetectedMistake{}, false
	}
	partial1 := mathast.Binary{Op: innerBin.Op, Left: mathast.Binary{Op: mathast.Mul, Left: a, Right: innerBin.Left}, Right: innerBin.Right}
	partial2 := mathast.Binary{Op: innerBin.Op, Left: innerBin.Left, Right: mathast.Binary{Op: mathast.Mul, Left: a, Right: innerBin.Right}}
	if !compareNodes(rhs, partial1) && !compareNodes(rhs, partial2) {
		return DetectedMistake{}, false
	}
	return DetectedMistake{
		Type:         DistributionError,
		StepNumber:   n,
		Confidence:   0.8,
		Found:        step.RHS,
		Expected:     fmtNode(correct),
		Explanation:  "only one term inside the parentheses was multiplied through",
		Suggestion:   "multiply every term inside the parentheses by the outer factor",
		SuggestedFix: step.LHS + " = " + fmtNode(correct),
	}, true
}

// ---- subtraction_distribution_error ----

func detectSubtractionDistribution(step Step, n int) (DetectedMistake, bool) {
	lhs, rhs, ok := parseBoth(step)
	if !ok {
		return DetectedMistake{}, false
	}
	b, ok := lhs.(mathast.Binary)
	if !ok || b.Op != mathast.Sub {
		return DetectedMistake{}, false
	}
	inner, ok := b.Right.(mathast.Binary)
	if !ok || inner.Op != mathast.Sub {
		return DetectedMistake{}, false
	}
	a, c1, c2 := b.Left, inner.Left, inner.Right
	correct, _ := mathast.Simplify(mathast.Binary{Op: mathast.Add, Left: mathast.Binary{Op: mathast.Sub, Left: a, Right: c1}, Right: c2})
	wrong, _ := mathast.Simplify(mathast.Binary{Op: mathast.Sub, Left: mathast.Binary{Op: mathast.Sub, Left: a, Right: c1}, Right: c2})
	if !compareNodes(rhs, wrong) || compareNodes(rhs, correct) {
		return DetectedMistake{}, false
	}
	return DetectedMistake{
		Type:         SubtractionDistributionError,
		StepNumber:   n,
		Confidence:   0.8,
		Found:        step.RHS,
		Expected:     fmtNode(correct),
		Explanation:  "subtracting a parenthesized difference requires flipping the sign of both inner terms",
		Suggestion:   "distribute the minus sign across every term inside the parentheses",
		SuggestedFix: step.LHS + " = " + fmtNode(correct),
	}, true
}

// ---- fraction_error ----

func detectFractionError(step Step, n int) (DetectedMistake, bool) {
	lhs, rhs, ok := parseBoth(step)
	if !ok {
		return DetectedMistake{}, false
	}
	b, ok := lhs.(mathast.Binary)
	if !ok || b.Op != mathast.Add {
		return DetectedMistake{}, false
	}
	left, lok := b.Left.(mathast.Binary)
	right, rok := b.Right.(mathast.Binary)
	if !lok || !rok || left.Op != mathast.Div || right.Op != mathast.Div {
		return DetectedMistake{}, false
	}
	a, bb, c, d := left.Left, left.Right, right.Left, right.Right
	wrong, _ := mathast.Simplify(mathast.Binary{
		Op:   mathast.Div,
		Left: mathast.Binary{Op: mathast.Add, Left: a, Right: c}, Right: mathast.Binary{Op: mathast.Add, Left: bb, Right: d},
	})
	if !compareNodes(rhs, wrong) {
		return DetectedMistake{}, false
	}
	correct, _ := mathast.Simplify(mathast.Binary{
		Op: mathast.Div,
		Left: mathast.Binary{Op: mathast.Add,
			Left:  mathast.Binary{Op: mathast.Mul, Left: a, Right: d},
			Right: mathast.Binary{Op: mathast.Mul, Left: c, Right: bb}},
		Right: mathast.Binary{Op: mathast.Mul, Left: bb, Right: d},
	})
	return DetectedMistake{
		Type:         FractionError,
		StepNumber:   n,
		Confidence:   0.9,
		Found:        step.RHS,
		Expected:     fmtNode(correct),
		Explanation:  "fractions cannot be added by summing numerators and denominators separately",
		Suggestion:   "find a common denominator before adding the numerators",
		SuggestedFix: step.LHS + " = " + fmtNode(correct),
	}, true
}

// ---- cancellation_error ----

func detectCancellation(step Step, n int) (DetectedMistake, bool) {
	lhs, rhs, ok := parseBoth(step)
	if !ok {
		return DetectedMistake{}, false
	}
	b, ok := lhs.(mathast.Binary)
	if !ok || b.Op != mathast.Div {
		return DetectedMistake{}, false
	}
	sum, ok := b.Left.(mathast.Binary)
	if !ok || (sum.Op != mathast.Add && sum.Op != mathast.Sub) {
		return DetectedMistake{}, false
	}
	divisor := b.Right
	var other mathast.Node
	switch {
	case mathast.Equal(sum.Left, divisor):
		other = sum.Right
	case mathast.Equal(sum.Right, divisor):
		other = sum.Left
	default:
		return DetectedMistake{}, false
	}
	if !compareNodes(rhs, other) {
		return DetectedMistake{}, false
	}
	correct, _ := mathast.Simplify(mathast.Binary{Op: mathast.Add, Left: mathast.Number{Value: 1}, Right: mathast.Binary{Op: mathast.Div, Left: other, Right: divisor}})
	return DetectedMistake{
		Type:         CancellationError,
		StepNumber:   n,
		Confidence:   0.75,
		Found:        step.RHS,
		Expected:     fmtNode(correct),
		Explanation:  "a term added to the numerator cannot be cancelled against the whole denominator",
		Suggestion:   "split the fraction or factor the numerator before cancelling",
		SuggestedFix: step.LHS + " = " + fmtNode(correct),
	}, true
}

// ---- coefficient_error ----

// coefficientPattern extracts a leading numeric coefficient from a term,
// rejecting matches where the identifier is itself an exponent base
// (followed immediately by "^").
var coefficientPattern = rx.CompileCase(`^\s*(-?\d+(?:\.\d+)?)\s*([a-zA-Z_]\w*)(?!\s*\^)\s*$`)

func detectCoefficientError(step Step, n int) (DetectedMistake, bool) {
	lhs, err := mathast.Parse(step.LHS)
	if err != nil {
		return DetectedMistake{}, false
	}
	if b, ok := lhs.(mathast.Binary); ok && b.Op == mathast.Add {
		lc, lbase, lok := simpleTerm(b.Left)
		rc, rbase, rok := simpleTerm(b.Right)
		if !lok || !rok || !mathast.Equal(lbase, rbase) {
			return DetectedMistake{}, false
		}
		correctCoeff := lc + rc
		correct, _ := mathast.Simplify(mathast.Binary{Op: mathast.Mul, Left: mathast.Number{Value: correctCoeff}, Right: lbase})

		m, matchErr := coefficientPattern.FindStringMatch(strings.TrimSpace(step.RHS))
		if matchErr != nil || m == nil {
			return DetectedMistake{}, false
		}
		groups := m.Groups()
		coeffText := groups[1].String()
		foundCoeff, parseErr := strconv.ParseFloat(coeffText, 64)
		if parseErr != nil || foundCoeff == correctCoeff {
			return DetectedMistake{}, false
		}
		return DetectedMistake{
			Type:         CoefficientError,
			StepNumber:   n,
			Confidence:   0.8,
			Found:        step.RHS,
			Expected:     fmtNode(correct),
			Explanation:  "the combined coefficient of the like terms is wrong",
			Suggestion:   "add the coefficients of like terms carefully",
			SuggestedFix: step.LHS + " = " + fmtNode(correct),
		}, true
	}

	// No addition on the lhs: a bare "cx = dx" carry-over where the base
	// survived but the coefficient silently changed between steps.
	rhs, err := mathast.Parse(step.RHS)
	if err != nil {
		return DetectedMistake{}, false
	}
	lc, lbase, lok := simpleTerm(lhs)
	rc, rbase, rok := simpleTerm(rhs)
	if !lok || !rok || lc == rc || !mathast.Equal(lbase, rbase) {
		return DetectedMistake{}, false
	}
	correct, _ := mathast.Simplify(mathast.Binary{Op: mathast.Mul, Left: mathast.Number{Value: lc}, Right: lbase})
	return DetectedMistake{
		Type:         CoefficientError,
		StepNumber:   n,
		Confidence:   0.7,
		Found:        step.RHS,
		Expected:     fmtNode(correct),
		Explanation:  "the coefficient changed without any operation that would change it",
		Suggestion:   "carry the coefficient through unchanged unless a step explicitly scales it",
		SuggestedFix: step.LHS + " = " + fmtNode(correct),
	}, true
}

// simpleTerm decomposes n into (coefficient, base) the same way
// mathast's internal termParts does, duplicated here since that helper is
// unexported; this copy only needs to recognize the common "c*x" and bare
// "x" shapes a detector cares about.
func simpleTerm(n mathast.Node) (float64, mathast.Node, bool) {
	if b, ok := n.(mathast.Binary); ok && b.Op == mathast.Mul {
		if v, ok := mathast.AsNumber(b.Left); ok {
			return v, b.Right, true
		}
		if v, ok := mathast.AsNumber(b.Right); ok {
			return v, b.Left, true
		}
		return 0, nil, false
	}
	if _, ok := mathast.AsNumber(n); ok {
		return 0, nil, false
	}
	return 1, n, true
}

// ---- like_terms_error ----

func detectLikeTermsError(step Step, n int) (DetectedMistake, bool) {
	lhs, rhs, ok := parseBoth(step)
	if !ok {
		return DetectedMistake{}, false
	}
	b, ok := lhs.(mathast.Binary)
	if !ok || b.Op != mathast.Add {
		return DetectedMistake{}, false
	}
	lv, lok := b.Left.(mathast.Variable)
	rv, rok := b.Right.(mathast.Variable)
	if !lok || !rok || lv.Name == rv.Name {
		return DetectedMistake{}, false
	}
	if rb, ok := rhs.(mathast.Binary); ok && rb.Op == mathast.Add {
		return DetectedMistake{}, false // still kept separate, not this mistake
	}
	return DetectedMistake{
		Type:         LikeTermsError,
		StepNumber:   n,
		Confidence:   0.75,
		Found:        step.RHS,
		Expected:     step.LHS,
		Explanation:  lv.Name + " and " + rv.Name + " are not like terms and cannot be combined",
		Suggestion:   "only combine terms that share the same variable and exponent",
		SuggestedFix: step.LHS,
	}, true
}

// ---- exponent_error ----

func detectExponentError(step Step, n int) (DetectedMistake, bool) {
	lhs, rhs, ok := parseBoth(step)
	if !ok {
		return DetectedMistake{}, false
	}
	correct, _ := mathast.Simplify(lhs)
	correctPow, ok := correct.(mathast.Binary)
	if !ok || correctPow.Op != mathast.Pow {
		return DetectedMistake{}, false
	}
	rhsPow, ok := rhs.(mathast.Binary)
	if !ok || rhsPow.Op != mathast.Pow || !mathast.Equal(rhsPow.Left, correctPow.Left) {
		return DetectedMistake{}, false
	}
	if mathast.Equal(rhsPow.Right, correctPow.Right) {
		return DetectedMistake{}, false
	}
	return DetectedMistake{
		Type:         ExponentError,
		StepNumber:   n,
		Confidence:   0.75,
		Found:        step.RHS,
		Expected:     fmtNode(correct),
		Explanation:  "the resulting exponent is wrong",
		Suggestion:   "add exponents when multiplying same-base powers, multiply them when raising a power to a power",
		SuggestedFix: step.LHS + " = " + fmtNode(correct),
	}, true
}

// ---- order_of_operations ----

func detectOrderOfOperations(step Step, n int) (DetectedMistake, bool) {
	lhs, rhs, ok := parseBoth(step)
	if !ok {
		return DetectedMistake{}, false
	}
	simplifiedRHS, _ := mathast.Simplify(rhs)
	rhsVal, ok := mathast.AsNumber(simplifiedRHS)
	if !ok {
		return DetectedMistake{}, false
	}
	correctVal, err := mathast.Eval(lhs, nil)
	if err != nil || math.Abs(correctVal-rhsVal) < 1e-9 {
		return DetectedMistake{}, false
	}
	wrongVal, wrongOK := naiveLeftToRight(step.LHS)
	if !wrongOK || math.Abs(wrongVal-rhsVal) > 1e-9 {
		return DetectedMistake{}, false
	}
	return DetectedMistake{
		Type:         OrderOfOperationsError,
		StepNumber:   n,
		Confidence:   0.85,
		Found:        step.RHS,
		Expected:     strconv.FormatFloat(correctVal, 'g', -1, 64),
		Explanation:  "operations were applied left to right instead of respecting operator precedence",
		Suggestion:   "evaluate multiplication and division before addition and subtraction",
		SuggestedFix: step.LHS + " = " + strconv.FormatFloat(correctVal, 'g', -1, 64),
	}, true
}

// naiveLeftToRight evaluates a flat numeric expression strictly left to
// right, ignoring operator precedence; it bails on anything but a flat
// number/operator sequence (no parens, idents, or implicit multiplication).
func naiveLeftToRight(expr string) (float64, bool) {
	tokens, errs := mathast.Tokenize(expr)
	if len(errs) > 0 {
		return 0, false
	}
	var nums []float64
	var ops []string
	for _, tok := range tokens {
		switch tok.Kind {
		case mathast.KindNumber:
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return 0, false
			}
			nums = append(nums, v)
		case mathast.KindOp:
			ops = append(ops, tok.Text)
		default:
			return 0, false
		}
	}
	if len(nums) == 0 || len(ops) != len(nums)-1 {
		return 0, false
	}
	result := nums[0]
	for i, op := range ops {
		switch op {
		case "+":
			result += nums[i+1]
		case "-":
			result -= nums[i+1]
		case "*":
			result *= nums[i+1]
		case "/":
			if nums[i+1] == 0 {
				return 0, false
			}
			result /= nums[i+1]
		case "^":
			result = math.Pow(result, nums[i+1])
		default:
			return 0, false
		}
	}
	return result, true
}
