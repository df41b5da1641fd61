package mathast

import (
	"math"

	pkgmath "github.com/coderdayton/localmind/pkg/math"
)

// termParts decomposes a node into a numeric coefficient and a base, so
// "3x" yields (3, Variable{x}) and a bare "x" yields (1, Variable{x}) and a
// bare "5" yields (5, Number{1}). It is the shared building block for
// combine_like_terms and simplify_fraction.
func termParts(n Node) (coeff float64, base Node, ok bool) {
	if b, isBin := n.(Binary); isBin && b.Op == Mul {
		if lv, lok := AsNumber(b.Left); lok {
			return lv, b.Right, true
		}
		if rv, rok := AsNumber(b.Right); rok {
			return rv, b.Left, true
		}
	}
	if v, isNum := AsNumber(n); isNum {
		return v, Number{Value: 1}, true
	}
	return 1, n, true
}

func rebuildTerm(coeff float64, base Node) Node {
	if Equal(base, Number{Value: 1}) {
		return Number{Value: coeff}
	}
	if coeff == 1 {
		return base
	}
	return Binary{Op: Mul, Left: Number{Value: coeff}, Right: base}
}

// ---- combine_like_terms ----

func appliesCombineLikeTerms(n Node) bool {
	b, ok := n.(Binary)
	if !ok || b.Op != Add {
		return false
	}
	_, lbase, lok := termParts(b.Left)
	_, rbase, rok := termParts(b.Right)
	if !lok || !rok {
		return false
	}
	if Equal(lbase, Number{Value: 1}) {
		return false // two plain numbers: constant_fold already handles it
	}
	return Equal(lbase, rbase)
}

func applyCombineLikeTerms(n Node) (Node, bool) {
	b := n.(Binary)
	lcoeff, base, _ := termParts(b.Left)
	rcoeff, _, _ := termParts(b.Right)
	return rebuildTerm(lcoeff+rcoeff, base), true
}

// ---- distribute ----

func appliesDistribute(n Node) bool {
	b, ok := n.(Binary)
	if !ok || b.Op != Mul {
		return false
	}
	if r, ok := b.Right.(Binary); ok && (r.Op == Add || r.Op == Sub) {
		return true
	}
	if l, ok := b.Left.(Binary); ok && (l.Op == Add || l.Op == Sub) {
		return true
	}
	return false
}

func applyDistribute(n Node) (Node, bool) {
	b := n.(Binary)
	if r, ok := b.Right.(Binary); ok && (r.Op == Add || r.Op == Sub) {
		return Binary{
			Op:    r.Op,
			Left:  Binary{Op: Mul, Left: b.Left, Right: r.Left},
			Right: Binary{Op: Mul, Left: b.Left, Right: r.Right},
		}, true
	}
	l := b.Left.(Binary)
	return Binary{
		Op:    l.Op,
		Left:  Binary{Op: Mul, Left: l.Left, Right: b.Right},
		Right: Binary{Op: Mul, Left: l.Right, Right: b.Right},
	}, true
}

// ---- factor_common ----

func appliesFactorCommon(n Node) bool {
	b, ok := n.(Binary)
	if !ok || b.Op != Add {
		return false
	}
	l, lok := b.Left.(Binary)
	r, rok := b.Right.(Binary)
	if !lok || !rok || l.Op != Mul || r.Op != Mul {
		return false
	}
	factor, _, _ := commonFactor(l, r)
	return factor != nil
}

// commonFactor looks for a factor shared between l's and r's operands,
// returning the shared factor and the two remaining operands.
func commonFactor(l, r Binary) (factor, lrest, rrest Node) {
	pairs := [][2]Node{{l.Left, l.Right}, {l.Right, l.Left}}
	for _, p := range pairs {
		if Equal(p[0], r.Left) {
			return p[0], p[1], r.Right
		}
		if Equal(p[0], r.Right) {
			return p[0], p[1], r.Left
		}
	}
	return nil, nil, nil
}

func applyFactorCommon(n Node) (Node, bool) {
	b := n.(Binary)
	l := b.Left.(Binary)
	r := b.Right.(Binary)
	factor, lrest, rrest := commonFactor(l, r)
	if factor == nil {
		return n, false
	}
	return Binary{Op: Mul, Left: factor, Right: Binary{Op: Add, Left: lrest, Right: rrest}}, true
}

// ---- simplify_fraction ----

func gcdFloat(a, b float64) float64 {
	ai, bi := int64(math.Abs(a)), int64(math.Abs(b))
	for bi != 0 {
		ai, bi = bi, ai%bi
	}
	return float64(pkgmath.Abs(ai))
}

func appliesSimplifyFraction(n Node) bool {
	b, ok := n.(Binary)
	if !ok || b.Op != Div {
		return false
	}
	rv, rok := AsNumber(b.Right)
	if !rok || rv == 0 || rv != math.Trunc(rv) {
		return false
	}
	coeff, _, cok := termParts(b.Left)
	if !cok || coeff != math.Trunc(coeff) || coeff == 0 {
		return false
	}
	g := gcdFloat(coeff, rv)
	return g > 1
}

func applySimplifyFraction(n Node) (Node, bool) {
	b := n.(Binary)
	rv, _ := AsNumber(b.Right)
	coeff, base, _ := termParts(b.Left)
	g := gcdFloat(coeff, rv)
	newLeft := rebuildTerm(coeff/g, base)
	return Binary{Op: Div, Left: newLeft, Right: Number{Value: rv / g}}, true
}

// ---- power_of_power / multiply_powers ----

func appliesPowerOfPower(n Node) bool {
	b, ok := n.(Binary)
	if !ok || b.Op != Pow {
		return false
	}
	inner, ok := b.Left.(Binary)
	return ok && inner.Op == Pow
}

func applyPowerOfPower(n Node) (Node, bool) {
	b := n.(Binary)
	inner := b.Left.(Binary)
	return Binary{Op: Pow, Left: inner.Left, Right: Binary{Op: Mul, Left: inner.Right, Right: b.Right}}, true
}

func appliesMultiplyPowers(n Node) bool {
	b, ok := n.(Binary)
	if !ok || b.Op != Mul {
		return false
	}
	l, lok := b.Left.(Binary)
	r, rok := b.Right.(Binary)
	return lok && rok && l.Op == Pow && r.Op == Pow && Equal(l.Left, r.Left)
}

func applyMultiplyPowers(n Node) (Node, bool) {
	b := n.(Binary)
	l := b.Left.(Binary)
	r := b.Right.(Binary)
	return Binary{Op: Pow, Left: l.Left, Right: Binary{Op: Add, Left: l.Right, Right: r.Right}}, true
}
