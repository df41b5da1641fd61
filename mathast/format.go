package mathast

import (
	"strconv"
	"strings"
)

// FormatOptions controls how Format renders a tree back to a string.
type FormatOptions struct {
	// Spaces puts a single space around binary operators ("a + b" instead
	// of "a+b").
	Spaces bool
	// MinimalParens omits parentheses that would not change how the
	// result re-parses, based on operator precedence and associativity.
	MinimalParens bool
}

// DefaultFormatOptions renders with spaces and minimal parenthesization,
// the form most readable for LaTeX export and human-facing output.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{Spaces: true, MinimalParens: true}
}

// precedence returns the binding power of a binary operator; higher binds
// tighter. Matches the parser's precedence ladder.
func precedence(op BinOp) int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	case Pow:
		return 4
	default:
		return 0
	}
}

const unaryPrecedence = 3

// Format renders node back to a string expression.
func Format(node Node, opts FormatOptions) string {
	var b strings.Builder
	formatNode(&b, node, 0, opts, false)
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatNode writes node into b. parentPrec is the precedence context it is
// being rendered in; isRightOperand distinguishes right-hand operands of
// non-associative/left-associative operators so "a-(b-c)" keeps its parens
// even under MinimalParens.
func formatNode(b *strings.Builder, node Node, parentPrec int, opts FormatOptions, isRightOperand bool) {
	switch n := node.(type) {
	case Number:
		if n.Value < 0 && parentPrec > 0 {
			writeParenIf(b, true, opts, func() { b.WriteString(formatNumber(n.Value)) })
			return
		}
		b.WriteString(formatNumber(n.Value))

	case Variable:
		b.WriteString(n.Name)

	case Unary:
		needParens := !opts.MinimalParens || parentPrec > unaryPrecedence
		writeParenIf(b, needParens, opts, func() {
			b.WriteString(n.Op.String())
			formatNode(b, n.Operand, unaryPrecedence, opts, false)
		})

	case Binary:
		prec := precedence(n.Op)
		needParens := !opts.MinimalParens || prec < parentPrec ||
			(prec == parentPrec && isRightOperand && (n.Op == Sub || n.Op == Div)) ||
			(prec == parentPrec && !isRightOperand && n.Op == Pow)
		writeParenIf(b, needParens, opts, func() {
			formatNode(b, n.Left, prec, opts, false)
			if opts.Spaces {
				b.WriteByte(' ')
				b.WriteString(n.Op.String())
				b.WriteByte(' ')
			} else {
				b.WriteString(n.Op.String())
			}
			rightPrec := prec
			if n.Op == Pow {
				// right-associative: the right side accepts its own precedence
				rightPrec = prec - 1
			}
			formatNode(b, n.Right, rightPrec, opts, n.Op != Pow)
		})
	}
}

func writeParenIf(b *strings.Builder, cond bool, _ FormatOptions, body func()) {
	if cond {
		b.WriteByte('(')
		body()
		b.WriteByte(')')
		return
	}
	body()
}
