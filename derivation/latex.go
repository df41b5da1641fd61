package derivation

import (
	"strconv"
	"strings"

	"github.com/coderdayton/localmind/internal/rx"
)

// LatexOptions controls DerivationToLatex's rendering.
type LatexOptions struct {
	// Align renders an `align` environment with `&=` alignment; false
	// renders a single `equation` environment from the last step's rhs.
	Align bool
	// Label, if non-empty, adds a `\label{...}` to the environment.
	Label string
	// StepNumbers adds a trailing `% step N` comment to each aligned line.
	StepNumbers bool
	// Therefore adds `\therefore` before the final line of an align block.
	Therefore bool
}

// DefaultLatexOptions renders a numbered, unlabeled align block with a
// \therefore line.
func DefaultLatexOptions() LatexOptions {
	return LatexOptions{Align: true, StepNumbers: true, Therefore: true}
}

var (
	cdotPattern    = rx.CompileCase(`\*`)
	sqrtPattern    = rx.CompileCase(`sqrt\(([^()]+)\)`)
	piPattern      = rx.CompileCase(`\bpi\b`)
	fractionIntDiv = rx.CompileCase(`\b(\d+)\s*/\s*(\d+)\b`)
)

// toLatexToken rewrites a formatted expression's ASCII operators and named
// functions into their LaTeX spellings (spec.md §4.2).
func toLatexToken(expr string) string {
	expr = rx.ReplaceAll(sqrtPattern, expr, `\sqrt{$1}`)
	expr = rx.ReplaceAll(fractionIntDiv, expr, `\frac{$1}{$2}`)
	expr = rx.ReplaceAll(cdotPattern, expr, `\cdot`)
	expr = rx.ReplaceAll(piPattern, expr, `\pi`)
	return expr
}

// DerivationToLatex renders a derivation chain as a LaTeX math environment.
func DerivationToLatex(steps []Step, opts LatexOptions) string {
	if len(steps) == 0 {
		return ""
	}
	if !opts.Align {
		var b strings.Builder
		b.WriteString("\\begin{equation}\n")
		if opts.Label != "" {
			b.WriteString("\\label{" + opts.Label + "}\n")
		}
		b.WriteString(toLatexToken(steps[0].LHS) + " = " + toLatexToken(steps[len(steps)-1].RHS) + "\n")
		b.WriteString("\\end{equation}")
		return b.String()
	}

	var b strings.Builder
	b.WriteString("\\begin{align}\n")
	if opts.Label != "" {
		b.WriteString("\\label{" + opts.Label + "}\n")
	}
	for i, step := range steps {
		last := i == len(steps)-1
		lhs := toLatexToken(step.LHS)
		rhs := toLatexToken(step.RHS)
		if i == 0 {
			b.WriteString(lhs + " &= " + rhs)
		} else {
			prefix := ""
			if last && opts.Therefore {
				prefix = "\\therefore\\ "
			}
			b.WriteString(prefix + "&= " + rhs)
		}
		if !last {
			b.WriteString(" \\\\")
		}
		if opts.StepNumbers {
			b.WriteString(" % step " + strconv.Itoa(i+1))
		}
		b.WriteString("\n")
	}
	b.WriteString("\\end{align}")
	return b.String()
}
