package derivation

import (
	"strings"

	"github.com/coderdayton/localmind/internal/rx"
)

// segmentBoundary splits prose on sentence-ending punctuation and on the
// connective markers spec.md §4.2 names (then, so, therefore, hence).
var segmentBoundary = rx.Compile(`,?\s*\b(?:then|so|therefore|hence)\b[,:]?\s*|[.;,]\s+`)

// verbalPrefix strips leading instructions that are not part of the math,
// e.g. "Prove:", "Show that", "Simplify:".
var verbalPrefix = rx.Compile(`^\s*(?:prove|show(?:\s+that)?|simplify|solve|verify|derive)\s*[:\-]?\s*`)

// leadingPunct strips leftover non-math punctuation after prefix removal.
var leadingPunct = rx.Compile(`^[\s,:;\-]+`)

// ExtractSteps segments text into an ordered chain of lhs=rhs steps,
// expanding chained equalities ("a = b = c") into consecutive links.
func ExtractSteps(text string) []Step {
	var steps []Step
	for _, segment := range rx.Split(segmentBoundary, text) {
		segment = rx.ReplaceAll(verbalPrefix, segment, "")
		segment = rx.ReplaceAll(leadingPunct, segment, "")
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		parts := splitChain(segment)
		if len(parts) < 2 {
			continue
		}
		for i := 0; i+1 < len(parts); i++ {
			lhs := strings.TrimSpace(parts[i])
			rhs := strings.TrimSpace(parts[i+1])
			if lhs == "" || rhs == "" {
				continue
			}
			steps = append(steps, Step{LHS: lhs, RHS: rhs})
		}
	}
	return steps
}

// splitChain splits a single segment on "=" signs, so "a = b = c" becomes
// ["a", "b", "c"]. It does not attempt to distinguish "=" from "==" or
// "<=" since those never appear in this domain's input.
func splitChain(segment string) []string {
	return strings.Split(segment, "=")
}
