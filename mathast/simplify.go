package mathast

// maxSimplifyIterations bounds the fixed-point loop so a malformed or
// adversarial rule can never hang Simplify.
const maxSimplifyIterations = 50

// Simplify repeatedly applies the highest-priority matching rule from
// Registry, leftmost-outermost, until no rule applies or the iteration cap
// is reached. It returns the simplified tree and the number of rewrite
// steps actually taken.
func Simplify(n Node) (Node, int) {
	current := n
	for step := 0; step < maxSimplifyIterations; step++ {
		next, changed := simplifyOnce(current)
		if !changed {
			return current, step
		}
		current = next
	}
	return current, maxSimplifyIterations
}

// simplifyOnce tries every rule, in priority order, against the root first
// and then recurses into children (outermost rewrite wins, matching
// spec.md's "return the highest-priority applicable pattern").
func simplifyOnce(n Node) (Node, bool) {
	result, _, changed := simplifyOnceNamed(n)
	return result, changed
}

// simplifyOnceNamed is simplifyOnce plus the Rule that fired, so callers
// that need to explain a step (derivation.SimplificationPath) don't have to
// re-derive which rule matched.
func simplifyOnceNamed(n Node) (Node, Rule, bool) {
	for _, rule := range Registry {
		if rule.Applies(n) {
			result, changed := rule.Apply(n)
			if changed {
				return result, rule, true
			}
			if rule.Name == "indeterminate_zero_power_zero" {
				// Terminal marker: halt rewriting of this subtree entirely.
				return n, rule, false
			}
		}
	}
	switch v := n.(type) {
	case Unary:
		if operand, rule, changed := simplifyOnceNamed(v.Operand); changed {
			return Unary{Op: v.Op, Operand: operand}, rule, true
		}
	case Binary:
		if left, rule, changed := simplifyOnceNamed(v.Left); changed {
			return Binary{Op: v.Op, Left: left, Right: v.Right}, rule, true
		}
		if right, rule, changed := simplifyOnceNamed(v.Right); changed {
			return Binary{Op: v.Op, Left: v.Left, Right: right}, rule, true
		}
	}
	return n, Rule{}, false
}

// RewriteStep records one fired rule during a simplification walk: the
// rule that matched and the tree before/after applying it.
type RewriteStep struct {
	Rule   Rule
	Before Node
	After  Node
}

// SimplifyPath returns the ordered sequence of rewrite steps taken while
// simplifying n to its canonical form. It powers the derivation package's
// step-by-step explanations (spec.md §4.2's "Simplification path").
func SimplifyPath(n Node) []RewriteStep {
	var path []RewriteStep
	current := n
	for step := 0; step < maxSimplifyIterations; step++ {
		next, rule, changed := simplifyOnceNamed(current)
		if !changed {
			break
		}
		path = append(path, RewriteStep{Rule: rule, Before: current, After: next})
		current = next
	}
	return path
}

// NextRule reports the single rewrite rule simplifyOnce would fire next
// against n, if any, without applying it. Used by
// derivation.SuggestNextStep.
func NextRule(n Node) (Rule, bool) {
	_, rule, changed := simplifyOnceNamed(n)
	if !changed {
		return Rule{}, false
	}
	return rule, true
}
