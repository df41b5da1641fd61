package solver

import (
	"strings"

	"github.com/coderdayton/localmind/internal/rx"
)

// entityFact is one parsed clause about a named quantity: either a known
// base value, or a relation to another named entity (multiplier and/or
// additive offset, composed as value = relMul*dep + relOffset).
type entityFact struct {
	name      string
	value     float64
	known     bool
	dep       string
	relMul    float64
	relOffset float64
	isRelation bool
}

var (
	hasNumberPattern = rx.Compile(`^([a-z][a-z'\s]*?)\s+has\s+(\d+(?:\.\d+)?)\b`)
	twiceAsManyPattern = rx.Compile(`^([a-z][a-z'\s]*?)\s+has\s+twice\s+as\s+many\s+\w+\s+as\s+([a-z][a-z'\s]*)`)
	halfAsManyPattern  = rx.Compile(`^([a-z][a-z'\s]*?)\s+has\s+half\s+as\s+many\s+\w+\s+as\s+([a-z][a-z'\s]*)`)
	tripleAsManyPattern = rx.Compile(`^([a-z][a-z'\s]*?)\s+has\s+triple\s+as\s+many\s+\w+\s+as\s+([a-z][a-z'\s]*)`)
	moreThanPattern = rx.Compile(`^([a-z][a-z'\s]*?)\s+has\s+(\d+(?:\.\d+)?)\s+more\s+\w+\s+than\s+([a-z][a-z'\s]*)`)
	lessThanPattern = rx.Compile(`^([a-z][a-z'\s]*?)\s+has\s+(\d+(?:\.\d+)?)\s+(?:less|fewer)\s+\w+\s+than\s+([a-z][a-z'\s]*)`)

	howManyTogetherPattern = rx.Compile(`how\s+many\s+\w+\s+do\s+([a-z][a-z'\s]*?)\s+and\s+([a-z][a-z'\s]*?)\s+have\s+(?:together|in\s+(?:total|all))`)
	howManyOnePattern      = rx.Compile(`how\s+many\s+\w+\s+does\s+([a-z][a-z'\s]*?)\s+have`)
)

func cleanName(s string) string {
	return strings.TrimSpace(s)
}

// MultiStep extracts a small set of named quantities and their relations
// from consecutive clauses, resolves them to a fixed point, then answers
// a trailing "how many" question. Clauses are processed in the order
// given; an entity's relation can reference an entity defined later.
func MultiStep(text, lower string) ComputeResult {
	clauses := rx.Split(rx.CompileCase(`[.,;]|\band\b`), lower)

	facts := map[string]entityFact{}
	for _, clause := range clauses {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		if m, _ := twiceAsManyPattern.FindStringMatch(clause); m != nil {
			g := m.Groups()
			name := cleanName(g[1].String())
			facts[name] = entityFact{name: name, isRelation: true, dep: cleanName(g[2].String()), relMul: 2}
			continue
		}
		if m, _ := halfAsManyPattern.FindStringMatch(clause); m != nil {
			g := m.Groups()
			name := cleanName(g[1].String())
			facts[name] = entityFact{name: name, isRelation: true, dep: cleanName(g[2].String()), relMul: 0.5}
			continue
		}
		if m, _ := tripleAsManyPattern.FindStringMatch(clause); m != nil {
			g := m.Groups()
			name := cleanName(g[1].String())
			facts[name] = entityFact{name: name, isRelation: true, dep: cleanName(g[2].String()), relMul: 3}
			continue
		}
		if m, _ := moreThanPattern.FindStringMatch(clause); m != nil {
			g := m.Groups()
			name := cleanName(g[1].String())
			offset, _ := parseFloatLenient(g[2].String())
			facts[name] = entityFact{name: name, isRelation: true, dep: cleanName(g[3].String()), relMul: 1, relOffset: offset}
			continue
		}
		if m, _ := lessThanPattern.FindStringMatch(clause); m != nil {
			g := m.Groups()
			name := cleanName(g[1].String())
			offset, _ := parseFloatLenient(g[2].String())
			facts[name] = entityFact{name: name, isRelation: true, dep: cleanName(g[3].String()), relMul: 1, relOffset: -offset}
			continue
		}
		if m, _ := hasNumberPattern.FindStringMatch(clause); m != nil {
			g := m.Groups()
			name := cleanName(g[1].String())
			value, _ := parseFloatLenient(g[2].String())
			facts[name] = entityFact{name: name, value: value, known: true}
			continue
		}
	}

	for round := 0; round < 10; round++ {
		changed := false
		for name, fact := range facts {
			if fact.known || !fact.isRelation {
				continue
			}
			dep, ok := facts[fact.dep]
			if ok && dep.known {
				fact.value = fact.relMul*dep.value + fact.relOffset
				fact.known = true
				facts[name] = fact
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	if m, _ := howManyTogetherPattern.FindStringMatch(lower); m != nil {
		g := m.Groups()
		a, okA := facts[cleanName(g[1].String())]
		b, okB := facts[cleanName(g[2].String())]
		if okA && okB && a.known && b.known {
			return ComputeResult{Solved: true, Result: NumberValue(a.value + b.value), Method: "multistep_sum", Confidence: 0.75}
		}
	}

	if m, _ := howManyOnePattern.FindStringMatch(lower); m != nil {
		name := cleanName(m.Groups()[1].String())
		if fact, ok := facts[name]; ok && fact.known {
			return ComputeResult{Solved: true, Result: NumberValue(fact.value), Method: "multistep_entity", Confidence: 0.75}
		}
	}

	return Unsolved
}

// MultiStepSolver wires MultiStep into the registry at priority 40.
var MultiStepSolver = Solver{
	Name:        "multistep",
	Description: "named-entity quantity relations resolved to a fixed point",
	Types:       MULTI_STEP,
	Priority:    40,
	Run:         MultiStep,
}
