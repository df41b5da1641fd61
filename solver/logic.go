package solver

import (
	"github.com/coderdayton/localmind/internal/rx"
)

// conditionalArgumentPattern captures the two clauses of a stated
// conditional ("if P then Q") followed by an affirmed/denied premise and a
// concluding clause, loosely enough to match the common phrasings of the
// classic propositional-logic forms.
var conditionalArgumentPattern = rx.Compile(
	`if\s+(.+?)\s*,?\s*then\s+(.+?)[.;]\s*(not\s+)?(.+?)[.;]\s*(?:therefore|so|thus|hence)\s*,?\s*(not\s+)?(.+?)[.?]?\s*$`,
)

// xorPattern recognizes an exclusive-or framing ("either...or...but not both").
var xorPattern = rx.Compile(`\beither\b.+\bor\b.+\bbut\s+not\s+both\b`)

var deMorganPattern = rx.Compile(`\bnot\s*\(.+\band\b.+\)|\bnot\s*\(.+\bor\b.+\)`)

var contrapositivePattern = rx.Compile(`if\s+not\s+(.+?)\s*,?\s*then\s+not\s+(.+)`)

// syllogismPattern matches a two-premise "all X are Y" syllogism, such as the
// invalid undistributed-middle shape "all A are C. all B are C. therefore all A are B."
var syllogismPattern = rx.Compile(
	`all\s+(.+?)\s+are\s+(.+?)[.;]\s*all\s+(.+?)\s+are\s+(.+?)[.;]\s*(?:therefore|so|thus)\s*,?\s*all\s+(.+?)\s+are\s+(.+?)[.?]?\s*$`,
)

// Logic recognizes classic propositional-logic argument forms and reports
// whether the stated conclusion is valid (spec.md §4.4, priority 15).
func Logic(text, lower string) ComputeResult {
	if rx.MatchString(xorPattern, lower) {
		return ComputeResult{Solved: true, Result: TextValue("exactly one holds"), Method: "logic_xor", Confidence: 0.8}
	}

	if rx.MatchString(deMorganPattern, lower) {
		return ComputeResult{Solved: true, Result: TextValue("apply De Morgan's law: negate and flip the connective"), Method: "logic_de_morgan", Confidence: 0.75}
	}

	if m, _ := contrapositivePattern.FindStringMatch(lower); m != nil {
		return ComputeResult{Solved: true, Result: TextValue("equivalent to the contrapositive"), Method: "logic_contrapositive", Confidence: 0.8}
	}

	if m, _ := syllogismPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		middleA, middleB := groups[2].String(), groups[4].String()
		if middleA == middleB {
			return ComputeResult{Solved: true, Result: TextValue("invalid: undistributed middle"), Method: "logic_syllogism_invalid", Confidence: 0.8}
		}
		return ComputeResult{Solved: true, Result: TextValue("valid syllogism"), Method: "logic_syllogism_valid", Confidence: 0.75}
	}

	if m, _ := conditionalArgumentPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		antecedent, consequent := groups[1].String(), groups[2].String()
		premiseNegated := groups[3].String() != ""
		premise := groups[4].String()
		conclusionNegated := groups[5].String() != ""
		conclusion := groups[6].String()

		affirmsAntecedent := !premiseNegated && textMatches(premise, antecedent)
		deniesAntecedent := premiseNegated && textMatches(premise, antecedent)
		affirmsConsequent := !premiseNegated && textMatches(premise, consequent)
		deniesConsequent := premiseNegated && textMatches(premise, consequent)

		concludesConsequent := !conclusionNegated && textMatches(conclusion, consequent)
		concludesNotAntecedent := conclusionNegated && textMatches(conclusion, antecedent)

		switch {
		case affirmsAntecedent && concludesConsequent:
			return ComputeResult{Solved: true, Result: TextValue("valid: modus ponens"), Method: "logic_modus_ponens", Confidence: 0.85}
		case deniesConsequent && concludesNotAntecedent:
			return ComputeResult{Solved: true, Result: TextValue("valid: modus tollens"), Method: "logic_modus_tollens", Confidence: 0.85}
		case affirmsConsequent:
			return ComputeResult{Solved: true, Result: TextValue("invalid: affirming the consequent"), Method: "logic_affirming_consequent", Confidence: 0.8}
		case deniesAntecedent:
			return ComputeResult{Solved: true, Result: TextValue("invalid: denying the antecedent"), Method: "logic_denying_antecedent", Confidence: 0.8}
		}
	}

	return Unsolved
}

// textMatches reports whether b's words are a subset of a's words, a loose
// stand-in for clause identity across paraphrase ("the ball costs $1.10"
// vs "ball costs 1.10").
func textMatches(a, b string) bool {
	return containsAllWords(a, b) || containsAllWords(b, a)
}

func containsAllWords(haystack, needle string) bool {
	words := splitWords(needle)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if len(w) <= 2 {
			continue
		}
		if !rx.MatchString(rx.Compile(`\b`+regexEscape(w)+`\b`), haystack) {
			return false
		}
	}
	return true
}

func splitWords(s string) []string {
	return rx.FindAllStrings(rx.CompileCase(`[a-zA-Z]+`), s)
}

func regexEscape(s string) string {
	special := `.*+?()[]{}|^$\`
	out := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		for _, sp := range []byte(special) {
			if c == sp {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, c)
	}
	return string(out)
}

// LogicSolver wires Logic into the registry at priority 15.
var LogicSolver = Solver{
	Name:        "logic",
	Description: "propositional argument forms: modus ponens/tollens, syllogisms, XOR, De Morgan, contrapositive",
	Types:       LOGIC,
	Priority:    15,
	Run:         Logic,
}
