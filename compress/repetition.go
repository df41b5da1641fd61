package compress

import (
	"strings"

	"github.com/samber/lo"

	pkgsets "github.com/coderdayton/localmind/pkg/sets"
)

var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "of": true,
	"to": true, "in": true, "on": true, "at": true, "for": true, "is": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"it": true, "its": true, "this": true, "that": true, "with": true,
	"as": true, "by": true, "from": true, "if": true, "then": true,
}

// tokenSet returns the filtered word set used for Jaccard similarity:
// lowercased words, stopwords and words of length <=2 dropped.
func tokenSet(s string) pkgsets.Set[string] {
	words := lo.Map(strings.Fields(strings.ToLower(s)), func(w string, _ int) string {
		return trimPunct(w)
	})
	kept := lo.Filter(words, func(w string, _ int) bool {
		return len(w) > 2 && !stopwords[w]
	})
	return pkgsets.Of(kept...)
}

func jaccard(a, b pkgsets.Set[string]) float64 {
	if a.IsEmpty() && b.IsEmpty() {
		return 0
	}
	union := pkgsets.Union(a, b)
	if union.IsEmpty() {
		return 0
	}
	return float64(pkgsets.Intersection(a, b).Size()) / float64(union.Size())
}

// rougeL computes the F1 of the longest common subsequence between two
// token sequences (spec.md glossary: ROUGE-L).
func rougeL(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	lcs := lcsLength(a, b)
	if lcs == 0 {
		return 0
	}
	precision := float64(lcs) / float64(len(a))
	recall := float64(lcs) / float64(len(b))
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

func lcsLength(a, b []string) int {
	n, m := len(a), len(b)
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// detectRepetition implements stage 4: walks sentences left-to-right,
// accumulating prior entities and computing similarity against earlier
// non-code sentences; marks requiredBy back-links for stage 7.
func detectRepetition(sentences []sentence) {
	priorEntities := pkgsets.NewHashSet[string]()
	var priorTokens []pkgsets.Set[string]
	var priorWords [][]string

	for i := range sentences {
		s := &sentences[i]
		if s.isCode {
			priorTokens = append(priorTokens, nil)
			priorWords = append(priorWords, nil)
			continue
		}

		words := strings.Fields(strings.ToLower(s.text))
		tokens := tokenSet(s.text)

		maxSim := 0.0
		for j := range priorTokens {
			if priorTokens[j] == nil {
				continue
			}
			sim := jaccard(tokens, priorTokens[j])
			if sim >= 0.2 && sim < 0.5 {
				if r := rougeL(words, priorWords[j]); r > sim {
					sim = r
				}
			}
			if sim > maxSim {
				maxSim = sim
			}
		}

		introducesNewEntity := false
		for _, e := range s.entities {
			if !priorEntities.Contains(e) {
				introducesNewEntity = true
				break
			}
		}
		if !introducesNewEntity && maxSim > 0.25 {
			maxSim = maxOf(maxSim, 0.81)
		}
		s.repeatSimilarity = maxSim

		if i > 0 && (s.pronoun || s.connective) {
			sentences[i-1].requiredBy = true
		}

		for _, e := range s.entities {
			priorEntities.Add(e)
		}
		priorTokens = append(priorTokens, tokens)
		priorWords = append(priorWords, words)
	}
}

func maxOf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
