package compress

import (
	"math"
	"strings"

	"github.com/coderdayton/localmind/internal/rx"
)

var (
	reasoningKeyword = rx.Compile(`\b(?:because|therefore|thus|hence|since|if|then|however|but|although|yet|so|consequently|while|whereas|unless|until|whether)\b`)
	valueStarter     = rx.Compile(`^(?:the key|importantly|note that|crucially|specifically|in summary|finally|first|second|third)\b`)
)

// termFrequencies returns a lowercased, stopword/short-word-filtered word
// count for TF-IDF-style scoring.
func termFrequencies(s string) map[string]int {
	freq := make(map[string]int)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = trimPunct(w)
		if len(w) <= 2 || stopwords[w] {
			continue
		}
		freq[w]++
	}
	return freq
}

// queryOverlapScore scores sentence terms against query terms with logged
// TF and a document-level IDF across the sentence set (stage 5 base term).
func queryOverlapScore(queryTerms map[string]int, sentenceTerms map[string]int, df map[string]int, docCount int) float64 {
	if len(queryTerms) == 0 || len(sentenceTerms) == 0 {
		return 0
	}
	score := 0.0
	for term := range queryTerms {
		tf, ok := sentenceTerms[term]
		if !ok || tf == 0 {
			continue
		}
		loggedTF := 1 + math.Log(float64(tf))
		idf := math.Log(1 + float64(docCount)/float64(1+df[term]))
		score += loggedTF * idf
	}
	return score
}

type scoringContext struct {
	queryTerms map[string]int
	df         map[string]int
	docCount   int
	config     Config
}

func buildScoringContext(sentences []sentence, query string, cfg Config) scoringContext {
	df := make(map[string]int)
	docCount := 0
	for _, s := range sentences {
		if s.isCode {
			continue
		}
		docCount++
		seen := make(map[string]bool)
		for term := range termFrequencies(s.text) {
			if !seen[term] {
				df[term]++
				seen[term] = true
			}
		}
	}
	return scoringContext{
		queryTerms: termFrequencies(query),
		df:         df,
		docCount:   docCount,
		config:     cfg,
	}
}

// scoreSentences implements stage 5: base relevance via query overlap,
// position bonus and NCD bonus, then the fixed multiplier table; also
// computes each sentence's noiseScore.
func scoreSentences(sentences []sentence, ctx scoringContext) {
	last := -1
	for i, s := range sentences {
		if !s.isCode {
			last = i
		}
	}
	for i := range sentences {
		s := &sentences[i]
		if s.isCode {
			s.relevance = math.Inf(1)
			continue
		}

		terms := termFrequencies(s.text)
		base := queryOverlapScore(ctx.queryTerms, terms, ctx.df, ctx.docCount)
		if i == 0 {
			base += 0.3
		}
		if i == last {
			base += 0.2
		}
		if ctx.config.UseNCD {
			base += (1 - s.ncd) * 0.5
		}

		score := base
		lower := strings.ToLower(s.text)
		if ctx.config.BoostReasoning && rx.MatchString(reasoningKeyword, lower) {
			score *= 1.5
		}
		if rx.MatchString(valueStarter, lower) {
			score *= 1.3
		}
		if len(s.text) < 20 {
			score *= 0.5
		}
		switch s.tier {
		case tierStrong:
			score *= 0.01
		case tierStylistic:
			score *= 0.2
		}
		if s.repeatSimilarity > ctx.config.RepeatThreshold {
			score *= 0.3
		}

		uniqueTerms := len(terms)
		totalTerms := len(strings.Fields(s.text))
		density := 0.0
		if totalTerms > 0 {
			density = float64(uniqueTerms+len(s.entities)) / float64(totalTerms)
		}
		score *= 0.8 + 0.4*density

		if s.requiredBy {
			score *= 1.2
		}

		if s.tier == tierNone {
			score += 0.15
			score += 0.05 * float64(len(s.entities))
		}

		s.relevance = score

		fillerNoise := 0.0
		switch s.tier {
		case tierStrong:
			fillerNoise = 1.0
		case tierStylistic:
			fillerNoise = 0.5
		}
		densityClamped := density
		if densityClamped > 1 {
			densityClamped = 1
		}
		s.noise = 0.4*fillerNoise + 0.3*s.repeatSimilarity + 0.3*(1-densityClamped)
	}
}
