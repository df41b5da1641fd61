package compress

import (
	"math"
	"sort"
)

const minRelevanceThreshold = 0.05

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// selectSentences implements stage 6: drop below-threshold sentences,
// bucket the rest into P1-P4 by relevance/noise medians, and fill the
// keep quota by descending score within P1, P2, P3, P4 in order.
func selectSentences(sentences []sentence, cfg Config) {
	codeCount := 0
	var relevances, noises []float64
	for i := range sentences {
		if sentences[i].isCode {
			sentences[i].kept = true
			codeCount++
			continue
		}
		if sentences[i].relevance < minRelevanceThreshold {
			continue
		}
		relevances = append(relevances, sentences[i].relevance)
		noises = append(noises, sentences[i].noise)
	}

	relMedian := median(relevances)
	noiseMedian := median(noises)

	var p1, p2, p3, p4 []int
	for i := range sentences {
		s := &sentences[i]
		if s.isCode || s.relevance < minRelevanceThreshold {
			continue
		}
		highRel := s.relevance >= relMedian
		highNoise := s.noise > noiseMedian
		switch {
		case highRel && !highNoise:
			p1 = append(p1, i)
		case highRel && highNoise:
			p2 = append(p2, i)
		case !highRel && !highNoise:
			p3 = append(p3, i)
		default:
			p4 = append(p4, i)
		}
	}

	byDescendingScore := func(bucket []int) {
		sort.SliceStable(bucket, func(a, b int) bool {
			sa, sb := sentences[bucket[a]].relevance, sentences[bucket[b]].relevance
			if sa != sb {
				return sa > sb
			}
			return bucket[a] < bucket[b]
		})
	}
	byDescendingScore(p1)
	byDescendingScore(p2)
	byDescendingScore(p3)
	byDescendingScore(p4)

	quota := int(math.Ceil(float64(len(sentences)) * cfg.TargetRatio))
	if quota < cfg.MinSentences {
		quota = cfg.MinSentences
	}
	remaining := quota - codeCount
	if remaining < 0 {
		remaining = 0
	}

	for _, bucket := range [][]int{p1, p2, p3, p4} {
		for _, idx := range bucket {
			if remaining <= 0 {
				break
			}
			sentences[idx].kept = true
			remaining--
		}
	}
}
