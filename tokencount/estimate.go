package tokencount

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// charRatio is the calibrated chars/token ratio per content type
// (spec.md §4.7).
var charRatio = map[ContentType]float64{
	Prose:  5.0,
	Code:   3.0,
	URL:    4.1,
	Number: 3.0,
	CJK:    1.5,
	Mixed:  3.8,
}

// blendWeight returns the (charWeight, wordWeight) pair for a content type.
func blendWeight(t ContentType) (float64, float64) {
	switch t {
	case Prose:
		return 0.35, 0.65
	case Code:
		return 0.65, 0.35
	default:
		return 0.5, 0.5
	}
}

const safetyMultiplier = 1.03

// wordTokenEstimate scores a single whitespace-delimited word: trailing
// punctuation counts 0.7 tokens each, then the remaining run is bucketed
// by length (spec.md §4.7).
func wordTokenEstimate(word string) float64 {
	trimmed := strings.TrimRightFunc(word, unicode.IsPunct)
	trailingPunct := utf8.RuneCountInString(word) - utf8.RuneCountInString(trimmed)
	total := float64(trailingPunct) * 0.7

	n := utf8.RuneCountInString(trimmed)
	switch {
	case n == 0:
	case n <= 5:
		total += 1
	case n <= 10:
		total += 1.3
	default:
		total += math.Ceil(float64(n) / 5)
	}
	return total
}

func wordEstimate(text string) float64 {
	var total float64
	for _, word := range strings.Fields(text) {
		total += wordTokenEstimate(word)
	}
	return total
}

// adjustForEmbedded adds the delta of treating embedded URL or CJK runs at
// their own characteristic ratio instead of the dominant type's ratio, so
// a mostly-prose message with one long URL doesn't under-count it.
func adjustForEmbedded(text string, dominant ContentType, estimate float64) float64 {
	d := measure(text)
	if d.total == 0 {
		return estimate
	}
	dominantRatio := charRatio[dominant]

	if dominant != URL && d.urlChars > 0 {
		estimate += float64(d.urlChars) * (1/charRatio[URL] - 1/dominantRatio)
	}
	if dominant != CJK && d.cjk > 0 {
		estimate += float64(d.cjk) * (1/charRatio[CJK] - 1/dominantRatio)
	}
	return estimate
}

// Estimate returns the heuristic token count for text, uncached.
func Estimate(text string) int {
	if text == "" {
		return 0
	}
	contentType := Classify(text)
	ratio := charRatio[contentType]

	charEst := float64(utf8.RuneCountInString(text)) / ratio
	wordEst := wordEstimate(text)

	charWeight, wordWeight := blendWeight(contentType)
	blended := charWeight*charEst + wordWeight*wordEst
	blended = adjustForEmbedded(text, contentType, blended)

	return int(math.Ceil(blended * safetyMultiplier))
}

// EstimateTokens is the public, cached entry point (spec.md §6).
func EstimateTokens(text string) int {
	if cached, ok := defaultCache.Get(text); ok {
		return cached
	}
	result := Estimate(text)
	defaultCache.Put(text, result)
	return result
}
