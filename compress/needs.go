package compress

import (
	"github.com/coderdayton/localmind/tokencount"
)

// NeedsCompression implements stage 11: a cheap pre-check so callers can
// skip the pipeline entirely on inputs that would not benefit from it.
func NeedsCompression(text string, query string) CompressionAnalysis {
	tokens := tokencount.EstimateTokens(text)
	entropy := shannonEntropy(text)
	uniqueness := uniquenessRatio(text)
	estimatedRatio := adaptiveRatio(text, query, tokens)

	analysis := CompressionAnalysis{
		Entropy:         entropy,
		UniquenessRatio: uniqueness,
		EstimatedRatio:  estimatedRatio,
		Tokens:          tokens,
	}

	if tokens <= 100 {
		analysis.ShouldCompress = false
		analysis.Reasons = append(analysis.Reasons, "input is too short to benefit from compression")
		return analysis
	}

	if entropy < 4.0 {
		analysis.ShouldCompress = true
		analysis.Reasons = append(analysis.Reasons, "low character entropy indicates repetitive content")
	}
	if uniqueness < 0.3 {
		analysis.ShouldCompress = true
		analysis.Reasons = append(analysis.Reasons, "low lexical uniqueness indicates repeated phrasing")
	}
	if tokens > 500 && entropy < 5.5 {
		analysis.ShouldCompress = true
		analysis.Reasons = append(analysis.Reasons, "long input with moderate entropy compresses well")
	}
	if entropy > 6.5 {
		analysis.ShouldCompress = false
		analysis.Reasons = append(analysis.Reasons, "high entropy indicates dense, already-compact content")
		return analysis
	}

	estimatedSavings := 1 - estimatedRatio
	if estimatedSavings < 0.2 && tokens < 300 {
		analysis.ShouldCompress = false
		analysis.Reasons = append(analysis.Reasons, "estimated savings too small to justify compression")
		return analysis
	}

	if !analysis.ShouldCompress {
		analysis.ShouldCompress = estimatedSavings >= 0.2
		if analysis.ShouldCompress {
			analysis.Reasons = append(analysis.Reasons, "estimated savings exceed 20%")
		}
	}

	return analysis
}
