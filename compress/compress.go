package compress

import (
	"strings"

	"github.com/coderdayton/localmind/tokencount"
)

// Compress runs the full pipeline (spec.md §4.8, stages 1-9) against
// context with query steering relevance, using options or Default() when
// options is nil. A single-sentence input bypasses the pipeline entirely
// (spec.md §7: degenerate inputs are never an error).
func Compress(context, query string, options *Config) CompressionResult {
	cfg := Default()
	explicitRatio := false
	if options != nil {
		cfg = *options
		explicitRatio = options.TargetRatio > 0
	}
	if cfg.MinSentences <= 0 {
		cfg.MinSentences = 1
	}

	tokens := tokencount.EstimateTokens(context)
	stripped, codeBlocks := extractCodeBlocks(context)
	rawSentences := splitSentences(stripped)

	if len(rawSentences) <= 1 {
		return CompressionResult{
			Compressed:       context,
			OriginalTokens:   tokens,
			CompressedTokens: tokens,
			Ratio:            1.0,
			KeptSentences:    rawSentences,
		}
	}

	if cfg.AdaptiveCompression && !explicitRatio {
		cfg.TargetRatio = adaptiveRatio(stripped, query, tokens)
	}

	sentences := buildSentences(stripped, query)
	detectRepetition(sentences)
	scoringCtx := buildScoringContext(sentences, query, cfg)
	scoreSentences(sentences, scoringCtx)
	selectSentences(sentences, cfg)
	corefForced, causalForced := enforceClosure(sentences, cfg)

	var keptTexts, droppedTexts []string
	for _, s := range sentences {
		if !s.kept {
			if !s.isCode {
				droppedTexts = append(droppedTexts, s.text)
			}
			continue
		}
		if s.isCode {
			keptTexts = append(keptTexts, s.text)
			continue
		}
		rewritten := s.text
		if cfg.RemoveFillers {
			rewritten = stripFillerWords(rewritten)
		}
		rewritten = telegraphicRewrite(rewritten)
		keptTexts = append(keptTexts, rewritten)
	}

	assembled := strings.Join(keptTexts, " ")
	compressedText := reinsertCodeBlocks(assembled, codeBlocks)
	compressedTokens := tokencount.EstimateTokens(compressedText)

	ratio := 1.0
	if tokens > 0 {
		ratio = float64(compressedTokens) / float64(tokens)
	}

	return CompressionResult{
		Compressed:       compressedText,
		OriginalTokens:   tokens,
		CompressedTokens: compressedTokens,
		Ratio:            ratio,
		KeptSentences:    keptTexts,
		DroppedSentences: droppedTexts,
		CorefForced:      corefForced,
		CausalForced:     causalForced,
	}
}

// QuickCompress picks a target ratio from maxTokens and returns only the
// compressed string, for callers that don't need the full result shape.
func QuickCompress(context, query string, maxTokens int) string {
	tokens := tokencount.EstimateTokens(context)
	if maxTokens <= 0 || tokens <= maxTokens {
		return context
	}
	ratio := float64(maxTokens) / float64(tokens)
	if ratio < 0.25 {
		ratio = 0.25
	}
	if ratio > 0.9 {
		ratio = 0.9
	}
	cfg := Default()
	cfg.TargetRatio = ratio
	cfg.AdaptiveCompression = false
	return Compress(context, query, &cfg).Compressed
}
