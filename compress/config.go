// Package compress implements the prompt compression engine: a sentence-
// level, query-aware pipeline that scores, selects, and rewrites a prompt
// down to a token budget while preserving code blocks and discourse
// structure (spec.md §4.8).
package compress

// Config is the compression engine's knob set (spec.md §6), with a
// Default() carrying the spec's documented defaults.
type Config struct {
	TargetRatio         float64
	MinSentences        int
	BoostReasoning      bool
	UseNCD              bool
	EnforceCoref        bool
	EnforceCausalChains bool
	RemoveFillers       bool
	RepeatThreshold     float64
	AdaptiveCompression bool
}

// Default returns the engine's documented default configuration.
func Default() Config {
	return Config{
		TargetRatio:         0.5,
		MinSentences:        1,
		BoostReasoning:      true,
		UseNCD:              true,
		EnforceCoref:        true,
		EnforceCausalChains: true,
		RemoveFillers:       true,
		RepeatThreshold:     0.5,
		AdaptiveCompression: true,
	}
}
