package tokencount

import (
	"testing"

	"github.com/pkoukk/tiktoken-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exactBPECount is the calibration oracle: a real cl100k_base encoder, used
// only in this test suite to grade the heuristic estimator, never in the
// hot path itself (spec.md §1 excludes a model round trip from scope).
func exactBPECount(t *testing.T, text string) int {
	t.Helper()
	encoding, err := tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
	require.NoError(t, err)
	return len(encoding.Encode(text, nil, nil))
}

// TestEstimateCalibration checks Testable Property 7: the fast estimate
// must sit within [0.8x, 2.0x] of the exact BPE count.
func TestEstimateCalibration(t *testing.T) {
	samples := []string{
		"The quick brown fox jumps over the lazy dog.",
		"Please summarize the quarterly earnings report in three bullet points.",
		"func main() { fmt.Println(\"hello, world\") }",
		"Visit https://example.com/docs/getting-started for the full guide.",
		"Invoice #48213 totals $1,204.56, due on 2026-09-01.",
		"こんにちは、元気ですか。今日はいい天気ですね。",
	}

	for _, text := range samples {
		t.Run(text, func(t *testing.T) {
			exact := exactBPECount(t, text)
			if exact == 0 {
				t.Skip("empty encoding, nothing to calibrate against")
			}
			estimate := Estimate(text)
			assert.GreaterOrEqual(t, float64(estimate), 0.8*float64(exact),
				"estimate %d underestimates exact %d by more than 20%%", estimate, exact)
			assert.LessOrEqual(t, float64(estimate), 2.0*float64(exact),
				"estimate %d overestimates exact %d by more than 2x", estimate, exact)
		})
	}
}
