package tokencount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	t.Run("empty text is zero tokens", func(t *testing.T) {
		assert.Zero(t, Estimate(""))
	})

	t.Run("prose estimate is positive and roughly proportional to length", func(t *testing.T) {
		short := Estimate("The cat sat.")
		long := Estimate("The cat sat on the mat and watched the birds outside the window all afternoon.")
		assert.Positive(t, short)
		assert.Greater(t, long, short)
	})

	t.Run("trailing punctuation contributes extra tokens", func(t *testing.T) {
		bare := wordTokenEstimate("hello")
		punctuated := wordTokenEstimate("hello!")
		assert.Greater(t, punctuated, bare)
	})

	t.Run("word length tiers", func(t *testing.T) {
		assert.InDelta(t, 1, wordTokenEstimate("cat"), 1e-9)
		assert.InDelta(t, 1.3, wordTokenEstimate("elephant"), 1e-9)
		assert.InDelta(t, 4, wordTokenEstimate("internationalization"), 1e-9)
	})
}

func TestEstimateTokensCache(t *testing.T) {
	t.Run("repeated calls are consistent", func(t *testing.T) {
		text := "a reasonably unique sentence for the estimator cache to key on"
		first := EstimateTokens(text)
		second := EstimateTokens(text)
		assert.Equal(t, first, second)
	})
}
