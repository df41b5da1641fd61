package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runDerivation(text string) ComputeResult {
	return Derivation(text, strings.ToLower(text))
}

func TestDerivationBridge(t *testing.T) {
	t.Run("valid chain reports valid", func(t *testing.T) {
		result := runDerivation("x + x = 2x, 2x = 2x")
		assert.True(t, result.Solved)
		assert.Equal(t, "derivation_verify", result.Method)
		assert.Equal(t, "valid", result.Result.String())
	})

	t.Run("invalid chain reports which step failed", func(t *testing.T) {
		result := runDerivation("x + x = 3x")
		assert.True(t, result.Solved)
		assert.Contains(t, result.Result.String(), "invalid at step 1")
	})

	t.Run("text with no equation yields no steps", func(t *testing.T) {
		result := runDerivation("this text has no equations in it")
		assert.False(t, result.Solved)
	})
}
