package derivation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstMistake(t *testing.T, result MistakeDetectionResult) DetectedMistake {
	t.Helper()
	require.NotEmpty(t, result.Mistakes)
	return result.Mistakes[0]
}

func TestDetectMistakes(t *testing.T) {
	t.Run("equivalent steps produce no mistakes", func(t *testing.T) {
		result := DetectMistakes([]Step{{LHS: "x + x", RHS: "2*x"}})
		assert.Empty(t, result.Mistakes)
	})

	t.Run("sign error", func(t *testing.T) {
		result := DetectMistakes([]Step{{LHS: "x - 2", RHS: "2 - x"}})
		mistake := firstMistake(t, result)
		assert.Equal(t, SignError, mistake.Type)
	})

	t.Run("distribution error", func(t *testing.T) {
		result := DetectMistakes([]Step{{LHS: "2*(x + 3)", RHS: "2*x + 3"}})
		mistake := firstMistake(t, result)
		assert.Equal(t, DistributionError, mistake.Type)
	})

	t.Run("subtraction distribution error", func(t *testing.T) {
		result := DetectMistakes([]Step{{LHS: "5 - (x - 2)", RHS: "5 - x - 2"}})
		mistake := firstMistake(t, result)
		assert.Equal(t, SubtractionDistributionError, mistake.Type)
	})

	t.Run("fraction error", func(t *testing.T) {
		result := DetectMistakes([]Step{{LHS: "1/2 + 1/3", RHS: "2/5"}})
		mistake := firstMistake(t, result)
		assert.Equal(t, FractionError, mistake.Type)
	})

	t.Run("cancellation error", func(t *testing.T) {
		result := DetectMistakes([]Step{{LHS: "(x + 3)/x", RHS: "3"}})
		mistake := firstMistake(t, result)
		assert.Equal(t, CancellationError, mistake.Type)
	})

	t.Run("coefficient error", func(t *testing.T) {
		result := DetectMistakes([]Step{{LHS: "x + x", RHS: "3x"}})
		mistake := firstMistake(t, result)
		assert.Equal(t, CoefficientError, mistake.Type)
		assert.Equal(t, 1, mistake.StepNumber)
	})

	t.Run("bare term coefficient drift across a step", func(t *testing.T) {
		// x + x = 2x, 2x = 3x: step 2's lhs ("2x") is a bare term, not a sum
		// of like terms, so the like-terms-combining detector never fires on
		// it, but the coefficient carries the same base (x) with no
		// operation to justify 2 becoming 3.
		steps := ExtractSteps("x + x = 2x, 2x = 3x")
		verification := Verify(steps)
		assert.False(t, verification.Valid)
		assert.Equal(t, 2, verification.InvalidStep)

		result := DetectMistakes(steps)
		mistake := firstMistake(t, result)
		assert.Equal(t, CoefficientError, mistake.Type)
		assert.Equal(t, 2, mistake.StepNumber)
	})

	t.Run("like terms error", func(t *testing.T) {
		result := DetectMistakes([]Step{{LHS: "x + y", RHS: "x*y"}})
		mistake := firstMistake(t, result)
		assert.Equal(t, LikeTermsError, mistake.Type)
	})

	t.Run("correct exponent step is not flagged", func(t *testing.T) {
		result := DetectMistakes([]Step{{LHS: "x^2 * x^3", RHS: "x^5"}})
		assert.Empty(t, result.Mistakes) // x^5 is correct, nothing to detect
	})

	t.Run("order of operations error", func(t *testing.T) {
		result := DetectMistakes([]Step{{LHS: "2 + 3*4", RHS: "20"}})
		mistake := firstMistake(t, result)
		assert.Equal(t, OrderOfOperationsError, mistake.Type)
	})

	t.Run("derivative power rule error", func(t *testing.T) {
		result := DetectMistakes([]Step{{LHS: "d/dx x^3", RHS: "3*x^3"}})
		mistake := firstMistake(t, result)
		assert.Equal(t, PowerRuleError, mistake.Type)
	})

	t.Run("derivative chain rule error", func(t *testing.T) {
		result := DetectMistakes([]Step{{LHS: "d/dx sin(x^2)", RHS: "cos(x^2)"}})
		mistake := firstMistake(t, result)
		assert.Equal(t, ChainRuleError, mistake.Type)
	})
}
