package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runArithmetic(text string) ComputeResult {
	return Arithmetic(text, strings.ToLower(text))
}

func TestArithmetic(t *testing.T) {
	t.Run("whole-text expression", func(t *testing.T) {
		result := runArithmetic("what is 12 * 7?")
		assert.True(t, result.Solved)
		assert.Equal(t, "arithmetic", result.Method)
		assert.InDelta(t, 84, result.Result.Num, 1e-9)
	})

	t.Run("inline expression inside a longer sentence", func(t *testing.T) {
		result := runArithmetic("the answer to 3 + 4 is what I need")
		assert.True(t, result.Solved)
		assert.Equal(t, "inline_arithmetic", result.Method)
		assert.InDelta(t, 7, result.Result.Num, 1e-9)
	})

	t.Run("expression with a free variable is unsolved", func(t *testing.T) {
		result := runArithmetic("what is x + 1?")
		assert.False(t, result.Solved)
	})

	t.Run("non-numeric text is unsolved", func(t *testing.T) {
		result := runArithmetic("tell me a joke")
		assert.False(t, result.Solved)
	})
}
