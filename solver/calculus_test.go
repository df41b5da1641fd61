package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCalculus(text string) ComputeResult {
	return Calculus(text, strings.ToLower(text))
}

func TestCalculus(t *testing.T) {
	t.Run("derivative evaluated at a point", func(t *testing.T) {
		result := runCalculus("what is the derivative of x^3 at x = 2")
		assert.True(t, result.Solved)
		assert.Equal(t, "calculus_derivative_at_point", result.Method)
		assert.InDelta(t, 12, result.Result.Num, 1e-9)
	})

	t.Run("definite integral by simpson's rule", func(t *testing.T) {
		result := runCalculus("integral of x^2 from 0 to 3")
		assert.True(t, result.Solved)
		assert.Equal(t, "calculus_definite_integral", result.Method)
		assert.InDelta(t, 9, result.Result.Num, 1e-6)
	})

	t.Run("symbolic derivative as text", func(t *testing.T) {
		result := runCalculus("derivative of x^2")
		assert.True(t, result.Solved)
		assert.Equal(t, "calculus_symbolic_derivative", result.Method)
	})

	t.Run("unsupported expression is unsolved", func(t *testing.T) {
		result := runCalculus("derivative of 2^x")
		assert.False(t, result.Solved)
	})
}
