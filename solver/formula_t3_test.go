package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runFormulaT3(text string) ComputeResult {
	return FormulaT3(text, strings.ToLower(text))
}

func TestFormulaT3(t *testing.T) {
	t.Run("quadratic larger root by default", func(t *testing.T) {
		result := runFormulaT3("1x^2 + -3x + 2 = 0")
		assert.True(t, result.Solved)
		assert.Equal(t, "formula_quadratic", result.Method)
		assert.InDelta(t, 2, result.Result.Num, 1e-9)
	})

	t.Run("5 choose 2", func(t *testing.T) {
		result := runFormulaT3("5 choose 2")
		assert.True(t, result.Solved)
		assert.InDelta(t, 10, result.Result.Num, 1e-9)
	})

	t.Run("5 permute 2", func(t *testing.T) {
		result := runFormulaT3("5p2")
		assert.True(t, result.Solved)
		assert.InDelta(t, 20, result.Result.Num, 1e-9)
	})

	t.Run("last digit of a power", func(t *testing.T) {
		result := runFormulaT3("last digit of 7^123")
		assert.True(t, result.Solved)
		assert.InDelta(t, 3, result.Result.Num, 1e-9)
	})

	t.Run("natural log", func(t *testing.T) {
		result := runFormulaT3("ln(1)")
		assert.True(t, result.Solved)
		assert.InDelta(t, 0, result.Result.Num, 1e-9)
	})
}
