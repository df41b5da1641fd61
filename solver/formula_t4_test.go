package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runFormulaT4(text string) ComputeResult {
	return FormulaT4(text, strings.ToLower(text))
}

func TestFormulaT4(t *testing.T) {
	t.Run("pythagorean hypotenuse", func(t *testing.T) {
		result := runFormulaT4("a right triangle has legs of 3 and 4")
		assert.True(t, result.Solved)
		assert.InDelta(t, 5, result.Result.Num, 1e-9)
	})

	t.Run("trailing zeros of a factorial", func(t *testing.T) {
		result := runFormulaT4("how many trailing zeros in 100!")
		assert.True(t, result.Solved)
		assert.InDelta(t, 24, result.Result.Num, 1e-9)
	})

	t.Run("infinite geometric series", func(t *testing.T) {
		result := runFormulaT4("an infinite geometric series with first term 1 and ratio 0.5")
		assert.True(t, result.Solved)
		assert.InDelta(t, 2, result.Result.Num, 1e-9)
	})

	t.Run("compound interest", func(t *testing.T) {
		result := runFormulaT4("a principal of 100 at a rate of 10% for 2 years")
		assert.True(t, result.Solved)
		assert.InDelta(t, 121, result.Result.Num, 1e-9)
	})

	t.Run("2x2 determinant", func(t *testing.T) {
		result := runFormulaT4("determinant of [[1, 2], [3, 4]]")
		assert.True(t, result.Solved)
		assert.InDelta(t, -2, result.Result.Num, 1e-9)
	})
}
