package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runFormulaT1(text string) ComputeResult {
	return FormulaT1(text, strings.ToLower(text))
}

func TestFormulaT1(t *testing.T) {
	t.Run("percentage of a base", func(t *testing.T) {
		result := runFormulaT1("what is 20% of 50")
		assert.True(t, result.Solved)
		assert.Equal(t, "formula_percentage", result.Method)
		assert.InDelta(t, 10, result.Result.Num, 1e-9)
	})

	t.Run("factorial", func(t *testing.T) {
		result := runFormulaT1("what is 5!")
		assert.True(t, result.Solved)
		assert.InDelta(t, 120, result.Result.Num, 1e-9)
	})

	t.Run("modulo", func(t *testing.T) {
		result := runFormulaT1("what is 17 mod 5")
		assert.True(t, result.Solved)
		assert.InDelta(t, 2, result.Result.Num, 1e-9)
	})

	t.Run("primality", func(t *testing.T) {
		result := runFormulaT1("is 17 a prime number")
		assert.True(t, result.Solved)
		assert.Equal(t, "yes", result.Result.String())
	})

	t.Run("nth fibonacci", func(t *testing.T) {
		result := runFormulaT1("what is the 10th fibonacci number")
		assert.True(t, result.Solved)
		assert.InDelta(t, 55, result.Result.Num, 1e-9)
	})
}
