package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runFormulaT2(text string) ComputeResult {
	return FormulaT2(text, strings.ToLower(text))
}

func TestFormulaT2(t *testing.T) {
	t.Run("gcd", func(t *testing.T) {
		result := runFormulaT2("gcd(24, 36)")
		assert.True(t, result.Solved)
		assert.InDelta(t, 12, result.Result.Num, 1e-9)
	})

	t.Run("lcm", func(t *testing.T) {
		result := runFormulaT2("lcm(4, 6)")
		assert.True(t, result.Solved)
		assert.InDelta(t, 12, result.Result.Num, 1e-9)
	})

	t.Run("power", func(t *testing.T) {
		result := runFormulaT2("what is 2 to the power of 10")
		assert.True(t, result.Solved)
		assert.InDelta(t, 1024, result.Result.Num, 1e-9)
	})

	t.Run("square root", func(t *testing.T) {
		result := runFormulaT2("square root of 81")
		assert.True(t, result.Solved)
		assert.InDelta(t, 9, result.Result.Num, 1e-9)
	})
}
