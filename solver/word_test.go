package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runWordProblem(text string) ComputeResult {
	return WordProblem(text, strings.ToLower(text))
}

func TestWordProblem(t *testing.T) {
	t.Run("age in the future", func(t *testing.T) {
		result := runWordProblem("Sam is 12 years old. How old will Sam be in 5 years?")
		assert.True(t, result.Solved)
		assert.Equal(t, "word_age_projection", result.Method)
		assert.InDelta(t, 17, result.Result.Num, 1e-9)
	})

	t.Run("age in the past", func(t *testing.T) {
		result := runWordProblem("Sam is 12 years old. How old was Sam 5 years ago?")
		assert.True(t, result.Solved)
		assert.InDelta(t, 7, result.Result.Num, 1e-9)
	})

	t.Run("percent change", func(t *testing.T) {
		result := runWordProblem("what is the percent change from 50 to 75")
		assert.True(t, result.Solved)
		assert.InDelta(t, 50, result.Result.Num, 1e-9)
	})

	t.Run("profit", func(t *testing.T) {
		result := runWordProblem("she bought a bike for $100 and sold it for $150")
		assert.True(t, result.Solved)
		assert.Equal(t, "word_profit", result.Method)
		assert.InDelta(t, 50, result.Result.Num, 1e-9)
	})

	t.Run("profit percent", func(t *testing.T) {
		result := runWordProblem("she bought a bike for $100 and sold it for $150, what is the profit percentage")
		assert.True(t, result.Solved)
		assert.Equal(t, "word_profit_percent", result.Method)
		assert.InDelta(t, 50, result.Result.Num, 1e-9)
	})

	t.Run("distance speed time", func(t *testing.T) {
		result := runWordProblem("a car travels at 60 mph for 2 hours")
		assert.True(t, result.Solved)
		assert.InDelta(t, 120, result.Result.Num, 1e-9)
	})
}
