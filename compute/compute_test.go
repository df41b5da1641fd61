package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryLocalCompute(t *testing.T) {
	t.Run("solves and reports a method", func(t *testing.T) {
		result := TryLocalCompute("what is 2+2?", false)
		assert.True(t, result.Solved)
		assert.Equal(t, "arithmetic", result.Method)
		assert.InDelta(t, 4, result.Result.Num, 1e-9)
	})

	t.Run("cache hit zeroes TimeMS", func(t *testing.T) {
		text := "what is 9*9?"
		first := TryLocalCompute(text, true)
		assert.True(t, first.Solved)
		second := TryLocalCompute(text, true)
		assert.True(t, second.Solved)
		assert.Zero(t, second.TimeMS)
		assert.Equal(t, first.Method, second.Method)
		assert.Equal(t, first.Result, second.Result)
	})

	t.Run("unsolved input returns Unsolved shape", func(t *testing.T) {
		result := TryLocalCompute("tell me a joke", false)
		assert.False(t, result.Solved)
	})
}

func TestExtractAndCompute(t *testing.T) {
	t.Run("inlines a computed answer and leaves the rest untouched", func(t *testing.T) {
		result := ExtractAndCompute("What is 2+2? Then tell me a joke.")
		assert.True(t, result.HasComputations)
		assert.Len(t, result.Computations, 1)
		assert.Equal(t, "arithmetic", result.Computations[0].Method)
		assert.Equal(t, "What is 2+2? [=4] Then tell me a joke.", result.Augmented)
	})

	t.Run("no computable span leaves text unchanged", func(t *testing.T) {
		result := ExtractAndCompute("Tell me a joke. Then another one.")
		assert.False(t, result.HasComputations)
		assert.Empty(t, result.Computations)
		assert.Equal(t, "Tell me a joke. Then another one.", result.Augmented)
	})
}

func TestContextAwareCompute(t *testing.T) {
	t.Run("keeps computations matching the prompt's domain", func(t *testing.T) {
		result := ContextAwareCompute(Context{
			SystemPrompt: "Let's discuss your investment portfolio.",
			Thought:      "What is 20% of 50? Also tell me a joke.",
		})
		assert.NotZero(t, result.Domain)
		assert.True(t, result.HasComputations)
		assert.Len(t, result.Computations, 1)
		assert.Equal(t, "formula_percentage", result.Computations[0].Method)
		assert.Equal(t, "What is 20% of 50? [=10] Also tell me a joke.", result.Augmented)
	})

	t.Run("drops computations outside the detected domain", func(t *testing.T) {
		result := ContextAwareCompute(Context{
			SystemPrompt: "Let's discuss proof by contradiction in logic.",
			Thought:      "What is 2+2? Also tell me a joke.",
		})
		assert.NotZero(t, result.Domain)
		assert.False(t, result.HasComputations)
		assert.Equal(t, "What is 2+2? Also tell me a joke.", result.Augmented)
	})

	t.Run("zero domain keeps every computation", func(t *testing.T) {
		result := ContextAwareCompute(Context{
			Thought: "What is 2+2? Also tell me a joke.",
		})
		assert.Zero(t, result.Domain)
		assert.True(t, result.HasComputations)
		assert.Len(t, result.Computations, 1)
	})
}
