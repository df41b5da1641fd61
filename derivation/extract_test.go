package derivation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSteps(t *testing.T) {
	t.Run("comma separated chain", func(t *testing.T) {
		steps := ExtractSteps("x + x = 2x, 2x = 3x")
		assert.Equal(t, []Step{{LHS: "x + x", RHS: "2x"}, {LHS: "2x", RHS: "3x"}}, steps)
	})

	t.Run("chained equality in one segment", func(t *testing.T) {
		steps := ExtractSteps("2x + 4 = 2(x + 2) = 2x + 4")
		assert.Len(t, steps, 2)
		assert.Equal(t, "2x + 4", steps[0].LHS)
		assert.Equal(t, "2(x + 2)", steps[0].RHS)
	})

	t.Run("connective markers split steps", func(t *testing.T) {
		steps := ExtractSteps("x + 1 = 2, so x = 1")
		assert.Len(t, steps, 2)
		assert.Equal(t, "x", steps[1].LHS)
		assert.Equal(t, "1", steps[1].RHS)
	})

	t.Run("verbal prefix is stripped", func(t *testing.T) {
		steps := ExtractSteps("Prove: x + 0 = x")
		assert.Len(t, steps, 1)
		assert.Equal(t, "x + 0", steps[0].LHS)
	})

	t.Run("no equality yields no steps", func(t *testing.T) {
		steps := ExtractSteps("this has no math in it")
		assert.Empty(t, steps)
	})
}
