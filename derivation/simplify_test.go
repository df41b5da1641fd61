package derivation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplificationPath(t *testing.T) {
	t.Run("reports each fired rule in order", func(t *testing.T) {
		path, err := SimplificationPath("x + x")
		require.NoError(t, err)
		require.NotEmpty(t, path)
		assert.Equal(t, 1, path[0].Step)
		assert.Equal(t, "combine_like_terms", path[0].Transformation)
		assert.Equal(t, "x + x", path[0].Before)
		assert.Equal(t, "2 * x", path[0].After)
	})

	t.Run("already simplified expression has an empty path", func(t *testing.T) {
		path, err := SimplificationPath("x + y")
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("unparseable expression is an error", func(t *testing.T) {
		_, err := SimplificationPath("@@@")
		assert.Error(t, err)
	})
}

func TestSimplifyDerivation(t *testing.T) {
	t.Run("drops literal identity steps", func(t *testing.T) {
		result := SimplifyDerivation([]Step{{LHS: "x", RHS: "x"}})
		assert.Empty(t, result.Steps)
		assert.Len(t, result.Reasons, 1)
	})

	t.Run("drops steps that make no progress", func(t *testing.T) {
		result := SimplifyDerivation([]Step{
			{LHS: "x + x", RHS: "2*x"},
			{LHS: "2*x", RHS: "2*x + 0"},
		})
		require.Len(t, result.Steps, 1)
		assert.Equal(t, "2 * x", result.Steps[0].RHS)
	})

	t.Run("keeps genuine progress", func(t *testing.T) {
		result := SimplifyDerivation([]Step{
			{LHS: "x + x", RHS: "2*x"},
			{LHS: "2*x", RHS: "2*x + 1"},
		})
		require.Len(t, result.Steps, 2)
	})
}
