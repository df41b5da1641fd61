package mathast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simplifyExpr(t *testing.T, expr string) string {
	t.Helper()
	node, err := Parse(expr)
	require.NoError(t, err)
	simplified, _ := Simplify(node)
	return Format(simplified, DefaultFormatOptions())
}

func TestSimplify_Identities(t *testing.T) {
	cases := map[string]string{
		"x + 0":     "x",
		"0 + x":     "x",
		"x * 1":     "x",
		"1 * x":     "x",
		"x * 0":     "0",
		"x ^ 1":     "x",
		"x ^ 0":     "1",
		"1 ^ x":     "1",
		"x - x":     "0",
		"x / x":     "1",
		"- - x":     "x",
		"2 + 3 * 4": "14",
	}
	for expr, want := range cases {
		expr, want := expr, want
		t.Run(expr, func(t *testing.T) {
			assert.Equal(t, want, simplifyExpr(t, expr))
		})
	}
}

func TestSimplify_Algebra(t *testing.T) {
	t.Run("combine like terms", func(t *testing.T) {
		assert.Equal(t, "2 * x", simplifyExpr(t, "x + x"))
		assert.Equal(t, "5 * x", simplifyExpr(t, "2 * x + 3 * x"))
	})

	t.Run("distribute", func(t *testing.T) {
		assert.Equal(t, "2 * x + 2", simplifyExpr(t, "2 * (x + 1)"))
	})

	t.Run("factor common", func(t *testing.T) {
		assert.Equal(t, "2 * (x + y)", simplifyExpr(t, "2 * x + 2 * y"))
	})

	t.Run("simplify fraction", func(t *testing.T) {
		assert.Equal(t, "2 * x / 3", simplifyExpr(t, "6 * x / 9"))
	})

	t.Run("power of power", func(t *testing.T) {
		assert.Equal(t, "x ^ 6", simplifyExpr(t, "(x ^ 2) ^ 3"))
	})

	t.Run("multiply powers", func(t *testing.T) {
		assert.Equal(t, "x ^ 5", simplifyExpr(t, "x ^ 2 * x ^ 3"))
	})
}

func TestSimplify_IndeterminateIsTerminal(t *testing.T) {
	node, err := Parse("0 ^ 0")
	require.NoError(t, err)
	simplified, steps := Simplify(node)
	assert.Equal(t, 0, steps)
	assert.True(t, Equal(node, simplified))
}

func TestSimplify_Idempotent(t *testing.T) {
	exprs := []string{"x + x + x", "2 * (x + 1) + 3 * (x + 1)", "x ^ 2 * x ^ 3 + 1"}
	for _, expr := range exprs {
		expr := expr
		t.Run(expr, func(t *testing.T) {
			node, err := Parse(expr)
			require.NoError(t, err)
			once, _ := Simplify(node)
			twice, steps := Simplify(once)
			assert.Equal(t, 0, steps, "simplifying an already-simplified tree should be a no-op")
			assert.True(t, Equal(once, twice))
		})
	}
}

func TestSimplify_NeverExceedsIterationCap(t *testing.T) {
	node, err := Parse("x + x + x + x + x + x + x + x")
	require.NoError(t, err)
	_, steps := Simplify(node)
	assert.LessOrEqual(t, steps, maxSimplifyIterations)
}
