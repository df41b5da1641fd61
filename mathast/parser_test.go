package mathast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertNodeEqual reports a full tree diff on mismatch rather than a bare
// true/false, which is the only thing Equal itself gives you.
func assertNodeEqual(t *testing.T, want, got Node) {
	t.Helper()
	if !Equal(want, got) {
		t.Errorf("parsed tree mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestParse_Precedence(t *testing.T) {
	t.Run("multiplication binds tighter than addition", func(t *testing.T) {
		node, err := Parse("2 + 3 * 4")
		require.NoError(t, err)
		want := Binary{Op: Add, Left: Number{Value: 2}, Right: Binary{Op: Mul, Left: Number{Value: 3}, Right: Number{Value: 4}}}
		assertNodeEqual(t, want, node)
	})

	t.Run("exponentiation is right associative", func(t *testing.T) {
		node, err := Parse("2 ^ 3 ^ 2")
		require.NoError(t, err)
		want := Binary{Op: Pow, Left: Number{Value: 2}, Right: Binary{Op: Pow, Left: Number{Value: 3}, Right: Number{Value: 2}}}
		assertNodeEqual(t, want, node)
	})

	t.Run("unary minus binds looser than pow, tighter than mul", func(t *testing.T) {
		node, err := Parse("-2^2")
		require.NoError(t, err)
		want := Unary{Op: Neg, Operand: Binary{Op: Pow, Left: Number{Value: 2}, Right: Number{Value: 2}}}
		assertNodeEqual(t, want, node)
	})

	t.Run("parentheses override precedence", func(t *testing.T) {
		node, err := Parse("(2 + 3) * 4")
		require.NoError(t, err)
		want := Binary{Op: Mul, Left: Binary{Op: Add, Left: Number{Value: 2}, Right: Number{Value: 3}}, Right: Number{Value: 4}}
		assertNodeEqual(t, want, node)
	})

	t.Run("implicit multiplication parses as multiplication", func(t *testing.T) {
		node, err := Parse("2x")
		require.NoError(t, err)
		want := Binary{Op: Mul, Left: Number{Value: 2}, Right: Variable{Name: "x"}}
		assertNodeEqual(t, want, node)
	})
}

func TestParse_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Parse("")
		assert.Error(t, err)
	})

	t.Run("trailing token", func(t *testing.T) {
		_, err := Parse("2 +")
		assert.Error(t, err)
	})

	t.Run("unbalanced parenthesis", func(t *testing.T) {
		_, err := Parse("(2 + 3")
		assert.Error(t, err)
	})

	t.Run("unrecognized rune surfaces as parse error", func(t *testing.T) {
		_, err := Parse("2 @ 3")
		assert.Error(t, err)
	})
}
