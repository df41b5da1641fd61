package mathast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_RoundTrip(t *testing.T) {
	exprs := []string{
		"2 + 3 * 4",
		"(2 + 3) * 4",
		"2 ^ 3 ^ 2",
		"-2 ^ 2",
		"x - (y - z)",
		"x / (y / z)",
	}
	for _, expr := range exprs {
		expr := expr
		t.Run(expr, func(t *testing.T) {
			node, err := Parse(expr)
			require.NoError(t, err)
			rendered := Format(node, DefaultFormatOptions())
			reparsed, err := Parse(rendered)
			require.NoError(t, err)
			assert.True(t, Equal(node, reparsed), "round trip mismatch: %s -> %s", expr, rendered)
		})
	}
}

func TestFormat_MinimalParens(t *testing.T) {
	node := Binary{Op: Mul, Left: Number{Value: 2}, Right: Binary{Op: Add, Left: Variable{Name: "x"}, Right: Number{Value: 1}}}
	got := Format(node, DefaultFormatOptions())
	assert.Equal(t, "2 * (x + 1)", got)
}
