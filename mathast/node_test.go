package mathast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreeVariables(t *testing.T) {
	node := Binary{
		Op:   Add,
		Left: Binary{Op: Mul, Left: Variable{Name: "x"}, Right: Variable{Name: "y"}},
		Right: Binary{
			Op:    Mul,
			Left:  Variable{Name: "x"},
			Right: Variable{Name: "pi"},
		},
	}
	assert.ElementsMatch(t, []string{"x", "y"}, FreeVariables(node))
}

func TestEqual(t *testing.T) {
	a := Binary{Op: Add, Left: Number{Value: 1}, Right: Variable{Name: "x"}}
	b := Binary{Op: Add, Left: Number{Value: 1}, Right: Variable{Name: "x"}}
	c := Binary{Op: Add, Left: Number{Value: 2}, Right: Variable{Name: "x"}}
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestWalk_PreOrder(t *testing.T) {
	node := Binary{Op: Add, Left: Number{Value: 1}, Right: Unary{Op: Neg, Operand: Variable{Name: "x"}}}
	var visited []Node
	Walk(node, func(n Node) { visited = append(visited, n) })
	assert.Len(t, visited, 4)
}
