package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCRT(text string) ComputeResult {
	return CRT(text, strings.ToLower(text))
}

func TestCRT(t *testing.T) {
	t.Run("bat and ball", func(t *testing.T) {
		result := runCRT("A bat and ball cost $1.10. The bat costs $1.00 more than the ball. How much does the ball cost (in cents)?")
		assert.True(t, result.Solved)
		assert.Equal(t, "crt_bat_ball", result.Method)
		assert.InDelta(t, 5, result.Result.Num, 1e-9)
	})

	t.Run("lily pad doubling", func(t *testing.T) {
		result := runCRT("A lily pad doubles every day. It takes 48 days to cover the lake. How many days to cover half the lake?")
		assert.True(t, result.Solved)
		assert.Equal(t, "crt_lily_pad", result.Method)
		assert.InDelta(t, 47, result.Result.Num, 1e-9)
	})

	t.Run("widget machine", func(t *testing.T) {
		result := runCRT("If it takes 5 machines 5 minutes to make 5 widgets, how long would it take 100 machines to make 100 widgets?")
		assert.True(t, result.Solved)
		assert.Equal(t, "crt_widget_machine", result.Method)
		assert.InDelta(t, 5, result.Result.Num, 1e-9)
	})

	t.Run("sock drawer pigeonhole", func(t *testing.T) {
		result := runCRT("A drawer has 4 colors of socks. How many must you pull to guarantee a matching pair?")
		assert.True(t, result.Solved)
		assert.Equal(t, "crt_sock_drawer", result.Method)
		assert.InDelta(t, 5, result.Result.Num, 1e-9)
	})

	t.Run("unrelated text is unsolved", func(t *testing.T) {
		result := runCRT("what is the weather today")
		assert.False(t, result.Solved)
	})
}
