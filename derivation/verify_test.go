package derivation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	t.Run("valid chain", func(t *testing.T) {
		result := Verify([]Step{{LHS: "x + x", RHS: "2*x"}, {LHS: "2*x", RHS: "2*x"}})
		assert.True(t, result.Valid)
		assert.Zero(t, result.InvalidStep)
	})

	t.Run("invalid transformation is caught", func(t *testing.T) {
		result := Verify([]Step{{LHS: "x + x", RHS: "3*x"}})
		assert.False(t, result.Valid)
		assert.Equal(t, 1, result.InvalidStep)
		assert.Equal(t, ErrorInvalidTransformation, result.ErrorKind)
	})

	t.Run("invalid second step is caught", func(t *testing.T) {
		// x + x = 2x, 2x = 3x: step 1 is valid (x+x=2x), step 2 fails its own
		// equivalence check (2x != 3x) before discontinuity would even apply.
		result := Verify(ExtractSteps("x + x = 2x, 2x = 3x"))
		assert.False(t, result.Valid)
		assert.Equal(t, 2, result.InvalidStep)
	})

	t.Run("discontinuity specifically", func(t *testing.T) {
		result := Verify([]Step{{LHS: "x + 1", RHS: "x + 1"}, {LHS: "x + 2", RHS: "x + 2"}})
		assert.False(t, result.Valid)
		assert.Equal(t, 2, result.InvalidStep)
		assert.Equal(t, ErrorDiscontinuity, result.ErrorKind)
	})

	t.Run("empty chain is trivially valid", func(t *testing.T) {
		result := Verify(nil)
		assert.True(t, result.Valid)
	})
}
