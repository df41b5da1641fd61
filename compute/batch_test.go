package compute

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchCompute(t *testing.T) {
	t.Run("preserves input order", func(t *testing.T) {
		texts := []string{"what is 2+2?", "tell me a joke", "what is 3*3?"}
		batch, err := BatchCompute(context.Background(), texts, 2)
		assert.NoError(t, err)
		assert.Len(t, batch.Results, 3)
		assert.True(t, batch.Results[0].Solved)
		assert.InDelta(t, 4, batch.Results[0].Result.Num, 1e-9)
		assert.False(t, batch.Results[1].Solved)
		assert.True(t, batch.Results[2].Solved)
		assert.InDelta(t, 9, batch.Results[2].Result.Num, 1e-9)
	})

	t.Run("deduplicates identical inputs", func(t *testing.T) {
		texts := []string{"what is 5+5?", "what is 5+5?"}
		batch, err := BatchCompute(context.Background(), texts, 4)
		assert.NoError(t, err)
		assert.Equal(t, batch.Results[0].Result, batch.Results[1].Result)
	})

	t.Run("defaults concurrency when non-positive", func(t *testing.T) {
		batch, err := BatchCompute(context.Background(), []string{"what is 1+1?"}, 0)
		assert.NoError(t, err)
		assert.True(t, batch.Results[0].Solved)
	})
}
