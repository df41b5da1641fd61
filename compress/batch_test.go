package compress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCompress(t *testing.T) {
	t.Run("preserves input order across a concurrent batch", func(t *testing.T) {
		items := []Item{
			{Context: "Alpha starts the story. Beta follows with detail here today.", Query: "alpha"},
			{Context: "Just a single sentence with no boundary at all here."},
			{Context: "Gamma concludes the summary. Delta trails off with a remark."},
		}
		result, err := BatchCompress(context.Background(), items, 2)
		require.NoError(t, err)
		require.Len(t, result.Results, 3)

		assert.NotEmpty(t, result.Results[0].Compressed)
		assert.Equal(t, 1.0, result.Results[1].Ratio)
	})

	t.Run("defaults concurrency when non-positive", func(t *testing.T) {
		items := []Item{{Context: "One lonely sentence here with no boundary."}}
		result, err := BatchCompress(context.Background(), items, 0)
		require.NoError(t, err)
		assert.Len(t, result.Results, 1)
	})
}
