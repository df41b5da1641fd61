package compress

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/coderdayton/localmind/pkg/safe"
)

// BatchCompress runs Compress over items concurrently, preserving input
// order, grounded on the same errgroup-with-order pattern as
// compute.BatchCompute.
func BatchCompress(ctx context.Context, items []Item, concurrency int) (BatchCompressResult, error) {
	if concurrency <= 0 {
		concurrency = 4
	}
	results := make([]CompressionResult, len(items))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for i, item := range items {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			var slotErr error
			safe.WithRecover(func() {
				results[i] = Compress(item.Context, item.Query, item.Options)
			}, func(e error) { slotErr = e })()
			return slotErr
		})
	}
	if err := group.Wait(); err != nil {
		return BatchCompressResult{}, err
	}
	return BatchCompressResult{Results: results}, nil
}
