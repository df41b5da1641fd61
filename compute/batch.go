package compute

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/coderdayton/localmind/pkg/safe"
	"github.com/coderdayton/localmind/solver"
)

// dedup collapses concurrent TryLocalCompute calls for the same input text
// within a single batch, so two identical questions run the solvers once
// and both read the same cached answer (spec.md §5's cache-is-shared-state
// rule, extended to the concurrent case).
var dedup singleflight.Group

// BatchComputeResult preserves input order across concurrent computation.
type BatchComputeResult struct {
	Results []solver.ComputeResult
}

// BatchCompute runs TryLocalCompute over texts concurrently, bounded by
// concurrency (a value <= 0 defaults to 4), preserving input order in the
// result. Mirrors flow.Batch.runN's order-via-index-slots pattern.
func BatchCompute(ctx context.Context, texts []string, concurrency int) (BatchComputeResult, error) {
	if concurrency <= 0 {
		concurrency = 4
	}

	order := make([]*solver.ComputeResult, len(texts))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, text := range texts {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			var slotErr error
			safe.WithRecover(func() {
				v, err, _ := dedup.Do(text, func() (any, error) {
					return TryLocalCompute(text, true), nil
				})
				if err != nil {
					slotErr = err
					return
				}
				result := v.(solver.ComputeResult)
				order[i] = &result
			}, func(e error) { slotErr = e })()
			return slotErr
		})
	}

	if err := group.Wait(); err != nil {
		return BatchComputeResult{}, err
	}

	results := make([]solver.ComputeResult, len(order))
	for i, r := range order {
		if r != nil {
			results[i] = *r
		} else {
			results[i] = solver.Unsolved
		}
	}
	return BatchComputeResult{Results: results}, nil
}
