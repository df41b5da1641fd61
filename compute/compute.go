// Package compute is the local compute engine's orchestrator: it wires the
// classifier, solver registry, and compute cache into the three entry
// points a caller (prompt-handling code upstream of this library) actually
// uses.
package compute

import (
	"strings"
	"time"

	"github.com/coderdayton/localmind/classify"
	"github.com/coderdayton/localmind/internal/rx"
	"github.com/coderdayton/localmind/solver"
)

// defaultRegistry and defaultCache are the orchestrator's process-wide
// shared state; both are safe for concurrent use (classify.Registry's
// sort cache is behind a mutex, classify.ComputeCache is behind a mutex).
var (
	defaultRegistry = classify.Default()
	defaultCache    = classify.NewComputeCache(classify.DefaultCacheCapacity)
)

// TryLocalCompute classifies text, dispatches it to the solver registry,
// and returns the first solved result. When useCache is true, a prior
// successful result for the exact same text is returned with TimeMS
// zeroed instead of re-running the solvers.
func TryLocalCompute(text string, useCache bool) solver.ComputeResult {
	if useCache {
		if cached, ok := defaultCache.Get(text); ok {
			return cached
		}
	}

	start := time.Now()
	lower := strings.ToLower(text)
	mask := classify.Classify(text)
	result := defaultRegistry.Run(text, lower, mask)
	result.TimeMS = time.Since(start).Milliseconds()

	if useCache {
		defaultCache.Put(text, result)
	}
	return result
}

// AugmentedResult is the outcome of inlining computed answers into a
// longer piece of text.
type AugmentedResult struct {
	Augmented       string
	Computations    []solver.ComputeResult
	HasComputations bool
}

// sentenceSplit finds the boundary between one computable span and the
// next; unlike the compression engine's sentence splitter, it does not
// need abbreviation-merge logic, since a solver family itself rejects a
// fragment it can't parse, so over-splitting on "Dr. Smith is 40." costs
// nothing here.
var sentenceSplit = rx.Compile(`(?<=[.!?])\s+`)

// hit is a computed span pending injection into the original text.
type hit struct {
	end    int
	result solver.ComputeResult
}

// computeHits finds every computable span in text and returns the
// solver result for each, in left-to-right order.
func computeHits(text string) []hit {
	var hits []hit
	for _, span := range rx.SplitIndices(sentenceSplit, text) {
		segment := strings.TrimSpace(text[span[0]:span[1]])
		if segment == "" {
			continue
		}
		if result := TryLocalCompute(segment, true); result.Solved {
			hits = append(hits, hit{end: span[1], result: result})
		}
	}
	return hits
}

// spliceMarkers inlines " [=<answer>]" immediately after each hit's
// originating span, processing right-to-left so earlier byte offsets in
// text stay valid as later ones are inserted.
func spliceMarkers(text string, hits []hit) string {
	augmented := text
	for i := len(hits) - 1; i >= 0; i-- {
		marker := " [=" + hits[i].result.Result.String() + "]"
		augmented = augmented[:hits[i].end] + marker + augmented[hits[i].end:]
	}
	return augmented
}

func hitResults(hits []hit) []solver.ComputeResult {
	results := make([]solver.ComputeResult, len(hits))
	for i, h := range hits {
		results[i] = h.result
	}
	return results
}

// ExtractAndCompute finds every computable span in text, solves each, and
// returns text with answers inlined alongside the raw results.
func ExtractAndCompute(text string) AugmentedResult {
	hits := computeHits(text)
	return AugmentedResult{
		Augmented:       spliceMarkers(text, hits),
		Computations:    hitResults(hits),
		HasComputations: len(hits) > 0,
	}
}

// Context is the available surrounding text a caller can supply to
// ContextAwareCompute, in descending priority order.
type Context struct {
	SystemPrompt string
	UserQuery    string
	Thought      string
}

// ContextAwareResult is an AugmentedResult annotated with the domain mask
// that filtered it.
type ContextAwareResult struct {
	AugmentedResult
	Domain solver.Type
}

// filterHits drops hits whose method's solver type doesn't intersect
// mask. A zero mask passes every hit through.
func filterHits(hits []hit, mask solver.Type) []hit {
	if mask == 0 {
		return hits
	}
	kept := make([]hit, 0, len(hits))
	for _, h := range hits {
		if t, ok := classify.MethodSolverType[h.result.Method]; ok && t&mask != 0 {
			kept = append(kept, h)
		}
	}
	return kept
}

// ContextAwareCompute detects the relevant solver domain from whichever of
// SystemPrompt, UserQuery, or Thought is present, preferring the prompt
// over the query over the thought, then extracts and computes over
// Thought and drops computations outside that domain before re-injecting.
func ContextAwareCompute(c Context) ContextAwareResult {
	domain := classify.DetectDomain(c.SystemPrompt)
	if domain == 0 {
		domain = classify.DetectDomain(c.UserQuery)
	}
	if domain == 0 {
		domain = classify.DetectDomain(c.Thought)
	}

	hits := filterHits(computeHits(c.Thought), domain)
	return ContextAwareResult{
		AugmentedResult: AugmentedResult{
			Augmented:       spliceMarkers(c.Thought, hits),
			Computations:    hitResults(hits),
			HasComputations: len(hits) > 0,
		},
		Domain: domain,
	}
}
