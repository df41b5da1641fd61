package classify

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/coderdayton/localmind/solver"
)

// Registry holds the priority-ordered solver library and dispatches a
// classified mask to the first solver that reports solved:true (spec.md
// §4.5).
type Registry struct {
	mu      sync.RWMutex
	solvers []solver.Solver
	sorted  []solver.Solver
	dirty   bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a solver family. Registration order breaks ties between
// solvers sharing a priority, matching the deterministic-dispatch
// guarantee in spec.md §5.
func (r *Registry) Register(s solver.Solver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solvers = append(r.solvers, s)
	r.dirty = true
}

// All returns every registered solver sorted by ascending priority,
// caching the sort until the next Register call.
func (r *Registry) All() []solver.Solver {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dirty {
		r.sorted = append([]solver.Solver(nil), r.solvers...)
		sort.SliceStable(r.sorted, func(i, j int) bool {
			return r.sorted[i].Priority < r.sorted[j].Priority
		})
		r.dirty = false
	}
	return r.sorted
}

// ForMask returns the registered solvers whose Types intersect mask,
// preserving priority order.
func (r *Registry) ForMask(mask solver.Type) []solver.Solver {
	return lo.Filter(r.All(), func(s solver.Solver, _ int) bool {
		return s.Types&mask != 0
	})
}

// Run dispatches text/lower to every solver matching mask in priority
// order, returning the first solved result, or solver.Unsolved if none
// matches.
func (r *Registry) Run(text, lower string, mask solver.Type) solver.ComputeResult {
	for _, s := range r.ForMask(mask) {
		if result := s.Run(text, lower); result.Solved {
			return result
		}
	}
	return solver.Unsolved
}

// Default returns the registry wired with every solver family this
// module ships.
func Default() *Registry {
	r := NewRegistry()
	for _, s := range []solver.Solver{
		solver.FactsSolver,
		solver.ArithmeticSolver,
		solver.ProbabilitySolver,
		solver.LogicSolver,
		solver.FormulaT1Solver,
		solver.FormulaT2Solver,
		solver.FormulaT3Solver,
		solver.FormulaT4Solver,
		solver.CRTSolver,
		solver.WordProblemSolver,
		solver.MultiStepSolver,
		solver.CalculusSolver,
		solver.DerivationSolver,
	} {
		r.Register(s)
	}
	return r
}
