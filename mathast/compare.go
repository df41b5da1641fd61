package mathast

import (
	"errors"
	"math"
	"math/rand"

	pkgkv "github.com/coderdayton/localmind/pkg/kv"
)

// CompareOptions tunes the numeric probing Compare falls back to when two
// trees are not structurally identical.
type CompareOptions struct {
	// Probes is the number of random variable assignments tried.
	Probes int
	// Tolerance is the maximum absolute difference between evaluated
	// results still considered equal, absorbing float rounding error.
	Tolerance float64
	// Seed makes probing deterministic across runs.
	Seed int64
}

// DefaultCompareOptions matches spec.md §4.1's equivalence-checking
// defaults: enough probes to catch non-equivalent expressions reliably
// without becoming a performance cliff.
func DefaultCompareOptions() CompareOptions {
	return CompareOptions{Probes: 8, Tolerance: 1e-9, Seed: 1}
}

// ErrDomain is returned by Eval when an assignment sends the expression
// outside its domain (division by zero, etc).
var ErrDomain = errors.New("mathast: value outside domain")

// Eval evaluates n given an assignment of variable names to values.
func Eval(n Node, env pkgkv.KV[string, float64]) (float64, error) {
	switch v := n.(type) {
	case Number:
		return v.Value, nil
	case Variable:
		if v.Name == "pi" {
			return math.Pi, nil
		}
		if v.Name == "e" {
			return math.E, nil
		}
		val, ok := env.Value(v.Name)
		if !ok {
			return 0, errors.New("mathast: unbound variable " + v.Name)
		}
		return val, nil
	case Unary:
		val, err := Eval(v.Operand, env)
		if err != nil {
			return 0, err
		}
		if v.Op == Neg {
			return -val, nil
		}
		return val, nil
	case Binary:
		l, err := Eval(v.Left, env)
		if err != nil {
			return 0, err
		}
		r, err := Eval(v.Right, env)
		if err != nil {
			return 0, err
		}
		switch v.Op {
		case Add:
			return l + r, nil
		case Sub:
			return l - r, nil
		case Mul:
			return l * r, nil
		case Div:
			if r == 0 {
				return 0, ErrDomain
			}
			return l / r, nil
		case Pow:
			if l == 0 && r == 0 {
				return 0, ErrDomain
			}
			if l < 0 && r != math.Trunc(r) {
				return 0, ErrDomain
			}
			return math.Pow(l, r), nil
		}
	}
	return 0, errors.New("mathast: unhandled node type")
}

// Compare reports whether a and b are equivalent: first by exact structural
// equality, then, for trees that share the same free variables, by
// numerically probing random assignments (spec.md §4.1's "structural match
// first, numeric-probe fallback").
func Compare(a, b Node, opts CompareOptions) (bool, error) {
	if Equal(a, b) {
		return true, nil
	}
	varsA := FreeVariables(a)
	varsB := FreeVariables(b)
	if len(varsA) != len(varsB) {
		return false, nil
	}
	names := map[string]struct{}{}
	for _, v := range varsA {
		names[v] = struct{}{}
	}
	for _, v := range varsB {
		if _, ok := names[v]; !ok {
			return false, nil
		}
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	var uniqueNames []string
	for name := range names {
		uniqueNames = append(uniqueNames, name)
	}

	probesRun := 0
	skipped := 0
	const maxAttemptsPerProbe = 5
	const maxSkippedProbes = 20 // every sampled point hit a domain error on at least one side; bail rather than spin
	for probesRun < opts.Probes {
		if skipped >= maxSkippedProbes {
			return true, nil
		}
		env := pkgkv.New[string, float64](len(uniqueNames))
		for _, name := range uniqueNames {
			env.Put(name, rng.Float64()*18-9) // range [-9, 9), avoids trivial 0/1 collisions
		}
		var av, bv float64
		var aerr, berr error
		ok := false
		for attempt := 0; attempt < maxAttemptsPerProbe; attempt++ {
			av, aerr = Eval(a, env)
			bv, berr = Eval(b, env)
			if aerr == nil && berr == nil {
				ok = true
				break
			}
			if !errors.Is(aerr, ErrDomain) && aerr != nil {
				return false, aerr
			}
			if !errors.Is(berr, ErrDomain) && berr != nil {
				return false, berr
			}
			for _, name := range uniqueNames {
				env.Put(name, rng.Float64()*18-9)
			}
		}
		if !ok {
			skipped++ // at least one side kept hitting domain errors; skip this probe
			continue
		}
		if math.Abs(av-bv) > opts.Tolerance {
			return false, nil
		}
		probesRun++
	}
	return true, nil
}
