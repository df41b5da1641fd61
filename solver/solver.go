// Package solver implements the local compute engine's solver library: a
// set of independent, priority-ordered families that each recognize a
// narrow class of question and answer it without an LLM call.
package solver

import "github.com/spf13/cast"

// Type is a bit in the 12-bit solver-type mask the classifier produces.
type Type uint32

const (
	ARITHMETIC  Type = 1 << iota // 1
	FORMULA_T1                   // 2
	FORMULA_T2                   // 4
	FORMULA_T3                   // 8
	FORMULA_T4                   // 16
	WORD_PROBLEM                 // 32
	MULTI_STEP                   // 64
	CALCULUS                     // 128
	FACTS                        // 256
	LOGIC                        // 512
	PROBABILITY                  // 1024
	DERIVATION                   // 2048
)

// ValueKind discriminates ComputeValue's two possible payload shapes.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindText
)

// ComputeValue is the tagged variant a solver's result is expressed in:
// either a number or free text, never both (spec.md §9's re-architecture
// guidance for "dynamic typing of solver results").
type ComputeValue struct {
	Kind ValueKind
	Num  float64
	Str  string
}

// NumberValue builds a numeric ComputeValue.
func NumberValue(v float64) ComputeValue { return ComputeValue{Kind: KindNumber, Num: v} }

// TextValue builds a text ComputeValue.
func TextValue(s string) ComputeValue { return ComputeValue{Kind: KindText, Str: s} }

// Any returns the value boxed as the type downstream callers expect at the
// ComputeResult.Result boundary: float64 for numbers, string for text.
func (v ComputeValue) Any() any {
	if v.Kind == KindNumber {
		return v.Num
	}
	return v.Str
}

// String renders the value as text regardless of its kind, via cast so a
// numeric result formats the same way whether it started as a float or was
// parsed from a regex capture.
func (v ComputeValue) String() string {
	if v.Kind == KindText {
		return v.Str
	}
	return cast.ToString(v.Num)
}

// ComputeResult is the outcome of running a single solver (or the registry)
// against a piece of text.
type ComputeResult struct {
	Solved     bool
	Result     ComputeValue
	Method     string
	Confidence float64
	TimeMS     int64
}

// Unsolved is the canonical "no solver matched" result.
var Unsolved = ComputeResult{Solved: false}

// Solve is a solver family's entry point: given the raw text and its
// lowercased form (callers compute lower once and share it across the
// registry), return a result.
type Solve func(text, lower string) ComputeResult

// Solver is one named, typed, prioritized entry in the registry. Lower
// Priority values run first.
type Solver struct {
	Name        string
	Description string
	Types       Type
	Priority    int
	Run         Solve
}
