package solver

import (
	"strconv"

	"github.com/coderdayton/localmind/internal/rx"
)

// Word-problem patterns (spec.md §4.4, priority 30): age projection,
// percent change, profit/loss, and distance-speed-time, each closed-form
// rather than requiring the multi-entity resolution of the multi-step
// solver.
var (
	ageInYearsPattern = rx.Compile(`is\s+(\d+)\s+years?\s+old.{0,60}?in\s+(\d+)\s+years?`)
	ageAgoPattern     = rx.Compile(`is\s+(\d+)\s+years?\s+old.{0,60}?(\d+)\s+years?\s+ago`)

	percentChangePattern = rx.Compile(`percent(?:age)?\s+change\s+from\s+(-?\d+(?:\.\d+)?)\s+to\s+(-?\d+(?:\.\d+)?)`)

	profitPattern = rx.Compile(`bought\s+.{0,40}?for\s+\$?(\d+(?:\.\d+)?).{0,60}?sold\s+.{0,40}?for\s+\$?(\d+(?:\.\d+)?)`)
	profitPercent = rx.Compile(`percent(?:age)?\s+profit|profit\s+percent(?:age)?`)
	lossPercent   = rx.Compile(`percent(?:age)?\s+loss|loss\s+percent(?:age)?`)

	distanceSpeedTimePattern = rx.Compile(`(?:travels?|drives?|moves?)\s+at\s+(\d+(?:\.\d+)?)\s*(?:mph|km/h|m/s)\s+for\s+(\d+(?:\.\d+)?)\s+hours?`)
)

// WordProblem solves age-projection, percent-change, profit/loss, and
// distance-speed-time word problems.
func WordProblem(text, lower string) ComputeResult {
	if m, _ := ageInYearsPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		age, errA := strconv.Atoi(groups[1].String())
		years, errY := strconv.Atoi(groups[2].String())
		if errA == nil && errY == nil {
			return ComputeResult{Solved: true, Result: NumberValue(float64(age + years)), Method: "word_age_projection", Confidence: 0.85}
		}
	}

	if m, _ := ageAgoPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		age, errA := strconv.Atoi(groups[1].String())
		years, errY := strconv.Atoi(groups[2].String())
		if errA == nil && errY == nil {
			return ComputeResult{Solved: true, Result: NumberValue(float64(age - years)), Method: "word_age_projection", Confidence: 0.85}
		}
	}

	if m, _ := percentChangePattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		from, _ := parseFloatLenient(groups[1].String())
		to, _ := parseFloatLenient(groups[2].String())
		if from != 0 {
			return ComputeResult{Solved: true, Result: NumberValue(round2((to - from) / from * 100)), Method: "word_percent_change", Confidence: 0.85}
		}
	}

	if m, _ := profitPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		cost, _ := parseFloatLenient(groups[1].String())
		sale, _ := parseFloatLenient(groups[2].String())
		profit := sale - cost
		if rx.MatchString(profitPercent, lower) || rx.MatchString(lossPercent, lower) {
			if cost != 0 {
				return ComputeResult{Solved: true, Result: NumberValue(round2(profit / cost * 100)), Method: "word_profit_percent", Confidence: 0.85}
			}
		}
		return ComputeResult{Solved: true, Result: NumberValue(round2(profit)), Method: "word_profit", Confidence: 0.85}
	}

	if m, _ := distanceSpeedTimePattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		speed, _ := parseFloatLenient(groups[1].String())
		time, _ := parseFloatLenient(groups[2].String())
		return ComputeResult{Solved: true, Result: NumberValue(round2(speed * time)), Method: "word_distance", Confidence: 0.85}
	}

	return Unsolved
}

// WordProblemSolver wires WordProblem into the registry at priority 30.
var WordProblemSolver = Solver{
	Name:        "word_problem",
	Description: "age projection, percent change, profit/loss, distance-speed-time",
	Types:       WORD_PROBLEM,
	Priority:    30,
	Run:         WordProblem,
}
