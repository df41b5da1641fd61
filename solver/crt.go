package solver

import (
	"strconv"

	"github.com/coderdayton/localmind/internal/rx"
)

// Package-level patterns for the Cognitive Reflection Test "trap" word
// problems (spec.md §4.4, priority 25): each has a well-known correct
// answer that differs from the naive first-instinct answer.
var (
	batAndBallPattern = rx.Compile(`bat\s+and\s+(?:a\s+)?ball\s+cost\s+\$?(\d+(?:\.\d+)?).{0,80}?\$?(\d+(?:\.\d+)?)\s+more\s+than\s+the\s+ball`)
	centsRequested    = rx.Compile(`\bin\s+cents\b`)

	lilyPadPattern = rx.Compile(`lily\s*pad.{0,60}?doubles?\s+every\s+day.{0,80}?(\d+)\s+days?\s+to\s+cover`)

	widgetMachinePattern = rx.Compile(`if\s+(?:it\s+takes\s+)?(\d+)\s+machines?\s+(\d+)\s+minutes?\s+to\s+make\s+(\d+)\s+widgets?.{0,80}?(\d+)\s+machines?\s+to\s+make\s+(\d+)\s+widgets?`)

	harmonicMeanPattern = rx.Compile(`first\s+half.{0,40}?(\d+(?:\.\d+)?)\s*(?:mph|km/h)?.{0,60}?second\s+half.{0,40}?(\d+(?:\.\d+)?)\s*(?:mph|km/h)?.{0,40}?average\s+speed`)

	catchUpPattern = rx.Compile(`(\d+(?:\.\d+)?)\s*(?:hours?|hrs?)\s+(?:head\s*start|before).{0,80}?(\d+(?:\.\d+)?)\s*(?:mph|km/h).{0,80}?(\d+(?:\.\d+)?)\s*(?:mph|km/h)`)

	sockDrawerPattern = rx.Compile(`(\d+)\s+colors?\s+of\s+socks?.{0,80}?(?:guarantee|ensure|sure)\s+(?:a\s+)?(?:matching\s+)?pair`)
)

// CRT solves the standard Cognitive Reflection Test word-problem families.
func CRT(text, lower string) ComputeResult {
	if m, _ := batAndBallPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		total, _ := parseFloatLenient(groups[1].String())
		diff, _ := parseFloatLenient(groups[2].String())
		ball := (total - diff) / 2
		if rx.MatchString(centsRequested, lower) {
			return ComputeResult{Solved: true, Result: NumberValue(round2(ball * 100)), Method: "crt_bat_ball", Confidence: 0.9}
		}
		return ComputeResult{Solved: true, Result: NumberValue(round2(ball)), Method: "crt_bat_ball", Confidence: 0.9}
	}

	if m, _ := lilyPadPattern.FindStringMatch(lower); m != nil {
		days, err := strconv.Atoi(m.Groups()[1].String())
		if err == nil {
			return ComputeResult{Solved: true, Result: NumberValue(float64(days - 1)), Method: "crt_lily_pad", Confidence: 0.9}
		}
	}

	if m, _ := widgetMachinePattern.FindStringMatch(lower); m != nil {
		minutes, err := strconv.Atoi(m.Groups()[2].String())
		if err == nil {
			return ComputeResult{Solved: true, Result: NumberValue(float64(minutes)), Method: "crt_widget_machine", Confidence: 0.9}
		}
	}

	if m, _ := harmonicMeanPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		a, _ := parseFloatLenient(groups[1].String())
		b, _ := parseFloatLenient(groups[2].String())
		if a+b != 0 {
			return ComputeResult{Solved: true, Result: NumberValue(round2(2 * a * b / (a + b))), Method: "crt_harmonic_mean", Confidence: 0.85}
		}
	}

	if m, _ := catchUpPattern.FindStringMatch(lower); m != nil {
		groups := m.Groups()
		headStart, _ := parseFloatLenient(groups[1].String())
		leaderSpeed, _ := parseFloatLenient(groups[2].String())
		chaserSpeed, _ := parseFloatLenient(groups[3].String())
		if chaserSpeed > leaderSpeed {
			headDistance := leaderSpeed * headStart
			time := headDistance / (chaserSpeed - leaderSpeed)
			return ComputeResult{Solved: true, Result: NumberValue(round2(time)), Method: "crt_catch_up", Confidence: 0.8}
		}
	}

	if m, _ := sockDrawerPattern.FindStringMatch(lower); m != nil {
		colors, err := strconv.Atoi(m.Groups()[1].String())
		if err == nil {
			return ComputeResult{Solved: true, Result: NumberValue(float64(colors + 1)), Method: "crt_sock_drawer", Confidence: 0.9}
		}
	}

	return Unsolved
}

func round2(v float64) float64 {
	return float64(int64(v*100+sign(v)*0.5)) / 100
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// CRTSolver wires CRT into the registry at priority 25.
var CRTSolver = Solver{
	Name:        "crt",
	Description: "Cognitive Reflection Test trap word problems",
	Types:       WORD_PROBLEM,
	Priority:    25,
	Run:         CRT,
}
