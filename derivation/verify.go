package derivation

import "strconv"

// Verify checks a derivation chain: each step's own equality must hold, and
// each step's lhs must follow continuously from the previous step's rhs.
// The first failing check wins (spec.md §4.2).
func Verify(steps []Step) Result {
	result := Result{Valid: true, Steps: make([]StepVerification, 0, len(steps))}

	var previous *parsedStep
	for i, step := range steps {
		stepNumber := i + 1
		parsed := parseStep(step)

		if !compareNodes(parsed.lhs, parsed.rhs) {
			sv := StepVerification{
				Step:  stepNumber,
				Valid: false,
				Error: "step " + strconv.Itoa(stepNumber) + ": " + step.LHS + " is not equivalent to " + step.RHS,
			}
			result.Steps = append(result.Steps, sv)
			result.Valid = false
			result.InvalidStep = stepNumber
			result.ErrorKind = ErrorInvalidTransformation
			result.Error = sv.Error
			return result
		}

		if previous != nil && !compareNodes(previous.rhs, parsed.lhs) {
			sv := StepVerification{
				Step:  stepNumber,
				Valid: false,
				Error: "step " + strconv.Itoa(stepNumber) + ": " + steps[i-1].RHS + " does not continue into " + step.LHS,
			}
			result.Steps = append(result.Steps, sv)
			result.Valid = false
			result.InvalidStep = stepNumber
			result.ErrorKind = ErrorDiscontinuity
			result.Error = sv.Error
			return result
		}

		result.Steps = append(result.Steps, StepVerification{Step: stepNumber, Valid: true})
		p := parsed
		previous = &p
	}
	return result
}
