// Package bond validates a learner's two-part decomposition of an
// operand against both arithmetic and the taught strategy.
package bond

import (
	"fmt"

	"github.com/abhisek/numbond/internal/problemgen"
)

// Result reports the outcome of checking one decomposition.
type Result struct {
	// Success is the overall verdict. The baseline validator requires
	// only MathCorrect; the strict variant also requires StrategyCorrect.
	Success bool `json:"success"`

	// MathCorrect is true when the two parts sum to the second operand.
	MathCorrect bool `json:"math_correct"`

	// StrategyCorrect is true when the decomposition matches the taught
	// strategy. Diagnostic only in the baseline validator.
	StrategyCorrect bool `json:"strategy_correct"`

	// Message explains the verdict in child-appropriate language.
	Message string `json:"message"`

	// ProposedSolution is a worked example built from the canonical
	// breakdown, shown regardless of outcome.
	ProposedSolution string `json:"proposed_solution"`
}

// Input is one decomposition attempt to validate.
type Input struct {
	Operand1 int
	Operand2 int
	Op       problemgen.Op
	Part1    int
	Part2    int
}

// Validate checks a decomposition with the baseline rule: success is
// mathematical correctness; strategy match is reported but not gating.
// Malformed input (negative operands, unknown operator) is rejected
// with Success=false rather than an error.
func Validate(in Input) Result {
	return validate(in, false)
}

// ValidateStrict additionally requires the decomposition to match the
// taught strategy, with distinct messages for a wrong sum versus a
// right sum split the unexpected way.
func ValidateStrict(in Input) Result {
	return validate(in, true)
}

func validate(in Input, strict bool) Result {
	res := Result{ProposedSolution: proposedSolution(in)}

	if in.Operand1 < 0 || in.Operand2 < 0 {
		res.Message = "Numbers in a bond can't be negative."
		return res
	}
	if !in.Op.Valid() {
		res.Message = fmt.Sprintf("Unknown operator %q.", string(in.Op))
		return res
	}

	res.MathCorrect = in.Part1+in.Part2 == in.Operand2
	res.StrategyCorrect = res.MathCorrect && strategyMatches(in)

	if strict {
		res.Success = res.MathCorrect && res.StrategyCorrect
	} else {
		res.Success = res.MathCorrect
	}

	switch {
	case !res.MathCorrect:
		res.Message = fmt.Sprintf("%d and %d don't make %d. Try again!", in.Part1, in.Part2, in.Operand2)
	case !res.StrategyCorrect && strict:
		res.Message = fmt.Sprintf("%d and %d do make %d, but there's a split that makes the ten easier. Look at the example!", in.Part1, in.Part2, in.Operand2)
	case !res.StrategyCorrect:
		res.Message = "Correct! There's also a split that lines up with the ten."
	default:
		res.Message = "Great split!"
	}

	return res
}

// strategyMatches checks the decomposition against the taught strategy.
//
// Subtraction: one part should equal the minuend's ones digit; for a
// minuend ending in 0, a part of 10 or an even split is accepted.
// Addition: the first part should complete the first operand to the
// next ten.
func strategyMatches(in Input) bool {
	if in.Op == problemgen.OpSub {
		ones := in.Operand1 % 10
		if ones == 0 {
			if in.Part1 == 10 || in.Part2 == 10 {
				return true
			}
			return in.Part1 == in.Part2
		}
		return in.Part1 == ones || in.Part2 == ones
	}

	need := 10 - in.Operand1%10
	return in.Part1 == need || in.Part2 == need
}

// proposedSolution renders the canonical worked example for the pair.
func proposedSolution(in Input) string {
	if !in.Op.Valid() || in.Operand1 < 0 || in.Operand2 < 0 {
		return ""
	}

	bd := problemgen.CanonicalBreakdownFor(in.Op, in.Operand1, in.Operand2)

	if in.Op == problemgen.OpSub {
		mid := in.Operand1 - bd.First
		return fmt.Sprintf("%d - %d = %d, then %d - %d = %d",
			in.Operand1, bd.First, mid, mid, bd.Second, mid-bd.Second)
	}

	mid := in.Operand1 + bd.First
	return fmt.Sprintf("%d + %d = %d, then %d + %d = %d",
		in.Operand1, bd.First, mid, mid, bd.Second, mid+bd.Second)
}

// CheckAnswer grades the final answer against the problem.
func CheckAnswer(p problemgen.Problem, answer int) bool {
	return answer == p.Answer
}
