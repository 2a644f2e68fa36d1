package bond

import (
	"testing"

	"github.com/abhisek/numbond/internal/problemgen"
)

func TestValidate_SubtractionCanonicalSplit(t *testing.T) {
	// 14 - 8 with the ones-digit split: 4 + 4 = 8, and 4 = 14 mod 10.
	res := Validate(Input{Operand1: 14, Operand2: 8, Op: problemgen.OpSub, Part1: 4, Part2: 4})
	if !res.Success {
		t.Errorf("Success = false, want true: %s", res.Message)
	}
	if !res.MathCorrect || !res.StrategyCorrect {
		t.Errorf("MathCorrect=%v StrategyCorrect=%v, want both true", res.MathCorrect, res.StrategyCorrect)
	}
}

func TestValidate_RightSumWrongStrategy(t *testing.T) {
	// 3 + 5 = 8 but neither part is the ones digit 4.
	res := Validate(Input{Operand1: 14, Operand2: 8, Op: problemgen.OpSub, Part1: 3, Part2: 5})
	if !res.Success {
		t.Errorf("baseline Success = false, want true (math is right)")
	}
	if !res.MathCorrect {
		t.Errorf("MathCorrect = false, want true")
	}
	if res.StrategyCorrect {
		t.Errorf("StrategyCorrect = true, want false")
	}
}

func TestValidateStrict_RightSumWrongStrategy(t *testing.T) {
	res := ValidateStrict(Input{Operand1: 14, Operand2: 8, Op: problemgen.OpSub, Part1: 3, Part2: 5})
	if res.Success {
		t.Errorf("strict Success = true, want false")
	}
	if !res.MathCorrect {
		t.Errorf("MathCorrect = false, want true")
	}
}

func TestValidate_WrongSum(t *testing.T) {
	res := Validate(Input{Operand1: 14, Operand2: 8, Op: problemgen.OpSub, Part1: 3, Part2: 4})
	if res.Success || res.MathCorrect {
		t.Errorf("Success=%v MathCorrect=%v, want both false", res.Success, res.MathCorrect)
	}
}

func TestValidate_AdditionMakeTenSplit(t *testing.T) {
	// 8 + 7: need 2 to reach 10, so (2, 5) is the taught split.
	res := Validate(Input{Operand1: 8, Operand2: 7, Op: problemgen.OpAdd, Part1: 2, Part2: 5})
	if !res.Success || !res.StrategyCorrect {
		t.Errorf("Success=%v StrategyCorrect=%v, want both true", res.Success, res.StrategyCorrect)
	}
}

func TestValidate_AdditionPartsSwapped(t *testing.T) {
	res := Validate(Input{Operand1: 8, Operand2: 7, Op: problemgen.OpAdd, Part1: 5, Part2: 2})
	if !res.StrategyCorrect {
		t.Errorf("swapped parts should still match the strategy")
	}
}

func TestValidate_MinuendEndingInZero(t *testing.T) {
	tests := []struct {
		name         string
		p1, p2       int
		wantStrategy bool
	}{
		{"part of ten", 10, 3, true},
		{"even split", 7, 7, true},
		{"neither", 9, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(Input{Operand1: 20, Operand2: tt.p1 + tt.p2, Op: problemgen.OpSub, Part1: tt.p1, Part2: tt.p2})
			if res.StrategyCorrect != tt.wantStrategy {
				t.Errorf("StrategyCorrect = %v, want %v", res.StrategyCorrect, tt.wantStrategy)
			}
		})
	}
}

func TestValidate_Soundness(t *testing.T) {
	// Every split of the operand is mathematically valid; everything
	// else is not.
	for operand2 := 2; operand2 <= 18; operand2++ {
		for p1 := 0; p1 <= operand2; p1++ {
			res := Validate(Input{Operand1: 14, Operand2: operand2, Op: problemgen.OpSub, Part1: p1, Part2: operand2 - p1})
			if !res.MathCorrect {
				t.Fatalf("split (%d, %d) of %d rejected", p1, operand2-p1, operand2)
			}
		}
		res := Validate(Input{Operand1: 14, Operand2: operand2, Op: problemgen.OpSub, Part1: 1, Part2: operand2})
		if res.MathCorrect {
			t.Fatalf("split (1, %d) of %d accepted", operand2, operand2)
		}
	}
}

func TestValidate_MalformedInput(t *testing.T) {
	res := Validate(Input{Operand1: -4, Operand2: 8, Op: problemgen.OpSub, Part1: 4, Part2: 4})
	if res.Success {
		t.Errorf("negative operand accepted")
	}
	if res.Message == "" {
		t.Errorf("no explanatory message for malformed input")
	}

	res = Validate(Input{Operand1: 14, Operand2: 8, Op: "*", Part1: 4, Part2: 4})
	if res.Success {
		t.Errorf("unknown operator accepted")
	}
}

func TestValidate_ProposedSolutionAlwaysPresent(t *testing.T) {
	res := Validate(Input{Operand1: 14, Operand2: 8, Op: problemgen.OpSub, Part1: 1, Part2: 1})
	if res.ProposedSolution == "" {
		t.Errorf("no proposed solution on a wrong answer")
	}
	want := "14 - 4 = 10, then 10 - 4 = 6"
	if res.ProposedSolution != want {
		t.Errorf("ProposedSolution = %q, want %q", res.ProposedSolution, want)
	}
}

func TestCheckAnswer(t *testing.T) {
	p := problemgen.Problem{Operand1: 8, Operand2: 7, Op: problemgen.OpAdd, Answer: 15}
	if !CheckAnswer(p, 15) {
		t.Errorf("correct answer rejected")
	}
	if CheckAnswer(p, 14) {
		t.Errorf("wrong answer accepted")
	}
}
