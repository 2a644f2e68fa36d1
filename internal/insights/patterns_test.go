package insights

import (
	"testing"

	"github.com/abhisek/numbond/internal/attempt"
	"github.com/abhisek/numbond/internal/problemgen"
)

// bucket builds n attempts with the given shape; the first `correct`
// are marked correct.
func bucket(n, correct int, op problemgen.Op, operand1 int, strategy problemgen.Strategy, timeSecs float64, hint bool) []attempt.Record {
	records := make([]attempt.Record, n)
	for i := range records {
		records[i] = attempt.Record{
			Op:       op,
			Operand1: operand1,
			Operand2: 4,
			Strategy: strategy,
			Correct:  i < correct,
			TimeSecs: timeSecs,
			HintUsed: hint,
		}
	}
	return records
}

func findPattern(patterns []LearningPattern, dim Dimension, value string) (LearningPattern, bool) {
	for _, p := range patterns {
		if p.Dim == dim && p.Value == value {
			return p, true
		}
	}
	return LearningPattern{}, false
}

func TestMinePatterns_StrengthNeedsAccuracyAndPace(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		timeSecs float64
		want     bool
	}{
		{"fast and accurate", 9, 8, true},
		{"accurate but slow", 9, 20, false},
		{"fast but inaccurate", 7, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := bucket(10, tt.correct, problemgen.OpAdd, 7, problemgen.StrategyBasic, tt.timeSecs, false)
			patterns := minePatterns(records)
			p, ok := findPattern(patterns, DimensionOperation, "addition")
			if tt.want {
				if !ok || p.Type != PatternStrength {
					t.Errorf("expected a strength pattern for addition, got %+v (found=%v)", p, ok)
				}
			} else if ok && p.Type == PatternStrength {
				t.Errorf("did not expect a strength pattern, got %+v", p)
			}
		})
	}
}

func TestMinePatterns_WeaknessIgnoresPace(t *testing.T) {
	// 4/10 correct but quick: still a weakness.
	records := bucket(10, 4, problemgen.OpSub, 14, problemgen.StrategyCrossing, 5, false)
	patterns := minePatterns(records)

	p, ok := findPattern(patterns, DimensionOperation, "subtraction")
	if !ok || p.Type != PatternWeakness {
		t.Fatalf("expected a subtraction weakness, got %+v (found=%v)", p, ok)
	}
	if p.Accuracy != 0.4 {
		t.Errorf("Accuracy = %f, want 0.4", p.Accuracy)
	}
}

func TestMinePatterns_MinimumAttempts(t *testing.T) {
	// Two misses in a category say nothing yet.
	records := bucket(2, 0, problemgen.OpAdd, 8, problemgen.StrategyCrossing, 10, false)
	if patterns := minePatterns(records); len(patterns) != 0 {
		t.Errorf("expected no patterns from 2 attempts, got %v", patterns)
	}
}

func TestMinePatterns_AllThreeDimensions(t *testing.T) {
	// One bucket per dimension: op=addition, strategy=crossing,
	// magnitude=single_digit. All three should surface as strengths.
	records := bucket(6, 6, problemgen.OpAdd, 8, problemgen.StrategyCrossing, 7, false)
	patterns := minePatterns(records)

	for _, want := range []struct {
		dim   Dimension
		value string
	}{
		{DimensionOperation, "addition"},
		{DimensionStrategy, string(problemgen.StrategyCrossing)},
		{DimensionMagnitude, "single_digit"},
	} {
		if _, ok := findPattern(patterns, want.dim, want.value); !ok {
			t.Errorf("missing pattern for %s:%s in %v", want.dim, want.value, patterns)
		}
	}
}

func TestMinePatterns_HintRate(t *testing.T) {
	records := bucket(10, 5, problemgen.OpSub, 43, problemgen.StrategyCrossing, 12, true)
	patterns := minePatterns(records)

	p, ok := findPattern(patterns, DimensionMagnitude, "double_digit")
	if !ok {
		t.Fatalf("expected a double_digit pattern, got %v", patterns)
	}
	if p.HintRate != 1.0 {
		t.Errorf("HintRate = %f, want 1.0", p.HintRate)
	}
}

func TestMagnitudeBucket(t *testing.T) {
	tests := []struct {
		operand int
		want    string
	}{
		{3, "single_digit"},
		{9, "single_digit"},
		{10, "double_digit"},
		{99, "double_digit"},
		{100, "triple_digit"},
		{847, "triple_digit"},
	}
	for _, tt := range tests {
		if got := magnitudeBucket(tt.operand); got != tt.want {
			t.Errorf("magnitudeBucket(%d) = %q, want %q", tt.operand, got, tt.want)
		}
	}
}
