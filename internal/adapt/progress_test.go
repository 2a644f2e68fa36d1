package adapt

import (
	"testing"

	"github.com/abhisek/numbond/internal/attempt"
	"github.com/abhisek/numbond/internal/problemgen"
)

// trendWindow builds 20 attempts: the first 10 with priorCorrect
// correct answers at priorTime, the last 10 with recentCorrect at
// recentTime.
func trendWindow(priorCorrect, recentCorrect int, priorTime, recentTime float64) []attempt.Record {
	window := make([]attempt.Record, 20)
	for i := range window {
		r := attempt.Record{Level: 2, Op: problemgen.OpSub, Operand1: 14, Operand2: 8}
		if i < 10 {
			r.Correct = i < priorCorrect
			r.TimeSecs = priorTime
		} else {
			r.Correct = i-10 < recentCorrect
			r.TimeSecs = recentTime
		}
		window[i] = r
	}
	return window
}

func TestBuildProgress_Improving(t *testing.T) {
	report := BuildProgress(trendWindow(5, 8, 10, 10), nil)
	if report.Trend != TrendImproving {
		t.Errorf("Trend = %q, want %q (accuracy delta %f)", report.Trend, TrendImproving, report.AccuracyDelta)
	}
}

func TestBuildProgress_ImprovingOnSpeed(t *testing.T) {
	report := BuildProgress(trendWindow(7, 7, 14, 9), nil)
	if report.Trend != TrendImproving {
		t.Errorf("Trend = %q, want %q (time delta %f)", report.Trend, TrendImproving, report.TimeDelta)
	}
}

func TestBuildProgress_Declining(t *testing.T) {
	report := BuildProgress(trendWindow(9, 5, 10, 10), nil)
	if report.Trend != TrendDeclining {
		t.Errorf("Trend = %q, want %q", report.Trend, TrendDeclining)
	}
}

func TestBuildProgress_Stable(t *testing.T) {
	report := BuildProgress(trendWindow(7, 7, 10, 10), nil)
	if report.Trend != TrendStable {
		t.Errorf("Trend = %q, want %q", report.Trend, TrendStable)
	}
}

func TestBuildProgress_TooFewAttempts(t *testing.T) {
	report := BuildProgress(makeWindow(5, 5, 10), nil)
	if report.Trend != TrendStable {
		t.Errorf("Trend = %q, want %q for a short window", report.Trend, TrendStable)
	}
}

func TestBuildProgress_StrengthsAndWeaknesses(t *testing.T) {
	var window []attempt.Record
	// 5 correct crossing_ten attempts.
	for i := 0; i < 5; i++ {
		window = append(window, attempt.Record{Op: problemgen.OpSub, Operand1: 14, Operand2: 8, Correct: true})
	}
	// 1 of 4 correct on big subtraction.
	for i := 0; i < 4; i++ {
		window = append(window, attempt.Record{Op: problemgen.OpSub, Operand1: 72, Operand2: 45, Correct: i == 0})
	}
	// Too few attempts in this category to count either way.
	window = append(window, attempt.Record{Op: problemgen.OpAdd, Operand1: 3, Operand2: 4, Correct: false})

	report := BuildProgress(window, nil)
	if len(report.Strengths) != 1 || report.Strengths[0] != attempt.CategoryCrossingTen {
		t.Errorf("Strengths = %v, want [crossing_ten]", report.Strengths)
	}
	if len(report.Weaknesses) != 1 || report.Weaknesses[0] != attempt.CategoryBasicSubtraction {
		t.Errorf("Weaknesses = %v, want [basic_subtraction]", report.Weaknesses)
	}
}
