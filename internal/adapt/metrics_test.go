package adapt

import (
	"math"
	"testing"

	"github.com/abhisek/numbond/internal/attempt"
	"github.com/abhisek/numbond/internal/problemgen"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// makeWindow builds n attempts; correct controls how many of the first
// records are correct.
func makeWindow(n, correct int, timeSecs float64) []attempt.Record {
	window := make([]attempt.Record, n)
	for i := range window {
		window[i] = attempt.Record{
			Level:    2,
			Op:       problemgen.OpSub,
			Operand1: 14,
			Operand2: 8,
			Correct:  i < correct,
			TimeSecs: timeSecs,
		}
	}
	return window
}

func TestCompute_EmptyWindow(t *testing.T) {
	m := Compute(nil)
	if m.Accuracy != 0 || m.AverageTime != 0 || m.HintRate != 0 || m.ConsecutiveIncorrect != 0 {
		t.Errorf("empty window metrics = %+v, want zeros", m)
	}
	if m.PerLevelAccuracy == nil {
		t.Errorf("PerLevelAccuracy is nil, want empty map")
	}
}

func TestCompute_Accuracy(t *testing.T) {
	m := Compute(makeWindow(10, 7, 5))
	if !almostEqual(m.Accuracy, 0.7) {
		t.Errorf("Accuracy = %f, want 0.7", m.Accuracy)
	}
	if !almostEqual(m.AverageTime, 5) {
		t.Errorf("AverageTime = %f, want 5", m.AverageTime)
	}
}

func TestCompute_ConsecutiveIncorrect(t *testing.T) {
	// 7 correct then 3 incorrect at the tail.
	m := Compute(makeWindow(10, 7, 5))
	if m.ConsecutiveIncorrect != 3 {
		t.Errorf("ConsecutiveIncorrect = %d, want 3", m.ConsecutiveIncorrect)
	}

	// Correct answer at the tail resets the streak.
	window := makeWindow(10, 7, 5)
	window[9].Correct = true
	m = Compute(window)
	if m.ConsecutiveIncorrect != 0 {
		t.Errorf("ConsecutiveIncorrect = %d, want 0", m.ConsecutiveIncorrect)
	}
}

func TestCompute_HintRate(t *testing.T) {
	window := makeWindow(10, 10, 5)
	window[0].HintUsed = true
	window[1].HintUsed = true
	m := Compute(window)
	if !almostEqual(m.HintRate, 0.2) {
		t.Errorf("HintRate = %f, want 0.2", m.HintRate)
	}
}

func TestCompute_PerLevelAccuracy(t *testing.T) {
	window := makeWindow(4, 4, 5)
	window[2].Level = 3
	window[3].Level = 3
	window[3].Correct = false
	m := Compute(window)

	if !almostEqual(m.PerLevelAccuracy[2], 1.0) {
		t.Errorf("level 2 accuracy = %f, want 1.0", m.PerLevelAccuracy[2])
	}
	if !almostEqual(m.PerLevelAccuracy[3], 0.5) {
		t.Errorf("level 3 accuracy = %f, want 0.5", m.PerLevelAccuracy[3])
	}
}
