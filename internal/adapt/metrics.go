// Package adapt derives rolling performance metrics from the attempt
// log and turns them into a difficulty recommendation. Every function
// here is a pure function of the window it is handed; nothing is cached
// between calls.
package adapt

import (
	"github.com/abhisek/numbond/internal/attempt"
	"github.com/abhisek/numbond/internal/problemgen"
)

// Metrics are recomputed on demand from an attempt window.
// An empty window yields the zero value, never a division by zero.
type Metrics struct {
	Accuracy             float64                      `json:"accuracy"`
	AverageTime          float64                      `json:"average_time"`
	HintRate             float64                      `json:"hint_rate"`
	ConsecutiveIncorrect int                          `json:"consecutive_incorrect"`
	PerLevelAccuracy     map[problemgen.Level]float64 `json:"per_level_accuracy"`
	Attempts             int                          `json:"attempts"`
}

// Compute builds Metrics from a window ordered oldest first.
func Compute(window []attempt.Record) Metrics {
	m := Metrics{PerLevelAccuracy: make(map[problemgen.Level]float64)}
	if len(window) == 0 {
		return m
	}

	m.Attempts = len(window)

	correct := 0
	hints := 0
	totalTime := 0.0
	levelCorrect := make(map[problemgen.Level]int)
	levelTotal := make(map[problemgen.Level]int)

	for _, r := range window {
		if r.Correct {
			correct++
			levelCorrect[r.Level]++
		}
		if r.HintUsed {
			hints++
		}
		totalTime += r.TimeSecs
		levelTotal[r.Level]++
	}

	m.Accuracy = float64(correct) / float64(len(window))
	m.AverageTime = totalTime / float64(len(window))
	m.HintRate = float64(hints) / float64(len(window))

	for level, total := range levelTotal {
		m.PerLevelAccuracy[level] = float64(levelCorrect[level]) / float64(total)
	}

	for i := len(window) - 1; i >= 0; i-- {
		if window[i].Correct {
			break
		}
		m.ConsecutiveIncorrect++
	}

	return m
}
