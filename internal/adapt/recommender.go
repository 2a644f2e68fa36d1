package adapt

import (
	"fmt"

	"github.com/abhisek/numbond/internal/attempt"
	"github.com/abhisek/numbond/internal/problemgen"
)

// Action is the recommender's verdict for the next problem.
type Action string

const (
	ActionAdvance    Action = "advance"
	ActionMaintain   Action = "maintain"
	ActionRemediate  Action = "remediate"
	ActionReviewMode Action = "review_mode"
)

// Thresholds of the adaptive policy. The policy is threshold-based and
// explainable, not probabilistic.
const (
	// WindowSize is the number of recent attempts the recommender reads.
	WindowSize = 20

	// reviewWindow is the slice checked for repeated same-category misses.
	reviewWindow = 10

	// reviewMissCount triggers review mode when one category collects
	// this many misses inside reviewWindow.
	reviewMissCount = 3

	lowAccuracy     = 0.60
	highAccuracy    = 0.80
	highHintRate    = 0.40
	targetTimeSecs  = 15.0
	advanceScoreMin = 0.70
)

// Recommendation is produced fresh on every call and not persisted.
type Recommendation struct {
	Level              problemgen.Level   `json:"level"`
	Action             Action             `json:"action"`
	Reasoning          string             `json:"reasoning"`
	Metrics            Metrics            `json:"metrics"`
	StrugglingConcepts []attempt.Category `json:"struggling_concepts"`
}

// Recommend classifies the window into an action. Precedence, first
// match wins: review mode, remediate, advance, maintain. An empty
// window returns the safe default of level 1 and maintain.
func Recommend(window []attempt.Record, current problemgen.Level, cls attempt.Classifier) Recommendation {
	if cls == nil {
		cls = attempt.MagnitudeClassifier{}
	}
	current = current.Clamp()

	if len(window) == 0 {
		return Recommendation{
			Level:     problemgen.MinLevel,
			Action:    ActionMaintain,
			Reasoning: "no attempts yet",
			Metrics:   Compute(nil),
		}
	}

	m := Compute(window)
	struggling := strugglingCategories(attempt.LastN(window, reviewWindow), cls)

	if len(struggling) > 0 || m.Accuracy < lowAccuracy {
		reason := fmt.Sprintf("accuracy %.0f%% below %.0f%%", m.Accuracy*100, lowAccuracy*100)
		if len(struggling) > 0 {
			reason = fmt.Sprintf("repeated misses in %s", struggling[0])
		}
		return Recommendation{
			Level:              (current - 1).Clamp(),
			Action:             ActionReviewMode,
			Reasoning:          reason,
			Metrics:            m,
			StrugglingConcepts: struggling,
		}
	}

	// Low accuracy never reaches this point; the review branch above
	// claims every window below lowAccuracy. Remediation is the milder
	// response to leaning on hints while still answering correctly.
	if m.HintRate > highHintRate {
		return Recommendation{
			Level:     (current - 1).Clamp(),
			Action:    ActionRemediate,
			Reasoning: fmt.Sprintf("hint rate %.0f%% above %.0f%%", m.HintRate*100, highHintRate*100),
			Metrics:   m,
		}
	}

	if m.Accuracy >= highAccuracy && compositeScore(m) >= advanceScoreMin && m.AverageTime <= targetTimeSecs {
		return Recommendation{
			Level:     (current + 1).Clamp(),
			Action:    ActionAdvance,
			Reasoning: fmt.Sprintf("accuracy %.0f%% with average time %.1fs", m.Accuracy*100, m.AverageTime),
			Metrics:   m,
		}
	}

	return Recommendation{
		Level:     current,
		Action:    ActionMaintain,
		Reasoning: "performance steady",
		Metrics:   m,
	}
}

// compositeScore blends accuracy with time efficiency.
func compositeScore(m Metrics) float64 {
	timeEfficiency := 1.0
	if m.AverageTime > 0 {
		timeEfficiency = targetTimeSecs / m.AverageTime
		if timeEfficiency > 1 {
			timeEfficiency = 1
		}
	}
	return 0.7*m.Accuracy + 0.3*timeEfficiency
}

// strugglingCategories finds categories with reviewMissCount or more
// incorrect attempts in the slice, most-missed first.
func strugglingCategories(window []attempt.Record, cls attempt.Classifier) []attempt.Category {
	misses := make(map[attempt.Category]int)
	var order []attempt.Category
	for _, r := range window {
		if r.Correct {
			continue
		}
		cat := cls.Categorize(r)
		if misses[cat] == 0 {
			order = append(order, cat)
		}
		misses[cat]++
	}

	var out []attempt.Category
	for _, cat := range order {
		if misses[cat] >= reviewMissCount {
			out = append(out, cat)
		}
	}
	return out
}
