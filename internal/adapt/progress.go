package adapt

import (
	"sort"

	"github.com/abhisek/numbond/internal/attempt"
)

// Trend compares the most recent attempts against the batch before them.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

const (
	// trendBatch is how many attempts each comparison half holds.
	trendBatch = 10

	accuracyDeltaMin = 0.1
	timeDeltaSecs    = 2.0
)

// ProgressReport summarizes direction of travel and per-category
// strengths and weaknesses over the window.
type ProgressReport struct {
	Trend         Trend              `json:"trend"`
	AccuracyDelta float64            `json:"accuracy_delta"`
	TimeDelta     float64            `json:"time_delta"`
	Strengths     []attempt.Category `json:"strengths"`
	Weaknesses    []attempt.Category `json:"weaknesses"`
	Recent        Metrics            `json:"recent"`
}

// BuildProgress compares the last trendBatch attempts with the
// trendBatch before them. Fewer than two batches yields TrendStable.
func BuildProgress(window []attempt.Record, cls attempt.Classifier) ProgressReport {
	if cls == nil {
		cls = attempt.MagnitudeClassifier{}
	}

	recent := attempt.LastN(window, trendBatch)
	report := ProgressReport{Trend: TrendStable, Recent: Compute(recent)}

	report.Strengths, report.Weaknesses = categorySplit(window, cls)

	if len(window) < 2*trendBatch {
		return report
	}

	prior := window[len(window)-2*trendBatch : len(window)-trendBatch]
	rm, pm := Compute(recent), Compute(prior)

	report.AccuracyDelta = rm.Accuracy - pm.Accuracy
	report.TimeDelta = pm.AverageTime - rm.AverageTime // positive = faster

	switch {
	case report.AccuracyDelta > accuracyDeltaMin || report.TimeDelta > timeDeltaSecs:
		report.Trend = TrendImproving
	case report.AccuracyDelta < -accuracyDeltaMin || report.TimeDelta < -timeDeltaSecs:
		report.Trend = TrendDeclining
	}

	return report
}

// categorySplit buckets categories into strengths (accuracy >= 0.8)
// and weaknesses (accuracy < 0.6), requiring at least three attempts
// per category so one lucky answer doesn't count.
func categorySplit(window []attempt.Record, cls attempt.Classifier) ([]attempt.Category, []attempt.Category) {
	total := make(map[attempt.Category]int)
	correct := make(map[attempt.Category]int)
	for _, r := range window {
		cat := cls.Categorize(r)
		total[cat]++
		if r.Correct {
			correct[cat]++
		}
	}

	var strengths, weaknesses []attempt.Category
	for cat, n := range total {
		if n < 3 {
			continue
		}
		acc := float64(correct[cat]) / float64(n)
		if acc >= highAccuracy {
			strengths = append(strengths, cat)
		} else if acc < lowAccuracy {
			weaknesses = append(weaknesses, cat)
		}
	}

	sort.Slice(strengths, func(i, j int) bool { return strengths[i] < strengths[j] })
	sort.Slice(weaknesses, func(i, j int) bool { return weaknesses[i] < weaknesses[j] })
	return strengths, weaknesses
}
