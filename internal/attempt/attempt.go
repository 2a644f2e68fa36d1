// Package attempt defines the immutable attempt record shared by the
// analyzer, recommender, and insights engine, plus the heuristic
// skill-category classifier used for review-mode detection.
package attempt

import (
	"time"

	"github.com/abhisek/numbond/internal/problemgen"
)

// Record is one logged attempt. Created once per submission and never
// mutated; the store truncates the oldest past its cap.
type Record struct {
	ChildID   string              `json:"child_id"`
	ProblemID string              `json:"problem_id"`
	Level     problemgen.Level    `json:"level"`
	Op        problemgen.Op       `json:"op"`
	Operand1  int                 `json:"operand1"`
	Operand2  int                 `json:"operand2"`
	Answer    int                 `json:"answer"`
	Correct   bool                `json:"correct"`
	TimeSecs  float64             `json:"time_secs"`
	HintUsed  bool                `json:"hint_used"`
	Strategy  problemgen.Strategy `json:"strategy"`
	Timestamp time.Time           `json:"timestamp"`
}

// LastN returns the most recent n records, preserving order, assuming
// records is ordered oldest first.
func LastN(records []Record, n int) []Record {
	if n <= 0 || len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}

// Category is a coarse skill bucket inferred from operand magnitude.
type Category string

const (
	CategorySingleDigitAddition Category = "single_digit_addition"
	CategoryCrossingTen         Category = "crossing_ten"
	CategoryCrossingTwenty      Category = "crossing_twenty"
	CategoryBasicAddition       Category = "basic_addition"
	CategoryBasicSubtraction    Category = "basic_subtraction"
)

// Classifier buckets attempts into skill categories. The magnitude
// heuristic below is the default; it is an approximation, not a
// ground-truth taxonomy, and is kept behind this interface so it can be
// swapped without touching the recommender's thresholds.
type Classifier interface {
	Categorize(r Record) Category
}

// MagnitudeClassifier buckets by operand size and whether the operands
// reach past 10.
type MagnitudeClassifier struct{}

func (MagnitudeClassifier) Categorize(r Record) Category {
	switch {
	case r.Op == problemgen.OpAdd && r.Operand1 <= 10 && r.Operand2 <= 10 && r.Operand1+r.Operand2 <= 10:
		return CategorySingleDigitAddition
	case r.Operand1 <= 20 && r.Operand2 <= 20:
		return CategoryCrossingTen
	case r.Operand1 <= 30 && r.Operand2 <= 30:
		return CategoryCrossingTwenty
	case r.Op == problemgen.OpSub:
		return CategoryBasicSubtraction
	default:
		return CategoryBasicAddition
	}
}
