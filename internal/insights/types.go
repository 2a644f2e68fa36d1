// Package insights mines the attempt log on a cadence for per-category
// strength and weakness patterns, and renders them into actionable
// insight records for the session layer and for parents.
package insights

import "time"

// PatternType distinguishes strengths from weaknesses.
type PatternType string

const (
	PatternStrength PatternType = "strength"
	PatternWeakness PatternType = "weakness"
)

// Dimension is the axis a pattern was mined along.
type Dimension string

const (
	// DimensionOperation groups attempts by operator.
	DimensionOperation Dimension = "operation"

	// DimensionStrategy groups attempts by strategy tag.
	DimensionStrategy Dimension = "strategy"

	// DimensionMagnitude groups attempts by operand digit count.
	DimensionMagnitude Dimension = "magnitude"
)

// Priority orders insights for display and for corrective action.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// LearningPattern is one mined per-category observation. Patterns are
// an intermediate product; templates turn them into Insights.
type LearningPattern struct {
	Type     PatternType `json:"type"`
	Dim      Dimension   `json:"dimension"`
	Value    string      `json:"value"`
	Accuracy float64     `json:"accuracy"`
	AvgTime  float64     `json:"avg_time"`
	HintRate float64     `json:"hint_rate"`
	Attempts int         `json:"attempts"`
}

// Insight is the externally visible record. Accumulated in a capped
// history owned by the insight store.
type Insight struct {
	ID              string         `json:"id"`
	ChildID         string         `json:"child_id"`
	Type            PatternType    `json:"type"`
	Category        string         `json:"category"`
	Title           string         `json:"title"`
	Message         string         `json:"message"`
	ActionableSteps []string       `json:"actionable_steps"`
	Priority        Priority       `json:"priority"`
	Corrective      map[string]any `json:"corrective_actions"`
	GeneratedAt     time.Time      `json:"generated_at"`
}
