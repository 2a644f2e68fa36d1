package insights

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/numbond/internal/attempt"
)

// Config tunes the analysis cadence and window.
type Config struct {
	// Cadence is the number of logged attempts between analysis runs.
	Cadence int

	// Window is the trailing time span of attempts considered.
	Window time.Duration

	// HistoryCap is the maximum stored insights per child; the store
	// truncates the oldest past it.
	HistoryCap int
}

// DefaultConfig returns the shipped cadence: every 20 attempts over
// the trailing week, keeping the 50 most recent insights.
func DefaultConfig() Config {
	return Config{
		Cadence:    20,
		Window:     7 * 24 * time.Hour,
		HistoryCap: 50,
	}
}

// Engine mines the attempt log. It holds no cross-call state: Analyze
// is a pure function of the snapshot passed in, so it is safe to run
// inline after an attempt or deferred to a worker.
type Engine struct {
	cfg Config
}

// NewEngine creates an insights engine.
func NewEngine(cfg Config) *Engine {
	if cfg.Cadence <= 0 {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: cfg}
}

// HistoryCap exposes the configured cap for the store.
func (e *Engine) HistoryCap() int {
	return e.cfg.HistoryCap
}

// Due reports whether an analysis run is owed at the given attempt
// count.
func (e *Engine) Due(totalAttempts int) bool {
	return totalAttempts > 0 && totalAttempts%e.cfg.Cadence == 0
}

// Analyze mines the records (ordered oldest first) for patterns and
// renders them into insights. Records older than the trailing window
// are ignored. Re-running on the same snapshot produces equivalent
// insights (fresh IDs and timestamps aside); within one run, insights
// are deduplicated by title and category.
func (e *Engine) Analyze(childID string, records []attempt.Record, now time.Time) []Insight {
	cutoff := now.Add(-e.cfg.Window)
	var windowed []attempt.Record
	for _, r := range records {
		if r.Timestamp.Before(cutoff) {
			continue
		}
		windowed = append(windowed, r)
	}
	if len(windowed) == 0 {
		return nil
	}

	var out []Insight
	seen := make(map[string]bool)

	emit := func(ins Insight) {
		key := ins.Title + "|" + ins.Category
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, ins)
	}

	for _, p := range minePatterns(windowed) {
		emit(e.render(childID, p, now))
	}

	if overall, ok := e.overallInsight(childID, windowed, now); ok {
		emit(overall)
	}

	return out
}

// render turns a mined pattern into an Insight via the template table.
func (e *Engine) render(childID string, p LearningPattern, now time.Time) Insight {
	tpl := lookupTemplate(p)
	return Insight{
		ID:              uuid.New().String(),
		ChildID:         childID,
		Type:            p.Type,
		Category:        string(p.Dim) + ":" + p.Value,
		Title:           tpl.title,
		Message:         fmt.Sprintf(tpl.message, p.Accuracy*100),
		ActionableSteps: tpl.steps,
		Priority:        priorityFor(p),
		Corrective:      correctiveFor(p),
		GeneratedAt:     now,
	}
}

// overallInsight adds the aggregate-accuracy record: celebratory when
// things are going well, corrective when they are not, nothing in
// between.
func (e *Engine) overallInsight(childID string, records []attempt.Record, now time.Time) (Insight, bool) {
	correct := 0
	for _, r := range records {
		if r.Correct {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(records))

	switch {
	case accuracy >= 0.80:
		return Insight{
			ID:       uuid.New().String(),
			ChildID:  childID,
			Type:     PatternStrength,
			Category: "overall",
			Title:    "Fantastic week",
			Message:  fmt.Sprintf("%.0f%% of problems solved correctly. Keep going!", accuracy*100),
			ActionableSteps: []string{
				"Celebrate the streak",
				"Try a harder level when it feels easy",
			},
			Priority:    PriorityLow,
			Corrective:  map[string]any{"celebrate": true},
			GeneratedAt: now,
		}, true
	case accuracy <= 0.60:
		return Insight{
			ID:       uuid.New().String(),
			ChildID:  childID,
			Type:     PatternWeakness,
			Category: "overall",
			Title:    "Time for a gentler pace",
			Message:  fmt.Sprintf("Accuracy is at %.0f%% — easier problems will rebuild confidence.", accuracy*100),
			ActionableSteps: []string{
				"Switch to review mode for a session",
				"Shorten sessions and celebrate small wins",
			},
			Priority: PriorityHigh,
			Corrective: map[string]any{
				"triggerReviewMode":  true,
				"injectWeakProblems": true,
			},
			GeneratedAt: now,
		}, true
	}
	return Insight{}, false
}
