package session

import (
	"time"

	"github.com/abhisek/numbond/internal/adapt"
	"github.com/abhisek/numbond/internal/insights"
	"github.com/abhisek/numbond/internal/problemgen"
)

// Phase represents the current phase of a practice session.
type Phase int

const (
	PhaseActive   Phase = iota // Serving problems
	PhaseFeedback              // Showing answer feedback
	PhaseSummary               // Showing the end-of-session summary
)

// State tracks the runtime state of one child's practice session. The
// engine mutates it on Submit; screens read from it.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// ChildID identifies the active profile.
	ChildID string

	// Name is the child's display name.
	Name string

	// Level is the current difficulty, adjusted live by the recommender.
	Level problemgen.Level

	// ReviewMode is true when the recommender has dropped the session
	// into easier review problems.
	ReviewMode bool

	// Favorites biases problem generation toward numbers the child likes.
	Favorites []int

	// Current is the active problem (nil between problems).
	Current *problemgen.Problem

	// ProblemStart is when the current problem was first displayed.
	ProblemStart time.Time

	// Served and Correct count problems in this session.
	Served  int
	Correct int

	// TotalAttempts is the child's lifetime attempt count, loaded from
	// the profile. The attempt log is capped, so the insight cadence
	// runs off this counter rather than the stored row count.
	TotalAttempts int

	// Streak and BestStreak track consecutive correct answers.
	Streak     int
	BestStreak int

	// StartTime is when the session began.
	StartTime time.Time

	// Phase is the current session phase.
	Phase Phase

	// LastRecommendation is the most recent adaptive decision, for
	// display and for the summary screen.
	LastRecommendation *adapt.Recommendation

	// NewInsights holds insights generated during this session.
	NewInsights []insights.Insight
}

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Name       string
	Duration   time.Duration
	Served     int
	Correct    int
	Accuracy   float64
	BestStreak int
	Level      problemgen.Level
	Insights   []insights.Insight
}

// BuildSummary creates a Summary from the session state.
func BuildSummary(st *State, now time.Time) *Summary {
	var accuracy float64
	if st.Served > 0 {
		accuracy = float64(st.Correct) / float64(st.Served)
	}
	return &Summary{
		Name:       st.Name,
		Duration:   now.Sub(st.StartTime),
		Served:     st.Served,
		Correct:    st.Correct,
		Accuracy:   accuracy,
		BestStreak: st.BestStreak,
		Level:      st.Level,
		Insights:   st.NewInsights,
	}
}
