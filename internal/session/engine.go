// Package session coordinates one child's practice loop: generating
// problems, scoring answers, logging attempts, applying adaptive
// recommendations, and running insight analysis on its cadence.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/numbond/internal/adapt"
	"github.com/abhisek/numbond/internal/attempt"
	"github.com/abhisek/numbond/internal/bond"
	"github.com/abhisek/numbond/internal/insights"
	"github.com/abhisek/numbond/internal/problemgen"
	"github.com/abhisek/numbond/internal/store"
)

// Engine wires the practice loop together. All persistence goes
// through the repository interfaces so tests run on the in-memory
// fakes.
type Engine struct {
	gen      *problemgen.Generator
	log      store.AttemptLog
	analyzer *insights.Engine
	history  store.InsightStore
	profiles store.ProfileRepo
	cls      attempt.Classifier
	now      func() time.Time
}

// Config carries the engine's dependencies. Generator and Log are
// required; the rest default sensibly.
type Config struct {
	Generator    *problemgen.Generator
	Log          store.AttemptLog
	Analyzer     *insights.Engine
	InsightStore store.InsightStore
	Profiles     store.ProfileRepo
	Classifier   attempt.Classifier
	Clock        func() time.Time
}

// NewEngine creates a session engine.
func NewEngine(cfg Config) *Engine {
	if cfg.Analyzer == nil {
		cfg.Analyzer = insights.NewEngine(insights.DefaultConfig())
	}
	if cfg.Classifier == nil {
		cfg.Classifier = attempt.MagnitudeClassifier{}
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Engine{
		gen:      cfg.Generator,
		log:      cfg.Log,
		analyzer: cfg.Analyzer,
		history:  cfg.InsightStore,
		profiles: cfg.Profiles,
		cls:      cfg.Classifier,
		now:      cfg.Clock,
	}
}

// Start loads (or creates) the child's profile and returns a fresh
// session state at the persisted level.
func (e *Engine) Start(ctx context.Context, name string) (*State, error) {
	childID := ChildID(name)

	profile, err := e.profiles.Get(ctx, childID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &store.Profile{
			ChildID:      childID,
			Name:         name,
			CurrentLevel: int(problemgen.MinLevel),
		}
		if err := e.profiles.Upsert(ctx, profile); err != nil {
			return nil, err
		}
	}

	now := e.now()
	return &State{
		SessionID:     uuid.New().String(),
		ChildID:       childID,
		Name:          profile.Name,
		Level:         problemgen.Level(profile.CurrentLevel).Clamp(),
		ReviewMode:    profile.ReviewMode,
		Favorites:     profile.FavoriteNumbers,
		TotalAttempts: profile.TotalAttempts,
		StartTime:     now,
		Phase:         PhaseActive,
	}, nil
}

// NextProblem generates the next problem for the session and starts
// its timer.
func (e *Engine) NextProblem(st *State) problemgen.Problem {
	req := problemgen.Request{
		Level:     st.Level,
		Favorites: st.Favorites,
	}
	if st.ReviewMode {
		req.Strategy = problemgen.StrategyReview
	}

	p := e.gen.Generate(req)
	st.Current = &p
	st.ProblemStart = e.now()
	return p
}

// Submission is one answered problem.
type Submission struct {
	Answer   int
	TimeSecs float64
	HintUsed bool
}

// Result reports the outcome of a submission. StorageWarning is set
// when persistence failed; the session keeps running on in-memory
// state and the caller decides how loudly to complain.
type Result struct {
	Correct        bool
	Answer         int
	Recommendation *adapt.Recommendation
	NewInsights    []insights.Insight
	StorageWarning error
}

// Submit scores the active problem, logs the attempt, re-runs the
// recommender over the recent window, and triggers insight analysis
// when it comes due. The returned Result is always valid; persistence
// failures surface only through StorageWarning.
func (e *Engine) Submit(ctx context.Context, st *State, sub Submission) Result {
	p := st.Current
	if p == nil {
		return Result{}
	}

	correct := bond.CheckAnswer(*p, sub.Answer)
	st.Served++
	if correct {
		st.Correct++
		st.Streak++
		if st.Streak > st.BestStreak {
			st.BestStreak = st.Streak
		}
	} else {
		st.Streak = 0
	}
	st.Current = nil

	res := Result{Correct: correct, Answer: p.Answer}

	record := attempt.Record{
		ChildID:   st.ChildID,
		ProblemID: p.ID,
		Level:     p.Level,
		Op:        p.Op,
		Operand1:  p.Operand1,
		Operand2:  p.Operand2,
		Answer:    sub.Answer,
		Correct:   correct,
		TimeSecs:  sub.TimeSecs,
		HintUsed:  sub.HintUsed,
		Strategy:  p.Strategy,
		Timestamp: e.now(),
	}
	if err := e.log.Append(ctx, record); err != nil {
		res.StorageWarning = err
		return res
	}
	st.TotalAttempts++

	rec, err := e.Recommend(ctx, st)
	if err != nil {
		res.StorageWarning = err
		return res
	}
	res.Recommendation = rec
	st.LastRecommendation = rec
	st.Level = rec.Level
	st.ReviewMode = rec.Action == adapt.ActionReviewMode

	generated, err := e.analyzeIfDue(ctx, st)
	if err != nil {
		res.StorageWarning = err
	}
	res.NewInsights = generated

	if err := e.persistProfile(ctx, st); err != nil && res.StorageWarning == nil {
		res.StorageWarning = err
	}
	return res
}

// Recommend runs the adaptive policy over the child's recent window.
func (e *Engine) Recommend(ctx context.Context, st *State) (*adapt.Recommendation, error) {
	window, err := e.log.Window(ctx, st.ChildID, adapt.WindowSize)
	if err != nil {
		return nil, err
	}
	rec := adapt.Recommend(window, st.Level, e.cls)
	return &rec, nil
}

// analyzeIfDue runs insight analysis when the lifetime attempt count
// hits the cadence, persisting anything generated. The cadence keys off
// the profile's counter, not the stored row count: the log truncates at
// AttemptCap, and a capped count would come due on every submit.
func (e *Engine) analyzeIfDue(ctx context.Context, st *State) ([]insights.Insight, error) {
	if !e.analyzer.Due(st.TotalAttempts) {
		return nil, nil
	}

	records, err := e.log.All(ctx, st.ChildID)
	if err != nil {
		return nil, err
	}

	generated := e.analyzer.Analyze(st.ChildID, records, e.now())
	for _, ins := range generated {
		if err := e.history.Append(ctx, ins); err != nil {
			return generated, err
		}
	}
	st.NewInsights = append(st.NewInsights, generated...)
	return generated, nil
}

func (e *Engine) persistProfile(ctx context.Context, st *State) error {
	return e.profiles.Upsert(ctx, &store.Profile{
		ChildID:         st.ChildID,
		Name:            st.Name,
		CurrentLevel:    int(st.Level),
		FavoriteNumbers: st.Favorites,
		ReviewMode:      st.ReviewMode,
		TotalAttempts:   st.TotalAttempts,
	})
}

// ChildID derives the stable profile key from a display name.
func ChildID(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
