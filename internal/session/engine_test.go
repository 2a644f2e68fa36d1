package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/numbond/internal/adapt"
	"github.com/abhisek/numbond/internal/attempt"
	"github.com/abhisek/numbond/internal/insights"
	"github.com/abhisek/numbond/internal/problemgen"
	"github.com/abhisek/numbond/internal/store"
)

var sessionNow = time.Date(2026, time.March, 10, 17, 0, 0, 0, time.UTC)

type fixture struct {
	engine   *Engine
	log      *store.MemoryAttemptLog
	history  *store.MemoryInsightStore
	profiles *store.MemoryProfileRepo
}

func newFixture(t *testing.T, analyzer *insights.Engine) *fixture {
	t.Helper()
	log := store.NewMemoryAttemptLog()
	history := store.NewMemoryInsightStore()
	profiles := store.NewMemoryProfileRepo()
	engine := NewEngine(Config{
		Generator:    problemgen.NewSeeded(problemgen.DefaultConfig(), 42),
		Log:          log,
		Analyzer:     analyzer,
		InsightStore: history,
		Profiles:     profiles,
		Clock:        func() time.Time { return sessionNow },
	})
	return &fixture{engine: engine, log: log, history: history, profiles: profiles}
}

func (f *fixture) submitN(ctx context.Context, t *testing.T, st *State, n int, correct bool, timeSecs float64) Result {
	t.Helper()
	var res Result
	for i := 0; i < n; i++ {
		p := f.engine.NextProblem(st)
		answer := p.Answer
		if !correct {
			answer = p.Answer + 1
		}
		res = f.engine.Submit(ctx, st, Submission{Answer: answer, TimeSecs: timeSecs})
		if res.StorageWarning != nil {
			t.Fatalf("submit %d: unexpected storage warning: %v", i, res.StorageWarning)
		}
	}
	return res
}

func TestStart_NewChild(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	st, err := f.engine.Start(ctx, "Emma")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if st.ChildID != "emma" {
		t.Errorf("ChildID = %q, want emma", st.ChildID)
	}
	if st.Level != problemgen.MinLevel {
		t.Errorf("Level = %d, want %d", st.Level, problemgen.MinLevel)
	}
	if st.SessionID == "" {
		t.Error("expected a session ID")
	}

	// The profile was persisted.
	p, err := f.profiles.Get(ctx, "emma")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p == nil || p.Name != "Emma" {
		t.Errorf("profile = %+v, want name Emma", p)
	}
}

func TestStart_ExistingProfile(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	err := f.profiles.Upsert(ctx, &store.Profile{
		ChildID:         "liam",
		Name:            "Liam",
		CurrentLevel:    3,
		FavoriteNumbers: []int{7},
		ReviewMode:      true,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	st, err := f.engine.Start(ctx, "Liam")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if st.Level != 3 || !st.ReviewMode {
		t.Errorf("state = level %d review %v, want level 3 in review mode", st.Level, st.ReviewMode)
	}
	if len(st.Favorites) != 1 || st.Favorites[0] != 7 {
		t.Errorf("Favorites = %v, want [7]", st.Favorites)
	}
}

func TestSubmit_CorrectAnswer(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	st, err := f.engine.Start(ctx, "Emma")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	p := f.engine.NextProblem(st)
	res := f.engine.Submit(ctx, st, Submission{Answer: p.Answer, TimeSecs: 8})
	if !res.Correct {
		t.Error("expected a correct result")
	}
	if st.Served != 1 || st.Correct != 1 || st.Streak != 1 {
		t.Errorf("counts = served %d correct %d streak %d, want 1 1 1", st.Served, st.Correct, st.Streak)
	}
	if st.Current != nil {
		t.Error("current problem should be cleared after submit")
	}

	count, err := f.log.Count(ctx, "emma")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("logged attempts = %d, want 1", count)
	}
}

func TestSubmit_WrongAnswerResetsStreak(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	st, err := f.engine.Start(ctx, "Emma")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	f.submitN(ctx, t, st, 3, true, 8)
	p := f.engine.NextProblem(st)
	res := f.engine.Submit(ctx, st, Submission{Answer: p.Answer + 1, TimeSecs: 8})
	if res.Correct {
		t.Error("expected a wrong result")
	}
	if res.Answer != p.Answer {
		t.Errorf("Answer = %d, want the true answer %d", res.Answer, p.Answer)
	}
	if st.Streak != 0 {
		t.Errorf("Streak = %d, want 0", st.Streak)
	}
	if st.BestStreak != 3 {
		t.Errorf("BestStreak = %d, want 3", st.BestStreak)
	}
}

func TestSubmit_AdvancesLevel(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	st, err := f.engine.Start(ctx, "Emma")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	res := f.submitN(ctx, t, st, 10, true, 8)
	if st.Level <= problemgen.MinLevel {
		t.Errorf("Level = %d, want above %d after fast correct answers", st.Level, problemgen.MinLevel)
	}
	if res.Recommendation == nil {
		t.Fatal("expected a recommendation")
	}
}

func TestSubmit_ReviewModeOnRepeatedMisses(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	st, err := f.engine.Start(ctx, "Emma")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	f.submitN(ctx, t, st, 8, false, 12)
	if !st.ReviewMode {
		t.Error("expected review mode after repeated misses")
	}
	if st.Level != problemgen.MinLevel {
		t.Errorf("Level = %d, want floor %d", st.Level, problemgen.MinLevel)
	}
	if st.LastRecommendation.Action != adapt.ActionReviewMode {
		t.Errorf("Action = %q, want review_mode", st.LastRecommendation.Action)
	}

	// Review mode shapes the next problem.
	p := f.engine.NextProblem(st)
	if p.Strategy != problemgen.StrategyReview {
		t.Errorf("Strategy = %q, want review", p.Strategy)
	}
}

func TestSubmit_PersistsLevelAcrossSessions(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	st, err := f.engine.Start(ctx, "Emma")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	f.submitN(ctx, t, st, 10, true, 8)
	advanced := st.Level

	st2, err := f.engine.Start(ctx, "Emma")
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if st2.Level != advanced {
		t.Errorf("restarted level = %d, want persisted %d", st2.Level, advanced)
	}
}

func TestSubmit_InsightCadence(t *testing.T) {
	analyzer := insights.NewEngine(insights.Config{
		Cadence:    5,
		Window:     7 * 24 * time.Hour,
		HistoryCap: 50,
	})
	f := newFixture(t, analyzer)
	ctx := context.Background()

	st, err := f.engine.Start(ctx, "Emma")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	f.submitN(ctx, t, st, 4, false, 12)
	if len(st.NewInsights) != 0 {
		t.Fatalf("insights before cadence = %d, want 0", len(st.NewInsights))
	}

	res := f.submitN(ctx, t, st, 1, false, 12)
	if len(res.NewInsights) == 0 {
		t.Fatal("expected insights at the cadence boundary")
	}
	if len(st.NewInsights) == 0 {
		t.Error("expected generated insights recorded on the state")
	}

	stored, err := f.history.Read(ctx, "emma", 0)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	if len(stored) != len(res.NewInsights) {
		t.Errorf("stored insights = %d, want %d", len(stored), len(res.NewInsights))
	}
}

func TestSubmit_CadencePastAttemptCap(t *testing.T) {
	f := newFixture(t, nil) // default cadence: every 20 attempts
	ctx := context.Background()

	st, err := f.engine.Start(ctx, "Emma")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Fill the log to its cap. 100 is a cadence boundary, so the last
	// of these submits runs analysis.
	res := f.submitN(ctx, t, st, store.AttemptCap, false, 12)
	if len(res.NewInsights) == 0 {
		t.Fatal("expected an analysis run at the cadence boundary")
	}
	before, err := f.history.Read(ctx, "emma", 0)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}

	// The log stops growing past the cap, but the lifetime counter
	// keeps the cadence honest: none of the next 5 submits is due.
	for i := 0; i < 5; i++ {
		p := f.engine.NextProblem(st)
		res := f.engine.Submit(ctx, st, Submission{Answer: p.Answer + 1, TimeSecs: 12})
		if res.StorageWarning != nil {
			t.Fatalf("submit %d past cap: %v", i, res.StorageWarning)
		}
		if len(res.NewInsights) != 0 {
			t.Fatalf("analysis ran %d submits past the cap; next run is due at %d attempts",
				i+1, store.AttemptCap+20)
		}
	}

	after, err := f.history.Read(ctx, "emma", 0)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	if len(after) != len(before) {
		t.Errorf("insight history grew from %d to %d with no run due", len(before), len(after))
	}

	count, err := f.log.Count(ctx, "emma")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != store.AttemptCap {
		t.Errorf("stored attempts = %d, want capped at %d", count, store.AttemptCap)
	}
	if st.TotalAttempts != store.AttemptCap+5 {
		t.Errorf("TotalAttempts = %d, want %d", st.TotalAttempts, store.AttemptCap+5)
	}

	// The counter survives a restart via the profile.
	st2, err := f.engine.Start(ctx, "Emma")
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if st2.TotalAttempts != store.AttemptCap+5 {
		t.Errorf("restarted TotalAttempts = %d, want %d", st2.TotalAttempts, store.AttemptCap+5)
	}
}

type failingLog struct {
	*store.MemoryAttemptLog
}

func (f *failingLog) Append(context.Context, attempt.Record) error {
	return &store.StorageError{Op: "append", Err: errors.New("disk full")}
}

func TestSubmit_StorageFailureDegrades(t *testing.T) {
	log := &failingLog{store.NewMemoryAttemptLog()}
	engine := NewEngine(Config{
		Generator:    problemgen.NewSeeded(problemgen.DefaultConfig(), 42),
		Log:          log,
		InsightStore: store.NewMemoryInsightStore(),
		Profiles:     store.NewMemoryProfileRepo(),
		Clock:        func() time.Time { return sessionNow },
	})
	ctx := context.Background()

	st, err := engine.Start(ctx, "Emma")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	p := engine.NextProblem(st)
	res := engine.Submit(ctx, st, Submission{Answer: p.Answer, TimeSecs: 8})
	if !res.Correct {
		t.Error("scoring should survive a storage failure")
	}
	if res.StorageWarning == nil {
		t.Fatal("expected a storage warning")
	}
	var serr *store.StorageError
	if !errors.As(res.StorageWarning, &serr) {
		t.Errorf("warning = %v, want a StorageError", res.StorageWarning)
	}
	if st.Served != 1 {
		t.Errorf("Served = %d, want 1", st.Served)
	}
}

func TestBuildSummary(t *testing.T) {
	st := &State{
		Name:       "Emma",
		Level:      2,
		Served:     10,
		Correct:    8,
		BestStreak: 5,
		StartTime:  sessionNow.Add(-5 * time.Minute),
	}
	s := BuildSummary(st, sessionNow)
	if s.Accuracy != 0.8 {
		t.Errorf("Accuracy = %f, want 0.8", s.Accuracy)
	}
	if s.Duration != 5*time.Minute {
		t.Errorf("Duration = %v, want 5m", s.Duration)
	}
}

func TestChildID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Emma", "emma"},
		{"  Liam  ", "liam"},
		{"JO", "jo"},
	}
	for _, tt := range tests {
		if got := ChildID(tt.name); got != tt.want {
			t.Errorf("ChildID(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
