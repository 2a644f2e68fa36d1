package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/numbond/internal/attempt"
	"github.com/abhisek/numbond/internal/insights"
	"github.com/abhisek/numbond/internal/problemgen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(childID string, correct bool, ts time.Time) attempt.Record {
	return attempt.Record{
		ChildID:   childID,
		ProblemID: "p1",
		Level:     2,
		Op:        problemgen.OpSub,
		Operand1:  14,
		Operand2:  8,
		Answer:    6,
		Correct:   correct,
		TimeSecs:  9.5,
		Strategy:  problemgen.StrategyCrossing,
		Timestamp: ts,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptLogAppendAndWindow(t *testing.T) {
	s := openTestStore(t)
	log := s.AttemptLog()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		r := testRecord("emma", i%2 == 0, base.Add(time.Duration(i)*time.Minute))
		r.Operand1 = 10 + i
		if err := log.Append(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	window, err := log.Window(ctx, "emma", 3)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	if len(window) != 3 {
		t.Fatalf("window length = %d, want 3", len(window))
	}
	// Oldest first within the window.
	if window[0].Operand1 != 12 || window[2].Operand1 != 14 {
		t.Errorf("window order = [%d %d %d], want [12 13 14]",
			window[0].Operand1, window[1].Operand1, window[2].Operand1)
	}
	if window[2].Strategy != problemgen.StrategyCrossing {
		t.Errorf("Strategy = %q, want crossing", window[2].Strategy)
	}
}

func TestAttemptLogIsolatesChildren(t *testing.T) {
	s := openTestStore(t)
	log := s.AttemptLog()
	ctx := context.Background()

	now := time.Now().UTC()
	if err := log.Append(ctx, testRecord("emma", true, now)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := log.Append(ctx, testRecord("liam", false, now)); err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := log.Count(ctx, "emma")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("emma count = %d, want 1", count)
	}
}

func TestAttemptLogCap(t *testing.T) {
	s := openTestStore(t)
	log := s.AttemptLog()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < AttemptCap+10; i++ {
		r := testRecord("emma", true, base.Add(time.Duration(i)*time.Second))
		r.Operand1 = i
		if err := log.Append(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	count, err := log.Count(ctx, "emma")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != AttemptCap {
		t.Errorf("count = %d, want %d", count, AttemptCap)
	}

	// The survivors are the newest.
	all, err := log.All(ctx, "emma")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if all[0].Operand1 != 10 {
		t.Errorf("oldest survivor operand1 = %d, want 10", all[0].Operand1)
	}
}

func TestAttemptLogClear(t *testing.T) {
	s := openTestStore(t)
	log := s.AttemptLog()
	ctx := context.Background()

	now := time.Now().UTC()
	if err := log.Append(ctx, testRecord("emma", true, now)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := log.Clear(ctx, "emma"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	count, err := log.Count(ctx, "emma")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("count after clear = %d, want 0", count)
	}
}

func TestInsightStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.InsightStore()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	ins := insights.Insight{
		ID:              "ins-1",
		ChildID:         "emma",
		Type:            insights.PatternWeakness,
		Category:        "strategy:crossing",
		Title:           "Crossing the ten is tricky",
		Message:         "Problems that cross a ten are at 50% accuracy.",
		ActionableSteps: []string{"Practice splitting the second number"},
		Priority:        insights.PriorityMedium,
		Corrective:      map[string]any{"triggerReviewMode": true},
		GeneratedAt:     now,
	}
	if err := repo.Append(ctx, ins); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.Read(ctx, "emma", 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("read length = %d, want 1", len(got))
	}
	if got[0].ID != "ins-1" || got[0].Type != insights.PatternWeakness {
		t.Errorf("round trip = %+v", got[0])
	}
	if got[0].Corrective["triggerReviewMode"] != true {
		t.Errorf("Corrective = %v, want triggerReviewMode", got[0].Corrective)
	}
}

func TestInsightStoreNewestFirstAndCap(t *testing.T) {
	s := openTestStore(t)
	repo := s.InsightStore()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < InsightCap+5; i++ {
		err := repo.Append(ctx, insights.Insight{
			ID:          "ins-" + string(rune('a'+i%26)) + string(rune('a'+i/26)),
			ChildID:     "emma",
			Type:        insights.PatternStrength,
			Category:    "overall",
			Title:       "Fantastic week",
			Message:     "Great work.",
			Priority:    insights.PriorityLow,
			GeneratedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.Read(ctx, "emma", 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != InsightCap {
		t.Errorf("history length = %d, want %d", len(got), InsightCap)
	}
	if !got[0].GeneratedAt.After(got[len(got)-1].GeneratedAt) {
		t.Error("expected newest-first ordering")
	}

	limited, err := repo.Read(ctx, "emma", 3)
	if err != nil {
		t.Fatalf("read limited: %v", err)
	}
	if len(limited) != 3 {
		t.Errorf("limited length = %d, want 3", len(limited))
	}
}

func TestProfileUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	// No profile yet.
	p, err := repo.Get(ctx, "emma")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile when none exists")
	}

	err = repo.Upsert(ctx, &Profile{
		ChildID:         "emma",
		Name:            "Emma",
		CurrentLevel:    1,
		FavoriteNumbers: []int{7, 12},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Update in place.
	err = repo.Upsert(ctx, &Profile{
		ChildID:         "emma",
		Name:            "Emma",
		CurrentLevel:    2,
		FavoriteNumbers: []int{7, 12},
		ReviewMode:      true,
	})
	if err != nil {
		t.Fatalf("upsert update: %v", err)
	}

	p, err = repo.Get(ctx, "emma")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p == nil {
		t.Fatal("expected non-nil profile")
	}
	if p.CurrentLevel != 2 || !p.ReviewMode {
		t.Errorf("profile = %+v, want level 2 in review mode", p)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("list length = %d, want 1", len(list))
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	prev, err := sc.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != prev+1 {
			t.Errorf("seq = %d, want %d", seq, prev+1)
		}
		prev = seq
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock-model",
		Purpose:      "coach_summary",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    45,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
