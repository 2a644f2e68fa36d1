package insights

import (
	"testing"
	"time"

	"github.com/abhisek/numbond/internal/attempt"
	"github.com/abhisek/numbond/internal/problemgen"
)

var analysisNow = time.Date(2026, time.March, 10, 17, 0, 0, 0, time.UTC)

// stamped builds n attempts timestamped within the trailing window; the
// first `correct` are marked correct.
func stamped(n, correct int, op problemgen.Op, operand1 int, timeSecs float64) []attempt.Record {
	records := make([]attempt.Record, n)
	for i := range records {
		records[i] = attempt.Record{
			ChildID:   "emma",
			Op:        op,
			Operand1:  operand1,
			Operand2:  4,
			Strategy:  problemgen.StrategyCrossing,
			Correct:   i < correct,
			TimeSecs:  timeSecs,
			Timestamp: analysisNow.Add(-time.Hour),
		}
	}
	return records
}

func TestEngine_Due(t *testing.T) {
	e := NewEngine(DefaultConfig())
	tests := []struct {
		total int
		want  bool
	}{
		{0, false},
		{1, false},
		{19, false},
		{20, true},
		{21, false},
		{40, true},
	}
	for _, tt := range tests {
		if got := e.Due(tt.total); got != tt.want {
			t.Errorf("Due(%d) = %v, want %v", tt.total, got, tt.want)
		}
	}
}

func TestAnalyze_EmptyLog(t *testing.T) {
	e := NewEngine(DefaultConfig())
	if got := e.Analyze("emma", nil, analysisNow); got != nil {
		t.Errorf("Analyze(empty) = %v, want nil", got)
	}
}

func TestAnalyze_IgnoresStaleRecords(t *testing.T) {
	e := NewEngine(DefaultConfig())
	stale := stamped(10, 2, problemgen.OpSub, 14, 10)
	for i := range stale {
		stale[i].Timestamp = analysisNow.Add(-8 * 24 * time.Hour)
	}
	if got := e.Analyze("emma", stale, analysisNow); got != nil {
		t.Errorf("expected no insights from stale records, got %d", len(got))
	}
}

func TestAnalyze_WeaknessInsight(t *testing.T) {
	e := NewEngine(DefaultConfig())
	records := stamped(10, 4, problemgen.OpSub, 14, 12)

	insights := e.Analyze("emma", records, analysisNow)
	if len(insights) == 0 {
		t.Fatal("expected insights from a 40% window")
	}

	var found *Insight
	for i := range insights {
		if insights[i].Category == "operation:subtraction" {
			found = &insights[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("no operation:subtraction insight in %+v", insights)
	}
	if found.Type != PatternWeakness {
		t.Errorf("Type = %q, want weakness", found.Type)
	}
	if found.ChildID != "emma" {
		t.Errorf("ChildID = %q, want emma", found.ChildID)
	}
	if found.ID == "" {
		t.Error("expected a generated ID")
	}
	if len(found.ActionableSteps) == 0 {
		t.Error("expected actionable steps")
	}
	if found.Corrective["triggerReviewMode"] != true {
		t.Errorf("Corrective = %v, want triggerReviewMode", found.Corrective)
	}
}

func TestAnalyze_OverallCelebration(t *testing.T) {
	e := NewEngine(DefaultConfig())
	records := stamped(10, 9, problemgen.OpAdd, 8, 8)

	insights := e.Analyze("emma", records, analysisNow)
	var overall *Insight
	for i := range insights {
		if insights[i].Category == "overall" {
			overall = &insights[i]
			break
		}
	}
	if overall == nil {
		t.Fatalf("no overall insight in %+v", insights)
	}
	if overall.Type != PatternStrength || overall.Priority != PriorityLow {
		t.Errorf("overall = %q/%q, want strength/low", overall.Type, overall.Priority)
	}
	if overall.Corrective["celebrate"] != true {
		t.Errorf("Corrective = %v, want celebrate", overall.Corrective)
	}
}

func TestAnalyze_OverallStruggle(t *testing.T) {
	e := NewEngine(DefaultConfig())
	records := stamped(10, 5, problemgen.OpSub, 14, 18)

	insights := e.Analyze("emma", records, analysisNow)
	var overall *Insight
	for i := range insights {
		if insights[i].Category == "overall" {
			overall = &insights[i]
			break
		}
	}
	if overall == nil {
		t.Fatalf("no overall insight in %+v", insights)
	}
	if overall.Priority != PriorityHigh {
		t.Errorf("Priority = %q, want high", overall.Priority)
	}
}

func TestAnalyze_NoOverallInsightMidRange(t *testing.T) {
	e := NewEngine(DefaultConfig())
	records := stamped(10, 7, problemgen.OpAdd, 8, 10)

	for _, ins := range e.Analyze("emma", records, analysisNow) {
		if ins.Category == "overall" {
			t.Errorf("70%% accuracy should produce no overall insight, got %+v", ins)
		}
	}
}

func TestAnalyze_DeduplicatesWithinRun(t *testing.T) {
	e := NewEngine(DefaultConfig())
	records := stamped(10, 4, problemgen.OpSub, 14, 12)

	insights := e.Analyze("emma", records, analysisNow)
	seen := make(map[string]bool)
	for _, ins := range insights {
		key := ins.Title + "|" + ins.Category
		if seen[key] {
			t.Errorf("duplicate insight %q", key)
		}
		seen[key] = true
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	e := NewEngine(DefaultConfig())
	records := stamped(12, 5, problemgen.OpSub, 14, 12)

	first := e.Analyze("emma", records, analysisNow)
	second := e.Analyze("emma", records, analysisNow)
	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Title != second[i].Title || first[i].Category != second[i].Category {
			t.Errorf("insight %d differs: %q/%q vs %q/%q",
				i, first[i].Title, first[i].Category, second[i].Title, second[i].Category)
		}
	}
}
