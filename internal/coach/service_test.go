package coach

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/numbond/internal/adapt"
	"github.com/abhisek/numbond/internal/attempt"
	"github.com/abhisek/numbond/internal/llm"
)

func coachInput() Input {
	return Input{
		Name: "Emma",
		Metrics: adapt.Metrics{
			Accuracy:    0.75,
			AverageTime: 12,
			HintRate:    0.2,
			Attempts:    20,
		},
		Report: adapt.ProgressReport{
			Trend:      adapt.TrendImproving,
			Strengths:  []attempt.Category{attempt.CategorySingleDigitAddition},
			Weaknesses: []attempt.Category{attempt.CategoryCrossingTen},
		},
	}
}

func TestSummarize_UsesProvider(t *testing.T) {
	canned := `{"overview":"Emma had a good week.","celebrate":["Quick with small sums"],"focus_areas":["Crossing ten"],"activities":["Play make-ten with cards","Count stairs"]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(canned)})
	svc := NewService(mock)

	s := svc.Summarize(context.Background(), coachInput())
	if !s.Generated {
		t.Fatal("expected a generated summary")
	}
	if s.Overview != "Emma had a good week." {
		t.Errorf("Overview = %q", s.Overview)
	}
	if len(s.Activities) != 2 {
		t.Errorf("Activities = %v, want 2 entries", s.Activities)
	}

	// The prompt carried the child's data.
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Emma", "75%", "crossing_ten"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestSummarize_ProviderFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock)

	s := svc.Summarize(context.Background(), coachInput())
	if s.Generated {
		t.Error("expected the template fallback")
	}
	if s.Overview == "" {
		t.Error("fallback overview should not be empty")
	}
}

func TestSummarize_NilProvider(t *testing.T) {
	svc := NewService(nil)
	s := svc.Summarize(context.Background(), coachInput())
	if s.Generated {
		t.Error("expected the template fallback")
	}
}

func TestFallback_ReflectsReport(t *testing.T) {
	s := Fallback(coachInput())

	if !strings.Contains(s.Overview, "Emma") || !strings.Contains(s.Overview, "75%") {
		t.Errorf("Overview = %q, want name and accuracy", s.Overview)
	}
	if !strings.Contains(s.Overview, "right direction") {
		t.Errorf("Overview = %q, want the improving note", s.Overview)
	}

	found := false
	for _, f := range s.FocusAreas {
		if strings.Contains(f, "crossing ten") {
			found = true
		}
	}
	if !found {
		t.Errorf("FocusAreas = %v, want crossing ten", s.FocusAreas)
	}
	if len(s.Activities) < 2 {
		t.Errorf("Activities = %v, want at least 2", s.Activities)
	}
}

func TestFallback_EmptyInput(t *testing.T) {
	s := Fallback(Input{})
	if !strings.Contains(s.Overview, "Your child") {
		t.Errorf("Overview = %q, want the generic name", s.Overview)
	}
	if len(s.FocusAreas) == 0 {
		t.Error("expected a default focus area")
	}
}
