package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numbond/internal/insights"
	"github.com/abhisek/numbond/internal/router"
	"github.com/abhisek/numbond/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		Name:       "Emma",
		Duration:   5*time.Minute + 30*time.Second,
		Served:     12,
		Correct:    9,
		Accuracy:   0.75,
		BestStreak: 4,
		Level:      2,
		Insights: []insights.Insight{
			{Title: "Make-ten is clicking", Message: "Great accuracy on crossing ten."},
		},
	}
}

func TestView_ShowsStats(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)

	for _, want := range []string{"Emma", "5:30", "Problems: 12", "Correct: 9", "75%", "Best streak: 4", "Level: 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_ShowsInsights(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if !strings.Contains(view, "Make-ten is clicking") {
		t.Error("view should list new insights")
	}
}

func TestView_NoInsightsSection(t *testing.T) {
	sum := testSummary()
	sum.Insights = nil
	view := New(sum).View(80, 24)
	if strings.Contains(view, "New insights") {
		t.Error("insights section should be omitted when empty")
	}
}

func TestUpdate_EnterPops(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestView_NilSummary(t *testing.T) {
	s := New(nil)
	if s.View(80, 24) != "" {
		t.Error("expected empty view for nil summary")
	}
}
