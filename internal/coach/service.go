// Package coach turns the analyzers' output into a parent-facing
// progress summary, via an LLM when one is configured and a plain
// template otherwise.
package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/numbond/internal/adapt"
	"github.com/abhisek/numbond/internal/insights"
	"github.com/abhisek/numbond/internal/llm"
)

// Input is everything the coach knows about a child's recent practice.
type Input struct {
	Name     string
	Metrics  adapt.Metrics
	Report   adapt.ProgressReport
	Insights []insights.Insight
}

// Summary is the parent-facing output.
type Summary struct {
	Overview   string   `json:"overview"`
	Celebrate  []string `json:"celebrate"`
	FocusAreas []string `json:"focus_areas"`
	Activities []string `json:"activities"`

	// Generated is false when the summary came from the offline
	// template instead of an LLM.
	Generated bool `json:"-"`

	// Model is the model that produced a generated summary.
	Model string `json:"-"`
}

// Service produces coaching summaries. A nil provider is valid and
// always falls back to the template.
type Service struct {
	provider  llm.Provider
	maxTokens int
}

// NewService creates a coach. Provider may be nil.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider, maxTokens: 1024}
}

// Summarize builds the parent summary. LLM failures degrade to the
// template rather than erroring: the coach is advisory, never blocking.
func (s *Service) Summarize(ctx context.Context, input Input) *Summary {
	if s.provider == nil {
		return Fallback(input)
	}

	ctx = llm.WithPurpose(ctx, "coach_summary")
	req := llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryUserMessage(input)},
		},
		Schema:    SummarySchema,
		MaxTokens: s.maxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Fallback(input)
	}

	var out Summary
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Fallback(input)
	}
	out.Generated = true
	out.Model = resp.Model
	return &out
}

// Fallback renders the summary from the analyzers' numbers alone.
func Fallback(input Input) *Summary {
	name := input.Name
	if name == "" {
		name = "Your child"
	}

	overview := fmt.Sprintf(
		"%s answered %d problems recently with %.0f%% accuracy, averaging %.0f seconds per problem.",
		name, input.Metrics.Attempts, input.Metrics.Accuracy*100, input.Metrics.AverageTime,
	)
	switch input.Report.Trend {
	case adapt.TrendImproving:
		overview += " Things are moving in the right direction."
	case adapt.TrendDeclining:
		overview += " The last few sessions were harder; a lighter week may help."
	}

	s := &Summary{Overview: overview}

	for _, c := range input.Report.Strengths {
		s.Celebrate = append(s.Celebrate, fmt.Sprintf("Confident with %s problems", categoryLabel(string(c))))
	}
	if len(s.Celebrate) == 0 && input.Metrics.Accuracy >= 0.8 {
		s.Celebrate = append(s.Celebrate, "Strong accuracy across the board")
	}

	for _, c := range input.Report.Weaknesses {
		s.FocusAreas = append(s.FocusAreas, fmt.Sprintf("Extra practice on %s", categoryLabel(string(c))))
		s.Activities = append(s.Activities, fmt.Sprintf("Do three easy %s problems together before bed", categoryLabel(string(c))))
	}
	if len(s.FocusAreas) == 0 {
		s.FocusAreas = append(s.FocusAreas, "Keep a steady routine of short sessions")
	}

	s.Activities = append(s.Activities,
		"Play make-ten with a deck of cards: find pairs that sum to 10",
		"Count down from 20 while tidying up toys",
	)
	return s
}
