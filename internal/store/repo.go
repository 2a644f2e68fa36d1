package store

import (
	"context"
	"time"

	"github.com/abhisek/numbond/internal/attempt"
	"github.com/abhisek/numbond/internal/insights"
)

// Per-child history caps. Appends past the cap silently drop the
// oldest rows, keeping the database bounded for years of daily use.
const (
	AttemptCap = 100
	InsightCap = 50
)

// AttemptLog is the append-and-window interface the session engine and
// the analyzers read from. Records come back ordered oldest first.
type AttemptLog interface {
	// Append stores one attempt and truncates history past AttemptCap.
	Append(ctx context.Context, r attempt.Record) error

	// Window returns the most recent n attempts for a child.
	Window(ctx context.Context, childID string, n int) ([]attempt.Record, error)

	// All returns every stored attempt for a child.
	All(ctx context.Context, childID string) ([]attempt.Record, error)

	// Count returns the number of stored attempts for a child.
	Count(ctx context.Context, childID string) (int, error)

	// Clear deletes all attempts for a child.
	Clear(ctx context.Context, childID string) error
}

// InsightStore keeps the capped insight history per child, newest
// first on read.
type InsightStore interface {
	// Append stores one insight and truncates history past InsightCap.
	Append(ctx context.Context, ins insights.Insight) error

	// Read returns up to limit insights for a child, newest first
	// (limit <= 0 means all).
	Read(ctx context.Context, childID string, limit int) ([]insights.Insight, error)

	// Clear deletes all insights for a child.
	Clear(ctx context.Context, childID string) error
}

// Profile is the mutable per-child state carried between sessions.
// TotalAttempts counts lifetime attempts; the attempt log truncates at
// AttemptCap, so the insight cadence keys off this counter instead.
type Profile struct {
	ChildID         string
	Name            string
	CurrentLevel    int
	FavoriteNumbers []int
	ReviewMode      bool
	TotalAttempts   int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProfileRepo manages child profiles.
type ProfileRepo interface {
	// Get returns the profile for a child, or nil if none exists.
	Get(ctx context.Context, childID string) (*Profile, error)

	// Upsert creates or updates a profile keyed by ChildID.
	Upsert(ctx context.Context, p *Profile) error

	// List returns all profiles ordered by name.
	List(ctx context.Context) ([]Profile, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is one logged LLM API call.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsage aggregates LLM calls for one purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls for one model, for cost estimates.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QueryOpts bounds and filters event list queries.
type QueryOpts struct {
	Limit   int
	Purpose string
}

// EventRepo provides access to operational events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
