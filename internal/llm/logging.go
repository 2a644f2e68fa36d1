package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/numbond/internal/store"
)

// LoggingProvider appends one event per request to the store so the
// llm stats command can report token usage and cost.
type LoggingProvider struct {
	inner Provider
	repo  store.EventRepo
}

// WithLogging decorates p with event logging. A nil repo turns the
// decorator into a pass-through.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, repo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if l.repo == nil {
		return l.inner.Generate(ctx, req)
	}

	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	l.record(ctx, resp, err, time.Since(start))
	return resp, err
}

// record never fails the request; a broken event log only costs us the
// stats row.
func (l *LoggingProvider) record(ctx context.Context, resp *Response, genErr error, took time.Duration) {
	ev := store.LLMRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: took.Milliseconds(),
		Success:   genErr == nil,
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
	}
	if genErr != nil {
		ev.ErrorMessage = genErr.Error()
	}

	if err := l.repo.AppendLLMRequest(ctx, ev); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", err)
	}
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
