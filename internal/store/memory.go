package store

import (
	"context"
	"sort"
	"sync"

	"github.com/abhisek/numbond/internal/attempt"
	"github.com/abhisek/numbond/internal/insights"
)

// In-memory implementations for tests and for the preview command,
// which should never touch the real database.

// MemoryAttemptLog is an AttemptLog backed by a slice.
type MemoryAttemptLog struct {
	mu      sync.Mutex
	records map[string][]attempt.Record
}

func NewMemoryAttemptLog() *MemoryAttemptLog {
	return &MemoryAttemptLog{records: make(map[string][]attempt.Record)}
}

func (m *MemoryAttemptLog) Append(_ context.Context, r attempt.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	log := append(m.records[r.ChildID], r)
	if len(log) > AttemptCap {
		log = log[len(log)-AttemptCap:]
	}
	m.records[r.ChildID] = log
	return nil
}

func (m *MemoryAttemptLog) Window(_ context.Context, childID string, n int) ([]attempt.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]attempt.Record(nil), attempt.LastN(m.records[childID], n)...), nil
}

func (m *MemoryAttemptLog) All(_ context.Context, childID string) ([]attempt.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]attempt.Record(nil), m.records[childID]...), nil
}

func (m *MemoryAttemptLog) Count(_ context.Context, childID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records[childID]), nil
}

func (m *MemoryAttemptLog) Clear(_ context.Context, childID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, childID)
	return nil
}

// MemoryProfileRepo is a ProfileRepo backed by a map.
type MemoryProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]Profile
}

func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{profiles: make(map[string]Profile)}
}

func (m *MemoryProfileRepo) Get(_ context.Context, childID string) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[childID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *MemoryProfileRepo) Upsert(_ context.Context, p *Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.ChildID] = *p
	return nil
}

func (m *MemoryProfileRepo) List(_ context.Context) ([]Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// MemoryInsightStore is an InsightStore backed by a slice.
type MemoryInsightStore struct {
	mu       sync.Mutex
	insights map[string][]insights.Insight
}

func NewMemoryInsightStore() *MemoryInsightStore {
	return &MemoryInsightStore{insights: make(map[string][]insights.Insight)}
}

func (m *MemoryInsightStore) Append(_ context.Context, ins insights.Insight) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	history := append(m.insights[ins.ChildID], ins)
	if len(history) > InsightCap {
		history = history[len(history)-InsightCap:]
	}
	m.insights[ins.ChildID] = history
	return nil
}

func (m *MemoryInsightStore) Read(_ context.Context, childID string, limit int) ([]insights.Insight, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	history := m.insights[childID]

	// Newest first, matching the database-backed store.
	out := make([]insights.Insight, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		out = append(out, history[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *MemoryInsightStore) Clear(_ context.Context, childID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.insights, childID)
	return nil
}
