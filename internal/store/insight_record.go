package store

import (
	"context"

	"github.com/abhisek/numbond/ent"
	"github.com/abhisek/numbond/ent/insightrecord"
	"github.com/abhisek/numbond/internal/insights"
)

// insightStore implements InsightStore using the ent client.
type insightStore struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (s *insightStore) Append(ctx context.Context, ins insights.Insight) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}

	builder := s.client.InsightRecord.Create().
		SetSequence(seqNum).
		SetTimestamp(ins.GeneratedAt).
		SetInsightID(ins.ID).
		SetChildID(ins.ChildID).
		SetPatternType(string(ins.Type)).
		SetCategory(ins.Category).
		SetTitle(ins.Title).
		SetMessage(ins.Message).
		SetPriority(string(ins.Priority))

	if len(ins.ActionableSteps) > 0 {
		builder = builder.SetActionableSteps(ins.ActionableSteps)
	}
	if len(ins.Corrective) > 0 {
		builder = builder.SetCorrective(ins.Corrective)
	}

	if _, err := builder.Save(ctx); err != nil {
		return &StorageError{Op: "append", Err: err}
	}

	return s.truncate(ctx, ins.ChildID)
}

func (s *insightStore) truncate(ctx context.Context, childID string) error {
	count, err := s.client.InsightRecord.Query().
		Where(insightrecord.ChildID(childID)).
		Count(ctx)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	if count <= InsightCap {
		return nil
	}

	stale, err := s.client.InsightRecord.Query().
		Where(insightrecord.ChildID(childID)).
		Order(ent.Asc(insightrecord.FieldSequence)).
		Limit(count - InsightCap).
		IDs(ctx)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}

	_, err = s.client.InsightRecord.Delete().
		Where(insightrecord.IDIn(stale...)).
		Exec(ctx)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	return nil
}

func (s *insightStore) Read(ctx context.Context, childID string, limit int) ([]insights.Insight, error) {
	q := s.client.InsightRecord.Query().
		Where(insightrecord.ChildID(childID)).
		Order(ent.Desc(insightrecord.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	records, err := q.All(ctx)
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}

	out := make([]insights.Insight, len(records))
	for i, r := range records {
		out[i] = insights.Insight{
			ID:              r.InsightID,
			ChildID:         r.ChildID,
			Type:            insights.PatternType(r.PatternType),
			Category:        r.Category,
			Title:           r.Title,
			Message:         r.Message,
			ActionableSteps: r.ActionableSteps,
			Priority:        insights.Priority(r.Priority),
			Corrective:      r.Corrective,
			GeneratedAt:     r.Timestamp,
		}
	}
	return out, nil
}

func (s *insightStore) Clear(ctx context.Context, childID string) error {
	_, err := s.client.InsightRecord.Delete().
		Where(insightrecord.ChildID(childID)).
		Exec(ctx)
	if err != nil {
		return &StorageError{Op: "clear", Err: err}
	}
	return nil
}
