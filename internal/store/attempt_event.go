package store

import (
	"context"

	"github.com/abhisek/numbond/ent"
	"github.com/abhisek/numbond/ent/attemptevent"
	"github.com/abhisek/numbond/internal/attempt"
	"github.com/abhisek/numbond/internal/problemgen"
)

// attemptLog implements AttemptLog using the ent client.
type attemptLog struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (l *attemptLog) Append(ctx context.Context, r attempt.Record) error {
	seqNum, err := l.seq.Next(ctx)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}

	_, err = l.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(r.Timestamp).
		SetChildID(r.ChildID).
		SetProblemID(r.ProblemID).
		SetLevel(int(r.Level)).
		SetOp(string(r.Op)).
		SetOperand1(r.Operand1).
		SetOperand2(r.Operand2).
		SetAnswerGiven(r.Answer).
		SetCorrect(r.Correct).
		SetTimeSecs(r.TimeSecs).
		SetHintUsed(r.HintUsed).
		SetStrategy(string(r.Strategy)).
		Save(ctx)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}

	return l.truncate(ctx, r.ChildID)
}

// truncate drops the oldest rows past the per-child cap.
func (l *attemptLog) truncate(ctx context.Context, childID string) error {
	count, err := l.client.AttemptEvent.Query().
		Where(attemptevent.ChildID(childID)).
		Count(ctx)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	if count <= AttemptCap {
		return nil
	}

	stale, err := l.client.AttemptEvent.Query().
		Where(attemptevent.ChildID(childID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		Limit(count - AttemptCap).
		IDs(ctx)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}

	_, err = l.client.AttemptEvent.Delete().
		Where(attemptevent.IDIn(stale...)).
		Exec(ctx)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	return nil
}

func (l *attemptLog) Window(ctx context.Context, childID string, n int) ([]attempt.Record, error) {
	events, err := l.client.AttemptEvent.Query().
		Where(attemptevent.ChildID(childID)).
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}

	// Reverse to oldest-first, the order the analyzers expect.
	records := make([]attempt.Record, len(events))
	for i, e := range events {
		records[len(events)-1-i] = toRecord(e)
	}
	return records, nil
}

func (l *attemptLog) All(ctx context.Context, childID string) ([]attempt.Record, error) {
	events, err := l.client.AttemptEvent.Query().
		Where(attemptevent.ChildID(childID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}

	records := make([]attempt.Record, len(events))
	for i, e := range events {
		records[i] = toRecord(e)
	}
	return records, nil
}

func (l *attemptLog) Count(ctx context.Context, childID string) (int, error) {
	count, err := l.client.AttemptEvent.Query().
		Where(attemptevent.ChildID(childID)).
		Count(ctx)
	if err != nil {
		return 0, &StorageError{Op: "query", Err: err}
	}
	return count, nil
}

func (l *attemptLog) Clear(ctx context.Context, childID string) error {
	_, err := l.client.AttemptEvent.Delete().
		Where(attemptevent.ChildID(childID)).
		Exec(ctx)
	if err != nil {
		return &StorageError{Op: "clear", Err: err}
	}
	return nil
}

func toRecord(e *ent.AttemptEvent) attempt.Record {
	return attempt.Record{
		ChildID:   e.ChildID,
		ProblemID: e.ProblemID,
		Level:     problemgen.Level(e.Level),
		Op:        problemgen.Op(e.Op),
		Operand1:  e.Operand1,
		Operand2:  e.Operand2,
		Answer:    e.AnswerGiven,
		Correct:   e.Correct,
		TimeSecs:  e.TimeSecs,
		HintUsed:  e.HintUsed,
		Strategy:  problemgen.Strategy(e.Strategy),
		Timestamp: e.Timestamp,
	}
}
