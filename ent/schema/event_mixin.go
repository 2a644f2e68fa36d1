package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin carries the ordering fields every event row needs: a
// global sequence number and the wall-clock time it was appended.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("position in the global event order"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC append time"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	// Replays scan by time range; sequence is already indexed by its
	// unique constraint.
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
