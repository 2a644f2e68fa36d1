package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single problem attempt by a child.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("child_id").
			NotEmpty().
			Comment("Profile this attempt belongs to"),
		field.String("problem_id").
			NotEmpty().
			Comment("Generated problem identifier"),
		field.Int("level").
			Comment("Difficulty level 1-4 at time of attempt"),
		field.String("op").
			NotEmpty().
			Comment("+ or -"),
		field.Int("operand1").
			Comment("Leading operand"),
		field.Int("operand2").
			Comment("Trailing operand"),
		field.Int("answer_given").
			Comment("What the child entered"),
		field.Bool("correct").
			Comment("Whether the final answer was correct"),
		field.Float("time_secs").
			Comment("Seconds from display to submission"),
		field.Bool("hint_used").
			Comment("Whether a hint was shown before submission"),
		field.String("strategy").
			NotEmpty().
			Comment("basic, make_ten, crossing, or review"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id"),
		index.Fields("child_id", "timestamp"),
		index.Fields("correct"),
	}
}
