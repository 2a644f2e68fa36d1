package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChildProfile is the mutable per-child state: current level and
// personalization settings. Unlike events, profiles are updated in
// place.
type ChildProfile struct {
	ent.Schema
}

func (ChildProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("child_id").
			NotEmpty().
			Unique().
			Comment("Stable identifier, typically the lowercased name"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.Int("current_level").
			Default(1).
			Comment("Difficulty level the next session starts at"),
		field.Ints("favorite_numbers").
			Optional().
			Comment("Numbers biased into problem generation"),
		field.Bool("review_mode").
			Default(false).
			Comment("Whether the next session starts in review mode"),
		field.Int("total_attempts").
			Default(0).
			NonNegative().
			Comment("Lifetime attempt count; survives attempt-log truncation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ChildProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id"),
	}
}
