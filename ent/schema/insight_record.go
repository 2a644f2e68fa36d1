package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InsightRecord is a stored learning insight produced by an analysis
// run. The history per child is capped; the store truncates the oldest.
type InsightRecord struct {
	ent.Schema
}

func (InsightRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InsightRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("insight_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned at generation"),
		field.String("child_id").
			NotEmpty().
			Comment("Profile this insight is about"),
		field.String("pattern_type").
			NotEmpty().
			Comment("strength or weakness"),
		field.String("category").
			NotEmpty().
			Comment("dimension:value bucket, or overall"),
		field.String("title").
			NotEmpty(),
		field.String("message").
			NotEmpty(),
		field.Strings("actionable_steps").
			Optional().
			Comment("Parent-facing suggestions"),
		field.String("priority").
			NotEmpty().
			Comment("low, medium, or high"),
		field.JSON("corrective", map[string]any{}).
			Optional().
			Comment("Machine-actionable flags for the session layer"),
	}
}

func (InsightRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id"),
		index.Fields("child_id", "timestamp"),
	}
}
