// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "child_id", Type: field.TypeString},
		{Name: "problem_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "op", Type: field.TypeString},
		{Name: "operand1", Type: field.TypeInt},
		{Name: "operand2", Type: field.TypeInt},
		{Name: "answer_given", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_secs", Type: field.TypeFloat64},
		{Name: "hint_used", Type: field.TypeBool},
		{Name: "strategy", Type: field.TypeString},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_child_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_child_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[10]},
			},
		},
	}
	// ChildProfilesColumns holds the columns for the "child_profiles" table.
	ChildProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "child_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "current_level", Type: field.TypeInt, Default: 1},
		{Name: "favorite_numbers", Type: field.TypeJSON, Nullable: true},
		{Name: "review_mode", Type: field.TypeBool, Default: false},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChildProfilesTable holds the schema information for the "child_profiles" table.
	ChildProfilesTable = &schema.Table{
		Name:       "child_profiles",
		Columns:    ChildProfilesColumns,
		PrimaryKey: []*schema.Column{ChildProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "childprofile_child_id",
				Unique:  false,
				Columns: []*schema.Column{ChildProfilesColumns[1]},
			},
		},
	}
	// InsightRecordsColumns holds the columns for the "insight_records" table.
	InsightRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "insight_id", Type: field.TypeString, Unique: true},
		{Name: "child_id", Type: field.TypeString},
		{Name: "pattern_type", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "message", Type: field.TypeString},
		{Name: "actionable_steps", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeString},
		{Name: "corrective", Type: field.TypeJSON, Nullable: true},
	}
	// InsightRecordsTable holds the schema information for the "insight_records" table.
	InsightRecordsTable = &schema.Table{
		Name:       "insight_records",
		Columns:    InsightRecordsColumns,
		PrimaryKey: []*schema.Column{InsightRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "insightrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InsightRecordsColumns[2]},
			},
			{
				Name:    "insightrecord_child_id",
				Unique:  false,
				Columns: []*schema.Column{InsightRecordsColumns[4]},
			},
			{
				Name:    "insightrecord_child_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InsightRecordsColumns[4], InsightRecordsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		ChildProfilesTable,
		InsightRecordsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
