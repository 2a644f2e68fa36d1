// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/numbond/ent/attemptevent"
	"github.com/abhisek/numbond/ent/childprofile"
	"github.com/abhisek/numbond/ent/insightrecord"
	"github.com/abhisek/numbond/ent/llmrequestevent"
	"github.com/abhisek/numbond/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescChildID is the schema descriptor for child_id field.
	attempteventDescChildID := attempteventFields[0].Descriptor()
	// attemptevent.ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	attemptevent.ChildIDValidator = attempteventDescChildID.Validators[0].(func(string) error)
	// attempteventDescProblemID is the schema descriptor for problem_id field.
	attempteventDescProblemID := attempteventFields[1].Descriptor()
	// attemptevent.ProblemIDValidator is a validator for the "problem_id" field. It is called by the builders before save.
	attemptevent.ProblemIDValidator = attempteventDescProblemID.Validators[0].(func(string) error)
	// attempteventDescOp is the schema descriptor for op field.
	attempteventDescOp := attempteventFields[3].Descriptor()
	// attemptevent.OpValidator is a validator for the "op" field. It is called by the builders before save.
	attemptevent.OpValidator = attempteventDescOp.Validators[0].(func(string) error)
	// attempteventDescStrategy is the schema descriptor for strategy field.
	attempteventDescStrategy := attempteventFields[10].Descriptor()
	// attemptevent.StrategyValidator is a validator for the "strategy" field. It is called by the builders before save.
	attemptevent.StrategyValidator = attempteventDescStrategy.Validators[0].(func(string) error)
	childprofileFields := schema.ChildProfile{}.Fields()
	_ = childprofileFields
	// childprofileDescChildID is the schema descriptor for child_id field.
	childprofileDescChildID := childprofileFields[0].Descriptor()
	// childprofile.ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	childprofile.ChildIDValidator = childprofileDescChildID.Validators[0].(func(string) error)
	// childprofileDescName is the schema descriptor for name field.
	childprofileDescName := childprofileFields[1].Descriptor()
	// childprofile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	childprofile.NameValidator = childprofileDescName.Validators[0].(func(string) error)
	// childprofileDescCurrentLevel is the schema descriptor for current_level field.
	childprofileDescCurrentLevel := childprofileFields[2].Descriptor()
	// childprofile.DefaultCurrentLevel holds the default value on creation for the current_level field.
	childprofile.DefaultCurrentLevel = childprofileDescCurrentLevel.Default.(int)
	// childprofileDescReviewMode is the schema descriptor for review_mode field.
	childprofileDescReviewMode := childprofileFields[4].Descriptor()
	// childprofile.DefaultReviewMode holds the default value on creation for the review_mode field.
	childprofile.DefaultReviewMode = childprofileDescReviewMode.Default.(bool)
	// childprofileDescTotalAttempts is the schema descriptor for total_attempts field.
	childprofileDescTotalAttempts := childprofileFields[5].Descriptor()
	// childprofile.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	childprofile.DefaultTotalAttempts = childprofileDescTotalAttempts.Default.(int)
	// childprofile.TotalAttemptsValidator is a validator for the "total_attempts" field. It is called by the builders before save.
	childprofile.TotalAttemptsValidator = childprofileDescTotalAttempts.Validators[0].(func(int) error)
	// childprofileDescCreatedAt is the schema descriptor for created_at field.
	childprofileDescCreatedAt := childprofileFields[6].Descriptor()
	// childprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	childprofile.DefaultCreatedAt = childprofileDescCreatedAt.Default.(func() time.Time)
	// childprofileDescUpdatedAt is the schema descriptor for updated_at field.
	childprofileDescUpdatedAt := childprofileFields[7].Descriptor()
	// childprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	childprofile.DefaultUpdatedAt = childprofileDescUpdatedAt.Default.(func() time.Time)
	// childprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	childprofile.UpdateDefaultUpdatedAt = childprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	insightrecordMixin := schema.InsightRecord{}.Mixin()
	insightrecordMixinFields0 := insightrecordMixin[0].Fields()
	_ = insightrecordMixinFields0
	insightrecordFields := schema.InsightRecord{}.Fields()
	_ = insightrecordFields
	// insightrecordDescTimestamp is the schema descriptor for timestamp field.
	insightrecordDescTimestamp := insightrecordMixinFields0[1].Descriptor()
	// insightrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	insightrecord.DefaultTimestamp = insightrecordDescTimestamp.Default.(func() time.Time)
	// insightrecordDescInsightID is the schema descriptor for insight_id field.
	insightrecordDescInsightID := insightrecordFields[0].Descriptor()
	// insightrecord.InsightIDValidator is a validator for the "insight_id" field. It is called by the builders before save.
	insightrecord.InsightIDValidator = insightrecordDescInsightID.Validators[0].(func(string) error)
	// insightrecordDescChildID is the schema descriptor for child_id field.
	insightrecordDescChildID := insightrecordFields[1].Descriptor()
	// insightrecord.ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	insightrecord.ChildIDValidator = insightrecordDescChildID.Validators[0].(func(string) error)
	// insightrecordDescPatternType is the schema descriptor for pattern_type field.
	insightrecordDescPatternType := insightrecordFields[2].Descriptor()
	// insightrecord.PatternTypeValidator is a validator for the "pattern_type" field. It is called by the builders before save.
	insightrecord.PatternTypeValidator = insightrecordDescPatternType.Validators[0].(func(string) error)
	// insightrecordDescCategory is the schema descriptor for category field.
	insightrecordDescCategory := insightrecordFields[3].Descriptor()
	// insightrecord.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	insightrecord.CategoryValidator = insightrecordDescCategory.Validators[0].(func(string) error)
	// insightrecordDescTitle is the schema descriptor for title field.
	insightrecordDescTitle := insightrecordFields[4].Descriptor()
	// insightrecord.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	insightrecord.TitleValidator = insightrecordDescTitle.Validators[0].(func(string) error)
	// insightrecordDescMessage is the schema descriptor for message field.
	insightrecordDescMessage := insightrecordFields[5].Descriptor()
	// insightrecord.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	insightrecord.MessageValidator = insightrecordDescMessage.Validators[0].(func(string) error)
	// insightrecordDescPriority is the schema descriptor for priority field.
	insightrecordDescPriority := insightrecordFields[7].Descriptor()
	// insightrecord.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	insightrecord.PriorityValidator = insightrecordDescPriority.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
}
