// Code generated by ent, DO NOT EDIT.

package insightrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/numbond/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldTimestamp, v))
}

// InsightID applies equality check predicate on the "insight_id" field. It's identical to InsightIDEQ.
func InsightID(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldInsightID, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldChildID, v))
}

// PatternType applies equality check predicate on the "pattern_type" field. It's identical to PatternTypeEQ.
func PatternType(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldPatternType, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldCategory, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldTitle, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldMessage, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldPriority, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLTE(FieldTimestamp, v))
}

// InsightIDEQ applies the EQ predicate on the "insight_id" field.
func InsightIDEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldInsightID, v))
}

// InsightIDNEQ applies the NEQ predicate on the "insight_id" field.
func InsightIDNEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNEQ(FieldInsightID, v))
}

// InsightIDIn applies the In predicate on the "insight_id" field.
func InsightIDIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldIn(FieldInsightID, vs...))
}

// InsightIDNotIn applies the NotIn predicate on the "insight_id" field.
func InsightIDNotIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNotIn(FieldInsightID, vs...))
}

// InsightIDGT applies the GT predicate on the "insight_id" field.
func InsightIDGT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGT(FieldInsightID, v))
}

// InsightIDGTE applies the GTE predicate on the "insight_id" field.
func InsightIDGTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGTE(FieldInsightID, v))
}

// InsightIDLT applies the LT predicate on the "insight_id" field.
func InsightIDLT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLT(FieldInsightID, v))
}

// InsightIDLTE applies the LTE predicate on the "insight_id" field.
func InsightIDLTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLTE(FieldInsightID, v))
}

// InsightIDContains applies the Contains predicate on the "insight_id" field.
func InsightIDContains(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContains(FieldInsightID, v))
}

// InsightIDHasPrefix applies the HasPrefix predicate on the "insight_id" field.
func InsightIDHasPrefix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasPrefix(FieldInsightID, v))
}

// InsightIDHasSuffix applies the HasSuffix predicate on the "insight_id" field.
func InsightIDHasSuffix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasSuffix(FieldInsightID, v))
}

// InsightIDEqualFold applies the EqualFold predicate on the "insight_id" field.
func InsightIDEqualFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEqualFold(FieldInsightID, v))
}

// InsightIDContainsFold applies the ContainsFold predicate on the "insight_id" field.
func InsightIDContainsFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContainsFold(FieldInsightID, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNotIn(FieldChildID, vs...))
}

// ChildIDGT applies the GT predicate on the "child_id" field.
func ChildIDGT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGT(FieldChildID, v))
}

// ChildIDGTE applies the GTE predicate on the "child_id" field.
func ChildIDGTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGTE(FieldChildID, v))
}

// ChildIDLT applies the LT predicate on the "child_id" field.
func ChildIDLT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLT(FieldChildID, v))
}

// ChildIDLTE applies the LTE predicate on the "child_id" field.
func ChildIDLTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLTE(FieldChildID, v))
}

// ChildIDContains applies the Contains predicate on the "child_id" field.
func ChildIDContains(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContains(FieldChildID, v))
}

// ChildIDHasPrefix applies the HasPrefix predicate on the "child_id" field.
func ChildIDHasPrefix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasPrefix(FieldChildID, v))
}

// ChildIDHasSuffix applies the HasSuffix predicate on the "child_id" field.
func ChildIDHasSuffix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasSuffix(FieldChildID, v))
}

// ChildIDEqualFold applies the EqualFold predicate on the "child_id" field.
func ChildIDEqualFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEqualFold(FieldChildID, v))
}

// ChildIDContainsFold applies the ContainsFold predicate on the "child_id" field.
func ChildIDContainsFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContainsFold(FieldChildID, v))
}

// PatternTypeEQ applies the EQ predicate on the "pattern_type" field.
func PatternTypeEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldPatternType, v))
}

// PatternTypeNEQ applies the NEQ predicate on the "pattern_type" field.
func PatternTypeNEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNEQ(FieldPatternType, v))
}

// PatternTypeIn applies the In predicate on the "pattern_type" field.
func PatternTypeIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldIn(FieldPatternType, vs...))
}

// PatternTypeNotIn applies the NotIn predicate on the "pattern_type" field.
func PatternTypeNotIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNotIn(FieldPatternType, vs...))
}

// PatternTypeGT applies the GT predicate on the "pattern_type" field.
func PatternTypeGT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGT(FieldPatternType, v))
}

// PatternTypeGTE applies the GTE predicate on the "pattern_type" field.
func PatternTypeGTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGTE(FieldPatternType, v))
}

// PatternTypeLT applies the LT predicate on the "pattern_type" field.
func PatternTypeLT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLT(FieldPatternType, v))
}

// PatternTypeLTE applies the LTE predicate on the "pattern_type" field.
func PatternTypeLTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLTE(FieldPatternType, v))
}

// PatternTypeContains applies the Contains predicate on the "pattern_type" field.
func PatternTypeContains(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContains(FieldPatternType, v))
}

// PatternTypeHasPrefix applies the HasPrefix predicate on the "pattern_type" field.
func PatternTypeHasPrefix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasPrefix(FieldPatternType, v))
}

// PatternTypeHasSuffix applies the HasSuffix predicate on the "pattern_type" field.
func PatternTypeHasSuffix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasSuffix(FieldPatternType, v))
}

// PatternTypeEqualFold applies the EqualFold predicate on the "pattern_type" field.
func PatternTypeEqualFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEqualFold(FieldPatternType, v))
}

// PatternTypeContainsFold applies the ContainsFold predicate on the "pattern_type" field.
func PatternTypeContainsFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContainsFold(FieldPatternType, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContainsFold(FieldCategory, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContainsFold(FieldTitle, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContainsFold(FieldMessage, v))
}

// ActionableStepsIsNil applies the IsNil predicate on the "actionable_steps" field.
func ActionableStepsIsNil() predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldIsNull(FieldActionableSteps))
}

// ActionableStepsNotNil applies the NotNil predicate on the "actionable_steps" field.
func ActionableStepsNotNil() predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNotNull(FieldActionableSteps))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldLTE(FieldPriority, v))
}

// PriorityContains applies the Contains predicate on the "priority" field.
func PriorityContains(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContains(FieldPriority, v))
}

// PriorityHasPrefix applies the HasPrefix predicate on the "priority" field.
func PriorityHasPrefix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasPrefix(FieldPriority, v))
}

// PriorityHasSuffix applies the HasSuffix predicate on the "priority" field.
func PriorityHasSuffix(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldHasSuffix(FieldPriority, v))
}

// PriorityEqualFold applies the EqualFold predicate on the "priority" field.
func PriorityEqualFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldEqualFold(FieldPriority, v))
}

// PriorityContainsFold applies the ContainsFold predicate on the "priority" field.
func PriorityContainsFold(v string) predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldContainsFold(FieldPriority, v))
}

// CorrectiveIsNil applies the IsNil predicate on the "corrective" field.
func CorrectiveIsNil() predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldIsNull(FieldCorrective))
}

// CorrectiveNotNil applies the NotNil predicate on the "corrective" field.
func CorrectiveNotNil() predicate.InsightRecord {
	return predicate.InsightRecord(sql.FieldNotNull(FieldCorrective))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InsightRecord) predicate.InsightRecord {
	return predicate.InsightRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InsightRecord) predicate.InsightRecord {
	return predicate.InsightRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InsightRecord) predicate.InsightRecord {
	return predicate.InsightRecord(sql.NotPredicates(p))
}
