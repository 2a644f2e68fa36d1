// Code generated by ent, DO NOT EDIT.

package childprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/numbond/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLTE(FieldID, id))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldChildID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldName, v))
}

// CurrentLevel applies equality check predicate on the "current_level" field. It's identical to CurrentLevelEQ.
func CurrentLevel(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldCurrentLevel, v))
}

// ReviewMode applies equality check predicate on the "review_mode" field. It's identical to ReviewModeEQ.
func ReviewMode(v bool) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldReviewMode, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldTotalAttempts, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotIn(FieldChildID, vs...))
}

// ChildIDGT applies the GT predicate on the "child_id" field.
func ChildIDGT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGT(FieldChildID, v))
}

// ChildIDGTE applies the GTE predicate on the "child_id" field.
func ChildIDGTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGTE(FieldChildID, v))
}

// ChildIDLT applies the LT predicate on the "child_id" field.
func ChildIDLT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLT(FieldChildID, v))
}

// ChildIDLTE applies the LTE predicate on the "child_id" field.
func ChildIDLTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLTE(FieldChildID, v))
}

// ChildIDContains applies the Contains predicate on the "child_id" field.
func ChildIDContains(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContains(FieldChildID, v))
}

// ChildIDHasPrefix applies the HasPrefix predicate on the "child_id" field.
func ChildIDHasPrefix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasPrefix(FieldChildID, v))
}

// ChildIDHasSuffix applies the HasSuffix predicate on the "child_id" field.
func ChildIDHasSuffix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasSuffix(FieldChildID, v))
}

// ChildIDEqualFold applies the EqualFold predicate on the "child_id" field.
func ChildIDEqualFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEqualFold(FieldChildID, v))
}

// ChildIDContainsFold applies the ContainsFold predicate on the "child_id" field.
func ChildIDContainsFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContainsFold(FieldChildID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldContainsFold(FieldName, v))
}

// CurrentLevelEQ applies the EQ predicate on the "current_level" field.
func CurrentLevelEQ(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldCurrentLevel, v))
}

// CurrentLevelNEQ applies the NEQ predicate on the "current_level" field.
func CurrentLevelNEQ(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldCurrentLevel, v))
}

// CurrentLevelIn applies the In predicate on the "current_level" field.
func CurrentLevelIn(vs ...int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIn(FieldCurrentLevel, vs...))
}

// CurrentLevelNotIn applies the NotIn predicate on the "current_level" field.
func CurrentLevelNotIn(vs ...int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotIn(FieldCurrentLevel, vs...))
}

// CurrentLevelGT applies the GT predicate on the "current_level" field.
func CurrentLevelGT(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGT(FieldCurrentLevel, v))
}

// CurrentLevelGTE applies the GTE predicate on the "current_level" field.
func CurrentLevelGTE(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGTE(FieldCurrentLevel, v))
}

// CurrentLevelLT applies the LT predicate on the "current_level" field.
func CurrentLevelLT(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLT(FieldCurrentLevel, v))
}

// CurrentLevelLTE applies the LTE predicate on the "current_level" field.
func CurrentLevelLTE(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLTE(FieldCurrentLevel, v))
}

// FavoriteNumbersIsNil applies the IsNil predicate on the "favorite_numbers" field.
func FavoriteNumbersIsNil() predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIsNull(FieldFavoriteNumbers))
}

// FavoriteNumbersNotNil applies the NotNil predicate on the "favorite_numbers" field.
func FavoriteNumbersNotNil() predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotNull(FieldFavoriteNumbers))
}

// ReviewModeEQ applies the EQ predicate on the "review_mode" field.
func ReviewModeEQ(v bool) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldReviewMode, v))
}

// ReviewModeNEQ applies the NEQ predicate on the "review_mode" field.
func ReviewModeNEQ(v bool) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldReviewMode, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLTE(FieldTotalAttempts, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ChildProfile {
	return predicate.ChildProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChildProfile) predicate.ChildProfile {
	return predicate.ChildProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChildProfile) predicate.ChildProfile {
	return predicate.ChildProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChildProfile) predicate.ChildProfile {
	return predicate.ChildProfile(sql.NotPredicates(p))
}
