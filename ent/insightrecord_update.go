// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/numbond/ent/insightrecord"
	"github.com/abhisek/numbond/ent/predicate"
)

// InsightRecordUpdate is the builder for updating InsightRecord entities.
type InsightRecordUpdate struct {
	config
	hooks    []Hook
	mutation *InsightRecordMutation
}

// Where appends a list predicates to the InsightRecordUpdate builder.
func (_u *InsightRecordUpdate) Where(ps ...predicate.InsightRecord) *InsightRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInsightID sets the "insight_id" field.
func (_u *InsightRecordUpdate) SetInsightID(v string) *InsightRecordUpdate {
	_u.mutation.SetInsightID(v)
	return _u
}

// SetNillableInsightID sets the "insight_id" field if the given value is not nil.
func (_u *InsightRecordUpdate) SetNillableInsightID(v *string) *InsightRecordUpdate {
	if v != nil {
		_u.SetInsightID(*v)
	}
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *InsightRecordUpdate) SetChildID(v string) *InsightRecordUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *InsightRecordUpdate) SetNillableChildID(v *string) *InsightRecordUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *InsightRecordUpdate) SetPatternType(v string) *InsightRecordUpdate {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *InsightRecordUpdate) SetNillablePatternType(v *string) *InsightRecordUpdate {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InsightRecordUpdate) SetCategory(v string) *InsightRecordUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InsightRecordUpdate) SetNillableCategory(v *string) *InsightRecordUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *InsightRecordUpdate) SetTitle(v string) *InsightRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InsightRecordUpdate) SetNillableTitle(v *string) *InsightRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *InsightRecordUpdate) SetMessage(v string) *InsightRecordUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *InsightRecordUpdate) SetNillableMessage(v *string) *InsightRecordUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetActionableSteps sets the "actionable_steps" field.
func (_u *InsightRecordUpdate) SetActionableSteps(v []string) *InsightRecordUpdate {
	_u.mutation.SetActionableSteps(v)
	return _u
}

// AppendActionableSteps appends value to the "actionable_steps" field.
func (_u *InsightRecordUpdate) AppendActionableSteps(v []string) *InsightRecordUpdate {
	_u.mutation.AppendActionableSteps(v)
	return _u
}

// ClearActionableSteps clears the value of the "actionable_steps" field.
func (_u *InsightRecordUpdate) ClearActionableSteps() *InsightRecordUpdate {
	_u.mutation.ClearActionableSteps()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *InsightRecordUpdate) SetPriority(v string) *InsightRecordUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *InsightRecordUpdate) SetNillablePriority(v *string) *InsightRecordUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCorrective sets the "corrective" field.
func (_u *InsightRecordUpdate) SetCorrective(v map[string]interface{}) *InsightRecordUpdate {
	_u.mutation.SetCorrective(v)
	return _u
}

// ClearCorrective clears the value of the "corrective" field.
func (_u *InsightRecordUpdate) ClearCorrective() *InsightRecordUpdate {
	_u.mutation.ClearCorrective()
	return _u
}

// Mutation returns the InsightRecordMutation object of the builder.
func (_u *InsightRecordUpdate) Mutation() *InsightRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsightRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsightRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightRecordUpdate) check() error {
	if v, ok := _u.mutation.InsightID(); ok {
		if err := insightrecord.InsightIDValidator(v); err != nil {
			return &ValidationError{Name: "insight_id", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.insight_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChildID(); ok {
		if err := insightrecord.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternType(); ok {
		if err := insightrecord.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.pattern_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := insightrecord.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := insightrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := insightrecord.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := insightrecord.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insightrecord.Table, insightrecord.Columns, sqlgraph.NewFieldSpec(insightrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InsightID(); ok {
		_spec.SetField(insightrecord.FieldInsightID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(insightrecord.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(insightrecord.FieldPatternType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(insightrecord.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(insightrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(insightrecord.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionableSteps(); ok {
		_spec.SetField(insightrecord.FieldActionableSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionableSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insightrecord.FieldActionableSteps, value)
		})
	}
	if _u.mutation.ActionableStepsCleared() {
		_spec.ClearField(insightrecord.FieldActionableSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(insightrecord.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Corrective(); ok {
		_spec.SetField(insightrecord.FieldCorrective, field.TypeJSON, value)
	}
	if _u.mutation.CorrectiveCleared() {
		_spec.ClearField(insightrecord.FieldCorrective, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insightrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsightRecordUpdateOne is the builder for updating a single InsightRecord entity.
type InsightRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsightRecordMutation
}

// SetInsightID sets the "insight_id" field.
func (_u *InsightRecordUpdateOne) SetInsightID(v string) *InsightRecordUpdateOne {
	_u.mutation.SetInsightID(v)
	return _u
}

// SetNillableInsightID sets the "insight_id" field if the given value is not nil.
func (_u *InsightRecordUpdateOne) SetNillableInsightID(v *string) *InsightRecordUpdateOne {
	if v != nil {
		_u.SetInsightID(*v)
	}
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *InsightRecordUpdateOne) SetChildID(v string) *InsightRecordUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *InsightRecordUpdateOne) SetNillableChildID(v *string) *InsightRecordUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *InsightRecordUpdateOne) SetPatternType(v string) *InsightRecordUpdateOne {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *InsightRecordUpdateOne) SetNillablePatternType(v *string) *InsightRecordUpdateOne {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InsightRecordUpdateOne) SetCategory(v string) *InsightRecordUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InsightRecordUpdateOne) SetNillableCategory(v *string) *InsightRecordUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *InsightRecordUpdateOne) SetTitle(v string) *InsightRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InsightRecordUpdateOne) SetNillableTitle(v *string) *InsightRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *InsightRecordUpdateOne) SetMessage(v string) *InsightRecordUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *InsightRecordUpdateOne) SetNillableMessage(v *string) *InsightRecordUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetActionableSteps sets the "actionable_steps" field.
func (_u *InsightRecordUpdateOne) SetActionableSteps(v []string) *InsightRecordUpdateOne {
	_u.mutation.SetActionableSteps(v)
	return _u
}

// AppendActionableSteps appends value to the "actionable_steps" field.
func (_u *InsightRecordUpdateOne) AppendActionableSteps(v []string) *InsightRecordUpdateOne {
	_u.mutation.AppendActionableSteps(v)
	return _u
}

// ClearActionableSteps clears the value of the "actionable_steps" field.
func (_u *InsightRecordUpdateOne) ClearActionableSteps() *InsightRecordUpdateOne {
	_u.mutation.ClearActionableSteps()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *InsightRecordUpdateOne) SetPriority(v string) *InsightRecordUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *InsightRecordUpdateOne) SetNillablePriority(v *string) *InsightRecordUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCorrective sets the "corrective" field.
func (_u *InsightRecordUpdateOne) SetCorrective(v map[string]interface{}) *InsightRecordUpdateOne {
	_u.mutation.SetCorrective(v)
	return _u
}

// ClearCorrective clears the value of the "corrective" field.
func (_u *InsightRecordUpdateOne) ClearCorrective() *InsightRecordUpdateOne {
	_u.mutation.ClearCorrective()
	return _u
}

// Mutation returns the InsightRecordMutation object of the builder.
func (_u *InsightRecordUpdateOne) Mutation() *InsightRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the InsightRecordUpdate builder.
func (_u *InsightRecordUpdateOne) Where(ps ...predicate.InsightRecord) *InsightRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsightRecordUpdateOne) Select(field string, fields ...string) *InsightRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InsightRecord entity.
func (_u *InsightRecordUpdateOne) Save(ctx context.Context) (*InsightRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightRecordUpdateOne) SaveX(ctx context.Context) *InsightRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsightRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightRecordUpdateOne) check() error {
	if v, ok := _u.mutation.InsightID(); ok {
		if err := insightrecord.InsightIDValidator(v); err != nil {
			return &ValidationError{Name: "insight_id", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.insight_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChildID(); ok {
		if err := insightrecord.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternType(); ok {
		if err := insightrecord.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.pattern_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := insightrecord.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := insightrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := insightrecord.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := insightrecord.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightRecordUpdateOne) sqlSave(ctx context.Context) (_node *InsightRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insightrecord.Table, insightrecord.Columns, sqlgraph.NewFieldSpec(insightrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InsightRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insightrecord.FieldID)
		for _, f := range fields {
			if !insightrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insightrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InsightID(); ok {
		_spec.SetField(insightrecord.FieldInsightID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(insightrecord.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(insightrecord.FieldPatternType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(insightrecord.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(insightrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(insightrecord.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionableSteps(); ok {
		_spec.SetField(insightrecord.FieldActionableSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionableSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insightrecord.FieldActionableSteps, value)
		})
	}
	if _u.mutation.ActionableStepsCleared() {
		_spec.ClearField(insightrecord.FieldActionableSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(insightrecord.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Corrective(); ok {
		_spec.SetField(insightrecord.FieldCorrective, field.TypeJSON, value)
	}
	if _u.mutation.CorrectiveCleared() {
		_spec.ClearField(insightrecord.FieldCorrective, field.TypeJSON)
	}
	_node = &InsightRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insightrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
