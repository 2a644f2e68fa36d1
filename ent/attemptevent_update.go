// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/numbond/ent/attemptevent"
	"github.com/abhisek/numbond/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *AttemptEventUpdate) SetChildID(v string) *AttemptEventUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableChildID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *AttemptEventUpdate) SetProblemID(v string) *AttemptEventUpdate {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableProblemID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AttemptEventUpdate) SetLevel(v int) *AttemptEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLevel(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *AttemptEventUpdate) AddLevel(v int) *AttemptEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetOp sets the "op" field.
func (_u *AttemptEventUpdate) SetOp(v string) *AttemptEventUpdate {
	_u.mutation.SetOpField(v)
	return _u
}

// SetNillableOp sets the "op" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableOp(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetOp(*v)
	}
	return _u
}

// SetOperand1 sets the "operand1" field.
func (_u *AttemptEventUpdate) SetOperand1(v int) *AttemptEventUpdate {
	_u.mutation.ResetOperand1()
	_u.mutation.SetOperand1(v)
	return _u
}

// SetNillableOperand1 sets the "operand1" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableOperand1(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetOperand1(*v)
	}
	return _u
}

// AddOperand1 adds value to the "operand1" field.
func (_u *AttemptEventUpdate) AddOperand1(v int) *AttemptEventUpdate {
	_u.mutation.AddOperand1(v)
	return _u
}

// SetOperand2 sets the "operand2" field.
func (_u *AttemptEventUpdate) SetOperand2(v int) *AttemptEventUpdate {
	_u.mutation.ResetOperand2()
	_u.mutation.SetOperand2(v)
	return _u
}

// SetNillableOperand2 sets the "operand2" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableOperand2(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetOperand2(*v)
	}
	return _u
}

// AddOperand2 adds value to the "operand2" field.
func (_u *AttemptEventUpdate) AddOperand2(v int) *AttemptEventUpdate {
	_u.mutation.AddOperand2(v)
	return _u
}

// SetAnswerGiven sets the "answer_given" field.
func (_u *AttemptEventUpdate) SetAnswerGiven(v int) *AttemptEventUpdate {
	_u.mutation.ResetAnswerGiven()
	_u.mutation.SetAnswerGiven(v)
	return _u
}

// SetNillableAnswerGiven sets the "answer_given" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAnswerGiven(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetAnswerGiven(*v)
	}
	return _u
}

// AddAnswerGiven adds value to the "answer_given" field.
func (_u *AttemptEventUpdate) AddAnswerGiven(v int) *AttemptEventUpdate {
	_u.mutation.AddAnswerGiven(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeSecs sets the "time_secs" field.
func (_u *AttemptEventUpdate) SetTimeSecs(v float64) *AttemptEventUpdate {
	_u.mutation.ResetTimeSecs()
	_u.mutation.SetTimeSecs(v)
	return _u
}

// SetNillableTimeSecs sets the "time_secs" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeSecs(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeSecs(*v)
	}
	return _u
}

// AddTimeSecs adds value to the "time_secs" field.
func (_u *AttemptEventUpdate) AddTimeSecs(v float64) *AttemptEventUpdate {
	_u.mutation.AddTimeSecs(v)
	return _u
}

// SetHintUsed sets the "hint_used" field.
func (_u *AttemptEventUpdate) SetHintUsed(v bool) *AttemptEventUpdate {
	_u.mutation.SetHintUsed(v)
	return _u
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableHintUsed(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetHintUsed(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *AttemptEventUpdate) SetStrategy(v string) *AttemptEventUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableStrategy(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.ChildID(); ok {
		if err := attemptevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemID(); ok {
		if err := attemptevent.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.problem_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetOp(); ok {
		if err := attemptevent.OpValidator(v); err != nil {
			return &ValidationError{Name: "op", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.op": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := attemptevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.strategy": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(attemptevent.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(attemptevent.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GetOp(); ok {
		_spec.SetField(attemptevent.FieldOp, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operand1(); ok {
		_spec.SetField(attemptevent.FieldOperand1, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOperand1(); ok {
		_spec.AddField(attemptevent.FieldOperand1, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Operand2(); ok {
		_spec.SetField(attemptevent.FieldOperand2, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOperand2(); ok {
		_spec.AddField(attemptevent.FieldOperand2, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerGiven(); ok {
		_spec.SetField(attemptevent.FieldAnswerGiven, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerGiven(); ok {
		_spec.AddField(attemptevent.FieldAnswerGiven, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSecs(); ok {
		_spec.SetField(attemptevent.FieldTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSecs(); ok {
		_spec.AddField(attemptevent.FieldTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HintUsed(); ok {
		_spec.SetField(attemptevent.FieldHintUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(attemptevent.FieldStrategy, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetChildID sets the "child_id" field.
func (_u *AttemptEventUpdateOne) SetChildID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableChildID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *AttemptEventUpdateOne) SetProblemID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableProblemID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AttemptEventUpdateOne) SetLevel(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLevel(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *AttemptEventUpdateOne) AddLevel(v int) *AttemptEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetOp sets the "op" field.
func (_u *AttemptEventUpdateOne) SetOp(v string) *AttemptEventUpdateOne {
	_u.mutation.SetOpField(v)
	return _u
}

// SetNillableOp sets the "op" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableOp(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetOp(*v)
	}
	return _u
}

// SetOperand1 sets the "operand1" field.
func (_u *AttemptEventUpdateOne) SetOperand1(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetOperand1()
	_u.mutation.SetOperand1(v)
	return _u
}

// SetNillableOperand1 sets the "operand1" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableOperand1(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetOperand1(*v)
	}
	return _u
}

// AddOperand1 adds value to the "operand1" field.
func (_u *AttemptEventUpdateOne) AddOperand1(v int) *AttemptEventUpdateOne {
	_u.mutation.AddOperand1(v)
	return _u
}

// SetOperand2 sets the "operand2" field.
func (_u *AttemptEventUpdateOne) SetOperand2(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetOperand2()
	_u.mutation.SetOperand2(v)
	return _u
}

// SetNillableOperand2 sets the "operand2" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableOperand2(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetOperand2(*v)
	}
	return _u
}

// AddOperand2 adds value to the "operand2" field.
func (_u *AttemptEventUpdateOne) AddOperand2(v int) *AttemptEventUpdateOne {
	_u.mutation.AddOperand2(v)
	return _u
}

// SetAnswerGiven sets the "answer_given" field.
func (_u *AttemptEventUpdateOne) SetAnswerGiven(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetAnswerGiven()
	_u.mutation.SetAnswerGiven(v)
	return _u
}

// SetNillableAnswerGiven sets the "answer_given" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAnswerGiven(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAnswerGiven(*v)
	}
	return _u
}

// AddAnswerGiven adds value to the "answer_given" field.
func (_u *AttemptEventUpdateOne) AddAnswerGiven(v int) *AttemptEventUpdateOne {
	_u.mutation.AddAnswerGiven(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeSecs sets the "time_secs" field.
func (_u *AttemptEventUpdateOne) SetTimeSecs(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeSecs()
	_u.mutation.SetTimeSecs(v)
	return _u
}

// SetNillableTimeSecs sets the "time_secs" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeSecs(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeSecs(*v)
	}
	return _u
}

// AddTimeSecs adds value to the "time_secs" field.
func (_u *AttemptEventUpdateOne) AddTimeSecs(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddTimeSecs(v)
	return _u
}

// SetHintUsed sets the "hint_used" field.
func (_u *AttemptEventUpdateOne) SetHintUsed(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetHintUsed(v)
	return _u
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableHintUsed(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetHintUsed(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *AttemptEventUpdateOne) SetStrategy(v string) *AttemptEventUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableStrategy(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.ChildID(); ok {
		if err := attemptevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemID(); ok {
		if err := attemptevent.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.problem_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetOp(); ok {
		if err := attemptevent.OpValidator(v); err != nil {
			return &ValidationError{Name: "op", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.op": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := attemptevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.strategy": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(attemptevent.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(attemptevent.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GetOp(); ok {
		_spec.SetField(attemptevent.FieldOp, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operand1(); ok {
		_spec.SetField(attemptevent.FieldOperand1, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOperand1(); ok {
		_spec.AddField(attemptevent.FieldOperand1, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Operand2(); ok {
		_spec.SetField(attemptevent.FieldOperand2, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOperand2(); ok {
		_spec.AddField(attemptevent.FieldOperand2, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerGiven(); ok {
		_spec.SetField(attemptevent.FieldAnswerGiven, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerGiven(); ok {
		_spec.AddField(attemptevent.FieldAnswerGiven, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSecs(); ok {
		_spec.SetField(attemptevent.FieldTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSecs(); ok {
		_spec.AddField(attemptevent.FieldTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HintUsed(); ok {
		_spec.SetField(attemptevent.FieldHintUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(attemptevent.FieldStrategy, field.TypeString, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
