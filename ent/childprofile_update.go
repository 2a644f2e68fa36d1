// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/numbond/ent/childprofile"
	"github.com/abhisek/numbond/ent/predicate"
)

// ChildProfileUpdate is the builder for updating ChildProfile entities.
type ChildProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ChildProfileMutation
}

// Where appends a list predicates to the ChildProfileUpdate builder.
func (_u *ChildProfileUpdate) Where(ps ...predicate.ChildProfile) *ChildProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *ChildProfileUpdate) SetChildID(v string) *ChildProfileUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *ChildProfileUpdate) SetNillableChildID(v *string) *ChildProfileUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ChildProfileUpdate) SetName(v string) *ChildProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChildProfileUpdate) SetNillableName(v *string) *ChildProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCurrentLevel sets the "current_level" field.
func (_u *ChildProfileUpdate) SetCurrentLevel(v int) *ChildProfileUpdate {
	_u.mutation.ResetCurrentLevel()
	_u.mutation.SetCurrentLevel(v)
	return _u
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_u *ChildProfileUpdate) SetNillableCurrentLevel(v *int) *ChildProfileUpdate {
	if v != nil {
		_u.SetCurrentLevel(*v)
	}
	return _u
}

// AddCurrentLevel adds value to the "current_level" field.
func (_u *ChildProfileUpdate) AddCurrentLevel(v int) *ChildProfileUpdate {
	_u.mutation.AddCurrentLevel(v)
	return _u
}

// SetFavoriteNumbers sets the "favorite_numbers" field.
func (_u *ChildProfileUpdate) SetFavoriteNumbers(v []int) *ChildProfileUpdate {
	_u.mutation.SetFavoriteNumbers(v)
	return _u
}

// AppendFavoriteNumbers appends value to the "favorite_numbers" field.
func (_u *ChildProfileUpdate) AppendFavoriteNumbers(v []int) *ChildProfileUpdate {
	_u.mutation.AppendFavoriteNumbers(v)
	return _u
}

// ClearFavoriteNumbers clears the value of the "favorite_numbers" field.
func (_u *ChildProfileUpdate) ClearFavoriteNumbers() *ChildProfileUpdate {
	_u.mutation.ClearFavoriteNumbers()
	return _u
}

// SetReviewMode sets the "review_mode" field.
func (_u *ChildProfileUpdate) SetReviewMode(v bool) *ChildProfileUpdate {
	_u.mutation.SetReviewMode(v)
	return _u
}

// SetNillableReviewMode sets the "review_mode" field if the given value is not nil.
func (_u *ChildProfileUpdate) SetNillableReviewMode(v *bool) *ChildProfileUpdate {
	if v != nil {
		_u.SetReviewMode(*v)
	}
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *ChildProfileUpdate) SetTotalAttempts(v int) *ChildProfileUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *ChildProfileUpdate) SetNillableTotalAttempts(v *int) *ChildProfileUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *ChildProfileUpdate) AddTotalAttempts(v int) *ChildProfileUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChildProfileUpdate) SetUpdatedAt(v time.Time) *ChildProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChildProfileMutation object of the builder.
func (_u *ChildProfileUpdate) Mutation() *ChildProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChildProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChildProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChildProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChildProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChildProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := childprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChildProfileUpdate) check() error {
	if v, ok := _u.mutation.ChildID(); ok {
		if err := childprofile.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "ChildProfile.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := childprofile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ChildProfile.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAttempts(); ok {
		if err := childprofile.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "ChildProfile.total_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *ChildProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(childprofile.Table, childprofile.Columns, sqlgraph.NewFieldSpec(childprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(childprofile.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(childprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentLevel(); ok {
		_spec.SetField(childprofile.FieldCurrentLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentLevel(); ok {
		_spec.AddField(childprofile.FieldCurrentLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FavoriteNumbers(); ok {
		_spec.SetField(childprofile.FieldFavoriteNumbers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFavoriteNumbers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, childprofile.FieldFavoriteNumbers, value)
		})
	}
	if _u.mutation.FavoriteNumbersCleared() {
		_spec.ClearField(childprofile.FieldFavoriteNumbers, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewMode(); ok {
		_spec.SetField(childprofile.FieldReviewMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(childprofile.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(childprofile.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(childprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{childprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChildProfileUpdateOne is the builder for updating a single ChildProfile entity.
type ChildProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChildProfileMutation
}

// SetChildID sets the "child_id" field.
func (_u *ChildProfileUpdateOne) SetChildID(v string) *ChildProfileUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *ChildProfileUpdateOne) SetNillableChildID(v *string) *ChildProfileUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ChildProfileUpdateOne) SetName(v string) *ChildProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChildProfileUpdateOne) SetNillableName(v *string) *ChildProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCurrentLevel sets the "current_level" field.
func (_u *ChildProfileUpdateOne) SetCurrentLevel(v int) *ChildProfileUpdateOne {
	_u.mutation.ResetCurrentLevel()
	_u.mutation.SetCurrentLevel(v)
	return _u
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_u *ChildProfileUpdateOne) SetNillableCurrentLevel(v *int) *ChildProfileUpdateOne {
	if v != nil {
		_u.SetCurrentLevel(*v)
	}
	return _u
}

// AddCurrentLevel adds value to the "current_level" field.
func (_u *ChildProfileUpdateOne) AddCurrentLevel(v int) *ChildProfileUpdateOne {
	_u.mutation.AddCurrentLevel(v)
	return _u
}

// SetFavoriteNumbers sets the "favorite_numbers" field.
func (_u *ChildProfileUpdateOne) SetFavoriteNumbers(v []int) *ChildProfileUpdateOne {
	_u.mutation.SetFavoriteNumbers(v)
	return _u
}

// AppendFavoriteNumbers appends value to the "favorite_numbers" field.
func (_u *ChildProfileUpdateOne) AppendFavoriteNumbers(v []int) *ChildProfileUpdateOne {
	_u.mutation.AppendFavoriteNumbers(v)
	return _u
}

// ClearFavoriteNumbers clears the value of the "favorite_numbers" field.
func (_u *ChildProfileUpdateOne) ClearFavoriteNumbers() *ChildProfileUpdateOne {
	_u.mutation.ClearFavoriteNumbers()
	return _u
}

// SetReviewMode sets the "review_mode" field.
func (_u *ChildProfileUpdateOne) SetReviewMode(v bool) *ChildProfileUpdateOne {
	_u.mutation.SetReviewMode(v)
	return _u
}

// SetNillableReviewMode sets the "review_mode" field if the given value is not nil.
func (_u *ChildProfileUpdateOne) SetNillableReviewMode(v *bool) *ChildProfileUpdateOne {
	if v != nil {
		_u.SetReviewMode(*v)
	}
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *ChildProfileUpdateOne) SetTotalAttempts(v int) *ChildProfileUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *ChildProfileUpdateOne) SetNillableTotalAttempts(v *int) *ChildProfileUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *ChildProfileUpdateOne) AddTotalAttempts(v int) *ChildProfileUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChildProfileUpdateOne) SetUpdatedAt(v time.Time) *ChildProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChildProfileMutation object of the builder.
func (_u *ChildProfileUpdateOne) Mutation() *ChildProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChildProfileUpdate builder.
func (_u *ChildProfileUpdateOne) Where(ps ...predicate.ChildProfile) *ChildProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChildProfileUpdateOne) Select(field string, fields ...string) *ChildProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChildProfile entity.
func (_u *ChildProfileUpdateOne) Save(ctx context.Context) (*ChildProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChildProfileUpdateOne) SaveX(ctx context.Context) *ChildProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChildProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChildProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChildProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := childprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChildProfileUpdateOne) check() error {
	if v, ok := _u.mutation.ChildID(); ok {
		if err := childprofile.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "ChildProfile.child_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := childprofile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ChildProfile.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAttempts(); ok {
		if err := childprofile.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "ChildProfile.total_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *ChildProfileUpdateOne) sqlSave(ctx context.Context) (_node *ChildProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(childprofile.Table, childprofile.Columns, sqlgraph.NewFieldSpec(childprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChildProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, childprofile.FieldID)
		for _, f := range fields {
			if !childprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != childprofile.FieldID {
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
		_spec.SetField(childprofile.FieldChildID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(childprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentLevel(); ok {
		_spec.SetField(childprofile.FieldCurrentLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentLevel(); ok {
		_spec.AddField(childprofile.FieldCurrentLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FavoriteNumbers(); ok {
		_spec.SetField(childprofile.FieldFavoriteNumbers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFavoriteNumbers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, childprofile.FieldFavoriteNumbers, value)
		})
	}
	if _u.mutation.FavoriteNumbersCleared() {
		_spec.ClearField(childprofile.FieldFavoriteNumbers, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewMode(); ok {
		_spec.SetField(childprofile.FieldReviewMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(childprofile.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(childprofile.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(childprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ChildProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{childprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
