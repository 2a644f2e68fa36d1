// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/numbond/ent/childprofile"
)

// ChildProfileCreate is the builder for creating a ChildProfile entity.
type ChildProfileCreate struct {
	config
	mutation *ChildProfileMutation
	hooks    []Hook
}

// SetChildID sets the "child_id" field.
func (_c *ChildProfileCreate) SetChildID(v string) *ChildProfileCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ChildProfileCreate) SetName(v string) *ChildProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCurrentLevel sets the "current_level" field.
func (_c *ChildProfileCreate) SetCurrentLevel(v int) *ChildProfileCreate {
	_c.mutation.SetCurrentLevel(v)
	return _c
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_c *ChildProfileCreate) SetNillableCurrentLevel(v *int) *ChildProfileCreate {
	if v != nil {
		_c.SetCurrentLevel(*v)
	}
	return _c
}

// SetFavoriteNumbers sets the "favorite_numbers" field.
func (_c *ChildProfileCreate) SetFavoriteNumbers(v []int) *ChildProfileCreate {
	_c.mutation.SetFavoriteNumbers(v)
	return _c
}

// SetReviewMode sets the "review_mode" field.
func (_c *ChildProfileCreate) SetReviewMode(v bool) *ChildProfileCreate {
	_c.mutation.SetReviewMode(v)
	return _c
}

// SetNillableReviewMode sets the "review_mode" field if the given value is not nil.
func (_c *ChildProfileCreate) SetNillableReviewMode(v *bool) *ChildProfileCreate {
	if v != nil {
		_c.SetReviewMode(*v)
	}
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *ChildProfileCreate) SetTotalAttempts(v int) *ChildProfileCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *ChildProfileCreate) SetNillableTotalAttempts(v *int) *ChildProfileCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChildProfileCreate) SetCreatedAt(v time.Time) *ChildProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChildProfileCreate) SetNillableCreatedAt(v *time.Time) *ChildProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChildProfileCreate) SetUpdatedAt(v time.Time) *ChildProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChildProfileCreate) SetNillableUpdatedAt(v *time.Time) *ChildProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ChildProfileMutation object of the builder.
func (_c *ChildProfileCreate) Mutation() *ChildProfileMutation {
	return _c.mutation
}

// Save creates the ChildProfile in the database.
func (_c *ChildProfileCreate) Save(ctx context.Context) (*ChildProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChildProfileCreate) SaveX(ctx context.Context) *ChildProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChildProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChildProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChildProfileCreate) defaults() {
	if _, ok := _c.mutation.CurrentLevel(); !ok {
		v := childprofile.DefaultCurrentLevel
		_c.mutation.SetCurrentLevel(v)
	}
	if _, ok := _c.mutation.ReviewMode(); !ok {
		v := childprofile.DefaultReviewMode
		_c.mutation.SetReviewMode(v)
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := childprofile.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := childprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := childprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChildProfileCreate) check() error {
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "ChildProfile.child_id"`)}
	}
	if v, ok := _c.mutation.ChildID(); ok {
		if err := childprofile.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "ChildProfile.child_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ChildProfile.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := childprofile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ChildProfile.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentLevel(); !ok {
		return &ValidationError{Name: "current_level", err: errors.New(`ent: missing required field "ChildProfile.current_level"`)}
	}
	if _, ok := _c.mutation.ReviewMode(); !ok {
		return &ValidationError{Name: "review_mode", err: errors.New(`ent: missing required field "ChildProfile.review_mode"`)}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "ChildProfile.total_attempts"`)}
	}
	if v, ok := _c.mutation.TotalAttempts(); ok {
		if err := childprofile.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "ChildProfile.total_attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChildProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChildProfile.updated_at"`)}
	}
	return nil
}

func (_c *ChildProfileCreate) sqlSave(ctx context.Context) (*ChildProfile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChildProfileCreate) createSpec() (*ChildProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &ChildProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(childprofile.Table, sqlgraph.NewFieldSpec(childprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChildID(); ok {
		_spec.SetField(childprofile.FieldChildID, field.TypeString, value)
		_node.ChildID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(childprofile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CurrentLevel(); ok {
		_spec.SetField(childprofile.FieldCurrentLevel, field.TypeInt, value)
		_node.CurrentLevel = value
	}
	if value, ok := _c.mutation.FavoriteNumbers(); ok {
		_spec.SetField(childprofile.FieldFavoriteNumbers, field.TypeJSON, value)
		_node.FavoriteNumbers = value
	}
	if value, ok := _c.mutation.ReviewMode(); ok {
		_spec.SetField(childprofile.FieldReviewMode, field.TypeBool, value)
		_node.ReviewMode = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(childprofile.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(childprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(childprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ChildProfileCreateBulk is the builder for creating many ChildProfile entities in bulk.
type ChildProfileCreateBulk struct {
	config
	err      error
	builders []*ChildProfileCreate
}

// Save creates the ChildProfile entities in the database.
func (_c *ChildProfileCreateBulk) Save(ctx context.Context) ([]*ChildProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChildProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChildProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChildProfileCreateBulk) SaveX(ctx context.Context) []*ChildProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChildProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChildProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
