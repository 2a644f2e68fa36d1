// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/numbond/ent/insightrecord"
)

// InsightRecordCreate is the builder for creating a InsightRecord entity.
type InsightRecordCreate struct {
	config
	mutation *InsightRecordMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InsightRecordCreate) SetSequence(v int64) *InsightRecordCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InsightRecordCreate) SetTimestamp(v time.Time) *InsightRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InsightRecordCreate) SetNillableTimestamp(v *time.Time) *InsightRecordCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetInsightID sets the "insight_id" field.
func (_c *InsightRecordCreate) SetInsightID(v string) *InsightRecordCreate {
	_c.mutation.SetInsightID(v)
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *InsightRecordCreate) SetChildID(v string) *InsightRecordCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetPatternType sets the "pattern_type" field.
func (_c *InsightRecordCreate) SetPatternType(v string) *InsightRecordCreate {
	_c.mutation.SetPatternType(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *InsightRecordCreate) SetCategory(v string) *InsightRecordCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *InsightRecordCreate) SetTitle(v string) *InsightRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *InsightRecordCreate) SetMessage(v string) *InsightRecordCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetActionableSteps sets the "actionable_steps" field.
func (_c *InsightRecordCreate) SetActionableSteps(v []string) *InsightRecordCreate {
	_c.mutation.SetActionableSteps(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *InsightRecordCreate) SetPriority(v string) *InsightRecordCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetCorrective sets the "corrective" field.
func (_c *InsightRecordCreate) SetCorrective(v map[string]interface{}) *InsightRecordCreate {
	_c.mutation.SetCorrective(v)
	return _c
}

// Mutation returns the InsightRecordMutation object of the builder.
func (_c *InsightRecordCreate) Mutation() *InsightRecordMutation {
	return _c.mutation
}

// Save creates the InsightRecord in the database.
func (_c *InsightRecordCreate) Save(ctx context.Context) (*InsightRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsightRecordCreate) SaveX(ctx context.Context) *InsightRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsightRecordCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := insightrecord.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsightRecordCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InsightRecord.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InsightRecord.timestamp"`)}
	}
	if _, ok := _c.mutation.InsightID(); !ok {
		return &ValidationError{Name: "insight_id", err: errors.New(`ent: missing required field "InsightRecord.insight_id"`)}
	}
	if v, ok := _c.mutation.InsightID(); ok {
		if err := insightrecord.InsightIDValidator(v); err != nil {
			return &ValidationError{Name: "insight_id", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.insight_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "InsightRecord.child_id"`)}
	}
	if v, ok := _c.mutation.ChildID(); ok {
		if err := insightrecord.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.child_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatternType(); !ok {
		return &ValidationError{Name: "pattern_type", err: errors.New(`ent: missing required field "InsightRecord.pattern_type"`)}
	}
	if v, ok := _c.mutation.PatternType(); ok {
		if err := insightrecord.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.pattern_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "InsightRecord.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := insightrecord.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "InsightRecord.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := insightrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "InsightRecord.message"`)}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := insightrecord.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "InsightRecord.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := insightrecord.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "InsightRecord.priority": %w`, err)}
		}
	}
	return nil
}

func (_c *InsightRecordCreate) sqlSave(ctx context.Context) (*InsightRecord, error) {
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

func (_c *InsightRecordCreate) createSpec() (*InsightRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &InsightRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insightrecord.Table, sqlgraph.NewFieldSpec(insightrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(insightrecord.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(insightrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.InsightID(); ok {
		_spec.SetField(insightrecord.FieldInsightID, field.TypeString, value)
		_node.InsightID = value
	}
	if value, ok := _c.mutation.ChildID(); ok {
		_spec.SetField(insightrecord.FieldChildID, field.TypeString, value)
		_node.ChildID = value
	}
	if value, ok := _c.mutation.PatternType(); ok {
		_spec.SetField(insightrecord.FieldPatternType, field.TypeString, value)
		_node.PatternType = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(insightrecord.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(insightrecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(insightrecord.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.ActionableSteps(); ok {
		_spec.SetField(insightrecord.FieldActionableSteps, field.TypeJSON, value)
		_node.ActionableSteps = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(insightrecord.FieldPriority, field.TypeString, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Corrective(); ok {
		_spec.SetField(insightrecord.FieldCorrective, field.TypeJSON, value)
		_node.Corrective = value
	}
	return _node, _spec
}

// InsightRecordCreateBulk is the builder for creating many InsightRecord entities in bulk.
type InsightRecordCreateBulk struct {
	config
	err      error
	builders []*InsightRecordCreate
}

// Save creates the InsightRecord entities in the database.
func (_c *InsightRecordCreateBulk) Save(ctx context.Context) ([]*InsightRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InsightRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsightRecordMutation)
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
func (_c *InsightRecordCreateBulk) SaveX(ctx context.Context) []*InsightRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
