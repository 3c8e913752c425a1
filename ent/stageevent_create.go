// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aayasso/SlowMA-MVP/ent/stageevent"
)

// StageEventCreate is the builder for creating a StageEvent entity.
type StageEventCreate struct {
	config
	mutation *StageEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *StageEventCreate) SetSequence(v int64) *StageEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StageEventCreate) SetTimestamp(v time.Time) *StageEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableTimestamp(v *time.Time) *StageEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetFromStage sets the "from_stage" field.
func (_c *StageEventCreate) SetFromStage(v string) *StageEventCreate {
	_c.mutation.SetFromStage(v)
	return _c
}

// SetToStage sets the "to_stage" field.
func (_c *StageEventCreate) SetToStage(v string) *StageEventCreate {
	_c.mutation.SetToStage(v)
	return _c
}

// SetChange sets the "change" field.
func (_c *StageEventCreate) SetChange(v string) *StageEventCreate {
	_c.mutation.SetChange(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *StageEventCreate) SetTrigger(v string) *StageEventCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// Mutation returns the StageEventMutation object of the builder.
func (_c *StageEventCreate) Mutation() *StageEventMutation {
	return _c.mutation
}

// Save creates the StageEvent in the database.
func (_c *StageEventCreate) Save(ctx context.Context) (*StageEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageEventCreate) SaveX(ctx context.Context) *StageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := stageevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StageEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StageEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.FromStage(); !ok {
		return &ValidationError{Name: "from_stage", err: errors.New(`ent: missing required field "StageEvent.from_stage"`)}
	}
	if _, ok := _c.mutation.ToStage(); !ok {
		return &ValidationError{Name: "to_stage", err: errors.New(`ent: missing required field "StageEvent.to_stage"`)}
	}
	if _, ok := _c.mutation.Change(); !ok {
		return &ValidationError{Name: "change", err: errors.New(`ent: missing required field "StageEvent.change"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "StageEvent.trigger"`)}
	}
	return nil
}

func (_c *StageEventCreate) sqlSave(ctx context.Context) (*StageEvent, error) {
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

func (_c *StageEventCreate) createSpec() (*StageEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StageEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageevent.Table, sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(stageevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(stageevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.FromStage(); ok {
		_spec.SetField(stageevent.FieldFromStage, field.TypeString, value)
		_node.FromStage = value
	}
	if value, ok := _c.mutation.ToStage(); ok {
		_spec.SetField(stageevent.FieldToStage, field.TypeString, value)
		_node.ToStage = value
	}
	if value, ok := _c.mutation.Change(); ok {
		_spec.SetField(stageevent.FieldChange, field.TypeString, value)
		_node.Change = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(stageevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	return _node, _spec
}

// StageEventCreateBulk is the builder for creating many StageEvent entities in bulk.
type StageEventCreateBulk struct {
	config
	err      error
	builders []*StageEventCreate
}

// Save creates the StageEvent entities in the database.
func (_c *StageEventCreateBulk) Save(ctx context.Context) ([]*StageEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageEventMutation)
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
func (_c *StageEventCreateBulk) SaveX(ctx context.Context) []*StageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
