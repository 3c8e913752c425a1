// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aayasso/SlowMA-MVP/ent/badgeevent"
)

// BadgeEventCreate is the builder for creating a BadgeEvent entity.
type BadgeEventCreate struct {
	config
	mutation *BadgeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *BadgeEventCreate) SetSequence(v int64) *BadgeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *BadgeEventCreate) SetTimestamp(v time.Time) *BadgeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *BadgeEventCreate) SetNillableTimestamp(v *time.Time) *BadgeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetBadgeID sets the "badge_id" field.
func (_c *BadgeEventCreate) SetBadgeID(v string) *BadgeEventCreate {
	_c.mutation.SetBadgeID(v)
	return _c
}

// SetBadgeName sets the "badge_name" field.
func (_c *BadgeEventCreate) SetBadgeName(v string) *BadgeEventCreate {
	_c.mutation.SetBadgeName(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *BadgeEventCreate) SetKind(v string) *BadgeEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// Mutation returns the BadgeEventMutation object of the builder.
func (_c *BadgeEventCreate) Mutation() *BadgeEventMutation {
	return _c.mutation
}

// Save creates the BadgeEvent in the database.
func (_c *BadgeEventCreate) Save(ctx context.Context) (*BadgeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BadgeEventCreate) SaveX(ctx context.Context) *BadgeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BadgeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := badgeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BadgeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "BadgeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BadgeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.BadgeID(); !ok {
		return &ValidationError{Name: "badge_id", err: errors.New(`ent: missing required field "BadgeEvent.badge_id"`)}
	}
	if v, ok := _c.mutation.BadgeID(); ok {
		if err := badgeevent.BadgeIDValidator(v); err != nil {
			return &ValidationError{Name: "badge_id", err: fmt.Errorf(`ent: validator failed for field "BadgeEvent.badge_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BadgeName(); !ok {
		return &ValidationError{Name: "badge_name", err: errors.New(`ent: missing required field "BadgeEvent.badge_name"`)}
	}
	if v, ok := _c.mutation.BadgeName(); ok {
		if err := badgeevent.BadgeNameValidator(v); err != nil {
			return &ValidationError{Name: "badge_name", err: fmt.Errorf(`ent: validator failed for field "BadgeEvent.badge_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "BadgeEvent.kind"`)}
	}
	return nil
}

func (_c *BadgeEventCreate) sqlSave(ctx context.Context) (*BadgeEvent, error) {
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

func (_c *BadgeEventCreate) createSpec() (*BadgeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BadgeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(badgeevent.Table, sqlgraph.NewFieldSpec(badgeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(badgeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(badgeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.BadgeID(); ok {
		_spec.SetField(badgeevent.FieldBadgeID, field.TypeString, value)
		_node.BadgeID = value
	}
	if value, ok := _c.mutation.BadgeName(); ok {
		_spec.SetField(badgeevent.FieldBadgeName, field.TypeString, value)
		_node.BadgeName = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(badgeevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	return _node, _spec
}

// BadgeEventCreateBulk is the builder for creating many BadgeEvent entities in bulk.
type BadgeEventCreateBulk struct {
	config
	err      error
	builders []*BadgeEventCreate
}

// Save creates the BadgeEvent entities in the database.
func (_c *BadgeEventCreateBulk) Save(ctx context.Context) ([]*BadgeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BadgeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BadgeEventMutation)
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
func (_c *BadgeEventCreateBulk) SaveX(ctx context.Context) []*BadgeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
