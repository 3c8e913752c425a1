// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aayasso/SlowMA-MVP/ent/journeyevent"
)

// JourneyEventCreate is the builder for creating a JourneyEvent entity.
type JourneyEventCreate struct {
	config
	mutation *JourneyEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *JourneyEventCreate) SetSequence(v int64) *JourneyEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *JourneyEventCreate) SetTimestamp(v time.Time) *JourneyEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableTimestamp(v *time.Time) *JourneyEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetJourneyID sets the "journey_id" field.
func (_c *JourneyEventCreate) SetJourneyID(v string) *JourneyEventCreate {
	_c.mutation.SetJourneyID(v)
	return _c
}

// SetArtworkTitle sets the "artwork_title" field.
func (_c *JourneyEventCreate) SetArtworkTitle(v string) *JourneyEventCreate {
	_c.mutation.SetArtworkTitle(v)
	return _c
}

// SetNillableArtworkTitle sets the "artwork_title" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableArtworkTitle(v *string) *JourneyEventCreate {
	if v != nil {
		_c.SetArtworkTitle(*v)
	}
	return _c
}

// SetStageLabel sets the "stage_label" field.
func (_c *JourneyEventCreate) SetStageLabel(v string) *JourneyEventCreate {
	_c.mutation.SetStageLabel(v)
	return _c
}

// SetStepCount sets the "step_count" field.
func (_c *JourneyEventCreate) SetStepCount(v int) *JourneyEventCreate {
	_c.mutation.SetStepCount(v)
	return _c
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableStepCount(v *int) *JourneyEventCreate {
	if v != nil {
		_c.SetStepCount(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *JourneyEventCreate) SetDurationSecs(v int) *JourneyEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableDurationSecs(v *int) *JourneyEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetCached sets the "cached" field.
func (_c *JourneyEventCreate) SetCached(v bool) *JourneyEventCreate {
	_c.mutation.SetCached(v)
	return _c
}

// SetNillableCached sets the "cached" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableCached(v *bool) *JourneyEventCreate {
	if v != nil {
		_c.SetCached(*v)
	}
	return _c
}

// SetAtMuseum sets the "at_museum" field.
func (_c *JourneyEventCreate) SetAtMuseum(v bool) *JourneyEventCreate {
	_c.mutation.SetAtMuseum(v)
	return _c
}

// SetNillableAtMuseum sets the "at_museum" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableAtMuseum(v *bool) *JourneyEventCreate {
	if v != nil {
		_c.SetAtMuseum(*v)
	}
	return _c
}

// Mutation returns the JourneyEventMutation object of the builder.
func (_c *JourneyEventCreate) Mutation() *JourneyEventMutation {
	return _c.mutation
}

// Save creates the JourneyEvent in the database.
func (_c *JourneyEventCreate) Save(ctx context.Context) (*JourneyEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JourneyEventCreate) SaveX(ctx context.Context) *JourneyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JourneyEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := journeyevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ArtworkTitle(); !ok {
		v := journeyevent.DefaultArtworkTitle
		_c.mutation.SetArtworkTitle(v)
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		v := journeyevent.DefaultStepCount
		_c.mutation.SetStepCount(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := journeyevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.Cached(); !ok {
		v := journeyevent.DefaultCached
		_c.mutation.SetCached(v)
	}
	if _, ok := _c.mutation.AtMuseum(); !ok {
		v := journeyevent.DefaultAtMuseum
		_c.mutation.SetAtMuseum(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JourneyEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "JourneyEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "JourneyEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.JourneyID(); !ok {
		return &ValidationError{Name: "journey_id", err: errors.New(`ent: missing required field "JourneyEvent.journey_id"`)}
	}
	if v, ok := _c.mutation.JourneyID(); ok {
		if err := journeyevent.JourneyIDValidator(v); err != nil {
			return &ValidationError{Name: "journey_id", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.journey_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ArtworkTitle(); !ok {
		return &ValidationError{Name: "artwork_title", err: errors.New(`ent: missing required field "JourneyEvent.artwork_title"`)}
	}
	if _, ok := _c.mutation.StageLabel(); !ok {
		return &ValidationError{Name: "stage_label", err: errors.New(`ent: missing required field "JourneyEvent.stage_label"`)}
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		return &ValidationError{Name: "step_count", err: errors.New(`ent: missing required field "JourneyEvent.step_count"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "JourneyEvent.duration_secs"`)}
	}
	if _, ok := _c.mutation.Cached(); !ok {
		return &ValidationError{Name: "cached", err: errors.New(`ent: missing required field "JourneyEvent.cached"`)}
	}
	if _, ok := _c.mutation.AtMuseum(); !ok {
		return &ValidationError{Name: "at_museum", err: errors.New(`ent: missing required field "JourneyEvent.at_museum"`)}
	}
	return nil
}

func (_c *JourneyEventCreate) sqlSave(ctx context.Context) (*JourneyEvent, error) {
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

func (_c *JourneyEventCreate) createSpec() (*JourneyEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &JourneyEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(journeyevent.Table, sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(journeyevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(journeyevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.JourneyID(); ok {
		_spec.SetField(journeyevent.FieldJourneyID, field.TypeString, value)
		_node.JourneyID = value
	}
	if value, ok := _c.mutation.ArtworkTitle(); ok {
		_spec.SetField(journeyevent.FieldArtworkTitle, field.TypeString, value)
		_node.ArtworkTitle = value
	}
	if value, ok := _c.mutation.StageLabel(); ok {
		_spec.SetField(journeyevent.FieldStageLabel, field.TypeString, value)
		_node.StageLabel = value
	}
	if value, ok := _c.mutation.StepCount(); ok {
		_spec.SetField(journeyevent.FieldStepCount, field.TypeInt, value)
		_node.StepCount = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(journeyevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.Cached(); ok {
		_spec.SetField(journeyevent.FieldCached, field.TypeBool, value)
		_node.Cached = value
	}
	if value, ok := _c.mutation.AtMuseum(); ok {
		_spec.SetField(journeyevent.FieldAtMuseum, field.TypeBool, value)
		_node.AtMuseum = value
	}
	return _node, _spec
}

// JourneyEventCreateBulk is the builder for creating many JourneyEvent entities in bulk.
type JourneyEventCreateBulk struct {
	config
	err      error
	builders []*JourneyEventCreate
}

// Save creates the JourneyEvent entities in the database.
func (_c *JourneyEventCreateBulk) Save(ctx context.Context) ([]*JourneyEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JourneyEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JourneyEventMutation)
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
func (_c *JourneyEventCreateBulk) SaveX(ctx context.Context) []*JourneyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
