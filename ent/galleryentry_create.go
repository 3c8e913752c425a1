// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aayasso/SlowMA-MVP/ent/galleryentry"
)

// GalleryEntryCreate is the builder for creating a GalleryEntry entity.
type GalleryEntryCreate struct {
	config
	mutation *GalleryEntryMutation
	hooks    []Hook
}

// SetJourneyID sets the "journey_id" field.
func (_c *GalleryEntryCreate) SetJourneyID(v string) *GalleryEntryCreate {
	_c.mutation.SetJourneyID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *GalleryEntryCreate) SetTitle(v string) *GalleryEntryCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *GalleryEntryCreate) SetNillableTitle(v *string) *GalleryEntryCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetArtist sets the "artist" field.
func (_c *GalleryEntryCreate) SetArtist(v string) *GalleryEntryCreate {
	_c.mutation.SetArtist(v)
	return _c
}

// SetNillableArtist sets the "artist" field if the given value is not nil.
func (_c *GalleryEntryCreate) SetNillableArtist(v *string) *GalleryEntryCreate {
	if v != nil {
		_c.SetArtist(*v)
	}
	return _c
}

// SetStageLabel sets the "stage_label" field.
func (_c *GalleryEntryCreate) SetStageLabel(v string) *GalleryEntryCreate {
	_c.mutation.SetStageLabel(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *GalleryEntryCreate) SetCompletedAt(v time.Time) *GalleryEntryCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *GalleryEntryCreate) SetNillableCompletedAt(v *time.Time) *GalleryEntryCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *GalleryEntryCreate) SetData(v json.RawMessage) *GalleryEntryCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the GalleryEntryMutation object of the builder.
func (_c *GalleryEntryCreate) Mutation() *GalleryEntryMutation {
	return _c.mutation
}

// Save creates the GalleryEntry in the database.
func (_c *GalleryEntryCreate) Save(ctx context.Context) (*GalleryEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GalleryEntryCreate) SaveX(ctx context.Context) *GalleryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GalleryEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GalleryEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GalleryEntryCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := galleryentry.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Artist(); !ok {
		v := galleryentry.DefaultArtist
		_c.mutation.SetArtist(v)
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := galleryentry.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GalleryEntryCreate) check() error {
	if _, ok := _c.mutation.JourneyID(); !ok {
		return &ValidationError{Name: "journey_id", err: errors.New(`ent: missing required field "GalleryEntry.journey_id"`)}
	}
	if v, ok := _c.mutation.JourneyID(); ok {
		if err := galleryentry.JourneyIDValidator(v); err != nil {
			return &ValidationError{Name: "journey_id", err: fmt.Errorf(`ent: validator failed for field "GalleryEntry.journey_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "GalleryEntry.title"`)}
	}
	if _, ok := _c.mutation.Artist(); !ok {
		return &ValidationError{Name: "artist", err: errors.New(`ent: missing required field "GalleryEntry.artist"`)}
	}
	if _, ok := _c.mutation.StageLabel(); !ok {
		return &ValidationError{Name: "stage_label", err: errors.New(`ent: missing required field "GalleryEntry.stage_label"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "GalleryEntry.completed_at"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "GalleryEntry.data"`)}
	}
	return nil
}

func (_c *GalleryEntryCreate) sqlSave(ctx context.Context) (*GalleryEntry, error) {
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

func (_c *GalleryEntryCreate) createSpec() (*GalleryEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &GalleryEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(galleryentry.Table, sqlgraph.NewFieldSpec(galleryentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.JourneyID(); ok {
		_spec.SetField(galleryentry.FieldJourneyID, field.TypeString, value)
		_node.JourneyID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(galleryentry.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Artist(); ok {
		_spec.SetField(galleryentry.FieldArtist, field.TypeString, value)
		_node.Artist = value
	}
	if value, ok := _c.mutation.StageLabel(); ok {
		_spec.SetField(galleryentry.FieldStageLabel, field.TypeString, value)
		_node.StageLabel = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(galleryentry.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(galleryentry.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// GalleryEntryCreateBulk is the builder for creating many GalleryEntry entities in bulk.
type GalleryEntryCreateBulk struct {
	config
	err      error
	builders []*GalleryEntryCreate
}

// Save creates the GalleryEntry entities in the database.
func (_c *GalleryEntryCreateBulk) Save(ctx context.Context) ([]*GalleryEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GalleryEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GalleryEntryMutation)
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
func (_c *GalleryEntryCreateBulk) SaveX(ctx context.Context) []*GalleryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GalleryEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GalleryEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
