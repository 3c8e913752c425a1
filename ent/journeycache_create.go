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
	"github.com/aayasso/SlowMA-MVP/ent/journeycache"
)

// JourneyCacheCreate is the builder for creating a JourneyCache entity.
type JourneyCacheCreate struct {
	config
	mutation *JourneyCacheMutation
	hooks    []Hook
}

// SetCacheKey sets the "cache_key" field.
func (_c *JourneyCacheCreate) SetCacheKey(v string) *JourneyCacheCreate {
	_c.mutation.SetCacheKey(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JourneyCacheCreate) SetCreatedAt(v time.Time) *JourneyCacheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JourneyCacheCreate) SetNillableCreatedAt(v *time.Time) *JourneyCacheCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *JourneyCacheCreate) SetData(v json.RawMessage) *JourneyCacheCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the JourneyCacheMutation object of the builder.
func (_c *JourneyCacheCreate) Mutation() *JourneyCacheMutation {
	return _c.mutation
}

// Save creates the JourneyCache in the database.
func (_c *JourneyCacheCreate) Save(ctx context.Context) (*JourneyCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JourneyCacheCreate) SaveX(ctx context.Context) *JourneyCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JourneyCacheCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := journeycache.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JourneyCacheCreate) check() error {
	if _, ok := _c.mutation.CacheKey(); !ok {
		return &ValidationError{Name: "cache_key", err: errors.New(`ent: missing required field "JourneyCache.cache_key"`)}
	}
	if v, ok := _c.mutation.CacheKey(); ok {
		if err := journeycache.CacheKeyValidator(v); err != nil {
			return &ValidationError{Name: "cache_key", err: fmt.Errorf(`ent: validator failed for field "JourneyCache.cache_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JourneyCache.created_at"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "JourneyCache.data"`)}
	}
	return nil
}

func (_c *JourneyCacheCreate) sqlSave(ctx context.Context) (*JourneyCache, error) {
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

func (_c *JourneyCacheCreate) createSpec() (*JourneyCache, *sqlgraph.CreateSpec) {
	var (
		_node = &JourneyCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(journeycache.Table, sqlgraph.NewFieldSpec(journeycache.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CacheKey(); ok {
		_spec.SetField(journeycache.FieldCacheKey, field.TypeString, value)
		_node.CacheKey = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(journeycache.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(journeycache.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// JourneyCacheCreateBulk is the builder for creating many JourneyCache entities in bulk.
type JourneyCacheCreateBulk struct {
	config
	err      error
	builders []*JourneyCacheCreate
}

// Save creates the JourneyCache entities in the database.
func (_c *JourneyCacheCreateBulk) Save(ctx context.Context) ([]*JourneyCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JourneyCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JourneyCacheMutation)
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
func (_c *JourneyCacheCreateBulk) SaveX(ctx context.Context) []*JourneyCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
