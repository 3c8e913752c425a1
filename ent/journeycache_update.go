// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/aayasso/SlowMA-MVP/ent/journeycache"
	"github.com/aayasso/SlowMA-MVP/ent/predicate"
)

// JourneyCacheUpdate is the builder for updating JourneyCache entities.
type JourneyCacheUpdate struct {
	config
	hooks    []Hook
	mutation *JourneyCacheMutation
}

// Where appends a list predicates to the JourneyCacheUpdate builder.
func (_u *JourneyCacheUpdate) Where(ps ...predicate.JourneyCache) *JourneyCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCacheKey sets the "cache_key" field.
func (_u *JourneyCacheUpdate) SetCacheKey(v string) *JourneyCacheUpdate {
	_u.mutation.SetCacheKey(v)
	return _u
}

// SetNillableCacheKey sets the "cache_key" field if the given value is not nil.
func (_u *JourneyCacheUpdate) SetNillableCacheKey(v *string) *JourneyCacheUpdate {
	if v != nil {
		_u.SetCacheKey(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JourneyCacheUpdate) SetCreatedAt(v time.Time) *JourneyCacheUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JourneyCacheUpdate) SetNillableCreatedAt(v *time.Time) *JourneyCacheUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *JourneyCacheUpdate) SetData(v json.RawMessage) *JourneyCacheUpdate {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *JourneyCacheUpdate) AppendData(v json.RawMessage) *JourneyCacheUpdate {
	_u.mutation.AppendData(v)
	return _u
}

// Mutation returns the JourneyCacheMutation object of the builder.
func (_u *JourneyCacheUpdate) Mutation() *JourneyCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JourneyCacheUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JourneyCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyCacheUpdate) check() error {
	if v, ok := _u.mutation.CacheKey(); ok {
		if err := journeycache.CacheKeyValidator(v); err != nil {
			return &ValidationError{Name: "cache_key", err: fmt.Errorf(`ent: validator failed for field "JourneyCache.cache_key": %w`, err)}
		}
	}
	return nil
}

func (_u *JourneyCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journeycache.Table, journeycache.Columns, sqlgraph.NewFieldSpec(journeycache.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CacheKey(); ok {
		_spec.SetField(journeycache.FieldCacheKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(journeycache.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(journeycache.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, journeycache.FieldData, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journeycache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JourneyCacheUpdateOne is the builder for updating a single JourneyCache entity.
type JourneyCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JourneyCacheMutation
}

// SetCacheKey sets the "cache_key" field.
func (_u *JourneyCacheUpdateOne) SetCacheKey(v string) *JourneyCacheUpdateOne {
	_u.mutation.SetCacheKey(v)
	return _u
}

// SetNillableCacheKey sets the "cache_key" field if the given value is not nil.
func (_u *JourneyCacheUpdateOne) SetNillableCacheKey(v *string) *JourneyCacheUpdateOne {
	if v != nil {
		_u.SetCacheKey(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JourneyCacheUpdateOne) SetCreatedAt(v time.Time) *JourneyCacheUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JourneyCacheUpdateOne) SetNillableCreatedAt(v *time.Time) *JourneyCacheUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *JourneyCacheUpdateOne) SetData(v json.RawMessage) *JourneyCacheUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *JourneyCacheUpdateOne) AppendData(v json.RawMessage) *JourneyCacheUpdateOne {
	_u.mutation.AppendData(v)
	return _u
}

// Mutation returns the JourneyCacheMutation object of the builder.
func (_u *JourneyCacheUpdateOne) Mutation() *JourneyCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the JourneyCacheUpdate builder.
func (_u *JourneyCacheUpdateOne) Where(ps ...predicate.JourneyCache) *JourneyCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JourneyCacheUpdateOne) Select(field string, fields ...string) *JourneyCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JourneyCache entity.
func (_u *JourneyCacheUpdateOne) Save(ctx context.Context) (*JourneyCache, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyCacheUpdateOne) SaveX(ctx context.Context) *JourneyCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JourneyCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyCacheUpdateOne) check() error {
	if v, ok := _u.mutation.CacheKey(); ok {
		if err := journeycache.CacheKeyValidator(v); err != nil {
			return &ValidationError{Name: "cache_key", err: fmt.Errorf(`ent: validator failed for field "JourneyCache.cache_key": %w`, err)}
		}
	}
	return nil
}

func (_u *JourneyCacheUpdateOne) sqlSave(ctx context.Context) (_node *JourneyCache, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journeycache.Table, journeycache.Columns, sqlgraph.NewFieldSpec(journeycache.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JourneyCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, journeycache.FieldID)
		for _, f := range fields {
			if !journeycache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != journeycache.FieldID {
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
	if value, ok := _u.mutation.CacheKey(); ok {
		_spec.SetField(journeycache.FieldCacheKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(journeycache.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(journeycache.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, journeycache.FieldData, value)
		})
	}
	_node = &JourneyCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journeycache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
