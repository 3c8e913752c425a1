// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aayasso/SlowMA-MVP/ent/journeycache"
	"github.com/aayasso/SlowMA-MVP/ent/predicate"
)

// JourneyCacheDelete is the builder for deleting a JourneyCache entity.
type JourneyCacheDelete struct {
	config
	hooks    []Hook
	mutation *JourneyCacheMutation
}

// Where appends a list predicates to the JourneyCacheDelete builder.
func (_d *JourneyCacheDelete) Where(ps ...predicate.JourneyCache) *JourneyCacheDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *JourneyCacheDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *JourneyCacheDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *JourneyCacheDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(journeycache.Table, sqlgraph.NewFieldSpec(journeycache.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// JourneyCacheDeleteOne is the builder for deleting a single JourneyCache entity.
type JourneyCacheDeleteOne struct {
	_d *JourneyCacheDelete
}

// Where appends a list predicates to the JourneyCacheDelete builder.
func (_d *JourneyCacheDeleteOne) Where(ps ...predicate.JourneyCache) *JourneyCacheDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *JourneyCacheDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{journeycache.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *JourneyCacheDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
