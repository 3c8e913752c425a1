// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aayasso/SlowMA-MVP/ent/galleryentry"
	"github.com/aayasso/SlowMA-MVP/ent/predicate"
)

// GalleryEntryDelete is the builder for deleting a GalleryEntry entity.
type GalleryEntryDelete struct {
	config
	hooks    []Hook
	mutation *GalleryEntryMutation
}

// Where appends a list predicates to the GalleryEntryDelete builder.
func (_d *GalleryEntryDelete) Where(ps ...predicate.GalleryEntry) *GalleryEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GalleryEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GalleryEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GalleryEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(galleryentry.Table, sqlgraph.NewFieldSpec(galleryentry.FieldID, field.TypeInt))
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

// GalleryEntryDeleteOne is the builder for deleting a single GalleryEntry entity.
type GalleryEntryDeleteOne struct {
	_d *GalleryEntryDelete
}

// Where appends a list predicates to the GalleryEntryDelete builder.
func (_d *GalleryEntryDeleteOne) Where(ps ...predicate.GalleryEntry) *GalleryEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GalleryEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{galleryentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GalleryEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
