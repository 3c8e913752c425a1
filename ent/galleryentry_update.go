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
	"github.com/aayasso/SlowMA-MVP/ent/galleryentry"
	"github.com/aayasso/SlowMA-MVP/ent/predicate"
)

// GalleryEntryUpdate is the builder for updating GalleryEntry entities.
type GalleryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *GalleryEntryMutation
}

// Where appends a list predicates to the GalleryEntryUpdate builder.
func (_u *GalleryEntryUpdate) Where(ps ...predicate.GalleryEntry) *GalleryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJourneyID sets the "journey_id" field.
func (_u *GalleryEntryUpdate) SetJourneyID(v string) *GalleryEntryUpdate {
	_u.mutation.SetJourneyID(v)
	return _u
}

// SetNillableJourneyID sets the "journey_id" field if the given value is not nil.
func (_u *GalleryEntryUpdate) SetNillableJourneyID(v *string) *GalleryEntryUpdate {
	if v != nil {
		_u.SetJourneyID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *GalleryEntryUpdate) SetTitle(v string) *GalleryEntryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GalleryEntryUpdate) SetNillableTitle(v *string) *GalleryEntryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetArtist sets the "artist" field.
func (_u *GalleryEntryUpdate) SetArtist(v string) *GalleryEntryUpdate {
	_u.mutation.SetArtist(v)
	return _u
}

// SetNillableArtist sets the "artist" field if the given value is not nil.
func (_u *GalleryEntryUpdate) SetNillableArtist(v *string) *GalleryEntryUpdate {
	if v != nil {
		_u.SetArtist(*v)
	}
	return _u
}

// SetStageLabel sets the "stage_label" field.
func (_u *GalleryEntryUpdate) SetStageLabel(v string) *GalleryEntryUpdate {
	_u.mutation.SetStageLabel(v)
	return _u
}

// SetNillableStageLabel sets the "stage_label" field if the given value is not nil.
func (_u *GalleryEntryUpdate) SetNillableStageLabel(v *string) *GalleryEntryUpdate {
	if v != nil {
		_u.SetStageLabel(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GalleryEntryUpdate) SetCompletedAt(v time.Time) *GalleryEntryUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GalleryEntryUpdate) SetNillableCompletedAt(v *time.Time) *GalleryEntryUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *GalleryEntryUpdate) SetData(v json.RawMessage) *GalleryEntryUpdate {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *GalleryEntryUpdate) AppendData(v json.RawMessage) *GalleryEntryUpdate {
	_u.mutation.AppendData(v)
	return _u
}

// Mutation returns the GalleryEntryMutation object of the builder.
func (_u *GalleryEntryUpdate) Mutation() *GalleryEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GalleryEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GalleryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GalleryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GalleryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GalleryEntryUpdate) check() error {
	if v, ok := _u.mutation.JourneyID(); ok {
		if err := galleryentry.JourneyIDValidator(v); err != nil {
			return &ValidationError{Name: "journey_id", err: fmt.Errorf(`ent: validator failed for field "GalleryEntry.journey_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GalleryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(galleryentry.Table, galleryentry.Columns, sqlgraph.NewFieldSpec(galleryentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JourneyID(); ok {
		_spec.SetField(galleryentry.FieldJourneyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(galleryentry.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Artist(); ok {
		_spec.SetField(galleryentry.FieldArtist, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageLabel(); ok {
		_spec.SetField(galleryentry.FieldStageLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(galleryentry.FieldCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(galleryentry.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, galleryentry.FieldData, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{galleryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GalleryEntryUpdateOne is the builder for updating a single GalleryEntry entity.
type GalleryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GalleryEntryMutation
}

// SetJourneyID sets the "journey_id" field.
func (_u *GalleryEntryUpdateOne) SetJourneyID(v string) *GalleryEntryUpdateOne {
	_u.mutation.SetJourneyID(v)
	return _u
}

// SetNillableJourneyID sets the "journey_id" field if the given value is not nil.
func (_u *GalleryEntryUpdateOne) SetNillableJourneyID(v *string) *GalleryEntryUpdateOne {
	if v != nil {
		_u.SetJourneyID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *GalleryEntryUpdateOne) SetTitle(v string) *GalleryEntryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GalleryEntryUpdateOne) SetNillableTitle(v *string) *GalleryEntryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetArtist sets the "artist" field.
func (_u *GalleryEntryUpdateOne) SetArtist(v string) *GalleryEntryUpdateOne {
	_u.mutation.SetArtist(v)
	return _u
}

// SetNillableArtist sets the "artist" field if the given value is not nil.
func (_u *GalleryEntryUpdateOne) SetNillableArtist(v *string) *GalleryEntryUpdateOne {
	if v != nil {
		_u.SetArtist(*v)
	}
	return _u
}

// SetStageLabel sets the "stage_label" field.
func (_u *GalleryEntryUpdateOne) SetStageLabel(v string) *GalleryEntryUpdateOne {
	_u.mutation.SetStageLabel(v)
	return _u
}

// SetNillableStageLabel sets the "stage_label" field if the given value is not nil.
func (_u *GalleryEntryUpdateOne) SetNillableStageLabel(v *string) *GalleryEntryUpdateOne {
	if v != nil {
		_u.SetStageLabel(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GalleryEntryUpdateOne) SetCompletedAt(v time.Time) *GalleryEntryUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GalleryEntryUpdateOne) SetNillableCompletedAt(v *time.Time) *GalleryEntryUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *GalleryEntryUpdateOne) SetData(v json.RawMessage) *GalleryEntryUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *GalleryEntryUpdateOne) AppendData(v json.RawMessage) *GalleryEntryUpdateOne {
	_u.mutation.AppendData(v)
	return _u
}

// Mutation returns the GalleryEntryMutation object of the builder.
func (_u *GalleryEntryUpdateOne) Mutation() *GalleryEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the GalleryEntryUpdate builder.
func (_u *GalleryEntryUpdateOne) Where(ps ...predicate.GalleryEntry) *GalleryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GalleryEntryUpdateOne) Select(field string, fields ...string) *GalleryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GalleryEntry entity.
func (_u *GalleryEntryUpdateOne) Save(ctx context.Context) (*GalleryEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GalleryEntryUpdateOne) SaveX(ctx context.Context) *GalleryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GalleryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GalleryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GalleryEntryUpdateOne) check() error {
	if v, ok := _u.mutation.JourneyID(); ok {
		if err := galleryentry.JourneyIDValidator(v); err != nil {
			return &ValidationError{Name: "journey_id", err: fmt.Errorf(`ent: validator failed for field "GalleryEntry.journey_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GalleryEntryUpdateOne) sqlSave(ctx context.Context) (_node *GalleryEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(galleryentry.Table, galleryentry.Columns, sqlgraph.NewFieldSpec(galleryentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GalleryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, galleryentry.FieldID)
		for _, f := range fields {
			if !galleryentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != galleryentry.FieldID {
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
	if value, ok := _u.mutation.JourneyID(); ok {
		_spec.SetField(galleryentry.FieldJourneyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(galleryentry.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Artist(); ok {
		_spec.SetField(galleryentry.FieldArtist, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageLabel(); ok {
		_spec.SetField(galleryentry.FieldStageLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(galleryentry.FieldCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(galleryentry.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, galleryentry.FieldData, value)
		})
	}
	_node = &GalleryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{galleryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
