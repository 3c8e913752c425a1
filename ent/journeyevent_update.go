// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aayasso/SlowMA-MVP/ent/journeyevent"
	"github.com/aayasso/SlowMA-MVP/ent/predicate"
)

// JourneyEventUpdate is the builder for updating JourneyEvent entities.
type JourneyEventUpdate struct {
	config
	hooks    []Hook
	mutation *JourneyEventMutation
}

// Where appends a list predicates to the JourneyEventUpdate builder.
func (_u *JourneyEventUpdate) Where(ps ...predicate.JourneyEvent) *JourneyEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJourneyID sets the "journey_id" field.
func (_u *JourneyEventUpdate) SetJourneyID(v string) *JourneyEventUpdate {
	_u.mutation.SetJourneyID(v)
	return _u
}

// SetNillableJourneyID sets the "journey_id" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableJourneyID(v *string) *JourneyEventUpdate {
	if v != nil {
		_u.SetJourneyID(*v)
	}
	return _u
}

// SetArtworkTitle sets the "artwork_title" field.
func (_u *JourneyEventUpdate) SetArtworkTitle(v string) *JourneyEventUpdate {
	_u.mutation.SetArtworkTitle(v)
	return _u
}

// SetNillableArtworkTitle sets the "artwork_title" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableArtworkTitle(v *string) *JourneyEventUpdate {
	if v != nil {
		_u.SetArtworkTitle(*v)
	}
	return _u
}

// SetStageLabel sets the "stage_label" field.
func (_u *JourneyEventUpdate) SetStageLabel(v string) *JourneyEventUpdate {
	_u.mutation.SetStageLabel(v)
	return _u
}

// SetNillableStageLabel sets the "stage_label" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableStageLabel(v *string) *JourneyEventUpdate {
	if v != nil {
		_u.SetStageLabel(*v)
	}
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *JourneyEventUpdate) SetStepCount(v int) *JourneyEventUpdate {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableStepCount(v *int) *JourneyEventUpdate {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *JourneyEventUpdate) AddStepCount(v int) *JourneyEventUpdate {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *JourneyEventUpdate) SetDurationSecs(v int) *JourneyEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableDurationSecs(v *int) *JourneyEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *JourneyEventUpdate) AddDurationSecs(v int) *JourneyEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetCached sets the "cached" field.
func (_u *JourneyEventUpdate) SetCached(v bool) *JourneyEventUpdate {
	_u.mutation.SetCached(v)
	return _u
}

// SetNillableCached sets the "cached" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableCached(v *bool) *JourneyEventUpdate {
	if v != nil {
		_u.SetCached(*v)
	}
	return _u
}

// SetAtMuseum sets the "at_museum" field.
func (_u *JourneyEventUpdate) SetAtMuseum(v bool) *JourneyEventUpdate {
	_u.mutation.SetAtMuseum(v)
	return _u
}

// SetNillableAtMuseum sets the "at_museum" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableAtMuseum(v *bool) *JourneyEventUpdate {
	if v != nil {
		_u.SetAtMuseum(*v)
	}
	return _u
}

// Mutation returns the JourneyEventMutation object of the builder.
func (_u *JourneyEventUpdate) Mutation() *JourneyEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JourneyEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JourneyEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyEventUpdate) check() error {
	if v, ok := _u.mutation.JourneyID(); ok {
		if err := journeyevent.JourneyIDValidator(v); err != nil {
			return &ValidationError{Name: "journey_id", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.journey_id": %w`, err)}
		}
	}
	return nil
}

func (_u *JourneyEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journeyevent.Table, journeyevent.Columns, sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JourneyID(); ok {
		_spec.SetField(journeyevent.FieldJourneyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtworkTitle(); ok {
		_spec.SetField(journeyevent.FieldArtworkTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageLabel(); ok {
		_spec.SetField(journeyevent.FieldStageLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(journeyevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(journeyevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(journeyevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(journeyevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cached(); ok {
		_spec.SetField(journeyevent.FieldCached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AtMuseum(); ok {
		_spec.SetField(journeyevent.FieldAtMuseum, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journeyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JourneyEventUpdateOne is the builder for updating a single JourneyEvent entity.
type JourneyEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JourneyEventMutation
}

// SetJourneyID sets the "journey_id" field.
func (_u *JourneyEventUpdateOne) SetJourneyID(v string) *JourneyEventUpdateOne {
	_u.mutation.SetJourneyID(v)
	return _u
}

// SetNillableJourneyID sets the "journey_id" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableJourneyID(v *string) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetJourneyID(*v)
	}
	return _u
}

// SetArtworkTitle sets the "artwork_title" field.
func (_u *JourneyEventUpdateOne) SetArtworkTitle(v string) *JourneyEventUpdateOne {
	_u.mutation.SetArtworkTitle(v)
	return _u
}

// SetNillableArtworkTitle sets the "artwork_title" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableArtworkTitle(v *string) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetArtworkTitle(*v)
	}
	return _u
}

// SetStageLabel sets the "stage_label" field.
func (_u *JourneyEventUpdateOne) SetStageLabel(v string) *JourneyEventUpdateOne {
	_u.mutation.SetStageLabel(v)
	return _u
}

// SetNillableStageLabel sets the "stage_label" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableStageLabel(v *string) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetStageLabel(*v)
	}
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *JourneyEventUpdateOne) SetStepCount(v int) *JourneyEventUpdateOne {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableStepCount(v *int) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *JourneyEventUpdateOne) AddStepCount(v int) *JourneyEventUpdateOne {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *JourneyEventUpdateOne) SetDurationSecs(v int) *JourneyEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableDurationSecs(v *int) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *JourneyEventUpdateOne) AddDurationSecs(v int) *JourneyEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetCached sets the "cached" field.
func (_u *JourneyEventUpdateOne) SetCached(v bool) *JourneyEventUpdateOne {
	_u.mutation.SetCached(v)
	return _u
}

// SetNillableCached sets the "cached" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableCached(v *bool) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetCached(*v)
	}
	return _u
}

// SetAtMuseum sets the "at_museum" field.
func (_u *JourneyEventUpdateOne) SetAtMuseum(v bool) *JourneyEventUpdateOne {
	_u.mutation.SetAtMuseum(v)
	return _u
}

// SetNillableAtMuseum sets the "at_museum" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableAtMuseum(v *bool) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetAtMuseum(*v)
	}
	return _u
}

// Mutation returns the JourneyEventMutation object of the builder.
func (_u *JourneyEventUpdateOne) Mutation() *JourneyEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the JourneyEventUpdate builder.
func (_u *JourneyEventUpdateOne) Where(ps ...predicate.JourneyEvent) *JourneyEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JourneyEventUpdateOne) Select(field string, fields ...string) *JourneyEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JourneyEvent entity.
func (_u *JourneyEventUpdateOne) Save(ctx context.Context) (*JourneyEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyEventUpdateOne) SaveX(ctx context.Context) *JourneyEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JourneyEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyEventUpdateOne) check() error {
	if v, ok := _u.mutation.JourneyID(); ok {
		if err := journeyevent.JourneyIDValidator(v); err != nil {
			return &ValidationError{Name: "journey_id", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.journey_id": %w`, err)}
		}
	}
	return nil
}

func (_u *JourneyEventUpdateOne) sqlSave(ctx context.Context) (_node *JourneyEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journeyevent.Table, journeyevent.Columns, sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JourneyEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, journeyevent.FieldID)
		for _, f := range fields {
			if !journeyevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != journeyevent.FieldID {
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
		_spec.SetField(journeyevent.FieldJourneyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtworkTitle(); ok {
		_spec.SetField(journeyevent.FieldArtworkTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageLabel(); ok {
		_spec.SetField(journeyevent.FieldStageLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(journeyevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(journeyevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(journeyevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(journeyevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cached(); ok {
		_spec.SetField(journeyevent.FieldCached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AtMuseum(); ok {
		_spec.SetField(journeyevent.FieldAtMuseum, field.TypeBool, value)
	}
	_node = &JourneyEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journeyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
