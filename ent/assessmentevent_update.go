// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aayasso/SlowMA-MVP/ent/assessmentevent"
	"github.com/aayasso/SlowMA-MVP/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageLabel sets the "stage_label" field.
func (_u *AssessmentEventUpdate) SetStageLabel(v string) *AssessmentEventUpdate {
	_u.mutation.SetStageLabel(v)
	return _u
}

// SetNillableStageLabel sets the "stage_label" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableStageLabel(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetStageLabel(*v)
	}
	return _u
}

// SetChange sets the "change" field.
func (_u *AssessmentEventUpdate) SetChange(v string) *AssessmentEventUpdate {
	_u.mutation.SetChange(v)
	return _u
}

// SetNillableChange sets the "change" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableChange(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetChange(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *AssessmentEventUpdate) SetQuality(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableQuality(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *AssessmentEventUpdate) AddQuality(v float64) *AssessmentEventUpdate {
	_u.mutation.AddQuality(v)
	return _u
}

// SetResponseCount sets the "response_count" field.
func (_u *AssessmentEventUpdate) SetResponseCount(v int) *AssessmentEventUpdate {
	_u.mutation.ResetResponseCount()
	_u.mutation.SetResponseCount(v)
	return _u
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableResponseCount(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetResponseCount(*v)
	}
	return _u
}

// AddResponseCount adds value to the "response_count" field.
func (_u *AssessmentEventUpdate) AddResponseCount(v int) *AssessmentEventUpdate {
	_u.mutation.AddResponseCount(v)
	return _u
}

// SetScores sets the "scores" field.
func (_u *AssessmentEventUpdate) SetScores(v map[string]float64) *AssessmentEventUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *AssessmentEventUpdate) ClearScores() *AssessmentEventUpdate {
	_u.mutation.ClearScores()
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageLabel(); ok {
		_spec.SetField(assessmentevent.FieldStageLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Change(); ok {
		_spec.SetField(assessmentevent.FieldChange, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(assessmentevent.FieldQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(assessmentevent.FieldQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResponseCount(); ok {
		_spec.SetField(assessmentevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseCount(); ok {
		_spec.AddField(assessmentevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(assessmentevent.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(assessmentevent.FieldScores, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetStageLabel sets the "stage_label" field.
func (_u *AssessmentEventUpdateOne) SetStageLabel(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetStageLabel(v)
	return _u
}

// SetNillableStageLabel sets the "stage_label" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableStageLabel(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetStageLabel(*v)
	}
	return _u
}

// SetChange sets the "change" field.
func (_u *AssessmentEventUpdateOne) SetChange(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetChange(v)
	return _u
}

// SetNillableChange sets the "change" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableChange(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetChange(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *AssessmentEventUpdateOne) SetQuality(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableQuality(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *AssessmentEventUpdateOne) AddQuality(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddQuality(v)
	return _u
}

// SetResponseCount sets the "response_count" field.
func (_u *AssessmentEventUpdateOne) SetResponseCount(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetResponseCount()
	_u.mutation.SetResponseCount(v)
	return _u
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableResponseCount(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetResponseCount(*v)
	}
	return _u
}

// AddResponseCount adds value to the "response_count" field.
func (_u *AssessmentEventUpdateOne) AddResponseCount(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddResponseCount(v)
	return _u
}

// SetScores sets the "scores" field.
func (_u *AssessmentEventUpdateOne) SetScores(v map[string]float64) *AssessmentEventUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *AssessmentEventUpdateOne) ClearScores() *AssessmentEventUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
	if value, ok := _u.mutation.StageLabel(); ok {
		_spec.SetField(assessmentevent.FieldStageLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Change(); ok {
		_spec.SetField(assessmentevent.FieldChange, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(assessmentevent.FieldQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(assessmentevent.FieldQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResponseCount(); ok {
		_spec.SetField(assessmentevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseCount(); ok {
		_spec.AddField(assessmentevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(assessmentevent.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(assessmentevent.FieldScores, field.TypeJSON)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
