// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aayasso/SlowMA-MVP/ent/badgeevent"
	"github.com/aayasso/SlowMA-MVP/ent/predicate"
)

// BadgeEventUpdate is the builder for updating BadgeEvent entities.
type BadgeEventUpdate struct {
	config
	hooks    []Hook
	mutation *BadgeEventMutation
}

// Where appends a list predicates to the BadgeEventUpdate builder.
func (_u *BadgeEventUpdate) Where(ps ...predicate.BadgeEvent) *BadgeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBadgeID sets the "badge_id" field.
func (_u *BadgeEventUpdate) SetBadgeID(v string) *BadgeEventUpdate {
	_u.mutation.SetBadgeID(v)
	return _u
}

// SetNillableBadgeID sets the "badge_id" field if the given value is not nil.
func (_u *BadgeEventUpdate) SetNillableBadgeID(v *string) *BadgeEventUpdate {
	if v != nil {
		_u.SetBadgeID(*v)
	}
	return _u
}

// SetBadgeName sets the "badge_name" field.
func (_u *BadgeEventUpdate) SetBadgeName(v string) *BadgeEventUpdate {
	_u.mutation.SetBadgeName(v)
	return _u
}

// SetNillableBadgeName sets the "badge_name" field if the given value is not nil.
func (_u *BadgeEventUpdate) SetNillableBadgeName(v *string) *BadgeEventUpdate {
	if v != nil {
		_u.SetBadgeName(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *BadgeEventUpdate) SetKind(v string) *BadgeEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *BadgeEventUpdate) SetNillableKind(v *string) *BadgeEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// Mutation returns the BadgeEventMutation object of the builder.
func (_u *BadgeEventUpdate) Mutation() *BadgeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BadgeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BadgeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeEventUpdate) check() error {
	if v, ok := _u.mutation.BadgeID(); ok {
		if err := badgeevent.BadgeIDValidator(v); err != nil {
			return &ValidationError{Name: "badge_id", err: fmt.Errorf(`ent: validator failed for field "BadgeEvent.badge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BadgeName(); ok {
		if err := badgeevent.BadgeNameValidator(v); err != nil {
			return &ValidationError{Name: "badge_name", err: fmt.Errorf(`ent: validator failed for field "BadgeEvent.badge_name": %w`, err)}
		}
	}
	return nil
}

func (_u *BadgeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badgeevent.Table, badgeevent.Columns, sqlgraph.NewFieldSpec(badgeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BadgeID(); ok {
		_spec.SetField(badgeevent.FieldBadgeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BadgeName(); ok {
		_spec.SetField(badgeevent.FieldBadgeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(badgeevent.FieldKind, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badgeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BadgeEventUpdateOne is the builder for updating a single BadgeEvent entity.
type BadgeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BadgeEventMutation
}

// SetBadgeID sets the "badge_id" field.
func (_u *BadgeEventUpdateOne) SetBadgeID(v string) *BadgeEventUpdateOne {
	_u.mutation.SetBadgeID(v)
	return _u
}

// SetNillableBadgeID sets the "badge_id" field if the given value is not nil.
func (_u *BadgeEventUpdateOne) SetNillableBadgeID(v *string) *BadgeEventUpdateOne {
	if v != nil {
		_u.SetBadgeID(*v)
	}
	return _u
}

// SetBadgeName sets the "badge_name" field.
func (_u *BadgeEventUpdateOne) SetBadgeName(v string) *BadgeEventUpdateOne {
	_u.mutation.SetBadgeName(v)
	return _u
}

// SetNillableBadgeName sets the "badge_name" field if the given value is not nil.
func (_u *BadgeEventUpdateOne) SetNillableBadgeName(v *string) *BadgeEventUpdateOne {
	if v != nil {
		_u.SetBadgeName(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *BadgeEventUpdateOne) SetKind(v string) *BadgeEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *BadgeEventUpdateOne) SetNillableKind(v *string) *BadgeEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// Mutation returns the BadgeEventMutation object of the builder.
func (_u *BadgeEventUpdateOne) Mutation() *BadgeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BadgeEventUpdate builder.
func (_u *BadgeEventUpdateOne) Where(ps ...predicate.BadgeEvent) *BadgeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BadgeEventUpdateOne) Select(field string, fields ...string) *BadgeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BadgeEvent entity.
func (_u *BadgeEventUpdateOne) Save(ctx context.Context) (*BadgeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeEventUpdateOne) SaveX(ctx context.Context) *BadgeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BadgeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeEventUpdateOne) check() error {
	if v, ok := _u.mutation.BadgeID(); ok {
		if err := badgeevent.BadgeIDValidator(v); err != nil {
			return &ValidationError{Name: "badge_id", err: fmt.Errorf(`ent: validator failed for field "BadgeEvent.badge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BadgeName(); ok {
		if err := badgeevent.BadgeNameValidator(v); err != nil {
			return &ValidationError{Name: "badge_name", err: fmt.Errorf(`ent: validator failed for field "BadgeEvent.badge_name": %w`, err)}
		}
	}
	return nil
}

func (_u *BadgeEventUpdateOne) sqlSave(ctx context.Context) (_node *BadgeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badgeevent.Table, badgeevent.Columns, sqlgraph.NewFieldSpec(badgeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BadgeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, badgeevent.FieldID)
		for _, f := range fields {
			if !badgeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != badgeevent.FieldID {
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
	if value, ok := _u.mutation.BadgeID(); ok {
		_spec.SetField(badgeevent.FieldBadgeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BadgeName(); ok {
		_spec.SetField(badgeevent.FieldBadgeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(badgeevent.FieldKind, field.TypeString, value)
	}
	_node = &BadgeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badgeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
