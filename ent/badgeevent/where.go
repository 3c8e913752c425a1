// Code generated by ent, DO NOT EDIT.

package badgeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aayasso/SlowMA-MVP/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// BadgeID applies equality check predicate on the "badge_id" field. It's identical to BadgeIDEQ.
func BadgeID(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldBadgeID, v))
}

// BadgeName applies equality check predicate on the "badge_name" field. It's identical to BadgeNameEQ.
func BadgeName(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldBadgeName, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldKind, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// BadgeIDEQ applies the EQ predicate on the "badge_id" field.
func BadgeIDEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldBadgeID, v))
}

// BadgeIDNEQ applies the NEQ predicate on the "badge_id" field.
func BadgeIDNEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldBadgeID, v))
}

// BadgeIDIn applies the In predicate on the "badge_id" field.
func BadgeIDIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldBadgeID, vs...))
}

// BadgeIDNotIn applies the NotIn predicate on the "badge_id" field.
func BadgeIDNotIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldBadgeID, vs...))
}

// BadgeIDGT applies the GT predicate on the "badge_id" field.
func BadgeIDGT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldBadgeID, v))
}

// BadgeIDGTE applies the GTE predicate on the "badge_id" field.
func BadgeIDGTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldBadgeID, v))
}

// BadgeIDLT applies the LT predicate on the "badge_id" field.
func BadgeIDLT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldBadgeID, v))
}

// BadgeIDLTE applies the LTE predicate on the "badge_id" field.
func BadgeIDLTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldBadgeID, v))
}

// BadgeIDContains applies the Contains predicate on the "badge_id" field.
func BadgeIDContains(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContains(FieldBadgeID, v))
}

// BadgeIDHasPrefix applies the HasPrefix predicate on the "badge_id" field.
func BadgeIDHasPrefix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasPrefix(FieldBadgeID, v))
}

// BadgeIDHasSuffix applies the HasSuffix predicate on the "badge_id" field.
func BadgeIDHasSuffix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasSuffix(FieldBadgeID, v))
}

// BadgeIDEqualFold applies the EqualFold predicate on the "badge_id" field.
func BadgeIDEqualFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEqualFold(FieldBadgeID, v))
}

// BadgeIDContainsFold applies the ContainsFold predicate on the "badge_id" field.
func BadgeIDContainsFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContainsFold(FieldBadgeID, v))
}

// BadgeNameEQ applies the EQ predicate on the "badge_name" field.
func BadgeNameEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldBadgeName, v))
}

// BadgeNameNEQ applies the NEQ predicate on the "badge_name" field.
func BadgeNameNEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldBadgeName, v))
}

// BadgeNameIn applies the In predicate on the "badge_name" field.
func BadgeNameIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldBadgeName, vs...))
}

// BadgeNameNotIn applies the NotIn predicate on the "badge_name" field.
func BadgeNameNotIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldBadgeName, vs...))
}

// BadgeNameGT applies the GT predicate on the "badge_name" field.
func BadgeNameGT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldBadgeName, v))
}

// BadgeNameGTE applies the GTE predicate on the "badge_name" field.
func BadgeNameGTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldBadgeName, v))
}

// BadgeNameLT applies the LT predicate on the "badge_name" field.
func BadgeNameLT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldBadgeName, v))
}

// BadgeNameLTE applies the LTE predicate on the "badge_name" field.
func BadgeNameLTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldBadgeName, v))
}

// BadgeNameContains applies the Contains predicate on the "badge_name" field.
func BadgeNameContains(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContains(FieldBadgeName, v))
}

// BadgeNameHasPrefix applies the HasPrefix predicate on the "badge_name" field.
func BadgeNameHasPrefix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasPrefix(FieldBadgeName, v))
}

// BadgeNameHasSuffix applies the HasSuffix predicate on the "badge_name" field.
func BadgeNameHasSuffix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasSuffix(FieldBadgeName, v))
}

// BadgeNameEqualFold applies the EqualFold predicate on the "badge_name" field.
func BadgeNameEqualFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEqualFold(FieldBadgeName, v))
}

// BadgeNameContainsFold applies the ContainsFold predicate on the "badge_name" field.
func BadgeNameContainsFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContainsFold(FieldBadgeName, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContainsFold(FieldKind, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BadgeEvent) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BadgeEvent) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BadgeEvent) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.NotPredicates(p))
}
