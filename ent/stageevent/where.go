// Code generated by ent, DO NOT EDIT.

package stageevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aayasso/SlowMA-MVP/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldTimestamp, v))
}

// FromStage applies equality check predicate on the "from_stage" field. It's identical to FromStageEQ.
func FromStage(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldFromStage, v))
}

// ToStage applies equality check predicate on the "to_stage" field. It's identical to ToStageEQ.
func ToStage(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldToStage, v))
}

// Change applies equality check predicate on the "change" field. It's identical to ChangeEQ.
func Change(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldChange, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldTrigger, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldTimestamp, v))
}

// FromStageEQ applies the EQ predicate on the "from_stage" field.
func FromStageEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldFromStage, v))
}

// FromStageNEQ applies the NEQ predicate on the "from_stage" field.
func FromStageNEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldFromStage, v))
}

// FromStageIn applies the In predicate on the "from_stage" field.
func FromStageIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldFromStage, vs...))
}

// FromStageNotIn applies the NotIn predicate on the "from_stage" field.
func FromStageNotIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldFromStage, vs...))
}

// FromStageGT applies the GT predicate on the "from_stage" field.
func FromStageGT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldFromStage, v))
}

// FromStageGTE applies the GTE predicate on the "from_stage" field.
func FromStageGTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldFromStage, v))
}

// FromStageLT applies the LT predicate on the "from_stage" field.
func FromStageLT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldFromStage, v))
}

// FromStageLTE applies the LTE predicate on the "from_stage" field.
func FromStageLTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldFromStage, v))
}

// FromStageContains applies the Contains predicate on the "from_stage" field.
func FromStageContains(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContains(FieldFromStage, v))
}

// FromStageHasPrefix applies the HasPrefix predicate on the "from_stage" field.
func FromStageHasPrefix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasPrefix(FieldFromStage, v))
}

// FromStageHasSuffix applies the HasSuffix predicate on the "from_stage" field.
func FromStageHasSuffix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasSuffix(FieldFromStage, v))
}

// FromStageEqualFold applies the EqualFold predicate on the "from_stage" field.
func FromStageEqualFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEqualFold(FieldFromStage, v))
}

// FromStageContainsFold applies the ContainsFold predicate on the "from_stage" field.
func FromStageContainsFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContainsFold(FieldFromStage, v))
}

// ToStageEQ applies the EQ predicate on the "to_stage" field.
func ToStageEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldToStage, v))
}

// ToStageNEQ applies the NEQ predicate on the "to_stage" field.
func ToStageNEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldToStage, v))
}

// ToStageIn applies the In predicate on the "to_stage" field.
func ToStageIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldToStage, vs...))
}

// ToStageNotIn applies the NotIn predicate on the "to_stage" field.
func ToStageNotIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldToStage, vs...))
}

// ToStageGT applies the GT predicate on the "to_stage" field.
func ToStageGT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldToStage, v))
}

// ToStageGTE applies the GTE predicate on the "to_stage" field.
func ToStageGTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldToStage, v))
}

// ToStageLT applies the LT predicate on the "to_stage" field.
func ToStageLT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldToStage, v))
}

// ToStageLTE applies the LTE predicate on the "to_stage" field.
func ToStageLTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldToStage, v))
}

// ToStageContains applies the Contains predicate on the "to_stage" field.
func ToStageContains(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContains(FieldToStage, v))
}

// ToStageHasPrefix applies the HasPrefix predicate on the "to_stage" field.
func ToStageHasPrefix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasPrefix(FieldToStage, v))
}

// ToStageHasSuffix applies the HasSuffix predicate on the "to_stage" field.
func ToStageHasSuffix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasSuffix(FieldToStage, v))
}

// ToStageEqualFold applies the EqualFold predicate on the "to_stage" field.
func ToStageEqualFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEqualFold(FieldToStage, v))
}

// ToStageContainsFold applies the ContainsFold predicate on the "to_stage" field.
func ToStageContainsFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContainsFold(FieldToStage, v))
}

// ChangeEQ applies the EQ predicate on the "change" field.
func ChangeEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldChange, v))
}

// ChangeNEQ applies the NEQ predicate on the "change" field.
func ChangeNEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldChange, v))
}

// ChangeIn applies the In predicate on the "change" field.
func ChangeIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldChange, vs...))
}

// ChangeNotIn applies the NotIn predicate on the "change" field.
func ChangeNotIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldChange, vs...))
}

// ChangeGT applies the GT predicate on the "change" field.
func ChangeGT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldChange, v))
}

// ChangeGTE applies the GTE predicate on the "change" field.
func ChangeGTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldChange, v))
}

// ChangeLT applies the LT predicate on the "change" field.
func ChangeLT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldChange, v))
}

// ChangeLTE applies the LTE predicate on the "change" field.
func ChangeLTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldChange, v))
}

// ChangeContains applies the Contains predicate on the "change" field.
func ChangeContains(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContains(FieldChange, v))
}

// ChangeHasPrefix applies the HasPrefix predicate on the "change" field.
func ChangeHasPrefix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasPrefix(FieldChange, v))
}

// ChangeHasSuffix applies the HasSuffix predicate on the "change" field.
func ChangeHasSuffix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasSuffix(FieldChange, v))
}

// ChangeEqualFold applies the EqualFold predicate on the "change" field.
func ChangeEqualFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEqualFold(FieldChange, v))
}

// ChangeContainsFold applies the ContainsFold predicate on the "change" field.
func ChangeContainsFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContainsFold(FieldChange, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContainsFold(FieldTrigger, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StageEvent) predicate.StageEvent {
	return predicate.StageEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StageEvent) predicate.StageEvent {
	return predicate.StageEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StageEvent) predicate.StageEvent {
	return predicate.StageEvent(sql.NotPredicates(p))
}
