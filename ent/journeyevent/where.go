// Code generated by ent, DO NOT EDIT.

package journeyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aayasso/SlowMA-MVP/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldTimestamp, v))
}

// JourneyID applies equality check predicate on the "journey_id" field. It's identical to JourneyIDEQ.
func JourneyID(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldJourneyID, v))
}

// ArtworkTitle applies equality check predicate on the "artwork_title" field. It's identical to ArtworkTitleEQ.
func ArtworkTitle(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldArtworkTitle, v))
}

// StageLabel applies equality check predicate on the "stage_label" field. It's identical to StageLabelEQ.
func StageLabel(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldStageLabel, v))
}

// StepCount applies equality check predicate on the "step_count" field. It's identical to StepCountEQ.
func StepCount(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldStepCount, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// Cached applies equality check predicate on the "cached" field. It's identical to CachedEQ.
func Cached(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldCached, v))
}

// AtMuseum applies equality check predicate on the "at_museum" field. It's identical to AtMuseumEQ.
func AtMuseum(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldAtMuseum, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldTimestamp, v))
}

// JourneyIDEQ applies the EQ predicate on the "journey_id" field.
func JourneyIDEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldJourneyID, v))
}

// JourneyIDNEQ applies the NEQ predicate on the "journey_id" field.
func JourneyIDNEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldJourneyID, v))
}

// JourneyIDIn applies the In predicate on the "journey_id" field.
func JourneyIDIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldJourneyID, vs...))
}

// JourneyIDNotIn applies the NotIn predicate on the "journey_id" field.
func JourneyIDNotIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldJourneyID, vs...))
}

// JourneyIDGT applies the GT predicate on the "journey_id" field.
func JourneyIDGT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldJourneyID, v))
}

// JourneyIDGTE applies the GTE predicate on the "journey_id" field.
func JourneyIDGTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldJourneyID, v))
}

// JourneyIDLT applies the LT predicate on the "journey_id" field.
func JourneyIDLT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldJourneyID, v))
}

// JourneyIDLTE applies the LTE predicate on the "journey_id" field.
func JourneyIDLTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldJourneyID, v))
}

// JourneyIDContains applies the Contains predicate on the "journey_id" field.
func JourneyIDContains(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContains(FieldJourneyID, v))
}

// JourneyIDHasPrefix applies the HasPrefix predicate on the "journey_id" field.
func JourneyIDHasPrefix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasPrefix(FieldJourneyID, v))
}

// JourneyIDHasSuffix applies the HasSuffix predicate on the "journey_id" field.
func JourneyIDHasSuffix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasSuffix(FieldJourneyID, v))
}

// JourneyIDEqualFold applies the EqualFold predicate on the "journey_id" field.
func JourneyIDEqualFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEqualFold(FieldJourneyID, v))
}

// JourneyIDContainsFold applies the ContainsFold predicate on the "journey_id" field.
func JourneyIDContainsFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContainsFold(FieldJourneyID, v))
}

// ArtworkTitleEQ applies the EQ predicate on the "artwork_title" field.
func ArtworkTitleEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldArtworkTitle, v))
}

// ArtworkTitleNEQ applies the NEQ predicate on the "artwork_title" field.
func ArtworkTitleNEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldArtworkTitle, v))
}

// ArtworkTitleIn applies the In predicate on the "artwork_title" field.
func ArtworkTitleIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldArtworkTitle, vs...))
}

// ArtworkTitleNotIn applies the NotIn predicate on the "artwork_title" field.
func ArtworkTitleNotIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldArtworkTitle, vs...))
}

// ArtworkTitleGT applies the GT predicate on the "artwork_title" field.
func ArtworkTitleGT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldArtworkTitle, v))
}

// ArtworkTitleGTE applies the GTE predicate on the "artwork_title" field.
func ArtworkTitleGTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldArtworkTitle, v))
}

// ArtworkTitleLT applies the LT predicate on the "artwork_title" field.
func ArtworkTitleLT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldArtworkTitle, v))
}

// ArtworkTitleLTE applies the LTE predicate on the "artwork_title" field.
func ArtworkTitleLTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldArtworkTitle, v))
}

// ArtworkTitleContains applies the Contains predicate on the "artwork_title" field.
func ArtworkTitleContains(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContains(FieldArtworkTitle, v))
}

// ArtworkTitleHasPrefix applies the HasPrefix predicate on the "artwork_title" field.
func ArtworkTitleHasPrefix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasPrefix(FieldArtworkTitle, v))
}

// ArtworkTitleHasSuffix applies the HasSuffix predicate on the "artwork_title" field.
func ArtworkTitleHasSuffix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasSuffix(FieldArtworkTitle, v))
}

// ArtworkTitleEqualFold applies the EqualFold predicate on the "artwork_title" field.
func ArtworkTitleEqualFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEqualFold(FieldArtworkTitle, v))
}

// ArtworkTitleContainsFold applies the ContainsFold predicate on the "artwork_title" field.
func ArtworkTitleContainsFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContainsFold(FieldArtworkTitle, v))
}

// StageLabelEQ applies the EQ predicate on the "stage_label" field.
func StageLabelEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldStageLabel, v))
}

// StageLabelNEQ applies the NEQ predicate on the "stage_label" field.
func StageLabelNEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldStageLabel, v))
}

// StageLabelIn applies the In predicate on the "stage_label" field.
func StageLabelIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldStageLabel, vs...))
}

// StageLabelNotIn applies the NotIn predicate on the "stage_label" field.
func StageLabelNotIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldStageLabel, vs...))
}

// StageLabelGT applies the GT predicate on the "stage_label" field.
func StageLabelGT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldStageLabel, v))
}

// StageLabelGTE applies the GTE predicate on the "stage_label" field.
func StageLabelGTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldStageLabel, v))
}

// StageLabelLT applies the LT predicate on the "stage_label" field.
func StageLabelLT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldStageLabel, v))
}

// StageLabelLTE applies the LTE predicate on the "stage_label" field.
func StageLabelLTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldStageLabel, v))
}

// StageLabelContains applies the Contains predicate on the "stage_label" field.
func StageLabelContains(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContains(FieldStageLabel, v))
}

// StageLabelHasPrefix applies the HasPrefix predicate on the "stage_label" field.
func StageLabelHasPrefix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasPrefix(FieldStageLabel, v))
}

// StageLabelHasSuffix applies the HasSuffix predicate on the "stage_label" field.
func StageLabelHasSuffix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasSuffix(FieldStageLabel, v))
}

// StageLabelEqualFold applies the EqualFold predicate on the "stage_label" field.
func StageLabelEqualFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEqualFold(FieldStageLabel, v))
}

// StageLabelContainsFold applies the ContainsFold predicate on the "stage_label" field.
func StageLabelContainsFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContainsFold(FieldStageLabel, v))
}

// StepCountEQ applies the EQ predicate on the "step_count" field.
func StepCountEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldStepCount, v))
}

// StepCountNEQ applies the NEQ predicate on the "step_count" field.
func StepCountNEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldStepCount, v))
}

// StepCountIn applies the In predicate on the "step_count" field.
func StepCountIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldStepCount, vs...))
}

// StepCountNotIn applies the NotIn predicate on the "step_count" field.
func StepCountNotIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldStepCount, vs...))
}

// StepCountGT applies the GT predicate on the "step_count" field.
func StepCountGT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldStepCount, v))
}

// StepCountGTE applies the GTE predicate on the "step_count" field.
func StepCountGTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldStepCount, v))
}

// StepCountLT applies the LT predicate on the "step_count" field.
func StepCountLT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldStepCount, v))
}

// StepCountLTE applies the LTE predicate on the "step_count" field.
func StepCountLTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldStepCount, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// CachedEQ applies the EQ predicate on the "cached" field.
func CachedEQ(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldCached, v))
}

// CachedNEQ applies the NEQ predicate on the "cached" field.
func CachedNEQ(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldCached, v))
}

// AtMuseumEQ applies the EQ predicate on the "at_museum" field.
func AtMuseumEQ(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldAtMuseum, v))
}

// AtMuseumNEQ applies the NEQ predicate on the "at_museum" field.
func AtMuseumNEQ(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldAtMuseum, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JourneyEvent) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JourneyEvent) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JourneyEvent) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.NotPredicates(p))
}
