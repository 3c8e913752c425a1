// Code generated by ent, DO NOT EDIT.

package galleryentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aayasso/SlowMA-MVP/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldLTE(FieldID, id))
}

// JourneyID applies equality check predicate on the "journey_id" field. It's identical to JourneyIDEQ.
func JourneyID(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEQ(FieldJourneyID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEQ(FieldTitle, v))
}

// Artist applies equality check predicate on the "artist" field. It's identical to ArtistEQ.
func Artist(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEQ(FieldArtist, v))
}

// StageLabel applies equality check predicate on the "stage_label" field. It's identical to StageLabelEQ.
func StageLabel(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEQ(FieldStageLabel, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEQ(FieldCompletedAt, v))
}

// JourneyIDEQ applies the EQ predicate on the "journey_id" field.
func JourneyIDEQ(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEQ(FieldJourneyID, v))
}

// JourneyIDNEQ applies the NEQ predicate on the "journey_id" field.
func JourneyIDNEQ(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldNEQ(FieldJourneyID, v))
}

// JourneyIDIn applies the In predicate on the "journey_id" field.
func JourneyIDIn(vs ...string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldIn(FieldJourneyID, vs...))
}

// JourneyIDNotIn applies the NotIn predicate on the "journey_id" field.
func JourneyIDNotIn(vs ...string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldNotIn(FieldJourneyID, vs...))
}

// JourneyIDGT applies the GT predicate on the "journey_id" field.
func JourneyIDGT(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldGT(FieldJourneyID, v))
}

// JourneyIDGTE applies the GTE predicate on the "journey_id" field.
func JourneyIDGTE(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldGTE(FieldJourneyID, v))
}

// JourneyIDLT applies the LT predicate on the "journey_id" field.
func JourneyIDLT(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldLT(FieldJourneyID, v))
}

// JourneyIDLTE applies the LTE predicate on the "journey_id" field.
func JourneyIDLTE(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldLTE(FieldJourneyID, v))
}

// JourneyIDContains applies the Contains predicate on the "journey_id" field.
func JourneyIDContains(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldContains(FieldJourneyID, v))
}

// JourneyIDHasPrefix applies the HasPrefix predicate on the "journey_id" field.
func JourneyIDHasPrefix(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldHasPrefix(FieldJourneyID, v))
}

// JourneyIDHasSuffix applies the HasSuffix predicate on the "journey_id" field.
func JourneyIDHasSuffix(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldHasSuffix(FieldJourneyID, v))
}

// JourneyIDEqualFold applies the EqualFold predicate on the "journey_id" field.
func JourneyIDEqualFold(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEqualFold(FieldJourneyID, v))
}

// JourneyIDContainsFold applies the ContainsFold predicate on the "journey_id" field.
func JourneyIDContainsFold(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldContainsFold(FieldJourneyID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldContainsFold(FieldTitle, v))
}

// ArtistEQ applies the EQ predicate on the "artist" field.
func ArtistEQ(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEQ(FieldArtist, v))
}

// ArtistNEQ applies the NEQ predicate on the "artist" field.
func ArtistNEQ(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldNEQ(FieldArtist, v))
}

// ArtistIn applies the In predicate on the "artist" field.
func ArtistIn(vs ...string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldIn(FieldArtist, vs...))
}

// ArtistNotIn applies the NotIn predicate on the "artist" field.
func ArtistNotIn(vs ...string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldNotIn(FieldArtist, vs...))
}

// ArtistGT applies the GT predicate on the "artist" field.
func ArtistGT(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldGT(FieldArtist, v))
}

// ArtistGTE applies the GTE predicate on the "artist" field.
func ArtistGTE(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldGTE(FieldArtist, v))
}

// ArtistLT applies the LT predicate on the "artist" field.
func ArtistLT(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldLT(FieldArtist, v))
}

// ArtistLTE applies the LTE predicate on the "artist" field.
func ArtistLTE(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldLTE(FieldArtist, v))
}

// ArtistContains applies the Contains predicate on the "artist" field.
func ArtistContains(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldContains(FieldArtist, v))
}

// ArtistHasPrefix applies the HasPrefix predicate on the "artist" field.
func ArtistHasPrefix(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldHasPrefix(FieldArtist, v))
}

// ArtistHasSuffix applies the HasSuffix predicate on the "artist" field.
func ArtistHasSuffix(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldHasSuffix(FieldArtist, v))
}

// ArtistEqualFold applies the EqualFold predicate on the "artist" field.
func ArtistEqualFold(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEqualFold(FieldArtist, v))
}

// ArtistContainsFold applies the ContainsFold predicate on the "artist" field.
func ArtistContainsFold(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldContainsFold(FieldArtist, v))
}

// StageLabelEQ applies the EQ predicate on the "stage_label" field.
func StageLabelEQ(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEQ(FieldStageLabel, v))
}

// StageLabelNEQ applies the NEQ predicate on the "stage_label" field.
func StageLabelNEQ(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldNEQ(FieldStageLabel, v))
}

// StageLabelIn applies the In predicate on the "stage_label" field.
func StageLabelIn(vs ...string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldIn(FieldStageLabel, vs...))
}

// StageLabelNotIn applies the NotIn predicate on the "stage_label" field.
func StageLabelNotIn(vs ...string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldNotIn(FieldStageLabel, vs...))
}

// StageLabelGT applies the GT predicate on the "stage_label" field.
func StageLabelGT(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldGT(FieldStageLabel, v))
}

// StageLabelGTE applies the GTE predicate on the "stage_label" field.
func StageLabelGTE(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldGTE(FieldStageLabel, v))
}

// StageLabelLT applies the LT predicate on the "stage_label" field.
func StageLabelLT(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldLT(FieldStageLabel, v))
}

// StageLabelLTE applies the LTE predicate on the "stage_label" field.
func StageLabelLTE(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldLTE(FieldStageLabel, v))
}

// StageLabelContains applies the Contains predicate on the "stage_label" field.
func StageLabelContains(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldContains(FieldStageLabel, v))
}

// StageLabelHasPrefix applies the HasPrefix predicate on the "stage_label" field.
func StageLabelHasPrefix(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldHasPrefix(FieldStageLabel, v))
}

// StageLabelHasSuffix applies the HasSuffix predicate on the "stage_label" field.
func StageLabelHasSuffix(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldHasSuffix(FieldStageLabel, v))
}

// StageLabelEqualFold applies the EqualFold predicate on the "stage_label" field.
func StageLabelEqualFold(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEqualFold(FieldStageLabel, v))
}

// StageLabelContainsFold applies the ContainsFold predicate on the "stage_label" field.
func StageLabelContainsFold(v string) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldContainsFold(FieldStageLabel, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.FieldLTE(FieldCompletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GalleryEntry) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GalleryEntry) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GalleryEntry) predicate.GalleryEntry {
	return predicate.GalleryEntry(sql.NotPredicates(p))
}
