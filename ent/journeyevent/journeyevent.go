// Code generated by ent, DO NOT EDIT.

package journeyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the journeyevent type in the database.
	Label = "journey_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldJourneyID holds the string denoting the journey_id field in the database.
	FieldJourneyID = "journey_id"
	// FieldArtworkTitle holds the string denoting the artwork_title field in the database.
	FieldArtworkTitle = "artwork_title"
	// FieldStageLabel holds the string denoting the stage_label field in the database.
	FieldStageLabel = "stage_label"
	// FieldStepCount holds the string denoting the step_count field in the database.
	FieldStepCount = "step_count"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldCached holds the string denoting the cached field in the database.
	FieldCached = "cached"
	// FieldAtMuseum holds the string denoting the at_museum field in the database.
	FieldAtMuseum = "at_museum"
	// Table holds the table name of the journeyevent in the database.
	Table = "journey_events"
)

// Columns holds all SQL columns for journeyevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldJourneyID,
	FieldArtworkTitle,
	FieldStageLabel,
	FieldStepCount,
	FieldDurationSecs,
	FieldCached,
	FieldAtMuseum,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// JourneyIDValidator is a validator for the "journey_id" field. It is called by the builders before save.
	JourneyIDValidator func(string) error
	// DefaultArtworkTitle holds the default value on creation for the "artwork_title" field.
	DefaultArtworkTitle string
	// DefaultStepCount holds the default value on creation for the "step_count" field.
	DefaultStepCount int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
	// DefaultCached holds the default value on creation for the "cached" field.
	DefaultCached bool
	// DefaultAtMuseum holds the default value on creation for the "at_museum" field.
	DefaultAtMuseum bool
)

// OrderOption defines the ordering options for the JourneyEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByJourneyID orders the results by the journey_id field.
func ByJourneyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJourneyID, opts...).ToFunc()
}

// ByArtworkTitle orders the results by the artwork_title field.
func ByArtworkTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtworkTitle, opts...).ToFunc()
}

// ByStageLabel orders the results by the stage_label field.
func ByStageLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageLabel, opts...).ToFunc()
}

// ByStepCount orders the results by the step_count field.
func ByStepCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepCount, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByCached orders the results by the cached field.
func ByCached(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCached, opts...).ToFunc()
}

// ByAtMuseum orders the results by the at_museum field.
func ByAtMuseum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAtMuseum, opts...).ToFunc()
}
