// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldStageLabel holds the string denoting the stage_label field in the database.
	FieldStageLabel = "stage_label"
	// FieldChange holds the string denoting the change field in the database.
	FieldChange = "change"
	// FieldQuality holds the string denoting the quality field in the database.
	FieldQuality = "quality"
	// FieldResponseCount holds the string denoting the response_count field in the database.
	FieldResponseCount = "response_count"
	// FieldScores holds the string denoting the scores field in the database.
	FieldScores = "scores"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldStageLabel,
	FieldChange,
	FieldQuality,
	FieldResponseCount,
	FieldScores,
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
	// DefaultResponseCount holds the default value on creation for the "response_count" field.
	DefaultResponseCount int
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
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

// ByStageLabel orders the results by the stage_label field.
func ByStageLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageLabel, opts...).ToFunc()
}

// ByChange orders the results by the change field.
func ByChange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChange, opts...).ToFunc()
}

// ByQuality orders the results by the quality field.
func ByQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuality, opts...).ToFunc()
}

// ByResponseCount orders the results by the response_count field.
func ByResponseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseCount, opts...).ToFunc()
}
