// Code generated by ent, DO NOT EDIT.

package stageevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stageevent type in the database.
	Label = "stage_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldFromStage holds the string denoting the from_stage field in the database.
	FieldFromStage = "from_stage"
	// FieldToStage holds the string denoting the to_stage field in the database.
	FieldToStage = "to_stage"
	// FieldChange holds the string denoting the change field in the database.
	FieldChange = "change"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// Table holds the table name of the stageevent in the database.
	Table = "stage_events"
)

// Columns holds all SQL columns for stageevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldFromStage,
	FieldToStage,
	FieldChange,
	FieldTrigger,
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
)

// OrderOption defines the ordering options for the StageEvent queries.
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

// ByFromStage orders the results by the from_stage field.
func ByFromStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromStage, opts...).ToFunc()
}

// ByToStage orders the results by the to_stage field.
func ByToStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToStage, opts...).ToFunc()
}

// ByChange orders the results by the change field.
func ByChange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChange, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}
