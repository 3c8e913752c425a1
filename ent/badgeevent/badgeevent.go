// Code generated by ent, DO NOT EDIT.

package badgeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the badgeevent type in the database.
	Label = "badge_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldBadgeID holds the string denoting the badge_id field in the database.
	FieldBadgeID = "badge_id"
	// FieldBadgeName holds the string denoting the badge_name field in the database.
	FieldBadgeName = "badge_name"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// Table holds the table name of the badgeevent in the database.
	Table = "badge_events"
)

// Columns holds all SQL columns for badgeevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldBadgeID,
	FieldBadgeName,
	FieldKind,
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
	// BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	BadgeIDValidator func(string) error
	// BadgeNameValidator is a validator for the "badge_name" field. It is called by the builders before save.
	BadgeNameValidator func(string) error
)

// OrderOption defines the ordering options for the BadgeEvent queries.
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

// ByBadgeID orders the results by the badge_id field.
func ByBadgeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeID, opts...).ToFunc()
}

// ByBadgeName orders the results by the badge_name field.
func ByBadgeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeName, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}
