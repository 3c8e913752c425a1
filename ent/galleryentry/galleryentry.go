// Code generated by ent, DO NOT EDIT.

package galleryentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the galleryentry type in the database.
	Label = "gallery_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJourneyID holds the string denoting the journey_id field in the database.
	FieldJourneyID = "journey_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldArtist holds the string denoting the artist field in the database.
	FieldArtist = "artist"
	// FieldStageLabel holds the string denoting the stage_label field in the database.
	FieldStageLabel = "stage_label"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// Table holds the table name of the galleryentry in the database.
	Table = "gallery_entries"
)

// Columns holds all SQL columns for galleryentry fields.
var Columns = []string{
	FieldID,
	FieldJourneyID,
	FieldTitle,
	FieldArtist,
	FieldStageLabel,
	FieldCompletedAt,
	FieldData,
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
	// JourneyIDValidator is a validator for the "journey_id" field. It is called by the builders before save.
	JourneyIDValidator func(string) error
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// DefaultArtist holds the default value on creation for the "artist" field.
	DefaultArtist string
	// DefaultCompletedAt holds the default value on creation for the "completed_at" field.
	DefaultCompletedAt func() time.Time
)

// OrderOption defines the ordering options for the GalleryEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJourneyID orders the results by the journey_id field.
func ByJourneyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJourneyID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByArtist orders the results by the artist field.
func ByArtist(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtist, opts...).ToFunc()
}

// ByStageLabel orders the results by the stage_label field.
func ByStageLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageLabel, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
