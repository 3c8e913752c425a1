// Code generated by ent, DO NOT EDIT.

package journeycache

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the journeycache type in the database.
	Label = "journey_cache"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCacheKey holds the string denoting the cache_key field in the database.
	FieldCacheKey = "cache_key"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// Table holds the table name of the journeycache in the database.
	Table = "journey_caches"
)

// Columns holds all SQL columns for journeycache fields.
var Columns = []string{
	FieldID,
	FieldCacheKey,
	FieldCreatedAt,
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
	// CacheKeyValidator is a validator for the "cache_key" field. It is called by the builders before save.
	CacheKeyValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the JourneyCache queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCacheKey orders the results by the cache_key field.
func ByCacheKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCacheKey, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
