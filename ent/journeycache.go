// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aayasso/SlowMA-MVP/ent/journeycache"
)

// JourneyCache is the model entity for the JourneyCache schema.
type JourneyCache struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// sha256(image bytes) + stage label
	CacheKey string `json:"cache_key,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Cached journey document
	Data         json.RawMessage `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JourneyCache) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case journeycache.FieldData:
			values[i] = new([]byte)
		case journeycache.FieldID:
			values[i] = new(sql.NullInt64)
		case journeycache.FieldCacheKey:
			values[i] = new(sql.NullString)
		case journeycache.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JourneyCache fields.
func (_m *JourneyCache) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case journeycache.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case journeycache.FieldCacheKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cache_key", values[i])
			} else if value.Valid {
				_m.CacheKey = value.String
			}
		case journeycache.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case journeycache.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JourneyCache.
// This includes values selected through modifiers, order, etc.
func (_m *JourneyCache) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this JourneyCache.
// Note that you need to call JourneyCache.Unwrap() before calling this method if this JourneyCache
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JourneyCache) Update() *JourneyCacheUpdateOne {
	return NewJourneyCacheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JourneyCache entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JourneyCache) Unwrap() *JourneyCache {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JourneyCache is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JourneyCache) String() string {
	var builder strings.Builder
	builder.WriteString("JourneyCache(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cache_key=")
	builder.WriteString(_m.CacheKey)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// JourneyCaches is a parsable slice of JourneyCache.
type JourneyCaches []*JourneyCache
