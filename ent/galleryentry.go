// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aayasso/SlowMA-MVP/ent/galleryentry"
)

// GalleryEntry is the model entity for the GalleryEntry schema.
type GalleryEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// JourneyID holds the value of the "journey_id" field.
	JourneyID string `json:"journey_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Artist holds the value of the "artist" field.
	Artist string `json:"artist,omitempty"`
	// Viewer level when the journey was completed
	StageLabel string `json:"stage_label,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// Full journey document
	Data         json.RawMessage `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GalleryEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case galleryentry.FieldData:
			values[i] = new([]byte)
		case galleryentry.FieldID:
			values[i] = new(sql.NullInt64)
		case galleryentry.FieldJourneyID, galleryentry.FieldTitle, galleryentry.FieldArtist, galleryentry.FieldStageLabel:
			values[i] = new(sql.NullString)
		case galleryentry.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GalleryEntry fields.
func (_m *GalleryEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case galleryentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case galleryentry.FieldJourneyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field journey_id", values[i])
			} else if value.Valid {
				_m.JourneyID = value.String
			}
		case galleryentry.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case galleryentry.FieldArtist:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artist", values[i])
			} else if value.Valid {
				_m.Artist = value.String
			}
		case galleryentry.FieldStageLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_label", values[i])
			} else if value.Valid {
				_m.StageLabel = value.String
			}
		case galleryentry.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		case galleryentry.FieldData:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GalleryEntry.
// This includes values selected through modifiers, order, etc.
func (_m *GalleryEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GalleryEntry.
// Note that you need to call GalleryEntry.Unwrap() before calling this method if this GalleryEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GalleryEntry) Update() *GalleryEntryUpdateOne {
	return NewGalleryEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GalleryEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GalleryEntry) Unwrap() *GalleryEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GalleryEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GalleryEntry) String() string {
	var builder strings.Builder
	builder.WriteString("GalleryEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("journey_id=")
	builder.WriteString(_m.JourneyID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("artist=")
	builder.WriteString(_m.Artist)
	builder.WriteString(", ")
	builder.WriteString("stage_label=")
	builder.WriteString(_m.StageLabel)
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// GalleryEntries is a parsable slice of GalleryEntry.
type GalleryEntries []*GalleryEntry
