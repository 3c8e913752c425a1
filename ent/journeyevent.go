// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aayasso/SlowMA-MVP/ent/journeyevent"
)

// JourneyEvent is the model entity for the JourneyEvent schema.
type JourneyEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event order
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// JourneyID holds the value of the "journey_id" field.
	JourneyID string `json:"journey_id,omitempty"`
	// Title reported by the journey generator
	ArtworkTitle string `json:"artwork_title,omitempty"`
	// Viewer level the journey was tailored to
	StageLabel string `json:"stage_label,omitempty"`
	// StepCount holds the value of the "step_count" field.
	StepCount int `json:"step_count,omitempty"`
	// Time the viewer spent on the journey
	DurationSecs int `json:"duration_secs,omitempty"`
	// Whether the journey was served from the cache
	Cached bool `json:"cached,omitempty"`
	// Whether the viewer stood in front of the physical artwork
	AtMuseum     bool `json:"at_museum,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JourneyEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case journeyevent.FieldCached, journeyevent.FieldAtMuseum:
			values[i] = new(sql.NullBool)
		case journeyevent.FieldID, journeyevent.FieldSequence, journeyevent.FieldStepCount, journeyevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case journeyevent.FieldJourneyID, journeyevent.FieldArtworkTitle, journeyevent.FieldStageLabel:
			values[i] = new(sql.NullString)
		case journeyevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JourneyEvent fields.
func (_m *JourneyEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case journeyevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case journeyevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case journeyevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case journeyevent.FieldJourneyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field journey_id", values[i])
			} else if value.Valid {
				_m.JourneyID = value.String
			}
		case journeyevent.FieldArtworkTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artwork_title", values[i])
			} else if value.Valid {
				_m.ArtworkTitle = value.String
			}
		case journeyevent.FieldStageLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_label", values[i])
			} else if value.Valid {
				_m.StageLabel = value.String
			}
		case journeyevent.FieldStepCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_count", values[i])
			} else if value.Valid {
				_m.StepCount = int(value.Int64)
			}
		case journeyevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		case journeyevent.FieldCached:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cached", values[i])
			} else if value.Valid {
				_m.Cached = value.Bool
			}
		case journeyevent.FieldAtMuseum:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field at_museum", values[i])
			} else if value.Valid {
				_m.AtMuseum = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JourneyEvent.
// This includes values selected through modifiers, order, etc.
func (_m *JourneyEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this JourneyEvent.
// Note that you need to call JourneyEvent.Unwrap() before calling this method if this JourneyEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JourneyEvent) Update() *JourneyEventUpdateOne {
	return NewJourneyEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JourneyEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JourneyEvent) Unwrap() *JourneyEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JourneyEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JourneyEvent) String() string {
	var builder strings.Builder
	builder.WriteString("JourneyEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("journey_id=")
	builder.WriteString(_m.JourneyID)
	builder.WriteString(", ")
	builder.WriteString("artwork_title=")
	builder.WriteString(_m.ArtworkTitle)
	builder.WriteString(", ")
	builder.WriteString("stage_label=")
	builder.WriteString(_m.StageLabel)
	builder.WriteString(", ")
	builder.WriteString("step_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepCount))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteString(", ")
	builder.WriteString("cached=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cached))
	builder.WriteString(", ")
	builder.WriteString("at_museum=")
	builder.WriteString(fmt.Sprintf("%v", _m.AtMuseum))
	builder.WriteByte(')')
	return builder.String()
}

// JourneyEvents is a parsable slice of JourneyEvent.
type JourneyEvents []*JourneyEvent
