package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GalleryEntry stores a completed journey for the personal gallery.
// The full journey document is kept as opaque JSON so the store stays
// decoupled from the journey shape.
type GalleryEntry struct {
	ent.Schema
}

func (GalleryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("journey_id").
			Unique().
			NotEmpty(),
		field.String("title").
			Default(""),
		field.String("artist").
			Default(""),
		field.String("stage_label").
			Comment("Viewer level when the journey was completed"),
		field.Time("completed_at").
			Default(time.Now),
		field.JSON("data", json.RawMessage{}).
			Comment("Full journey document"),
	}
}

func (GalleryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("completed_at"),
	}
}
