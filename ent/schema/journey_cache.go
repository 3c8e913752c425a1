package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// JourneyCache stores generated journeys keyed by artwork digest and
// stage so a re-scanned artwork skips the LLM round trip.
type JourneyCache struct {
	ent.Schema
}

func (JourneyCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("cache_key").
			Unique().
			NotEmpty().
			Comment("sha256(image bytes) + stage label"),
		field.Time("created_at").
			Default(time.Now),
		field.JSON("data", json.RawMessage{}).
			Comment("Cached journey document"),
	}
}
