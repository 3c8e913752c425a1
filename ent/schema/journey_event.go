package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JourneyEvent records a completed slow looking journey.
type JourneyEvent struct {
	ent.Schema
}

func (JourneyEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (JourneyEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("journey_id").NotEmpty(),
		field.String("artwork_title").
			Default("").
			Comment("Title reported by the journey generator"),
		field.String("stage_label").
			Comment("Viewer level the journey was tailored to"),
		field.Int("step_count").
			Default(0),
		field.Int("duration_secs").
			Default(0).
			Comment("Time the viewer spent on the journey"),
		field.Bool("cached").
			Default(false).
			Comment("Whether the journey was served from the cache"),
		field.Bool("at_museum").
			Default(false).
			Comment("Whether the viewer stood in front of the physical artwork"),
	}
}

func (JourneyEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("journey_id"),
		index.Fields("stage_label"),
	}
}
