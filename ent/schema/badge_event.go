package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BadgeEvent records a badge award.
type BadgeEvent struct {
	ent.Schema
}

func (BadgeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BadgeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("badge_id").NotEmpty(),
		field.String("badge_name").NotEmpty(),
		field.String("kind").
			Comment("Milestone family: time_spent, museum_visitor, quality_engagement, stage_progression"),
	}
}

func (BadgeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("badge_id"),
		index.Fields("kind"),
	}
}
