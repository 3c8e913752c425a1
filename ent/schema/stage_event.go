package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageEvent records a level transition with what caused it.
type StageEvent struct {
	ent.Schema
}

func (StageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("from_stage").
			Comment("Level before the transition, e.g. 2.3"),
		field.String("to_stage").
			Comment("Level after the transition, e.g. 3.1"),
		field.String("change").
			Comment("progression or regression"),
		field.String("trigger").
			Comment("assessment or inactivity"),
	}
}

func (StageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trigger"),
		index.Fields("change"),
	}
}
