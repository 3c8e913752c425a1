package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records one scored reflection assessment.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("stage_label").
			Comment("Resulting level, e.g. 2.3"),
		field.String("change").
			Comment("progression, regression, or maintenance"),
		field.Float("quality").
			Comment("Aggregated engagement quality 0-100"),
		field.Int("response_count").
			Default(0).
			Comment("Number of scored responses"),
		field.JSON("scores", map[string]float64{}).
			Optional().
			Comment("Per-indicator scores"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("change"),
		index.Fields("stage_label"),
	}
}
