package journey

import "github.com/aayasso/SlowMA-MVP/internal/llm"

// JourneySchema defines the JSON schema for slow looking walkthrough
// generation.
var JourneySchema = &llm.Schema{
	Name:        "slow-looking-journey",
	Description: "A step-by-step slow looking walkthrough for one artwork",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"journey_id": map[string]any{
				"type":        "string",
				"description": "Generated UUID for this journey",
			},
			"artwork": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":  map[string]any{"type": "string", "description": "Title, or empty if unknown"},
					"artist": map[string]any{"type": "string", "description": "Artist, or empty if unknown"},
					"year":   map[string]any{"type": "string", "description": "Year, or empty if unknown"},
					"period": map[string]any{"type": "string", "description": "Period, or empty if unknown"},
					"style":  map[string]any{"type": "string", "description": "Style, or empty if unknown"},
				},
				"required":             []any{"title", "artist", "year", "period", "style"},
				"additionalProperties": false,
			},
			"total_steps": map[string]any{
				"type":        "integer",
				"description": "Number of steps, 3-6 based on artwork complexity",
			},
			"estimated_duration_minutes": map[string]any{
				"type":        "integer",
				"description": "Estimated total minutes, 3-8",
			},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"step_number": map[string]any{"type": "integer"},
						"region": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"x":      map[string]any{"type": "number", "description": "Normalized 0-1"},
								"y":      map[string]any{"type": "number", "description": "Normalized 0-1"},
								"width":  map[string]any{"type": "number", "description": "Normalized 0-1"},
								"height": map[string]any{"type": "number", "description": "Normalized 0-1"},
								"title": map[string]any{
									"type":        "string",
									"description": "Brief title (max 40 chars)",
								},
								"observation": map[string]any{
									"type":        "string",
									"description": "What to notice (80-250 chars, match their level)",
								},
								"why_notable": map[string]any{
									"type":        "string",
									"description": "Why this matters (50-200 chars, accessible)",
								},
								"soft_prompt": map[string]any{
									"type":        "string",
									"description": "Gentle guidance during look-away (max 100 chars)",
								},
								"concept_tag": map[string]any{
									"type": "string",
									"enum": []any{"composition", "technique", "symbolism", "color", "light", "subject", "emotion", "context", "style"},
								},
							},
							"required":             []any{"x", "y", "width", "height", "title", "observation", "why_notable", "soft_prompt", "concept_tag"},
							"additionalProperties": false,
						},
						"look_away_duration": map[string]any{
							"type":        "integer",
							"description": "Seconds to look away, 30-60",
						},
						"why_this_sequence": map[string]any{
							"type":        "string",
							"description": "Why now? (max 150 chars)",
						},
						"builds_on": map[string]any{
							"type":        "string",
							"description": "Connection to previous step, or empty (max 200 chars)",
						},
					},
					"required":             []any{"step_number", "region", "look_away_duration", "why_this_sequence", "builds_on"},
					"additionalProperties": false,
				},
			},
			"welcome_text": map[string]any{
				"type":        "string",
				"description": "Warm invitation (max 200 chars, match their level)",
			},
			"final_summary": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"main_takeaway": map[string]any{
						"type":        "string",
						"description": "Key insight (100-300 chars)",
					},
					"connections": map[string]any{
						"type":        "string",
						"description": "How observations connect (150-400 chars)",
					},
					"invitation_to_return": map[string]any{
						"type":        "string",
						"description": "Encouraging close (max 150 chars)",
					},
					"reflection_question": map[string]any{
						"type":        "string",
						"description": "Open question (max 100 chars)",
					},
				},
				"required":             []any{"main_takeaway", "connections", "invitation_to_return", "reflection_question"},
				"additionalProperties": false,
			},
			"confidence_score": map[string]any{
				"type":        "number",
				"description": "Identification confidence 0.0-1.0",
			},
			"pedagogical_approach": map[string]any{
				"type":        "string",
				"description": "Strategy used (max 200 chars)",
			},
		},
		"required":             []any{"journey_id", "artwork", "total_steps", "estimated_duration_minutes", "steps", "welcome_text", "final_summary", "confidence_score", "pedagogical_approach"},
		"additionalProperties": false,
	},
}

// ActivitiesSchema defines the JSON schema for reflection activity
// generation.
var ActivitiesSchema = &llm.Schema{
	Name:        "reflection-activities",
	Description: "Reflection activities tailored to the viewer's stage",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"activities": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "activity_1, activity_2, ...",
						},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"text", "comparison", "connection", "creative", "synthesis"},
						},
						"title": map[string]any{
							"type":        "string",
							"description": "Brief engaging title (max 50 chars)",
						},
						"prompt": map[string]any{
							"type":        "string",
							"description": "Clear, friendly instructions (100-300 chars)",
						},
						"placeholder": map[string]any{
							"type":        "string",
							"description": "Helpful example or guidance (max 100 chars)",
						},
						"why_this_activity": map[string]any{
							"type":        "string",
							"description": "What growth indicators this assesses (internal, max 150 chars)",
						},
					},
					"required":             []any{"id", "type", "title", "prompt", "placeholder", "why_this_activity"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"activities"},
		"additionalProperties": false,
	},
}
