package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func journeyTestSchema() *Schema {
	return &Schema{
		Name:        "validate-test-journey",
		Description: "minimal journey shape",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"steps": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"instruction": map[string]any{"type": "string"},
							"duration":    map[string]any{"type": "integer"},
						},
						"required": []any{"instruction", "duration"},
					},
				},
			},
			"required": []any{"title", "steps"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"title":"Looking Slowly","steps":[{"instruction":"Notice the light","duration":60}]}`)
	if err := validateResponse(journeyTestSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title":"Looking Slowly"}`)
	err := validateResponse(journeyTestSchema(), raw)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"title":"x","steps":[{"instruction":"look","duration":"sixty"}]}`)
	if err := validateResponse(journeyTestSchema(), raw); err == nil {
		t.Fatal("expected validation error for string duration")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"title": "unterminated`)
	err := validateResponse(journeyTestSchema(), raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	schema := journeyTestSchema()
	raw := json.RawMessage(`{"title":"x","steps":[]}`)

	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("first validation failed: %v", err)
	}
	if _, ok := schemaCache.Load(schema.Name); !ok {
		t.Fatal("compiled schema not cached")
	}
	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("cached validation failed: %v", err)
	}
}
