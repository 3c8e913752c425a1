package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestBuildGeminiContents_AttachesImagesInline(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: RoleUser, Content: "describe the composition"},
		},
		Images: []ImageAttachment{
			{MediaType: "image/png", Data: []byte{0x89, 0x50, 0x4E, 0x47}},
		},
	}

	contents := buildGeminiContents(req)
	if len(contents) != 1 {
		t.Fatalf("expected 1 content, got %d", len(contents))
	}
	parts := contents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("expected image + text parts, got %d", len(parts))
	}
	if parts[0].InlineData == nil || parts[0].InlineData.MIMEType != "image/png" {
		t.Fatalf("inline image part wrong: %+v", parts[0])
	}
	if parts[1].Text != "describe the composition" {
		t.Fatalf("text part wrong: %+v", parts[1])
	}
}

func TestBuildGeminiContents_RoleMapping(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: RoleUser, Content: "u"},
			{Role: RoleAssistant, Content: "a"},
		},
	}

	contents := buildGeminiContents(req)
	if contents[0].Role != "user" || contents[1].Role != "model" {
		t.Fatalf("role mapping wrong: %q, %q", contents[0].Role, contents[1].Role)
	}
}

func TestBuildGeminiSchema_NestedDefinition(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "a journey step",
		"properties": map[string]any{
			"instruction": map[string]any{"type": "string"},
			"duration":    map[string]any{"type": "integer"},
			"regions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"instruction", "duration"},
	}

	schema := buildGeminiSchema(def)
	if schema.Type != genai.TypeObject {
		t.Fatalf("expected object type, got %v", schema.Type)
	}
	if schema.Properties["duration"].Type != genai.TypeInteger {
		t.Fatalf("duration type wrong: %v", schema.Properties["duration"].Type)
	}
	if schema.Properties["regions"].Items.Type != genai.TypeString {
		t.Fatalf("array items type wrong: %v", schema.Properties["regions"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("required fields wrong: %v", schema.Required)
	}
}
