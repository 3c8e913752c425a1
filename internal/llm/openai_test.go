package llm

import (
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestBuildOpenAIMessages_PlainText(t *testing.T) {
	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem || msgs[0].Content != "sys" {
		t.Fatalf("system message wrong: %+v", msgs[0])
	}
	if msgs[1].Content != "hello" || len(msgs[1].MultiContent) != 0 {
		t.Fatalf("text-only request should use plain content: %+v", msgs[1])
	}
}

func TestBuildOpenAIMessages_AttachesImagesToFirstUserMessage(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: RoleUser, Content: "what do you see?"},
			{Role: RoleAssistant, Content: "a landscape"},
			{Role: RoleUser, Content: "look closer"},
		},
		Images: []ImageAttachment{
			{MediaType: "image/jpeg", Data: []byte("fake-jpeg-bytes")},
		},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}

	first := msgs[0]
	if len(first.MultiContent) != 2 {
		t.Fatalf("expected image part + text part, got %d parts", len(first.MultiContent))
	}
	img := first.MultiContent[0]
	if img.Type != openai.ChatMessagePartTypeImageURL {
		t.Fatalf("first part should be image, got %q", img.Type)
	}
	if !strings.HasPrefix(img.ImageURL.URL, "data:image/jpeg;base64,") {
		t.Fatalf("image URL not a data URI: %q", img.ImageURL.URL)
	}
	if first.MultiContent[1].Text != "what do you see?" {
		t.Fatalf("text part wrong: %+v", first.MultiContent[1])
	}

	// Later messages stay plain; images attach once.
	if len(msgs[2].MultiContent) != 0 || msgs[2].Content != "look closer" {
		t.Fatalf("second user message should be plain: %+v", msgs[2])
	}
}
