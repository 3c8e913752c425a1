package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsImageRequests(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "look at this painting"}},
		Images: []ImageAttachment{
			{MediaType: "image/jpeg", Data: []byte{0xFF, 0xD8, 0xFF}},
		},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	got := mock.Calls[0]
	if len(got.Images) != 1 || got.Images[0].MediaType != "image/jpeg" {
		t.Fatalf("images not carried through: %+v", got.Images)
	}
}

func TestWithPurpose_RoundTrip(t *testing.T) {
	ctx := WithPurpose(context.Background(), "journey")
	if got := PurposeFrom(ctx); got != "journey" {
		t.Fatalf("expected 'journey', got %q", got)
	}
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Fatalf("expected 'unknown' fallback, got %q", got)
	}
}

func TestSerializeRequest_SummarizesImages(t *testing.T) {
	req := Request{
		System:   "be an art guide",
		Messages: []Message{{Role: RoleUser, Content: "describe the painting"}},
		Images: []ImageAttachment{
			{MediaType: "image/png", Data: make([]byte, 2048)},
		},
	}

	out := serializeRequest(req)
	if !strings.Contains(out, "[image 1: image/png, 2048 bytes]") {
		t.Fatalf("image summary missing:\n%s", out)
	}
	if strings.Contains(out, string(make([]byte, 16))) {
		t.Fatal("raw image bytes leaked into serialized request")
	}
	if !strings.Contains(out, "describe the painting") {
		t.Fatalf("message text missing:\n%s", out)
	}
}
