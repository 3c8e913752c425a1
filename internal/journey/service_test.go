package journey

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aayasso/SlowMA-MVP/internal/llm"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
	"github.com/aayasso/SlowMA-MVP/internal/store"
)

// fakeGallery is an in-memory GalleryRepo.
type fakeGallery struct {
	entries []store.GalleryRecord
	cache   map[string]json.RawMessage
}

func newFakeGallery() *fakeGallery {
	return &fakeGallery{cache: make(map[string]json.RawMessage)}
}

func (f *fakeGallery) SaveEntry(_ context.Context, rec store.GalleryRecord) error {
	f.entries = append(f.entries, rec)
	return nil
}

func (f *fakeGallery) ListEntries(_ context.Context, limit int) ([]store.GalleryRecord, error) {
	return f.entries, nil
}

func (f *fakeGallery) CountEntries(_ context.Context) (int, error) {
	return len(f.entries), nil
}

func (f *fakeGallery) CacheGet(_ context.Context, key string) (json.RawMessage, error) {
	return f.cache[key], nil
}

func (f *fakeGallery) CachePut(_ context.Context, key string, data json.RawMessage) error {
	f.cache[key] = data
	return nil
}

// fakeEvents records appended events.
type fakeEvents struct {
	store.EventRepo
	journeys []store.JourneyEventData
}

func (f *fakeEvents) AppendJourneyEvent(_ context.Context, data store.JourneyEventData) error {
	f.journeys = append(f.journeys, data)
	return nil
}

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "starry-night.jpg")
	if err := os.WriteFile(path, []byte("fake-jpeg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func journeyResponse() json.RawMessage {
	return json.RawMessage(`{
		"journey_id": "j-abc",
		"artwork": {"title": "The Starry Night", "artist": "Vincent van Gogh", "year": "1889", "period": "", "style": "Post-Impressionism"},
		"total_steps": 3,
		"estimated_duration_minutes": 5,
		"steps": [
			{"step_number": 1, "region": {"x": 0.1, "y": 0.1, "width": 0.8, "height": 0.4, "title": "The swirling sky", "observation": "Notice how the sky moves", "why_notable": "Sets the emotional tone", "soft_prompt": "Let your eyes drift upward", "concept_tag": "emotion"}, "look_away_duration": 60, "why_this_sequence": "Settle in first", "builds_on": ""},
			{"step_number": 2, "region": {"x": 0.0, "y": 0.6, "width": 0.3, "height": 0.4, "title": "The cypress", "observation": "See how it reaches", "why_notable": "Bridges earth and sky", "soft_prompt": "Follow the dark shape", "concept_tag": "composition"}, "look_away_duration": 45, "why_this_sequence": "From sky to ground", "builds_on": "The sky's motion continues here"},
			{"step_number": 3, "region": {"x": 0.4, "y": 0.7, "width": 0.5, "height": 0.3, "title": "The village", "observation": "Notice the stillness", "why_notable": "Contrast with the sky", "soft_prompt": "Where is it quiet?", "concept_tag": "subject"}, "look_away_duration": 30, "why_this_sequence": "End in calm", "builds_on": "After all that motion"}
		],
		"welcome_text": "Take a breath. We're going to look slowly.",
		"final_summary": {"main_takeaway": "Motion and stillness live together here", "connections": "Sky, tree, village form one rhythm", "invitation_to_return": "Come back when the light changes", "reflection_question": "Where did your eye want to rest?"},
		"confidence_score": 0.95,
		"pedagogical_approach": "Emotional entry, then grounding"
	}`)
}

func TestCreateJourney_GeneratesAndFillsMetadata(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: journeyResponse()})
	gallery := newFakeGallery()
	svc := NewService(mock, gallery, nil, DefaultConfig())

	imgPath := writeTestImage(t)
	level := stage.Level{Stage: 2, Substage: 3}

	j, cached, err := svc.CreateJourney(context.Background(), imgPath, level)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached {
		t.Error("fresh journey reported as cached")
	}
	if j.JourneyID != "j-abc" {
		t.Errorf("JourneyID = %q", j.JourneyID)
	}
	if j.HousenStage != 2 || j.HousenSubstage != 3 {
		t.Errorf("level metadata = %d.%d", j.HousenStage, j.HousenSubstage)
	}
	if j.ImageFilename != "starry-night.jpg" {
		t.Errorf("ImageFilename = %q", j.ImageFilename)
	}
	if j.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if len(j.Steps) != 3 || j.Steps[0].Region.ConceptTag != "emotion" {
		t.Errorf("steps not parsed: %+v", j.Steps)
	}

	// The artwork image rode along with the prompt.
	call := mock.Calls[0]
	if len(call.Images) != 1 || call.Images[0].MediaType != "image/jpeg" {
		t.Fatalf("image attachment = %+v", call.Images)
	}
	if !strings.Contains(call.Messages[0].Content, "Housen Stage 2.3") {
		t.Error("prompt missing viewer level")
	}
	if !strings.Contains(call.Messages[0].Content, "Push toward next stage characteristics") {
		t.Error("prompt missing substage 3 modifier")
	}
}

func TestCreateJourney_CacheHitSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: journeyResponse()})
	gallery := newFakeGallery()
	svc := NewService(mock, gallery, nil, DefaultConfig())

	imgPath := writeTestImage(t)
	level := stage.Level{Stage: 1, Substage: 1}

	if _, _, err := svc.CreateJourney(context.Background(), imgPath, level); err != nil {
		t.Fatalf("first create: %v", err)
	}

	j, cached, err := svc.CreateJourney(context.Background(), imgPath, level)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if !cached {
		t.Error("expected cache hit")
	}
	if j.JourneyID != "j-abc" {
		t.Errorf("cached JourneyID = %q", j.JourneyID)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}

func TestCreateJourney_CacheVariesByLevel(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: journeyResponse()},
		llm.MockResponse{Content: journeyResponse()},
	)
	gallery := newFakeGallery()
	svc := NewService(mock, gallery, nil, DefaultConfig())

	imgPath := writeTestImage(t)

	if _, _, err := svc.CreateJourney(context.Background(), imgPath, stage.Level{Stage: 1, Substage: 1}); err != nil {
		t.Fatal(err)
	}
	// Different level, same image: the cache must not serve the old journey.
	_, cached, err := svc.CreateJourney(context.Background(), imgPath, stage.Level{Stage: 3, Substage: 2})
	if err != nil {
		t.Fatal(err)
	}
	if cached {
		t.Error("cache hit across different levels")
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider called %d times, want 2", mock.CallCount())
	}
}

func TestCreateJourney_CorruptCacheRegenerates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: journeyResponse()})
	gallery := newFakeGallery()
	svc := NewService(mock, gallery, nil, DefaultConfig())

	imgPath := writeTestImage(t)
	level := stage.Level{Stage: 1, Substage: 1}

	imageData, _ := os.ReadFile(imgPath)
	gallery.cache[cacheKey(imageData, level)] = json.RawMessage(`{not json`)

	j, cached, err := svc.CreateJourney(context.Background(), imgPath, level)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached {
		t.Error("corrupt cache entry served as hit")
	}
	if j.JourneyID != "j-abc" {
		t.Errorf("JourneyID = %q", j.JourneyID)
	}
}

func TestCreateJourney_MissingImage(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), nil, nil, DefaultConfig())
	_, _, err := svc.CreateJourney(context.Background(), "/nonexistent/art.jpg", stage.Initial())
	if err == nil {
		t.Fatal("expected error for missing image")
	}
}

func TestCompleteJourney_RecordsEventAndGallery(t *testing.T) {
	gallery := newFakeGallery()
	events := &fakeEvents{}
	svc := NewService(llm.NewMockProvider(), gallery, events, DefaultConfig())

	j := &Journey{
		JourneyID:      "j-1",
		Artwork:        Artwork{Title: "Guernica", Artist: "Picasso"},
		Steps:          []Step{{StepNumber: 1}, {StepNumber: 2}},
		HousenStage:    3,
		HousenSubstage: 1,
	}

	if err := svc.CompleteJourney(context.Background(), j, 240, false, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.journeys) != 1 {
		t.Fatalf("journey events = %d, want 1", len(events.journeys))
	}
	ev := events.journeys[0]
	if ev.StageLabel != "3.1" || ev.StepCount != 2 || ev.DurationSecs != 240 {
		t.Errorf("event = %+v", ev)
	}
	if !ev.AtMuseum {
		t.Error("event lost the at-museum flag")
	}

	if len(gallery.entries) != 1 {
		t.Fatalf("gallery entries = %d, want 1", len(gallery.entries))
	}
	rec := gallery.entries[0]
	if rec.Title != "Guernica" || rec.Artist != "Picasso" || rec.StageLabel != "3.1" {
		t.Errorf("gallery record = %+v", rec)
	}
	var stored Journey
	if err := json.Unmarshal(rec.Data, &stored); err != nil || stored.JourneyID != "j-1" {
		t.Errorf("stored document wrong: %s (%v)", rec.Data, err)
	}
}

func TestGenerateActivities_ParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"activities": [
			{"id": "activity_1", "type": "text", "title": "First Look", "prompt": "What stayed with you?", "placeholder": "I keep thinking about...", "why_this_activity": "Engagement"}
		]
	}`)})
	svc := NewService(mock, nil, nil, DefaultConfig())

	acts := svc.GenerateActivities(context.Background(), &Journey{}, stage.Level{Stage: 2, Substage: 1})
	if len(acts) != 1 || acts[0].Title != "First Look" {
		t.Fatalf("activities = %+v", acts)
	}
}

func TestGenerateActivities_FallsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	svc := NewService(mock, nil, nil, DefaultConfig())

	acts := svc.GenerateActivities(context.Background(), &Journey{}, stage.Level{Stage: 4, Substage: 2})
	if len(acts) != 2 {
		t.Fatalf("fallback activities = %d, want 2", len(acts))
	}
	if acts[0].Title != "Multiple Meanings" {
		t.Errorf("wrong stage fallback: %+v", acts[0])
	}
}

func TestGenerateActivities_FallsBackOnEmptyList(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"activities": []}`)})
	svc := NewService(mock, nil, nil, DefaultConfig())

	acts := svc.GenerateActivities(context.Background(), &Journey{}, stage.Initial())
	if len(acts) != 2 || acts[0].Type != "connection" {
		t.Fatalf("fallback = %+v", acts)
	}
}

func TestFallbackActivities_UnknownStage(t *testing.T) {
	acts := FallbackActivities(stage.Level{Stage: 9, Substage: 1})
	if len(acts) != 2 || acts[0].Title != "Personal Connection" {
		t.Fatalf("unknown stage fallback = %+v", acts)
	}
}

func TestMediaTypeFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.jpg", "image/jpeg"},
		{"a.JPEG", "image/jpeg"},
		{"a.png", "image/png"},
		{"a.webp", "image/webp"},
		{"a.bmp", "image/jpeg"}, // unknown falls back
	}
	for _, tt := range tests {
		if got := mediaTypeFor(tt.path); got != tt.want {
			t.Errorf("mediaTypeFor(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCacheKey_SensitiveToContentAndLevel(t *testing.T) {
	a := cacheKey([]byte("image-a"), stage.Level{Stage: 1, Substage: 1})
	b := cacheKey([]byte("image-b"), stage.Level{Stage: 1, Substage: 1})
	c := cacheKey([]byte("image-a"), stage.Level{Stage: 1, Substage: 2})

	if a == b {
		t.Error("different images share a cache key")
	}
	if a == c {
		t.Error("different levels share a cache key")
	}
	if a != cacheKey([]byte("image-a"), stage.Level{Stage: 1, Substage: 1}) {
		t.Error("cache key not deterministic")
	}
}
