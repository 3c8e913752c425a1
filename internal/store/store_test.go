package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileRepo_FreshLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()

	p, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Level != stage.Initial() {
		t.Errorf("fresh profile level = %v, want 1.1", p.Level)
	}
	if p.ID == "" {
		t.Error("fresh profile has no ID")
	}
}

func TestProfileRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p.Level = stage.Level{Stage: 3, Substage: 2}
	p.JourneysCompleted = 7
	p.PushQualityScore(82.5)
	p.Touch(time.Now())

	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Level != (stage.Level{Stage: 3, Substage: 2}) {
		t.Errorf("Level = %v", got.Level)
	}
	if got.JourneysCompleted != 7 {
		t.Errorf("JourneysCompleted = %d", got.JourneysCompleted)
	}
	if len(got.RecentQualityScores) != 1 || got.RecentQualityScores[0] != 82.5 {
		t.Errorf("RecentQualityScores = %v", got.RecentQualityScores)
	}
	if got.LastActivity == nil {
		t.Error("LastActivity lost in round trip")
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := range 5 {
		snap := &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		}
		if err := repo.Save(ctx, snap); err != nil {
			t.Fatalf("save snapshot %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.Sequence != 5 {
		t.Errorf("latest after prune = %+v, want sequence 5", latest)
	}

	n, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("snapshots after prune = %d, want 2", n)
	}
}

func TestEventRepo_LLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := range 3 {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-sonnet-4-20250514",
			Purpose:      "journey",
			InputTokens:  100 + i,
			OutputTokens: 50,
			Success:      true,
			RequestBody:  "[user]\ncreate a journey",
			ResponseBody: `{"title":"x"}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Most recent first.
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("records not in descending sequence order: %d, %d",
			records[0].Sequence, records[1].Sequence)
	}
	if records[0].InputTokens != 102 {
		t.Errorf("InputTokens = %d, want 102", records[0].InputTokens)
	}

	got, err := repo.GetLLMEvent(ctx, records[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody == "" {
		t.Errorf("GetLLMEvent = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestEventRepo_StageEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendStageChange(ctx, StageEventData{
		FromStage: "2.3", ToStage: "3.1",
		Change: "progression", Trigger: "assessment",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendStageChange(ctx, StageEventData{
		FromStage: "3.1", ToStage: "2.3",
		Change: "regression", Trigger: "inactivity",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryStageEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Trigger != "inactivity" || records[1].Trigger != "assessment" {
		t.Errorf("order wrong: %+v", records)
	}
}

func TestEventRepo_AssessmentAndBadges(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAssessment(ctx, AssessmentEventData{
		StageLabel:    "1.2",
		Change:        "maintenance",
		Quality:       61.3,
		ResponseCount: 2,
		Scores:        map[string]float64{"storytelling": 70},
	})
	if err != nil {
		t.Fatalf("append assessment: %v", err)
	}

	err = repo.AppendBadgeEvent(ctx, BadgeEventData{
		BadgeID: "time_30min", BadgeName: "First 30 Minutes", Kind: "time_spent",
	})
	if err != nil {
		t.Fatalf("append badge: %v", err)
	}
}

func TestGalleryRepo_EntriesAndCache(t *testing.T) {
	s := openTestStore(t)
	repo := s.GalleryRepo()
	ctx := context.Background()

	doc := json.RawMessage(`{"title":"Starry Night","steps":[]}`)
	err := repo.SaveEntry(ctx, GalleryRecord{
		JourneyID:   "j-1",
		Title:       "Starry Night",
		Artist:      "van Gogh",
		StageLabel:  "2.1",
		CompletedAt: time.Now(),
		Data:        doc,
	})
	if err != nil {
		t.Fatalf("save entry: %v", err)
	}

	entries, err := repo.ListEntries(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Starry Night" {
		t.Fatalf("entries = %+v", entries)
	}
	if string(entries[0].Data) != string(doc) {
		t.Errorf("journey document mutated: %s", entries[0].Data)
	}

	n, err := repo.CountEntries(ctx)
	if err != nil || n != 1 {
		t.Errorf("count = %d (%v), want 1", n, err)
	}

	// Cache miss, then hit, then replace.
	got, err := repo.CacheGet(ctx, "abc:2.1")
	if err != nil || got != nil {
		t.Fatalf("expected cache miss, got %s (%v)", got, err)
	}
	if err := repo.CachePut(ctx, "abc:2.1", doc); err != nil {
		t.Fatalf("cache put: %v", err)
	}
	got, err = repo.CacheGet(ctx, "abc:2.1")
	if err != nil || string(got) != string(doc) {
		t.Fatalf("cache get = %s (%v)", got, err)
	}
	doc2 := json.RawMessage(`{"title":"replaced"}`)
	if err := repo.CachePut(ctx, "abc:2.1", doc2); err != nil {
		t.Fatalf("cache replace: %v", err)
	}
	got, _ = repo.CacheGet(ctx, "abc:2.1")
	if string(got) != string(doc2) {
		t.Errorf("cache not replaced: %s", got)
	}
}

func TestEventRepo_LLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "journey", InputTokens: 1000, OutputTokens: 400, LatencyMs: 900, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "journey", InputTokens: 1200, OutputTokens: 600, LatencyMs: 1100, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "reflection-activities", InputTokens: 300, OutputTokens: 100, LatencyMs: 400, Success: true},
	}
	for i, data := range seed {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purpose rows, want 2", len(byPurpose))
	}
	for _, row := range byPurpose {
		switch row.Purpose {
		case "journey":
			if row.Calls != 2 || row.InputTokens != 2200 || row.OutputTokens != 1000 {
				t.Errorf("journey usage = %+v", row)
			}
			if row.AvgLatencyMs != 1000 {
				t.Errorf("journey avg latency = %d, want 1000", row.AvgLatencyMs)
			}
		case "reflection-activities":
			if row.Calls != 1 || row.InputTokens != 300 {
				t.Errorf("activities usage = %+v", row)
			}
		default:
			t.Errorf("unexpected purpose %q", row.Purpose)
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d model rows, want 2", len(byModel))
	}
	for _, row := range byModel {
		if row.Model == "claude-sonnet-4-20250514" && row.Calls != 2 {
			t.Errorf("sonnet calls = %d, want 2", row.Calls)
		}
	}
}
