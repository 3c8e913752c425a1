package journey

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aayasso/SlowMA-MVP/internal/llm"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
	"github.com/aayasso/SlowMA-MVP/internal/store"
)

// Service creates journeys and reflection activities.
type Service struct {
	provider llm.Provider
	gallery  store.GalleryRepo
	events   store.EventRepo
	cfg      Config
}

// NewService creates a journey service. gallery and events may be nil,
// which disables caching and event logging.
func NewService(provider llm.Provider, gallery store.GalleryRepo, events store.EventRepo, cfg Config) *Service {
	return &Service{provider: provider, gallery: gallery, events: events, cfg: cfg}
}

// mediaTypes maps image file extensions to MIME types. Unknown
// extensions fall back to JPEG.
var mediaTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

func mediaTypeFor(path string) string {
	if mt, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return "image/jpeg"
}

// cacheKey derives the journey cache key from the image content and the
// viewer level. Same artwork at the same level reuses the cached journey.
func cacheKey(imageData []byte, level stage.Level) string {
	digest := sha256.Sum256(imageData)
	return fmt.Sprintf("%x_s%d_%d", digest, level.Stage, level.Substage)
}

// CreateJourney generates a slow looking walkthrough for the artwork
// photo at imagePath, tailored to the viewer's level. The second return
// reports whether the journey came from the cache.
func (s *Service) CreateJourney(ctx context.Context, imagePath string, level stage.Level) (*Journey, bool, error) {
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, false, fmt.Errorf("read artwork image: %w", err)
	}

	key := cacheKey(imageData, level)
	if s.gallery != nil {
		cached, err := s.gallery.CacheGet(ctx, key)
		if err == nil && cached != nil {
			var j Journey
			if err := json.Unmarshal(cached, &j); err == nil {
				return &j, true, nil
			}
			// Corrupt cache entry falls through to regeneration.
		}
	}

	ctx = llm.WithPurpose(ctx, "journey")
	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildJourneyPrompt(level)},
		},
		Images: []llm.ImageAttachment{
			{MediaType: mediaTypeFor(imagePath), Data: imageData},
		},
		Schema:      JourneySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, false, fmt.Errorf("journey generation: %w", err)
	}

	var j Journey
	if err := json.Unmarshal(resp.Content, &j); err != nil {
		return nil, false, fmt.Errorf("parse journey response: %w", err)
	}

	if j.JourneyID == "" {
		j.JourneyID = uuid.NewString()
	}
	if j.TotalSteps == 0 {
		j.TotalSteps = len(j.Steps)
	}
	j.ImageFilename = filepath.Base(imagePath)
	j.CreatedAt = time.Now().UTC()
	j.HousenStage = level.Stage
	j.HousenSubstage = level.Substage

	if s.gallery != nil {
		if doc, err := json.Marshal(&j); err == nil {
			// Cache write failures are not fatal; the journey was generated.
			_ = s.gallery.CachePut(ctx, key, doc)
		}
	}

	return &j, false, nil
}

// CompleteJourney records a finished journey in the event log and the
// personal gallery.
func (s *Service) CompleteJourney(ctx context.Context, j *Journey, durationSecs int, cached, atMuseum bool) error {
	label := fmt.Sprintf("%d.%d", j.HousenStage, j.HousenSubstage)

	if s.events != nil {
		err := s.events.AppendJourneyEvent(ctx, store.JourneyEventData{
			JourneyID:    j.JourneyID,
			ArtworkTitle: j.Artwork.Title,
			StageLabel:   label,
			StepCount:    len(j.Steps),
			DurationSecs: durationSecs,
			Cached:       cached,
			AtMuseum:     atMuseum,
		})
		if err != nil {
			return fmt.Errorf("record journey event: %w", err)
		}
	}

	if s.gallery != nil {
		doc, err := json.Marshal(j)
		if err != nil {
			return fmt.Errorf("marshal journey: %w", err)
		}
		err = s.gallery.SaveEntry(ctx, store.GalleryRecord{
			JourneyID:   j.JourneyID,
			Title:       j.Artwork.Title,
			Artist:      j.Artwork.Artist,
			StageLabel:  label,
			CompletedAt: time.Now().UTC(),
			Data:        doc,
		})
		if err != nil {
			return fmt.Errorf("save gallery entry: %w", err)
		}
	}

	return nil
}

type activitiesOutput struct {
	Activities []Activity `json:"activities"`
}

// GenerateActivities produces 2-4 reflection activities for a finished
// journey. When generation fails for any reason, stage-appropriate
// canned activities are returned so the reflection step always runs.
func (s *Service) GenerateActivities(ctx context.Context, j *Journey, level stage.Level) []Activity {
	ctx = llm.WithPurpose(ctx, "reflection-activities")
	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildActivityPrompt(j, level)},
		},
		Schema:      ActivitiesSchema,
		MaxTokens:   s.cfg.ActivityMaxTokens,
		Temperature: s.cfg.ActivityTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return FallbackActivities(level)
	}

	var out activitiesOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil || len(out.Activities) == 0 {
		return FallbackActivities(level)
	}
	return out.Activities
}
