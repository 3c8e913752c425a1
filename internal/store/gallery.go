package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aayasso/SlowMA-MVP/ent"
	"github.com/aayasso/SlowMA-MVP/ent/galleryentry"
	"github.com/aayasso/SlowMA-MVP/ent/journeycache"
)

// galleryRepo implements GalleryRepo using the ent client.
type galleryRepo struct {
	client *ent.Client
}

func (r *galleryRepo) SaveEntry(ctx context.Context, rec GalleryRecord) error {
	_, err := r.client.GalleryEntry.Create().
		SetJourneyID(rec.JourneyID).
		SetTitle(rec.Title).
		SetArtist(rec.Artist).
		SetStageLabel(rec.StageLabel).
		SetCompletedAt(rec.CompletedAt).
		SetData(rec.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save gallery entry: %w", err)
	}
	return nil
}

func (r *galleryRepo) ListEntries(ctx context.Context, limit int) ([]GalleryRecord, error) {
	query := r.client.GalleryEntry.Query().
		Order(ent.Desc(galleryentry.FieldCompletedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	entries, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list gallery entries: %w", err)
	}

	records := make([]GalleryRecord, len(entries))
	for i, e := range entries {
		records[i] = GalleryRecord{
			JourneyID:   e.JourneyID,
			Title:       e.Title,
			Artist:      e.Artist,
			StageLabel:  e.StageLabel,
			CompletedAt: e.CompletedAt,
			Data:        e.Data,
		}
	}
	return records, nil
}

func (r *galleryRepo) CountEntries(ctx context.Context) (int, error) {
	n, err := r.client.GalleryEntry.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count gallery entries: %w", err)
	}
	return n, nil
}

func (r *galleryRepo) CacheGet(ctx context.Context, key string) (json.RawMessage, error) {
	e, err := r.client.JourneyCache.Query().
		Where(journeycache.CacheKey(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query journey cache: %w", err)
	}
	return e.Data, nil
}

func (r *galleryRepo) CachePut(ctx context.Context, key string, data json.RawMessage) error {
	// Replace any existing entry for the key.
	_, err := r.client.JourneyCache.Delete().
		Where(journeycache.CacheKey(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("evict journey cache: %w", err)
	}

	_, err = r.client.JourneyCache.Create().
		SetCacheKey(key).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save journey cache: %w", err)
	}
	return nil
}
