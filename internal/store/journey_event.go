package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendJourneyEvent(ctx context.Context, data JourneyEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.JourneyEvent.Create().
		SetSequence(seqNum).
		SetJourneyID(data.JourneyID).
		SetArtworkTitle(data.ArtworkTitle).
		SetStageLabel(data.StageLabel).
		SetStepCount(data.StepCount).
		SetDurationSecs(data.DurationSecs).
		SetCached(data.Cached).
		SetAtMuseum(data.AtMuseum).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save journey event: %w", err)
	}
	return nil
}
