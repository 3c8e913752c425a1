package store

import (
	"context"
	"fmt"

	"github.com/aayasso/SlowMA-MVP/ent"
	"github.com/aayasso/SlowMA-MVP/ent/stageevent"
)

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetStageLabel(data.StageLabel).
		SetChange(data.Change).
		SetQuality(data.Quality).
		SetResponseCount(data.ResponseCount)

	if len(data.Scores) > 0 {
		builder = builder.SetScores(data.Scores)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendStageChange(ctx context.Context, data StageEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.StageEvent.Create().
		SetSequence(seqNum).
		SetFromStage(data.FromStage).
		SetToStage(data.ToStage).
		SetChange(data.Change).
		SetTrigger(data.Trigger).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save stage event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryStageEvents(ctx context.Context, opts QueryOpts) ([]StageEventRecord, error) {
	query := r.client.StageEvent.Query().
		Order(ent.Desc(stageevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if !opts.From.IsZero() {
		query = query.Where(stageevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(stageevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stage events: %w", err)
	}

	records := make([]StageEventRecord, len(events))
	for i, e := range events {
		records[i] = StageEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			FromStage: e.FromStage,
			ToStage:   e.ToStage,
			Change:    e.Change,
			Trigger:   e.Trigger,
		}
	}
	return records, nil
}
