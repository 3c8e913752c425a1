package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendBadgeEvent(ctx context.Context, data BadgeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BadgeEvent.Create().
		SetSequence(seqNum).
		SetBadgeID(data.BadgeID).
		SetBadgeName(data.BadgeName).
		SetKind(data.Kind).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save badge event: %w", err)
	}
	return nil
}
