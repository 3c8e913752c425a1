package engagement

import (
	"context"
	"time"

	"github.com/aayasso/SlowMA-MVP/internal/profile"
	"github.com/aayasso/SlowMA-MVP/internal/store"
)

// BadgeService evaluates milestone tables against a profile and records
// awards. Awards accumulated during the current session are kept for the
// summary screen.
type BadgeService struct {
	eventRepo store.EventRepo

	// SessionAwards accumulates badges earned during the current session.
	SessionAwards []profile.Achievement
}

// NewBadgeService creates a badge service. eventRepo may be nil in tests.
func NewBadgeService(eventRepo store.EventRepo) *BadgeService {
	return &BadgeService{eventRepo: eventRepo}
}

// ResetSession clears the session award accumulator.
func (s *BadgeService) ResetSession() {
	s.SessionAwards = nil
}

// CheckAndAward evaluates one milestone family against the profile and
// awards every newly crossed milestone. Already-earned badges are
// skipped: the profile's badge list is a dedup set.
func (s *BadgeService) CheckAndAward(ctx context.Context, p *profile.UserProfile, kind BadgeKind, now time.Time) []profile.Achievement {
	var earned []profile.Achievement

	award := func(id, name, icon string) {
		a := profile.Achievement{BadgeID: id, Name: name, Icon: icon, EarnedAt: now}
		if p.AddBadge(a) {
			earned = append(earned, a)
		}
	}

	switch kind {
	case BadgeTime:
		minutes := p.TotalTimeSeconds / 60
		for _, m := range timeMilestones {
			if minutes >= m.minutes {
				award(m.id, m.name, m.icon)
			}
		}

	case BadgeMuseum:
		for _, m := range museumMilestones {
			if p.MuseumVisits >= m.count {
				award(m.id, m.name, m.icon)
			}
		}

	case BadgeQuality:
		avg, ok := p.AverageRecentQuality(qualityWindow)
		if !ok {
			break
		}
		for _, m := range qualityMilestones {
			if avg >= m.avg {
				award(m.id, m.name, m.icon)
			}
		}

	case BadgeStage:
		for _, m := range stageMilestones {
			if p.Level.Stage >= m.stage {
				award(m.id, m.name, m.icon)
			}
		}
	}

	for _, a := range earned {
		s.persist(ctx, a, kind)
	}
	s.SessionAwards = append(s.SessionAwards, earned...)
	return earned
}

func (s *BadgeService) persist(ctx context.Context, a profile.Achievement, kind BadgeKind) {
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendBadgeEvent(ctx, store.BadgeEventData{
		BadgeID:   a.BadgeID,
		BadgeName: a.Name,
		Kind:      string(kind),
	})
}
