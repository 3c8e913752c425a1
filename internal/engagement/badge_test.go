package engagement

import (
	"context"
	"testing"
	"time"

	"github.com/aayasso/SlowMA-MVP/internal/profile"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

func TestCheckAndAward_TimeMilestones(t *testing.T) {
	svc := NewBadgeService(nil)
	p := profile.New()
	p.TotalTimeSeconds = 65 * 60 // crosses both 30min and 1hour

	earned := svc.CheckAndAward(context.Background(), p, BadgeTime, time.Now())
	if len(earned) != 2 {
		t.Fatalf("earned %d badges, want 2: %+v", len(earned), earned)
	}
	if !p.HasBadge("time_30min") || !p.HasBadge("time_1hour") {
		t.Errorf("badges = %v", p.Badges)
	}

	// Re-checking the same milestones awards nothing new.
	if again := svc.CheckAndAward(context.Background(), p, BadgeTime, time.Now()); len(again) != 0 {
		t.Errorf("re-check earned %+v, want none", again)
	}
}

func TestCheckAndAward_MuseumMilestones(t *testing.T) {
	svc := NewBadgeService(nil)
	p := profile.New()
	p.MuseumVisits = 1

	earned := svc.CheckAndAward(context.Background(), p, BadgeMuseum, time.Now())
	if len(earned) != 1 || earned[0].BadgeID != "museum_first" {
		t.Errorf("earned = %+v, want museum_first", earned)
	}
}

func TestCheckAndAward_QualityNeedsFiveScores(t *testing.T) {
	svc := NewBadgeService(nil)
	p := profile.New()
	for _, s := range []float64{95, 95, 95} {
		p.PushQualityScore(s)
	}
	if earned := svc.CheckAndAward(context.Background(), p, BadgeQuality, time.Now()); len(earned) != 0 {
		t.Errorf("earned %+v with only 3 scores", earned)
	}

	p.PushQualityScore(95)
	p.PushQualityScore(95)
	earned := svc.CheckAndAward(context.Background(), p, BadgeQuality, time.Now())
	// Average 95 crosses all three quality tiers.
	if len(earned) != 3 {
		t.Errorf("earned %d, want 3: %+v", len(earned), earned)
	}
}

func TestCheckAndAward_StageMilestones(t *testing.T) {
	svc := NewBadgeService(nil)
	p := profile.New()
	p.Level = stage.Level{Stage: 3, Substage: 1}

	earned := svc.CheckAndAward(context.Background(), p, BadgeStage, time.Now())
	if len(earned) != 2 {
		t.Fatalf("earned %d, want stage_2 and stage_3: %+v", len(earned), earned)
	}
	if !p.HasBadge("stage_2") || !p.HasBadge("stage_3") {
		t.Errorf("badges = %v", p.Badges)
	}
}

func TestBadgeByID(t *testing.T) {
	info := BadgeByID("quality_great")
	if info.Name != "Keen Eye" || info.Description == "" {
		t.Errorf("BadgeByID(quality_great) = %+v", info)
	}
	if unknown := BadgeByID("nope"); unknown.Name != "Unknown" {
		t.Errorf("unknown badge = %+v", unknown)
	}
}
