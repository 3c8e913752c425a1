package profile

import (
	"testing"
	"time"

	"github.com/aayasso/SlowMA-MVP/internal/assessment"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

func TestNew_Defaults(t *testing.T) {
	p := New()
	if p.ID == "" {
		t.Error("ID not set")
	}
	if p.Level != stage.Initial() {
		t.Errorf("Level = %v, want 1.1", p.Level)
	}
	if p.JourneysCompleted != 0 || p.LastActivity != nil {
		t.Errorf("unexpected non-zero engagement fields: %+v", p)
	}
}

func TestApplyAssessment_Progression(t *testing.T) {
	p := New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	res := assessment.Result{
		Level:   stage.Level{Stage: 1, Substage: 2},
		Change:  stage.ChangeProgression,
		Quality: 82.5,
	}
	p.ApplyAssessment(res, now)

	if p.Level != res.Level {
		t.Errorf("Level = %v, want %v", p.Level, res.Level)
	}
	if len(p.StageHistory) != 1 {
		t.Fatalf("StageHistory len = %d, want 1", len(p.StageHistory))
	}
	h := p.StageHistory[0]
	if h.Stage != "1.2" || h.Change != stage.ChangeProgression || h.Trigger != "assessment" {
		t.Errorf("history entry = %+v", h)
	}
	if p.JourneysCompleted != 1 {
		t.Errorf("JourneysCompleted = %d, want 1", p.JourneysCompleted)
	}
	if p.LastActivity == nil || !p.LastActivity.Equal(now) {
		t.Errorf("LastActivity = %v, want %v", p.LastActivity, now)
	}
}

func TestApplyAssessment_MaintenanceSkipsHistory(t *testing.T) {
	p := New()
	res := assessment.Result{
		Level:   stage.Initial(),
		Change:  stage.ChangeMaintenance,
		Quality: 55,
	}
	p.ApplyAssessment(res, time.Now())
	if len(p.StageHistory) != 0 {
		t.Errorf("maintenance appended history: %+v", p.StageHistory)
	}
	if len(p.RecentQualityScores) != 1 {
		t.Errorf("quality score not recorded")
	}
}

func TestPushQualityScore_FIFOCap(t *testing.T) {
	p := New()
	for i := 0; i < 15; i++ {
		p.PushQualityScore(float64(i))
	}
	if len(p.RecentQualityScores) != RecentScoreCap {
		t.Fatalf("len = %d, want %d", len(p.RecentQualityScores), RecentScoreCap)
	}
	if p.RecentQualityScores[0] != 5 || p.RecentQualityScores[9] != 14 {
		t.Errorf("window = %v, want oldest 5 .. newest 14", p.RecentQualityScores)
	}
}

func TestAddBadge_Dedup(t *testing.T) {
	p := New()
	a := Achievement{BadgeID: "museum_first", Name: "First Museum Visit", EarnedAt: time.Now()}
	if !p.AddBadge(a) {
		t.Fatal("first award rejected")
	}
	if p.AddBadge(a) {
		t.Error("duplicate award accepted")
	}
	if len(p.Badges) != 1 || len(p.Achievements) != 1 {
		t.Errorf("badges %v achievements %v", p.Badges, p.Achievements)
	}
}

func TestAverageRecentQuality(t *testing.T) {
	p := New()
	if _, ok := p.AverageRecentQuality(5); ok {
		t.Error("expected ok=false with no scores")
	}
	for _, s := range []float64{10, 70, 80, 90, 100, 60} {
		p.PushQualityScore(s)
	}
	avg, ok := p.AverageRecentQuality(5)
	if !ok {
		t.Fatal("expected ok")
	}
	if avg != 80 {
		t.Errorf("avg = %v, want 80", avg)
	}
}
