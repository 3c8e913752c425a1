package engagement

import (
	"testing"
	"time"

	"github.com/aayasso/SlowMA-MVP/internal/profile"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

func profileAt(level stage.Level, lastActivity time.Time) *profile.UserProfile {
	p := profile.New()
	p.Level = level
	p.Touch(lastActivity)
	return p
}

func TestCheckInactivityRegression_NoActivityYet(t *testing.T) {
	p := profile.New()
	if CheckInactivityRegression(p, time.Now()) {
		t.Error("fresh profile with no activity regressed")
	}
}

func TestCheckInactivityRegression_UnderThreshold(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	p := profileAt(stage.Level{Stage: 3, Substage: 2}, now.AddDate(0, 0, -29))
	if CheckInactivityRegression(p, now) {
		t.Error("29 days of inactivity regressed")
	}
	if p.Level != (stage.Level{Stage: 3, Substage: 2}) {
		t.Errorf("level moved: %v", p.Level)
	}
}

func TestCheckInactivityRegression_SingleStepOnly(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	// 65 days dormant: still exactly one step.
	p := profileAt(stage.Level{Stage: 3, Substage: 2}, now.AddDate(0, 0, -65))

	if !CheckInactivityRegression(p, now) {
		t.Fatal("expected regression")
	}
	if p.Level != (stage.Level{Stage: 3, Substage: 1}) {
		t.Errorf("Level = %v, want single step to 3.1", p.Level)
	}
	if len(p.StageHistory) != 1 {
		t.Fatalf("history len = %d, want 1", len(p.StageHistory))
	}
	h := p.StageHistory[0]
	if h.Change != stage.ChangeRegression || h.Trigger != "inactivity" {
		t.Errorf("history entry = %+v", h)
	}

	// The timestamp was refreshed, so an immediate re-check is a no-op.
	if CheckInactivityRegression(p, now) {
		t.Error("immediate re-check regressed again")
	}
	if p.Level != (stage.Level{Stage: 3, Substage: 1}) {
		t.Errorf("Level after re-check = %v", p.Level)
	}
}

func TestCheckInactivityRegression_StageBoundary(t *testing.T) {
	now := time.Now()
	p := profileAt(stage.Level{Stage: 4, Substage: 1}, now.AddDate(0, 0, -31))
	if !CheckInactivityRegression(p, now) {
		t.Fatal("expected regression")
	}
	if p.Level != (stage.Level{Stage: 3, Substage: 3}) {
		t.Errorf("Level = %v, want 3.3", p.Level)
	}
}

func TestCheckInactivityRegression_FloorHoldsLevelButRecords(t *testing.T) {
	now := time.Now()
	p := profileAt(stage.Initial(), now.AddDate(0, 0, -90))

	// The level cannot drop below 1.1, but the dormancy still fires and
	// leaves a regression entry in the history.
	if !CheckInactivityRegression(p, now) {
		t.Error("dormant floor profile did not report the check firing")
	}
	if p.Level != stage.Initial() {
		t.Errorf("Level = %v, want 1.1", p.Level)
	}
	if len(p.StageHistory) != 1 {
		t.Fatalf("history len = %d, want 1", len(p.StageHistory))
	}
	h := p.StageHistory[0]
	if h.Stage != "1.1" || h.Change != stage.ChangeRegression || h.Trigger != "inactivity" {
		t.Errorf("history entry = %+v", h)
	}

	// The clock was refreshed, so the entry is not re-appended.
	if CheckInactivityRegression(p, now) {
		t.Error("immediate re-check fired again")
	}
	if len(p.StageHistory) != 1 {
		t.Errorf("history len after re-check = %d, want 1", len(p.StageHistory))
	}
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 6, 10, 20, 0, 0, 0, time.UTC)

	t.Run("no activity", func(t *testing.T) {
		p := profile.New()
		if got := Streak(p, now); got != 0 {
			t.Errorf("Streak = %d, want 0", got)
		}
	})

	t.Run("same day starts at one", func(t *testing.T) {
		p := profileAt(stage.Initial(), now.Add(-2*time.Hour))
		if got := Streak(p, now); got != 1 {
			t.Errorf("Streak = %d, want 1", got)
		}
	})

	t.Run("same day preserves longer streak", func(t *testing.T) {
		p := profileAt(stage.Initial(), now.Add(-2*time.Hour))
		p.CurrentStreak = 4
		if got := Streak(p, now); got != 4 {
			t.Errorf("Streak = %d, want 4", got)
		}
	})

	t.Run("consecutive day increments", func(t *testing.T) {
		p := profileAt(stage.Initial(), now.AddDate(0, 0, -1))
		p.CurrentStreak = 3
		if got := Streak(p, now); got != 4 {
			t.Errorf("Streak = %d, want 4", got)
		}
		if p.CurrentStreak != 4 {
			t.Errorf("stored streak = %d, want write-back of 4", p.CurrentStreak)
		}
	})

	t.Run("gap resets", func(t *testing.T) {
		p := profileAt(stage.Initial(), now.AddDate(0, 0, -3))
		p.CurrentStreak = 9
		if got := Streak(p, now); got != 0 {
			t.Errorf("Streak = %d, want 0", got)
		}
	})
}
