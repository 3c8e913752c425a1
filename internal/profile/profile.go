// Package profile holds the single-viewer aggregate that every
// assessment and the inactivity monitor mutate. The profile is a plain
// value: callers own persistence and serialization of writes.
package profile

import (
	"time"

	"github.com/google/uuid"

	"github.com/aayasso/SlowMA-MVP/internal/assessment"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

// RecentScoreCap bounds the quality-score history (FIFO).
const RecentScoreCap = 10

// StageChange is one entry in the chronological stage history.
type StageChange struct {
	At      time.Time        `json:"at"`
	Stage   string           `json:"stage"` // resulting level label, e.g. "2.3"
	Change  stage.ChangeKind `json:"change"`
	Trigger string           `json:"trigger"` // "assessment" or "inactivity"
}

// Achievement is an earned badge with award metadata.
type Achievement struct {
	BadgeID  string    `json:"badge_id"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	EarnedAt time.Time `json:"earned_at"`
}

// UserProfile is the viewer aggregate. Created at (1,1) on first use,
// mutated by assessments and the decay monitor, never deleted.
type UserProfile struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Level        stage.Level   `json:"level"`
	StageHistory []StageChange `json:"stage_history"`

	JourneysCompleted   int        `json:"journeys_completed"`
	TotalTimeSeconds    int        `json:"total_time_seconds"`
	MuseumVisits        int        `json:"museum_visits"`
	RecentQualityScores []float64  `json:"recent_quality_scores"`
	LastActivity        *time.Time `json:"last_activity,omitempty"`
	CurrentStreak       int        `json:"current_streak"`

	Badges       []string      `json:"badges"`
	Achievements []Achievement `json:"achievements"`

	TutorialCompleted bool `json:"tutorial_completed"`
}

// New creates a fresh profile at the initial level.
func New() *UserProfile {
	return &UserProfile{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Level:     stage.Initial(),
	}
}

// ApplyAssessment folds an assessment result into the profile: level,
// history (only when the level actually moved), quality window, journey
// counter, and activity timestamp.
func (p *UserProfile) ApplyAssessment(res assessment.Result, at time.Time) {
	p.Level = res.Level

	if res.Change != stage.ChangeMaintenance {
		p.StageHistory = append(p.StageHistory, StageChange{
			At:      at,
			Stage:   res.Level.Label(),
			Change:  res.Change,
			Trigger: "assessment",
		})
	}

	p.PushQualityScore(res.Quality)
	p.JourneysCompleted++
	p.Touch(at)
}

// PushQualityScore appends a quality score, evicting the oldest beyond
// the cap.
func (p *UserProfile) PushQualityScore(score float64) {
	p.RecentQualityScores = append(p.RecentQualityScores, score)
	if len(p.RecentQualityScores) > RecentScoreCap {
		p.RecentQualityScores = p.RecentQualityScores[len(p.RecentQualityScores)-RecentScoreCap:]
	}
}

// Touch records activity at the given time.
func (p *UserProfile) Touch(at time.Time) {
	t := at.UTC()
	p.LastActivity = &t
}

// HasBadge reports whether the badge id has already been earned.
func (p *UserProfile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// AddBadge records a badge award. Duplicate ids are ignored so the
// badge list stays a set.
func (p *UserProfile) AddBadge(a Achievement) bool {
	if p.HasBadge(a.BadgeID) {
		return false
	}
	p.Badges = append(p.Badges, a.BadgeID)
	p.Achievements = append(p.Achievements, a)
	return true
}

// AverageRecentQuality returns the mean of the last n quality scores,
// or 0 with ok=false when fewer than n are recorded.
func (p *UserProfile) AverageRecentQuality(n int) (float64, bool) {
	if n <= 0 || len(p.RecentQualityScores) < n {
		return 0, false
	}
	recent := p.RecentQualityScores[len(p.RecentQualityScores)-n:]
	sum := 0.0
	for _, s := range recent {
		sum += s
	}
	return sum / float64(n), true
}
