// Package engagement tracks activity over time: inactivity-driven stage
// decay, daily streaks, and badge milestones.
package engagement

import (
	"time"

	"github.com/aayasso/SlowMA-MVP/internal/profile"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

// InactivityThresholdDays is the dormancy period after which one
// regression step is applied.
const InactivityThresholdDays = 30

// daysSince returns whole days elapsed between then and now.
func daysSince(then, now time.Time) int {
	d := now.Sub(then)
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}

// CheckInactivityRegression regresses a dormant viewer by exactly one
// step when 30+ whole days have passed since their last activity, and
// reports whether the dormancy fired. At the floor (1,1) the level
// cannot drop, but the dormancy is still recorded: a regression-tagged
// history entry is appended and true is returned. The last-activity
// timestamp is refreshed whenever the check fires, so a single check
// records a single event no matter how many threshold multiples have
// elapsed. Not safe for concurrent calls on the same profile.
func CheckInactivityRegression(p *profile.UserProfile, now time.Time) bool {
	if p.LastActivity == nil {
		return false
	}
	if daysSince(*p.LastActivity, now) < InactivityThresholdDays {
		return false
	}

	next, _ := stage.Regress(p.Level)
	p.Level = next
	p.StageHistory = append(p.StageHistory, profile.StageChange{
		At:      now,
		Stage:   next.Label(),
		Change:  stage.ChangeRegression,
		Trigger: "inactivity",
	})
	p.Touch(now)
	return true
}

// Streak computes the engagement streak from the last-activity delta and
// writes it back to the profile, keeping the stored counter coherent:
// same-day activity holds a streak of at least 1, consecutive-day
// activity increments, a gap resets to 0.
func Streak(p *profile.UserProfile, now time.Time) int {
	if p.LastActivity == nil {
		p.CurrentStreak = 0
		return 0
	}

	switch daysSince(*p.LastActivity, now) {
	case 0:
		if p.CurrentStreak < 1 {
			p.CurrentStreak = 1
		}
	case 1:
		p.CurrentStreak++
	default:
		p.CurrentStreak = 0
	}
	return p.CurrentStreak
}
