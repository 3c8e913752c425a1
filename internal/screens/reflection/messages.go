package reflection

import (
	"github.com/aayasso/SlowMA-MVP/internal/assessment"
	"github.com/aayasso/SlowMA-MVP/internal/journey"
	"github.com/aayasso/SlowMA-MVP/internal/profile"
)

// activitiesReadyMsg is sent when activity generation finishes. The
// journey service falls back to canned activities, so there is no error
// case.
type activitiesReadyMsg struct {
	Activities []journey.Activity
}

// assessmentDoneMsg is sent when the responses have been scored and the
// profile persisted.
type assessmentDoneMsg struct {
	Result assessment.Result
	Awards []profile.Achievement
	Streak int
	Err    error
}
