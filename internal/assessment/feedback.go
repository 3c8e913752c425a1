package assessment

import (
	"fmt"

	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

// Feedback selects the user-facing message for an assessment outcome.
// Template choice is fully determined by (kind, stage change); the only
// variable parts are the stage name and substage number.
func Feedback(kind stage.ChangeKind, from, to stage.Level) string {
	switch kind {
	case stage.ChangeProgression:
		if to.Stage > from.Stage {
			return fmt.Sprintf(
				"Congratulations! You've reached the %s stage (Stage %d). Your observations are becoming more sophisticated and analytical.",
				stage.Name(to.Stage), to.Stage)
		}
		return fmt.Sprintf(
			"Great progress! You're advancing to substage %d of Stage %d. Keep building on your observational skills.",
			to.Substage, to.Stage)

	case stage.ChangeRegression:
		return "Don't worry - learning isn't always linear. Take your time and focus on the fundamentals. You'll get back on track."

	default:
		return "You're doing well at your current level. Keep practicing and challenging yourself with new observations."
	}
}
