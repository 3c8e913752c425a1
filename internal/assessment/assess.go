// Package assessment converts free-text reflection responses into a
// quantitative growth signal and drives Housen stage progression.
//
// The pipeline is: lexical scoring (per-activity indicator scores) →
// quality aggregation (one 0-100 score, stage-discounted) → level
// advance (progression / regression / maintenance) → feedback text.
// Every step is a total, deterministic function; malformed input
// degrades to defaults instead of erroring.
package assessment

import "github.com/aayasso/SlowMA-MVP/internal/stage"

// Result is the outcome of assessing one journey's reflections.
type Result struct {
	Level    stage.Level
	Change   stage.ChangeKind
	Quality  float64
	Scores   map[string]ScoreSet
	Feedback string
}

// Assess scores a set of reflection responses (activity id → text) and
// decides the viewer's next level. Responses under the minimum length
// are skipped; an entirely empty or filtered-out set yields the neutral
// quality score and maintenance.
func Assess(responses map[string]string, current stage.Level) Result {
	current = stage.Clamp(current)

	scores := make(map[string]ScoreSet)
	for activityID, text := range responses {
		if set, ok := ScoreResponse(text, current); ok {
			scores[activityID] = set
		}
	}

	quality := AggregateQuality(scores, current)
	next, kind := stage.Advance(current, quality)

	return Result{
		Level:    next,
		Change:   kind,
		Quality:  quality,
		Scores:   scores,
		Feedback: Feedback(kind, current, next),
	}
}
