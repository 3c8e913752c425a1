package assessment

import (
	"strings"

	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

// MinResponseLength is the trimmed-length floor below which a response
// is skipped entirely and contributes no scores.
const MinResponseLength = 10

// ScoreSet maps indicator names to 0-100 scores for one response.
type ScoreSet map[string]float64

// ScoreResponse evaluates one reflection response against the growth
// indicators of the viewer's current stage. Returns ok=false when the
// response is too short to score. Pure function of (text, level): no
// randomness, no clock, no I/O.
func ScoreResponse(text string, level stage.Level) (ScoreSet, bool) {
	if len(strings.TrimSpace(text)) < MinResponseLength {
		return nil, false
	}

	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	set := make(ScoreSet, 3)
	for _, ind := range IndicatorsFor(level.Stage) {
		set[ind.Name] = scoreIndicator(lower, wordCount, ind)
	}
	return set, true
}

// scoreIndicator computes a single indicator score. Substring hits are
// counted per occurrence (a keyword appearing twice counts twice), then
// weighted; length-blended indicators add capped word-count credit.
func scoreIndicator(lower string, wordCount int, ind Indicator) float64 {
	hits := 0
	for _, kw := range ind.Keywords {
		hits += strings.Count(lower, kw)
	}
	score := float64(hits) * ind.Weight

	if ind.LengthMultiplier > 0 {
		lengthScore := float64(wordCount) * ind.LengthMultiplier
		if lengthScore > ind.LengthCap {
			lengthScore = ind.LengthCap
		}
		score += lengthScore
	}

	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
