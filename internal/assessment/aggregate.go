package assessment

import "github.com/aayasso/SlowMA-MVP/internal/stage"

// NeutralQuality is returned when no response survived the minimum-length
// filter: nothing to judge, so the viewer holds their level.
const NeutralQuality = 50.0

// AggregateQuality reduces per-activity score sets to one 0-100 quality
// score. Every indicator score across every activity joins one flat pool;
// the mean is discounted by stage difficulty so higher stages are judged
// more strictly.
func AggregateQuality(scores map[string]ScoreSet, level stage.Level) float64 {
	var sum float64
	var n int
	for _, set := range scores {
		for _, v := range set {
			sum += v
			n++
		}
	}
	if n == 0 {
		return NeutralQuality
	}

	mean := sum / float64(n)
	return clamp(mean*stage.DifficultyDiscount(level.Stage), 0, 100)
}
