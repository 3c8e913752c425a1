package assessment

import "github.com/aayasso/SlowMA-MVP/internal/stage"

// Indicator is one growth dimension scored from reflection text.
// Keyword hits are weighted substring counts; indicators with a
// LengthMultiplier blend in a word-count component capped at LengthCap.
type Indicator struct {
	Name     string
	Keywords []string
	Weight   float64

	// Length blend. Zero multiplier means keyword-only scoring.
	LengthMultiplier float64
	LengthCap        float64
}

// indicatorCatalog maps each Housen stage to its three growth indicators.
// Keyword lists deliberately overlap across indicators: a word like
// "feel" feeds both personal connection and emotional engagement.
var indicatorCatalog = map[int][3]Indicator{
	1: {
		{
			Name:     "personal_connection",
			Keywords: []string{"i", "me", "my", "myself", "reminds me", "feel", "remember", "experience"},
			Weight:   15,
		},
		{
			Name:     "emotional_engagement",
			Keywords: []string{"feel", "emotion", "mood", "atmosphere", "beautiful", "powerful", "moving", "striking"},
			Weight:   12,
		},
		{
			Name:             "storytelling",
			Keywords:         []string{"story", "narrative", "happening", "scene", "character", "plot", "beginning", "end"},
			Weight:           10,
			LengthMultiplier: 2.0,
			LengthCap:        50,
		},
	},
	2: {
		{
			Name:             "observational_detail",
			Keywords:         []string{"notice", "see", "observe", "detail", "specific", "particular", "exactly", "precisely"},
			Weight:           8,
			LengthMultiplier: 1.5,
			LengthCap:        40,
		},
		{
			Name:     "descriptive_language",
			Keywords: []string{"color", "shape", "line", "texture", "bright", "dark", "large", "small", "curved", "straight"},
			Weight:   6,
		},
		{
			Name:     "pattern_recognition",
			Keywords: []string{"pattern", "repetition", "similar", "different", "compare", "contrast", "group", "category"},
			Weight:   10,
		},
	},
	3: {
		{
			Name:     "analytical_thinking",
			Keywords: []string{"because", "why", "how", "analysis", "think", "consider", "reason", "logic"},
			Weight:   8,
		},
		{
			Name:     "technique_awareness",
			Keywords: []string{"technique", "method", "created", "made", "brush", "paint", "canvas", "sculpture"},
			Weight:   10,
		},
		{
			Name:     "interpretation_attempts",
			Keywords: []string{"means", "represents", "symbol", "meaning", "interpret", "suggests", "implies", "signifies"},
			Weight:   8,
		},
	},
	4: {
		{
			Name:     "multiple_perspectives",
			Keywords: []string{"perspective", "viewpoint", "different", "another", "alternative", "could", "might", "possible"},
			Weight:   7,
		},
		{
			Name:     "contextual_thinking",
			Keywords: []string{"context", "history", "period", "time", "culture", "society", "tradition", "influence"},
			Weight:   8,
		},
		{
			Name:             "sophisticated_analysis",
			Keywords:         []string{"complex", "nuanced", "layered", "multifaceted", "sophisticated", "intricate", "subtle"},
			Weight:           10,
			LengthMultiplier: 0.8,
			LengthCap:        50,
		},
	},
	5: {
		{
			Name:     "philosophical_thinking",
			Keywords: []string{"philosophy", "existential", "universal", "human", "nature", "reality", "truth", "meaning"},
			Weight:   8,
		},
		{
			Name:     "metacognitive_awareness",
			Keywords: []string{"aware", "conscious", "realize", "understand", "process", "thinking", "reflection", "insight"},
			Weight:   7,
		},
		{
			Name:             "synthesis",
			Keywords:         []string{"connect", "synthesize", "integrate", "combine", "unify", "whole", "together", "relationship"},
			Weight:           8,
			LengthMultiplier: 0.6,
			LengthCap:        40,
		},
	},
}

// IndicatorsFor returns the three indicators for a stage. Unknown stage
// numbers fall back to the stage-1 catalog, matching the engine's
// defensive-default policy.
func IndicatorsFor(stageNum int) [3]Indicator {
	if inds, ok := indicatorCatalog[stageNum]; ok {
		return inds
	}
	return indicatorCatalog[stage.MinStage]
}

// IndicatorNames returns the indicator names for a stage in catalog order.
func IndicatorNames(stageNum int) []string {
	inds := IndicatorsFor(stageNum)
	names := make([]string, len(inds))
	for i, ind := range inds {
		names[i] = ind.Name
	}
	return names
}
