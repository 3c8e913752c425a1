package stage

// Description is the static metadata for a (stage, substage) position,
// shown on the profile screen and used to name stages in feedback.
type Description struct {
	Stage           int
	Substage        int
	Name            string
	SubstageName    string
	Description     string
	Characteristics []string
}

type stageInfo struct {
	name            string
	description     string
	characteristics []string
}

// catalog holds the five Housen stages in order. Index 0 is stage 1.
var catalog = [MaxStage]stageInfo{
	{
		name:        "Accountive",
		description: "You focus on personal connections and storytelling. You see art through your own experiences and emotions.",
		characteristics: []string{
			"Personal connections", "Emotional responses", "Storytelling", "Concrete observations",
		},
	},
	{
		name:        "Constructive",
		description: "You're building observational skills and noticing details. You describe what you see systematically.",
		characteristics: []string{
			"Detailed observation", "Descriptive language", "Pattern recognition", "Visual analysis",
		},
	},
	{
		name:        "Classifying",
		description: "You think analytically about technique and meaning. You consider how artworks are made and what they might represent.",
		characteristics: []string{
			"Analytical thinking", "Technique awareness", "Interpretation attempts", "Logical reasoning",
		},
	},
	{
		name:        "Interpretive",
		description: "You explore multiple meanings and consider historical context. You engage with sophisticated analysis.",
		characteristics: []string{
			"Multiple perspectives", "Contextual thinking", "Sophisticated analysis", "Cultural awareness",
		},
	},
	{
		name:        "Re-creative",
		description: "You engage with complex philosophical questions and demonstrate metacognitive awareness.",
		characteristics: []string{
			"Philosophical thinking", "Metacognitive awareness", "Synthesis", "Universal questions",
		},
	},
}

// Name returns the display name for a stage number ("Accountive" etc).
// Unknown stages fall back to stage 1.
func Name(stageNum int) string {
	if stageNum < MinStage || stageNum > MaxStage {
		stageNum = MinStage
	}
	return catalog[stageNum-1].name
}

// SubstageName returns the display name for a substage position.
func SubstageName(substage int) string {
	switch substage {
	case 1:
		return "Early"
	case 2:
		return "Developing"
	case 3:
		return "Advanced"
	default:
		return "Unknown"
	}
}

// Describe returns the full description for a (stage, substage) position.
// Unknown stage numbers fall back to stage 1 rather than failing; the
// catalog is a lookup table, not a validator.
func Describe(stageNum, substage int) Description {
	if stageNum < MinStage || stageNum > MaxStage {
		stageNum = MinStage
	}
	info := catalog[stageNum-1]

	chars := make([]string, len(info.characteristics))
	copy(chars, info.characteristics)

	return Description{
		Stage:           stageNum,
		Substage:        substage,
		Name:            info.name,
		SubstageName:    SubstageName(substage),
		Description:     info.description,
		Characteristics: chars,
	}
}

// AllDescriptions returns the catalog for every stage at the given
// substage, in stage order. Used by the stages command.
func AllDescriptions(substage int) []Description {
	out := make([]Description, 0, MaxStage)
	for s := MinStage; s <= MaxStage; s++ {
		out = append(out, Describe(s, substage))
	}
	return out
}
