package journey

import "github.com/aayasso/SlowMA-MVP/internal/stage"

// fallbackActivities are served when the LLM is unavailable so a
// journey can always end with a reflection.
var fallbackActivities = map[int][]Activity{
	1: {
		{
			ID:              "activity_1",
			Type:            "connection",
			Title:           "Personal Connection",
			Prompt:          "What does this artwork remind you of from your own life? It could be a place, person, feeling, or memory.",
			Placeholder:     "This reminds me of...",
			WhyThisActivity: "Assesses personal engagement and storytelling ability",
		},
		{
			ID:              "activity_2",
			Type:            "text",
			Title:           "Your Feelings",
			Prompt:          "How did looking slowly at this artwork make you feel? Why do you think it made you feel that way?",
			Placeholder:     "I felt...",
			WhyThisActivity: "Assesses emotional engagement and reflection",
		},
	},
	2: {
		{
			ID:              "activity_1",
			Type:            "text",
			Title:           "Detailed Observation",
			Prompt:          "Describe three specific details you noticed during your slow look that you might have missed in a quick glance.",
			Placeholder:     "I noticed...",
			WhyThisActivity: "Assesses observational quantity and quality",
		},
		{
			ID:              "activity_2",
			Type:            "comparison",
			Title:           "Compare and Contrast",
			Prompt:          "Think of another artwork or image you know. How is this similar or different?",
			Placeholder:     "Compared to..., this artwork...",
			WhyThisActivity: "Assesses ability to make connections and comparisons",
		},
	},
	3: {
		{
			ID:              "activity_1",
			Type:            "text",
			Title:           "Artist's Choices",
			Prompt:          "What choices do you think the artist made in creating this work? Why might they have made those choices?",
			Placeholder:     "The artist chose to...",
			WhyThisActivity: "Assesses analytical thinking about technique",
		},
		{
			ID:              "activity_2",
			Type:            "synthesis",
			Title:           "Connecting Ideas",
			Prompt:          "How do the different observations you made connect together? What larger idea or theme emerges?",
			Placeholder:     "These observations connect because...",
			WhyThisActivity: "Assesses ability to synthesize and find meaning",
		},
	},
	4: {
		{
			ID:              "activity_1",
			Type:            "text",
			Title:           "Multiple Meanings",
			Prompt:          "What are two or three different ways someone might interpret this artwork? What evidence supports each interpretation?",
			Placeholder:     "One interpretation could be...",
			WhyThisActivity: "Assesses multiple perspectives and evidence-based thinking",
		},
		{
			ID:              "activity_2",
			Type:            "connection",
			Title:           "Personal Significance",
			Prompt:          "What does this artwork mean to you personally? How does it connect to your own experiences or beliefs?",
			Placeholder:     "This artwork speaks to me because...",
			WhyThisActivity: "Assesses personal interpretation and meaning-making",
		},
	},
	5: {
		{
			ID:              "activity_1",
			Type:            "synthesis",
			Title:           "Deeper Questions",
			Prompt:          "What questions does this artwork raise about art, life, or human experience? Why do these questions matter?",
			Placeholder:     "This artwork raises questions about...",
			WhyThisActivity: "Assesses philosophical thinking and metacognition",
		},
		{
			ID:              "activity_2",
			Type:            "text",
			Title:           "Your Looking Process",
			Prompt:          "Reflect on how your understanding changed during the slow looking experience. What surprised you about your own process of seeing?",
			Placeholder:     "My understanding evolved...",
			WhyThisActivity: "Assesses metacognitive awareness",
		},
	},
}

// FallbackActivities returns the canned activities for a level.
func FallbackActivities(level stage.Level) []Activity {
	if acts, ok := fallbackActivities[level.Stage]; ok {
		return acts
	}
	return fallbackActivities[1]
}
