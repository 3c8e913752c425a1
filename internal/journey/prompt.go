package journey

import (
	"fmt"
	"strings"

	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

// stageGuidance describes how the walkthrough should address a viewer
// at a given stage.
type stageGuidance struct {
	focus    string
	approach string
	avoid    string
	prompts  string
}

var stageGuidances = map[int]stageGuidance{
	1: {
		focus:    "Personal connections, storytelling, concrete observations",
		approach: "Use simple, vivid language. Connect to everyday experiences. Encourage emotional responses.",
		avoid:    "Art historical terminology, complex analysis, abstract concepts",
		prompts:  "What does this remind you of? How does it make you feel? What's happening in this image?",
	},
	2: {
		focus:    "Building observational skills, noticing details, describing what's visible",
		approach: "Guide systematic observation. Ask about specific visual elements. Build vocabulary naturally.",
		avoid:    "Rushing to meaning, heavy interpretation, overly technical language",
		prompts:  "What do you notice about the colors? How are things arranged? What draws your eye?",
	},
	3: {
		focus:    "Analytical thinking, considering technique, beginning interpretation",
		approach: "Encourage thinking about how it was made. Introduce concepts gently. Multiple perspectives.",
		avoid:    "Definitive interpretations, dismissing personal response, too much information at once",
		prompts:  "How do you think this was created? What choices did the artist make? What might this represent?",
	},
	4: {
		focus:    "Historical context, artistic movements, deeper interpretation",
		approach: "Integrate context naturally. Discuss multiple meanings. Encourage sophisticated analysis.",
		avoid:    "Lecturing, assuming knowledge, discouraging personal interpretation",
		prompts:  "How does this relate to its time? What artistic traditions influenced this? What layers of meaning do you see?",
	},
	5: {
		focus:    "Complex synthesis, personal philosophy, metacognitive awareness",
		approach: "Engage in dialogue. Explore ambiguity. Connect to broader questions.",
		avoid:    "Oversimplifying, providing all answers, limiting inquiry",
		prompts:  "What questions does this raise? How does this challenge conventions? What's your relationship to this work?",
	},
}

// substageModifiers adjust the tone within a stage: 1=early, 2=mid,
// 3=advanced.
var substageModifiers = map[int]string{
	1: "Focus on the fundamentals of this stage. Be more supportive and explanatory.",
	2: "Balance support with challenge. User is developing confidence at this stage.",
	3: "Push toward next stage characteristics. User is ready for more complexity.",
}

// sequencingArcs order observations into a narrative appropriate for
// the stage.
var sequencingArcs = map[int]string{
	1: "Emotional → Personal → Story",
	2: "Obvious → Details → Patterns",
	3: "Technique → Composition → Meaning",
	4: "Context → Interpretation → Significance",
	5: "Questions → Complexity → Philosophy",
}

// buildJourneyPrompt assembles the stage-aware generation prompt.
func buildJourneyPrompt(level stage.Level) string {
	info, ok := stageGuidances[level.Stage]
	if !ok {
		info = stageGuidances[1]
	}
	modifier, ok := substageModifiers[level.Substage]
	if !ok {
		modifier = substageModifiers[2]
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are an art educator creating a personalized "slow looking" experience for someone standing in front of an artwork.

USER'S CURRENT LEVEL: Housen Stage %s

STAGE %d CHARACTERISTICS:
- Focus: %s
- Approach: %s
- Avoid: %s
- Good prompts: %s

SUBSTAGE MODIFIER: %s

YOUR GOAL: Help this user grow to the next level while meeting them where they are.

UNIFIED FRAMEWORK PRINCIPLES:
1. Deferred Judgment: Don't rush to conclusions. Let discovery unfold.
2. Multi-perspectival Awareness: Show how things appear different from various angles.
3. Active Construction: Engage them in meaning-making, not passive reception.
4. Transfer Potential: Build skills that work beyond this single artwork.

CRITICAL TONE REQUIREMENTS:
- Educational, informative, edifying
- NEVER intimidating or pretentious
- Gently provoke mindful analysis
- Encourage engagement and synthesis
- Be supportive like Duolingo
- Focus on helping them SEE, not memorizing facts

WALKTHROUGH STRUCTURE (3-6 steps):
- Choose step count based on artwork complexity
- Simpler works: 3-4 steps
- Rich, complex works: 5-6 steps
- Each step builds on previous observations

FOR EACH STEP:
1. Look-away time (30-60 seconds): longer for complex observations, shorter for immediate elements. First step often longest to help them settle.
2. Soft prompt (during look-away): gentle, contemplative, open-ended guidance matched to their Housen stage.
3. Observation reveal: what to notice and why it matters, in natural conversational "Notice..." or "See how..." language.
4. Bounding box: normalized coordinates (0-1) highlighting genuinely meaningful areas. Mix overall composition with intimate details.

PEDAGOGICAL SEQUENCING:
Order observations to create a narrative arc appropriate for their stage: %s

Remember: You're not teaching art history facts. You're teaching them how to LOOK and SEE. Make it personal, accessible, and growth-oriented for their specific stage.`,
		level.Label(), level.Stage,
		info.focus, info.approach, info.avoid, info.prompts,
		modifier,
		arcFor(level.Stage))

	return b.String()
}

func arcFor(stageNum int) string {
	if arc, ok := sequencingArcs[stageNum]; ok {
		return arc
	}
	return sequencingArcs[1]
}

// activityStageGuidance steers reflection activity generation.
var activityStageGuidance = map[int]string{
	1: "Focus on personal connections, emotions, storytelling. Ask about feelings and memories. Keep it concrete and relatable.",
	2: "Encourage detailed observation and description. Ask what they see, compare elements, notice patterns. Build observational vocabulary.",
	3: "Prompt analytical thinking about technique and meaning. Ask how it was made, why certain choices, what it might represent.",
	4: "Explore multiple interpretations, context, symbolism. Ask about deeper meanings, historical significance, personal significance.",
	5: "Engage with complexity, ambiguity, universal questions. Ask philosophical questions, challenge assumptions, explore metacognition.",
}

var activitySubstageGuidance = map[int]string{
	1: "Early in this stage - be supportive, scaffold heavily, celebrate small observations",
	2: "Developing - balance support and challenge, encourage independence, build confidence",
	3: "Advanced - ready for next level thinking, push boundaries, introduce new perspectives",
}

// buildActivityPrompt assembles the reflection activity prompt from the
// finished journey.
func buildActivityPrompt(j *Journey, level stage.Level) string {
	title := j.Artwork.Title
	if title == "" {
		title = "this artwork"
	}
	artist := j.Artwork.Artist
	if artist == "" {
		artist = "the artist"
	}

	stageG, ok := activityStageGuidance[level.Stage]
	if !ok {
		stageG = activityStageGuidance[1]
	}
	subG, ok := activitySubstageGuidance[level.Substage]
	if !ok {
		subG = activitySubstageGuidance[2]
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are creating personalized reflection activities after a slow looking experience.

ARTWORK: %s by %s

USER LEVEL: Housen Stage %s

JOURNEY SUMMARY:
Main takeaway: %s
Connections: %s
Reflection question: %s

STAGE %d CHARACTERISTICS:
%s

SUBSTAGE %d:
%s

YOUR TASK:
Create 2-4 reflection activities that:
1. Match the user's current level
2. Gently push toward growth
3. Allow you to assess their responses against Growth Indicators
4. Are engaging and not intimidating
5. Connect to the journey they just experienced

ACTIVITY TYPES YOU CAN USE:
- Open-ended questions (text response)
- Comparative thinking ("How is this similar/different to...")
- Personal connection ("What does this remind you of...")
- Creative response ("Draw/describe...")
- Evidence-based ("What makes you say that?")
- Synthesis ("How do these observations connect?")
- Transfer ("How could you use this way of looking elsewhere?")

CRITICAL REQUIREMENTS:
- Educational and edifying, never intimidating
- Build on what they just discovered
- Progressive difficulty (easier to harder)
- Each activity should reveal something about their Growth Indicators

Create 2-4 activities. Quality over quantity.`,
		title, artist,
		level.Label(),
		j.FinalSummary.MainTakeaway, j.FinalSummary.Connections, j.FinalSummary.ReflectionQuestion,
		level.Stage, stageG,
		level.Substage, subG)

	return b.String()
}
