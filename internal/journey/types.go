// Package journey generates personalized slow looking walkthroughs for
// an artwork photograph, tailored to the viewer's aesthetic stage.
package journey

import "time"

// Artwork is the generator's best identification of the piece.
// Fields are empty when the artwork is unrecognized.
type Artwork struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Year   string `json:"year"`
	Period string `json:"period"`
	Style  string `json:"style"`
}

// Region is a normalized bounding box on the artwork with the
// observation attached to it. Coordinates are in [0,1].
type Region struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Title       string  `json:"title"`
	Observation string  `json:"observation"`
	WhyNotable  string  `json:"why_notable"`
	SoftPrompt  string  `json:"soft_prompt"`
	ConceptTag  string  `json:"concept_tag"`
}

// Step is one stop on the walkthrough. The viewer looks away for
// LookAwayDuration seconds with the soft prompt, then the region and
// observation are revealed.
type Step struct {
	StepNumber       int    `json:"step_number"`
	Region           Region `json:"region"`
	LookAwayDuration int    `json:"look_away_duration"`
	WhyThisSequence  string `json:"why_this_sequence"`
	BuildsOn         string `json:"builds_on"`
}

// FinalSummary closes the journey.
type FinalSummary struct {
	MainTakeaway       string `json:"main_takeaway"`
	Connections        string `json:"connections"`
	InvitationToReturn string `json:"invitation_to_return"`
	ReflectionQuestion string `json:"reflection_question"`
}

// Journey is a complete slow looking walkthrough for one artwork.
type Journey struct {
	JourneyID                string       `json:"journey_id"`
	Artwork                  Artwork      `json:"artwork"`
	TotalSteps               int          `json:"total_steps"`
	EstimatedDurationMinutes int          `json:"estimated_duration_minutes"`
	Steps                    []Step       `json:"steps"`
	WelcomeText              string       `json:"welcome_text"`
	FinalSummary             FinalSummary `json:"final_summary"`
	ConfidenceScore          float64      `json:"confidence_score"`
	PedagogicalApproach      string       `json:"pedagogical_approach"`

	// Metadata filled in after generation.
	ImageFilename  string    `json:"image_filename"`
	CreatedAt      time.Time `json:"created_at"`
	HousenStage    int       `json:"housen_stage"`
	HousenSubstage int       `json:"housen_substage"`
}

// Activity is one reflection exercise presented after a journey. The
// viewer's free-text answers feed the stage assessment.
type Activity struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Title           string `json:"title"`
	Prompt          string `json:"prompt"`
	Placeholder     string `json:"placeholder"`
	WhyThisActivity string `json:"why_this_activity"`
}
