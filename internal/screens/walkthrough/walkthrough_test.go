package walkthrough

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aayasso/SlowMA-MVP/internal/journey"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

func testJourney() *journey.Journey {
	return &journey.Journey{
		JourneyID: "j-1",
		Artwork:   journey.Artwork{Title: "The Starry Night", Artist: "Vincent van Gogh", Year: "1889"},
		Steps: []journey.Step{
			{
				StepNumber: 1,
				Region: journey.Region{
					X: 0.1, Y: 0.05, Width: 0.3, Height: 0.3,
					Title:       "The swirling sky",
					Observation: "Notice how the sky moves in waves.",
					WhyNotable:  "The brushwork carries the motion.",
					SoftPrompt:  "Where does your eye travel first?",
					ConceptTag:  "composition",
				},
				LookAwayDuration: 2,
				WhyThisSequence:  "The sky dominates the canvas.",
			},
			{
				StepNumber: 2,
				Region: journey.Region{
					X: 0.4, Y: 0.6, Width: 0.2, Height: 0.3,
					Title:       "The village below",
					Observation: "The village sits quiet under the sky.",
					WhyNotable:  "Stillness against motion.",
					SoftPrompt:  "Find the quietest part.",
					ConceptTag:  "subject",
				},
				LookAwayDuration: 1,
				BuildsOn:         "The calm answers the swirling sky.",
			},
		},
		EstimatedDurationMinutes: 4,
		WelcomeText:              "Take a breath. We will look slowly together.",
		FinalSummary: journey.FinalSummary{
			MainTakeaway:       "Motion and stillness share one canvas.",
			Connections:        "Sky and village answer each other.",
			InvitationToReturn: "Come back on a quiet evening.",
			ReflectionQuestion: "What surprised you?",
		},
	}
}

func readyScreen(t *testing.T) *WalkthroughScreen {
	t.Helper()
	w := New(nil, nil, nil, nil, "starry.jpg", false)
	s, _ := w.Update(journeyReadyMsg{Journey: testJourney(), Level: stage.Level{Stage: 2, Substage: 1}})
	got := s.(*WalkthroughScreen)
	if got.state != stateWelcome {
		t.Fatalf("state after ready = %v, want stateWelcome", got.state)
	}
	return got
}

func TestWalkthroughWelcomeShowsArtwork(t *testing.T) {
	w := readyScreen(t)
	view := w.View(80, 24)
	if !strings.Contains(view, "The Starry Night") {
		t.Error("welcome view missing artwork title")
	}
	if !strings.Contains(view, "2 stops") {
		t.Error("welcome view missing stop count")
	}
}

func TestWalkthroughEnterStartsLookAway(t *testing.T) {
	w := readyScreen(t)

	s, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	w = s.(*WalkthroughScreen)

	if w.state != stateLookAway {
		t.Fatalf("state = %v, want stateLookAway", w.state)
	}
	if w.remaining != 2 {
		t.Errorf("remaining = %d, want 2", w.remaining)
	}
	if cmd == nil {
		t.Error("expected tick command when look-away starts")
	}
	if !strings.Contains(w.View(80, 24), "Look away") {
		t.Error("look-away view missing instruction")
	}
}

func TestWalkthroughCountdownReveals(t *testing.T) {
	w := readyScreen(t)
	s, _ := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	w = s.(*WalkthroughScreen)

	s, _ = w.Update(timerTickMsg{})
	w = s.(*WalkthroughScreen)
	if w.state != stateLookAway {
		t.Fatalf("state after one tick = %v, want stateLookAway", w.state)
	}

	s, _ = w.Update(timerTickMsg{})
	w = s.(*WalkthroughScreen)
	if w.state != stateReveal {
		t.Fatalf("state after countdown = %v, want stateReveal", w.state)
	}

	view := w.View(80, 24)
	if !strings.Contains(view, "The swirling sky") {
		t.Error("reveal view missing region title")
	}
	if !strings.Contains(view, "composition") {
		t.Error("reveal view missing concept tag")
	}
}

func TestWalkthroughSkipKey(t *testing.T) {
	w := readyScreen(t)
	s, _ := w.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	w = s.(*WalkthroughScreen)
	// Skip only applies during a look-away.
	if w.state != stateWelcome {
		t.Fatalf("skip outside look-away changed state to %v", w.state)
	}

	s, _ = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	w = s.(*WalkthroughScreen)
	s, _ = w.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	w = s.(*WalkthroughScreen)
	if w.state != stateReveal {
		t.Fatalf("state after skip = %v, want stateReveal", w.state)
	}
}

func TestWalkthroughLastStepClosing(t *testing.T) {
	w := readyScreen(t)

	// Step 1: start, skip, reveal, continue.
	s, _ := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	w = s.(*WalkthroughScreen)
	s, _ = w.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	w = s.(*WalkthroughScreen)
	s, _ = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	w = s.(*WalkthroughScreen)
	if w.state != stateLookAway || w.stepIndex != 1 {
		t.Fatalf("expected look-away on step 2, got state %v step %d", w.state, w.stepIndex)
	}

	// Step 2: skip, reveal shows builds-on, then closing.
	s, _ = w.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	w = s.(*WalkthroughScreen)
	if !strings.Contains(w.View(80, 24), "calm answers") {
		t.Error("reveal view missing builds-on text")
	}

	s, _ = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	w = s.(*WalkthroughScreen)
	if w.state != stateClosing {
		t.Fatalf("state = %v, want stateClosing", w.state)
	}
	if !strings.Contains(w.View(80, 24), "Motion and stillness") {
		t.Error("closing view missing final summary")
	}
}

func TestWalkthroughEmptyStepsError(t *testing.T) {
	w := New(nil, nil, nil, nil, "x.jpg", false)
	s, _ := w.Update(journeyReadyMsg{Journey: &journey.Journey{}})
	w = s.(*WalkthroughScreen)
	if w.errMsg == "" {
		t.Error("expected error for journey without steps")
	}
}

func TestRegionLocation(t *testing.T) {
	tests := []struct {
		name string
		r    journey.Region
		want string
	}{
		{"upper left", journey.Region{X: 0.0, Y: 0.0, Width: 0.2, Height: 0.2}, "upper left"},
		{"center", journey.Region{X: 0.4, Y: 0.4, Width: 0.2, Height: 0.2}, "center"},
		{"lower right", journey.Region{X: 0.8, Y: 0.8, Width: 0.2, Height: 0.2}, "lower right"},
		{"middle left", journey.Region{X: 0.0, Y: 0.45, Width: 0.1, Height: 0.1}, "middle left"},
		{"upper center", journey.Region{X: 0.4, Y: 0.0, Width: 0.2, Height: 0.1}, "upper center"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := regionLocation(tt.r); got != tt.want {
				t.Errorf("regionLocation = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArtworkByline(t *testing.T) {
	got := artworkByline(journey.Artwork{Artist: "Vermeer", Year: "1665"})
	if got != "Vermeer  ·  1665" {
		t.Errorf("byline = %q", got)
	}
	if artworkByline(journey.Artwork{}) != "" {
		t.Error("empty artwork should produce empty byline")
	}
}
