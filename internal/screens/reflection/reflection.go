// Package reflection presents the post-journey activities, collects the
// viewer's written responses, and runs the stage assessment.
package reflection

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aayasso/SlowMA-MVP/internal/assessment"
	"github.com/aayasso/SlowMA-MVP/internal/engagement"
	"github.com/aayasso/SlowMA-MVP/internal/journey"
	"github.com/aayasso/SlowMA-MVP/internal/router"
	"github.com/aayasso/SlowMA-MVP/internal/screen"
	"github.com/aayasso/SlowMA-MVP/internal/screens/summary"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
	"github.com/aayasso/SlowMA-MVP/internal/store"
	"github.com/aayasso/SlowMA-MVP/internal/ui/components"
	"github.com/aayasso/SlowMA-MVP/internal/ui/layout"
	"github.com/aayasso/SlowMA-MVP/internal/ui/theme"
)

type reflState int

const (
	stateLoading reflState = iota
	stateAnswering
	stateScoring
)

// ReflectionScreen implements screen.Screen for the reflection flow.
type ReflectionScreen struct {
	journeySvc  *journey.Service
	profileRepo store.ProfileRepo
	eventRepo   store.EventRepo
	badgeSvc    *engagement.BadgeService

	j            *journey.Journey
	level        stage.Level
	durationSecs int
	cached       bool
	atMuseum     bool

	state      reflState
	activities []journey.Activity
	current    int
	responses  map[string]string
	input      components.TextArea
	errMsg     string
}

var _ screen.Screen = (*ReflectionScreen)(nil)
var _ screen.KeyHintProvider = (*ReflectionScreen)(nil)

// New creates a ReflectionScreen for a finished walkthrough.
func New(journeySvc *journey.Service, profileRepo store.ProfileRepo, eventRepo store.EventRepo, badgeSvc *engagement.BadgeService, j *journey.Journey, level stage.Level, durationSecs int, cached, atMuseum bool) *ReflectionScreen {
	return &ReflectionScreen{
		journeySvc:   journeySvc,
		profileRepo:  profileRepo,
		eventRepo:    eventRepo,
		badgeSvc:     badgeSvc,
		j:            j,
		level:        level,
		durationSecs: durationSecs,
		cached:       cached,
		atMuseum:     atMuseum,
		responses:    make(map[string]string),
	}
}

func (r *ReflectionScreen) Init() tea.Cmd {
	svc, j, level := r.journeySvc, r.j, r.level
	return func() tea.Msg {
		acts := svc.GenerateActivities(context.Background(), j, level)
		return activitiesReadyMsg{Activities: acts}
	}
}

func (r *ReflectionScreen) Title() string {
	return "Reflection"
}

func (r *ReflectionScreen) KeyHints() []layout.KeyHint {
	if r.state != stateAnswering {
		return nil
	}
	return []layout.KeyHint{
		{Key: "Ctrl+D", Description: "Done with this one"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (r *ReflectionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case activitiesReadyMsg:
		r.activities = msg.Activities
		r.state = stateAnswering
		r.current = 0
		r.input = components.NewTextArea(r.activities[0].Placeholder, 64, 6)
		return r, r.input.Init()

	case assessmentDoneMsg:
		return r.handleDone(msg)

	case tea.KeyMsg:
		if r.state == stateAnswering && msg.String() == "ctrl+d" {
			return r.advance()
		}
	}

	if r.state == stateAnswering {
		var cmd tea.Cmd
		r.input, cmd = r.input.Update(msg)
		return r, cmd
	}
	return r, nil
}

// advance records the current response and moves to the next activity,
// or kicks off scoring after the last one.
func (r *ReflectionScreen) advance() (screen.Screen, tea.Cmd) {
	act := r.activities[r.current]
	if text := r.input.Value(); text != "" {
		r.responses[act.ID] = text
	}

	if r.current+1 < len(r.activities) {
		r.current++
		r.input = components.NewTextArea(r.activities[r.current].Placeholder, 64, 6)
		return r, r.input.Init()
	}

	r.state = stateScoring
	return r, r.runAssessment()
}

// runAssessment scores the responses, folds the result into the
// profile, awards badges, and records the journey.
func (r *ReflectionScreen) runAssessment() tea.Cmd {
	responses := r.responses
	level := r.level
	j := r.j
	duration := r.durationSecs
	cached := r.cached
	atMuseum := r.atMuseum
	profileRepo, eventRepo, badgeSvc, journeySvc := r.profileRepo, r.eventRepo, r.badgeSvc, r.journeySvc

	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		res := assessment.Assess(responses, level)

		p, err := profileRepo.Load(ctx)
		if err != nil {
			return assessmentDoneMsg{Err: err}
		}
		fromLabel := p.Level.Label()

		p.ApplyAssessment(res, now)
		p.TotalTimeSeconds += duration
		if atMuseum {
			p.MuseumVisits++
		}
		streak := engagement.Streak(p, now)

		badgeSvc.ResetSession()
		badgeSvc.CheckAndAward(ctx, p, engagement.BadgeTime, now)
		badgeSvc.CheckAndAward(ctx, p, engagement.BadgeQuality, now)
		badgeSvc.CheckAndAward(ctx, p, engagement.BadgeStage, now)
		if atMuseum {
			badgeSvc.CheckAndAward(ctx, p, engagement.BadgeMuseum, now)
		}

		if err := journeySvc.CompleteJourney(ctx, j, duration, cached, atMuseum); err != nil {
			return assessmentDoneMsg{Err: err}
		}

		if eventRepo != nil {
			scores := make(map[string]float64, len(res.Scores))
			for id, set := range res.Scores {
				scores[id] = meanScore(set)
			}
			_ = eventRepo.AppendAssessment(ctx, store.AssessmentEventData{
				StageLabel:    res.Level.Label(),
				Change:        string(res.Change),
				Quality:       res.Quality,
				ResponseCount: len(responses),
				Scores:        scores,
			})
			if res.Change != stage.ChangeMaintenance {
				_ = eventRepo.AppendStageChange(ctx, store.StageEventData{
					FromStage: fromLabel,
					ToStage:   res.Level.Label(),
					Change:    string(res.Change),
					Trigger:   "assessment",
				})
			}
		}

		if err := profileRepo.Save(ctx, p); err != nil {
			return assessmentDoneMsg{Err: err}
		}

		return assessmentDoneMsg{
			Result: res,
			Awards: badgeSvc.SessionAwards,
			Streak: streak,
		}
	}
}

func (r *ReflectionScreen) handleDone(msg assessmentDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		r.errMsg = msg.Err.Error()
		return r, nil
	}

	next := summary.New(r.j, msg.Result, msg.Awards, r.durationSecs, msg.Streak)
	status := screen.StatusMsg{StageLabel: msg.Result.Level.Label(), Streak: msg.Streak}
	return r, tea.Sequence(
		func() tea.Msg { return status },
		func() tea.Msg { return router.PushScreenMsg{Screen: next} },
	)
}

func (r *ReflectionScreen) View(width, height int) string {
	if r.errMsg != "" {
		return "\n" + theme.Regressed.Width(width).Align(lipgloss.Center).Render("Something went wrong") +
			"\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Body.Render(r.errMsg))
	}

	switch r.state {
	case stateLoading:
		return "\n\n" + theme.Title.Width(width).Render("One more moment...") +
			"\n\n" + theme.Subtitle.Width(width).Render("Choosing reflection questions for you.")

	case stateScoring:
		return "\n\n" + theme.Title.Width(width).Render("Reading your reflections...")
	}

	act := r.activities[r.current]
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Reflection %d of %d", r.current+1, len(r.activities))))
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(act.Title))
	b.WriteString("\n\n")

	cw := min(width-8, 70)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Width(cw).Render(theme.Body.Render(act.Prompt))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.input.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("There are no wrong answers. Write what you actually noticed.")))

	return b.String()
}

// meanScore averages the indicator scores of one response.
func meanScore(set assessment.ScoreSet) float64 {
	if len(set) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range set {
		sum += v
	}
	return sum / float64(len(set))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
