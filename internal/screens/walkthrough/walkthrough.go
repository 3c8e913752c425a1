// Package walkthrough runs the guided slow looking experience: a
// welcome, then for each step a timed look-away with a soft prompt
// followed by the revealed observation, and a closing summary.
package walkthrough

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aayasso/SlowMA-MVP/internal/engagement"
	"github.com/aayasso/SlowMA-MVP/internal/journey"
	"github.com/aayasso/SlowMA-MVP/internal/router"
	"github.com/aayasso/SlowMA-MVP/internal/screen"
	"github.com/aayasso/SlowMA-MVP/internal/screens/reflection"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
	"github.com/aayasso/SlowMA-MVP/internal/store"
	"github.com/aayasso/SlowMA-MVP/internal/ui/components"
	"github.com/aayasso/SlowMA-MVP/internal/ui/layout"
	"github.com/aayasso/SlowMA-MVP/internal/ui/theme"
)

type walkState int

const (
	statePreparing walkState = iota
	stateWelcome
	stateLookAway
	stateReveal
	stateClosing
)

// WalkthroughScreen implements screen.Screen for an active journey.
type WalkthroughScreen struct {
	journeySvc  *journey.Service
	profileRepo store.ProfileRepo
	eventRepo   store.EventRepo
	badgeSvc    *engagement.BadgeService
	imagePath   string
	atMuseum    bool

	state     walkState
	j         *journey.Journey
	cached    bool
	level     stage.Level
	stepIndex int
	remaining int
	startTime time.Time
	errMsg    string
}

var _ screen.Screen = (*WalkthroughScreen)(nil)
var _ screen.KeyHintProvider = (*WalkthroughScreen)(nil)

// New creates a WalkthroughScreen that generates a journey for the
// photo at imagePath.
func New(journeySvc *journey.Service, profileRepo store.ProfileRepo, eventRepo store.EventRepo, badgeSvc *engagement.BadgeService, imagePath string, atMuseum bool) *WalkthroughScreen {
	return &WalkthroughScreen{
		journeySvc:  journeySvc,
		profileRepo: profileRepo,
		eventRepo:   eventRepo,
		badgeSvc:    badgeSvc,
		imagePath:   imagePath,
		atMuseum:    atMuseum,
	}
}

func (w *WalkthroughScreen) Init() tea.Cmd {
	return w.initJourney()
}

func (w *WalkthroughScreen) Title() string {
	return "Journey"
}

func (w *WalkthroughScreen) KeyHints() []layout.KeyHint {
	switch w.state {
	case stateLookAway:
		return []layout.KeyHint{
			{Key: "S", Description: "Skip wait"},
			{Key: "Esc", Description: "Abandon"},
		}
	case statePreparing:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	case stateClosing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Reflect"},
			{Key: "Esc", Description: "Abandon"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
}

// initJourney loads the viewer's level and generates the walkthrough.
func (w *WalkthroughScreen) initJourney() tea.Cmd {
	svc, repo, path := w.journeySvc, w.profileRepo, w.imagePath
	return func() tea.Msg {
		ctx := context.Background()

		level := stage.Initial()
		if repo != nil {
			p, err := repo.Load(ctx)
			if err != nil {
				return journeyReadyMsg{Err: err}
			}
			level = p.Level
		}

		j, cached, err := svc.CreateJourney(ctx, path, level)
		if err != nil {
			return journeyReadyMsg{Err: err}
		}
		return journeyReadyMsg{Journey: j, Cached: cached, Level: level}
	}
}

func (w *WalkthroughScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case journeyReadyMsg:
		return w.handleReady(msg)
	case timerTickMsg:
		return w.handleTimerTick()
	case tea.KeyMsg:
		return w.handleKey(msg)
	}
	return w, nil
}

func (w *WalkthroughScreen) handleReady(msg journeyReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		w.errMsg = msg.Err.Error()
		return w, nil
	}
	if len(msg.Journey.Steps) == 0 {
		w.errMsg = "The walkthrough came back without any steps. Try a different photo."
		return w, nil
	}
	w.j = msg.Journey
	w.cached = msg.Cached
	w.level = msg.Level
	w.state = stateWelcome
	w.startTime = time.Now()
	return w, nil
}

func (w *WalkthroughScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if w.state != stateLookAway {
		return w, nil
	}
	w.remaining--
	if w.remaining <= 0 {
		w.state = stateReveal
		return w, nil
	}
	return w, tickCmd()
}

func (w *WalkthroughScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch w.state {
	case stateWelcome:
		if msg.String() == "enter" {
			return w, w.beginStep(0)
		}

	case stateLookAway:
		if msg.String() == "s" {
			w.state = stateReveal
		}

	case stateReveal:
		if msg.String() == "enter" {
			if w.stepIndex+1 < len(w.j.Steps) {
				return w, w.beginStep(w.stepIndex + 1)
			}
			w.state = stateClosing
		}

	case stateClosing:
		if msg.String() == "enter" {
			duration := int(time.Since(w.startTime).Seconds())
			next := reflection.New(w.journeySvc, w.profileRepo, w.eventRepo, w.badgeSvc,
				w.j, w.level, duration, w.cached, w.atMuseum)
			return w, func() tea.Msg {
				return router.PushScreenMsg{Screen: next}
			}
		}
	}
	return w, nil
}

// beginStep starts the look-away countdown for step i.
func (w *WalkthroughScreen) beginStep(i int) tea.Cmd {
	w.stepIndex = i
	w.remaining = w.j.Steps[i].LookAwayDuration
	if w.remaining <= 0 {
		w.state = stateReveal
		return nil
	}
	w.state = stateLookAway
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (w *WalkthroughScreen) View(width, height int) string {
	if w.errMsg != "" {
		return renderError(width, w.errMsg)
	}
	switch w.state {
	case statePreparing:
		return renderPreparing(width)
	case stateWelcome:
		return w.renderWelcome(width)
	case stateLookAway:
		return w.renderLookAway(width)
	case stateReveal:
		return w.renderReveal(width)
	case stateClosing:
		return w.renderClosing(width)
	}
	return ""
}

func renderError(width int, msg string) string {
	return "\n" + theme.Regressed.Width(width).Align(lipgloss.Center).Render("Something went wrong") +
		"\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Body.Render(msg)) +
		"\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render("Press Esc to go back."))
}

func renderPreparing(width int) string {
	return "\n\n" + theme.Title.Width(width).Render("Preparing your journey...") +
		"\n\n" + theme.Subtitle.Width(width).Render("Looking closely at the artwork. This can take a moment.")
}

func (w *WalkthroughScreen) renderWelcome(width int) string {
	var b strings.Builder
	art := w.j.Artwork

	b.WriteString("\n")
	title := art.Title
	if title == "" {
		title = "An unidentified artwork"
	}
	b.WriteString(theme.Title.Width(width).Render(title))
	if line := artworkByline(art); line != "" {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(width).Render(line))
	}
	b.WriteString("\n\n")

	welcome := theme.Card.Width(min(width-8, 70)).Render(theme.Body.Render(w.j.WelcomeText))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, welcome))
	b.WriteString("\n\n")

	meta := fmt.Sprintf("%d stops  ·  about %d minutes", len(w.j.Steps), w.j.EstimatedDurationMinutes)
	if w.cached {
		meta += "  ·  revisit"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(meta)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("Press Enter when you are in front of the artwork and ready to begin.")))

	return b.String()
}

func (w *WalkthroughScreen) renderLookAway(width int) string {
	step := w.j.Steps[w.stepIndex]
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Stop %d of %d", w.stepIndex+1, len(w.j.Steps))))
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("Look away from the screen"))
	b.WriteString("\n\n")

	prompt := theme.Card.Width(min(width-8, 70)).Render(theme.Body.Render(step.Region.SoftPrompt))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	total := step.LookAwayDuration
	pct := 0.0
	if total > 0 {
		pct = float64(total-w.remaining) / float64(total)
	}
	bar := components.NewProgressBar("", pct, false, min(width-20, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("%ds — keep your eyes on the artwork", w.remaining))))

	return b.String()
}

func (w *WalkthroughScreen) renderReveal(width int) string {
	step := w.j.Steps[w.stepIndex]
	r := step.Region
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Stop %d of %d  ·  %s  ·  %s", w.stepIndex+1, len(w.j.Steps), regionLocation(r), r.ConceptTag)))
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(r.Title))
	b.WriteString("\n\n")

	cw := min(width-8, 70)
	body := theme.Body.Render(r.Observation) + "\n\n" +
		theme.Hint.Render("Why it matters  ") + theme.Body.Render(r.WhyNotable)
	if step.BuildsOn != "" {
		body += "\n\n" + theme.Hint.Render("Building on  ") + theme.Body.Render(step.BuildsOn)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Width(cw).Render(body)))
	b.WriteString("\n\n")

	next := "Press Enter for the next stop."
	if w.stepIndex+1 >= len(w.j.Steps) {
		next = "Press Enter to finish the walkthrough."
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Body.Render(next)))

	return b.String()
}

func (w *WalkthroughScreen) renderClosing(width int) string {
	fs := w.j.FinalSummary
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Stepping back"))
	b.WriteString("\n\n")

	cw := min(width-8, 70)
	body := theme.Body.Render(fs.MainTakeaway) + "\n\n" +
		theme.Body.Render(fs.Connections) + "\n\n" +
		theme.Hint.Render(fs.InvitationToReturn)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Width(cw).Render(body)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(fs.ReflectionQuestion)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("Press Enter to reflect on what you saw.")))

	return b.String()
}

// artworkByline joins the known identification fields.
func artworkByline(a journey.Artwork) string {
	var parts []string
	if a.Artist != "" {
		parts = append(parts, a.Artist)
	}
	if a.Year != "" {
		parts = append(parts, a.Year)
	}
	if a.Style != "" {
		parts = append(parts, a.Style)
	}
	return strings.Join(parts, "  ·  ")
}

// regionLocation names the area of the artwork a normalized bounding
// box sits in, as a thirds grid.
func regionLocation(r journey.Region) string {
	cx := r.X + r.Width/2
	cy := r.Y + r.Height/2

	var v, h string
	switch {
	case cy < 1.0/3:
		v = "upper"
	case cy < 2.0/3:
		v = "middle"
	default:
		v = "lower"
	}
	switch {
	case cx < 1.0/3:
		h = "left"
	case cx < 2.0/3:
		h = "center"
	default:
		h = "right"
	}

	if v == "middle" && h == "center" {
		return "center"
	}
	return v + " " + h
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
