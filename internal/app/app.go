// Package app wires the services into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aayasso/SlowMA-MVP/internal/engagement"
	"github.com/aayasso/SlowMA-MVP/internal/journey"
	"github.com/aayasso/SlowMA-MVP/internal/router"
	"github.com/aayasso/SlowMA-MVP/internal/screen"
	"github.com/aayasso/SlowMA-MVP/internal/screens/home"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
	"github.com/aayasso/SlowMA-MVP/internal/store"
	"github.com/aayasso/SlowMA-MVP/internal/ui/layout"
)

// Options carries the dependencies the screens need. JourneyService is
// nil when no LLM provider is configured; the home screen degrades
// gracefully.
type Options struct {
	JourneyService *journey.Service
	ProfileRepo    store.ProfileRepo
	GalleryRepo    store.GalleryRepo
	EventRepo      store.EventRepo
	BadgeService   *engagement.BadgeService
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int

	stageLabel string
	streak     int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.JourneyService, opts.ProfileRepo, opts.GalleryRepo,
		opts.EventRepo, opts.BadgeService)
	return AppModel{
		router:     router.New(homeScreen),
		stageLabel: stage.Initial().Label(),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StatusMsg:
		m.stageLabel = msg.StageLabel
		m.streak = msg.Streak
		// Fall through to the router so screens can refresh too.

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stageLabel, m.streak, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints uses the active screen's hints when it provides them.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run applies the startup checks and starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.ProfileRepo != nil {
		if err := startupDecayCheck(opts); err != nil {
			fmt.Fprintln(os.Stderr, "inactivity check:", err)
		}
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// startupDecayCheck regresses a dormant viewer one step and records the
// transition before any screen reads the profile.
func startupDecayCheck(opts Options) error {
	ctx := context.Background()

	p, err := opts.ProfileRepo.Load(ctx)
	if err != nil {
		return err
	}

	before := p.Level.Label()
	if !engagement.CheckInactivityRegression(p, time.Now()) {
		return nil
	}

	if opts.EventRepo != nil {
		_ = opts.EventRepo.AppendStageChange(ctx, store.StageEventData{
			FromStage: before,
			ToStage:   p.Level.Label(),
			Change:    string(stage.ChangeRegression),
			Trigger:   "inactivity",
		})
	}
	return opts.ProfileRepo.Save(ctx, p)
}
