package home

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
	"github.com/aayasso/SlowMA-MVP/internal/screens/artwork"
	"github.com/aayasso/SlowMA-MVP/internal/screens/gallery"
	profilescreen "github.com/aayasso/SlowMA-MVP/internal/screens/profile"
	"github.com/aayasso/SlowMA-MVP/internal/screens/stageguide"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
	"github.com/aayasso/SlowMA-MVP/internal/store"
	"github.com/aayasso/SlowMA-MVP/internal/ui/components"
	"github.com/aayasso/SlowMA-MVP/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	journeySvc  *journey.Service
	profileRepo store.ProfileRepo
	galleryRepo store.GalleryRepo

	menu components.Menu

	level        stage.Level
	streak       int
	journeys     int
	galleryCount int
	llmReady     bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(journeySvc *journey.Service, profileRepo store.ProfileRepo, galleryRepo store.GalleryRepo, eventRepo store.EventRepo, badgeSvc *engagement.BadgeService) *HomeScreen {
	h := &HomeScreen{
		journeySvc:  journeySvc,
		profileRepo: profileRepo,
		galleryRepo: galleryRepo,
		llmReady:    journeySvc != nil,
	}
	h.loadStats()

	beginLabel := "BEGIN JOURNEY"
	if !h.llmReady {
		beginLabel = "BEGIN JOURNEY (set an API key first)"
	}

	items := []components.MenuItem{
		{Label: beginLabel, Disabled: !h.llmReady, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: artwork.New(journeySvc, profileRepo, eventRepo, badgeSvc),
				}
			}
		}},
		{Label: "MY GALLERY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: gallery.New(galleryRepo)}
			}
		}},
		{Label: "STAGE GUIDE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stageguide.New(h.level)}
			}
		}},
		{Label: "PROFILE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profilescreen.New(profileRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

// loadStats pulls the header numbers from the store.
func (h *HomeScreen) loadStats() {
	ctx := context.Background()

	h.level = stage.Initial()
	h.streak, h.journeys = 0, 0
	if h.profileRepo != nil {
		if p, err := h.profileRepo.Load(ctx); err == nil {
			h.level = p.Level
			h.streak = engagement.Streak(p, time.Now())
			h.journeys = p.JourneysCompleted
		}
	}

	h.galleryCount = 0
	if h.galleryRepo != nil {
		h.galleryCount, _ = h.galleryRepo.CountEntries(ctx)
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	// Tell the header where the viewer stands.
	level, streak := h.level, h.streak
	return func() tea.Msg {
		return screen.StatusMsg{StageLabel: level.Label(), Streak: streak}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// A status change means a journey just finished; re-read the stats.
	if _, ok := msg.(screen.StatusMsg); ok {
		h.loadStats()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("S L O W M A"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("see more by looking slowly"))
	b.WriteString("\n\n")

	desc := stage.Describe(h.level.Stage, h.level.Substage)
	stageLine := fmt.Sprintf("Stage %s  ·  %s — %s",
		h.level.Label(), desc.Name, desc.SubstageName)
	statsLine := fmt.Sprintf("Journeys: %d        Gallery: %d        Streak: %d day",
		h.journeys, h.galleryCount, h.streak)

	stats := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Primary).Render(stageLine) +
			"\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(statsLine))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, stats))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if !h.llmReady {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Set ANTHROPIC_API_KEY (or GEMINI/OPENAI/OPENROUTER) to generate journeys.")))
	}

	return b.String()
}
