// Package gallery lists the viewer's completed journeys.
package gallery

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aayasso/SlowMA-MVP/internal/screen"
	"github.com/aayasso/SlowMA-MVP/internal/store"
	"github.com/aayasso/SlowMA-MVP/internal/ui/layout"
	"github.com/aayasso/SlowMA-MVP/internal/ui/theme"
)

// listLimit caps how many gallery entries the screen loads.
const listLimit = 50

// entriesLoadedMsg is sent when the gallery query finishes.
type entriesLoadedMsg struct {
	Entries []store.GalleryRecord
	Err     error
}

// GalleryScreen shows completed journeys, most recent first.
type GalleryScreen struct {
	galleryRepo store.GalleryRepo

	entries  []store.GalleryRecord
	loaded   bool
	selected int
	errMsg   string
}

var _ screen.Screen = (*GalleryScreen)(nil)
var _ screen.KeyHintProvider = (*GalleryScreen)(nil)

// New creates a new GalleryScreen.
func New(galleryRepo store.GalleryRepo) *GalleryScreen {
	return &GalleryScreen{galleryRepo: galleryRepo}
}

func (g *GalleryScreen) Init() tea.Cmd {
	repo := g.galleryRepo
	return func() tea.Msg {
		if repo == nil {
			return entriesLoadedMsg{}
		}
		entries, err := repo.ListEntries(context.Background(), listLimit)
		return entriesLoadedMsg{Entries: entries, Err: err}
	}
}

func (g *GalleryScreen) Title() string {
	return "My Gallery"
}

func (g *GalleryScreen) KeyHints() []layout.KeyHint {
	if len(g.entries) == 0 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GalleryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		g.loaded = true
		if msg.Err != nil {
			g.errMsg = msg.Err.Error()
			return g, nil
		}
		g.entries = msg.Entries

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if g.selected > 0 {
				g.selected--
			}
		case "down", "j":
			if g.selected < len(g.entries)-1 {
				g.selected++
			}
		}
	}
	return g, nil
}

func (g *GalleryScreen) View(width, height int) string {
	if g.errMsg != "" {
		return "\n" + theme.Regressed.Width(width).Align(lipgloss.Center).Render(g.errMsg)
	}
	if !g.loaded {
		return "\n\n" + theme.Subtitle.Width(width).Render("Opening your gallery...")
	}
	if len(g.entries) == 0 {
		return "\n\n" + theme.Title.Width(width).Render("Your gallery is empty") +
			"\n\n" + theme.Subtitle.Width(width).Render("Finish a journey and the artwork will hang here.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%d artwork(s) in your collection", len(g.entries))))
	b.WriteString("\n\n")

	for i, e := range g.entries {
		title := e.Title
		if title == "" {
			title = "Untitled artwork"
		}
		line := fmt.Sprintf("%-34s  %-20s  stage %s  %s",
			truncate(title, 34),
			truncate(e.Artist, 20),
			e.StageLabel,
			e.CompletedAt.Local().Format("Jan 2, 2006"))

		style := theme.Unselected
		prefix := "    "
		if i == g.selected {
			style = theme.Selected
			prefix = "  ▸ "
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+line)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
