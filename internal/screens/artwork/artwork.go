// Package artwork asks for the path of the artwork photo that starts a
// journey.
package artwork

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aayasso/SlowMA-MVP/internal/engagement"
	"github.com/aayasso/SlowMA-MVP/internal/journey"
	"github.com/aayasso/SlowMA-MVP/internal/router"
	"github.com/aayasso/SlowMA-MVP/internal/screen"
	"github.com/aayasso/SlowMA-MVP/internal/screens/walkthrough"
	"github.com/aayasso/SlowMA-MVP/internal/store"
	"github.com/aayasso/SlowMA-MVP/internal/ui/components"
	"github.com/aayasso/SlowMA-MVP/internal/ui/layout"
	"github.com/aayasso/SlowMA-MVP/internal/ui/theme"
)

// ArtworkScreen collects the photo path and validates it before the
// walkthrough starts.
type ArtworkScreen struct {
	journeySvc  *journey.Service
	profileRepo store.ProfileRepo
	eventRepo   store.EventRepo
	badgeSvc    *engagement.BadgeService

	input    components.TextInput
	atMuseum bool
	errMsg   string
}

var _ screen.Screen = (*ArtworkScreen)(nil)
var _ screen.KeyHintProvider = (*ArtworkScreen)(nil)

// New creates a new ArtworkScreen.
func New(journeySvc *journey.Service, profileRepo store.ProfileRepo, eventRepo store.EventRepo, badgeSvc *engagement.BadgeService) *ArtworkScreen {
	return &ArtworkScreen{
		journeySvc:  journeySvc,
		profileRepo: profileRepo,
		eventRepo:   eventRepo,
		badgeSvc:    badgeSvc,
		input:       components.NewTextInput("/path/to/artwork.jpg", 256),
	}
}

func (a *ArtworkScreen) Init() tea.Cmd {
	return a.input.Init()
}

func (a *ArtworkScreen) Title() string {
	return "New Journey"
}

func (a *ArtworkScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin"},
		{Key: "Ctrl+T", Description: "At the museum"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *ArtworkScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "ctrl+t":
			// Plain letters belong to the path input, so the toggle
			// needs a chord.
			a.atMuseum = !a.atMuseum
			return a, nil

		case "enter":
			path := strings.TrimSpace(a.input.Value())
			if path == "" {
				return a, nil
			}
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				a.errMsg = fmt.Sprintf("Cannot read %q. Check the path and try again.", path)
				a.input.Submit(false)
				return a, nil
			}
			a.errMsg = ""
			a.input.Submit(true)
			journeySvc, profileRepo, eventRepo, badgeSvc := a.journeySvc, a.profileRepo, a.eventRepo, a.badgeSvc
			atMuseum := a.atMuseum
			return a, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: walkthrough.New(journeySvc, profileRepo, eventRepo, badgeSvc, path, atMuseum),
				}
			}
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *ArtworkScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Choose an artwork"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		"Point SlowMA at a photo of a painting, sculpture, or any piece that caught your eye."))
	b.WriteString("\n\n")

	box := theme.Card.Width(min(width-8, 64)).Render(a.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	b.WriteString("\n\n")

	mark := "[ ]"
	museumStyle := theme.Hint
	if a.atMuseum {
		mark = "[✓]"
		museumStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		museumStyle.Render(mark+" I'm standing in front of this piece (Ctrl+T)")))
	b.WriteString("\n")

	if a.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Regressed.Render(a.errMsg)))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("JPEG, PNG, GIF, and WebP photos work best.")))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
