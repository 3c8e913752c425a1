// Package profile renders the viewer's standing: level, totals, streak,
// badges, and the stage history.
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aayasso/SlowMA-MVP/internal/engagement"
	viewerprofile "github.com/aayasso/SlowMA-MVP/internal/profile"
	"github.com/aayasso/SlowMA-MVP/internal/screen"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
	"github.com/aayasso/SlowMA-MVP/internal/store"
	"github.com/aayasso/SlowMA-MVP/internal/ui/layout"
	"github.com/aayasso/SlowMA-MVP/internal/ui/theme"
)

// historyShown caps how many stage transitions the screen lists.
const historyShown = 8

// profileLoadedMsg is sent when the profile read finishes.
type profileLoadedMsg struct {
	Profile *viewerprofile.UserProfile
	Err     error
}

// ProfileScreen shows the viewer profile.
type ProfileScreen struct {
	profileRepo store.ProfileRepo

	p      *viewerprofile.UserProfile
	errMsg string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a new ProfileScreen.
func New(profileRepo store.ProfileRepo) *ProfileScreen {
	return &ProfileScreen{profileRepo: profileRepo}
}

func (s *ProfileScreen) Init() tea.Cmd {
	repo := s.profileRepo
	return func() tea.Msg {
		if repo == nil {
			return profileLoadedMsg{Profile: viewerprofile.New()}
		}
		p, err := repo.Load(context.Background())
		return profileLoadedMsg{Profile: p, Err: err}
	}
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(profileLoadedMsg); ok {
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.p = m.Profile
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	if s.errMsg != "" {
		return "\n" + theme.Regressed.Width(width).Align(lipgloss.Center).Render(s.errMsg)
	}
	if s.p == nil {
		return "\n\n" + theme.Subtitle.Width(width).Render("Loading profile...")
	}

	p := s.p
	var b strings.Builder

	desc := stage.Describe(p.Level.Stage, p.Level.Substage)
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(
		fmt.Sprintf("Stage %s — %s", p.Level.Label(), desc.Name)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(desc.SubstageName))
	b.WriteString("\n\n")

	// Totals card.
	hours := p.TotalTimeSeconds / 3600
	minutes := (p.TotalTimeSeconds % 3600) / 60
	streak := engagement.Streak(p, time.Now())
	stats := fmt.Sprintf(
		"Journeys completed   %d\nTime with art        %dh %02dm\nMuseum visits        %d\nCurrent streak       %d day(s)",
		p.JourneysCompleted, hours, minutes, p.MuseumVisits, streak)
	if avg, ok := p.AverageRecentQuality(3); ok {
		stats += fmt.Sprintf("\nRecent engagement    %.0f/100", avg)
	}
	cw := min(width-8, 60)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Width(cw).Render(theme.Body.Render(stats))))
	b.WriteString("\n\n")

	// Badges.
	if len(p.Achievements) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Badges")))
		b.WriteString("\n")
		var badges []string
		for _, a := range p.Achievements {
			badges = append(badges, a.Icon+" "+a.Name)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(strings.Join(badges, "    "))))
		b.WriteString("\n\n")
	}

	// Stage history, newest first.
	if len(p.StageHistory) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Stage history")))
		b.WriteString("\n")

		history := p.StageHistory
		if len(history) > historyShown {
			history = history[len(history)-historyShown:]
		}
		for i := len(history) - 1; i >= 0; i-- {
			h := history[i]
			marker := "◆"
			style := theme.Body
			switch h.Change {
			case stage.ChangeProgression:
				marker, style = "▲", theme.Progressed
			case stage.ChangeRegression:
				marker, style = "▼", theme.Regressed
			}
			line := fmt.Sprintf("%s  %s  stage %s  (%s)",
				h.At.Local().Format("Jan 2, 2006"), marker, h.Stage, h.Trigger)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
