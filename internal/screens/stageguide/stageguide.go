// Package stageguide explains the five stages of aesthetic development
// and marks where the viewer currently stands.
package stageguide

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aayasso/SlowMA-MVP/internal/screen"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
	"github.com/aayasso/SlowMA-MVP/internal/ui/layout"
	"github.com/aayasso/SlowMA-MVP/internal/ui/theme"
)

// StageGuideScreen is a browsable view of the stage catalog.
type StageGuideScreen struct {
	level    stage.Level
	selected int // zero-based stage index
}

var _ screen.Screen = (*StageGuideScreen)(nil)
var _ screen.KeyHintProvider = (*StageGuideScreen)(nil)

// New creates a StageGuideScreen opened at the viewer's current stage.
func New(level stage.Level) *StageGuideScreen {
	return &StageGuideScreen{
		level:    level,
		selected: level.Stage - 1,
	}
}

func (s *StageGuideScreen) Init() tea.Cmd {
	return nil
}

func (s *StageGuideScreen) Title() string {
	return "Stage Guide"
}

func (s *StageGuideScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse stages"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StageGuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < stage.MaxStage-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *StageGuideScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		"Aesthetic development moves through five stages. Everyone starts somewhere."))
	b.WriteString("\n\n")

	// Stage list on the left of the detail card.
	for i := 1; i <= stage.MaxStage; i++ {
		name := stage.Name(i)
		line := fmt.Sprintf("Stage %d  %s", i, name)
		if i == s.level.Stage {
			line += "  ← you are here"
		}

		style := theme.Unselected
		prefix := "    "
		if i-1 == s.selected {
			style = theme.Selected
			prefix = "  ▸ "
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Detail card for the selected stage, at the viewer's substage depth.
	desc := stage.Describe(s.selected+1, s.level.Substage)
	cw := min(width-8, 70)
	body := theme.Body.Render(desc.Description)
	if len(desc.Characteristics) > 0 {
		var traits []string
		for _, c := range desc.Characteristics {
			traits = append(traits, "· "+c)
		}
		body += "\n\n" + theme.Hint.Render(strings.Join(traits, "\n"))
	}
	card := theme.Card.Width(cw).Render(
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(desc.Name) + "\n\n" + body)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
