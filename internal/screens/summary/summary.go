// Package summary shows the outcome of a journey: the quality of the
// reflections, any stage movement, and badges earned along the way.
package summary

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aayasso/SlowMA-MVP/internal/assessment"
	"github.com/aayasso/SlowMA-MVP/internal/journey"
	"github.com/aayasso/SlowMA-MVP/internal/profile"
	"github.com/aayasso/SlowMA-MVP/internal/router"
	"github.com/aayasso/SlowMA-MVP/internal/screen"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
	"github.com/aayasso/SlowMA-MVP/internal/ui/layout"
	"github.com/aayasso/SlowMA-MVP/internal/ui/theme"
)

// SummaryScreen displays the journey summary.
type SummaryScreen struct {
	j            *journey.Journey
	result       assessment.Result
	awards       []profile.Achievement
	durationSecs int
	streak       int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(j *journey.Journey, result assessment.Result, awards []profile.Achievement, durationSecs, streak int) *SummaryScreen {
	return &SummaryScreen{j: j, result: result, awards: awards, durationSecs: durationSecs, streak: streak}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Journey Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Unwind walkthrough and reflection in one go, then let the
			// home screen refresh its stats.
			status := screen.StatusMsg{StageLabel: s.result.Level.Label(), Streak: s.streak}
			return s, tea.Sequence(
				func() tea.Msg { return router.PopToRootMsg{} },
				func() tea.Msg { return status },
			)
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	// Title.
	title := "Journey complete!"
	if s.j.Artwork.Title != "" {
		title = fmt.Sprintf("%q complete!", s.j.Artwork.Title)
	}
	b.WriteString(theme.Title.Width(width).Render(title))
	b.WriteString("\n\n")

	// Duration.
	mins := s.durationSecs / 60
	secs := s.durationSecs % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time with the artwork: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	// Stage movement line.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderStageLine()))
	b.WriteString("\n\n")

	// Per-indicator breakdown.
	if rows := s.indicatorRows(); len(rows) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("What your reflections showed")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, row := range rows {
			line := fmt.Sprintf("  %-28s %3.0f", row.name, row.score)
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if row.score >= 70 {
				style = style.Foreground(theme.Success)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				style.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Feedback.
	cw := min(width-8, 66)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Width(cw).Render(theme.Body.Render(s.result.Feedback))))
	b.WriteString("\n")

	// Badges section.
	if len(s.awards) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Badges earned")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, a := range s.awards {
			line := fmt.Sprintf("  %s %s", a.Icon, a.Name)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Primary).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

type indicatorRow struct {
	name  string
	score float64
}

// indicatorRows averages each indicator across all scored responses,
// strongest first.
func (s *SummaryScreen) indicatorRows() []indicatorRow {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, set := range s.result.Scores {
		for name, v := range set {
			sums[name] += v
			counts[name]++
		}
	}

	rows := make([]indicatorRow, 0, len(sums))
	for name, sum := range sums {
		rows = append(rows, indicatorRow{
			name:  strings.ReplaceAll(name, "_", " "),
			score: sum / float64(counts[name]),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score > rows[j].score
		}
		return rows[i].name < rows[j].name
	})
	return rows
}

func (s *SummaryScreen) renderStageLine() string {
	label := s.result.Level.Label()
	quality := fmt.Sprintf("engagement %.0f/100", s.result.Quality)

	switch s.result.Change {
	case stage.ChangeProgression:
		return theme.Progressed.Render(fmt.Sprintf("▲ Moved up to stage %s", label)) +
			theme.Hint.Render("   "+quality)
	case stage.ChangeRegression:
		return theme.Regressed.Render(fmt.Sprintf("▼ Eased back to stage %s", label)) +
			theme.Hint.Render("   "+quality)
	default:
		return theme.Body.Render(fmt.Sprintf("◆ Holding steady at stage %s", label)) +
			theme.Hint.Render("   "+quality)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
