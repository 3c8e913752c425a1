package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — dim gallery lighting, warm accents
var (
	Primary   = lipgloss.Color("#D4A95A") // Gallery Gold
	Secondary = lipgloss.Color("#7C9A92") // Sage
	Accent    = lipgloss.Color("#C17B5E") // Terracotta
	Success   = lipgloss.Color("#8FBC8F") // Soft Green
	Error     = lipgloss.Color("#CD5C5C") // Indian Red
	Text      = lipgloss.Color("#EDE6DA") // Warm White
	TextDim   = lipgloss.Color("#9A9184") // Stone
	BgDark    = lipgloss.Color("#1A1713") // Charcoal Brown
	BgCard    = lipgloss.Color("#2A241D") // Dark Umber
	Border    = lipgloss.Color("#4A4138") // Walnut
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Progressed = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Regressed = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
