package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	ColorTomato  = lipgloss.Color("#FF6347")
	ColorGreen   = lipgloss.Color("#00D787")
	ColorYellow  = lipgloss.Color("#FFFF00")
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorRed     = lipgloss.Color("#FF0000")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTomato)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimGray).
			Padding(0, 2)

	TimeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	WorkPhaseStyle = lipgloss.NewStyle().
			Foreground(ColorTomato)

	BreakPhaseStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	TomatoStyle = lipgloss.NewStyle().
			Foreground(ColorTomato)

	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	BindingsStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)
