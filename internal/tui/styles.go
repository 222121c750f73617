package tui

import "github.com/charmbracelet/lipgloss"

// Adaptive colors: the light/dark pair is resolved at render time from
// the process-wide theme flag, so a theme toggle repaints everything.
var (
	primaryColor = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"} // brick amber
	accentColor  = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"} // teal
	errorColor   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	dimColor     = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// Style variables for consistent TUI rendering.
var (
	// BoxStyle provides a rounded border box with primary color.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	// TitleStyle renders titles in primary color with bold.
	TitleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	// SuccessStyle renders success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	// ErrorStyle renders error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// ErrorBannerStyle frames the single workflow error message.
	ErrorBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(errorColor).
				Foreground(errorColor).
				Padding(0, 1)

	// ChipLabelStyle renders metadata chip labels.
	ChipLabelStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	// ChipValueStyle renders metadata chip values.
	ChipValueStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	// TableHeaderStyle renders the materials table header row.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)
)
