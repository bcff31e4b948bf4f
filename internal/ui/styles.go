package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorCrisis    = lipgloss.Color("196") // Red
	colorHigh      = lipgloss.Color("208") // Orange
	colorMedium    = lipgloss.Color("220") // Yellow
	colorLow       = lipgloss.Color("78")  // Green
)

// Header style for the subject line.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// urgencyColors maps urgency levels to badge colors.
var urgencyColors = map[string]lipgloss.Color{
	"crisis": colorCrisis,
	"high":   colorHigh,
	"medium": colorMedium,
	"low":    colorLow,
}

// UrgencyBadge renders the urgency level as a colored badge.
func UrgencyBadge(urgency string) string {
	color, ok := urgencyColors[urgency]
	if !ok {
		color = colorSecondary
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("232")).
		Background(color).
		Padding(0, 1).
		Render(urgency)
}

// StyleTab renders one style name in the tab row.
func StyleTab(name string, active bool) string {
	s := lipgloss.NewStyle().Padding(0, 1).Foreground(colorSecondary)
	if active {
		s = s.Bold(true).Foreground(lipgloss.Color("255")).Background(colorPrimary)
	}
	return s.Render(name)
}

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// ErrorStyle for the error bar.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(colorCrisis).
	Padding(0, 1)
