package commands

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aslanbek/fitlog/internal/models"
)

// Color constants for fitlog terminal output
const (
	ColorPrimaryText   = "#E6EAF2" // Primary text (headers, names)
	ColorSecondaryText = "#B1B8C7" // Secondary text - subtle purple-tinted grey
	ColorDisabledText  = "#6D7383" // Disabled/muted text

	ColorAccentMain = "#7C3AED" // Accent elements

	ColorError   = "#EF4444" // Missing references, empty balances
	ColorSuccess = "#22C55E" // Completed sessions
	ColorWarning = "#F59E0B" // Skipped sessions, low balances
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentMain))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText))

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	skippedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))
)

// styleStatus colours an event status for table output
func styleStatus(status string) string {
	switch status {
	case models.StatusCompleted:
		return completedStyle.Render(status)
	case models.StatusSkipped:
		return skippedStyle.Render(status)
	default:
		return status
	}
}
