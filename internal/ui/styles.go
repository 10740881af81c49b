package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/ghfeed/ghfeed/internal/todo"
)

// Listing styles
var (
	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)
	itemTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	itemMetaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	itemURLStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	trackedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	noteStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("247")).Padding(0, 0, 0, 4)
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 2)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// statusBadge renders a colored badge for a todo status.
func statusBadge(status todo.Status) string {
	var color string
	switch status {
	case todo.StatusInProgress:
		color = "42" // green
	case todo.StatusBlocked:
		color = "196" // red
	case todo.StatusReview:
		color = "214" // orange
	default:
		color = "244" // gray
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1).
		Render(string(status))
}

// kindBadge marks pull requests apart from issues in list rows.
func kindBadge(isPR bool) string {
	if isPR {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Render("PR")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Render("IS")
}

// newLoadingSpinner creates a consistently styled spinner for loading states.
func newLoadingSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	return s
}

// renderEmptyState renders a consistent empty state message.
func renderEmptyState(message string) string {
	return emptyStyle.Render("— " + message)
}
