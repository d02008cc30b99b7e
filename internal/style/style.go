// Package style defines the shared terminal styles for CLI output.
package style

import "charm.land/lipgloss/v2"

var (
	// Bold is used for emphasis, like the checkmark on completed steps.
	Bold = lipgloss.NewStyle().Bold(true)

	// Dim is used for secondary information and no-op results.
	Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	// Header is used for section titles in listings.
	Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))

	// Error marks failures.
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)
