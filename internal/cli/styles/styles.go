// Package styles defines the lipgloss styles shared by the CLI output.
package styles

import "charm.land/lipgloss/v2"

var (
	// TitleStyle renders task titles and section headers
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// SubtleStyle renders secondary detail such as IDs and counts
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// ColumnStyle renders board column headers
	ColumnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1)

	// SuccessStyle marks completed operations
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	// ErrorStyle marks failures
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// DoneStyle renders completed tasks
	DoneStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("245"))
)
