package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Status line at the top: hidden marker plus breadcrumb.
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	// Prompt message while asking for a custom open command.
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)

	// Entry under the cursor.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7"))

	// Directories stand out from plain files.
	DirectoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#81A1C1")).
			Bold(true)

	FileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	// Entries the scanner could not descend into.
	InaccessibleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF0000")).
				Italic(true)
)
