// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Palette matches the legacy terminal output: yellow rules, cyan labels

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Separator = lipgloss.Color("#EAB308") // Yellow - card rules
	Label     = lipgloss.Color("#06B6D4") // Cyan - field labels
	Text      = lipgloss.Color("#F9FAFB") // Light
	Muted     = lipgloss.Color("#6B7280") // Gray
	Success   = lipgloss.Color("#22C55E") // Green
	Danger    = lipgloss.Color("#EF4444") // Red

	// Card pieces
	Rule = lipgloss.NewStyle().
		Bold(true).
		Foreground(Separator)

	FieldLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(Label)

	FieldValue = lipgloss.NewStyle().
			Foreground(Text)

	// Footer help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Status markers
	OK = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Failed = lipgloss.NewStyle().
		Foreground(Danger).
		Bold(true)
)
