package cssinspect

import "github.com/charmbracelet/lipgloss"

// Terminal styles for consistent report formatting.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleHeader is used for section headers and selectors.
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleToken is used for matched token names.
	StyleToken = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleModified marks properties with pending overrides.
	StyleModified = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleMuted is used for raw values and hints.
	StyleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
