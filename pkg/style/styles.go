// Package style holds the lipgloss styles shared by the terminal output.
package style

import (
	"github.com/arthur-debert/cs01/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	MutedStyle = lipgloss.NewStyle().
			Foreground(KeptColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(CreatedColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)

// Indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	PendingIndicator = MutedStyle.Render("○")
)

// ActionStyle returns the style for a write action kind.
func ActionStyle(kind types.WriteActionKind) lipgloss.Style {
	switch kind {
	case types.ActionCreateDir, types.ActionWriteFile:
		return SuccessStyle
	case types.ActionSkipExisting:
		return MutedStyle
	default:
		return WarningStyle
	}
}

// Bold renders s in bold.
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
