package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Each color has a light and a dark terminal variant.
var (
	// CreatedColor marks new directories and files.
	CreatedColor = lipgloss.AdaptiveColor{Light: "#1E7B34", Dark: "#5FD47F"}

	// KeptColor marks paths a repair left alone.
	KeptColor = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#9AA3AB"}

	// PathColor is used for filesystem paths.
	PathColor = lipgloss.AdaptiveColor{Light: "#2F5E8C", Dark: "#8AB4E0"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#C62E3D", Dark: "#FF7582"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#F6C76B"}
)
