package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds all color definitions for the UI
type Theme struct {
	Muted     lipgloss.Color // hints, placeholders
	Accent    lipgloss.Color // spinner, active task
	Primary   lipgloss.Color // titles, selected row
	Separator lipgloss.Color // pane borders

	Text       lipgloss.Color // normal text
	TextDim    lipgloss.Color // secondary columns
	TextBright lipgloss.Color // selected row text

	Success lipgloss.Color // running projects, finished tasks
	Error   lipgloss.Color // stopped projects, failed tasks
	Warning lipgloss.Color // transitional states, cancellations
}

// DarkTheme is the color palette for dark terminals
var DarkTheme = Theme{
	Muted:     lipgloss.Color("#6B7280"),
	Accent:    lipgloss.Color("#F59E0B"),
	Primary:   lipgloss.Color("#60A5FA"),
	Separator: lipgloss.Color("#4B5563"),

	Text:       lipgloss.Color("#D1D5DB"),
	TextDim:    lipgloss.Color("#9CA3AF"),
	TextBright: lipgloss.Color("#FFFFFF"),

	Success: lipgloss.Color("#10B981"),
	Error:   lipgloss.Color("#EF4444"),
	Warning: lipgloss.Color("#FBBF24"),
}

// LightTheme is the color palette for light terminals
var LightTheme = Theme{
	Muted:     lipgloss.Color("#6B7280"),
	Accent:    lipgloss.Color("#D97706"),
	Primary:   lipgloss.Color("#2563EB"),
	Separator: lipgloss.Color("#D1D5DB"),

	Text:       lipgloss.Color("#1F2937"),
	TextDim:    lipgloss.Color("#4B5563"),
	TextBright: lipgloss.Color("#111827"),

	Success: lipgloss.Color("#059669"),
	Error:   lipgloss.Color("#DC2626"),
	Warning: lipgloss.Color("#B45309"),
}

// CurrentTheme holds the active theme based on terminal background
var CurrentTheme Theme

func init() {
	if lipgloss.HasDarkBackground() {
		CurrentTheme = DarkTheme
	} else {
		CurrentTheme = LightTheme
	}
}
