package tui

import "github.com/charmbracelet/lipgloss"

// Layout styles
var (
	titleStyle     lipgloss.Style
	statusBarStyle lipgloss.Style
	hintStyle      lipgloss.Style
	separatorStyle lipgloss.Style
)

// Project list styles
var (
	selectedRowStyle lipgloss.Style
	runningStyle     lipgloss.Style
	stoppedStyle     lipgloss.Style
	pausedStyle      lipgloss.Style
	projectTypeStyle lipgloss.Style
)

// Output pane styles
var (
	stderrStyle     lipgloss.Style
	taskActiveStyle lipgloss.Style
	successStyle    lipgloss.Style
	errorStyle      lipgloss.Style
	cancelledStyle  lipgloss.Style
)

func init() {
	titleStyle = lipgloss.NewStyle().
		Foreground(CurrentTheme.Primary).
		Bold(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(CurrentTheme.TextDim)

	hintStyle = lipgloss.NewStyle().
		Foreground(CurrentTheme.Muted)

	separatorStyle = lipgloss.NewStyle().
		Faint(true).
		Foreground(CurrentTheme.Separator)

	selectedRowStyle = lipgloss.NewStyle().
		Foreground(CurrentTheme.TextBright).
		Background(CurrentTheme.Separator).
		Bold(true)

	runningStyle = lipgloss.NewStyle().
		Foreground(CurrentTheme.Success)

	stoppedStyle = lipgloss.NewStyle().
		Foreground(CurrentTheme.Error)

	pausedStyle = lipgloss.NewStyle().
		Foreground(CurrentTheme.Warning)

	projectTypeStyle = lipgloss.NewStyle().
		Foreground(CurrentTheme.TextDim)

	stderrStyle = lipgloss.NewStyle().
		Foreground(CurrentTheme.Warning)

	taskActiveStyle = lipgloss.NewStyle().
		Foreground(CurrentTheme.Accent)

	successStyle = lipgloss.NewStyle().
		Foreground(CurrentTheme.Success)

	errorStyle = lipgloss.NewStyle().
		Foreground(CurrentTheme.Error)

	cancelledStyle = lipgloss.NewStyle().
		Foreground(CurrentTheme.Warning)
}
