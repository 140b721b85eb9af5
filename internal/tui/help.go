package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# ddesk

Terminal UI for DDEV.

## Projects

| Key | Action |
|-----|--------|
| up/k, down/j | move selection |
| enter | describe project |
| s | start |
| x | stop |
| R | restart |
| d | delete (y/n confirm) |
| P | power off all projects |
| o | open primary URL |
| O | open project folder |
| r | refresh list |
| / | filter, esc to clear |

## Tasks

| Key | Action |
|-----|--------|
| c | cancel the running task |
| l | show logs |
| f | follow logs (cancel with c) |

## Data

| Key | Action |
|-----|--------|
| n | take a database snapshot |
| N | list snapshots |
| a | list installed add-ons |

Press any key to close.
`

const minWrapWidth = 40

// renderHelp renders the help overlay at the given terminal width.
func renderHelp(width int) string {
	wrapWidth := max(width-4, minWrapWidth)

	var style ansi.StyleConfig
	if lipgloss.HasDarkBackground() {
		style = styles.DarkStyleConfig
	} else {
		style = styles.LightStyleConfig
	}
	uintPtr := func(u uint) *uint { return &u }
	style.Document.Margin = uintPtr(0)
	style.Paragraph.Margin = uintPtr(0)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
