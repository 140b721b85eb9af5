package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ddesk/ddesk/internal/config"
	"github.com/ddesk/ddesk/internal/ddev"
)

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.helpText
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	list := m.renderProjectList()
	output := m.viewport.View()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, " │ ", output))

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m model) renderHeader() string {
	title := titleStyle.Render("ddesk")
	sub := hintStyle.Render("  DDEV projects")
	line := separatorStyle.Render(strings.Repeat("─", max(0, m.width)))
	return title + sub + "\n" + line
}

func (m model) renderProjectList() string {
	visible := m.visibleProjects()
	height := m.height - headerHeight - statusBarHeight

	var rows []string
	if m.loading {
		rows = append(rows, hintStyle.Render("loading..."))
	} else if len(visible) == 0 {
		rows = append(rows, hintStyle.Render("no projects"))
	}

	for i, p := range visible {
		if len(rows) >= height {
			break
		}
		rows = append(rows, m.renderProjectRow(i, p))
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return lipgloss.NewStyle().Width(listPaneWidth).Render(strings.Join(rows, "\n"))
}

func (m model) renderProjectRow(i int, p ddev.ProjectInfo) string {
	marker := statusMarker(p.Status)
	name := runewidth.Truncate(p.Name, listPaneWidth-12, "…")
	ptype := projectTypeStyle.Render(runewidth.Truncate(p.Type, 8, "…"))
	row := fmt.Sprintf("%s %-*s %s", marker, listPaneWidth-12, name, ptype)

	if i == m.cursor && !m.filtering {
		return selectedRowStyle.Render(runewidth.Truncate(fmt.Sprintf("● %s %s", p.Name, p.Type), listPaneWidth, "…"))
	}
	return row
}

func statusMarker(status string) string {
	switch status {
	case "running":
		return runningStyle.Render("●")
	case "stopped":
		return stoppedStyle.Render("○")
	case "paused":
		return pausedStyle.Render("◐")
	default:
		return hintStyle.Render("·")
	}
}

func (m model) renderStatusBar() string {
	line := separatorStyle.Render(strings.Repeat("─", max(0, m.width)))

	if m.filtering {
		return line + "\n" + m.filter.View()
	}
	if m.pendingDelete != "" {
		return line + "\n" + errorStyle.Render("Delete "+m.pendingDelete+"? (y/n)")
	}
	if m.activeTask != "" {
		return line + "\n" + m.spinner.View() + " " +
			taskActiveStyle.Render(m.activeLabel) +
			hintStyle.Render("  (c to cancel)")
	}

	status := m.statusMsg
	switch {
	case status == "":
		status = hintStyle.Render("s start · x stop · R restart · l logs · d delete · ? help · q quit")
	case m.statusIsErr:
		status = errorStyle.Render(status)
	default:
		status = statusBarStyle.Render(status)
	}
	return line + "\n" + status
}

// detailLines flattens a describe payload into the output pane.
func detailLines(d ddev.ProjectDetails) []string {
	lines := []string{
		titleStyle.Render(d.Name) + "  " + statusMarker(d.Status) + " " + d.Status,
		"type: " + d.Type,
		"root: " + d.Approot,
		"url:  " + d.PrimaryURL,
		fmt.Sprintf("php %s · %s · node %s", d.PHPVersion, d.WebserverType, d.NodeJSVersion),
	}
	if d.DBInfo != nil {
		lines = append(lines, fmt.Sprintf("db:   %s %s (port %d)",
			d.DBInfo.Type, d.DBInfo.Version, d.DBInfo.PublishedPort))
	}
	if len(d.Services) > 0 {
		lines = append(lines, "", "services:")
		for name, svc := range d.Services {
			lines = append(lines, fmt.Sprintf("  %-10s %-8s %s", name, svc.Status, svc.Image))
		}
	}
	return lines
}

// configLines renders the .ddev/config.yaml fallback view.
func configLines(project string, cfg *ddev.ProjectConfig) []string {
	lines := []string{
		titleStyle.Render(project) + hintStyle.Render("  (from .ddev/config.yaml)"),
		"type: " + cfg.Type,
		fmt.Sprintf("php %s · %s · node %s", cfg.PHPVersion, cfg.WebserverType, cfg.NodeJSVersion),
	}
	if cfg.Database.Type != "" {
		lines = append(lines, "db:   "+cfg.Database.Type+" "+cfg.Database.Version)
	}
	if cfg.Docroot != "" {
		lines = append(lines, "docroot: "+cfg.Docroot)
	}
	return lines
}

func logOptions(settings *config.Settings, follow bool) ddev.LogOptions {
	return ddev.LogOptions{Tail: settings.DefaultLogTail, Follow: follow}
}

func joinLines(lines []string) string { return strings.Join(lines, "\n") }

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
