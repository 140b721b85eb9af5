package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ddesk/ddesk/internal/events"
	"github.com/ddesk/ddesk/internal/ops"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpWidth := m.width - listPaneWidth - 3
		if vpWidth < 20 {
			vpWidth = 20
		}
		vpHeight := m.height - headerHeight - statusBarHeight
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(vpWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = vpWidth
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(joinLines(m.outputLines))
		m.helpText = renderHelp(m.width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case projectsMsg:
		m.loading = false
		if msg.err != nil {
			m.setStatus("Failed to list projects: "+msg.err.Error(), true)
			return m, nil
		}
		m.projects = msg.projects
		if n := len(m.visibleProjects()); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		}
		return m, nil

	case detailsMsg:
		if msg.err != nil {
			m.setStatus("Describe failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.outputLines = nil
		for _, line := range detailLines(msg.details) {
			m.appendOutput(line)
		}
		return m, nil

	case configMsg:
		m.outputLines = nil
		for _, line := range configLines(msg.project, msg.cfg) {
			m.appendOutput(line)
		}
		return m, nil

	case addonsMsg:
		if msg.err != nil {
			m.setStatus("Add-on list failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.outputLines = nil
		m.appendOutput("Add-ons installed in " + msg.project + ":")
		if len(msg.addons) == 0 {
			m.appendOutput("  (none)")
		}
		for _, a := range msg.addons {
			m.appendOutput(fmt.Sprintf("  %s  %s  %s", a.Name, a.Version, a.Repository))
		}
		return m, nil

	case snapshotsMsg:
		if msg.err != nil {
			m.setStatus("Snapshot list failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.outputLines = nil
		m.appendOutput("Snapshots of " + msg.project + ":")
		if len(msg.names) == 0 {
			m.appendOutput("  (none)")
		}
		for _, n := range msg.names {
			m.appendOutput("  " + n)
		}
		return m, nil

	case snapshotDoneMsg:
		if msg.err != nil {
			m.setStatus("Snapshot failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("Snapshot "+msg.action+" for "+msg.project, false)
		}
		return m, nil

	case ddevMissingMsg:
		m.setStatus("ddev is not installed or not in PATH", true)
		return m, nil

	case events.CommandOutput:
		if msg.Stream == events.StreamStderr {
			m.appendOutput(stderrStyle.Render(msg.Line))
		} else {
			m.appendOutput(msg.Line)
		}
		return m, nil

	case events.CommandStatus:
		return m.handleCommandStatus(msg)

	case events.LogLine:
		m.appendOutput(msg.Line)
		return m, nil

	case events.LogStatus:
		if msg.Status == events.StatusStarted {
			m.beginTask(msg.TaskID, "logs "+msg.Project+" ("+msg.Service+")")
			return m, nil
		}
		if msg.Status.Terminal() {
			m.endTask(msg.Status, msg.Message)
		}
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleCommandStatus(msg events.CommandStatus) (tea.Model, tea.Cmd) {
	switch {
	case msg.Status == events.StatusStarted:
		if msg.TaskID != "" {
			m.beginTask(msg.TaskID, msg.Command+" "+msg.Project)
		}
		if msg.Message != "" {
			m.appendOutput(msg.Message)
		}
		return m, nil

	case msg.Status.Terminal():
		m.endTask(msg.Status, terminalLabel(msg))
		// Lifecycle commands change the list's status column.
		return m, m.loadProjects()
	}
	return m, nil
}

func terminalLabel(msg events.CommandStatus) string {
	if msg.Message != "" {
		return msg.Message
	}
	return string(msg.Status)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.pendingDelete != "" {
		switch msg.String() {
		case "y", "Y":
			name := m.pendingDelete
			m.pendingDelete = ""
			m.setStatus("Deleting "+name, false)
			m.svc.DeleteProject(name)
		default:
			m.pendingDelete = ""
			m.setStatus("Delete cancelled", false)
		}
		return m, nil
	}

	if m.filtering {
		switch msg.Type {
		case tea.KeyEsc:
			m.filtering = false
			m.filter.SetValue("")
			m.filter.Blur()
			m.cursor = 0
			return m, nil
		case tea.KeyEnter:
			m.filtering = false
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.cursor = 0
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, nil

	case "esc":
		m.filter.SetValue("")
		m.cursor = 0
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.visibleProjects())-1 {
			m.cursor++
		}
		return m, nil

	case "r":
		m.loading = true
		m.setStatus("Refreshing...", false)
		return m, m.loadProjects()

	case "enter":
		if p, ok := m.selectedProject(); ok {
			return m, m.loadDetails(p)
		}
		return m, nil

	case "s":
		if p, ok := m.selectedProject(); ok {
			m.svc.StartProject(p.Name)
		}
		return m, nil

	case "x":
		if p, ok := m.selectedProject(); ok {
			m.svc.StopProject(p.Name)
		}
		return m, nil

	case "R":
		if p, ok := m.selectedProject(); ok {
			m.svc.RestartProject(p.Name)
		}
		return m, nil

	case "d":
		if p, ok := m.selectedProject(); ok {
			m.pendingDelete = p.Name
		}
		return m, nil

	case "P":
		m.svc.Poweroff()
		return m, nil

	case "l":
		if p, ok := m.selectedProject(); ok {
			m.svc.StreamLogs(p.Name, logOptions(m.settings, false))
		}
		return m, nil

	case "f":
		if p, ok := m.selectedProject(); ok {
			m.svc.StreamLogs(p.Name, logOptions(m.settings, true))
		}
		return m, nil

	case "c":
		if m.activeTask == "" {
			m.setStatus("No task running", false)
			return m, nil
		}
		if err := m.svc.CancelTask(m.activeTask); err != nil {
			m.setStatus(err.Error(), true)
		}
		return m, nil

	case "n":
		if p, ok := m.selectedProject(); ok {
			m.setStatus("Creating snapshot of "+p.Name, false)
			return m, m.takeSnapshot(p.Name)
		}
		return m, nil

	case "N":
		if p, ok := m.selectedProject(); ok {
			return m, m.loadSnapshots(p.Name)
		}
		return m, nil

	case "a":
		if p, ok := m.selectedProject(); ok {
			return m, m.loadAddons(p.Name)
		}
		return m, nil

	case "o":
		if p, ok := m.selectedProject(); ok && p.PrimaryURL != "" {
			if err := ops.OpenURL(p.PrimaryURL); err != nil {
				m.setStatus("Failed to open browser: "+err.Error(), true)
			}
		}
		return m, nil

	case "O":
		if p, ok := m.selectedProject(); ok && p.Approot != "" {
			if err := ops.OpenFolder(p.Approot); err != nil {
				m.setStatus("Failed to open folder: "+err.Error(), true)
			}
		}
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}
