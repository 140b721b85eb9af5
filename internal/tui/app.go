package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ddesk/ddesk/internal/config"
	"github.com/ddesk/ddesk/internal/ddev"
	"github.com/ddesk/ddesk/internal/events"
	"github.com/ddesk/ddesk/internal/ops"
	"github.com/ddesk/ddesk/internal/proc"
)

type model struct {
	svc      *ops.Service
	settings *config.Settings

	projects []ddev.ProjectInfo
	cursor   int

	viewport viewport.Model
	spinner  spinner.Model
	filter   textinput.Model

	filtering bool
	loading   bool

	outputLines []string
	activeTask  string // task id of the streaming task owning the output pane
	activeLabel string // "start mysite", shown next to the spinner

	statusMsg   string
	statusIsErr bool

	pendingDelete string // project awaiting y/n confirmation

	showHelp bool
	helpText string

	width  int
	height int
	ready  bool
}

// Run starts the interactive UI. It is the composition root: the
// registry, runner, service and emitter are constructed here and
// nowhere else.
func Run() error {
	settings, err := config.Load()
	if err != nil {
		settings = config.NewSettings()
	}

	em := NewProgramEmitter()
	reg := proc.NewRegistry()
	run := ddev.NewRunner(reg, em).
		WithBinary(settings.DdevPath).
		WithEnv(settings.EnvSlice())
	svc := ops.NewService(reg, run, em)

	p := tea.NewProgram(
		newModel(svc, settings),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	em.Attach(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newModel(svc *ops.Service, settings *config.Settings) model {
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    80 * time.Millisecond,
	}
	sp.Style = taskActiveStyle

	fi := textinput.New()
	fi.Placeholder = "filter projects"
	fi.Prompt = "/"
	fi.CharLimit = 64

	return model{
		svc:      svc,
		settings: settings,
		spinner:  sp,
		filter:   fi,
		loading:  true,
		helpText: renderHelp(defaultWidth),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.checkInstalled(), m.loadProjects())
}

// visibleProjects applies the hidden-project patterns and the live
// filter to the loaded project list.
func (m model) visibleProjects() []ddev.ProjectInfo {
	var out []ddev.ProjectInfo
	needle := m.filter.Value()
	for _, p := range m.projects {
		if m.settings.IsHidden(p.Name) {
			continue
		}
		if needle != "" && !containsFold(p.Name, needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (m model) selectedProject() (ddev.ProjectInfo, bool) {
	visible := m.visibleProjects()
	if len(visible) == 0 || m.cursor >= len(visible) {
		return ddev.ProjectInfo{}, false
	}
	return visible[m.cursor], true
}

func (m *model) appendOutput(line string) {
	m.outputLines = append(m.outputLines, line)
	if len(m.outputLines) > maxOutputLines {
		m.outputLines = m.outputLines[len(m.outputLines)-maxOutputLines:]
	}
	if m.ready {
		m.viewport.SetContent(joinLines(m.outputLines))
		m.viewport.GotoBottom()
	}
}

func (m *model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}

func (m *model) beginTask(id, label string) {
	m.activeTask = id
	m.activeLabel = label
	m.outputLines = nil
	if m.ready {
		m.viewport.SetContent("")
	}
}

func (m *model) endTask(st events.Status, message string) {
	m.activeTask = ""
	m.activeLabel = ""
	switch st {
	case events.StatusFinished:
		m.setStatus(message, false)
	case events.StatusCancelled:
		m.setStatus(message, false)
	default:
		m.setStatus(message, true)
	}
}
