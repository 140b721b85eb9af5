package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ddesk/ddesk/internal/config"
	"github.com/ddesk/ddesk/internal/ddev"
	"github.com/ddesk/ddesk/internal/events"
	"github.com/ddesk/ddesk/internal/ops"
	"github.com/ddesk/ddesk/internal/proc"
)

func testModel() model {
	reg := proc.NewRegistry()
	run := ddev.NewRunner(reg, events.Discard).WithBinary("/bin/true")
	svc := ops.NewService(reg, run, events.Discard)
	settings := config.NewSettings()
	m := newModel(svc, settings)
	m.width = 100
	m.height = 30
	return m
}

func TestRenderHelp(t *testing.T) {
	out := renderHelp(80)
	if !strings.Contains(out, "ddesk") {
		t.Errorf("help should mention the app name, got %q", out[:80])
	}
}

func TestVisibleProjects_FilterAndHidden(t *testing.T) {
	m := testModel()
	m.settings.HiddenProjects = []string{"_*"}
	m.projects = []ddev.ProjectInfo{
		{Name: "blog"},
		{Name: "_scratch"},
		{Name: "shop"},
	}

	visible := m.visibleProjects()
	if len(visible) != 2 {
		t.Fatalf("hidden pattern should drop _scratch, got %v", visible)
	}

	m.filter.SetValue("BL")
	visible = m.visibleProjects()
	if len(visible) != 1 || visible[0].Name != "blog" {
		t.Errorf("filter should be case-insensitive, got %v", visible)
	}
}

func TestAppendOutput_Capped(t *testing.T) {
	m := testModel()
	for i := 0; i < maxOutputLines+50; i++ {
		m.appendOutput("line")
	}
	if len(m.outputLines) != maxOutputLines {
		t.Errorf("output should be capped at %d lines, got %d", maxOutputLines, len(m.outputLines))
	}
}

func TestUpdate_CommandStatusLifecycle(t *testing.T) {
	m := testModel()

	next, _ := m.Update(events.CommandStatus{
		Command: "start",
		Project: "blog",
		Status:  events.StatusStarted,
		TaskID:  "proc_1",
	})
	m = next.(model)
	if m.activeTask != "proc_1" {
		t.Fatalf("started status should set the active task, got %q", m.activeTask)
	}

	next, _ = m.Update(events.CommandStatus{
		Command: "start",
		Project: "blog",
		Status:  events.StatusFinished,
		Message: "Command completed successfully",
	})
	m = next.(model)
	if m.activeTask != "" {
		t.Error("terminal status should clear the active task")
	}
	if m.statusMsg != "Command completed successfully" || m.statusIsErr {
		t.Errorf("unexpected status line %q (err=%v)", m.statusMsg, m.statusIsErr)
	}
}

func TestUpdate_DeleteConfirmation(t *testing.T) {
	m := testModel()
	m.projects = []ddev.ProjectInfo{{Name: "blog"}}

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = next.(model)
	if m.pendingDelete != "blog" {
		t.Fatalf("d should arm delete confirmation, got %q", m.pendingDelete)
	}

	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = next.(model)
	if m.pendingDelete != "" {
		t.Error("n should disarm the confirmation")
	}
	if m.statusMsg != "Delete cancelled" {
		t.Errorf("unexpected status %q", m.statusMsg)
	}
}

func TestView_RendersProjectList(t *testing.T) {
	m := testModel()
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = sized.(model)
	m.loading = false
	m.projects = []ddev.ProjectInfo{
		{Name: "blog", Status: "running", Type: "drupal11"},
		{Name: "shop", Status: "stopped", Type: "php"},
	}

	view := m.View()
	if !strings.Contains(view, "blog") || !strings.Contains(view, "shop") {
		t.Error("view should list both projects")
	}
	if !strings.Contains(view, "ddesk") {
		t.Error("view should carry the header")
	}
}
