package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ddesk/ddesk/internal/ddev"
)

const queryTimeout = 30 * time.Second

func (m model) checkInstalled() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()
		if ok, _ := svc.CheckInstalled(ctx); !ok {
			return ddevMissingMsg{}
		}
		return nil
	}
}

func (m model) loadProjects() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()
		projects, err := svc.ListProjects(ctx)
		return projectsMsg{projects: projects, err: err}
	}
}

func (m model) loadDetails(p ddev.ProjectInfo) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()
		details, err := svc.DescribeProject(ctx, p.Name)
		if err != nil {
			// ddev unavailable or the project is broken: fall back to
			// the project's own .ddev/config.yaml.
			if cfg, cerr := ddev.ReadProjectConfig(p.Approot); cerr == nil {
				return configMsg{project: p.Name, cfg: cfg}
			}
			return detailsMsg{err: err}
		}
		return detailsMsg{details: details}
	}
}

func (m model) loadAddons(name string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()
		addons, err := svc.ListInstalledAddons(ctx, name)
		return addonsMsg{project: name, addons: addons, err: err}
	}
}

func (m model) loadSnapshots(name string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()
		names, err := svc.ListSnapshots(ctx, name)
		return snapshotsMsg{project: name, names: names, err: err}
	}
}

func (m model) takeSnapshot(name string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		// Snapshots of large databases take a while.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		_, err := svc.CreateSnapshot(ctx, name, "")
		return snapshotDoneMsg{project: name, action: "created", err: err}
	}
}
