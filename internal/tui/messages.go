package tui

import "github.com/ddesk/ddesk/internal/ddev"

type (
	projectsMsg struct {
		projects []ddev.ProjectInfo
		err      error
	}

	detailsMsg struct {
		details ddev.ProjectDetails
		err     error
	}

	// configMsg carries a project's on-disk config, used when ddev
	// itself cannot be queried.
	configMsg struct {
		project string
		cfg     *ddev.ProjectConfig
	}

	addonsMsg struct {
		project string
		addons  []ddev.InstalledAddon
		err     error
	}

	snapshotsMsg struct {
		project string
		names   []string
		err     error
	}

	snapshotDoneMsg struct {
		project string
		action  string
		err     error
	}

	ddevMissingMsg struct{}
)
