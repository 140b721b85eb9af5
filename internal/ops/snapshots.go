package ops

import (
	"context"
	"strings"
)

// ListSnapshots returns the names of a project's database snapshots,
// newest last, as reported by `ddev snapshot --list`.
func (s *Service) ListSnapshots(ctx context.Context, project string) ([]string, error) {
	out, err := s.run.Output(ctx, "snapshot", "--list", project)
	if err != nil {
		return nil, err
	}
	return parseSnapshotList(out), nil
}

// parseSnapshotList extracts snapshot names from the human-readable
// `ddev snapshot --list` output. ddev prints one name per line after a
// header sentence; anything that still reads like prose is skipped.
func parseSnapshotList(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, " ") {
			continue
		}
		names = append(names, line)
	}
	return names
}

// CreateSnapshot takes a snapshot of a project's database. An empty
// name lets ddev generate a timestamped one. Blocks until done.
func (s *Service) CreateSnapshot(ctx context.Context, project, name string) (string, error) {
	args := []string{"snapshot"}
	if name != "" {
		args = append(args, "--name", name)
	}
	args = append(args, project)
	return s.run.Output(ctx, args...)
}

// RestoreSnapshot restores a named snapshot into a project's database.
// Blocks until done.
func (s *Service) RestoreSnapshot(ctx context.Context, project, name string) (string, error) {
	return s.run.Output(ctx, "snapshot", "restore", name, project)
}

// DeleteSnapshot removes a named snapshot. Blocks until done.
func (s *Service) DeleteSnapshot(ctx context.Context, project, name string) (string, error) {
	return s.run.Output(ctx, "snapshot", "--cleanup", "--name", name, project)
}
