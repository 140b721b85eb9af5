package ops

import "github.com/ddesk/ddesk/internal/ddev"

// StreamLogs starts a cancellable log stream for one project service
// and returns the task id.
func (s *Service) StreamLogs(project string, opts ddev.LogOptions) string {
	return s.run.StreamLogs(project, opts)
}
