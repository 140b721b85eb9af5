// Package ops implements the operations the UI can request: project
// lifecycle, project creation, databases, snapshots, add-ons, logs,
// and task cancellation. Each operation builds the argument list for
// the external CLI and drives the runner; cancellable operations
// return a task identifier immediately, read-only queries block.
package ops

import (
	"github.com/ddesk/ddesk/internal/ddev"
	"github.com/ddesk/ddesk/internal/events"
	"github.com/ddesk/ddesk/internal/proc"
)

// Service is the operation request boundary. Construct one per
// application with NewService and share it between the UI and the
// non-interactive subcommands.
type Service struct {
	reg *proc.Registry
	run *ddev.Runner
	em  events.Emitter
}

// NewService wires a service to its registry, runner and emitter.
func NewService(reg *proc.Registry, run *ddev.Runner, em events.Emitter) *Service {
	return &Service{reg: reg, run: run, em: em}
}

// Runner exposes the underlying runner for callers that need direct
// access (the logs subcommand passes LogOptions through).
func (s *Service) Runner() *ddev.Runner { return s.run }
