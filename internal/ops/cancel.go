package ops

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ddesk/ddesk/internal/events"
	"github.com/ddesk/ddesk/internal/log"
	"github.com/ddesk/ddesk/internal/proc"
)

// CancelTask forcibly terminates the task with the given identifier.
// The registry entry is removed atomically, any live process is killed
// and reaped, and exactly one "cancelled" status is emitted with the
// task's original labels. Runners observe the removal and finish
// silently, so no competing terminal event can follow.
//
// If the task no longer exists (it completed or was already cancelled
// in a race with the user's click), an error is returned for the UI to
// display and nothing else happens.
func (s *Service) CancelTask(id string) error {
	entry, ok := s.reg.Cancel(id)
	if !ok {
		return fmt.Errorf("task %s not found or already completed", id)
	}

	if entry.Handle != nil {
		proc.KillAndReap(entry.Handle)
	}

	log.Logger().Info("task cancelled",
		zap.String("id", id), zap.String("command", entry.Command))

	s.em.Emit(events.CommandStatus{
		Command: entry.Command,
		Project: entry.Project,
		Status:  events.StatusCancelled,
		Message: "Command was cancelled by user",
		TaskID:  id,
	})
	return nil
}
