package ops

import (
	"context"
	"fmt"

	"github.com/ddesk/ddesk/internal/ddev"
	"github.com/ddesk/ddesk/internal/events"
)

// ListProjects returns all registered ddev projects.
func (s *Service) ListProjects(ctx context.Context) ([]ddev.ProjectInfo, error) {
	return ddev.JSON[[]ddev.ProjectInfo](ctx, s.run, "list")
}

// DescribeProject returns detailed information for one project.
func (s *Service) DescribeProject(ctx context.Context, name string) (ddev.ProjectDetails, error) {
	return ddev.JSON[ddev.ProjectDetails](ctx, s.run, "describe", name)
}

// StartProject starts a project's containers. Returns the task id.
func (s *Service) StartProject(name string) string {
	return s.run.Stream("start", name, "start", name)
}

// StopProject stops a project's containers. Returns the task id.
func (s *Service) StopProject(name string) string {
	return s.run.Stream("stop", name, "stop", name)
}

// RestartProject restarts a project. Returns the task id.
func (s *Service) RestartProject(name string) string {
	return s.run.Stream("restart", name, "restart", name)
}

// Poweroff stops all projects and the router. Returns the task id.
func (s *Service) Poweroff() string {
	return s.run.Stream("poweroff", "all", "poweroff")
}

// DeleteProject removes a project's containers and registration,
// keeping its files. Returns the task id.
func (s *Service) DeleteProject(name string) string {
	return s.run.Stream("delete", name, "delete", "--omit-snapshot", "--yes", name)
}

// ChangePHPVersion runs `ddev config --php-version=X.Y` followed by a
// restart, as one cancellable task. Returns the task id.
func (s *Service) ChangePHPVersion(name, approot, version string) string {
	return s.changeConfig(name, approot, "php-version", version, "change-php",
		fmt.Sprintf("PHP version changed to %s successfully", version))
}

// ChangeNodeJSVersion runs `ddev config --nodejs-version=X` followed
// by a restart, as one cancellable task. Returns the task id.
func (s *Service) ChangeNodeJSVersion(name, approot, version string) string {
	return s.changeConfig(name, approot, "nodejs-version", version, "change-nodejs",
		fmt.Sprintf("Node.js version changed to %s successfully", version))
}

// changeConfig is the two-step chain shared by every config change
// that requires a restart. The registry entry is created before the
// first spawn so the task is cancellable from the moment its id is
// handed out; between the steps the entry exists with no handle and a
// cancel simply removes it, which the next step's pre-check observes.
func (s *Service) changeConfig(name, approot, flag, value, commandName, successMsg string) string {
	id := s.reg.NextID()
	s.reg.Create(id, commandName, name)

	s.em.Emit(events.CommandStatus{
		Command: commandName,
		Project: name,
		Status:  events.StatusStarted,
		Message: fmt.Sprintf("Changing %s to %s", flag, value),
		TaskID:  id,
	})

	go func() {
		configArg := "--" + flag + "=" + value

		s.em.Emit(events.CommandOutput{
			Line:   "Running: ddev config " + configArg,
			Stream: events.StreamStdout,
		})

		switch s.run.RunStep(id, commandName, name, s.run.Bin(), []string{"config", configArg}, approot) {
		case ddev.StepCancelled:
			return
		case ddev.StepFailed:
			s.finishError(id, commandName, name, "Failed to change "+flag)
			return
		}

		if s.reg.IsCancelled(id) {
			return
		}

		s.em.Emit(events.CommandOutput{
			Line:   "Restarting project...",
			Stream: events.StreamStdout,
		})

		switch s.run.RunStep(id, commandName, name, s.run.Bin(), []string{"restart"}, approot) {
		case ddev.StepCancelled:
			return
		case ddev.StepFailed:
			s.finishError(id, commandName, name, "Failed to restart project")
			return
		}

		s.finishOK(id, commandName, name, successMsg)
	}()

	return id
}

// finishOK removes the chain's registry entry and emits the single
// "finished" terminal event.
func (s *Service) finishOK(id, command, project, message string) {
	s.reg.Remove(id)
	s.em.Emit(events.CommandStatus{
		Command: command,
		Project: project,
		Status:  events.StatusFinished,
		Message: message,
	})
}

// finishError removes the chain's registry entry and emits the single
// "error" terminal event.
func (s *Service) finishError(id, command, project, message string) {
	s.reg.Remove(id)
	s.em.Emit(events.CommandStatus{
		Command: command,
		Project: project,
		Status:  events.StatusError,
		Message: message,
	})
}
