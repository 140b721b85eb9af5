package ddev

import (
	"fmt"
	"strconv"

	"github.com/ddesk/ddesk/internal/events"
)

// LogOptions controls a `ddev logs` stream.
type LogOptions struct {
	Service    string // container to read, e.g. "web" or "db"
	Follow     bool   // keep the stream open until cancelled
	Tail       int    // number of trailing lines, 0 for ddev's default
	Timestamps bool
}

// StreamLogs starts a cancellable log stream for one project service.
// Lines arrive as LogLine events tagged with project and service;
// lifecycle transitions arrive as LogStatus events. With Follow set
// the underlying process runs until the task is cancelled.
func (r *Runner) StreamLogs(project string, opts LogOptions) string {
	id := r.reg.NextID()

	service := opts.Service
	if service == "" {
		service = "web"
	}

	args := []string{"logs", "-s", service}
	if opts.Follow {
		args = append(args, "-f")
	}
	if opts.Tail > 0 {
		args = append(args, "--tail="+strconv.Itoa(opts.Tail))
	}
	if opts.Timestamps {
		args = append(args, "-t")
	}
	args = append(args, project)

	r.em.Emit(events.LogStatus{
		Project: project,
		Service: service,
		Status:  events.StatusStarted,
		Message: fmt.Sprintf("Getting logs for %s (%s)", project, service),
		TaskID:  id,
	})

	go r.runLogStream(id, project, service, args)
	return id
}

func (r *Runner) runLogStream(id, project, service string, args []string) {
	cmd := r.newCmd(r.bin, args, "")

	stdout, stderr, err := pipePair(cmd)
	if err == nil {
		err = cmd.Start()
	}
	if err != nil {
		r.em.Emit(events.LogStatus{
			Project: project,
			Service: service,
			Status:  events.StatusError,
			Message: fmt.Sprintf("Failed to get logs: %v", err),
		})
		return
	}

	r.reg.Register(id, cmd, "logs", project)

	r.pumpBoth(stdout, stderr, func(line, stream string) {
		r.em.Emit(events.LogLine{Line: line, Stream: stream, Project: project, Service: service})
	})

	handle, ok := r.reg.Complete(id)
	if !ok {
		return
	}

	if err := handle.Wait(); err != nil {
		r.em.Emit(events.LogStatus{
			Project: project,
			Service: service,
			Status:  events.StatusError,
			Message: "Log streaming failed",
		})
		return
	}
	r.em.Emit(events.LogStatus{
		Project: project,
		Service: service,
		Status:  events.StatusFinished,
		Message: "Log streaming completed",
	})
}
