// Package ddev spawns the ddev CLI (and its helper tools) as child
// processes, streams their output to the attached emitter line by
// line, and keeps every live process registered for cancellation.
package ddev

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/ddesk/ddesk/internal/events"
	"github.com/ddesk/ddesk/internal/log"
	"github.com/ddesk/ddesk/internal/proc"
)

// Runner executes ddev commands. Synchronous methods block until the
// process exits and return its output; streaming methods return a task
// identifier immediately and push output and status through the
// emitter from a per-task goroutine.
type Runner struct {
	bin  string
	path string
	env  []string // extra KEY=VALUE pairs for spawned processes
	reg  *proc.Registry
	em   events.Emitter
}

// NewRunner resolves the ddev binary and builds a runner wired to the
// given registry and emitter.
func NewRunner(reg *proc.Registry, em events.Emitter) *Runner {
	return &Runner{bin: FindBinary(), path: EnhancedPath(), reg: reg, em: em}
}

// WithBinary overrides the resolved ddev binary. Used by the settings
// layer and by tests.
func (r *Runner) WithBinary(bin string) *Runner {
	if bin != "" {
		r.bin = bin
	}
	return r
}

// WithEnv adds KEY=VALUE pairs to the environment of every spawned
// process.
func (r *Runner) WithEnv(env []string) *Runner {
	r.env = append(r.env, env...)
	return r
}

// Bin returns the resolved ddev binary path.
func (r *Runner) Bin() string { return r.bin }

// Registry returns the process registry this runner registers live
// handles in.
func (r *Runner) Registry() *proc.Registry { return r.reg }

func (r *Runner) environ() []string {
	env := append([]string{}, os.Environ()...)
	env = append(env, "PATH="+r.path)
	return append(env, r.env...)
}

// Output runs a ddev command to completion and returns its stdout.
// Used for read-only queries with no cancellation surface.
func (r *Runner) Output(ctx context.Context, args ...string) (string, error) {
	return r.OutputBin(ctx, r.bin, args...)
}

// OutputBin is Output for an arbitrary binary (composer, wp), sharing
// the runner's enhanced environment.
func (r *Runner) OutputBin(ctx context.Context, bin string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Env = r.environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			return "", commandFailed("%s", strings.TrimSpace(stderr.String()))
		case errors.Is(err, exec.ErrNotFound):
			return "", notInstalled()
		default:
			return "", ioError("%v", err)
		}
	}
	return stdout.String(), nil
}

// JSON runs a ddev command with --json-output and decodes the raw
// payload out of ddev's response envelope.
func JSON[T any](ctx context.Context, r *Runner, args ...string) (T, error) {
	var zero T
	full := append([]string{"--json-output"}, args...)
	out, err := r.Output(ctx, full...)
	if err != nil {
		return zero, err
	}
	var resp jsonResponse[T]
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		return zero, parseError("%v", err)
	}
	return resp.Raw, nil
}

// Stream runs one ddev command as a cancellable background task,
// streaming its output through the emitter. It returns the task
// identifier immediately; the "started" status has already been
// emitted when it returns. Exactly one terminal status follows, unless
// the task is cancelled, in which case the cancellation controller
// owns the terminal event.
func (r *Runner) Stream(command, project string, args ...string) string {
	return r.StreamInDir("", command, project, args...)
}

// StreamInDir is Stream with an explicit working directory.
func (r *Runner) StreamInDir(dir, command, project string, args ...string) string {
	id := r.reg.NextID()

	r.em.Emit(events.CommandStatus{
		Command: command,
		Project: project,
		Status:  events.StatusStarted,
		Message: "Running: ddev " + strings.Join(args, " "),
		TaskID:  id,
	})

	go r.runStreaming(id, dir, command, project, args)
	return id
}

func (r *Runner) runStreaming(id, dir, command, project string, args []string) {
	cmd := r.newCmd(r.bin, args, dir)

	stdout, stderr, err := pipePair(cmd)
	if err == nil {
		err = cmd.Start()
	}
	if err != nil {
		log.Logger().Warn("spawn failed",
			zap.String("command", command), zap.Error(err))
		r.em.Emit(events.CommandStatus{
			Command: command,
			Project: project,
			Status:  events.StatusError,
			Message: fmt.Sprintf("Failed to start command: %v", err),
		})
		return
	}

	// Register before reading any output: a cancel arriving from here
	// on is guaranteed to see the live handle.
	r.reg.Register(id, cmd, command, project)

	r.pumpBoth(stdout, stderr, func(line, stream string) {
		r.em.Emit(events.CommandOutput{Line: line, Stream: stream})
	})

	// Taking the handle and ending the task are one atomic step, so a
	// racing cancel either got the entry first (and owns the terminal
	// event) or finds nothing.
	handle, ok := r.reg.Complete(id)
	if !ok {
		return
	}

	if err := handle.Wait(); err != nil {
		r.em.Emit(events.CommandStatus{
			Command: command,
			Project: project,
			Status:  events.StatusError,
			Message: "Command failed",
		})
		return
	}
	r.em.Emit(events.CommandStatus{
		Command: command,
		Project: project,
		Status:  events.StatusFinished,
		Message: "Command completed successfully",
	})
}

// StepResult is the outcome of one step of a multi-step task.
type StepResult int

const (
	StepOK StepResult = iota
	StepFailed
	StepCancelled
)

// RunStep runs one external command as a step of a multi-step task
// whose registry entry already exists under id. It blocks until the
// step finishes and emits only output lines; step-level status events
// are the chain driver's responsibility. A cancellation arriving
// before the spawn, or while the process runs, yields StepCancelled
// and the chain must stop silently.
func (r *Runner) RunStep(id, command, project, bin string, args []string, dir string) StepResult {
	if r.reg.IsCancelled(id) {
		return StepCancelled
	}

	cmd := r.newCmd(bin, args, dir)

	stdout, stderr, err := pipePair(cmd)
	if err == nil {
		err = cmd.Start()
	}
	if err != nil {
		r.em.Emit(events.CommandOutput{
			Line:   fmt.Sprintf("Failed to start %s: %v", bin, err),
			Stream: events.StreamStderr,
		})
		return StepFailed
	}

	r.reg.Register(id, cmd, command, project)

	r.pumpBoth(stdout, stderr, func(line, stream string) {
		r.em.Emit(events.CommandOutput{Line: line, Stream: stream})
	})

	handle, ok := r.reg.Take(id)
	if !ok {
		if r.reg.IsCancelled(id) {
			return StepCancelled
		}
		// Entry present but the handle was already taken. Nothing else
		// waits on step handles, so treat the step as done.
		return StepOK
	}

	if err := handle.Wait(); err != nil {
		return StepFailed
	}
	return StepOK
}

// newCmd builds a child process with the runner's environment. Each
// child gets its own process group so cancellation can take out any
// helpers it forked.
func (r *Runner) newCmd(bin string, args []string, dir string) *exec.Cmd {
	cmd := exec.Command(bin, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Env = r.environ()
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	return cmd
}

// pipePair captures stdout and stderr via pipes. Inheriting them is
// never safe here: ddev forks long-lived helpers that would keep an
// inherited descriptor open and hang the parent.
func pipePair(cmd *exec.Cmd) (io.ReadCloser, io.ReadCloser, error) {
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, nil, err
	}
	return stdout, stderr, nil
}

// pumpBoth drains stdout and stderr concurrently, one line at a time,
// and returns only when both streams hit end-of-stream. Line order is
// preserved within a stream; no ordering holds across the two. Read
// errors stop that stream's reader and are otherwise swallowed; a
// bad line must not abort the run.
func (r *Runner) pumpBoth(stdout, stderr io.Reader, emit func(line, stream string)) {
	var wg sync.WaitGroup
	wg.Add(2)
	go pumpLines(stdout, events.StreamStdout, emit, &wg)
	go pumpLines(stderr, events.StreamStderr, emit, &wg)
	wg.Wait()
}

func pumpLines(rd io.Reader, stream string, emit func(line, stream string), wg *sync.WaitGroup) {
	defer wg.Done()
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		emit(sc.Text(), stream)
	}
}
