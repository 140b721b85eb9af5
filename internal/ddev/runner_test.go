package ddev

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ddesk/ddesk/internal/events"
	"github.com/ddesk/ddesk/internal/proc"
)

type captureEmitter struct {
	mu  sync.Mutex
	evs []any
}

func (c *captureEmitter) Emit(ev any) {
	c.mu.Lock()
	c.evs = append(c.evs, ev)
	c.mu.Unlock()
}

func (c *captureEmitter) snapshot() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]any{}, c.evs...)
}

func (c *captureEmitter) terminal() *events.CommandStatus {
	for _, ev := range c.snapshot() {
		if st, ok := ev.(events.CommandStatus); ok && st.Status.Terminal() {
			return &st
		}
	}
	return nil
}

func (c *captureEmitter) waitTerminal(t *testing.T) events.CommandStatus {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if st := c.terminal(); st != nil {
			return *st
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no terminal status within 5s")
	return events.CommandStatus{}
}

func newTestRunner(bin string) (*Runner, *proc.Registry, *captureEmitter) {
	reg := proc.NewRegistry()
	em := &captureEmitter{}
	return NewRunner(reg, em).WithBinary(bin), reg, em
}

func TestStream_EmitsOutputAndFinished(t *testing.T) {
	run, reg, em := newTestRunner("/bin/echo")

	id := run.Stream("start", "mysite", "hello", "world")
	if !strings.HasPrefix(id, "proc_") {
		t.Fatalf("unexpected task id %q", id)
	}

	st := em.waitTerminal(t)
	if st.Status != events.StatusFinished {
		t.Fatalf("expected finished, got %+v", st)
	}

	var sawStarted, sawLine bool
	for _, ev := range em.snapshot() {
		switch e := ev.(type) {
		case events.CommandStatus:
			if e.Status == events.StatusStarted {
				sawStarted = true
				if e.TaskID != id {
					t.Errorf("started status should carry the task id, got %q", e.TaskID)
				}
			}
		case events.CommandOutput:
			if e.Line == "hello world" && e.Stream == events.StreamStdout {
				sawLine = true
			}
		}
	}
	if !sawStarted || !sawLine {
		t.Errorf("missing events: started=%v line=%v", sawStarted, sawLine)
	}
	if !reg.IsCancelled(id) {
		t.Error("entry should be gone after completion")
	}
}

func TestStream_ExitFailureEmitsError(t *testing.T) {
	run, _, em := newTestRunner("/bin/false")

	run.Stream("stop", "mysite")
	st := em.waitTerminal(t)
	if st.Status != events.StatusError {
		t.Fatalf("expected error, got %+v", st)
	}
}

func TestStream_SpawnFailureEmitsError(t *testing.T) {
	run, _, em := newTestRunner("/nonexistent/ddev")

	run.Stream("start", "mysite")
	st := em.waitTerminal(t)
	if st.Status != events.StatusError || !strings.Contains(st.Message, "Failed to start command") {
		t.Fatalf("expected spawn error, got %+v", st)
	}
}

func TestStream_CancelKillsAndStaysSilent(t *testing.T) {
	run, reg, em := newTestRunner("/bin/sleep")

	start := time.Now()
	id := run.Stream("start", "mysite", "30")

	// Wait for the handle to be registered, then cancel the way the
	// controller does: remove the entry, kill and reap.
	deadline := time.Now().Add(5 * time.Second)
	for reg.IsCancelled(id) {
		if time.Now().After(deadline) {
			t.Fatal("process never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}
	entry, ok := reg.Cancel(id)
	if !ok || entry.Handle == nil {
		t.Fatalf("expected a live entry, got ok=%v", ok)
	}
	proc.KillAndReap(entry.Handle)

	// The runner observes the missing entry and finishes silently.
	time.Sleep(300 * time.Millisecond)
	if st := em.terminal(); st != nil {
		t.Fatalf("runner must not emit a terminal status after cancel, got %+v", st)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Fatalf("process was not reaped promptly: %v", elapsed)
	}
}

func TestStream_ConcurrentTasksAreIndependent(t *testing.T) {
	reg := proc.NewRegistry()
	em := &captureEmitter{}

	echo := NewRunner(reg, em).WithBinary("/bin/echo")
	slow := NewRunner(reg, em).WithBinary("/bin/sleep")

	slowID := slow.Stream("start", "slow-site", "30")
	echo.Stream("start", "site-a", "a")
	echo.Stream("start", "site-b", "b")

	deadline := time.Now().Add(5 * time.Second)
	for reg.IsCancelled(slowID) {
		if time.Now().After(deadline) {
			t.Fatal("slow process never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}
	entry, ok := reg.Cancel(slowID)
	if !ok {
		t.Fatal("expected live slow entry")
	}
	proc.KillAndReap(entry.Handle)

	// Both echo tasks still finish; the cancelled one stays silent.
	deadline = time.Now().Add(5 * time.Second)
	for {
		finished := map[string]bool{}
		for _, ev := range em.snapshot() {
			if st, okk := ev.(events.CommandStatus); okk && st.Status == events.StatusFinished {
				finished[st.Project] = true
			}
		}
		if finished["site-a"] && finished["site-b"] {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("echo tasks did not finish, got %v", finished)
		}
		time.Sleep(10 * time.Millisecond)
	}
	for _, ev := range em.snapshot() {
		if st, okk := ev.(events.CommandStatus); okk && st.Project == "slow-site" && st.Status.Terminal() {
			t.Fatalf("cancelled task must not get a terminal status from the runner, got %+v", st)
		}
	}
}

func TestRunStep_Results(t *testing.T) {
	run, reg, _ := newTestRunner("/bin/true")

	id := reg.NextID()
	reg.Create(id, "chain", "mysite")
	if res := run.RunStep(id, "chain", "mysite", "/bin/true", nil, ""); res != StepOK {
		t.Errorf("true: got %v, want StepOK", res)
	}
	if res := run.RunStep(id, "chain", "mysite", "/bin/false", nil, ""); res != StepFailed {
		t.Errorf("false: got %v, want StepFailed", res)
	}
	if res := run.RunStep(id, "chain", "mysite", "/nonexistent/bin", nil, ""); res != StepFailed {
		t.Errorf("bad bin: got %v, want StepFailed", res)
	}

	reg.Remove(id)
	if res := run.RunStep(id, "chain", "mysite", "/bin/true", nil, ""); res != StepCancelled {
		t.Errorf("cancelled: got %v, want StepCancelled", res)
	}
}

func TestRunStep_CancelledMidRun(t *testing.T) {
	run, reg, _ := newTestRunner("/bin/true")

	id := reg.NextID()
	reg.Create(id, "chain", "mysite")

	results := make(chan StepResult, 1)
	go func() {
		results <- run.RunStep(id, "chain", "mysite", "/bin/sleep", []string{"30"}, "")
	}()

	// Give the step time to spawn and register its handle.
	time.Sleep(200 * time.Millisecond)
	entry, ok := reg.Cancel(id)
	if !ok || entry.Handle == nil {
		t.Fatalf("expected a live step handle, got ok=%v", ok)
	}
	proc.KillAndReap(entry.Handle)

	select {
	case res := <-results:
		if res != StepCancelled {
			t.Fatalf("got %v, want StepCancelled", res)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("step did not return after cancellation")
	}
}

func TestOutput_Errors(t *testing.T) {
	run, _, _ := newTestRunner("ddev")
	ctx := context.Background()

	if _, err := run.OutputBin(ctx, "/nonexistent/bin"); err == nil {
		t.Error("expected an error for a missing binary")
	}

	out, err := run.OutputBin(ctx, "/bin/echo", "ok")
	if err != nil {
		t.Fatalf("echo failed: %v", err)
	}
	if strings.TrimSpace(out) != "ok" {
		t.Errorf("unexpected output %q", out)
	}

	_, err = run.OutputBin(ctx, "/bin/false")
	if err == nil {
		t.Fatal("expected an error for a failing command")
	}
	var derr *Error
	if !errors.As(err, &derr) || derr.Kind != KindCommandFailed {
		t.Errorf("expected KindCommandFailed, got %v", err)
	}
}
