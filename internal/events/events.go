// Package events defines the payloads pushed from running operations to
// whatever front-end is attached (the TUI program or plain stdout).
// Delivery is push-only and fire-and-forget: emitters never block on a
// consumer and never report delivery failure back to the operation.
package events

// Status is the lifecycle tag carried by status events.
type Status string

const (
	StatusStarted   Status = "started"
	StatusFinished  Status = "finished"
	StatusError     Status = "error"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether s ends a task's event stream.
func (s Status) Terminal() bool {
	return s == StatusFinished || s == StatusError || s == StatusCancelled
}

// Origin stream tags for output lines.
const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)

// CommandOutput is one line of subprocess output.
type CommandOutput struct {
	Line   string `json:"line"`
	Stream string `json:"stream"`
}

// CommandStatus reports a task lifecycle transition. TaskID is set on
// the "started" transition only, so the consumer can correlate later
// events and request cancellation.
type CommandStatus struct {
	Command string `json:"command"`
	Project string `json:"project"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	TaskID  string `json:"task_id,omitempty"`
}

// LogLine is one line from a `ddev logs` stream, tagged with the
// project and service it came from.
type LogLine struct {
	Line    string `json:"line"`
	Stream  string `json:"stream"`
	Project string `json:"project"`
	Service string `json:"service"`
}

// LogStatus reports the lifecycle of a log stream.
type LogStatus struct {
	Project string `json:"project"`
	Service string `json:"service"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	TaskID  string `json:"task_id,omitempty"`
}

// Emitter is the push boundary between running operations and the UI.
// Emit must be safe to call from any goroutine and must not block on
// the consumer; if the consumer is slow, events queue or drop at the
// transport's discretion.
type Emitter interface {
	Emit(ev any)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(ev any)

func (f EmitterFunc) Emit(ev any) { f(ev) }

// Discard is an Emitter that drops every event.
var Discard Emitter = EmitterFunc(func(any) {})
