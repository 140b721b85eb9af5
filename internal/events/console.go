package events

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleEmitter writes events as plain text lines, for non-interactive
// subcommands that stream a task's output straight to the terminal.
type ConsoleEmitter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleEmitter returns an emitter writing to w.
func NewConsoleEmitter(w io.Writer) *ConsoleEmitter {
	return &ConsoleEmitter{w: w}
}

func (c *ConsoleEmitter) Emit(ev any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e := ev.(type) {
	case CommandOutput:
		fmt.Fprintln(c.w, e.Line)
	case CommandStatus:
		if e.Message != "" {
			fmt.Fprintf(c.w, "[%s] %s\n", e.Status, e.Message)
		} else {
			fmt.Fprintf(c.w, "[%s] %s %s\n", e.Status, e.Command, e.Project)
		}
	case LogLine:
		fmt.Fprintln(c.w, e.Line)
	case LogStatus:
		if e.Message != "" {
			fmt.Fprintf(c.w, "[%s] %s\n", e.Status, e.Message)
		}
	}
}
