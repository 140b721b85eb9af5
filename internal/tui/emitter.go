package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramEmitter forwards operation events into a running bubbletea
// program as messages. Events emitted before Attach are buffered and
// flushed in order on attach, so operations started during program
// construction lose nothing.
type ProgramEmitter struct {
	mu      sync.Mutex
	program *tea.Program
	backlog []any
}

func NewProgramEmitter() *ProgramEmitter {
	return &ProgramEmitter{}
}

// Attach binds the emitter to a program and flushes buffered events.
func (e *ProgramEmitter) Attach(p *tea.Program) {
	e.mu.Lock()
	e.program = p
	backlog := e.backlog
	e.backlog = nil
	e.mu.Unlock()

	for _, ev := range backlog {
		p.Send(ev)
	}
}

// Emit delivers one event. Safe to call from any goroutine.
func (e *ProgramEmitter) Emit(ev any) {
	e.mu.Lock()
	p := e.program
	if p == nil {
		e.backlog = append(e.backlog, ev)
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()
	p.Send(ev)
}
