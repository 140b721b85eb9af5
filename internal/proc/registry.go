// Package proc tracks the live state of every cancellable task: which
// tasks are still running and which OS process, if any, must be killed
// to stop them. The registry is the single source of truth for
// cancellation: a task is cancellable exactly as long as its entry is
// present, and removal of the entry IS the cancellation signal. There
// is no separate flag anywhere.
package proc

import (
	"fmt"
	"os/exec"
	"sync"
	"sync/atomic"
)

// Entry pairs a task identifier with an optional live process handle
// and the labels used for UI correlation. The handle is nil between
// sequential steps of a multi-step task, before a process has been
// spawned, or after it was taken for waiting.
type Entry struct {
	Handle  *exec.Cmd
	Command string
	Project string
}

// Registry is a concurrency-safe map from task ID to Entry. All
// operations hold the lock for a single map access; none of them
// perform process I/O while locked. Construct one per application at
// the composition root and inject it; tests build their own isolated
// instances.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*Entry
	counter atomic.Uint64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// NextID issues a unique, monotonically increasing task identifier.
// IDs are never reused for the lifetime of the process.
func (r *Registry) NextID() string {
	return fmt.Sprintf("proc_%d", r.counter.Add(1))
}

// Create inserts an entry with no live handle. Used when a multi-step
// task begins before its first external process has been spawned.
func (r *Registry) Create(id, command, project string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &Entry{Command: command, Project: project}
}

// Register inserts or overwrites an entry carrying a live handle.
// Called immediately after spawn, before any output is read, so that a
// cancellation arriving after spawn is guaranteed to see the handle.
func (r *Registry) Register(id string, handle *exec.Cmd, command, project string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &Entry{Handle: handle, Command: command, Project: project}
}

// Take removes and returns the handle from an existing entry, leaving
// the entry present with no handle. It returns false if the entry does
// not exist (the task was cancelled) or the handle was already taken.
func (r *Registry) Take(id string) (*exec.Cmd, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.Handle == nil {
		return nil, false
	}
	h := e.Handle
	e.Handle = nil
	return h, true
}

// Complete removes the entry outright and returns its handle. Used by
// the single-shot completion path, where taking the handle and ending
// the task are one atomic step, so a racing cancel cannot produce a
// second terminal event. ok is false if the
// entry was already gone (cancelled) or carried no handle.
func (r *Registry) Complete(id string) (*exec.Cmd, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	delete(r.entries, id)
	if e.Handle == nil {
		return nil, false
	}
	return e.Handle, true
}

// IsCancelled reports whether no entry exists for id. This is the
// universal cancellation check used between steps and before spawning.
func (r *Registry) IsCancelled(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[id]
	return !ok
}

// Remove deletes the entry unconditionally. Called on definitive
// completion (success or terminal failure) of a multi-step task.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Cancel atomically removes and returns the entry so the caller can
// kill any live handle and emit the cancelled status with the entry's
// original labels. ok is false if no entry exists: the task already
// finished or was already cancelled.
func (r *Registry) Cancel(id string) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return Entry{}, false
	}
	delete(r.entries, id)
	return *e, true
}
