package proc

import (
	"os/exec"
	"sync"
	"testing"
)

func TestRegistry_NextIDUnique(t *testing.T) {
	r := NewRegistry()

	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := r.NextID()
		if ids[id] {
			t.Fatalf("duplicate ID issued: %s", id)
		}
		ids[id] = true
	}
}

func TestRegistry_NextIDUniqueConcurrent(t *testing.T) {
	r := NewRegistry()

	var mu sync.Mutex
	ids := make(map[string]bool)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := r.NextID()
				mu.Lock()
				if ids[id] {
					t.Errorf("duplicate ID issued: %s", id)
				}
				ids[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(ids) != 1000 {
		t.Errorf("expected 1000 unique ids, got %d", len(ids))
	}
}

func TestRegistry_CreateAndRemove(t *testing.T) {
	r := NewRegistry()
	id := r.NextID()

	r.Create(id, "start", "mysite")
	if r.IsCancelled(id) {
		t.Error("created entry should not read as cancelled")
	}

	r.Remove(id)
	if !r.IsCancelled(id) {
		t.Error("removed entry should read as cancelled")
	}
}

func TestRegistry_TakeLeavesEntry(t *testing.T) {
	r := NewRegistry()
	id := r.NextID()
	cmd := exec.Command("true")

	r.Register(id, cmd, "start", "mysite")

	got, ok := r.Take(id)
	if !ok || got != cmd {
		t.Fatal("first take should return the registered handle")
	}
	if r.IsCancelled(id) {
		t.Error("entry must remain after the handle is taken")
	}

	if _, ok := r.Take(id); ok {
		t.Error("second take should find no handle")
	}
}

func TestRegistry_TakeMissing(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Take("proc_999"); ok {
		t.Error("take on unknown id should fail")
	}
}

func TestRegistry_CompleteRemovesEntry(t *testing.T) {
	r := NewRegistry()
	id := r.NextID()
	cmd := exec.Command("true")

	r.Register(id, cmd, "stop", "mysite")

	got, ok := r.Complete(id)
	if !ok || got != cmd {
		t.Fatal("complete should return the registered handle")
	}
	if !r.IsCancelled(id) {
		t.Error("complete must remove the entry")
	}
}

func TestRegistry_CompleteAfterCancel(t *testing.T) {
	r := NewRegistry()
	id := r.NextID()

	r.Register(id, exec.Command("true"), "stop", "mysite")
	if _, ok := r.Cancel(id); !ok {
		t.Fatal("cancel of a live entry should succeed")
	}

	if _, ok := r.Complete(id); ok {
		t.Error("complete after cancel should report the task gone")
	}
}

func TestRegistry_CancelReturnsLabels(t *testing.T) {
	r := NewRegistry()
	id := r.NextID()

	r.Create(id, "config", "newsite")

	entry, ok := r.Cancel(id)
	if !ok {
		t.Fatal("cancel should find the entry")
	}
	if entry.Command != "config" || entry.Project != "newsite" {
		t.Errorf("cancel returned wrong labels: %+v", entry)
	}
	if entry.Handle != nil {
		t.Error("idle entry should carry no handle")
	}
}

func TestRegistry_CancelIdempotence(t *testing.T) {
	r := NewRegistry()
	id := r.NextID()

	r.Create(id, "start", "mysite")

	if _, ok := r.Cancel(id); !ok {
		t.Fatal("first cancel should succeed")
	}
	if _, ok := r.Cancel(id); ok {
		t.Error("second cancel should report not found")
	}
}

func TestRegistry_IndependentTasks(t *testing.T) {
	r := NewRegistry()

	a := r.NextID()
	b := r.NextID()
	r.Create(a, "start", "site-a")
	r.Create(b, "start", "site-b")

	r.Cancel(a)

	if !r.IsCancelled(a) {
		t.Error("cancelled task should be gone")
	}
	if r.IsCancelled(b) {
		t.Error("cancelling one task must not affect another")
	}
}
