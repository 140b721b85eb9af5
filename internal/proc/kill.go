package proc

import (
	"os/exec"
	"syscall"
)

// KillAndReap forcefully terminates a spawned process and waits for it
// so no zombie is left behind. The whole process group is signalled
// when one exists (ddev and composer fork helpers), falling back to
// the process itself. Errors are swallowed throughout: the process may
// already have exited, and termination is best-effort and idempotent.
func KillAndReap(cmd *exec.Cmd) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	pid := cmd.Process.Pid
	if pgid, err := syscall.Getpgid(pid); err == nil && pgid == pid {
		_ = syscall.Kill(-pgid, syscall.SIGKILL)
	} else {
		_ = cmd.Process.Kill()
	}
	_ = cmd.Wait()
}
