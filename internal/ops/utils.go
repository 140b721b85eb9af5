package ops

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
)

// CheckInstalled reports whether the ddev CLI is usable on this
// machine, returning its version string when it is.
func (s *Service) CheckInstalled(ctx context.Context) (bool, string) {
	out, err := s.run.Output(ctx, "--version")
	if err != nil {
		return false, ""
	}
	return true, strings.TrimSpace(out)
}

// Version returns the ddev CLI version string.
func (s *Service) Version(ctx context.Context) (string, error) {
	out, err := s.run.Output(ctx, "--version")
	return strings.TrimSpace(out), err
}

// opener returns the platform command that hands a URL or path to the
// desktop environment.
func opener() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}

// OpenURL opens a URL in the user's default browser. Fire and forget:
// the opener detaches immediately.
func OpenURL(url string) error {
	return spawnOpener(url)
}

// OpenFolder opens a directory in the user's file manager.
func OpenFolder(path string) error {
	return spawnOpener(path)
}

func spawnOpener(target string) error {
	cmd := exec.Command(opener(), target)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap in the background so the opener leaves no zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}
