package ddev

import (
	"os"
	"path/filepath"
	"strings"
)

// Common directories where ddev gets installed. Desktop launchers and
// login shells don't always share a PATH, so the binary is searched
// for explicitly and these directories are prepended to the PATH of
// every spawned process.
var commonPaths = []string{
	"/opt/homebrew/bin",
	"/usr/local/bin",
	"/home/linuxbrew/.linuxbrew/bin",
	"/usr/bin",
	"/bin",
	"/usr/sbin",
	"/sbin",
}

// FindBinary locates the ddev executable in the common installation
// directories, falling back to "ddev" and hoping PATH resolves it.
func FindBinary() string {
	for _, dir := range commonPaths {
		p := filepath.Join(dir, "ddev")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return "ddev"
}

// EnhancedPath returns the current PATH with the common installation
// directories prepended, so helper binaries (composer, wp, docker)
// resolve even when the launcher environment is sparse.
func EnhancedPath() string {
	parts := append([]string{}, commonPaths...)
	if cur := os.Getenv("PATH"); cur != "" {
		parts = append(parts, cur)
	}
	return strings.Join(parts, ":")
}
