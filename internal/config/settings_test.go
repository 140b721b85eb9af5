package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMergeSettings_OverlayWins(t *testing.T) {
	base := NewSettings()
	base.DdevPath = "/usr/local/bin/ddev"
	base.DefaultLogTail = 50

	overlay := &Settings{DdevPath: "/opt/ddev/ddev"}

	merged := MergeSettings(base, overlay)
	if merged.DdevPath != "/opt/ddev/ddev" {
		t.Errorf("overlay DdevPath should win, got %s", merged.DdevPath)
	}
	if merged.DefaultLogTail != 50 {
		t.Errorf("base DefaultLogTail should survive, got %d", merged.DefaultLogTail)
	}
}

func TestMergeSettings_EnvMerges(t *testing.T) {
	base := NewSettings()
	base.Env["A"] = "1"
	base.Env["B"] = "1"

	overlay := &Settings{Env: map[string]string{"B": "2", "C": "3"}}

	merged := MergeSettings(base, overlay)
	if merged.Env["A"] != "1" || merged.Env["B"] != "2" || merged.Env["C"] != "3" {
		t.Errorf("unexpected env merge: %v", merged.Env)
	}
}

func TestSettings_IsHidden(t *testing.T) {
	s := NewSettings()
	s.HiddenProjects = []string{"_scratch-*", "tmp"}

	cases := []struct {
		name string
		want bool
	}{
		{"_scratch-1", true},
		{"_scratch-drupal", true},
		{"tmp", true},
		{"mysite", false},
		{"scratch-1", false},
	}
	for _, c := range cases {
		if got := s.IsHidden(c.name); got != c.want {
			t.Errorf("IsHidden(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestLoader_PriorityOrder(t *testing.T) {
	userDir := t.TempDir()
	projectDir := t.TempDir()

	write := func(dir, name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	write(userDir, "settings.json", `{"ddevPath":"/user/ddev","defaultLogTail":25}`)
	write(projectDir, "settings.json", `{"ddevPath":"/project/ddev"}`)
	write(projectDir, "settings.local.json", `{"env":{"DDEV_DEBUG":"1"}}`)

	loader := NewLoaderWithOptions(userDir, projectDir)
	settings, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	if settings.DdevPath != "/project/ddev" {
		t.Errorf("project settings should override user, got %s", settings.DdevPath)
	}
	if settings.DefaultLogTail != 25 {
		t.Errorf("user defaultLogTail should survive, got %d", settings.DefaultLogTail)
	}
	if settings.Env["DDEV_DEBUG"] != "1" {
		t.Errorf("local env should be loaded, got %v", settings.Env)
	}
}

func TestLoader_MissingFilesIgnored(t *testing.T) {
	loader := NewLoaderWithOptions(t.TempDir(), t.TempDir())
	settings, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}
	if settings.DefaultLogTail != 100 {
		t.Errorf("defaults should apply, got tail %d", settings.DefaultLogTail)
	}
}
