package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Loader handles loading and merging settings from multiple sources.
type Loader struct {
	// userDir is the user-level config directory (e.g. ~/.ddesk)
	userDir string

	// projectDir is the project-level config directory (e.g. .ddesk)
	projectDir string
}

// NewLoader creates a settings loader with the default directories.
func NewLoader() *Loader {
	homeDir, _ := os.UserHomeDir()
	return &Loader{
		userDir:    filepath.Join(homeDir, ".ddesk"),
		projectDir: ".ddesk",
	}
}

// NewLoaderWithOptions creates a loader with custom directories.
func NewLoaderWithOptions(userDir, projectDir string) *Loader {
	return &Loader{userDir: userDir, projectDir: projectDir}
}

// Load loads and merges settings from all sources, lowest priority
// first. Missing or malformed files are skipped silently.
func (l *Loader) Load() (*Settings, error) {
	settings := NewSettings()

	sources := []string{
		filepath.Join(l.userDir, "settings.json"),
		filepath.Join(l.projectDir, "settings.json"),
		filepath.Join(l.projectDir, "settings.local.json"),
	}

	for _, src := range sources {
		if data, err := os.ReadFile(src); err == nil {
			var s Settings
			if err := json.Unmarshal(data, &s); err == nil {
				settings = MergeSettings(settings, &s)
			}
		}
	}

	return settings, nil
}

// SaveToUser saves settings to the user-level settings file, merging
// with existing content.
func (l *Loader) SaveToUser(settings *Settings) error {
	path := filepath.Join(l.userDir, "settings.json")
	if err := os.MkdirAll(l.userDir, 0755); err != nil {
		return err
	}

	var existing *Settings
	if data, err := os.ReadFile(path); err == nil {
		existing = NewSettings()
		if err := json.Unmarshal(data, existing); err != nil {
			existing = nil
		}
	}

	toSave := settings
	if existing != nil {
		toSave = MergeSettings(existing, settings)
	}

	data, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load is a convenience function that loads settings using the
// default loader.
func Load() (*Settings, error) {
	return NewLoader().Load()
}
