package ddev

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig is the subset of a project's .ddev/config.yaml that
// the UI displays without invoking ddev.
type ProjectConfig struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	Docroot       string `yaml:"docroot"`
	PHPVersion    string `yaml:"php_version"`
	WebserverType string `yaml:"webserver_type"`
	NodeJSVersion string `yaml:"nodejs_version"`
	Database      struct {
		Type    string `yaml:"type"`
		Version string `yaml:"version"`
	} `yaml:"database"`
}

// ReadProjectConfig loads .ddev/config.yaml from a project root.
func ReadProjectConfig(approot string) (*ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(approot, ".ddev", "config.yaml"))
	if err != nil {
		return nil, ioError("%v", err)
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, parseError("%v", err)
	}
	return &cfg, nil
}
