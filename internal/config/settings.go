// Package config provides multi-level settings management for ddesk.
// Settings are loaded from multiple sources with the following
// priority (lowest to highest):
//  1. ~/.ddesk/settings.json (user level)
//  2. .ddesk/settings.json (project level)
//  3. .ddesk/settings.local.json (local level, not for checking in)
//
// Later sources override earlier ones.
package config

import "github.com/bmatcuk/doublestar/v4"

// Settings is the complete ddesk configuration.
type Settings struct {
	// DdevPath overrides the discovered ddev binary.
	DdevPath string `json:"ddevPath,omitempty"`

	// Env defines extra environment variables passed to every spawned
	// process.
	Env map[string]string `json:"env,omitempty"`

	// DefaultLogTail is the --tail value used when opening a log view.
	DefaultLogTail int `json:"defaultLogTail,omitempty"`

	// HiddenProjects are glob patterns; matching project names are
	// excluded from the project list (e.g. "_scratch-*").
	HiddenProjects []string `json:"hiddenProjects,omitempty"`
}

// NewSettings returns settings with defaults applied.
func NewSettings() *Settings {
	return &Settings{
		Env:            make(map[string]string),
		DefaultLogTail: 100,
	}
}

// MergeSettings merges two Settings objects. Values from overlay
// override values in base; slices replace, maps merge.
func MergeSettings(base, overlay *Settings) *Settings {
	if base == nil {
		return overlay
	}
	if overlay == nil {
		return base
	}

	result := NewSettings()

	if overlay.DdevPath != "" {
		result.DdevPath = overlay.DdevPath
	} else {
		result.DdevPath = base.DdevPath
	}

	if overlay.DefaultLogTail != 0 {
		result.DefaultLogTail = overlay.DefaultLogTail
	} else if base.DefaultLogTail != 0 {
		result.DefaultLogTail = base.DefaultLogTail
	}

	if len(overlay.HiddenProjects) > 0 {
		result.HiddenProjects = overlay.HiddenProjects
	} else {
		result.HiddenProjects = base.HiddenProjects
	}

	result.Env = mergeStringMaps(base.Env, overlay.Env)
	return result
}

func mergeStringMaps(base, overlay map[string]string) map[string]string {
	result := make(map[string]string)
	for k, v := range base {
		result[k] = v
	}
	for k, v := range overlay {
		result[k] = v
	}
	return result
}

// EnvSlice renders the Env map as KEY=VALUE pairs for exec.
func (s *Settings) EnvSlice() []string {
	env := make([]string, 0, len(s.Env))
	for k, v := range s.Env {
		env = append(env, k+"="+v)
	}
	return env
}

// IsHidden reports whether a project name matches one of the
// hidden-project patterns. Invalid patterns never match.
func (s *Settings) IsHidden(name string) bool {
	for _, pattern := range s.HiddenProjects {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
