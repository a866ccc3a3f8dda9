// Package config provides the user-facing configuration for the sonnet
// search engine: the multi-term search mode and the highlight toggle.
package config

import (
	"errors"
	"os"

	"github.com/sonnetlab/sonnet-search-engine/internal/persistence"
)

// Search modes accepted in Settings.SearchMode.
const (
	SearchModeAnd = "AND"
	SearchModeOr  = "OR"
)

// configFileIndent matches the 4-space indentation historically used for
// config.json, so hand-edited files keep their shape across saves.
const configFileIndent = "    "

// Settings holds the two user preferences the engine honors:
// whether matches are highlighted with ANSI colors, and the logical mode
// used to combine multiple search terms.
//
// Settings is a plain value. There is no process-wide default instance;
// callers obtain one from Default or Load and pass it explicitly.
type Settings struct {
	Highlight  bool   `json:"highlight"`
	SearchMode string `json:"search_mode"` // "AND" or "OR"
}

// Default returns the settings used when no config file exists.
func Default() Settings {
	return Settings{
		Highlight:  true,
		SearchMode: SearchModeAnd,
	}
}

// Validate checks the settings and returns a list of problems, empty when
// the settings are usable.
func (s *Settings) Validate() []string {
	var conflicts []string
	if s.SearchMode != SearchModeAnd && s.SearchMode != SearchModeOr {
		conflicts = append(conflicts, "search_mode must be 'AND' or 'OR', got '"+s.SearchMode+"'")
	}
	return conflicts
}

// ApplyDefaults fills in zero values so a partially populated Settings is
// still usable.
func (s *Settings) ApplyDefaults() {
	if s.SearchMode == "" {
		s.SearchMode = SearchModeAnd
	}
}

// rawSettings mirrors the config file with optional fields, so Load can
// tell "absent" apart from "zero value" and ignore invalid entries instead
// of failing on hand-edited files.
type rawSettings struct {
	Highlight  *bool   `json:"highlight"`
	SearchMode *string `json:"search_mode"`
}

// Load reads settings from the JSON file at path. A missing file yields the
// defaults together with os.ErrNotExist so the caller can log the fresh
// start; a corrupt file yields the defaults and the decode error. Fields
// with unexpected values are silently ignored, keeping the engine robust
// against manually edited config files.
func Load(path string) (Settings, error) {
	settings := Default()

	var raw rawSettings
	if err := persistence.LoadJSON(path, &raw); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, os.ErrNotExist
		}
		return settings, err
	}

	if raw.Highlight != nil {
		settings.Highlight = *raw.Highlight
	}
	if raw.SearchMode != nil && (*raw.SearchMode == SearchModeAnd || *raw.SearchMode == SearchModeOr) {
		settings.SearchMode = *raw.SearchMode
	}
	return settings, nil
}

// Save writes the settings to the JSON file at path.
func Save(path string, settings Settings) error {
	return persistence.SaveJSON(path, settings, configFileIndent)
}
