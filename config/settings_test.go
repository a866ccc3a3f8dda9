package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	settings := Default()
	if !settings.Highlight {
		t.Error("default Highlight should be true")
	}
	if settings.SearchMode != SearchModeAnd {
		t.Errorf("default SearchMode = %q, want %q", settings.SearchMode, SearchModeAnd)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		settings       Settings
		expectedErrors int
	}{
		{"valid AND", Settings{Highlight: true, SearchMode: SearchModeAnd}, 0},
		{"valid OR", Settings{Highlight: false, SearchMode: SearchModeOr}, 0},
		{"lowercase mode rejected", Settings{SearchMode: "and"}, 1},
		{"empty mode rejected", Settings{}, 1},
		{"garbage mode rejected", Settings{SearchMode: "XOR"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts := tt.settings.Validate()
			if len(conflicts) != tt.expectedErrors {
				t.Errorf("Validate() = %v, want %d problem(s)", conflicts, tt.expectedErrors)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	settings := Settings{}
	settings.ApplyDefaults()
	if settings.SearchMode != SearchModeAnd {
		t.Errorf("SearchMode = %q, want %q", settings.SearchMode, SearchModeAnd)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist for a missing file, got %v", err)
	}
	if settings != Default() {
		t.Errorf("missing file should yield defaults, got %+v", settings)
	}
}

func TestLoad_InvalidEntriesIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	contents := `{"highlight": false, "search_mode": "MAYBE", "unknown_key": 42}`
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.Highlight {
		t.Error("valid highlight=false entry should be applied")
	}
	if settings.SearchMode != SearchModeAnd {
		t.Errorf("invalid search_mode must fall back to default, got %q", settings.SearchMode)
	}
}

func TestLoad_CorruptFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	settings, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for a corrupt config file")
	}
	if settings != Default() {
		t.Errorf("corrupt file should yield defaults, got %+v", settings)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	in := Settings{Highlight: false, SearchMode: SearchModeOr}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}
