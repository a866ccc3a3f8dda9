package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.json")

	in := sample{Name: "sonnets", Count: 154}
	if err := SaveJSON(path, in, "  "); err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}

	var out sample
	if err := LoadJSON(path, &out); err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestSaveJSON_Indent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	if err := SaveJSON(path, sample{Name: "x"}, "    "); err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if !strings.Contains(string(data), "\n    \"name\"") {
		t.Errorf("expected 4-space indentation, got:\n%s", data)
	}
}

func TestLoadJSON_NotExist(t *testing.T) {
	var out sample
	err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"), &out)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadJSON_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	var out sample
	err := LoadJSON(path, &out)
	if err == nil {
		t.Fatal("expected an error for corrupt JSON")
	}
	if errors.Is(err, os.ErrNotExist) {
		t.Error("corrupt file must not be reported as missing")
	}
}
