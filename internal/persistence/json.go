// Package persistence provides small helpers for saving and loading the
// engine's JSON files (the corpus cache and the user configuration).
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveJSON encodes the given object as indented JSON and saves it to
// filePath. It creates necessary directories if they don't exist.
func SaveJSON(filePath string, object interface{}, indent string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(object, "", indent)
	if err != nil {
		return fmt.Errorf("failed to encode JSON for file %s: %w", filePath, err)
	}

	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}
	return nil
}

// LoadJSON decodes a JSON file from filePath into the provided object
// pointer. If the file does not exist, it returns os.ErrNotExist, allowing
// callers to handle fresh starts gracefully.
func LoadJSON(filePath string, objectPointer interface{}) error {
	data, err := os.ReadFile(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return os.ErrNotExist
		}
		return fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	if err := json.Unmarshal(data, objectPointer); err != nil {
		return fmt.Errorf("failed to decode JSON from file %s: %w", filePath, err)
	}
	return nil
}
