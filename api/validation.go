package api

import (
	"strings"

	"github.com/sonnetlab/sonnet-search-engine/config"
)

// ValidationIssue describes one invalid request field.
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationResult collects the issues found while validating a request.
type ValidationResult struct {
	Errors []ValidationIssue
}

// HasErrors reports whether any issue was recorded.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) add(field, message string) {
	r.Errors = append(r.Errors, ValidationIssue{Field: field, Message: message})
}

// ValidateSearchParams checks the /search query parameters. The mode is
// optional; when present it must be AND or OR (case-insensitive, matching
// what the engine accepts).
func ValidateSearchParams(query, mode string) *ValidationResult {
	result := &ValidationResult{}

	if strings.TrimSpace(query) == "" {
		result.add("q", "query must contain at least one term")
	}

	if mode != "" {
		upper := strings.ToUpper(mode)
		if upper != config.SearchModeAnd && upper != config.SearchModeOr {
			result.add("mode", "mode must be 'AND' or 'OR'")
		}
	}

	return result
}
