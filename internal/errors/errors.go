package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrUnknownSearchMode is returned when a search mode is neither AND nor OR
	ErrUnknownSearchMode = errors.New("unknown search mode")

	// ErrEmptyQuery is returned when a query contains no terms
	ErrEmptyQuery = errors.New("empty query")

	// ErrInvalidSpan is returned when a span does not fit its text
	ErrInvalidSpan = errors.New("invalid span")

	// ErrCorpusUnavailable is returned when the corpus can be loaded neither
	// from the cache nor from the network
	ErrCorpusUnavailable = errors.New("corpus unavailable")

	// ErrSonnetNotFound is returned when a sonnet number is out of range
	ErrSonnetNotFound = errors.New("sonnet not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// UnknownSearchModeError reports the offending mode value.
type UnknownSearchModeError struct {
	Mode string
}

func (e *UnknownSearchModeError) Error() string {
	return fmt.Sprintf("unknown search mode '%s' (must be AND or OR)", e.Mode)
}

func (e *UnknownSearchModeError) Is(target error) bool {
	return target == ErrUnknownSearchMode
}

// NewUnknownSearchModeError creates a new UnknownSearchModeError
func NewUnknownSearchModeError(mode string) *UnknownSearchModeError {
	return &UnknownSearchModeError{Mode: mode}
}

// InvalidSpanError reports a span that falls outside its text.
type InvalidSpanError struct {
	Start, End, Length int
}

func (e *InvalidSpanError) Error() string {
	return fmt.Sprintf("span (%d,%d) out of range for text of length %d", e.Start, e.End, e.Length)
}

func (e *InvalidSpanError) Is(target error) bool {
	return target == ErrInvalidSpan
}

// NewInvalidSpanError creates a new InvalidSpanError
func NewInvalidSpanError(start, end, length int) *InvalidSpanError {
	return &InvalidSpanError{Start: start, End: end, Length: length}
}

// SonnetNotFoundError reports a sonnet number past the end of the corpus.
type SonnetNotFoundError struct {
	Number int
	Total  int
}

func (e *SonnetNotFoundError) Error() string {
	return fmt.Sprintf("sonnet %d not found (corpus has %d sonnets)", e.Number, e.Total)
}

func (e *SonnetNotFoundError) Is(target error) bool {
	return target == ErrSonnetNotFound
}

// NewSonnetNotFoundError creates a new SonnetNotFoundError
func NewSonnetNotFoundError(number, total int) *SonnetNotFoundError {
	return &SonnetNotFoundError{Number: number, Total: total}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
