// Package spanfinder locates every occurrence of a pattern inside a text,
// overlapping occurrences included. It is the lowest layer of the search
// engine: Document search, result combination and highlighting are all
// built on the spans it produces.
package spanfinder

import "github.com/sonnetlab/sonnet-search-engine/model"

// FindSpans returns a half-open (start, end) span for every occurrence of
// pattern in text, in ascending start order. Overlapping occurrences are all
// retained: pattern "aa" in "aaa" yields (0,2) and (1,3).
//
// Both text and pattern must already be lowercased by the caller;
// case-insensitivity is a precondition here, not something FindSpans does.
// Offsets are byte offsets, which the caller applies to the original
// (unlowered) text — equivalent as long as lowercasing preserves byte
// length, which holds for the ASCII corpus this engine serves.
//
// An empty pattern yields an empty span list. That is a policy decision
// ("nothing to search for"), not a degenerate "match everywhere".
func FindSpans(text, pattern string) []model.Span {
	spans := make([]model.Span, 0) // Initialize as empty slice, not nil
	if pattern == "" {
		return spans
	}

	for i := 0; i+len(pattern) <= len(text); i++ {
		if text[i:i+len(pattern)] == pattern {
			spans = append(spans, model.Span{Start: i, End: i + len(pattern)})
		}
	}
	return spans
}
