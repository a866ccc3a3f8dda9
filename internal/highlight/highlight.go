// Package highlight turns match spans into terminal markup. Overlapping and
// touching spans are merged first so the output never nests or repeats
// escape sequences.
package highlight

import (
	"sort"
	"strings"

	"github.com/sonnetlab/sonnet-search-engine/model"
)

// ANSI escape sequences wrapped around each merged span.
const (
	// MarkStart is yellow background followed by black foreground.
	MarkStart = "\x1b[43m\x1b[30m"
	// MarkReset restores the terminal's default attributes.
	MarkReset = "\x1b[0m"
)

// Merge returns text with every merged span wrapped in ANSI highlight
// markers. With no spans the text is returned unchanged.
//
// Spans are sorted by (start, end) and merged whenever the next span starts
// at or before the current merged end — spans that merely touch at a
// boundary collapse into one marked region, not just overlapping ones.
//
// Merge does not validate bounds; the caller guarantees
// 0 <= start <= end <= len(text) for every span.
func Merge(text string, spans []model.Span) string {
	if len(spans) == 0 {
		return text
	}

	sorted := make([]model.Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	merged := make([]model.Span, 0, len(sorted))
	current := sorted[0]
	for _, sp := range sorted[1:] {
		if sp.Start <= current.End {
			if sp.End > current.End {
				current.End = sp.End
			}
		} else {
			merged = append(merged, current)
			current = sp
		}
	}
	merged = append(merged, current)

	var out strings.Builder
	pos := 0
	for _, sp := range merged {
		out.WriteString(text[pos:sp.Start])
		out.WriteString(MarkStart)
		out.WriteString(text[sp.Start:sp.End])
		out.WriteString(MarkReset)
		pos = sp.End
	}
	out.WriteString(text[pos:])
	return out.String()
}
