// Package search implements the matching core: per-document span search,
// combination of per-term results, and the multi-term AND/OR fold across a
// corpus.
package search

import (
	"sort"
	"strings"

	"github.com/sonnetlab/sonnet-search-engine/internal/spanfinder"
	"github.com/sonnetlab/sonnet-search-engine/model"
)

// SearchDocument searches one sonnet for a single query term and returns its
// SearchResult. The term is lowercased once; title and every body line are
// scanned with spanfinder.FindSpans. Lines without a match are absent from
// LineMatches rather than present with an empty span list.
//
// SearchDocument is a pure function of (doc, term); the sonnet is never
// mutated.
func SearchDocument(doc model.Sonnet, term string) model.SearchResult {
	pattern := strings.ToLower(term)

	titleSpans := spanfinder.FindSpans(strings.ToLower(doc.Title), pattern)

	lineMatches := make([]model.LineMatch, 0)
	for idx, line := range doc.Lines {
		spans := spanfinder.FindSpans(strings.ToLower(line), pattern)
		if len(spans) > 0 {
			lineMatches = append(lineMatches, model.LineMatch{
				LineNo: idx + 1, // line numbers are 1-based
				Text:   line,
				Spans:  spans,
			})
		}
	}

	total := len(titleSpans)
	for _, lm := range lineMatches {
		total += len(lm.Spans)
	}

	return model.SearchResult{
		Title:       doc.Title,
		TitleSpans:  titleSpans,
		LineMatches: lineMatches,
		Matches:     total,
	}
}

// Combine merges two SearchResults produced from the same sonnet by
// different query terms:
//
//   - Matches is the plain sum of both counts. Spans are not deduplicated —
//     a term that re-hits an earlier term's range counts again, on purpose.
//   - Title spans are concatenated and sorted by (start, end).
//   - Line matches are merged by line number: spans of a line present in
//     both results are appended to a's list without resorting; lines only in
//     b are copied in. The merged list is sorted ascending by line number.
//
// Combine never fails. Handing it results from two different sonnets is a
// caller bug: the merge silently keeps a's title and produces a nonsensical
// result, it does not error.
func Combine(a, b model.SearchResult) model.SearchResult {
	combined := a.Clone()
	combined.Matches = a.Matches + b.Matches

	combined.TitleSpans = append(combined.TitleSpans, b.TitleSpans...)
	sort.Slice(combined.TitleSpans, func(i, j int) bool {
		return combined.TitleSpans[i].Less(combined.TitleSpans[j])
	})

	byLine := make(map[int]int, len(combined.LineMatches)) // line number -> index into combined.LineMatches
	for i, lm := range combined.LineMatches {
		byLine[lm.LineNo] = i
	}
	for _, lm := range b.LineMatches {
		if i, ok := byLine[lm.LineNo]; ok {
			combined.LineMatches[i].Spans = append(combined.LineMatches[i].Spans, lm.Spans...)
		} else {
			byLine[lm.LineNo] = len(combined.LineMatches)
			combined.LineMatches = append(combined.LineMatches, lm.Clone())
		}
	}
	sort.Slice(combined.LineMatches, func(i, j int) bool {
		return combined.LineMatches[i].LineNo < combined.LineMatches[j].LineNo
	})

	return combined
}
