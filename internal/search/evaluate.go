package search

import (
	"strings"

	internalErrors "github.com/sonnetlab/sonnet-search-engine/internal/errors"
	"github.com/sonnetlab/sonnet-search-engine/model"
)

// Mode selects how per-term results are folded across a multi-term query.
type Mode string

const (
	// ModeAnd counts a sonnet only when every term matches it.
	ModeAnd Mode = "AND"
	// ModeOr counts a sonnet when any term matches it, accumulating all
	// terms' spans.
	ModeOr Mode = "OR"
)

// ParseMode validates a mode string (case-insensitively) and returns the
// canonical Mode. Anything other than AND or OR is an error.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(s) {
	case string(ModeAnd):
		return ModeAnd, nil
	case string(ModeOr):
		return ModeOr, nil
	default:
		return "", internalErrors.NewUnknownSearchModeError(s)
	}
}

// Evaluate runs a multi-term query over the corpus and returns one folded
// SearchResult per sonnet, in corpus order. Terms are processed in the order
// given. The fold is pure: each term step consumes the previous accumulated
// slice and produces a fresh one, so no intermediate state aliases another.
//
// First term: the accumulated result is that term's SearchResult as-is.
// Every later term folds per mode:
//
//   - OR: accumulated = Combine(accumulated, termResult), unconditionally.
//     Matches accumulate with multiplicity across terms.
//   - AND: combined only when both sides have matches. Otherwise Matches is
//     forced to 0 while the spans and line matches gathered from earlier
//     terms are kept. A zeroed result therefore carries stale span data;
//     renderers skip it because they filter on Matches > 0. This mirrors the
//     engine's long-standing behavior and is kept deliberately — see
//     TestEvaluate_AndModeKeepsStaleSpans before changing it.
//
// An unrecognized mode is an error, never a silent default. With no terms
// the returned slice is empty.
func Evaluate(docs []model.Sonnet, terms []string, mode Mode) ([]model.SearchResult, error) {
	if mode != ModeAnd && mode != ModeOr {
		return nil, internalErrors.NewUnknownSearchModeError(string(mode))
	}

	accumulated := make([]model.SearchResult, 0, len(docs))
	for ti, term := range terms {
		if ti == 0 {
			for _, doc := range docs {
				accumulated = append(accumulated, SearchDocument(doc, term))
			}
			continue
		}

		next := make([]model.SearchResult, len(docs))
		for i, doc := range docs {
			termResult := SearchDocument(doc, term)

			switch mode {
			case ModeOr:
				next[i] = Combine(accumulated[i], termResult)
			case ModeAnd:
				if accumulated[i].Matches > 0 && termResult.Matches > 0 {
					next[i] = Combine(accumulated[i], termResult)
				} else {
					zeroed := accumulated[i].Clone()
					zeroed.Matches = 0
					next[i] = zeroed
				}
			}
		}
		accumulated = next
	}

	return accumulated, nil
}
