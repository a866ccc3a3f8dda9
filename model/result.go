package model

// Span marks one match occurrence as a half-open byte offset pair
// (Start inclusive, End exclusive) into a specific text.
// Spans produced by a left-to-right scan are already ascending by Start.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes the span covers.
func (sp Span) Len() int {
	return sp.End - sp.Start
}

// Less orders spans by (Start, End), the order used for title spans and
// highlight merging.
func (sp Span) Less(other Span) bool {
	if sp.Start != other.Start {
		return sp.Start < other.Start
	}
	return sp.End < other.End
}

// LineMatch carries the accumulated spans for one body line. Lines without
// any span never appear as a LineMatch; absence means "no match", not an
// empty span list.
type LineMatch struct {
	LineNo int    `json:"line_no"` // 1-based line number
	Text   string `json:"text"`
	Spans  []Span `json:"spans"`
}

// Clone returns a LineMatch whose span slice is independent of the receiver,
// so combining results never aliases a prior accumulator state.
func (lm LineMatch) Clone() LineMatch {
	spans := make([]Span, len(lm.Spans))
	copy(spans, lm.Spans)
	return LineMatch{LineNo: lm.LineNo, Text: lm.Text, Spans: spans}
}

// SearchResult aggregates one sonnet's match data for one or more query
// terms: spans found in the title, per-line matches sorted ascending by
// line number, and the total span count.
//
// Matches equals len(TitleSpans) plus the sum of span counts across
// LineMatches, with one deliberate exception: the AND-mode fold forces
// Matches to zero on a non-matching term while leaving the spans from
// earlier terms in place (see search.Evaluate).
type SearchResult struct {
	Title       string      `json:"title"`
	TitleSpans  []Span      `json:"title_spans"`
	LineMatches []LineMatch `json:"line_matches"`
	Matches     int         `json:"matches"`
}

// Clone returns a deep copy of the result. Span slices and line matches are
// copied so that mutating the clone never touches the original.
func (r SearchResult) Clone() SearchResult {
	titleSpans := make([]Span, len(r.TitleSpans))
	copy(titleSpans, r.TitleSpans)

	lineMatches := make([]LineMatch, len(r.LineMatches))
	for i, lm := range r.LineMatches {
		lineMatches[i] = lm.Clone()
	}

	return SearchResult{
		Title:       r.Title,
		TitleSpans:  titleSpans,
		LineMatches: lineMatches,
		Matches:     r.Matches,
	}
}

// SpanCount recomputes the total number of spans the result carries. It
// equals Matches except after an AND-mode zeroing.
func (r SearchResult) SpanCount() int {
	total := len(r.TitleSpans)
	for _, lm := range r.LineMatches {
		total += len(lm.Spans)
	}
	return total
}
