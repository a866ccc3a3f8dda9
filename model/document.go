package model

// Sonnet is one document in the corpus: a title plus the poem body as
// ordered lines. Line numbers are 1-based (line 1 is Lines[0]).
// A Sonnet is never mutated after the corpus loader constructs it; the
// search engine treats it as read-only.
type Sonnet struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// LineCount returns the number of body lines.
func (s Sonnet) LineCount() int {
	return len(s.Lines)
}
