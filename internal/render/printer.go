// Package render writes query results to a terminal: the summary line, one
// block per matched sonnet, and optional ANSI highlighting of the matched
// spans.
package render

import (
	"fmt"
	"io"

	"github.com/sonnetlab/sonnet-search-engine/internal/highlight"
	"github.com/sonnetlab/sonnet-search-engine/model"
	"github.com/sonnetlab/sonnet-search-engine/services"
)

// Printer renders query results. Highlight toggles the ANSI markup around
// matched spans; ShowTiming appends the query duration to the summary line.
type Printer struct {
	Out        io.Writer
	Highlight  bool
	ShowTiming bool
}

// NewPrinter creates a Printer writing to out, with timing enabled.
func NewPrinter(out io.Writer, highlightMatches bool) *Printer {
	return &Printer{Out: out, Highlight: highlightMatches, ShowTiming: true}
}

// PrintResult renders a full query result: first the summary line with the
// match count and query timing, then one block per matched sonnet. Sonnets
// with zero matches are skipped (including AND-zeroed ones, whatever stale
// spans they still carry).
func (p *Printer) PrintResult(result services.QueryResult) error {
	matched := make([]model.SearchResult, 0, len(result.Hits))
	for _, hit := range result.Hits {
		if hit.Matches > 0 {
			matched = append(matched, hit)
		}
	}

	summary := fmt.Sprintf("%d out of %d sonnets contain \"%s\".", len(matched), result.Total, result.Query)
	if p.ShowTiming {
		summary += fmt.Sprintf(" Your query took %.2fms.", result.TookMs)
	}
	if _, err := fmt.Fprintln(p.Out, summary); err != nil {
		return err
	}

	for idx, hit := range matched {
		if err := p.printHit(idx+1, result.Total, hit); err != nil {
			return err
		}
	}
	return nil
}

// printHit renders one matched sonnet: a blank line, the [index/total]
// heading with the (possibly highlighted) title, then each matched line
// prefixed by its right-aligned line number.
func (p *Printer) printHit(idx, total int, hit model.SearchResult) error {
	title := hit.Title
	if p.Highlight {
		title = highlight.Merge(hit.Title, hit.TitleSpans)
	}
	if _, err := fmt.Fprintf(p.Out, "\n[%d/%d] %s\n", idx, total, title); err != nil {
		return err
	}

	for _, lm := range hit.LineMatches {
		text := lm.Text
		if p.Highlight {
			text = highlight.Merge(lm.Text, lm.Spans)
		}
		if _, err := fmt.Fprintf(p.Out, "  [%2d] %s\n", lm.LineNo, text); err != nil {
			return err
		}
	}
	return nil
}
