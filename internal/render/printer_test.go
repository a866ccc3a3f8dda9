package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sonnetlab/sonnet-search-engine/internal/highlight"
	"github.com/sonnetlab/sonnet-search-engine/model"
	"github.com/sonnetlab/sonnet-search-engine/services"
)

func sampleResult() services.QueryResult {
	return services.QueryResult{
		Query: "we",
		Total: 2,
		Hits: []model.SearchResult{
			{
				Title:      "Sonnet 1",
				TitleSpans: []model.Span{},
				LineMatches: []model.LineMatch{
					{
						LineNo: 1,
						Text:   "From fairest creatures we desire increase,",
						Spans:  []model.Span{{Start: 23, End: 25}},
					},
				},
				Matches: 1,
			},
			{Title: "Sonnet 2", Matches: 0},
		},
		Matched: 1,
		TookMs:  1.2345,
	}
}

func TestPrintResult_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	if err := p.PrintResult(sampleResult()); err != nil {
		t.Fatalf("PrintResult failed: %v", err)
	}

	want := "1 out of 2 sonnets contain \"we\". Your query took 1.23ms.\n" +
		"\n" +
		"[1/2] Sonnet 1\n" +
		"  [ 1] From fairest creatures we desire increase,\n"
	if buf.String() != want {
		t.Errorf("output mismatch:\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestPrintResult_WithoutTiming(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.ShowTiming = false

	if err := p.PrintResult(sampleResult()); err != nil {
		t.Fatalf("PrintResult failed: %v", err)
	}

	firstLine := strings.SplitN(buf.String(), "\n", 2)[0]
	if firstLine != `1 out of 2 sonnets contain "we".` {
		t.Errorf("summary = %q, want it without the timing suffix", firstLine)
	}
}

func TestPrintResult_HighlightedOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	if err := p.PrintResult(sampleResult()); err != nil {
		t.Fatalf("PrintResult failed: %v", err)
	}

	wantLine := "  [ 1] From fairest creatures " +
		highlight.MarkStart + "we" + highlight.MarkReset + " desire increase,\n"
	if !strings.Contains(buf.String(), wantLine) {
		t.Errorf("highlighted line missing:\ngot:\n%q\nwant substring:\n%q", buf.String(), wantLine)
	}
}

func TestPrintResult_SkipsZeroMatchHits(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	if err := p.PrintResult(sampleResult()); err != nil {
		t.Fatalf("PrintResult failed: %v", err)
	}
	if strings.Contains(buf.String(), "Sonnet 2") {
		t.Errorf("zero-match sonnet rendered:\n%s", buf.String())
	}
}

func TestPrintResult_LineNumberWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	result := services.QueryResult{
		Query: "thy",
		Total: 1,
		Hits: []model.SearchResult{
			{
				Title: "Sonnet 2",
				LineMatches: []model.LineMatch{
					{LineNo: 3, Text: "line three", Spans: []model.Span{{Start: 0, End: 4}}},
					{LineNo: 12, Text: "line twelve", Spans: []model.Span{{Start: 0, End: 4}}},
				},
				Matches: 2,
			},
		},
		Matched: 1,
	}

	if err := p.PrintResult(result); err != nil {
		t.Fatalf("PrintResult failed: %v", err)
	}
	if !strings.Contains(buf.String(), "  [ 3] line three\n") {
		t.Errorf("single-digit line number not right-aligned in width 2:\n%q", buf.String())
	}
	if !strings.Contains(buf.String(), "  [12] line twelve\n") {
		t.Errorf("two-digit line number misrendered:\n%q", buf.String())
	}
}

func TestPrintResult_HighlightedTitle(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	result := services.QueryResult{
		Query: "sonnet",
		Total: 1,
		Hits: []model.SearchResult{
			{
				Title:      "Sonnet 1",
				TitleSpans: []model.Span{{Start: 0, End: 6}},
				Matches:    1,
			},
		},
		Matched: 1,
	}

	if err := p.PrintResult(result); err != nil {
		t.Fatalf("PrintResult failed: %v", err)
	}
	want := "[1/1] " + highlight.MarkStart + "Sonnet" + highlight.MarkReset + " 1\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("title not highlighted:\ngot %q\nwant substring %q", buf.String(), want)
	}
}
