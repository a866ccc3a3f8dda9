package spanfinder

import (
	"reflect"
	"testing"

	"github.com/sonnetlab/sonnet-search-engine/model"
)

func TestFindSpans(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    []model.Span
	}{
		{"two matches", "to be or not to be", "to", []model.Span{{Start: 0, End: 2}, {Start: 13, End: 15}}},
		{"overlapping matches retained", "aaa", "aa", []model.Span{{Start: 0, End: 2}, {Start: 1, End: 3}}},
		{"empty pattern", "to be or not to be", "", []model.Span{}},
		{"empty text", "", "to", []model.Span{}},
		{"empty text and pattern", "", "", []model.Span{}},
		{"no match", "from fairest creatures", "rose", []model.Span{}},
		{"pattern longer than text", "we", "weep", []model.Span{}},
		{"pattern equals text", "rose", "rose", []model.Span{{Start: 0, End: 4}}},
		{"match at end", "might never die", "die", []model.Span{{Start: 12, End: 15}}},
		{"single char pattern", "sense", "s", []model.Span{{Start: 0, End: 1}, {Start: 3, End: 4}}},
		{"case is a precondition", "To be", "to", []model.Span{}},
		{"substring inside word", "creatures we desire", "we", []model.Span{{Start: 10, End: 12}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSpans(tt.text, tt.pattern)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindSpans(%q, %q) = %v, want %v", tt.text, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFindSpans_AscendingStarts(t *testing.T) {
	spans := FindSpans("the theatre of thebes", "the")
	for i := 1; i < len(spans); i++ {
		if spans[i].Start <= spans[i-1].Start {
			t.Fatalf("spans not ascending by start: %v", spans)
		}
	}
}
