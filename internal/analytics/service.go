// Package analytics tracks query statistics for the running engine: how
// many queries ran, which terms and modes were used, and how long
// evaluation took.
package analytics

import (
	"sort"
	"sync"
)

// maxTermsTracked caps the per-term counter map to prevent unbounded growth
// on long-running servers.
const maxTermsTracked = 10000

// QueryEvent records one evaluated query.
type QueryEvent struct {
	Terms   []string
	Mode    string
	Matched int
	TookMs  float64
}

// TermCount pairs a query term with how often it was searched.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Snapshot is a point-in-time view of the collected statistics.
type Snapshot struct {
	TotalQueries  int            `json:"total_queries"`
	QueriesByMode map[string]int `json:"queries_by_mode"`
	TopTerms      []TermCount    `json:"top_terms"`
	AvgTookMs     float64        `json:"avg_took_ms"`
	AvgMatched    float64        `json:"avg_matched"`
}

// Service accumulates query statistics. All methods are safe for concurrent
// use.
type Service struct {
	mutex        sync.RWMutex
	totalQueries int
	byMode       map[string]int
	byTerm       map[string]int
	totalTookMs  float64
	totalMatched int
}

// NewService creates an empty analytics service.
func NewService() *Service {
	return &Service{
		byMode: make(map[string]int),
		byTerm: make(map[string]int),
	}
}

// TrackQuery records one evaluated query.
func (s *Service) TrackQuery(event QueryEvent) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.totalQueries++
	s.byMode[event.Mode]++
	s.totalTookMs += event.TookMs
	s.totalMatched += event.Matched

	for _, term := range event.Terms {
		if _, tracked := s.byTerm[term]; !tracked && len(s.byTerm) >= maxTermsTracked {
			continue
		}
		s.byTerm[term]++
	}
}

// Snapshot returns the current statistics. topN limits the number of terms
// reported; terms with equal counts are ordered alphabetically so the output
// is stable.
func (s *Service) Snapshot(topN int) Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	terms := make([]TermCount, 0, len(s.byTerm))
	for term, count := range s.byTerm {
		terms = append(terms, TermCount{Term: term, Count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})
	if topN >= 0 && len(terms) > topN {
		terms = terms[:topN]
	}

	byMode := make(map[string]int, len(s.byMode))
	for mode, count := range s.byMode {
		byMode[mode] = count
	}

	snapshot := Snapshot{
		TotalQueries:  s.totalQueries,
		QueriesByMode: byMode,
		TopTerms:      terms,
	}
	if s.totalQueries > 0 {
		snapshot.AvgTookMs = s.totalTookMs / float64(s.totalQueries)
		snapshot.AvgMatched = float64(s.totalMatched) / float64(s.totalQueries)
	}
	return snapshot
}
