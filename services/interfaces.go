// Package services defines the interfaces and data transfer types shared by
// the engine, the HTTP API, and the CLI.
package services

import (
	"github.com/sonnetlab/sonnet-search-engine/config"
	"github.com/sonnetlab/sonnet-search-engine/internal/analytics"
	"github.com/sonnetlab/sonnet-search-engine/model"
)

// QueryOptions carries per-query overrides. Zero values fall back to the
// engine's configured settings.
type QueryOptions struct {
	Mode string `json:"mode,omitempty"` // "AND" or "OR"; empty uses the configured search mode
}

// QueryResult is the folded outcome of one multi-term query over the whole
// corpus.
type QueryResult struct {
	Query   string               `json:"query"`
	Terms   []string             `json:"terms"`
	Mode    string               `json:"mode"`
	Hits    []model.SearchResult `json:"hits"`    // one per sonnet, corpus order, zero-match results included
	Matched int                  `json:"matched"` // number of sonnets with Matches > 0
	Total   int                  `json:"total"`   // corpus size
	TookMs  float64              `json:"took_ms"`
	QueryID string               `json:"query_id"` // unique UUID for this query
}

// SonnetSummary describes one sonnet without its body, for corpus listings.
type SonnetSummary struct {
	Number    int    `json:"number"` // 1-based corpus position
	Title     string `json:"title"`
	LineCount int    `json:"line_count"`
}

// Searcher evaluates multi-term queries against the corpus.
type Searcher interface {
	Query(raw string, opts QueryOptions) (QueryResult, error)
}

// CorpusReader exposes read access to the loaded corpus.
type CorpusReader interface {
	ListSonnets() []SonnetSummary
	GetSonnet(number int) (model.Sonnet, error)
}

// SettingsManager reads and updates the persisted user settings.
type SettingsManager interface {
	Settings() config.Settings
	UpdateSettings(settings config.Settings) error
}

// StatsReader exposes the collected query analytics.
type StatsReader interface {
	Stats(topTerms int) analytics.Snapshot
}

// SearchService is the full surface the HTTP API and the CLI consume.
type SearchService interface {
	Searcher
	CorpusReader
	SettingsManager
	StatsReader
}
