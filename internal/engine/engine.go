// Package engine wires the corpus store, user settings, the search core and
// query analytics into one orchestrator implementing services.SearchService.
package engine

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sonnetlab/sonnet-search-engine/config"
	"github.com/sonnetlab/sonnet-search-engine/internal/analytics"
	internalErrors "github.com/sonnetlab/sonnet-search-engine/internal/errors"
	"github.com/sonnetlab/sonnet-search-engine/internal/search"
	"github.com/sonnetlab/sonnet-search-engine/model"
	"github.com/sonnetlab/sonnet-search-engine/services"
	"github.com/sonnetlab/sonnet-search-engine/store"
)

// Engine evaluates queries over the loaded corpus and owns the persisted
// user settings. It implements the services.SearchService interface.
type Engine struct {
	corpus    *store.CorpusStore
	analytics *analytics.Service

	mu         sync.RWMutex // guards settings
	settings   config.Settings
	configPath string // empty disables settings persistence
}

// NewEngine creates an engine over the given corpus. configPath names the
// settings file updated by UpdateSettings; pass "" to keep settings purely
// in memory.
func NewEngine(corpus *store.CorpusStore, settings config.Settings, configPath string) *Engine {
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		log.Printf("Warning: Invalid settings %v, falling back to defaults.", conflicts)
		settings = config.Default()
	}
	return &Engine{
		corpus:     corpus,
		analytics:  analytics.NewService(),
		settings:   settings,
		configPath: configPath,
	}
}

// Query evaluates a raw query string: it splits the query into
// whitespace-separated terms, folds per-term results across the corpus under
// the requested (or configured) mode, and stamps the result with timing and
// a unique query ID.
func (e *Engine) Query(raw string, opts services.QueryOptions) (services.QueryResult, error) {
	terms := strings.Fields(raw)
	if len(terms) == 0 {
		return services.QueryResult{}, internalErrors.NewValidationError("query", "must contain at least one term")
	}

	modeValue := opts.Mode
	if modeValue == "" {
		modeValue = e.Settings().SearchMode
	}
	mode, err := search.ParseMode(modeValue)
	if err != nil {
		return services.QueryResult{}, err
	}

	docs := e.corpus.Documents()

	startTime := time.Now()
	hits, err := search.Evaluate(docs, terms, mode)
	if err != nil {
		return services.QueryResult{}, err
	}
	tookMs := float64(time.Since(startTime).Microseconds()) / 1000.0

	matched := 0
	for _, hit := range hits {
		if hit.Matches > 0 {
			matched++
		}
	}

	result := services.QueryResult{
		Query:   raw,
		Terms:   terms,
		Mode:    string(mode),
		Hits:    hits,
		Matched: matched,
		Total:   len(docs),
		TookMs:  tookMs,
		QueryID: uuid.New().String(),
	}

	e.analytics.TrackQuery(analytics.QueryEvent{
		Terms:   terms,
		Mode:    string(mode),
		Matched: matched,
		TookMs:  tookMs,
	})

	return result, nil
}

// ListSonnets returns a summary of every sonnet in corpus order.
func (e *Engine) ListSonnets() []services.SonnetSummary {
	docs := e.corpus.Documents()
	summaries := make([]services.SonnetSummary, len(docs))
	for i, doc := range docs {
		summaries[i] = services.SonnetSummary{
			Number:    i + 1,
			Title:     doc.Title,
			LineCount: doc.LineCount(),
		}
	}
	return summaries
}

// GetSonnet returns the sonnet at the 1-based corpus position.
func (e *Engine) GetSonnet(number int) (model.Sonnet, error) {
	doc, ok := e.corpus.Get(number)
	if !ok {
		return model.Sonnet{}, internalErrors.NewSonnetNotFoundError(number, e.corpus.Len())
	}
	return doc, nil
}

// Settings returns the current user settings.
func (e *Engine) Settings() config.Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings
}

// UpdateSettings validates and applies new settings, persisting them to the
// config file when one is configured.
func (e *Engine) UpdateSettings(settings config.Settings) error {
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return internalErrors.NewValidationError("settings", strings.Join(conflicts, "; "))
	}

	e.mu.Lock()
	e.settings = settings
	e.mu.Unlock()

	if e.configPath != "" {
		if err := config.Save(e.configPath, settings); err != nil {
			log.Printf("Warning: Failed to save settings to %s: %v", e.configPath, err)
			return err
		}
	}
	return nil
}

// Stats returns a snapshot of the query analytics.
func (e *Engine) Stats(topTerms int) analytics.Snapshot {
	return e.analytics.Snapshot(topTerms)
}

var _ services.SearchService = (*Engine)(nil)
