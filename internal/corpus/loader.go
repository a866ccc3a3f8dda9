// Package corpus loads Shakespeare's sonnets from PoetryDB, caching the raw
// JSON payload on disk so later startups never touch the network.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	internalErrors "github.com/sonnetlab/sonnet-search-engine/internal/errors"
	"github.com/sonnetlab/sonnet-search-engine/internal/persistence"
	"github.com/sonnetlab/sonnet-search-engine/model"
)

// DefaultPoetryDBURL returns all of Shakespeare's sonnets as a JSON array of
// {title, lines, ...} records.
const DefaultPoetryDBURL = "https://poetrydb.org/author,title/Shakespeare;Sonnet"

// DefaultTimeout bounds a single PoetryDB request.
const DefaultTimeout = 10 * time.Second

// cacheFileIndent matches the 2-space indentation of the historical cache
// file, so an existing sonnets.json stays byte-stable across rewrites.
const cacheFileIndent = "  "

// Loader fetches the sonnet corpus, preferring the local cache file over the
// network.
type Loader struct {
	URL       string
	CachePath string
	Client    *http.Client
}

// NewLoader creates a Loader for the given cache path using the default
// PoetryDB endpoint and timeout.
func NewLoader(cachePath string) *Loader {
	return &Loader{
		URL:       DefaultPoetryDBURL,
		CachePath: cachePath,
		Client:    &http.Client{Timeout: DefaultTimeout},
	}
}

// sonnetRecord mirrors one entry of the PoetryDB response. Fields beyond
// title and lines (author, linecount) are ignored on decode but preserved in
// the cache file, which stores the raw payload.
type sonnetRecord struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Load returns the corpus, reading the cache file when it exists and
// otherwise fetching from PoetryDB and writing the cache. The returned
// sonnets keep corpus order (Sonnet 1 first).
func (l *Loader) Load() ([]model.Sonnet, error) {
	var records []sonnetRecord

	err := persistence.LoadJSON(l.CachePath, &records)
	switch {
	case err == nil:
		log.Printf("Loaded %d sonnets from the cache (%s).", len(records), l.CachePath)
	case errors.Is(err, os.ErrNotExist):
		records, err = l.fetch()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", internalErrors.ErrCorpusUnavailable, err)
		}
		if saveErr := persistence.SaveJSON(l.CachePath, records, cacheFileIndent); saveErr != nil {
			// A failed cache write is not fatal; the corpus is already in memory.
			log.Printf("Warning: Failed to write sonnet cache %s: %v", l.CachePath, saveErr)
		}
		log.Printf("Downloaded %d sonnets from PoetryDB.", len(records))
	default:
		return nil, fmt.Errorf("failed to read sonnet cache: %w", err)
	}

	sonnets := make([]model.Sonnet, len(records))
	for i, rec := range records {
		sonnets[i] = model.Sonnet{Title: rec.Title, Lines: rec.Lines}
	}
	return sonnets, nil
}

// fetch calls the PoetryDB API and decodes the JSON response.
func (l *Loader) fetch() ([]sonnetRecord, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	resp, err := client.Get(l.URL)
	if err != nil {
		return nil, fmt.Errorf("network-related error occurred: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Warning: failed to close response body: %v", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with HTTP status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var records []sonnetRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return records, nil
}
