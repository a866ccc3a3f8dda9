// Package store holds the in-memory sonnet corpus shared by the engine and
// the HTTP API.
package store

import (
	"sync"

	"github.com/sonnetlab/sonnet-search-engine/model"
)

// CorpusStore keeps the loaded sonnets behind a read-write mutex. The corpus
// is set once at startup (and replaced wholesale on a reload); the search
// path only ever takes read locks.
type CorpusStore struct {
	mu      sync.RWMutex
	sonnets []model.Sonnet
}

// NewCorpusStore creates a store holding the given sonnets.
func NewCorpusStore(sonnets []model.Sonnet) *CorpusStore {
	s := &CorpusStore{}
	s.SetDocuments(sonnets)
	return s
}

// SetDocuments replaces the corpus with a copy of the given slice.
func (s *CorpusStore) SetDocuments(sonnets []model.Sonnet) {
	docs := make([]model.Sonnet, len(sonnets))
	copy(docs, sonnets)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sonnets = docs
}

// Documents returns a snapshot copy of the corpus slice. The sonnets
// themselves are immutable, so sharing their line slices is safe; only the
// top-level slice is copied to keep callers independent of later reloads.
func (s *CorpusStore) Documents() []model.Sonnet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]model.Sonnet, len(s.sonnets))
	copy(docs, s.sonnets)
	return docs
}

// Len returns the number of sonnets in the corpus.
func (s *CorpusStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sonnets)
}

// Get returns the sonnet at 1-based position number.
func (s *CorpusStore) Get(number int) (model.Sonnet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if number < 1 || number > len(s.sonnets) {
		return model.Sonnet{}, false
	}
	return s.sonnets[number-1], true
}
