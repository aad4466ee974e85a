// Package memstore keeps analyzed papers in memory for the session. The
// store is the explicit object callers pass around; nothing here survives a
// restart, which is the intended lifecycle for this demo app.
package memstore

import (
	"sync"

	"github.com/google/uuid"

	"paperlens/domain/paper"
	"paperlens/ports"
)

var _ ports.StorePort = (*Store)(nil)

// Store implements ports.StorePort. Papers are keyed by file name and kept
// in insertion order for display. The only mutations are append and Clear.
type Store struct {
	mu     sync.RWMutex
	byName map[string]*paper.AnalyzedPaper
	order  []string
}

// New creates an empty store
func New() *Store {
	return &Store{
		byName: make(map[string]*paper.AnalyzedPaper),
	}
}

// Put stores p unless its file name is already present. Reports whether the
// paper was stored; a re-upload of a known name is a no-op.
func (s *Store) Put(p *paper.AnalyzedPaper) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[p.FileName]; exists {
		return false
	}
	s.byName[p.FileName] = p
	s.order = append(s.order, p.FileName)
	return true
}

// Get returns the paper stored under fileName, if any.
func (s *Store) Get(fileName string) (*paper.AnalyzedPaper, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byName[fileName]
	return p, ok
}

// GetByID returns the paper with the given ID, if any.
func (s *Store) GetByID(id uuid.UUID) (*paper.AnalyzedPaper, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.byName {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Has reports whether fileName has already been analyzed.
func (s *Store) Has(fileName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byName[fileName]
	return ok
}

// List returns all papers in insertion order.
func (s *Store) List() []*paper.AnalyzedPaper {
	s.mu.RLock()
	defer s.mu.RUnlock()

	papers := make([]*paper.AnalyzedPaper, 0, len(s.order))
	for _, name := range s.order {
		papers = append(papers, s.byName[name])
	}
	return papers
}

// Clear removes every stored paper.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byName = make(map[string]*paper.AnalyzedPaper)
	s.order = nil
}

// Len returns the number of stored papers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byName)
}
