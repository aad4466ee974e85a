package ports

import (
	"github.com/google/uuid"

	"paperlens/domain/paper"
)

// StorePort holds analyzed papers for the session, keyed by file name.
// The store is append-or-clear only: Put never overwrites and there is no
// per-entry delete.
type StorePort interface {
	// Put stores p unless a paper with the same file name already exists.
	// It reports whether the paper was stored.
	Put(p *paper.AnalyzedPaper) bool

	// Get returns the paper for a file name, if present.
	Get(fileName string) (*paper.AnalyzedPaper, bool)

	// GetByID returns the paper with the given ID, if present.
	GetByID(id uuid.UUID) (*paper.AnalyzedPaper, bool)

	// Has reports whether a file name has already been analyzed.
	Has(fileName string) bool

	// List returns all papers in insertion order.
	List() []*paper.AnalyzedPaper

	// Clear removes every stored paper.
	Clear()

	// Len returns the number of stored papers.
	Len() int
}
