package memstore

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperlens/domain/paper"
)

func newPaper(fileName string) *paper.AnalyzedPaper {
	return &paper.AnalyzedPaper{
		ID:       uuid.New(),
		FileName: fileName,
		Summary:  paper.Summary{Title: fileName},
	}
}

func TestPutAndGet(t *testing.T) {
	store := New()
	p := newPaper("a.pdf")

	assert.True(t, store.Put(p))
	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Has("a.pdf"))

	got, ok := store.Get("a.pdf")
	require.True(t, ok)
	assert.Same(t, p, got)

	byID, ok := store.GetByID(p.ID)
	require.True(t, ok)
	assert.Same(t, p, byID)
}

func TestPutNeverOverwrites(t *testing.T) {
	store := New()
	first := newPaper("a.pdf")
	second := newPaper("a.pdf")

	assert.True(t, store.Put(first))
	assert.False(t, store.Put(second))

	got, ok := store.Get("a.pdf")
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, 1, store.Len())
}

func TestListKeepsInsertionOrder(t *testing.T) {
	store := New()
	names := []string{"c.pdf", "a.pdf", "b.pdf"}
	for _, name := range names {
		store.Put(newPaper(name))
	}

	papers := store.List()
	require.Len(t, papers, 3)
	for i, name := range names {
		assert.Equal(t, name, papers[i].FileName)
	}
}

func TestClear(t *testing.T) {
	store := New()
	store.Put(newPaper("a.pdf"))
	store.Put(newPaper("b.pdf"))

	store.Clear()

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.List())
	assert.False(t, store.Has("a.pdf"))

	_, ok := store.Get("a.pdf")
	assert.False(t, ok)
}

func TestGetMissing(t *testing.T) {
	store := New()

	_, ok := store.Get("missing.pdf")
	assert.False(t, ok)

	_, ok = store.GetByID(uuid.New())
	assert.False(t, ok)
}
