package store

import (
	"context"
	"sync"
	"time"

	"docpipe/pkg/models"
)

// MemoryStore is an in-memory DocumentStore for tests and for CLI runs
// that extract local files without a configured record store.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]*models.Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]*models.Document)}
}

// Put inserts or replaces a record.
func (s *MemoryStore) Put(doc *models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *doc
	s.docs[doc.ID] = &copy
}

// Get returns the record with the given ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, &StoreError{Op: "Get", ID: id, Err: ErrNotFound}
	}
	copy := *doc
	return &copy, nil
}

// UpdateExtraction writes the extracted text, and the language when given.
func (s *MemoryStore) UpdateExtraction(ctx context.Context, id, text, language string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return &StoreError{Op: "UpdateExtraction", ID: id, Err: ErrNotFound}
	}
	doc.ExtractedText = text
	if language != "" {
		doc.Language = language
	}
	doc.UpdatedAt = time.Now().UTC()
	return nil
}

// ListPending returns records that still need extraction.
func (s *MemoryStore) ListPending(ctx context.Context, limit int) ([]*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var pending []*models.Document
	for _, doc := range s.docs {
		if len(pending) >= limit {
			break
		}
		if doc.ExtractedText == "" && doc.HasPDF() {
			copy := *doc
			pending = append(pending, &copy)
		}
	}
	return pending, nil
}
