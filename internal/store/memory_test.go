package store

import (
	"context"
	"errors"
	"testing"

	"docpipe/pkg/models"
)

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreUpdateExtraction(t *testing.T) {
	s := NewMemoryStore()
	s.Put(&models.Document{ID: "doc1", PDFURL: "https://example.com/a.pdf"})

	if err := s.UpdateExtraction(context.Background(), "doc1", "hello world", "eng"); err != nil {
		t.Fatalf("UpdateExtraction() error: %v", err)
	}

	doc, err := s.Get(context.Background(), "doc1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if doc.ExtractedText != "hello world" {
		t.Errorf("ExtractedText = %q, want %q", doc.ExtractedText, "hello world")
	}
	if doc.Language != "eng" {
		t.Errorf("Language = %q, want %q", doc.Language, "eng")
	}

	// Empty language must leave the stored hint alone.
	if err := s.UpdateExtraction(context.Background(), "doc1", "updated", ""); err != nil {
		t.Fatalf("UpdateExtraction() error: %v", err)
	}
	doc, _ = s.Get(context.Background(), "doc1")
	if doc.Language != "eng" {
		t.Errorf("Language = %q after empty-language update, want %q", doc.Language, "eng")
	}
}

func TestMemoryStoreListPending(t *testing.T) {
	s := NewMemoryStore()
	s.Put(&models.Document{ID: "done", PDFURL: "https://example.com/a.pdf", ExtractedText: "text"})
	s.Put(&models.Document{ID: "todo", PDFURL: "https://example.com/b.pdf"})
	s.Put(&models.Document{ID: "nopdf"})

	pending, err := s.ListPending(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListPending() error: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "todo" {
		t.Errorf("ListPending() = %+v, want just the record with a PDF and no text", pending)
	}
}
