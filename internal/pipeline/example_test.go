package pipeline_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"docpipe/internal/config"
	"docpipe/internal/pipeline"
	"docpipe/internal/store"
	"docpipe/pkg/models"
)

// Example demonstrates extracting text from a stored record.
func Example() {
	// Load .env file (using godotenv in main)
	// This should be done in your main() function:
	//
	// if err := godotenv.Load(); err != nil {
	//     log.Printf("Warning: Could not load .env file: %v", err)
	// }

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Connect to the configured Firestore collection
	st, err := store.NewFirestoreStore(ctx, store.FirestoreConfig{
		ProjectID:  cfg.FirestoreProject,
		Database:   cfg.FirestoreDatabase,
		Collection: cfg.FirestoreCollection,
	})
	if err != nil {
		log.Fatalf("Failed to connect to record store: %v", err)
	}
	defer st.Close()

	svc := pipeline.NewFromConfig(cfg, st)

	// Extract text for one record; the result is persisted automatically
	result, err := svc.Extract(ctx, "document-id", pipeline.Options{})
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	fmt.Printf("Extracted %d characters (language %s, OCR: %v)\n",
		len(result.Text), result.Language, result.UsedOCR)
}

// ExampleService_ExtractDocument demonstrates processing a local file
// without any record store involvement.
func ExampleService_ExtractDocument() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	svc := pipeline.NewFromConfig(cfg, store.NewMemoryStore())

	// A document without an ID is never persisted
	doc := &models.Document{PDFPath: "scan.pdf"}

	result, err := svc.ExtractDocument(ctx, doc, pipeline.Options{
		LanguageOverride: "Hindi",
	})
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	fmt.Println(result.Text)
}

// ExampleService_ProcessPending demonstrates batch processing of all
// records that still lack extracted text.
func ExampleService_ProcessPending() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	st, err := store.NewFirestoreStore(ctx, store.FirestoreConfig{
		ProjectID:  cfg.FirestoreProject,
		Database:   cfg.FirestoreDatabase,
		Collection: cfg.FirestoreCollection,
	})
	if err != nil {
		log.Fatalf("Failed to connect to record store: %v", err)
	}
	defer st.Close()

	svc := pipeline.NewFromConfig(cfg, st)

	res, err := svc.ProcessPending(ctx, 100, 4)
	if err != nil {
		log.Fatalf("Batch failed: %v", err)
	}

	fmt.Printf("Processed %d records: %d succeeded, %d failed\n",
		res.Processed, res.Succeeded, res.Failed)
}
