package store

import (
	"context"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"docpipe/pkg/models"
)

// FirestoreStore implements DocumentStore on a Firestore collection.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

// FirestoreConfig holds connection settings for the record store.
type FirestoreConfig struct {
	// ProjectID is the Google Cloud project that owns the database.
	ProjectID string

	// Database is the Firestore database ID, usually "(default)".
	Database string

	// Collection is the collection holding document records.
	Collection string
}

// NewFirestoreStore connects to Firestore using credentials from the
// environment. It expects either GOOGLE_APPLICATION_CREDENTIALS path or
// GOOGLE_CREDENTIALS JSON in env, falling back to default credentials.
func NewFirestoreStore(ctx context.Context, cfg FirestoreConfig) (*FirestoreStore, error) {
	const op = "NewFirestoreStore"

	var opts []option.ClientOption
	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credJSON)))
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}

	database := cfg.Database
	if database == "" {
		database = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, cfg.ProjectID, database, opts...)
	if err != nil {
		return nil, &StoreError{Op: op, Err: err}
	}

	return &FirestoreStore{client: client, collection: cfg.Collection}, nil
}

// Close releases the Firestore connection.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

// Get returns the record with the given ID.
func (s *FirestoreStore) Get(ctx context.Context, id string) (*models.Document, error) {
	const op = "Get"

	snap, err := s.client.Collection(s.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, &StoreError{Op: op, ID: id, Err: ErrNotFound}
		}
		return nil, &StoreError{Op: op, ID: id, Err: err}
	}

	var doc models.Document
	if err := snap.DataTo(&doc); err != nil {
		return nil, &StoreError{Op: op, ID: id, Err: err}
	}
	doc.ID = snap.Ref.ID
	return &doc, nil
}

// UpdateExtraction writes the extracted text, and the language when given.
func (s *FirestoreStore) UpdateExtraction(ctx context.Context, id, text, language string) error {
	const op = "UpdateExtraction"

	updates := []firestore.Update{
		{Path: "extracted_text", Value: text},
		{Path: "updated_at", Value: time.Now().UTC()},
	}
	if language != "" {
		updates = append(updates, firestore.Update{Path: "language", Value: language})
	}

	if _, err := s.client.Collection(s.collection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return &StoreError{Op: op, ID: id, Err: ErrNotFound}
		}
		return &StoreError{Op: op, ID: id, Err: ErrWriteFailed}
	}
	return nil
}

// ListPending returns records that still need extraction.
func (s *FirestoreStore) ListPending(ctx context.Context, limit int) ([]*models.Document, error) {
	const op = "ListPending"

	query := s.client.Collection(s.collection).
		Where("extracted_text", "==", "").
		Limit(limit)

	var pending []*models.Document
	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &StoreError{Op: op, Err: err}
		}

		var doc models.Document
		if err := snap.DataTo(&doc); err != nil {
			return nil, &StoreError{Op: op, ID: snap.Ref.ID, Err: err}
		}
		doc.ID = snap.Ref.ID
		if doc.HasPDF() {
			pending = append(pending, &doc)
		}
	}

	return pending, nil
}
