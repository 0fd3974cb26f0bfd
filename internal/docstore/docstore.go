// Package docstore is the schemaless document store the rest of the backend is built on.
// Two backends exist: Firestore and a single-table SQL store over GORM.
package docstore

//go:generate mockgen -source=docstore.go -destination=../mocks/docstore_mocks.go -package=mocks

import (
	"context"

	apperrors "hall-of-fame-backend/internal/errors"
)

// Timestamp fields stamped by every backend
const (
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// ErrNotFound is returned by Get, Update and Delete when the document does not exist.
var ErrNotFound = apperrors.ErrDocumentNotFound

// Document is the body of a stored document. The id is never part of the body.
type Document map[string]interface{}

type Direction int

const (
	Asc Direction = iota
	Desc
)

// Query is an optional equality filter plus an optional single-field ordering.
type Query struct {
	Field     string
	Value     interface{}
	OrderBy   string
	Direction Direction
}

// Snapshot is a document together with its id.
type Snapshot struct {
	ID   string
	Data Document
}

// Store is implemented by every backend.
type Store interface {
	// Create stamps createdAt and updatedAt, inserts doc and returns the new id.
	Create(ctx context.Context, collection string, doc Document) (string, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	// List never returns a nil slice.
	List(ctx context.Context, collection string, q Query) ([]Snapshot, error)
	// Update merges patch into the stored document and refreshes updatedAt.
	Update(ctx context.Context, collection, id string, patch Document) error
	// Set overwrites the document at id, creating it when absent.
	Set(ctx context.Context, collection, id string, doc Document) error
	Delete(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
	Close() error
}
