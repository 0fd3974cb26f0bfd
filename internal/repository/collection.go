package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hall-of-fame-backend/internal/docstore"
)

// Collection is a typed view over one document store collection.
// T must be a struct whose JSON field names are the document field names and
// which embeds models.Record so the id round-trips.
type Collection[T any] struct {
	store    docstore.Store
	name     string
	notFound error
}

// NewCollection binds T to a collection. notFound is returned in place of the
// store's generic not-found error.
func NewCollection[T any](store docstore.Store, name string, notFound error) *Collection[T] {
	return &Collection[T]{store: store, name: name, notFound: notFound}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// Create inserts v and returns the store-assigned id.
func (c *Collection[T]) Create(ctx context.Context, v *T) (string, error) {
	doc, err := toDocument(v)
	if err != nil {
		return "", err
	}
	id, err := c.store.Create(ctx, c.name, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create %s document: %w", c.name, err)
	}
	return id, nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	doc, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return nil, c.mapErr(err)
	}
	return fromDocument[T](id, doc)
}

// List returns every document ordered by orderBy (or store order when empty).
func (c *Collection[T]) List(ctx context.Context, orderBy string, dir docstore.Direction) ([]T, error) {
	return c.query(ctx, docstore.Query{OrderBy: orderBy, Direction: dir})
}

// ListWhere returns documents whose field equals value.
func (c *Collection[T]) ListWhere(ctx context.Context, field string, value interface{}, orderBy string, dir docstore.Direction) ([]T, error) {
	return c.query(ctx, docstore.Query{Field: field, Value: value, OrderBy: orderBy, Direction: dir})
}

// Update merges patch into the document.
func (c *Collection[T]) Update(ctx context.Context, id string, patch docstore.Document) error {
	if err := c.store.Update(ctx, c.name, id, patch); err != nil {
		return c.mapErr(err)
	}
	return nil
}

// Set overwrites the document at id with v.
func (c *Collection[T]) Set(ctx context.Context, id string, v *T) error {
	doc, err := toDocument(v)
	if err != nil {
		return err
	}
	if err := c.store.Set(ctx, c.name, id, doc); err != nil {
		return fmt.Errorf("failed to set %s/%s: %w", c.name, id, err)
	}
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, c.name, id); err != nil {
		return c.mapErr(err)
	}
	return nil
}

func (c *Collection[T]) query(ctx context.Context, q docstore.Query) ([]T, error) {
	snaps, err := c.store.List(ctx, c.name, q)
	if err != nil {
		return []T{}, fmt.Errorf("failed to list %s: %w", c.name, err)
	}
	out := make([]T, 0, len(snaps))
	for _, snap := range snaps {
		v, err := fromDocument[T](snap.ID, snap.Data)
		if err != nil {
			return []T{}, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (c *Collection[T]) mapErr(err error) error {
	if errors.Is(err, docstore.ErrNotFound) && c.notFound != nil {
		return c.notFound
	}
	return fmt.Errorf("%s: %w", c.name, err)
}

// toDocument drops the id and any zero timestamps; the store owns those fields.
func toDocument(v interface{}) (docstore.Document, error) {
	doc, err := docstore.Encode(v)
	if err != nil {
		return nil, err
	}
	delete(doc, "id")
	for _, field := range []string{docstore.FieldCreatedAt, docstore.FieldUpdatedAt} {
		if t, ok := doc[field].(time.Time); ok && t.IsZero() {
			delete(doc, field)
		}
	}
	return doc, nil
}

func fromDocument[T any](id string, doc docstore.Document) (*T, error) {
	body := doc.Clone()
	body["id"] = id
	var v T
	if err := docstore.Decode(body, &v); err != nil {
		return nil, fmt.Errorf("document %s: %w", id, err)
	}
	return &v, nil
}
