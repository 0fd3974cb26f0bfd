package docstore

import (
	"context"
	"errors"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore maps collections onto top-level Firestore collections.
// Timestamps are server timestamps.
type FirestoreStore struct {
	client *fs.Client
}

var _ Store = (*FirestoreStore)(nil)

// NewFirestoreStore connects to projectID. FIRESTORE_EMULATOR_HOST is honoured by the client.
func NewFirestoreStore(ctx context.Context, projectID string) (*FirestoreStore, error) {
	client, err := fs.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	body := doc.Clone()
	body[FieldCreatedAt] = fs.ServerTimestamp
	body[FieldUpdatedAt] = fs.ServerTimestamp

	ref, _, err := s.client.Collection(collection).Add(ctx, map[string]interface{}(body))
	if err != nil {
		return "", fmt.Errorf("create %s document: %w", collection, err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return toDocument(snap.Data()), nil
}

func (s *FirestoreStore) List(ctx context.Context, collection string, q Query) ([]Snapshot, error) {
	query := s.client.Collection(collection).Query
	if q.Field != "" {
		query = query.Where(q.Field, "==", normalize(q.Value))
	}
	if q.OrderBy != "" {
		dir := fs.Asc
		if q.Direction == Desc {
			dir = fs.Desc
		}
		query = query.OrderBy(q.OrderBy, dir)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	snaps := make([]Snapshot, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return []Snapshot{}, fmt.Errorf("list %s: %w", collection, err)
		}
		snaps = append(snaps, Snapshot{ID: snap.Ref.ID, Data: toDocument(snap.Data())})
	}
	return snaps, nil
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, patch Document) error {
	updates := make([]fs.Update, 0, len(patch)+1)
	for _, k := range patch.SortedKeys() {
		updates = append(updates, fs.Update{FieldPath: fs.FieldPath{k}, Value: patch[k]})
	}
	updates = append(updates, fs.Update{FieldPath: fs.FieldPath{FieldUpdatedAt}, Value: fs.ServerTimestamp})

	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

// Set replaces the document body. An existing document keeps its createdAt.
func (s *FirestoreStore) Set(ctx context.Context, collection, id string, doc Document) error {
	ref := s.client.Collection(collection).Doc(id)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		body := doc.Clone()
		body[FieldUpdatedAt] = fs.ServerTimestamp

		snap, err := tx.Get(ref)
		switch {
		case status.Code(err) == codes.NotFound:
			if _, ok := body[FieldCreatedAt]; !ok {
				body[FieldCreatedAt] = fs.ServerTimestamp
			}
		case err != nil:
			return err
		default:
			if createdAt, err := snap.DataAt(FieldCreatedAt); err == nil {
				body[FieldCreatedAt] = createdAt
			} else {
				body[FieldCreatedAt] = snap.CreateTime
			}
		}
		return tx.Set(ref, map[string]interface{}(body))
	})
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx, fs.Exists)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Ping(ctx context.Context) error {
	iter := s.client.Collections(ctx)
	_, err := iter.Next()
	if err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("firestore ping: %w", err)
	}
	return nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

func toDocument(data map[string]interface{}) Document {
	if data == nil {
		return Document{}
	}
	return Document(normalize(data).(map[string]interface{}))
}
