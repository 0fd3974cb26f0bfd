package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// FirebaseBaseURL is the public host for objects in a Firebase storage bucket.
const FirebaseBaseURL = "https://firebasestorage.googleapis.com"

// downloadTokenKey is the metadata key Firebase reads download tokens from.
const downloadTokenKey = "firebaseStorageDownloadTokens"

// GCSStore writes objects to a Cloud Storage bucket.
type GCSStore struct {
	client *gcs.Client
	bucket *gcs.BucketHandle
}

var _ ObjectStore = (*GCSStore)(nil)

func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: client.Bucket(bucket)}, nil
}

func (s *GCSStore) Write(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	token := uuid.NewString()

	// Cancelling the writer's context abandons the upload; Close would commit
	// whatever was copied so far.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.bucket.Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=31536000"
	w.Metadata = map[string]string{downloadTokenKey: token}

	if _, err := io.Copy(w, r); err != nil {
		cancel()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *GCSStore) Delete(ctx context.Context, objectPath string) error {
	err := s.bucket.Object(objectPath).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	return err
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
