package storage_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"hall-of-fame-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("client went away") }

// fakeBucket answers the JSON API calls the GCS client makes against an emulator host.
func fakeBucket(t *testing.T) (*storage.GCSStore, *int32) {
	var uploads int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":404,"message":"No such object"}}`))
		case strings.HasPrefix(r.URL.Path, "/upload/"):
			atomic.AddInt32(&uploads, 1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"bucket":"hof-test","name":"inductees/a.png"}`))
		default:
			w.WriteHeader(http.StatusNotImplemented)
		}
	}))
	t.Cleanup(srv.Close)
	t.Setenv("STORAGE_EMULATOR_HOST", srv.URL)

	store, err := storage.NewGCSStore(context.Background(), "hof-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, &uploads
}

func TestGCSStoreFailedCopyStoresNothing(t *testing.T) {
	store, uploads := fakeBucket(t)

	_, err := store.Write(context.Background(), "inductees/a.png", "image/png", failingReader{})
	require.Error(t, err)
	assert.Zero(t, atomic.LoadInt32(uploads))
}

func TestGCSStoreDeleteOfMissingObject(t *testing.T) {
	store, _ := fakeBucket(t)
	assert.NoError(t, store.Delete(context.Background(), "inductees/gone.png"))
}
