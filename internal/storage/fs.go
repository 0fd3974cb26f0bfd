package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// FSStore keeps objects on an afero filesystem. The API serves them back under
// /media with the same URL shape as the hosted bucket.
type FSStore struct {
	fs afero.Fs
}

var _ ObjectStore = (*FSStore)(nil)

func NewFSStore(fs afero.Fs) *FSStore {
	return &FSStore{fs: fs}
}

// NewDirStore roots an FSStore at dir on the OS filesystem.
func NewDirStore(dir string) (*FSStore, error) {
	if err := afero.NewOsFs().MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return NewFSStore(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

// rooted keeps object keys absolute so http.FileSystem lookups find them.
func rooted(objectPath string) string {
	return path.Join("/", objectPath)
}

func (s *FSStore) Write(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	objectPath = rooted(objectPath)
	if err := s.fs.MkdirAll(path.Dir(objectPath), 0o755); err != nil {
		return "", err
	}
	f, err := s.fs.Create(objectPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, &ctxReader{ctx: ctx, r: r}); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(objectPath)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return uuid.NewString(), nil
}

func (s *FSStore) Delete(_ context.Context, objectPath string) error {
	err := s.fs.Remove(rooted(objectPath))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Exists reports whether objectPath is stored.
func (s *FSStore) Exists(objectPath string) bool {
	ok, err := afero.Exists(s.fs, rooted(objectPath))
	return err == nil && ok
}

// HTTPFileSystem exposes the stored objects to net/http file serving.
func (s *FSStore) HTTPFileSystem() http.FileSystem {
	return afero.NewHttpFs(s.fs)
}

// ctxReader stops a copy once ctx is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
