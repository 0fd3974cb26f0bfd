// Package storage is the object storage façade for uploaded images. Objects are
// addressed by a path and exposed through Firebase-style download URLs.
package storage

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/logger"

	"github.com/gabriel-vasile/mimetype"
)

// MaxUploadBytes is the largest image accepted.
const MaxUploadBytes = 5 << 20

// sniffBytes is how much of the upload is inspected to detect its real type.
const sniffBytes = 3072

// Folders are the object path prefixes uploads may target.
var Folders = []string{
	"inductees",
	"championships",
	"class-images",
	"home-banner",
	"wall-of-fame",
	"photos",
	"championship-photos",
}

// ObjectStore is a bucket backend.
type ObjectStore interface {
	// Write stores r at objectPath and returns the download token.
	Write(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
	// Delete removes objectPath. An object that is already gone is not an error.
	Delete(ctx context.Context, objectPath string) error
}

// ProgressFunc receives the upload percentage in [0, 100].
type ProgressFunc func(percent float64)

type UploadRequest struct {
	Folder      string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadResult struct {
	URL         string `json:"url"`
	Path        string `json:"path"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Service validates uploads and maps object paths to public URLs.
type Service struct {
	objects ObjectStore
	baseURL string
	bucket  string
	now     func() time.Time
}

// NewService serves objects at <baseURL>/v0/b/<bucket>/o/<path>.
func NewService(objects ObjectStore, baseURL, bucket string) *Service {
	return &Service{
		objects: objects,
		baseURL: strings.TrimRight(baseURL, "/"),
		bucket:  bucket,
		now:     time.Now,
	}
}

// Validate checks the declared type and size before any bytes are sent.
func Validate(contentType string, size int64) error {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/") {
		return apperrors.ErrNotAnImage
	}
	if size > MaxUploadBytes {
		return apperrors.ErrFileTooLarge
	}
	return nil
}

// ValidFolder reports whether folder is an allowed upload prefix.
func ValidFolder(folder string) bool {
	for _, f := range Folders {
		if f == folder {
			return true
		}
	}
	return false
}

// Upload validates, sniffs and streams req.Body to the bucket.
// progress may be nil.
func (s *Service) Upload(ctx context.Context, req UploadRequest, progress ProgressFunc) (*UploadResult, error) {
	if err := Validate(req.ContentType, req.Size); err != nil {
		return nil, err
	}
	if !ValidFolder(req.Folder) {
		return nil, apperrors.ErrUnknownFolder
	}

	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(req.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	detected := mimetype.Detect(head)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, apperrors.ErrNotAnImage
	}

	objectPath := fmt.Sprintf("%s/%d_%s", req.Folder, s.now().UnixMilli(), sanitizeFilename(req.Filename))
	body := &progressReader{
		r:        io.MultiReader(bytes.NewReader(head), req.Body),
		total:    req.Size,
		progress: progress,
	}

	token, err := s.objects.Write(ctx, objectPath, req.ContentType, body)
	if err != nil {
		if errors.Is(err, apperrors.ErrFileTooLarge) {
			return nil, apperrors.ErrFileTooLarge
		}
		return nil, apperrors.NewStorageError("upload", objectPath, err)
	}
	body.finish()

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"path":  objectPath,
		"bytes": body.read,
	}).Info("Uploaded object")

	return &UploadResult{
		URL:         s.DownloadURL(objectPath, token),
		Path:        objectPath,
		ContentType: req.ContentType,
		Size:        body.read,
	}, nil
}

// DownloadURL builds the public URL for objectPath. The path is escaped as one
// segment so "/" becomes %2F.
func (s *Service) DownloadURL(objectPath, token string) string {
	u := fmt.Sprintf("%s/v0/b/%s/o/%s?alt=media", s.baseURL, s.bucket, url.PathEscape(objectPath))
	if token != "" {
		u += "&token=" + url.QueryEscape(token)
	}
	return u
}

// ParsePath extracts the object path from a download URL.
func ParsePath(rawURL string) (string, error) {
	withoutQuery, _, _ := strings.Cut(rawURL, "?")
	idx := strings.LastIndex(withoutQuery, "/o/")
	if idx < 0 {
		return "", fmt.Errorf("no object path in %q", rawURL)
	}
	escaped := withoutQuery[idx+len("/o/"):]
	if escaped == "" {
		return "", fmt.Errorf("no object path in %q", rawURL)
	}
	p, err := url.PathUnescape(escaped)
	if err != nil {
		return "", fmt.Errorf("bad object path in %q: %w", rawURL, err)
	}
	return p, nil
}

// IsHosted reports whether rawURL points into this service's bucket.
func (s *Service) IsHosted(rawURL string) bool {
	return strings.HasPrefix(rawURL, fmt.Sprintf("%s/v0/b/%s/o/", s.baseURL, s.bucket))
}

// Delete removes the object at objectPath.
func (s *Service) Delete(ctx context.Context, objectPath string) error {
	if err := s.objects.Delete(ctx, objectPath); err != nil {
		return apperrors.NewStorageError("delete", objectPath, err)
	}
	return nil
}

// DeleteByURL removes the object behind a download URL. Failures are logged as
// warnings and returned; callers treat them as non-fatal.
func (s *Service) DeleteByURL(ctx context.Context, rawURL string) error {
	log := logger.WithContext(ctx).WithField("url", rawURL)

	if !s.IsHosted(rawURL) {
		log.Warn("Skipping delete of object outside the storage bucket")
		return apperrors.ErrNotHostedURL
	}
	objectPath, err := ParsePath(rawURL)
	if err != nil {
		log.WithError(err).Warn("Could not parse storage URL")
		return err
	}
	if err := s.Delete(ctx, objectPath); err != nil {
		log.WithError(err).Warn("Failed to delete stored object")
		return err
	}
	log.Info("Deleted stored object")
	return nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func sanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "upload"
	}
	return base
}

// progressReader reports read progress and refuses to read past MaxUploadBytes.
type progressReader struct {
	r        io.Reader
	total    int64
	read     int64
	progress ProgressFunc
	last     float64
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.read > MaxUploadBytes {
		return n, apperrors.ErrFileTooLarge
	}
	if p.progress != nil && p.total > 0 {
		pct := float64(p.read) / float64(p.total) * 100
		if pct > 100 {
			pct = 100
		}
		if pct > p.last {
			p.last = pct
			p.progress(pct)
		}
	}
	return n, err
}

func (p *progressReader) finish() {
	if p.progress != nil && p.last < 100 {
		p.last = 100
		p.progress(100)
	}
}
