package service

import (
	"context"
	"errors"

	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/logger"
	"hall-of-fame-backend/internal/storage"
)

// UploadService stores images for the admin forms
type UploadService struct {
	storage Uploader
}

// Ensure UploadService implements UploadServiceInterface
var _ UploadServiceInterface = (*UploadService)(nil)

func NewUploadService(storage Uploader) *UploadService {
	return &UploadService{storage: storage}
}

// RemoveResponse reports whether a hosted image was removed
type RemoveResponse struct {
	URL     string `json:"url"`
	Removed bool   `json:"removed"`
}

// Upload validates and stores one image. progress may be nil.
func (s *UploadService) Upload(ctx context.Context, req storage.UploadRequest, progress storage.ProgressFunc) (*storage.UploadResult, error) {
	res, err := s.storage.Upload(ctx, req, progress)
	if err != nil {
		if !apperrors.IsValidation(err) {
			logger.WithContext(ctx).WithError(err).WithField("folder", req.Folder).Error("Upload failed")
		}
		return nil, err
	}
	return res, nil
}

// Remove deletes a hosted image. It is best effort: a failure is reported as
// Removed false rather than an error. Only a URL outside the bucket is rejected.
func (s *UploadService) Remove(ctx context.Context, rawURL string) (*RemoveResponse, error) {
	if !s.storage.IsHosted(rawURL) {
		return nil, apperrors.NewValidationError("url", apperrors.ErrNotHostedURL.Error())
	}
	err := s.storage.DeleteByURL(ctx, rawURL)
	if errors.Is(err, apperrors.ErrNotHostedURL) {
		return nil, apperrors.NewValidationError("url", err.Error())
	}
	return &RemoveResponse{URL: rawURL, Removed: err == nil}, nil
}
