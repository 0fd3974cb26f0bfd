package service

import (
	"context"
	"fmt"

	"hall-of-fame-backend/internal/auth"
	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/docstore"
	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// PhotoService manages the gallery photos of inductees
type PhotoService struct {
	repo      *repository.Collection[models.Photo]
	cascade   *Cascade
	validator *validator.Validate
}

// Ensure PhotoService implements PhotoServiceInterface
var _ PhotoServiceInterface = (*PhotoService)(nil)

func NewPhotoService(repo *repository.Collection[models.Photo], cascade *Cascade, validator *validator.Validate) *PhotoService {
	return &PhotoService{repo: repo, cascade: cascade, validator: validator}
}

// List returns the gallery of one inductee in display order
func (s *PhotoService) List(ctx context.Context, inducteeID string) ([]models.Photo, error) {
	if inducteeID == "" {
		return []models.Photo{}, apperrors.NewValidationError("inducteeId", "is required")
	}
	photos, err := s.repo.ListWhere(ctx, "inducteeId", inducteeID, "order", docstore.Asc)
	if err != nil {
		return []models.Photo{}, fmt.Errorf("failed to get photos: %w", err)
	}
	return photos, nil
}

func (s *PhotoService) Get(ctx context.Context, id string) (*models.Photo, error) {
	return s.repo.Get(ctx, id)
}

func (s *PhotoService) Create(ctx context.Context, session *auth.Session, req *CreatePhotoRequest) (*CreateResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	photo := &models.Photo{
		Record:     models.Record{CreatedBy: session.Actor(), UpdatedBy: session.Actor()},
		InducteeID: req.InducteeID,
		URL:        req.URL,
		Caption:    req.Caption,
		Order:      req.Order.Int(),
	}
	id, err := s.repo.Create(ctx, photo)
	if err != nil {
		return nil, err
	}
	return &CreateResponse{ID: id}, nil
}

func (s *PhotoService) Update(ctx context.Context, session *auth.Session, id string, req *UpdatePhotoRequest) (*models.Photo, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	p := patch{}
	p.str("url", req.URL)
	p.str("caption", req.Caption)
	p.integer("order", req.Order)

	if err := s.repo.Update(ctx, id, p.stamp(session.Actor())); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes the photo document and its hosted file
func (s *PhotoService) Delete(ctx context.Context, session *auth.Session, id string) (*CascadeResult, error) {
	photo, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res := s.cascade.Delete(ctx, s.repo.Name(), id, photo.URL)
	return &res, res.Err
}
