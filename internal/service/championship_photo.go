package service

import (
	"context"
	"fmt"

	"hall-of-fame-backend/internal/auth"
	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/docstore"
	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/logger"
	"hall-of-fame-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ChampionshipPhotoService manages championship galleries
type ChampionshipPhotoService struct {
	repo          *repository.Collection[models.ChampionshipPhoto]
	championships *repository.Collection[models.Championship]
	cascade       *Cascade
	validator     *validator.Validate
}

// Ensure ChampionshipPhotoService implements ChampionshipPhotoServiceInterface
var _ ChampionshipPhotoServiceInterface = (*ChampionshipPhotoService)(nil)

func NewChampionshipPhotoService(repo *repository.Collection[models.ChampionshipPhoto], championships *repository.Collection[models.Championship], cascade *Cascade, validator *validator.Validate) *ChampionshipPhotoService {
	return &ChampionshipPhotoService{repo: repo, championships: championships, cascade: cascade, validator: validator}
}

// List returns the gallery of one championship in display order
func (s *ChampionshipPhotoService) List(ctx context.Context, championshipID string) ([]models.ChampionshipPhoto, error) {
	if championshipID == "" {
		return []models.ChampionshipPhoto{}, apperrors.NewValidationError("championshipId", "is required")
	}
	photos, err := s.repo.ListWhere(ctx, "championshipId", championshipID, "order", docstore.Asc)
	if err != nil {
		return []models.ChampionshipPhoto{}, fmt.Errorf("failed to get championship photos: %w", err)
	}
	return photos, nil
}

func (s *ChampionshipPhotoService) Get(ctx context.Context, id string) (*models.ChampionshipPhoto, error) {
	return s.repo.Get(ctx, id)
}

func (s *ChampionshipPhotoService) Create(ctx context.Context, session *auth.Session, req *CreateChampionshipPhotoRequest) (*CreateResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	photo := &models.ChampionshipPhoto{
		Record:         models.Record{CreatedBy: session.Actor(), UpdatedBy: session.Actor()},
		ChampionshipID: req.ChampionshipID,
		URL:            req.URL,
		Caption:        req.Caption,
		Order:          req.Order.Int(),
	}
	id, err := s.repo.Create(ctx, photo)
	if err != nil {
		return nil, err
	}
	return &CreateResponse{ID: id}, nil
}

func (s *ChampionshipPhotoService) Update(ctx context.Context, session *auth.Session, id string, req *UpdateChampionshipPhotoRequest) (*models.ChampionshipPhoto, error) {
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

// Promote copies the photo URL onto its championship. The two documents are
// written independently; the gallery photo is left in place.
func (s *ChampionshipPhotoService) Promote(ctx context.Context, session *auth.Session, id string) (*models.Championship, error) {
	photo, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p := patch{"photoURL": photo.URL}
	if err := s.championships.Update(ctx, photo.ChampionshipID, p.stamp(session.Actor())); err != nil {
		return nil, err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"championship_id": photo.ChampionshipID,
		"photo_id":        id,
	}).Info("Promoted championship photo")

	return s.championships.Get(ctx, photo.ChampionshipID)
}

// Delete removes the photo document and its hosted file. A championship that
// promoted this photo keeps pointing at the now missing URL.
func (s *ChampionshipPhotoService) Delete(ctx context.Context, session *auth.Session, id string) (*CascadeResult, error) {
	photo, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res := s.cascade.Delete(ctx, s.repo.Name(), id, photo.URL)
	return &res, res.Err
}
