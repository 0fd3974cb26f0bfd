package service

import (
	"context"
	"fmt"

	"hall-of-fame-backend/internal/auth"
	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/docstore"
	"hall-of-fame-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ChampionshipService provides championship administration
type ChampionshipService struct {
	repo      *repository.Collection[models.Championship]
	cascade   *Cascade
	validator *validator.Validate
}

// Ensure ChampionshipService implements ChampionshipServiceInterface
var _ ChampionshipServiceInterface = (*ChampionshipService)(nil)

func NewChampionshipService(repo *repository.Collection[models.Championship], cascade *Cascade, validator *validator.Validate) *ChampionshipService {
	return &ChampionshipService{repo: repo, cascade: cascade, validator: validator}
}

// List returns every championship, most recent first, filtered by q
func (s *ChampionshipService) List(ctx context.Context, q string) ([]models.Championship, error) {
	championships, err := s.repo.List(ctx, "year", docstore.Desc)
	if err != nil {
		return []models.Championship{}, fmt.Errorf("failed to get championships: %w", err)
	}
	return SearchChampionships(championships, q), nil
}

func (s *ChampionshipService) Get(ctx context.Context, id string) (*models.Championship, error) {
	return s.repo.Get(ctx, id)
}

func (s *ChampionshipService) Create(ctx context.Context, session *auth.Session, req *CreateChampionshipRequest) (*CreateResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := requireYear("year", req.Year); err != nil {
		return nil, err
	}

	championship := &models.Championship{
		Record:      models.Record{CreatedBy: session.Actor(), UpdatedBy: session.Actor()},
		Title:       req.Title,
		Year:        req.Year.Value,
		Coach:       req.Coach,
		Sport:       req.Sport,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
	}
	id, err := s.repo.Create(ctx, championship)
	if err != nil {
		return nil, err
	}
	return &CreateResponse{ID: id}, nil
}

func (s *ChampionshipService) Update(ctx context.Context, session *auth.Session, id string, req *UpdateChampionshipRequest) (*models.Championship, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Year.Set {
		if err := requireYear("year", req.Year); err != nil {
			return nil, err
		}
	}

	p := patch{}
	p.str("title", req.Title)
	p.integer("year", req.Year)
	p.str("coach", req.Coach)
	p.str("sport", req.Sport)
	p.str("description", req.Description)
	p.str("photoURL", req.PhotoURL)

	if err := s.repo.Update(ctx, id, p.stamp(session.Actor())); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes the championship and its hosted photo. Gallery photos are kept.
func (s *ChampionshipService) Delete(ctx context.Context, session *auth.Session, id string) (*CascadeResult, error) {
	championship, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res := s.cascade.Delete(ctx, s.repo.Name(), id, championship.PhotoURL)
	return &res, res.Err
}
