package service

import (
	"context"
	"fmt"

	"hall-of-fame-backend/internal/auth"
	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/docstore"
	"hall-of-fame-backend/internal/logger"
	"hall-of-fame-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ClassService provides induction class administration
type ClassService struct {
	repo      *repository.Collection[models.InductionClass]
	cascade   *Cascade
	validator *validator.Validate
}

// Ensure ClassService implements ClassServiceInterface
var _ ClassServiceInterface = (*ClassService)(nil)

// NewClassService creates a new ClassService
func NewClassService(repo *repository.Collection[models.InductionClass], cascade *Cascade, validator *validator.Validate) *ClassService {
	return &ClassService{repo: repo, cascade: cascade, validator: validator}
}

// List returns every class, newest year first, filtered by q
func (s *ClassService) List(ctx context.Context, q string) ([]models.InductionClass, error) {
	classes, err := s.repo.List(ctx, "year", docstore.Desc)
	if err != nil {
		return []models.InductionClass{}, fmt.Errorf("failed to get classes: %w", err)
	}
	return SearchClasses(classes, q), nil
}

func (s *ClassService) Get(ctx context.Context, id string) (*models.InductionClass, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new class. Years are not unique; a duplicate is logged and
// flagged in the response.
func (s *ClassService) Create(ctx context.Context, session *auth.Session, req *CreateClassRequest) (*CreateResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := requireYear("year", req.Year); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListWhere(ctx, "year", req.Year.Value, "", docstore.Asc)
	if err != nil {
		return nil, fmt.Errorf("failed to check class year: %w", err)
	}

	class := &models.InductionClass{
		Record:        models.Record{CreatedBy: session.Actor(), UpdatedBy: session.Actor()},
		Year:          req.Year.Value,
		InducteeCount: req.InducteeCount.Int(),
		CeremonyDate:  req.CeremonyDate,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
	}
	id, err := s.repo.Create(ctx, class)
	if err != nil {
		return nil, err
	}

	resp := &CreateResponse{ID: id, DuplicateYear: len(existing) > 0}
	if resp.DuplicateYear {
		logger.WithContext(ctx).WithField("year", class.Year).Warn("Created a second class for the same year")
	}
	return resp, nil
}

// Update merges the provided fields into the class
func (s *ClassService) Update(ctx context.Context, session *auth.Session, id string, req *UpdateClassRequest) (*models.InductionClass, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Year.Set {
		if err := requireYear("year", req.Year); err != nil {
			return nil, err
		}
	}

	p := patch{}
	p.integer("year", req.Year)
	p.integer("inducteeCount", req.InducteeCount)
	p.str("ceremonyDate", req.CeremonyDate)
	p.str("description", req.Description)
	p.str("imageURL", req.ImageURL)

	if err := s.repo.Update(ctx, id, p.stamp(session.Actor())); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes the class and its hosted image. Inductees of the class are kept.
func (s *ClassService) Delete(ctx context.Context, session *auth.Session, id string) (*CascadeResult, error) {
	class, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res := s.cascade.Delete(ctx, s.repo.Name(), id, class.ImageURL)
	return &res, res.Err
}
