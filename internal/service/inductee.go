package service

import (
	"context"
	"fmt"

	"hall-of-fame-backend/internal/auth"
	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/docstore"
	"hall-of-fame-backend/internal/repository"
	"hall-of-fame-backend/internal/sports"

	"github.com/go-playground/validator/v10"
)

// InducteeService provides inductee administration
type InducteeService struct {
	repo      *repository.Collection[models.Inductee]
	cascade   *Cascade
	validator *validator.Validate
}

// Ensure InducteeService implements InducteeServiceInterface
var _ InducteeServiceInterface = (*InducteeService)(nil)

// NewInducteeService creates a new InducteeService
func NewInducteeService(repo *repository.Collection[models.Inductee], cascade *Cascade, validator *validator.Validate) *InducteeService {
	return &InducteeService{repo: repo, cascade: cascade, validator: validator}
}

// List returns every inductee ordered by name, filtered by q over name and sport
func (s *InducteeService) List(ctx context.Context, q string) ([]models.Inductee, error) {
	inductees, err := s.repo.List(ctx, "name", docstore.Asc)
	if err != nil {
		return []models.Inductee{}, fmt.Errorf("failed to get inductees: %w", err)
	}
	return SearchInductees(inductees, q), nil
}

func (s *InducteeService) Get(ctx context.Context, id string) (*models.Inductee, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new inductee with its sport normalized into tags
func (s *InducteeService) Create(ctx context.Context, session *auth.Session, req *CreateInducteeRequest) (*CreateResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := requireYear("classYear", req.ClassYear); err != nil {
		return nil, err
	}
	if err := optionalYear("graduationYear", req.GraduationYear); err != nil {
		return nil, err
	}

	inductee := &models.Inductee{
		Record:         models.Record{CreatedBy: session.Actor(), UpdatedBy: session.Actor()},
		Name:           req.Name,
		ClassYear:      req.ClassYear.Value,
		Sport:          req.Sport,
		Sports:         sports.Normalize(req.Sport),
		GraduationYear: req.GraduationYear.Ptr(),
		Bio:            req.Bio,
		Achievements:   req.Achievements,
		PhotoURL:       req.PhotoURL,
		SecondPhotoURL: req.SecondPhotoURL,
		VideoURL:       req.VideoURL,
	}
	id, err := s.repo.Create(ctx, inductee)
	if err != nil {
		return nil, err
	}
	return &CreateResponse{ID: id}, nil
}

// Update merges the provided fields. Changing sport rewrites the tags.
func (s *InducteeService) Update(ctx context.Context, session *auth.Session, id string, req *UpdateInducteeRequest) (*models.Inductee, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.ClassYear.Set {
		if err := requireYear("classYear", req.ClassYear); err != nil {
			return nil, err
		}
	}
	if err := optionalYear("graduationYear", req.GraduationYear); err != nil {
		return nil, err
	}

	p := patch{}
	p.str("name", req.Name)
	p.integer("classYear", req.ClassYear)
	p.nullable("graduationYear", req.GraduationYear)
	p.str("bio", req.Bio)
	p.str("achievements", req.Achievements)
	p.str("photoURL", req.PhotoURL)
	p.str("secondPhotoURL", req.SecondPhotoURL)
	p.str("videoURL", req.VideoURL)
	if req.Sport != nil {
		p["sport"] = *req.Sport
		p["sports"] = sports.Normalize(*req.Sport)
	}

	if err := s.repo.Update(ctx, id, p.stamp(session.Actor())); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes the inductee and both hosted photos. Gallery photos are kept.
func (s *InducteeService) Delete(ctx context.Context, session *auth.Session, id string) (*CascadeResult, error) {
	inductee, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res := s.cascade.Delete(ctx, s.repo.Name(), id, inductee.PhotoURL, inductee.SecondPhotoURL)
	return &res, res.Err
}
