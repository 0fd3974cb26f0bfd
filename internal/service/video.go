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

// VideoService manages ceremony videos. URLs are stored as entered.
type VideoService struct {
	repo      *repository.Collection[models.Video]
	cascade   *Cascade
	validator *validator.Validate
}

// Ensure VideoService implements VideoServiceInterface
var _ VideoServiceInterface = (*VideoService)(nil)

func NewVideoService(repo *repository.Collection[models.Video], cascade *Cascade, validator *validator.Validate) *VideoService {
	return &VideoService{repo: repo, cascade: cascade, validator: validator}
}

// List returns every video, newest class first, filtered by q
func (s *VideoService) List(ctx context.Context, q string) ([]models.Video, error) {
	videos, err := s.repo.List(ctx, "classYear", docstore.Desc)
	if err != nil {
		return []models.Video{}, fmt.Errorf("failed to get videos: %w", err)
	}
	return SearchVideos(videos, q), nil
}

func (s *VideoService) Get(ctx context.Context, id string) (*models.Video, error) {
	return s.repo.Get(ctx, id)
}

func (s *VideoService) Create(ctx context.Context, session *auth.Session, req *CreateVideoRequest) (*CreateResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := requireYear("classYear", req.ClassYear); err != nil {
		return nil, err
	}

	video := &models.Video{
		Record:      models.Record{CreatedBy: session.Actor(), UpdatedBy: session.Actor()},
		ClassYear:   req.ClassYear.Value,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	}
	id, err := s.repo.Create(ctx, video)
	if err != nil {
		return nil, err
	}
	return &CreateResponse{ID: id}, nil
}

func (s *VideoService) Update(ctx context.Context, session *auth.Session, id string, req *UpdateVideoRequest) (*models.Video, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.ClassYear.Set {
		if err := requireYear("classYear", req.ClassYear); err != nil {
			return nil, err
		}
	}

	p := patch{}
	p.integer("classYear", req.ClassYear)
	p.str("title", req.Title)
	p.str("url", req.URL)
	p.str("description", req.Description)

	if err := s.repo.Update(ctx, id, p.stamp(session.Actor())); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes the video document. Videos reference external hosts, so no
// storage object is touched.
func (s *VideoService) Delete(ctx context.Context, session *auth.Session, id string) (*CascadeResult, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	res := s.cascade.Delete(ctx, s.repo.Name(), id)
	return &res, res.Err
}
