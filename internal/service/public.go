package service

import (
	"context"
	"fmt"

	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/docstore"
	"hall-of-fame-backend/internal/repository"
	"hall-of-fame-backend/internal/sports"
	"hall-of-fame-backend/internal/youtube"
)

// PublicService backs the read-only endpoints of the public site
type PublicService struct {
	repos *repository.Repositories
}

// Ensure PublicService implements PublicServiceInterface
var _ PublicServiceInterface = (*PublicService)(nil)

func NewPublicService(repos *repository.Repositories) *PublicService {
	return &PublicService{repos: repos}
}

// ClassDetail is one class year with its inductees. Class is nil when no class
// document exists for the year.
type ClassDetail struct {
	Year      int                    `json:"year"`
	Class     *models.InductionClass `json:"class"`
	Inductees []models.Inductee      `json:"inductees"`
}

// InducteeDetail is an inductee with its gallery
type InducteeDetail struct {
	models.Inductee
	Photos []models.Photo `json:"photos"`
}

// ChampionshipDetail is a championship with its gallery
type ChampionshipDetail struct {
	models.Championship
	Photos []models.ChampionshipPhoto `json:"photos"`
}

// PublicVideo carries the embeddable form of the stored URL
type PublicVideo struct {
	models.Video
	EmbedURL string `json:"embedURL" example:"https://www.youtube.com/embed/dQw4w9WgXcQ"`
}

// Classes returns every class, newest first
func (s *PublicService) Classes(ctx context.Context) ([]models.InductionClass, error) {
	classes, err := s.repos.Classes.List(ctx, "year", docstore.Desc)
	if err != nil {
		return []models.InductionClass{}, fmt.Errorf("failed to get classes: %w", err)
	}
	return classes, nil
}

// Class returns the class of year with its inductees. A year without
// inductees yields an empty list, not an error.
func (s *PublicService) Class(ctx context.Context, year int) (*ClassDetail, error) {
	classes, err := s.repos.Classes.ListWhere(ctx, "year", year, "", docstore.Asc)
	if err != nil {
		return nil, fmt.Errorf("failed to get class %d: %w", year, err)
	}
	inductees, err := s.InducteesByClass(ctx, year)
	if err != nil {
		return nil, err
	}

	detail := &ClassDetail{Year: year, Inductees: inductees}
	if len(classes) > 0 {
		detail.Class = &classes[0]
	}
	return detail, nil
}

// Inductees returns the filtered timeline
func (s *PublicService) Inductees(ctx context.Context, f TimelineFilter) ([]models.Inductee, error) {
	inductees, err := s.repos.Inductees.List(ctx, "classYear", docstore.Desc)
	if err != nil {
		return []models.Inductee{}, fmt.Errorf("failed to get inductees: %w", err)
	}
	return FilterTimeline(inductees, f), nil
}

// Inductee returns one inductee with its gallery photos
func (s *PublicService) Inductee(ctx context.Context, id string) (*InducteeDetail, error) {
	inductee, err := s.repos.Inductees.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := s.repos.Photos.ListWhere(ctx, "inducteeId", id, "order", docstore.Asc)
	if err != nil {
		return nil, fmt.Errorf("failed to get photos: %w", err)
	}
	return &InducteeDetail{Inductee: *inductee, Photos: photos}, nil
}

// InducteesByClass returns the inductees of one class year ordered by name
func (s *PublicService) InducteesByClass(ctx context.Context, year int) ([]models.Inductee, error) {
	inductees, err := s.repos.Inductees.ListWhere(ctx, "classYear", year, "name", docstore.Asc)
	if err != nil {
		return []models.Inductee{}, fmt.Errorf("failed to get inductees for %d: %w", year, err)
	}
	return inductees, nil
}

// Videos returns videos, optionally for one class year, with embed URLs
func (s *PublicService) Videos(ctx context.Context, classYear int) ([]PublicVideo, error) {
	var videos []models.Video
	var err error
	if classYear != 0 {
		videos, err = s.repos.Videos.ListWhere(ctx, "classYear", classYear, "title", docstore.Asc)
	} else {
		videos, err = s.repos.Videos.List(ctx, "classYear", docstore.Desc)
	}
	if err != nil {
		return []PublicVideo{}, fmt.Errorf("failed to get videos: %w", err)
	}

	out := make([]PublicVideo, 0, len(videos))
	for _, v := range videos {
		out = append(out, PublicVideo{Video: v, EmbedURL: youtube.EmbedURL(v.URL)})
	}
	return out, nil
}

// Championships returns championships, most recent first, optionally for one sport
func (s *PublicService) Championships(ctx context.Context, sport string) ([]models.Championship, error) {
	championships, err := s.repos.Championships.List(ctx, "year", docstore.Desc)
	if err != nil {
		return []models.Championship{}, fmt.Errorf("failed to get championships: %w", err)
	}
	if sport == "" {
		return championships, nil
	}
	return filter(championships, func(c *models.Championship) bool {
		return sports.Has(sports.Normalize(c.Sport), sport)
	}), nil
}

// Championship returns one championship with its gallery photos
func (s *PublicService) Championship(ctx context.Context, id string) (*ChampionshipDetail, error) {
	championship, err := s.repos.Championships.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := s.repos.ChampionshipPhotos.ListWhere(ctx, "championshipId", id, "order", docstore.Asc)
	if err != nil {
		return nil, fmt.Errorf("failed to get championship photos: %w", err)
	}
	return &ChampionshipDetail{Championship: *championship, Photos: photos}, nil
}

// Sports returns the distinct sport tags across all inductees
func (s *PublicService) Sports(ctx context.Context) ([]string, error) {
	inductees, err := s.repos.Inductees.List(ctx, "", docstore.Asc)
	if err != nil {
		return []string{}, fmt.Errorf("failed to get inductees: %w", err)
	}
	lists := make([][]string, 0, len(inductees))
	for i := range inductees {
		lists = append(lists, inducteeSports(&inductees[i]))
	}
	return sports.Distinct(lists...), nil
}
