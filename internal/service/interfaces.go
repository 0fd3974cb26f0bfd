package service

import (
	"context"

	"hall-of-fame-backend/internal/auth"
	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/pagedit"
	"hall-of-fame-backend/internal/seed"
	"hall-of-fame-backend/internal/storage"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PhotoRemover deletes hosted photos. Implemented by *storage.Service.
type PhotoRemover interface {
	IsHosted(rawURL string) bool
	DeleteByURL(ctx context.Context, rawURL string) error
}

// Uploader is the object storage façade. Implemented by *storage.Service.
type Uploader interface {
	PhotoRemover
	Upload(ctx context.Context, req storage.UploadRequest, progress storage.ProgressFunc) (*storage.UploadResult, error)
}

// ClassServiceInterface defines the interface for induction class service
type ClassServiceInterface interface {
	List(ctx context.Context, q string) ([]models.InductionClass, error)
	Get(ctx context.Context, id string) (*models.InductionClass, error)
	Create(ctx context.Context, session *auth.Session, req *CreateClassRequest) (*CreateResponse, error)
	Update(ctx context.Context, session *auth.Session, id string, req *UpdateClassRequest) (*models.InductionClass, error)
	Delete(ctx context.Context, session *auth.Session, id string) (*CascadeResult, error)
}

// InducteeServiceInterface defines the interface for inductee service
type InducteeServiceInterface interface {
	List(ctx context.Context, q string) ([]models.Inductee, error)
	Get(ctx context.Context, id string) (*models.Inductee, error)
	Create(ctx context.Context, session *auth.Session, req *CreateInducteeRequest) (*CreateResponse, error)
	Update(ctx context.Context, session *auth.Session, id string, req *UpdateInducteeRequest) (*models.Inductee, error)
	Delete(ctx context.Context, session *auth.Session, id string) (*CascadeResult, error)
}

// PhotoServiceInterface defines the interface for inductee gallery service
type PhotoServiceInterface interface {
	List(ctx context.Context, inducteeID string) ([]models.Photo, error)
	Get(ctx context.Context, id string) (*models.Photo, error)
	Create(ctx context.Context, session *auth.Session, req *CreatePhotoRequest) (*CreateResponse, error)
	Update(ctx context.Context, session *auth.Session, id string, req *UpdatePhotoRequest) (*models.Photo, error)
	Delete(ctx context.Context, session *auth.Session, id string) (*CascadeResult, error)
}

// VideoServiceInterface defines the interface for video service
type VideoServiceInterface interface {
	List(ctx context.Context, q string) ([]models.Video, error)
	Get(ctx context.Context, id string) (*models.Video, error)
	Create(ctx context.Context, session *auth.Session, req *CreateVideoRequest) (*CreateResponse, error)
	Update(ctx context.Context, session *auth.Session, id string, req *UpdateVideoRequest) (*models.Video, error)
	Delete(ctx context.Context, session *auth.Session, id string) (*CascadeResult, error)
}

// ChampionshipServiceInterface defines the interface for championship service
type ChampionshipServiceInterface interface {
	List(ctx context.Context, q string) ([]models.Championship, error)
	Get(ctx context.Context, id string) (*models.Championship, error)
	Create(ctx context.Context, session *auth.Session, req *CreateChampionshipRequest) (*CreateResponse, error)
	Update(ctx context.Context, session *auth.Session, id string, req *UpdateChampionshipRequest) (*models.Championship, error)
	Delete(ctx context.Context, session *auth.Session, id string) (*CascadeResult, error)
}

// ChampionshipPhotoServiceInterface defines the interface for championship gallery service
type ChampionshipPhotoServiceInterface interface {
	List(ctx context.Context, championshipID string) ([]models.ChampionshipPhoto, error)
	Get(ctx context.Context, id string) (*models.ChampionshipPhoto, error)
	Create(ctx context.Context, session *auth.Session, req *CreateChampionshipPhotoRequest) (*CreateResponse, error)
	Update(ctx context.Context, session *auth.Session, id string, req *UpdateChampionshipPhotoRequest) (*models.ChampionshipPhoto, error)
	Promote(ctx context.Context, session *auth.Session, id string) (*models.Championship, error)
	Delete(ctx context.Context, session *auth.Session, id string) (*CascadeResult, error)
}

// PageServiceInterface defines the interface for page content service
type PageServiceInterface interface {
	Get(ctx context.Context, id models.PageID) (models.Page, error)
	Save(ctx context.Context, session *auth.Session, id models.PageID, body []byte) (models.Page, error)
	EditSection(ctx context.Context, session *auth.Session, id models.PageID, section string, edit pagedit.Edit) (models.Page, error)
	Preview(ctx context.Context, id models.PageID, body []byte) (*PagePreview, error)
}

// UploadServiceInterface defines the interface for image upload service
type UploadServiceInterface interface {
	Upload(ctx context.Context, req storage.UploadRequest, progress storage.ProgressFunc) (*storage.UploadResult, error)
	Remove(ctx context.Context, rawURL string) (*RemoveResponse, error)
}

// PublicServiceInterface defines the interface for the public read service
type PublicServiceInterface interface {
	Classes(ctx context.Context) ([]models.InductionClass, error)
	Class(ctx context.Context, year int) (*ClassDetail, error)
	Inductees(ctx context.Context, f TimelineFilter) ([]models.Inductee, error)
	Inductee(ctx context.Context, id string) (*InducteeDetail, error)
	InducteesByClass(ctx context.Context, year int) ([]models.Inductee, error)
	Videos(ctx context.Context, classYear int) ([]PublicVideo, error)
	Championships(ctx context.Context, sport string) ([]models.Championship, error)
	Championship(ctx context.Context, id string) (*ChampionshipDetail, error)
	Sports(ctx context.Context) ([]string, error)
}

// SeedServiceInterface defines the interface for the background seeder
type SeedServiceInterface interface {
	Start(ctx context.Context) (seed.Progress, error)
	Progress() seed.Progress
}
