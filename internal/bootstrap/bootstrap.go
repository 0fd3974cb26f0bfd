// Package bootstrap assembles the stores, repositories and services from the
// application config. Both the server and hofctl start here.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"hall-of-fame-backend/internal/auth"
	"hall-of-fame-backend/internal/config"
	"hall-of-fame-backend/internal/database"
	"hall-of-fame-backend/internal/docstore"
	"hall-of-fame-backend/internal/logger"
	"hall-of-fame-backend/internal/repository"
	"hall-of-fame-backend/internal/seed"
	"hall-of-fame-backend/internal/service"
	"hall-of-fame-backend/internal/storage"
)

// App holds everything the HTTP routes and the CLI commands need
type App struct {
	Config  *config.Config
	Store   docstore.Store
	Repos   *repository.Repositories
	Storage *storage.Service
	// Media is set for the local storage backend, which the server serves itself.
	Media http.FileSystem

	Auth     *auth.AuthService
	Services *Services

	closers []io.Closer
}

// Services groups the service layer
type Services struct {
	Classes            *service.ClassService
	Inductees          *service.InducteeService
	Photos             *service.PhotoService
	Videos             *service.VideoService
	Championships      *service.ChampionshipService
	ChampionshipPhotos *service.ChampionshipPhotoService
	Pages              *service.PageService
	Uploads            *service.UploadService
	Public             *service.PublicService
	Seed               *service.SeedService
	Seeder             *seed.Seeder
}

// New opens the configured backends. ctx bounds background work such as seeding
// and must outlive the App.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.Store = store
	app.closers = append(app.closers, store)

	objects, err := app.openObjects(ctx)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	baseURL := storage.FirebaseBaseURL
	if cfg.StorageBackend == "local" {
		baseURL = cfg.StoragePublicBaseURL
	}
	app.Storage = storage.NewService(objects, baseURL, cfg.StorageBucket)
	app.Repos = repository.New(store)

	app.Auth, err = auth.NewAuthService(auth.NewAuthConfig(cfg), app.Repos.Admins)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	dataset, err := seed.DefaultDataset()
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("load seed dataset: %w", err)
	}
	seeder := seed.NewSeeder(app.Repos, dataset, SeedOptions(cfg))
	app.Services = NewServices(ctx, store, app.Repos, app.Storage, seeder)

	logger.New().WithFields(map[string]interface{}{
		"docstore": cfg.DocstoreBackend,
		"storage":  cfg.StorageBackend,
		"bucket":   cfg.StorageBucket,
	}).Info("Backends ready")
	return app, nil
}

// OpenStore opens the document store named by DOCSTORE_BACKEND
func OpenStore(ctx context.Context, cfg *config.Config) (docstore.Store, error) {
	switch cfg.DocstoreBackend {
	case "firestore":
		return docstore.NewFirestoreStore(ctx, cfg.FirestoreProjectID)
	case "sql":
		db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, nil)
		if err != nil {
			return nil, fmt.Errorf("initialize database: %w", err)
		}
		return docstore.NewSQLStore(db), nil
	default:
		return nil, fmt.Errorf("unsupported DOCSTORE_BACKEND %q", cfg.DocstoreBackend)
	}
}

func (a *App) openObjects(ctx context.Context) (storage.ObjectStore, error) {
	if a.Config.StorageBackend == "gcs" {
		gcs, err := storage.NewGCSStore(ctx, a.Config.StorageBucket)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, gcs)
		return gcs, nil
	}

	local, err := storage.NewDirStore(a.Config.StorageLocalDir)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", a.Config.StorageLocalDir, err)
	}
	a.Media = local.HTTPFileSystem()
	return local, nil
}

// NewServices wires the service layer over already opened stores
func NewServices(ctx context.Context, store docstore.Store, repos *repository.Repositories, objects *storage.Service, seeder *seed.Seeder) *Services {
	v := service.NewValidator()
	cascade := service.NewCascade(store, objects)
	return &Services{
		Classes:            service.NewClassService(repos.Classes, cascade, v),
		Inductees:          service.NewInducteeService(repos.Inductees, cascade, v),
		Photos:             service.NewPhotoService(repos.Photos, cascade, v),
		Videos:             service.NewVideoService(repos.Videos, cascade, v),
		Championships:      service.NewChampionshipService(repos.Championships, cascade, v),
		ChampionshipPhotos: service.NewChampionshipPhotoService(repos.ChampionshipPhotos, repos.Championships, cascade, v),
		Pages:              service.NewPageService(repos.Pages),
		Uploads:            service.NewUploadService(objects),
		Public:             service.NewPublicService(repos),
		Seed:               service.NewSeedService(ctx, seeder),
		Seeder:             seeder,
	}
}

// SeedOptions converts the SEED_* settings
func SeedOptions(cfg *config.Config) seed.Options {
	return seed.Options{
		ClassInterval:    config.Millis(cfg.SeedClassIntervalMS),
		InducteeInterval: config.Millis(cfg.SeedInducteeIntervalMS),
		BatchSize:        cfg.SeedBatchSize,
		BatchPause:       config.Millis(cfg.SeedBatchPauseMS),
		Settle:           config.Millis(cfg.SeedSettleMS),
	}
}

// Close releases the backends in reverse order of opening
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
