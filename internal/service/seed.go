package service

import (
	"context"

	"hall-of-fame-backend/internal/logger"
	"hall-of-fame-backend/internal/seed"
)

// SeedService runs the bulk seeder in the background for the admin API
type SeedService struct {
	seeder *seed.Seeder
	// ctx outlives the request that starts a run.
	ctx context.Context
}

// Ensure SeedService implements SeedServiceInterface
var _ SeedServiceInterface = (*SeedService)(nil)

// NewSeedService runs seeds under ctx, which is normally the server's lifetime.
func NewSeedService(ctx context.Context, seeder *seed.Seeder) *SeedService {
	return &SeedService{seeder: seeder, ctx: ctx}
}

// Start begins a run and returns immediately. It returns ErrSeedRunning when a
// run is already in progress.
func (s *SeedService) Start(ctx context.Context) (seed.Progress, error) {
	if err := s.seeder.Begin(); err != nil {
		return s.seeder.Progress(), err
	}

	log := logger.WithContext(ctx)
	log.Info("Seeding started")
	go func() {
		if _, err := s.seeder.RunStarted(s.ctx); err != nil {
			log.WithError(err).Error("Seeding stopped")
		}
	}()
	return s.seeder.Progress(), nil
}

func (s *SeedService) Progress() seed.Progress {
	return s.seeder.Progress()
}
