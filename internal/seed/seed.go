// Package seed loads the initial hall of fame content into the document store.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"sync"
	"time"

	"hall-of-fame-backend/internal/batch"
	"hall-of-fame-backend/internal/database/models"
	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/logger"
	"hall-of-fame-backend/internal/repository"
	"hall-of-fame-backend/internal/sports"

	"github.com/benbjohnson/clock"
	"gopkg.in/yaml.v3"
)

// Author is written into createdBy for every seeded document.
const Author = "seed"

//go:embed data/hall_of_fame.yaml
var datasetYAML []byte

// ClassData is one induction class in the dataset.
type ClassData struct {
	Year         int    `yaml:"year"`
	CeremonyDate string `yaml:"ceremony_date"`
	Description  string `yaml:"description"`
	ImageURL     string `yaml:"image_url"`
}

// InducteeData is one inductee in the dataset. Sport is the raw text and is
// normalized into tags when written.
type InducteeData struct {
	Name           string `yaml:"name"`
	ClassYear      int    `yaml:"class_year"`
	Sport          string `yaml:"sport"`
	GraduationYear *int   `yaml:"graduation_year"`
	Bio            string `yaml:"bio"`
	Achievements   string `yaml:"achievements"`
	PhotoURL       string `yaml:"photo_url"`
}

type Dataset struct {
	Classes   []ClassData    `yaml:"classes"`
	Inductees []InducteeData `yaml:"inductees"`
}

// Total is the number of documents a full run writes.
func (d *Dataset) Total() int {
	return len(d.Classes) + len(d.Inductees)
}

// LoadDataset parses a dataset document.
func LoadDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed dataset: %w", err)
	}
	return &ds, nil
}

// DefaultDataset returns the embedded dataset.
func DefaultDataset() (*Dataset, error) {
	return LoadDataset(datasetYAML)
}

// Phase names reported in Progress.
const (
	PhaseIdle      = "idle"
	PhaseClasses   = "classes"
	PhaseSettling  = "settling"
	PhaseInductees = "inductees"
	PhaseDone      = "done"
	PhaseFailed    = "failed"
)

// Progress is a snapshot of a seeding run. Current never decreases during a run.
type Progress struct {
	Phase      string     `json:"phase"`
	Current    int        `json:"current"`
	Total      int        `json:"total"`
	Failed     int        `json:"failed"`
	Running    bool       `json:"running"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// Options controls pacing. Zero durations disable the corresponding delay.
type Options struct {
	ClassInterval    time.Duration
	InducteeInterval time.Duration
	BatchSize        int
	BatchPause       time.Duration
	// Settle is waited between the class phase and the inductee phase.
	Settle time.Duration
	Clock  clock.Clock
	// OnProgress is called after every change to the progress.
	OnProgress func(Progress)
}

// Seeder writes a Dataset. Only one run may be active at a time.
type Seeder struct {
	repos   *repository.Repositories
	dataset *Dataset
	opts    Options
	clock   clock.Clock

	mu       sync.Mutex
	progress Progress
}

func NewSeeder(repos *repository.Repositories, dataset *Dataset, opts Options) *Seeder {
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	return &Seeder{
		repos:    repos,
		dataset:  dataset,
		opts:     opts,
		clock:    clk,
		progress: Progress{Phase: PhaseIdle, Total: dataset.Total()},
	}
}

// Progress returns the latest snapshot.
func (s *Seeder) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// Begin marks a run as started. It returns ErrSeedRunning when one is active.
// Run calls it; callers that start Run in the background call it first so the
// conflict is reported synchronously.
func (s *Seeder) Begin() error {
	s.mu.Lock()
	if s.progress.Running {
		s.mu.Unlock()
		return apperrors.ErrSeedRunning
	}
	now := s.clock.Now()
	s.progress = Progress{
		Phase:     PhaseClasses,
		Total:     s.dataset.Total(),
		Running:   true,
		StartedAt: &now,
	}
	snapshot := s.progress
	s.mu.Unlock()

	s.notify(snapshot)
	return nil
}

// Run writes every class, waits the settle delay, then writes every inductee.
// Per-item failures are logged and counted; nothing is rolled back and nothing is
// checked for existence, so running twice duplicates the data.
func (s *Seeder) Run(ctx context.Context) (Progress, error) {
	if err := s.Begin(); err != nil {
		return s.Progress(), err
	}
	return s.run(ctx)
}

// RunStarted continues a run opened with Begin.
func (s *Seeder) RunStarted(ctx context.Context) (Progress, error) {
	return s.run(ctx)
}

func (s *Seeder) run(ctx context.Context) (Progress, error) {
	log := logger.WithContext(ctx).WithField("component", "seed")
	log.Infof("Seeding %d classes and %d inductees", len(s.dataset.Classes), len(s.dataset.Inductees))

	counts := map[int]int{}
	for _, ind := range s.dataset.Inductees {
		counts[ind.ClassYear]++
	}

	classes := batch.NewExecutor(batch.Options{Interval: s.opts.ClassInterval, Clock: s.clock})
	_, err := classes.Run(ctx, len(s.dataset.Classes), func(ctx context.Context, i int) error {
		c := s.dataset.Classes[i]
		class := &models.InductionClass{
			Record:        models.Record{CreatedBy: Author, UpdatedBy: Author},
			Year:          c.Year,
			InducteeCount: counts[c.Year],
			CeremonyDate:  c.CeremonyDate,
			Description:   c.Description,
			ImageURL:      c.ImageURL,
		}
		_, err := s.repos.Classes.Create(ctx, class)
		return err
	}, func(r batch.Result) {
		if r.Err != nil {
			log.WithError(r.Err).Warnf("Failed to seed class %d", s.dataset.Classes[r.Index].Year)
		}
		s.advance(r.Err)
	})
	if err != nil {
		return s.finish(err)
	}

	s.setPhase(PhaseSettling)
	if err := classes.Sleep(ctx, s.opts.Settle); err != nil {
		return s.finish(err)
	}
	s.setPhase(PhaseInductees)

	inductees := batch.NewExecutor(batch.Options{
		Interval:   s.opts.InducteeInterval,
		BatchSize:  s.opts.BatchSize,
		BatchPause: s.opts.BatchPause,
		Clock:      s.clock,
	})
	_, err = inductees.Run(ctx, len(s.dataset.Inductees), func(ctx context.Context, i int) error {
		d := s.dataset.Inductees[i]
		ind := &models.Inductee{
			Record:         models.Record{CreatedBy: Author, UpdatedBy: Author},
			Name:           d.Name,
			ClassYear:      d.ClassYear,
			Sport:          d.Sport,
			Sports:         sports.Normalize(d.Sport),
			GraduationYear: d.GraduationYear,
			Bio:            d.Bio,
			Achievements:   d.Achievements,
			PhotoURL:       d.PhotoURL,
		}
		_, err := s.repos.Inductees.Create(ctx, ind)
		return err
	}, func(r batch.Result) {
		if r.Err != nil {
			log.WithError(r.Err).Warnf("Failed to seed inductee %q", s.dataset.Inductees[r.Index].Name)
		}
		s.advance(r.Err)
	})
	if err != nil {
		return s.finish(err)
	}

	p, _ := s.finish(nil)
	log.Infof("Seeding finished: %d written, %d failed", p.Current-p.Failed, p.Failed)
	return p, nil
}

func (s *Seeder) advance(err error) {
	s.mu.Lock()
	s.progress.Current++
	if err != nil {
		s.progress.Failed++
	}
	snapshot := s.progress
	s.mu.Unlock()
	s.notify(snapshot)
}

func (s *Seeder) setPhase(phase string) {
	s.mu.Lock()
	s.progress.Phase = phase
	snapshot := s.progress
	s.mu.Unlock()
	s.notify(snapshot)
}

func (s *Seeder) finish(err error) (Progress, error) {
	s.mu.Lock()
	now := s.clock.Now()
	s.progress.Running = false
	s.progress.FinishedAt = &now
	if err != nil {
		s.progress.Phase = PhaseFailed
		s.progress.Error = err.Error()
	} else {
		s.progress.Phase = PhaseDone
	}
	snapshot := s.progress
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot, err
}

func (s *Seeder) notify(p Progress) {
	if s.opts.OnProgress != nil {
		s.opts.OnProgress(p)
	}
}
