package seed_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hall-of-fame-backend/internal/database"
	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/docstore"
	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/mocks"
	"hall-of-fame-backend/internal/repository"
	"hall-of-fame-backend/internal/seed"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testDataset = `
classes:
  - year: 2020
    ceremony_date: "2020-10-01"
  - year: 2022
inductees:
  - name: "Ann Lee"
    class_year: 2020
    sport: "Track & Field, Basketball"
    graduation_year: 1990
  - name: "Bo Chen"
    class_year: 2020
    sport: "Soccer"
  - name: "Cy Diaz"
    class_year: 2022
    sport: "Tennis and Golf"
`

type SeederTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   docstore.Store
	repos   *repository.Repositories
	dataset *seed.Dataset
}

func (suite *SeederTestSuite) SetupTest() {
	db, err := database.Initialize("sqlite", ":memory:", nil)
	suite.Require().NoError(err)
	suite.ctx = context.Background()
	suite.store = docstore.NewSQLStore(db)
	suite.repos = repository.New(suite.store)
	suite.dataset, err = seed.LoadDataset([]byte(testDataset))
	suite.Require().NoError(err)
}

func (suite *SeederTestSuite) TearDownTest() {
	_ = suite.store.Close()
}

func (suite *SeederTestSuite) TestRunWritesEverythingWithMonotonicProgress() {
	var mu sync.Mutex
	var seen []seed.Progress
	seeder := seed.NewSeeder(suite.repos, suite.dataset, seed.Options{
		OnProgress: func(p seed.Progress) {
			mu.Lock()
			seen = append(seen, p)
			mu.Unlock()
		},
	})

	final, err := seeder.Run(suite.ctx)
	suite.Require().NoError(err)

	suite.Equal(seed.PhaseDone, final.Phase)
	suite.False(final.Running)
	suite.Equal(5, final.Total)
	suite.Equal(5, final.Current)
	suite.Zero(final.Failed)
	suite.NotNil(final.FinishedAt)

	suite.Require().NotEmpty(seen)
	for i := 1; i < len(seen); i++ {
		suite.GreaterOrEqual(seen[i].Current, seen[i-1].Current)
		suite.Equal(5, seen[i].Total)
	}

	classes, err := suite.repos.Classes.List(suite.ctx, "year", docstore.Asc)
	suite.Require().NoError(err)
	suite.Require().Len(classes, 2)
	suite.Equal(2, classes[0].InducteeCount)
	suite.Equal(1, classes[1].InducteeCount)
	suite.Equal(seed.Author, classes[0].CreatedBy)

	inductees, err := suite.repos.Inductees.ListWhere(suite.ctx, "classYear", 2020, "name", docstore.Asc)
	suite.Require().NoError(err)
	suite.Require().Len(inductees, 2)
	suite.Equal([]string{"Track & Field", "Basketball"}, inductees[0].Sports)
	suite.Require().NotNil(inductees[0].GraduationYear)
	suite.Equal(1990, *inductees[0].GraduationYear)
	suite.Nil(inductees[1].GraduationYear)
}

func (suite *SeederTestSuite) TestRerunDuplicates() {
	seeder := seed.NewSeeder(suite.repos, suite.dataset, seed.Options{})
	_, err := seeder.Run(suite.ctx)
	suite.Require().NoError(err)
	_, err = seeder.Run(suite.ctx)
	suite.Require().NoError(err)

	inductees, err := suite.repos.Inductees.List(suite.ctx, "", docstore.Asc)
	suite.Require().NoError(err)
	suite.Len(inductees, 6)
}

func (suite *SeederTestSuite) TestBeginRejectsConcurrentRun() {
	seeder := seed.NewSeeder(suite.repos, suite.dataset, seed.Options{})
	suite.Require().NoError(seeder.Begin())
	suite.ErrorIs(seeder.Begin(), apperrors.ErrSeedRunning)

	_, err := seeder.Run(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrSeedRunning)

	p, err := seeder.RunStarted(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(p.Total, p.Current)
	suite.NoError(seeder.Begin())
}

func TestSeederTestSuite(t *testing.T) {
	suite.Run(t, new(SeederTestSuite))
}

func TestRunCountsFailuresAndKeepsGoing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ds, err := seed.LoadDataset([]byte(testDataset))
	require.NoError(t, err)

	store.EXPECT().Create(gomock.Any(), models.CollectionClasses, gomock.Any()).Return("c", nil).Times(2)
	gomock.InOrder(
		store.EXPECT().Create(gomock.Any(), models.CollectionInductees, gomock.Any()).Return("i1", nil),
		store.EXPECT().Create(gomock.Any(), models.CollectionInductees, gomock.Any()).Return("", errors.New("quota exceeded")),
		store.EXPECT().Create(gomock.Any(), models.CollectionInductees, gomock.Any()).Return("i3", nil),
	)

	seeder := seed.NewSeeder(repository.New(store), ds, seed.Options{})
	p, err := seeder.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, p.Current)
	assert.Equal(t, 1, p.Failed)
	assert.Equal(t, seed.PhaseDone, p.Phase)
}

func TestRunPacesOnTheClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ds, err := seed.LoadDataset([]byte(testDataset))
	require.NoError(t, err)

	mock := clock.NewMock()
	start := mock.Now()
	var writes []time.Time
	store.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, docstore.Document) (string, error) {
			writes = append(writes, mock.Now())
			return "id", nil
		}).Times(5)

	seeder := seed.NewSeeder(repository.New(store), ds, seed.Options{
		ClassInterval:    300 * time.Millisecond,
		InducteeInterval: 100 * time.Millisecond,
		BatchSize:        2,
		BatchPause:       time.Second,
		Settle:           500 * time.Millisecond,
		Clock:            mock,
	})

	done := make(chan error, 1)
	go func() {
		_, err := seeder.Run(context.Background())
		done <- err
	}()

	deadline := time.After(10 * time.Second)
loop:
	for {
		select {
		case err := <-done:
			require.NoError(t, err)
			break loop
		case <-deadline:
			t.Fatal("seeder did not finish")
		default:
			mock.Add(10 * time.Millisecond)
		}
	}

	require.Len(t, writes, 5)
	assert.GreaterOrEqual(t, writes[1].Sub(writes[0]), 300*time.Millisecond)
	assert.GreaterOrEqual(t, writes[2].Sub(writes[1]), 500*time.Millisecond)
	assert.GreaterOrEqual(t, writes[4].Sub(writes[3]), time.Second)
	assert.GreaterOrEqual(t, writes[4].Sub(start), 1800*time.Millisecond)
}

func TestDefaultDatasetParses(t *testing.T) {
	ds, err := seed.DefaultDataset()
	require.NoError(t, err)
	assert.NotEmpty(t, ds.Classes)
	assert.NotEmpty(t, ds.Inductees)

	years := map[int]bool{}
	for _, c := range ds.Classes {
		years[c.Year] = true
	}
	for _, ind := range ds.Inductees {
		assert.NotEmpty(t, ind.Name)
		assert.True(t, years[ind.ClassYear], "inductee %s has no class", ind.Name)
	}
}
