package testutils

import (
	"time"

	"hall-of-fame-backend/internal/database/models"

	"github.com/google/uuid"
)

func record() models.Record {
	now := time.Date(2024, 10, 19, 18, 0, 0, 0, time.UTC)
	return models.Record{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: TestSession.Email,
		UpdatedBy: TestSession.Email,
	}
}

func intPtr(v int) *int { return &v }

// ClassFactory provides methods to create test induction classes
type ClassFactory struct{}

func NewClassFactory() *ClassFactory {
	return &ClassFactory{}
}

func (f *ClassFactory) Create() *models.InductionClass {
	return &models.InductionClass{
		Record:        record(),
		Year:          2024,
		InducteeCount: 3,
		CeremonyDate:  "2024-10-19",
		Description:   "The 2024 induction class",
	}
}

// WithYear sets a custom year for the class
func (f *ClassFactory) WithYear(year int) *models.InductionClass {
	class := f.Create()
	class.Year = year
	return class
}

// InducteeFactory provides methods to create test inductees
type InducteeFactory struct{}

func NewInducteeFactory() *InducteeFactory {
	return &InducteeFactory{}
}

func (f *InducteeFactory) Create() *models.Inductee {
	return &models.Inductee{
		Record:         record(),
		Name:           "Jane Doe",
		ClassYear:      2024,
		Sport:          "Track & Field, Basketball",
		Sports:         []string{"Track & Field", "Basketball"},
		GraduationYear: intPtr(2010),
		Bio:            "Four-time state finalist in the 400m.",
	}
}

// WithName sets a custom name for the inductee
func (f *InducteeFactory) WithName(name string) *models.Inductee {
	inductee := f.Create()
	inductee.Name = name
	return inductee
}

// ChampionshipFactory provides methods to create test championships
type ChampionshipFactory struct{}

func NewChampionshipFactory() *ChampionshipFactory {
	return &ChampionshipFactory{}
}

func (f *ChampionshipFactory) Create() *models.Championship {
	return &models.Championship{
		Record: record(),
		Title:  "State Champions",
		Year:   2003,
		Coach:  "Ellen Marsh",
		Sport:  "Volleyball",
	}
}

// VideoFactory provides methods to create test videos
type VideoFactory struct{}

func NewVideoFactory() *VideoFactory {
	return &VideoFactory{}
}

func (f *VideoFactory) Create() *models.Video {
	return &models.Video{
		Record:    record(),
		ClassYear: 2024,
		Title:     "2024 Induction Ceremony",
		URL:       "https://youtu.be/dQw4w9WgXcQ",
	}
}
