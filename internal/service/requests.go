package service

import (
	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/docstore"
	apperrors "hall-of-fame-backend/internal/errors"
)

// CreateResponse is returned by every create. DuplicateYear is set when a class
// is created for a year that already has one.
type CreateResponse struct {
	ID            string `json:"id" example:"b0c5c7f4-2f55-4a47-9d0c-1f3e8f2b6d10"`
	DuplicateYear bool   `json:"duplicateYear,omitempty"`
}

// CreateClassRequest represents the request to create an induction class
type CreateClassRequest struct {
	Year          models.FlexInt `json:"year" swaggertype:"integer" example:"2024"`
	InducteeCount models.FlexInt `json:"inducteeCount" swaggertype:"integer" example:"5"`
	CeremonyDate  string         `json:"ceremonyDate" validate:"max=64" example:"2024-10-19"`
	Description   string         `json:"description" validate:"max=5000"`
	ImageURL      string         `json:"imageURL" validate:"omitempty,url"`
}

// UpdateClassRequest carries only the fields to change
type UpdateClassRequest struct {
	Year          models.FlexInt `json:"year" swaggertype:"integer"`
	InducteeCount models.FlexInt `json:"inducteeCount" swaggertype:"integer"`
	CeremonyDate  *string        `json:"ceremonyDate" validate:"omitempty,max=64"`
	Description   *string        `json:"description" validate:"omitempty,max=5000"`
	ImageURL      *string        `json:"imageURL" validate:"omitempty"`
}

// CreateInducteeRequest represents the request to create an inductee
type CreateInducteeRequest struct {
	Name           string         `json:"name" validate:"required,max=200" example:"Jane Doe"`
	ClassYear      models.FlexInt `json:"classYear" swaggertype:"integer" example:"2024"`
	Sport          string         `json:"sport" validate:"max=200" example:"Track & Field, Basketball"`
	GraduationYear models.FlexInt `json:"graduationYear" swaggertype:"integer" example:"2010"`
	Bio            string         `json:"bio" validate:"max=20000"`
	Achievements   string         `json:"achievements" validate:"max=20000"`
	PhotoURL       string         `json:"photoURL" validate:"omitempty,url"`
	SecondPhotoURL string         `json:"secondPhotoURL" validate:"omitempty,url"`
	VideoURL       string         `json:"videoURL" validate:"omitempty,url"`
}

// UpdateInducteeRequest carries only the fields to change
type UpdateInducteeRequest struct {
	Name           *string        `json:"name" validate:"omitempty,min=1,max=200"`
	ClassYear      models.FlexInt `json:"classYear" swaggertype:"integer"`
	Sport          *string        `json:"sport" validate:"omitempty,max=200"`
	GraduationYear models.FlexInt `json:"graduationYear" swaggertype:"integer"`
	Bio            *string        `json:"bio" validate:"omitempty,max=20000"`
	Achievements   *string        `json:"achievements" validate:"omitempty,max=20000"`
	PhotoURL       *string        `json:"photoURL"`
	SecondPhotoURL *string        `json:"secondPhotoURL"`
	VideoURL       *string        `json:"videoURL"`
}

// CreatePhotoRequest adds a gallery photo to an inductee
type CreatePhotoRequest struct {
	InducteeID string         `json:"inducteeId" validate:"required"`
	URL        string         `json:"url" validate:"required,url"`
	Caption    string         `json:"caption" validate:"max=500"`
	Order      models.FlexInt `json:"order" swaggertype:"integer"`
}

type UpdatePhotoRequest struct {
	URL     *string        `json:"url" validate:"omitempty,url"`
	Caption *string        `json:"caption" validate:"omitempty,max=500"`
	Order   models.FlexInt `json:"order" swaggertype:"integer"`
}

// CreateVideoRequest represents the request to create a ceremony video
type CreateVideoRequest struct {
	ClassYear   models.FlexInt `json:"classYear" swaggertype:"integer" example:"2024"`
	Title       string         `json:"title" validate:"required,max=200"`
	URL         string         `json:"url" validate:"required,url" example:"https://youtu.be/dQw4w9WgXcQ"`
	Description string         `json:"description" validate:"max=5000"`
}

type UpdateVideoRequest struct {
	ClassYear   models.FlexInt `json:"classYear" swaggertype:"integer"`
	Title       *string        `json:"title" validate:"omitempty,min=1,max=200"`
	URL         *string        `json:"url" validate:"omitempty,url"`
	Description *string        `json:"description" validate:"omitempty,max=5000"`
}

// CreateChampionshipRequest represents the request to create a championship
type CreateChampionshipRequest struct {
	Title       string         `json:"title" validate:"required,max=200" example:"State Champions"`
	Year        models.FlexInt `json:"year" swaggertype:"integer" example:"2003"`
	Coach       string         `json:"coach" validate:"max=200"`
	Sport       string         `json:"sport" validate:"max=200" example:"Volleyball"`
	Description string         `json:"description" validate:"max=5000"`
	PhotoURL    string         `json:"photoURL" validate:"omitempty,url"`
}

type UpdateChampionshipRequest struct {
	Title       *string        `json:"title" validate:"omitempty,min=1,max=200"`
	Year        models.FlexInt `json:"year" swaggertype:"integer"`
	Coach       *string        `json:"coach" validate:"omitempty,max=200"`
	Sport       *string        `json:"sport" validate:"omitempty,max=200"`
	Description *string        `json:"description" validate:"omitempty,max=5000"`
	PhotoURL    *string        `json:"photoURL"`
}

// CreateChampionshipPhotoRequest adds a gallery photo to a championship
type CreateChampionshipPhotoRequest struct {
	ChampionshipID string         `json:"championshipId" validate:"required"`
	URL            string         `json:"url" validate:"required,url"`
	Caption        string         `json:"caption" validate:"max=500"`
	Order          models.FlexInt `json:"order" swaggertype:"integer"`
}

type UpdateChampionshipPhotoRequest struct {
	URL     *string        `json:"url" validate:"omitempty,url"`
	Caption *string        `json:"caption" validate:"omitempty,max=500"`
	Order   models.FlexInt `json:"order" swaggertype:"integer"`
}

// patch collects the fields an update request actually carries.
type patch docstore.Document

func (p patch) str(key string, v *string) {
	if v != nil {
		p[key] = *v
	}
}

// integer sets key to the value, or 0 when the field was sent blank.
func (p patch) integer(key string, v models.FlexInt) {
	if v.Set {
		p[key] = int64(v.Int())
	}
}

// nullable sets key to the value, or null when the field was sent blank.
func (p patch) nullable(key string, v models.FlexInt) {
	if !v.Set {
		return
	}
	if ptr := v.Ptr(); ptr != nil {
		p[key] = int64(*ptr)
	} else {
		p[key] = nil
	}
}

// stamp records who made the change.
func (p patch) stamp(actor string) docstore.Document {
	p["updatedBy"] = actor
	return docstore.Document(p)
}

func requireYear(field string, v models.FlexInt) error {
	if !v.Valid {
		return apperrors.NewValidationError(field, "is required")
	}
	if v.Value < 1800 || v.Value > 3000 {
		return apperrors.NewValidationError(field, "must be a four-digit year")
	}
	return nil
}

// optionalYear rejects a year that was sent with a value outside the valid range.
func optionalYear(field string, v models.FlexInt) error {
	if !v.Valid {
		return nil
	}
	return requireYear(field, v)
}
