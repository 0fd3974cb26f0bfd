package repository

import (
	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/docstore"
	apperrors "hall-of-fame-backend/internal/errors"
)

// Repositories groups the typed collections of the hall of fame.
type Repositories struct {
	Classes            *Collection[models.InductionClass]
	Inductees          *Collection[models.Inductee]
	Photos             *Collection[models.Photo]
	Videos             *Collection[models.Video]
	Championships      *Collection[models.Championship]
	ChampionshipPhotos *Collection[models.ChampionshipPhoto]
	Admins             *Collection[models.Admin]
	Pages              *PageRepository
}

// New builds every collection over store.
func New(store docstore.Store) *Repositories {
	return &Repositories{
		Classes:            NewCollection[models.InductionClass](store, models.CollectionClasses, apperrors.ErrClassNotFound),
		Inductees:          NewCollection[models.Inductee](store, models.CollectionInductees, apperrors.ErrInducteeNotFound),
		Photos:             NewCollection[models.Photo](store, models.CollectionPhotos, apperrors.ErrPhotoNotFound),
		Videos:             NewCollection[models.Video](store, models.CollectionVideos, apperrors.ErrVideoNotFound),
		Championships:      NewCollection[models.Championship](store, models.CollectionChampionships, apperrors.ErrChampionshipNotFound),
		ChampionshipPhotos: NewCollection[models.ChampionshipPhoto](store, models.CollectionChampionshipPhotos, apperrors.ErrChampionshipPhotoNotFound),
		Admins:             NewCollection[models.Admin](store, models.CollectionAdmins, apperrors.ErrAdminNotFound),
		Pages:              NewPageRepository(store),
	}
}
