package models

import "time"

// Collection names in the document store
const (
	CollectionClasses            = "classes"
	CollectionInductees          = "inductees"
	CollectionPhotos             = "photos"
	CollectionVideos             = "videos"
	CollectionChampionships      = "championships"
	CollectionChampionshipPhotos = "championship_photos"
	CollectionPages              = "pages"
	CollectionAdmins             = "admins"
)

// Record carries the store-assigned id and the audit fields every document shares.
// ID is the document key and is never written into the document body.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
}

// InductionClass is one year's cohort of inductees. Year is not unique.
type InductionClass struct {
	Record
	Year          int    `json:"year"`
	InducteeCount int    `json:"inducteeCount"`
	CeremonyDate  string `json:"ceremonyDate"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageURL,omitempty"`
}

// Inductee references its class by year value, not by id.
type Inductee struct {
	Record
	Name           string   `json:"name"`
	ClassYear      int      `json:"classYear"`
	Sport          string   `json:"sport"`
	Sports         []string `json:"sports"`
	GraduationYear *int     `json:"graduationYear"`
	Bio            string   `json:"bio"`
	Achievements   string   `json:"achievements"`
	PhotoURL       string   `json:"photoURL,omitempty"`
	SecondPhotoURL string   `json:"secondPhotoURL,omitempty"`
	VideoURL       string   `json:"videoURL,omitempty"`
}

// Photo is an ordered gallery item for one inductee.
type Photo struct {
	Record
	InducteeID string `json:"inducteeId"`
	URL        string `json:"url"`
	Caption    string `json:"caption"`
	Order      int    `json:"order"`
}

type Video struct {
	Record
	ClassYear   int    `json:"classYear"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type Championship struct {
	Record
	Title       string `json:"title"`
	Year        int    `json:"year"`
	Coach       string `json:"coach"`
	Sport       string `json:"sport"`
	Description string `json:"description"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

// ChampionshipPhoto may be promoted to its championship's PhotoURL.
type ChampionshipPhoto struct {
	Record
	ChampionshipID string `json:"championshipId"`
	URL            string `json:"url"`
	Caption        string `json:"caption"`
	Order          int    `json:"order"`
}

// Admin is a sign-in account. Every admin has full rights.
type Admin struct {
	Record
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	PasswordHash string `json:"passwordHash"`
}
