package models

import (
	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/pagedit"
)

// PageID is the fixed document id of a page in the pages collection.
type PageID string

const (
	PageAbout       PageID = "about"
	PageHomeBanner  PageID = "home-banner"
	PageHomeContent PageID = "home-content"
	PageWallOfFame  PageID = "wall-of-fame"
)

// PageIDs lists every editable page.
var PageIDs = []PageID{PageAbout, PageHomeBanner, PageHomeContent, PageWallOfFame}

// Page is implemented by each page record type.
type Page interface {
	PageID() PageID
	// EditSection applies edit to the named array section.
	EditSection(section string, edit pagedit.Edit) error
}

type CommitteeMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoURL,omitempty"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CTAButton struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type AboutPage struct {
	Record
	Title      string            `json:"title"`
	Intro      string            `json:"intro"`
	Paragraphs []string          `json:"paragraphs"`
	Members    []CommitteeMember `json:"members"`
	FAQs       []FAQ             `json:"faqs"`
	PhotoURL   string            `json:"photoURL,omitempty"`
}

func (*AboutPage) PageID() PageID { return PageAbout }

func (p *AboutPage) EditSection(section string, edit pagedit.Edit) (err error) {
	switch section {
	case "paragraphs":
		p.Paragraphs, err = apply(p.Paragraphs, edit)
	case "members":
		p.Members, err = apply(p.Members, edit)
	case "faqs":
		p.FAQs, err = apply(p.FAQs, edit)
	default:
		return apperrors.ErrUnknownSection
	}
	return err
}

type HomeBanner struct {
	Record
	Headline    string      `json:"headline"`
	Subheadline string      `json:"subheadline"`
	Photos      []string    `json:"photos"`
	CTAButtons  []CTAButton `json:"ctaButtons"`
}

func (*HomeBanner) PageID() PageID { return PageHomeBanner }

func (p *HomeBanner) EditSection(section string, edit pagedit.Edit) (err error) {
	switch section {
	case "photos":
		p.Photos, err = apply(p.Photos, edit)
	case "ctaButtons":
		p.CTAButtons, err = apply(p.CTAButtons, edit)
	default:
		return apperrors.ErrUnknownSection
	}
	return err
}

type HomeContent struct {
	Record
	Welcome    string      `json:"welcome"`
	Paragraphs []string    `json:"paragraphs"`
	Stats      []Stat      `json:"stats"`
	CTAButtons []CTAButton `json:"ctaButtons"`
}

func (*HomeContent) PageID() PageID { return PageHomeContent }

func (p *HomeContent) EditSection(section string, edit pagedit.Edit) (err error) {
	switch section {
	case "paragraphs":
		p.Paragraphs, err = apply(p.Paragraphs, edit)
	case "stats":
		p.Stats, err = apply(p.Stats, edit)
	case "ctaButtons":
		p.CTAButtons, err = apply(p.CTAButtons, edit)
	default:
		return apperrors.ErrUnknownSection
	}
	return err
}

type WallOfFame struct {
	Record
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Photos      []string `json:"photos"`
	Paragraphs  []string `json:"paragraphs"`
}

func (*WallOfFame) PageID() PageID { return PageWallOfFame }

func (p *WallOfFame) EditSection(section string, edit pagedit.Edit) (err error) {
	switch section {
	case "photos":
		p.Photos, err = apply(p.Photos, edit)
	case "paragraphs":
		p.Paragraphs, err = apply(p.Paragraphs, edit)
	default:
		return apperrors.ErrUnknownSection
	}
	return err
}

// apply keeps the old slice when the edit fails so a failed edit leaves the page untouched
func apply[T any](items []T, edit pagedit.Edit) ([]T, error) {
	out, err := pagedit.Apply(items, edit)
	if err != nil {
		return items, err
	}
	return out, nil
}

// ParsePageID validates a page id from a URL.
func ParsePageID(s string) (PageID, error) {
	for _, id := range PageIDs {
		if string(id) == s {
			return id, nil
		}
	}
	return "", apperrors.ErrUnknownPage
}

// NewPage returns an empty record for id, ready to be decoded into.
func NewPage(id PageID) (Page, error) {
	switch id {
	case PageAbout:
		return &AboutPage{}, nil
	case PageHomeBanner:
		return &HomeBanner{}, nil
	case PageHomeContent:
		return &HomeContent{}, nil
	case PageWallOfFame:
		return &WallOfFame{}, nil
	}
	return nil, apperrors.ErrUnknownPage
}

// DefaultPage is what the public site shows before a page has ever been saved.
func DefaultPage(id PageID) (Page, error) {
	switch id {
	case PageAbout:
		return &AboutPage{
			Record: Record{ID: string(PageAbout)},
			Title:  "About the Hall of Fame",
			Intro:  "The Athletic Hall of Fame honors the student-athletes, coaches and contributors who shaped our school's athletic tradition.",
			Paragraphs: []string{
				"Inductees are nominated by the community and selected each year by the Hall of Fame committee.",
			},
			Members: []CommitteeMember{},
			FAQs: []FAQ{
				{Question: "How do I nominate someone?", Answer: "Contact the athletic office with the nominee's name, sport and accomplishments."},
			},
		}, nil
	case PageHomeBanner:
		return &HomeBanner{
			Record:      Record{ID: string(PageHomeBanner)},
			Headline:    "Athletic Hall of Fame",
			Subheadline: "Celebrating generations of excellence",
			Photos:      []string{},
			CTAButtons: []CTAButton{
				{Label: "Meet the Inductees", Href: "/inductees"},
			},
		}, nil
	case PageHomeContent:
		return &HomeContent{
			Record:     Record{ID: string(PageHomeContent)},
			Welcome:    "Welcome to the Hall of Fame",
			Paragraphs: []string{"Explore the classes, championships and stories behind our athletic history."},
			Stats:      []Stat{},
			CTAButtons: []CTAButton{
				{Label: "View Classes", Href: "/classes"},
				{Label: "Championships", Href: "/championships"},
			},
		}, nil
	case PageWallOfFame:
		return &WallOfFame{
			Record:      Record{ID: string(PageWallOfFame)},
			Title:       "Wall of Fame",
			Description: "Every inductee, honored in one place.",
			Photos:      []string{},
			Paragraphs:  []string{},
		}, nil
	}
	return nil, apperrors.ErrUnknownPage
}
