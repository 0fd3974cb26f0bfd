package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"

	"hall-of-fame-backend/internal/auth"
	"hall-of-fame-backend/internal/database/models"
	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/logger"
	"hall-of-fame-backend/internal/pagedit"
	"hall-of-fame-backend/internal/repository"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// PageService edits the singleton content pages. Every write is a full
// read-modify-overwrite, so concurrent editors overwrite each other.
type PageService struct {
	repo *repository.PageRepository
}

// Ensure PageService implements PageServiceInterface
var _ PageServiceInterface = (*PageService)(nil)

func NewPageService(repo *repository.PageRepository) *PageService {
	return &PageService{repo: repo}
}

// Get returns the stored page, or its default when it was never saved
func (s *PageService) Get(ctx context.Context, id models.PageID) (models.Page, error) {
	page, err := s.repo.Get(ctx, id)
	if errors.Is(err, apperrors.ErrPageNotFound) {
		return models.DefaultPage(id)
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Save overwrites the page with the record decoded from body
func (s *PageService) Save(ctx context.Context, session *auth.Session, id models.PageID, body []byte) (models.Page, error) {
	page, err := decodePage(id, body)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, page, session.Actor()); err != nil {
		return nil, err
	}
	logger.WithContext(ctx).WithField("page", id).Info("Saved page")
	return s.Get(ctx, id)
}

// EditSection applies one append, update or remove to an array section of the page
func (s *PageService) EditSection(ctx context.Context, session *auth.Session, id models.PageID, section string, edit pagedit.Edit) (models.Page, error) {
	page, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := page.EditSection(section, edit); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, page, session.Actor()); err != nil {
		return nil, err
	}
	return page, nil
}

// Preview renders the record decoded from body without saving it
func (s *PageService) Preview(ctx context.Context, id models.PageID, body []byte) (*PagePreview, error) {
	page, err := decodePage(id, body)
	if err != nil {
		return nil, err
	}
	return RenderPreview(page)
}

func decodePage(id models.PageID, body []byte) (models.Page, error) {
	page, err := models.NewPage(id)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, page); err != nil {
		return nil, apperrors.NewValidationError("body", fmt.Sprintf("invalid %s page: %v", id, err))
	}
	return page, nil
}

// PagePreview is a page rendered to HTML.
type PagePreview struct {
	Page models.PageID `json:"page" swaggertype:"string" example:"about"`
	HTML string        `json:"html"`
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Linkify),
	goldmark.WithRendererOptions(goldmarkHTML.WithHardWraps()),
)

var previewTemplate = template.Must(template.New("preview").Funcs(template.FuncMap{
	"markdown": renderMarkdown,
}).Parse(`<article class="page-preview page-{{.ID}}">
{{- with .Heading}}
<h1>{{.}}</h1>{{end}}
{{- with .Subheading}}
<p class="lead">{{.}}</p>{{end}}
{{- with .Intro}}
{{markdown .}}{{end}}
{{- range .Paragraphs}}
{{markdown .}}{{end}}
{{- range .Lists}}{{if .Items}}
<section><h2>{{.Title}}</h2><ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul></section>{{end}}{{end}}
{{- range .Photos}}
<img src="{{.}}" alt="">{{end}}
</article>`))

type previewList struct {
	Title string
	Items []string
}

type previewView struct {
	ID         models.PageID
	Heading    string
	Subheading string
	Intro      string
	Paragraphs []string
	Lists      []previewList
	Photos     []string
}

// RenderPreview renders page to HTML. Paragraphs are markdown; raw HTML in them
// is not rendered.
func RenderPreview(page models.Page) (*PagePreview, error) {
	view := previewView{ID: page.PageID()}
	switch p := page.(type) {
	case *models.AboutPage:
		view.Heading = p.Title
		view.Intro = p.Intro
		view.Paragraphs = p.Paragraphs
		members := make([]string, 0, len(p.Members))
		for _, m := range p.Members {
			members = append(members, joinNonEmpty(m.Name, m.Role))
		}
		faqs := make([]string, 0, len(p.FAQs))
		for _, f := range p.FAQs {
			faqs = append(faqs, joinNonEmpty(f.Question, f.Answer))
		}
		view.Lists = []previewList{{Title: "Committee", Items: members}, {Title: "FAQ", Items: faqs}}
		if p.PhotoURL != "" {
			view.Photos = []string{p.PhotoURL}
		}
	case *models.HomeBanner:
		view.Heading = p.Headline
		view.Subheading = p.Subheadline
		view.Photos = p.Photos
		view.Lists = []previewList{{Title: "Buttons", Items: buttonLabels(p.CTAButtons)}}
	case *models.HomeContent:
		view.Heading = p.Welcome
		view.Paragraphs = p.Paragraphs
		stats := make([]string, 0, len(p.Stats))
		for _, st := range p.Stats {
			stats = append(stats, joinNonEmpty(st.Value, st.Label))
		}
		view.Lists = []previewList{{Title: "Stats", Items: stats}, {Title: "Buttons", Items: buttonLabels(p.CTAButtons)}}
	case *models.WallOfFame:
		view.Heading = p.Title
		view.Intro = p.Description
		view.Paragraphs = p.Paragraphs
		view.Photos = p.Photos
	default:
		return nil, apperrors.ErrUnknownPage
	}

	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render %s preview: %w", page.PageID(), err)
	}
	return &PagePreview{Page: page.PageID(), HTML: buf.String()}, nil
}

func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

func buttonLabels(buttons []models.CTAButton) []string {
	out := make([]string, 0, len(buttons))
	for _, b := range buttons {
		out = append(out, joinNonEmpty(b.Label, b.Href))
	}
	return out
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " - " + b
	}
}
