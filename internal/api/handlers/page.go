package handlers

import (
	"io"
	"net/http"

	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/pagedit"
	"hall-of-fame-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxPageBytes bounds a page body; pages are text plus photo URLs.
const maxPageBytes = 1 << 20

// PageHandler handles the singleton content pages
type PageHandler struct {
	pageService service.PageServiceInterface
}

func NewPageHandler(pageService service.PageServiceInterface) *PageHandler {
	return &PageHandler{pageService: pageService}
}

func pageID(c *gin.Context) (models.PageID, bool) {
	id, err := models.ParsePageID(c.Param("page"))
	if err != nil {
		respondError(c, err)
		return "", false
	}
	return id, true
}

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPageBytes))
	if err != nil {
		badRequest(c, err)
		return nil, false
	}
	return body, true
}

// Get handles GET /pages/:page
// @Summary Get a page
// @Description Return the stored page, or its default content when it has never been saved
// @Tags pages
// @Produce json
// @Param page path string true "Page" Enums(about, home-banner, home-content, wall-of-fame)
// @Success 200 {object} Envelope "Page record"
// @Failure 400 {object} Envelope "Unknown page"
// @Router /public/pages/{page} [get]
func (h *PageHandler) Get(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	page, err := h.pageService.Get(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, page)
}

// Save handles PUT /pages/:page
// @Summary Save a page
// @Description Overwrite the whole page record
// @Tags pages
// @Accept json
// @Produce json
// @Param page path string true "Page" Enums(about, home-banner, home-content, wall-of-fame)
// @Param body body object true "Page record"
// @Success 200 {object} Envelope "Saved page"
// @Failure 400 {object} Envelope "Unknown page or invalid record"
// @Security BearerAuth
// @Router /pages/{page} [put]
func (h *PageHandler) Save(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pageID(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	page, err := h.pageService.Save(c, s, id, body)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, page)
}

// EditSection handles POST /pages/:page/sections/:section
// @Summary Edit a page section
// @Description Append, update or remove one item of an array section such as faqs or ctaButtons
// @Tags pages
// @Accept json
// @Produce json
// @Param page path string true "Page" Enums(about, home-banner, home-content, wall-of-fame)
// @Param section path string true "Section" Enums(paragraphs, members, faqs, stats, ctaButtons, photos)
// @Param edit body pagedit.Edit true "Edit"
// @Success 200 {object} Envelope "Edited page"
// @Failure 400 {object} Envelope "Unknown section or index out of range"
// @Security BearerAuth
// @Router /pages/{page}/sections/{section} [post]
func (h *PageHandler) EditSection(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pageID(c)
	if !ok {
		return
	}

	var edit pagedit.Edit
	if err := c.ShouldBindJSON(&edit); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.pageService.EditSection(c, s, id, c.Param("section"), edit)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, page)
}

// Preview handles POST /pages/:page/preview
// @Summary Preview a page
// @Description Render the record to HTML without saving it
// @Tags pages
// @Accept json
// @Produce json
// @Param page path string true "Page" Enums(about, home-banner, home-content, wall-of-fame)
// @Param body body object true "Page record"
// @Success 200 {object} Envelope{data=service.PagePreview} "Rendered page"
// @Failure 400 {object} Envelope "Unknown page or invalid record"
// @Security BearerAuth
// @Router /pages/{page}/preview [post]
func (h *PageHandler) Preview(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	preview, err := h.pageService.Preview(c, id, body)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, preview)
}
