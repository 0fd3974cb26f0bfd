package handlers

import (
	"net/http"

	"hall-of-fame-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClassHandler handles HTTP requests for induction class administration
type ClassHandler struct {
	classService service.ClassServiceInterface
}

// NewClassHandler creates a new induction class handler
func NewClassHandler(classService service.ClassServiceInterface) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// List handles GET /classes
// @Summary List induction classes
// @Description Return every induction class, optionally filtered by a case-insensitive search over its text fields
// @Tags classes
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} Envelope{data=[]models.InductionClass} "Induction classes"
// @Failure 500 {object} Envelope "Internal server error"
// @Security BearerAuth
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	items, err := h.classService.List(c, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

// Get handles GET /classes/:id
// @Summary Get an induction class
// @Tags classes
// @Produce json
// @Param id path string true "Induction class ID"
// @Success 200 {object} Envelope{data=models.InductionClass} "Induction class"
// @Failure 404 {object} Envelope "Induction class not found"
// @Security BearerAuth
// @Router /classes/{id} [get]
func (h *ClassHandler) Get(c *gin.Context) {
	item, err := h.classService.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, item)
}

// Create handles POST /classes
// @Summary Create an induction class
// @Description Years are not unique; a second class for a year is stored and flagged with duplicateYear
// @Tags classes
// @Accept json
// @Produce json
// @Param body body service.CreateClassRequest true "Induction class data"
// @Success 201 {object} Envelope{data=service.CreateResponse} "Created"
// @Failure 400 {object} Envelope "Invalid request body"
// @Failure 401 {object} Envelope "Not signed in"
// @Security BearerAuth
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.classService.Create(c, s, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, created)
}

// Update handles PUT /classes/:id
// @Summary Update an induction class
// @Description Merge the provided fields into the stored induction class
// @Tags classes
// @Accept json
// @Produce json
// @Param id path string true "Induction class ID"
// @Param body body service.UpdateClassRequest true "Fields to change"
// @Success 200 {object} Envelope{data=models.InductionClass} "Updated induction class"
// @Failure 400 {object} Envelope "Invalid request body"
// @Failure 404 {object} Envelope "Induction class not found"
// @Security BearerAuth
// @Router /classes/{id} [put]
func (h *ClassHandler) Update(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req service.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.classService.Update(c, s, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, updated)
}

// Delete handles DELETE /classes/:id
// @Summary Delete an induction class
// @Description Remove the induction class and any hosted photos it references
// @Tags classes
// @Produce json
// @Param id path string true "Induction class ID"
// @Success 200 {object} Envelope{data=service.CascadeResult} "Delete outcome"
// @Failure 404 {object} Envelope "Induction class not found"
// @Failure 500 {object} Envelope "Document delete failed"
// @Security BearerAuth
// @Router /classes/{id} [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	res, err := h.classService.Delete(c, s, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, res)
}
