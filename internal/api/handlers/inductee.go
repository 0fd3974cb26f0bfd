package handlers

import (
	"net/http"

	"hall-of-fame-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InducteeHandler handles HTTP requests for inductee administration
type InducteeHandler struct {
	inducteeService service.InducteeServiceInterface
}

// NewInducteeHandler creates a new inductee handler
func NewInducteeHandler(inducteeService service.InducteeServiceInterface) *InducteeHandler {
	return &InducteeHandler{inducteeService: inducteeService}
}

// List handles GET /inductees
// @Summary List inductees
// @Description Return every inductee, optionally filtered by a case-insensitive search over its text fields
// @Tags inductees
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} Envelope{data=[]models.Inductee} "Inductees"
// @Failure 500 {object} Envelope "Internal server error"
// @Security BearerAuth
// @Router /inductees [get]
func (h *InducteeHandler) List(c *gin.Context) {
	items, err := h.inducteeService.List(c, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

// Get handles GET /inductees/:id
// @Summary Get an inductee
// @Tags inductees
// @Produce json
// @Param id path string true "Inductee ID"
// @Success 200 {object} Envelope{data=models.Inductee} "Inductee"
// @Failure 404 {object} Envelope "Inductee not found"
// @Security BearerAuth
// @Router /inductees/{id} [get]
func (h *InducteeHandler) Get(c *gin.Context) {
	item, err := h.inducteeService.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, item)
}

// Create handles POST /inductees
// @Summary Create an inductee
// @Description The sport text is split into sport tags. Numeric fields accept numbers or numeric strings; a blank graduationYear is stored as null.
// @Tags inductees
// @Accept json
// @Produce json
// @Param body body service.CreateInducteeRequest true "Inductee data"
// @Success 201 {object} Envelope{data=service.CreateResponse} "Created"
// @Failure 400 {object} Envelope "Invalid request body"
// @Failure 401 {object} Envelope "Not signed in"
// @Security BearerAuth
// @Router /inductees [post]
func (h *InducteeHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req service.CreateInducteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.inducteeService.Create(c, s, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, created)
}

// Update handles PUT /inductees/:id
// @Summary Update an inductee
// @Description Merge the provided fields into the stored inductee
// @Tags inductees
// @Accept json
// @Produce json
// @Param id path string true "Inductee ID"
// @Param body body service.UpdateInducteeRequest true "Fields to change"
// @Success 200 {object} Envelope{data=models.Inductee} "Updated inductee"
// @Failure 400 {object} Envelope "Invalid request body"
// @Failure 404 {object} Envelope "Inductee not found"
// @Security BearerAuth
// @Router /inductees/{id} [put]
func (h *InducteeHandler) Update(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req service.UpdateInducteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.inducteeService.Update(c, s, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, updated)
}

// Delete handles DELETE /inductees/:id
// @Summary Delete an inductee
// @Description Remove the inductee and any hosted photos it references
// @Tags inductees
// @Produce json
// @Param id path string true "Inductee ID"
// @Success 200 {object} Envelope{data=service.CascadeResult} "Delete outcome"
// @Failure 404 {object} Envelope "Inductee not found"
// @Failure 500 {object} Envelope "Document delete failed"
// @Security BearerAuth
// @Router /inductees/{id} [delete]
func (h *InducteeHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	res, err := h.inducteeService.Delete(c, s, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, res)
}
