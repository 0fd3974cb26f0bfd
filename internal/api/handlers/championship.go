package handlers

import (
	"net/http"

	"hall-of-fame-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChampionshipHandler handles HTTP requests for championship administration
type ChampionshipHandler struct {
	championshipService service.ChampionshipServiceInterface
}

// NewChampionshipHandler creates a new championship handler
func NewChampionshipHandler(championshipService service.ChampionshipServiceInterface) *ChampionshipHandler {
	return &ChampionshipHandler{championshipService: championshipService}
}

// List handles GET /championships
// @Summary List championships
// @Description Return every championship, optionally filtered by a case-insensitive search over its text fields
// @Tags championships
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} Envelope{data=[]models.Championship} "Championships"
// @Failure 500 {object} Envelope "Internal server error"
// @Security BearerAuth
// @Router /championships [get]
func (h *ChampionshipHandler) List(c *gin.Context) {
	items, err := h.championshipService.List(c, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

// Get handles GET /championships/:id
// @Summary Get a championship
// @Tags championships
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} Envelope{data=models.Championship} "Championship"
// @Failure 404 {object} Envelope "Championship not found"
// @Security BearerAuth
// @Router /championships/{id} [get]
func (h *ChampionshipHandler) Get(c *gin.Context) {
	item, err := h.championshipService.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, item)
}

// Create handles POST /championships
// @Summary Create a championship
// @Tags championships
// @Accept json
// @Produce json
// @Param body body service.CreateChampionshipRequest true "Championship data"
// @Success 201 {object} Envelope{data=service.CreateResponse} "Created"
// @Failure 400 {object} Envelope "Invalid request body"
// @Failure 401 {object} Envelope "Not signed in"
// @Security BearerAuth
// @Router /championships [post]
func (h *ChampionshipHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req service.CreateChampionshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.championshipService.Create(c, s, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, created)
}

// Update handles PUT /championships/:id
// @Summary Update a championship
// @Description Merge the provided fields into the stored championship
// @Tags championships
// @Accept json
// @Produce json
// @Param id path string true "Championship ID"
// @Param body body service.UpdateChampionshipRequest true "Fields to change"
// @Success 200 {object} Envelope{data=models.Championship} "Updated championship"
// @Failure 400 {object} Envelope "Invalid request body"
// @Failure 404 {object} Envelope "Championship not found"
// @Security BearerAuth
// @Router /championships/{id} [put]
func (h *ChampionshipHandler) Update(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req service.UpdateChampionshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.championshipService.Update(c, s, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, updated)
}

// Delete handles DELETE /championships/:id
// @Summary Delete a championship
// @Description Remove the championship and any hosted photos it references
// @Tags championships
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} Envelope{data=service.CascadeResult} "Delete outcome"
// @Failure 404 {object} Envelope "Championship not found"
// @Failure 500 {object} Envelope "Document delete failed"
// @Security BearerAuth
// @Router /championships/{id} [delete]
func (h *ChampionshipHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	res, err := h.championshipService.Delete(c, s, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, res)
}
