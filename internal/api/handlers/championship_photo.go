package handlers

import (
	"net/http"

	"hall-of-fame-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChampionshipPhotoHandler handles HTTP requests for championship photo administration
type ChampionshipPhotoHandler struct {
	photoService service.ChampionshipPhotoServiceInterface
}

// NewChampionshipPhotoHandler creates a new championship photo handler
func NewChampionshipPhotoHandler(photoService service.ChampionshipPhotoServiceInterface) *ChampionshipPhotoHandler {
	return &ChampionshipPhotoHandler{photoService: photoService}
}

// List handles GET /championship-photos?championshipId=
// @Summary List championship photos
// @Description Return the gallery of one parent, ordered by the order field
// @Tags championship-photos
// @Produce json
// @Param championshipId query string true "Parent id"
// @Success 200 {object} Envelope{data=[]models.ChampionshipPhoto} "Championship photos"
// @Failure 400 {object} Envelope "championshipId is required"
// @Failure 500 {object} Envelope "Internal server error"
// @Security BearerAuth
// @Router /championship-photos [get]
func (h *ChampionshipPhotoHandler) List(c *gin.Context) {
	parentID := c.Query("championshipId")
	if parentID == "" {
		fail(c, http.StatusBadRequest, "championshipId is required")
		return
	}

	items, err := h.photoService.List(c, parentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

// Get handles GET /championship-photos/:id
// @Summary Get a championship photo
// @Tags championship-photos
// @Produce json
// @Param id path string true "Championship photo ID"
// @Success 200 {object} Envelope{data=models.ChampionshipPhoto} "Championship photo"
// @Failure 404 {object} Envelope "Championship photo not found"
// @Security BearerAuth
// @Router /championship-photos/{id} [get]
func (h *ChampionshipPhotoHandler) Get(c *gin.Context) {
	item, err := h.photoService.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, item)
}

// Create handles POST /championship-photos
// @Summary Create a championship photo
// @Tags championship-photos
// @Accept json
// @Produce json
// @Param body body service.CreateChampionshipPhotoRequest true "Championship photo data"
// @Success 201 {object} Envelope{data=service.CreateResponse} "Created"
// @Failure 400 {object} Envelope "Invalid request body"
// @Failure 401 {object} Envelope "Not signed in"
// @Security BearerAuth
// @Router /championship-photos [post]
func (h *ChampionshipPhotoHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req service.CreateChampionshipPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.photoService.Create(c, s, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, created)
}

// Update handles PUT /championship-photos/:id
// @Summary Update a championship photo
// @Description Merge the provided fields into the stored championship photo
// @Tags championship-photos
// @Accept json
// @Produce json
// @Param id path string true "Championship photo ID"
// @Param body body service.UpdateChampionshipPhotoRequest true "Fields to change"
// @Success 200 {object} Envelope{data=models.ChampionshipPhoto} "Updated championship photo"
// @Failure 400 {object} Envelope "Invalid request body"
// @Failure 404 {object} Envelope "Championship photo not found"
// @Security BearerAuth
// @Router /championship-photos/{id} [put]
func (h *ChampionshipPhotoHandler) Update(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req service.UpdateChampionshipPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.photoService.Update(c, s, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, updated)
}

// Promote handles POST /championship-photos/:id/promote
// @Summary Use a gallery photo as the championship photo
// @Description Copies the photo URL onto the championship. The gallery photo stays in place.
// @Tags championship-photos
// @Produce json
// @Param id path string true "Championship photo ID"
// @Success 200 {object} Envelope{data=models.Championship} "Updated championship"
// @Failure 404 {object} Envelope "Photo or championship not found"
// @Security BearerAuth
// @Router /championship-photos/{id}/promote [post]
func (h *ChampionshipPhotoHandler) Promote(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	championship, err := h.photoService.Promote(c, s, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, championship)
}

// Delete handles DELETE /championship-photos/:id
// @Summary Delete a championship photo
// @Description Remove the championship photo and any hosted photos it references
// @Tags championship-photos
// @Produce json
// @Param id path string true "Championship photo ID"
// @Success 200 {object} Envelope{data=service.CascadeResult} "Delete outcome"
// @Failure 404 {object} Envelope "Championship photo not found"
// @Failure 500 {object} Envelope "Document delete failed"
// @Security BearerAuth
// @Router /championship-photos/{id} [delete]
func (h *ChampionshipPhotoHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	res, err := h.photoService.Delete(c, s, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, res)
}
