package handlers

import (
	"net/http"

	"hall-of-fame-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PhotoHandler handles HTTP requests for inductee photo administration
type PhotoHandler struct {
	photoService service.PhotoServiceInterface
}

// NewPhotoHandler creates a new inductee photo handler
func NewPhotoHandler(photoService service.PhotoServiceInterface) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// List handles GET /photos?inducteeId=
// @Summary List inductee photos
// @Description Return the gallery of one parent, ordered by the order field
// @Tags photos
// @Produce json
// @Param inducteeId query string true "Parent id"
// @Success 200 {object} Envelope{data=[]models.Photo} "Inductee photos"
// @Failure 400 {object} Envelope "inducteeId is required"
// @Failure 500 {object} Envelope "Internal server error"
// @Security BearerAuth
// @Router /photos [get]
func (h *PhotoHandler) List(c *gin.Context) {
	parentID := c.Query("inducteeId")
	if parentID == "" {
		fail(c, http.StatusBadRequest, "inducteeId is required")
		return
	}

	items, err := h.photoService.List(c, parentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

// Get handles GET /photos/:id
// @Summary Get an inductee photo
// @Tags photos
// @Produce json
// @Param id path string true "Inductee photo ID"
// @Success 200 {object} Envelope{data=models.Photo} "Inductee photo"
// @Failure 404 {object} Envelope "Inductee photo not found"
// @Security BearerAuth
// @Router /photos/{id} [get]
func (h *PhotoHandler) Get(c *gin.Context) {
	item, err := h.photoService.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, item)
}

// Create handles POST /photos
// @Summary Create an inductee photo
// @Tags photos
// @Accept json
// @Produce json
// @Param body body service.CreatePhotoRequest true "Inductee photo data"
// @Success 201 {object} Envelope{data=service.CreateResponse} "Created"
// @Failure 400 {object} Envelope "Invalid request body"
// @Failure 401 {object} Envelope "Not signed in"
// @Security BearerAuth
// @Router /photos [post]
func (h *PhotoHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req service.CreatePhotoRequest
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

// Update handles PUT /photos/:id
// @Summary Update an inductee photo
// @Description Merge the provided fields into the stored inductee photo
// @Tags photos
// @Accept json
// @Produce json
// @Param id path string true "Inductee photo ID"
// @Param body body service.UpdatePhotoRequest true "Fields to change"
// @Success 200 {object} Envelope{data=models.Photo} "Updated inductee photo"
// @Failure 400 {object} Envelope "Invalid request body"
// @Failure 404 {object} Envelope "Inductee photo not found"
// @Security BearerAuth
// @Router /photos/{id} [put]
func (h *PhotoHandler) Update(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req service.UpdatePhotoRequest
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

// Delete handles DELETE /photos/:id
// @Summary Delete an inductee photo
// @Description Remove the inductee photo and any hosted photos it references
// @Tags photos
// @Produce json
// @Param id path string true "Inductee photo ID"
// @Success 200 {object} Envelope{data=service.CascadeResult} "Delete outcome"
// @Failure 404 {object} Envelope "Inductee photo not found"
// @Failure 500 {object} Envelope "Document delete failed"
// @Security BearerAuth
// @Router /photos/{id} [delete]
func (h *PhotoHandler) Delete(c *gin.Context) {
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
