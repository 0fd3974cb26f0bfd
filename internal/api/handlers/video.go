package handlers

import (
	"net/http"

	"hall-of-fame-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VideoHandler handles HTTP requests for video administration
type VideoHandler struct {
	videoService service.VideoServiceInterface
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(videoService service.VideoServiceInterface) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// List handles GET /videos
// @Summary List videos
// @Description Return every video, optionally filtered by a case-insensitive search over its text fields
// @Tags videos
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} Envelope{data=[]models.Video} "Videos"
// @Failure 500 {object} Envelope "Internal server error"
// @Security BearerAuth
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	items, err := h.videoService.List(c, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

// Get handles GET /videos/:id
// @Summary Get a video
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} Envelope{data=models.Video} "Video"
// @Failure 404 {object} Envelope "Video not found"
// @Security BearerAuth
// @Router /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	item, err := h.videoService.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, item)
}

// Create handles POST /videos
// @Summary Create a video
// @Tags videos
// @Accept json
// @Produce json
// @Param body body service.CreateVideoRequest true "Video data"
// @Success 201 {object} Envelope{data=service.CreateResponse} "Created"
// @Failure 400 {object} Envelope "Invalid request body"
// @Failure 401 {object} Envelope "Not signed in"
// @Security BearerAuth
// @Router /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req service.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.videoService.Create(c, s, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, created)
}

// Update handles PUT /videos/:id
// @Summary Update a video
// @Description Merge the provided fields into the stored video
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param body body service.UpdateVideoRequest true "Fields to change"
// @Success 200 {object} Envelope{data=models.Video} "Updated video"
// @Failure 400 {object} Envelope "Invalid request body"
// @Failure 404 {object} Envelope "Video not found"
// @Security BearerAuth
// @Router /videos/{id} [put]
func (h *VideoHandler) Update(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req service.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.videoService.Update(c, s, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, updated)
}

// Delete handles DELETE /videos/:id
// @Summary Delete a video
// @Description Remove the video and any hosted photos it references
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} Envelope{data=service.CascadeResult} "Delete outcome"
// @Failure 404 {object} Envelope "Video not found"
// @Failure 500 {object} Envelope "Document delete failed"
// @Security BearerAuth
// @Router /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	res, err := h.videoService.Delete(c, s, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, res)
}
