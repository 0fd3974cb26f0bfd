package handlers

import (
	"errors"
	"net/http"

	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SeedHandler starts the bulk seeder and reports its progress
type SeedHandler struct {
	seedService service.SeedServiceInterface
}

func NewSeedHandler(seedService service.SeedServiceInterface) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// Start handles POST /admin/seed
// @Summary Seed the hall of fame
// @Description Write the built-in classes and inductees in the background. Re-running duplicates them.
// @Tags admin
// @Produce json
// @Success 202 {object} Envelope{data=seed.Progress} "Seeding started"
// @Failure 409 {object} Envelope{data=seed.Progress} "Seeding is already running"
// @Security BearerAuth
// @Router /admin/seed [post]
func (h *SeedHandler) Start(c *gin.Context) {
	if _, ok := session(c); !ok {
		return
	}

	progress, err := h.seedService.Start(c)
	if errors.Is(err, apperrors.ErrSeedRunning) {
		msg := err.Error()
		c.JSON(http.StatusConflict, Envelope{Data: progress, Error: &msg})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusAccepted, progress)
}

// Progress handles GET /admin/seed/progress
// @Summary Seeding progress
// @Tags admin
// @Produce json
// @Success 200 {object} Envelope{data=seed.Progress} "Progress of the current or last run"
// @Security BearerAuth
// @Router /admin/seed/progress [get]
func (h *SeedHandler) Progress(c *gin.Context) {
	respond(c, http.StatusOK, h.seedService.Progress())
}
