package handlers

import (
	"net/http"

	"hall-of-fame-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the read-only endpoints of the public site. None of
// them require a session.
type PublicHandler struct {
	publicService service.PublicServiceInterface
}

func NewPublicHandler(publicService service.PublicServiceInterface) *PublicHandler {
	return &PublicHandler{publicService: publicService}
}

// Classes handles GET /public/classes
// @Summary List induction classes
// @Description Newest class first
// @Tags public
// @Produce json
// @Success 200 {object} Envelope{data=[]models.InductionClass} "Classes"
// @Router /public/classes [get]
func (h *PublicHandler) Classes(c *gin.Context) {
	classes, err := h.publicService.Classes(c)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, classes)
}

// Class handles GET /public/classes/:year
// @Summary Get a class with its inductees
// @Description A year without inductees returns an empty list
// @Tags public
// @Produce json
// @Param year path int true "Class year"
// @Success 200 {object} Envelope{data=service.ClassDetail} "Class"
// @Failure 400 {object} Envelope "Invalid year"
// @Router /public/classes/{year} [get]
func (h *PublicHandler) Class(c *gin.Context) {
	year, ok := yearParam(c, c.Param("year"))
	if !ok {
		return
	}
	detail, err := h.publicService.Class(c, year)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, detail)
}

// Inductees handles GET /public/inductees
// @Summary Inductee timeline
// @Tags public
// @Produce json
// @Param q query string false "Search over name, sport and years"
// @Param sport query string false "Sport tag"
// @Param year query int false "Class year"
// @Param sort query string false "Sort key" Enums(name, graduationYear)
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} Envelope{data=[]models.Inductee} "Inductees"
// @Failure 400 {object} Envelope "Invalid filter"
// @Router /public/inductees [get]
func (h *PublicHandler) Inductees(c *gin.Context) {
	f := service.TimelineFilter{
		Sport: c.Query("sport"),
		Query: c.Query("q"),
		Desc:  c.Query("dir") == "desc",
	}
	if raw := c.Query("year"); raw != "" {
		year, ok := yearParam(c, raw)
		if !ok {
			return
		}
		f.ClassYear = year
	}
	switch sortKey := c.Query("sort"); sortKey {
	case "", service.SortByName, service.SortByGraduationYear:
		f.Sort = sortKey
	default:
		fail(c, http.StatusBadRequest, "invalid sort: "+sortKey)
		return
	}

	inductees, err := h.publicService.Inductees(c, f)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, inductees)
}

// Inductee handles GET /public/inductees/:id
// @Summary Get an inductee with gallery photos
// @Tags public
// @Produce json
// @Param id path string true "Inductee ID"
// @Success 200 {object} Envelope{data=service.InducteeDetail} "Inductee"
// @Failure 404 {object} Envelope "inductee not found"
// @Router /public/inductees/{id} [get]
func (h *PublicHandler) Inductee(c *gin.Context) {
	detail, err := h.publicService.Inductee(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, detail)
}

// InducteesByClass handles GET /public/inductees/class/:year
// @Summary Inductees of one class
// @Tags public
// @Produce json
// @Param year path int true "Class year"
// @Success 200 {object} Envelope{data=[]models.Inductee} "Inductees ordered by name"
// @Failure 400 {object} Envelope "Invalid year"
// @Router /public/inductees/class/{year} [get]
func (h *PublicHandler) InducteesByClass(c *gin.Context) {
	year, ok := yearParam(c, c.Param("year"))
	if !ok {
		return
	}
	inductees, err := h.publicService.InducteesByClass(c, year)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, inductees)
}

// Videos handles GET /public/videos
// @Summary Ceremony videos
// @Description Each video carries an embeddable URL derived from the stored one
// @Tags public
// @Produce json
// @Param classYear query int false "Class year"
// @Success 200 {object} Envelope{data=[]service.PublicVideo} "Videos"
// @Router /public/videos [get]
func (h *PublicHandler) Videos(c *gin.Context) {
	classYear := 0
	if raw := c.Query("classYear"); raw != "" {
		year, ok := yearParam(c, raw)
		if !ok {
			return
		}
		classYear = year
	}
	videos, err := h.publicService.Videos(c, classYear)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, videos)
}

// Championships handles GET /public/championships
// @Summary Championships
// @Tags public
// @Produce json
// @Param sport query string false "Sport tag"
// @Success 200 {object} Envelope{data=[]models.Championship} "Championships, most recent first"
// @Router /public/championships [get]
func (h *PublicHandler) Championships(c *gin.Context) {
	championships, err := h.publicService.Championships(c, c.Query("sport"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, championships)
}

// Championship handles GET /public/championships/:id
// @Summary Get a championship with gallery photos
// @Tags public
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} Envelope{data=service.ChampionshipDetail} "Championship"
// @Failure 404 {object} Envelope "championship not found"
// @Router /public/championships/{id} [get]
func (h *PublicHandler) Championship(c *gin.Context) {
	detail, err := h.publicService.Championship(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, detail)
}

// Sports handles GET /public/sports
// @Summary Sport tags
// @Description Distinct sport tags across all inductees, for filter options
// @Tags public
// @Produce json
// @Success 200 {object} Envelope{data=[]string} "Sport tags"
// @Router /public/sports [get]
func (h *PublicHandler) Sports(c *gin.Context) {
	tags, err := h.publicService.Sports(c)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, tags)
}
