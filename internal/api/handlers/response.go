package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hall-of-fame-backend/internal/auth"
	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape of every API response. Exactly one of Data and Error is set.
type Envelope struct {
	Data  interface{} `json:"data"`
	Error *string     `json:"error" example:"inductee not found"`
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Data: data})
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Error: &message})
}

// respondError maps service errors to a status code and writes the envelope
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c).WithError(err).Errorf("%s %s failed", c.Request.Method, c.FullPath())
	}
	fail(c, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err), errors.Is(err, apperrors.ErrNotHostedURL):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err), errors.Is(err, apperrors.ErrSeedRunning):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// badRequest reports a body that could not be bound
func badRequest(c *gin.Context, err error) {
	fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
}

// session returns the signed-in admin or writes a 401
func session(c *gin.Context) (*auth.Session, bool) {
	s, ok := auth.GetSession(c)
	if !ok {
		fail(c, http.StatusUnauthorized, apperrors.ErrMissingSession.Error())
		return nil, false
	}
	return s, true
}

// yearParam parses a four-digit year path or query value
func yearParam(c *gin.Context, raw string) (int, bool) {
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1800 || year > 3000 {
		fail(c, http.StatusBadRequest, "invalid year: "+raw)
		return 0, false
	}
	return year, true
}
