package auth

import (
	"net/http"

	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login
// @Summary Sign in
// @Description Exchange an admin email and password for a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Envelope with a LoginResponse"
// @Failure 400 {object} map[string]interface{} "Malformed request"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"data": nil, "error": "email and password are required"})
		return
	}

	resp, err := h.service.Login(c, req.Email, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"data": nil, "error": err.Error()})
			return
		}
		logger.WithContext(c).WithError(err).Error("Sign-in failed")
		c.JSON(http.StatusInternalServerError, gin.H{"data": nil, "error": "sign-in failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp, "error": nil})
}

// Session handles GET /api/auth/session
// @Summary Current session
// @Description Return the session of the bearer token
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Envelope with a Session"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /api/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	session, ok := GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"data": nil, "error": apperrors.ErrMissingSession.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": session, "error": nil})
}

// Logout handles POST /api/auth/logout
// @Summary Sign out
// @Description Tokens are stateless; the client discards its token
// @Tags authentication
// @Produce json
// @Success 200 {object} map[string]interface{} "Envelope with a LogoutResponse"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": LogoutResponse{Message: "Logged out successfully"}, "error": nil})
}
