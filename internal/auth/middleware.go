package auth

import (
	"net/http"
	"strings"

	apperrors "hall-of-fame-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// TokenValidator turns a bearer token into a session
type TokenValidator interface {
	ValidateToken(tokenString string) (*Session, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// RequireAuth validates the bearer token and stores the session on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := m.sessionFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"data": nil, "error": err.Error()})
			return
		}

		SetSession(c, session)
		c.Next()
	}
}

// OptionalAuth sets the session when a valid token is present but doesn't require one
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session, err := m.sessionFromHeader(c.GetHeader("Authorization")); err == nil {
			SetSession(c, session)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) sessionFromHeader(header string) (*Session, error) {
	if header == "" {
		return nil, apperrors.ErrMissingSession
	}

	// Extract token from Bearer header
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header || tokenString == "" {
		return nil, apperrors.NewAuthenticationError("invalid authorization header format")
	}

	session, err := m.validator.ValidateToken(tokenString)
	if err != nil {
		if !apperrors.IsAuthentication(err) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}
	return session, nil
}
