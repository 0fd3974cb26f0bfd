package auth

import (
	"time"

	"hall-of-fame-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// sessionKey is the gin context key RequireAuth stores the session under.
const sessionKey = "auth_session"

// Session identifies the signed-in admin. Every admin has full rights, so the
// session carries identity only. Services take it as an explicit argument.
type Session struct {
	UserID      string    `json:"userId" example:"4f1c2d9e-8a7b-4c3d-9e2f-1a2b3c4d5e6f"`
	Email       string    `json:"email" example:"admin@example.com"`
	DisplayName string    `json:"displayName" example:"Athletics Office"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Actor is the value stamped into createdBy and updatedBy.
func (s Session) Actor() string {
	return s.Email
}

// SetSession stores s on the request context. The email is also stored under
// the logger's actor key so request logs carry the user.
func SetSession(c *gin.Context, s *Session) {
	c.Set(sessionKey, s)
	c.Set(logger.ActorKey, s.Email)
}

// GetSession is a helper function to extract the session set by RequireAuth
func GetSession(c *gin.Context) (*Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok
}
