package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/docstore"
	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/logger"

	"github.com/benbjohnson/clock"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminRepository is the part of the admins collection the auth service needs
type AdminRepository interface {
	ListWhere(ctx context.Context, field string, value interface{}, orderBy string, dir docstore.Direction) ([]models.Admin, error)
	Create(ctx context.Context, v *models.Admin) (string, error)
}

// AuthService signs admins in with email and password and issues JWTs
type AuthService struct {
	config *AuthConfig
	admins AdminRepository
	clock  clock.Clock
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Email                string `json:"email" example:"admin@example.com"`
	DisplayName          string `json:"displayName,omitempty" example:"Athletics Office"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"correct-horse-battery-staple"`
}

// LoginResponse represents the response from the login endpoint
type LoginResponse struct {
	AccessToken      string  `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType        string  `json:"tokenType" example:"bearer"`
	ExpiresInSeconds int64   `json:"expiresInSeconds" example:"43200"`
	Session          Session `json:"session"`
}

// LogoutResponse represents the response from the logout endpoint
type LogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, admins AdminRepository) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if config.Issuer == "" {
		config.Issuer = DefaultIssuer
	}
	return &AuthService{
		config: config,
		admins: admins,
		clock:  clock.New(),
	}, nil
}

// SetClock replaces the clock used for issuing and checking tokens.
func (s *AuthService) SetClock(c clock.Clock) {
	s.clock = c
}

// Login checks the password against the stored bcrypt hash and returns a signed token.
// Unknown emails and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	admin, err := s.findByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrAdminNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		logger.WithContext(ctx).WithField("email", admin.Email).Warn("Rejected sign-in with a wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	session := s.newSession(admin)
	token, err := s.GenerateJWT(session)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResponse{
		AccessToken:      token,
		TokenType:        "bearer",
		ExpiresInSeconds: int64(s.config.TokenTTL.Seconds()),
		Session:          *session,
	}, nil
}

// CreateAdmin stores a new account with a bcrypt hash of password.
func (s *AuthService) CreateAdmin(ctx context.Context, email, displayName, password string) (*models.Admin, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationError("email", "a valid email is required")
	}
	if len(password) < 8 {
		return nil, apperrors.NewValidationError("password", "password must be at least 8 characters")
	}

	if _, err := s.findByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrAdminExists
	} else if !errors.Is(err, apperrors.ErrAdminNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
	}
	id, err := s.admins.Create(ctx, admin)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	admin.ID = id
	return admin, nil
}

// GenerateJWT signs a token for the session
func (s *AuthService) GenerateJWT(session *Session) (string, error) {
	now := s.clock.Now()
	claims := &AuthClaims{
		Email:       session.Email,
		DisplayName: session.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   session.UserID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateToken parses a bearer token into a session
func (s *AuthService) ValidateToken(tokenString string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.clock.Now), jwt.WithIssuer(s.config.Issuer))

	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, apperrors.ErrTokenExpired
	}
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken
	}

	session := &Session{
		UserID:      claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

func (s *AuthService) newSession(admin *models.Admin) *Session {
	return &Session{
		UserID:      admin.ID,
		Email:       admin.Email,
		DisplayName: admin.DisplayName,
		ExpiresAt:   s.clock.Now().Add(s.config.TokenTTL).Truncate(time.Second),
	}
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admins, err := s.admins.ListWhere(ctx, "email", normalizeEmail(email), "", docstore.Asc)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if len(admins) == 0 {
		return nil, apperrors.ErrAdminNotFound
	}
	return &admins[0], nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
