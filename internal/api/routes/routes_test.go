package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hall-of-fame-backend/internal/api/middleware"
	"hall-of-fame-backend/internal/bootstrap"
	"hall-of-fame-backend/internal/config"
	"hall-of-fame-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite drives the full router over an in-memory database
type RoutesTestSuite struct {
	suite.Suite
	app    *bootstrap.App
	router *gin.Engine
	cancel context.CancelFunc
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *string         `json:"error"`
}

func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Environment:          "test",
		DocstoreBackend:      "sql",
		DatabaseDriver:       "sqlite",
		DatabaseURL:          ":memory:",
		StorageBackend:       "local",
		StorageBucket:        "hof-test.appspot.com",
		StorageLocalDir:      suite.T().TempDir(),
		StoragePublicBaseURL: "http://localhost:7008/media",
		JWTSecret:            "routes-test-secret",
		JWTTTLMinutes:        60,
		AllowedOrigins:       []string{"http://localhost:5173"},
	}

	var ctx context.Context
	ctx, suite.cancel = context.WithCancel(context.Background())
	app, err := bootstrap.New(ctx, cfg)
	suite.Require().NoError(err)
	suite.app = app
	suite.router = SetupRoutes(app, middleware.NewMetrics())
}

func (suite *RoutesTestSuite) TearDownTest() {
	suite.cancel()
	_ = suite.app.Close()
}

func (suite *RoutesTestSuite) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func (suite *RoutesTestSuite) signIn() string {
	_, err := suite.app.Auth.CreateAdmin(context.Background(), "admin@example.com", "Athletics Office", "correct-horse-battery")
	suite.Require().NoError(err)

	rec, env := suite.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@example.com", "password": "correct-horse-battery",
	})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var login struct {
		AccessToken string `json:"accessToken"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &login))
	suite.Require().NotEmpty(login.AccessToken)
	return login.AccessToken
}

func (suite *RoutesTestSuite) TestAdminRoutesRequireSignIn() {
	rec, env := suite.do(http.MethodPost, "/api/v1/classes", "", map[string]interface{}{"year": 2024})
	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Require().NotNil(env.Error)
	suite.Equal("null", string(env.Data))
}

func (suite *RoutesTestSuite) TestCreateThenReadPublicly() {
	token := suite.signIn()

	rec, _ := suite.do(http.MethodPost, "/api/v1/classes", token, map[string]interface{}{
		"year": "2024", "inducteeCount": 3, "ceremonyDate": "2024-10-19",
	})
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec, env := suite.do(http.MethodGet, "/api/v1/public/classes", "", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var classes []models.InductionClass
	suite.Require().NoError(json.Unmarshal(env.Data, &classes))
	suite.Require().Len(classes, 1)
	suite.Equal(2024, classes[0].Year)
	suite.Equal(3, classes[0].InducteeCount)
}

func (suite *RoutesTestSuite) TestSessionEchoesSignedInAdmin() {
	token := suite.signIn()

	rec, env := suite.do(http.MethodGet, "/api/auth/session", token, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Contains(string(env.Data), "admin@example.com")
}

func (suite *RoutesTestSuite) TestPublicPageDefaults() {
	rec, env := suite.do(http.MethodGet, "/api/v1/public/pages/about", "", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Contains(string(env.Data), `"id":"about"`)
}

func (suite *RoutesTestSuite) TestUnknownRoute() {
	rec, env := suite.do(http.MethodGet, "/api/v1/public/nothing-here", "", nil)
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Require().NotNil(env.Error)
}

func (suite *RoutesTestSuite) TestHealthAndMetrics() {
	rec, _ := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, rec.Code)

	rec, _ = suite.do(http.MethodGet, "/metrics", "", nil)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `hall_of_fame_http_requests_total{code="200",method="GET",route="/health"} 1`)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
