package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"hall-of-fame-backend/internal/api/handlers"
	"hall-of-fame-backend/internal/auth"
	"hall-of-fame-backend/internal/database/models"
	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/mocks"
	"hall-of-fame-backend/internal/service"
	"hall-of-fame-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const teamPhotoURL = "https://firebasestorage.googleapis.com/v0/b/hof/o/championship-photos%2Fteam.jpg?alt=media"

// ChampionshipPhotoHandlerTestSuite defines the test suite for ChampionshipPhotoHandler
type ChampionshipPhotoHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockChampionshipPhotoServiceInterface
	handler     *handlers.ChampionshipPhotoHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *ChampionshipPhotoHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockChampionshipPhotoServiceInterface(suite.ctrl)
	suite.handler = handlers.NewChampionshipPhotoHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	photos := suite.httpSuite.Router.Group("/api/v1/championship-photos", testutils.SignedIn(testutils.TestSession))
	{
		photos.GET("", suite.handler.List)
		photos.GET("/:id", suite.handler.Get)
		photos.POST("", suite.handler.Create)
		photos.PUT("/:id", suite.handler.Update)
		photos.POST("/:id/promote", suite.handler.Promote)
		photos.DELETE("/:id", suite.handler.Delete)
	}

	suite.httpSuite.Router.POST("/anonymous/championship-photos/:id/promote", suite.handler.Promote)
}

func (suite *ChampionshipPhotoHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ChampionshipPhotoHandlerTestSuite) TestList() {
	suite.T().Run("Championship required", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/championship-photos", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "championshipId is required")
	})

	suite.T().Run("Empty gallery", func(t *testing.T) {
		suite.mockService.EXPECT().List(gomock.Any(), "ch-1").Return([]models.ChampionshipPhoto{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/championship-photos?championshipId=ch-1", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"data":[],"error":null}`, recorder.Body.String())
	})
}

func (suite *ChampionshipPhotoHandlerTestSuite) TestCreate() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), testutils.TestSession, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *auth.Session, req *service.CreateChampionshipPhotoRequest) (*service.CreateResponse, error) {
			suite.Equal("ch-1", req.ChampionshipID)
			suite.Equal(teamPhotoURL, req.URL)
			suite.Equal("Team photo", req.Caption)
			return &service.CreateResponse{ID: "cp-1"}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/championship-photos", map[string]interface{}{
		"championshipId": "ch-1",
		"url":            teamPhotoURL,
		"caption":        "Team photo",
	})

	var created service.CreateResponse
	testutils.ParseData(suite.T(), recorder, http.StatusCreated, &created)
	suite.Equal("cp-1", created.ID)
}

func (suite *ChampionshipPhotoHandlerTestSuite) TestPromote() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Promote(gomock.Any(), testutils.TestSession, "cp-1").Return(&models.Championship{
			Record:   models.Record{ID: "ch-1"},
			Title:    "State Champions",
			PhotoURL: teamPhotoURL,
		}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/championship-photos/cp-1/promote", nil)

		var got models.Championship
		testutils.ParseData(t, recorder, http.StatusOK, &got)
		assert.Equal(t, "ch-1", got.ID)
		assert.Equal(t, teamPhotoURL, got.PhotoURL)
	})

	suite.T().Run("Missing photo", func(t *testing.T) {
		suite.mockService.EXPECT().Promote(gomock.Any(), gomock.Any(), "missing").
			Return(nil, apperrors.ErrChampionshipPhotoNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/championship-photos/missing/promote", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "championship photo not found")
	})

	suite.T().Run("Championship gone", func(t *testing.T) {
		suite.mockService.EXPECT().Promote(gomock.Any(), gomock.Any(), "cp-2").
			Return(nil, apperrors.ErrChampionshipNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/championship-photos/cp-2/promote", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "championship not found")
	})

	suite.T().Run("Not signed in", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/anonymous/championship-photos/cp-1/promote", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "no active session")
	})
}

func (suite *ChampionshipPhotoHandlerTestSuite) TestUpdateAndDelete() {
	suite.mockService.EXPECT().
		Update(gomock.Any(), gomock.Any(), "cp-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *auth.Session, id string, req *service.UpdateChampionshipPhotoRequest) (*models.ChampionshipPhoto, error) {
			suite.True(req.Order.Valid)
			return &models.ChampionshipPhoto{Record: models.Record{ID: id}, Order: req.Order.Value}, nil
		})
	suite.mockService.EXPECT().Delete(gomock.Any(), gomock.Any(), "cp-1").
		Return(&service.CascadeResult{Outcome: service.DeletePhotoOrphaned, OrphanedURLs: []string{teamPhotoURL}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/championship-photos/cp-1", `{"order":4}`)
	var updated models.ChampionshipPhoto
	testutils.ParseData(suite.T(), recorder, http.StatusOK, &updated)
	suite.Equal(4, updated.Order)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/championship-photos/cp-1", nil)
	var res service.CascadeResult
	testutils.ParseData(suite.T(), recorder, http.StatusOK, &res)
	suite.Equal(service.DeletePhotoOrphaned, res.Outcome)
	suite.Equal([]string{teamPhotoURL}, res.OrphanedURLs)
}

func TestChampionshipPhotoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ChampionshipPhotoHandlerTestSuite))
}
