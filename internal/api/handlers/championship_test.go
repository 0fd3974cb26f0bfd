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

// ChampionshipHandlerTestSuite defines the test suite for ChampionshipHandler
type ChampionshipHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockChampionshipServiceInterface
	handler     *handlers.ChampionshipHandler
	httpSuite   *testutils.HTTPTestSuite
	factory     *testutils.ChampionshipFactory
}

func (suite *ChampionshipHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockChampionshipServiceInterface(suite.ctrl)
	suite.handler = handlers.NewChampionshipHandler(suite.mockService)
	suite.factory = testutils.NewChampionshipFactory()

	suite.httpSuite = testutils.SetupHTTPTest()
	championships := suite.httpSuite.Router.Group("/api/v1/championships", testutils.SignedIn(testutils.TestSession))
	{
		championships.GET("", suite.handler.List)
		championships.GET("/:id", suite.handler.Get)
		championships.POST("", suite.handler.Create)
		championships.PUT("/:id", suite.handler.Update)
		championships.DELETE("/:id", suite.handler.Delete)
	}

	suite.httpSuite.Router.PUT("/anonymous/championships/:id", suite.handler.Update)
}

func (suite *ChampionshipHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ChampionshipHandlerTestSuite) TestCreate() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), testutils.TestSession, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *auth.Session, req *service.CreateChampionshipRequest) (*service.CreateResponse, error) {
				assert.Equal(t, "State Champions", req.Title)
				assert.Equal(t, 2003, req.Year.Value)
				assert.Equal(t, "Volleyball", req.Sport)
				return &service.CreateResponse{ID: "ch-1"}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/championships",
			`{"title":"State Champions","year":"2003","sport":"Volleyball","coach":"Ellen Marsh"}`)

		var created service.CreateResponse
		testutils.ParseData(t, recorder, http.StatusCreated, &created)
		assert.Equal(t, "ch-1", created.ID)
	})

	suite.T().Run("Title required", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("title", "is required"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/championships", map[string]interface{}{"year": 2003})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "title")
	})
}

func (suite *ChampionshipHandlerTestSuite) TestGet() {
	championship := suite.factory.Create()

	suite.httpSuite.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:   "Found",
			Method: http.MethodGet,
			URL:    "/api/v1/championships/" + championship.ID,
			Setup: func() {
				suite.mockService.EXPECT().Get(gomock.Any(), championship.ID).Return(championship, nil)
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:   "Missing",
			Method: http.MethodGet,
			URL:    "/api/v1/championships/missing",
			Setup: func() {
				suite.mockService.EXPECT().Get(gomock.Any(), "missing").Return(nil, apperrors.ErrChampionshipNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedError:  "championship not found",
		},
	})
}

func (suite *ChampionshipHandlerTestSuite) TestUpdate() {
	suite.T().Run("Clearing the photo", func(t *testing.T) {
		championship := suite.factory.Create()
		suite.mockService.EXPECT().
			Update(gomock.Any(), testutils.TestSession, championship.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *auth.Session, _ string, req *service.UpdateChampionshipRequest) (*models.Championship, error) {
				if assert.NotNil(t, req.PhotoURL) {
					assert.Empty(t, *req.PhotoURL)
				}
				assert.Nil(t, req.Title)
				return championship, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/championships/"+championship.ID, `{"photoURL":""}`)

		var got models.Championship
		testutils.ParseData(t, recorder, http.StatusOK, &got)
		assert.Equal(t, championship.Title, got.Title)
	})

	suite.T().Run("Not signed in", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/anonymous/championships/ch-1", `{"title":"X"}`)
		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "no active session")
	})
}

func (suite *ChampionshipHandlerTestSuite) TestDeleteReportsOrphans() {
	orphan := "https://firebasestorage.googleapis.com/v0/b/hof/o/championships%2Fteam.jpg?alt=media"
	suite.mockService.EXPECT().Delete(gomock.Any(), testutils.TestSession, "ch-1").Return(&service.CascadeResult{
		Outcome:      service.DeletePhotoOrphaned,
		OrphanedURLs: []string{orphan},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/championships/ch-1", nil)

	var res service.CascadeResult
	testutils.ParseData(suite.T(), recorder, http.StatusOK, &res)
	suite.Equal(service.DeletePhotoOrphaned, res.Outcome)
	suite.Equal([]string{orphan}, res.OrphanedURLs)
}

func TestChampionshipHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ChampionshipHandlerTestSuite))
}
