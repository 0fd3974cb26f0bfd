package handlers_test

import (
	"context"
	"errors"
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

// InducteeHandlerTestSuite defines the test suite for InducteeHandler
type InducteeHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockInducteeServiceInterface
	handler     *handlers.InducteeHandler
	httpSuite   *testutils.HTTPTestSuite
	factory     *testutils.InducteeFactory
}

func (suite *InducteeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockInducteeServiceInterface(suite.ctrl)
	suite.handler = handlers.NewInducteeHandler(suite.mockService)
	suite.factory = testutils.NewInducteeFactory()

	suite.httpSuite = testutils.SetupHTTPTest()
	v1 := suite.httpSuite.Router.Group("/api/v1", testutils.SignedIn(testutils.TestSession))
	inductees := v1.Group("/inductees")
	{
		inductees.GET("", suite.handler.List)
		inductees.GET("/:id", suite.handler.Get)
		inductees.POST("", suite.handler.Create)
		inductees.PUT("/:id", suite.handler.Update)
		inductees.DELETE("/:id", suite.handler.Delete)
	}

	// same handler without a session
	suite.httpSuite.Router.POST("/anonymous/inductees", suite.handler.Create)
}

func (suite *InducteeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InducteeHandlerTestSuite) TestCreate() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), testutils.TestSession, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *auth.Session, req *service.CreateInducteeRequest) (*service.CreateResponse, error) {
				assert.Equal(t, "Jane Doe", req.Name)
				assert.Equal(t, 2024, req.ClassYear.Value)
				assert.True(t, req.GraduationYear.Set)
				assert.Nil(t, req.GraduationYear.Ptr(), "blank graduation year decodes as null")
				return &service.CreateResponse{ID: "ind-1"}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/inductees",
			`{"name":"Jane Doe","classYear":"2024","graduationYear":"","sport":"Track & Field"}`)

		var created service.CreateResponse
		testutils.ParseData(t, recorder, http.StatusCreated, &created)
		assert.Equal(t, "ind-1", created.ID)
	})

	suite.T().Run("Validation error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("name", "is required"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/inductees", map[string]interface{}{"classYear": 2024})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "name")
	})

	suite.T().Run("Malformed number", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/inductees", `{"name":"X","classYear":"twenty"}`)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid request body")
	})

	suite.T().Run("Not signed in", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/anonymous/inductees", `{"name":"X","classYear":2024}`)
		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "no active session")
	})
}

func (suite *InducteeHandlerTestSuite) TestGet() {
	suite.T().Run("Success", func(t *testing.T) {
		inductee := suite.factory.Create()
		suite.mockService.EXPECT().Get(gomock.Any(), inductee.ID).Return(inductee, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/inductees/"+inductee.ID, nil)

		var got models.Inductee
		testutils.ParseData(t, recorder, http.StatusOK, &got)
		assert.Equal(t, inductee.Name, got.Name)
		assert.Equal(t, inductee.Sports, got.Sports)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().Get(gomock.Any(), "missing").Return(nil, apperrors.ErrInducteeNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/inductees/missing", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "inductee not found")
	})
}

func (suite *InducteeHandlerTestSuite) TestListPassesSearch() {
	suite.mockService.EXPECT().List(gomock.Any(), "volley").Return([]models.Inductee{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/inductees?q=volley", nil)

	var got []models.Inductee
	testutils.ParseData(suite.T(), recorder, http.StatusOK, &got)
	suite.NotNil(got)
	suite.Empty(got)
	suite.JSONEq(`{"data":[],"error":null}`, recorder.Body.String())
}

func (suite *InducteeHandlerTestSuite) TestUpdate() {
	updated := suite.factory.WithName("Jane Smith")
	suite.mockService.EXPECT().
		Update(gomock.Any(), testutils.TestSession, updated.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *auth.Session, _ string, req *service.UpdateInducteeRequest) (*models.Inductee, error) {
			suite.Require().NotNil(req.Name)
			suite.Equal("Jane Smith", *req.Name)
			suite.Nil(req.Bio, "fields not sent stay nil")
			return updated, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/inductees/"+updated.ID, map[string]interface{}{"name": "Jane Smith"})

	var got models.Inductee
	testutils.ParseData(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal("Jane Smith", got.Name)
}

func (suite *InducteeHandlerTestSuite) TestDelete() {
	suite.T().Run("Photo orphaned", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(gomock.Any(), testutils.TestSession, "ind-1").Return(&service.CascadeResult{
			Outcome:      service.DeletePhotoOrphaned,
			OrphanedURLs: []string{"https://firebasestorage.googleapis.com/v0/b/hof/o/inductees%2Fa.png"},
		}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/inductees/ind-1", nil)

		var res service.CascadeResult
		testutils.ParseData(t, recorder, http.StatusOK, &res)
		assert.Equal(t, service.DeletePhotoOrphaned, res.Outcome)
		assert.Len(t, res.OrphanedURLs, 1)
	})

	suite.T().Run("Document delete failed", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(gomock.Any(), gomock.Any(), "ind-2").Return(&service.CascadeResult{
			Outcome: service.DeleteFailed,
		}, errors.New("failed to delete inductees/ind-2: unavailable"))

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/inductees/ind-2", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "unavailable")
	})
}

func TestInducteeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InducteeHandlerTestSuite))
}
