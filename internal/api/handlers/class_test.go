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

// ClassHandlerTestSuite defines the test suite for ClassHandler
type ClassHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockClassServiceInterface
	handler     *handlers.ClassHandler
	httpSuite   *testutils.HTTPTestSuite
	factory     *testutils.ClassFactory
}

func (suite *ClassHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockClassServiceInterface(suite.ctrl)
	suite.handler = handlers.NewClassHandler(suite.mockService)
	suite.factory = testutils.NewClassFactory()

	suite.httpSuite = testutils.SetupHTTPTest()
	classes := suite.httpSuite.Router.Group("/api/v1/classes", testutils.SignedIn(testutils.TestSession))
	{
		classes.GET("", suite.handler.List)
		classes.GET("/:id", suite.handler.Get)
		classes.POST("", suite.handler.Create)
		classes.PUT("/:id", suite.handler.Update)
		classes.DELETE("/:id", suite.handler.Delete)
	}

	suite.httpSuite.Router.DELETE("/anonymous/classes/:id", suite.handler.Delete)
}

func (suite *ClassHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ClassHandlerTestSuite) TestCreate() {
	suite.T().Run("Duplicate year is flagged", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), testutils.TestSession, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *auth.Session, req *service.CreateClassRequest) (*service.CreateResponse, error) {
				assert.Equal(t, 2024, req.Year.Value)
				assert.Equal(t, 5, req.InducteeCount.Value)
				return &service.CreateResponse{ID: "class-2", DuplicateYear: true}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/classes",
			`{"year":"2024","inducteeCount":5,"ceremonyDate":"2024-10-19"}`)

		var created service.CreateResponse
		testutils.ParseData(t, recorder, http.StatusCreated, &created)
		assert.Equal(t, "class-2", created.ID)
		assert.True(t, created.DuplicateYear)
	})

	suite.T().Run("First class for a year omits the flag", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&service.CreateResponse{ID: "class-1"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/classes", map[string]interface{}{"year": 2019})
		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.JSONEq(t, `{"data":{"id":"class-1"},"error":null}`, recorder.Body.String())
	})

	suite.T().Run("Year out of range", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("year", "must be a four-digit year"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/classes", map[string]interface{}{"year": 24})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "year")
	})

	suite.T().Run("Fractional year", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/classes", `{"year":2024.5}`)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid request body")
	})
}

func (suite *ClassHandlerTestSuite) TestGetAndList() {
	class := suite.factory.WithYear(2019)

	suite.T().Run("Get", func(t *testing.T) {
		suite.mockService.EXPECT().Get(gomock.Any(), class.ID).Return(class, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/classes/"+class.ID, nil)

		var got models.InductionClass
		testutils.ParseData(t, recorder, http.StatusOK, &got)
		assert.Equal(t, 2019, got.Year)
	})

	suite.T().Run("List", func(t *testing.T) {
		suite.mockService.EXPECT().List(gomock.Any(), "").Return([]models.InductionClass{*class}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/classes", nil)

		var got []models.InductionClass
		testutils.ParseData(t, recorder, http.StatusOK, &got)
		assert.Len(t, got, 1)
	})
}

func (suite *ClassHandlerTestSuite) TestErrors() {
	suite.httpSuite.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:   "Get missing class",
			Method: http.MethodGet,
			URL:    "/api/v1/classes/missing",
			Setup: func() {
				suite.mockService.EXPECT().Get(gomock.Any(), "missing").Return(nil, apperrors.ErrClassNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedError:  "class not found",
		},
		{
			Name:   "Update missing class",
			Method: http.MethodPut,
			URL:    "/api/v1/classes/missing",
			Body:   map[string]interface{}{"description": "x"},
			Setup: func() {
				suite.mockService.EXPECT().Update(gomock.Any(), gomock.Any(), "missing", gomock.Any()).Return(nil, apperrors.ErrClassNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedError:  "class not found",
		},
		{
			Name:           "Update with malformed body",
			Method:         http.MethodPut,
			URL:            "/api/v1/classes/class-1",
			Body:           `{"year":`,
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "invalid request body",
		},
		{
			Name:           "Delete without a session",
			Method:         http.MethodDelete,
			URL:            "/anonymous/classes/class-1",
			ExpectedStatus: http.StatusUnauthorized,
			ExpectedError:  "no active session",
		},
	})
}

func (suite *ClassHandlerTestSuite) TestDeleteSucceeded() {
	suite.mockService.EXPECT().Delete(gomock.Any(), testutils.TestSession, "class-1").Return(&service.CascadeResult{
		Outcome: service.DeleteSucceeded,
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/classes/class-1", nil)

	var res service.CascadeResult
	testutils.ParseData(suite.T(), recorder, http.StatusOK, &res)
	suite.Equal(service.DeleteSucceeded, res.Outcome)
	suite.Empty(res.OrphanedURLs)
}

func TestClassHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClassHandlerTestSuite))
}
