package handlers_test

import (
	"net/http"
	"testing"

	"hall-of-fame-backend/internal/api/handlers"
	"hall-of-fame-backend/internal/database/models"
	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/mocks"
	"hall-of-fame-backend/internal/service"
	"hall-of-fame-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// VideoHandlerTestSuite defines the test suite for VideoHandler
type VideoHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockVideoServiceInterface
	handler     *handlers.VideoHandler
	httpSuite   *testutils.HTTPTestSuite
	factory     *testutils.VideoFactory
}

func (suite *VideoHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockVideoServiceInterface(suite.ctrl)
	suite.handler = handlers.NewVideoHandler(suite.mockService)
	suite.factory = testutils.NewVideoFactory()

	suite.httpSuite = testutils.SetupHTTPTest()
	videos := suite.httpSuite.Router.Group("/api/v1/videos", testutils.SignedIn(testutils.TestSession))
	{
		videos.GET("", suite.handler.List)
		videos.GET("/:id", suite.handler.Get)
		videos.POST("", suite.handler.Create)
		videos.PUT("/:id", suite.handler.Update)
		videos.DELETE("/:id", suite.handler.Delete)
	}
}

func (suite *VideoHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VideoHandlerTestSuite) TestCreate() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), testutils.TestSession, &service.CreateVideoRequest{
			ClassYear: models.NewFlexInt(2024),
			Title:     "2024 Induction Ceremony",
			URL:       "https://youtu.be/dQw4w9WgXcQ",
		}).
		Return(&service.CreateResponse{ID: "vid-1"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/videos",
		`{"classYear":2024,"title":"2024 Induction Ceremony","url":"https://youtu.be/dQw4w9WgXcQ"}`)

	var created service.CreateResponse
	testutils.ParseData(suite.T(), recorder, http.StatusCreated, &created)
	suite.Equal("vid-1", created.ID)
}

func (suite *VideoHandlerTestSuite) TestGetAndList() {
	video := suite.factory.Create()
	suite.mockService.EXPECT().Get(gomock.Any(), video.ID).Return(video, nil)
	suite.mockService.EXPECT().List(gomock.Any(), "ceremony").Return([]models.Video{*video}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/videos/"+video.ID, nil)
	var got models.Video
	testutils.ParseData(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(video.URL, got.URL)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/videos?q=ceremony", nil)
	var list []models.Video
	testutils.ParseData(suite.T(), recorder, http.StatusOK, &list)
	suite.Len(list, 1)
}

func (suite *VideoHandlerTestSuite) TestErrors() {
	suite.httpSuite.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:   "Title required",
			Method: http.MethodPost,
			URL:    "/api/v1/videos",
			Body:   map[string]interface{}{"url": "https://youtu.be/x"},
			Setup: func() {
				suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, apperrors.NewValidationError("title", "is required"))
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "title",
		},
		{
			Name:   "Update missing video",
			Method: http.MethodPut,
			URL:    "/api/v1/videos/missing",
			Body:   map[string]interface{}{"title": "New"},
			Setup: func() {
				suite.mockService.EXPECT().Update(gomock.Any(), gomock.Any(), "missing", gomock.Any()).
					Return(nil, apperrors.ErrVideoNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedError:  "video not found",
		},
		{
			Name:   "Delete missing video",
			Method: http.MethodDelete,
			URL:    "/api/v1/videos/missing",
			Setup: func() {
				suite.mockService.EXPECT().Delete(gomock.Any(), gomock.Any(), "missing").
					Return(nil, apperrors.ErrVideoNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedError:  "video not found",
		},
	})
}

func (suite *VideoHandlerTestSuite) TestDelete() {
	suite.mockService.EXPECT().Delete(gomock.Any(), testutils.TestSession, "vid-1").
		Return(&service.CascadeResult{Outcome: service.DeleteSucceeded}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/videos/vid-1", nil)

	var res service.CascadeResult
	testutils.ParseData(suite.T(), recorder, http.StatusOK, &res)
	suite.Equal(service.DeleteSucceeded, res.Outcome)
}

func TestVideoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VideoHandlerTestSuite))
}
