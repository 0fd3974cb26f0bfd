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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PublicHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPublicServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *PublicHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPublicServiceInterface(suite.ctrl)
	handler := handlers.NewPublicHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	public := suite.httpSuite.Router.Group("/api/v1/public")
	{
		public.GET("/classes", handler.Classes)
		public.GET("/classes/:year", handler.Class)
		public.GET("/inductees", handler.Inductees)
		public.GET("/inductees/:id", handler.Inductee)
		public.GET("/inductees/class/:year", handler.InducteesByClass)
		public.GET("/videos", handler.Videos)
		public.GET("/championships", handler.Championships)
		public.GET("/sports", handler.Sports)
	}
}

func (suite *PublicHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PublicHandlerTestSuite) TestEmptyClassReturnsEmptyList() {
	suite.mockService.EXPECT().Class(gomock.Any(), 2030).Return(&service.ClassDetail{
		Year:      2030,
		Inductees: []models.Inductee{},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/public/classes/2030", nil)

	var detail service.ClassDetail
	testutils.ParseData(suite.T(), recorder, http.StatusOK, &detail)
	suite.Equal(2030, detail.Year)
	suite.NotNil(detail.Inductees)
	suite.Empty(detail.Inductees)
}

func (suite *PublicHandlerTestSuite) TestInducteeNotFound() {
	suite.mockService.EXPECT().Inductee(gomock.Any(), "missing").Return(nil, apperrors.ErrInducteeNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/public/inductees/missing", nil)
	suite.JSONEq(`{"data":null,"error":"inductee not found"}`, recorder.Body.String())
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *PublicHandlerTestSuite) TestTimelineFilterFromQuery() {
	suite.mockService.EXPECT().Inductees(gomock.Any(), service.TimelineFilter{
		ClassYear: 2023,
		Sport:     "Basketball",
		Query:     "rivera",
		Sort:      service.SortByGraduationYear,
		Desc:      true,
	}).Return([]models.Inductee{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/v1/public/inductees?year=2023&sport=Basketball&q=rivera&sort=graduationYear&dir=desc", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *PublicHandlerTestSuite) TestBadInput() {
	suite.httpSuite.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{Name: "class year not a number", Method: http.MethodGet, URL: "/api/v1/public/classes/abc", ExpectedStatus: http.StatusBadRequest, ExpectedError: "invalid year"},
		{Name: "class year out of range", Method: http.MethodGet, URL: "/api/v1/public/inductees/class/99", ExpectedStatus: http.StatusBadRequest, ExpectedError: "invalid year"},
		{Name: "unknown sort", Method: http.MethodGet, URL: "/api/v1/public/inductees?sort=height", ExpectedStatus: http.StatusBadRequest, ExpectedError: "invalid sort"},
		{Name: "video year", Method: http.MethodGet, URL: "/api/v1/public/videos?classYear=x", ExpectedStatus: http.StatusBadRequest, ExpectedError: "invalid year"},
	})
}

func (suite *PublicHandlerTestSuite) TestVideosCarryEmbedURL() {
	suite.mockService.EXPECT().Videos(gomock.Any(), 0).Return([]service.PublicVideo{{
		Video:    *testutils.NewVideoFactory().Create(),
		EmbedURL: "https://www.youtube.com/embed/dQw4w9WgXcQ",
	}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/public/videos", nil)

	var videos []service.PublicVideo
	testutils.ParseData(suite.T(), recorder, http.StatusOK, &videos)
	suite.Require().Len(videos, 1)
	suite.Equal("https://youtu.be/dQw4w9WgXcQ", videos[0].URL)
	suite.Equal("https://www.youtube.com/embed/dQw4w9WgXcQ", videos[0].EmbedURL)
}

func (suite *PublicHandlerTestSuite) TestSports() {
	suite.mockService.EXPECT().Sports(gomock.Any()).Return([]string{"Basketball", "Track & Field"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/public/sports", nil)

	var tags []string
	testutils.ParseData(suite.T(), recorder, http.StatusOK, &tags)
	assert.Equal(suite.T(), []string{"Basketball", "Track & Field"}, tags)
}

func TestPublicHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PublicHandlerTestSuite))
}
