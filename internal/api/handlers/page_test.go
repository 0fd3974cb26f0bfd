package handlers_test

import (
	"net/http"
	"testing"

	"hall-of-fame-backend/internal/api/handlers"
	"hall-of-fame-backend/internal/database/models"
	apperrors "hall-of-fame-backend/internal/errors"
	"hall-of-fame-backend/internal/mocks"
	"hall-of-fame-backend/internal/pagedit"
	"hall-of-fame-backend/internal/service"
	"hall-of-fame-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupPageRoutes(t *testing.T) (*mocks.MockPageServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockPageServiceInterface(ctrl)
	handler := handlers.NewPageHandler(mockService)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/v1/public/pages/:page", handler.Get)
	pages := httpSuite.Router.Group("/api/v1/pages", testutils.SignedIn(testutils.TestSession))
	{
		pages.PUT("/:page", handler.Save)
		pages.POST("/:page/sections/:section", handler.EditSection)
		pages.POST("/:page/preview", handler.Preview)
	}
	return mockService, httpSuite
}

func TestPageGetReturnsDefault(t *testing.T) {
	mockService, httpSuite := setupPageRoutes(t)
	def, _ := models.DefaultPage(models.PageWallOfFame)
	mockService.EXPECT().Get(gomock.Any(), models.PageWallOfFame).Return(def, nil)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/public/pages/wall-of-fame", nil)

	var page models.WallOfFame
	testutils.ParseData(t, recorder, http.StatusOK, &page)
	assert.Equal(t, "Wall of Fame", page.Title)
}

func TestPageUnknownIsRejected(t *testing.T) {
	_, httpSuite := setupPageRoutes(t)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/public/pages/contact", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "unknown page")
}

func TestPageSavePassesRawBody(t *testing.T) {
	mockService, httpSuite := setupPageRoutes(t)
	body := `{"title":"About","paragraphs":["one"]}`
	saved := &models.AboutPage{Title: "About", Paragraphs: []string{"one"}}
	mockService.EXPECT().Save(gomock.Any(), testutils.TestSession, models.PageAbout, []byte(body)).Return(saved, nil)

	recorder := httpSuite.MakeRequest(http.MethodPut, "/api/v1/pages/about", body)

	var page models.AboutPage
	testutils.ParseData(t, recorder, http.StatusOK, &page)
	assert.Equal(t, []string{"one"}, page.Paragraphs)
}

func TestPageEditSectionOutOfRange(t *testing.T) {
	mockService, httpSuite := setupPageRoutes(t)
	mockService.EXPECT().
		EditSection(gomock.Any(), testutils.TestSession, models.PageAbout, "faqs", pagedit.Edit{Action: pagedit.ActionRemove, Index: 7}).
		Return(nil, apperrors.ErrItemIndexRange)

	recorder := httpSuite.MakeRequest(http.MethodPost, "/api/v1/pages/about/sections/faqs", map[string]interface{}{"action": "remove", "index": 7})
	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "out of range")
}

func TestPagePreview(t *testing.T) {
	mockService, httpSuite := setupPageRoutes(t)
	mockService.EXPECT().Preview(gomock.Any(), models.PageHomeContent, gomock.Any()).
		Return(&service.PagePreview{Page: models.PageHomeContent, HTML: "<article></article>"}, nil)

	recorder := httpSuite.MakeRequest(http.MethodPost, "/api/v1/pages/home-content/preview", `{"welcome":"Hi"}`)

	var preview service.PagePreview
	testutils.ParseData(t, recorder, http.StatusOK, &preview)
	assert.Equal(t, "<article></article>", preview.HTML)
}
