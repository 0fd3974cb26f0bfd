package handlers_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"hall-of-fame-backend/internal/api/handlers"
	"hall-of-fame-backend/internal/mocks"
	"hall-of-fame-backend/internal/service"
	"hall-of-fame-backend/internal/storage"
	"hall-of-fame-backend/internal/testutils"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const hostedURL = "https://firebasestorage.googleapis.com/v0/b/hof.appspot.com/o/inductees%2F1_jane.png?alt=media&token=t"

func setupUploadRoutes(t *testing.T) (*mocks.MockUploadServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockUploadServiceInterface(ctrl)
	handler := handlers.NewUploadHandler(mockService)

	httpSuite := testutils.SetupHTTPTest()
	uploads := httpSuite.Router.Group("/api/v1/uploads", testutils.SignedIn(testutils.TestSession))
	uploads.POST("", handler.Upload)
	uploads.DELETE("", handler.Remove)
	return mockService, httpSuite
}

func multipartRequest(t *testing.T, url, folder, contentType string, data []byte) *http.Request {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("folder", folder))

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="jane.png"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadReturnsURL(t *testing.T) {
	mockService, httpSuite := setupUploadRoutes(t)
	mockService.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, req storage.UploadRequest, _ storage.ProgressFunc) (*storage.UploadResult, error) {
			assert.Equal(t, "inductees", req.Folder)
			assert.Equal(t, "jane.png", req.Filename)
			assert.Equal(t, "image/png", req.ContentType)
			assert.EqualValues(t, 4, req.Size)
			return &storage.UploadResult{URL: hostedURL, Path: "inductees/1_jane.png", Size: 4}, nil
		})

	recorder := httptest.NewRecorder()
	httpSuite.Router.ServeHTTP(recorder, multipartRequest(t, "/api/v1/uploads", "inductees", "image/png", []byte("\x89PNG")))

	var res storage.UploadResult
	testutils.ParseData(t, recorder, http.StatusCreated, &res)
	assert.Equal(t, hostedURL, res.URL)
}

func TestUploadRejectsNonImageBeforeReading(t *testing.T) {
	_, httpSuite := setupUploadRoutes(t)

	recorder := httptest.NewRecorder()
	httpSuite.Router.ServeHTTP(recorder, multipartRequest(t, "/api/v1/uploads", "inductees", "application/pdf", []byte("%PDF")))
	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "only image files are allowed")
}

func TestUploadStreamsProgressEvents(t *testing.T) {
	mockService, httpSuite := setupUploadRoutes(t)
	mockService.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ context.Context, _ storage.UploadRequest, progress storage.ProgressFunc) (*storage.UploadResult, error) {
			progress(50)
			progress(100)
			return &storage.UploadResult{URL: hostedURL}, nil
		})

	recorder := httptest.NewRecorder()
	httpSuite.Router.ServeHTTP(recorder, multipartRequest(t, "/api/v1/uploads?stream=true", "inductees", "image/png", []byte("\x89PNG")))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/event-stream")
	body := recorder.Body.String()
	assert.Contains(t, body, "event:progress")
	assert.Contains(t, body, `"percent":50`)
	assert.Contains(t, body, "event:done")
	assert.Less(t, strings.Index(body, `"percent":100`), strings.Index(body, "event:done"))
}

func TestRemoveUpload(t *testing.T) {
	mockService, httpSuite := setupUploadRoutes(t)
	mockService.EXPECT().Remove(gomock.Any(), hostedURL).Return(&service.RemoveResponse{URL: hostedURL, Removed: false}, nil)

	recorder := httpSuite.MakeRequest(http.MethodDelete, "/api/v1/uploads?url="+strings.ReplaceAll(strings.ReplaceAll(hostedURL, "%", "%25"), "&", "%26"), nil)

	var res service.RemoveResponse
	testutils.ParseData(t, recorder, http.StatusOK, &res)
	assert.False(t, res.Removed)
}

func TestMediaServesLocalObjects(t *testing.T) {
	fs := afero.NewMemMapFs()
	objects := storage.NewFSStore(fs)
	_, err := objects.Write(context.Background(), "inductees/1_jane.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	httpSuite := testutils.SetupHTTPTest()
	media := handlers.NewMediaHandler("hof.appspot.com", objects.HTTPFileSystem())
	httpSuite.Router.GET("/media/v0/b/:bucket/o/*object", media.Serve)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/media/v0/b/hof.appspot.com/o/inductees%2F1_jane.png?alt=media", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "png-bytes", recorder.Body.String())

	recorder = httpSuite.MakeRequest(http.MethodGet, "/media/v0/b/other-bucket/o/inductees%2F1_jane.png", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
