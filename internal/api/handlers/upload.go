package handlers

import (
	"net/http"
	"strings"

	"hall-of-fame-backend/internal/logger"
	"hall-of-fame-backend/internal/service"
	"hall-of-fame-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// UploadHandler handles image uploads for the admin forms
type UploadHandler struct {
	uploadService service.UploadServiceInterface
}

func NewUploadHandler(uploadService service.UploadServiceInterface) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadProgress is the payload of a "progress" server-sent event
type UploadProgress struct {
	Percent float64 `json:"percent" example:"42.5"`
}

func wantsEvents(c *gin.Context) bool {
	return c.Query("stream") == "true" || strings.Contains(c.GetHeader("Accept"), "text/event-stream")
}

// Upload handles POST /uploads
// @Summary Upload an image
// @Description Store one image (5MB max) under a folder and return its download URL.
// @Description With stream=true or Accept: text/event-stream the response is a stream of
// @Description "progress" events followed by one "done" or "error" event.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Param folder formData string true "Folder" Enums(inductees, championships, class-images, home-banner, wall-of-fame, photos, championship-photos)
// @Param stream query bool false "Stream progress events"
// @Success 201 {object} Envelope{data=storage.UploadResult} "Stored image"
// @Failure 400 {object} Envelope "Not an image, too large or unknown folder"
// @Security BearerAuth
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if _, ok := session(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "file is required")
		return
	}
	// Reject before reading the file when the declared type or size is wrong.
	contentType := fileHeader.Header.Get("Content-Type")
	if err := storage.Validate(contentType, fileHeader.Size); err != nil {
		respondError(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	req := storage.UploadRequest{
		Folder:      c.PostForm("folder"),
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		Body:        file,
	}

	if !wantsEvents(c) {
		res, err := h.uploadService.Upload(c, req, nil)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, res)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	res, err := h.uploadService.Upload(c, req, func(percent float64) {
		c.SSEvent("progress", UploadProgress{Percent: percent})
		c.Writer.Flush()
	})
	if err != nil {
		if statusFor(err) >= http.StatusInternalServerError {
			logger.WithContext(c).WithError(err).Error("Streamed upload failed")
		}
		c.SSEvent("error", gin.H{"error": err.Error()})
		c.Writer.Flush()
		return
	}
	c.SSEvent("done", res)
	c.Writer.Flush()
}

// Remove handles DELETE /uploads?url=
// @Summary Remove an uploaded image
// @Description Best effort: a storage failure is reported as removed=false
// @Tags uploads
// @Produce json
// @Param url query string true "Download URL"
// @Success 200 {object} Envelope{data=service.RemoveResponse} "Outcome"
// @Failure 400 {object} Envelope "URL outside the storage bucket"
// @Security BearerAuth
// @Router /uploads [delete]
func (h *UploadHandler) Remove(c *gin.Context) {
	if _, ok := session(c); !ok {
		return
	}

	rawURL := c.Query("url")
	if rawURL == "" {
		fail(c, http.StatusBadRequest, "url is required")
		return
	}

	res, err := h.uploadService.Remove(c, rawURL)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, res)
}

// MediaHandler serves objects of the local storage backend under the same URL
// shape as the hosted bucket.
type MediaHandler struct {
	bucket string
	files  http.FileSystem
}

func NewMediaHandler(bucket string, files http.FileSystem) *MediaHandler {
	return &MediaHandler{bucket: bucket, files: files}
}

// Serve handles GET /media/v0/b/:bucket/o/*object
func (h *MediaHandler) Serve(c *gin.Context) {
	object := strings.TrimPrefix(c.Param("object"), "/")
	if c.Param("bucket") != h.bucket || object == "" || strings.Contains(object, "..") {
		fail(c, http.StatusNotFound, "object not found")
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.FileFromFS(object, h.files)
}
