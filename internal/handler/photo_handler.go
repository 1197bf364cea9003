package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sitelog/sitelog-api/internal/service"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
	"github.com/sitelog/sitelog-api/pkg/response"
)

// blobStorage is the slice of the blob store handlers need for uploads
// and downloads.
type blobStorage interface {
	SaveStream(suggestedName string, r io.Reader) (string, error)
	Path(locator string) string
}

// PhotoHandler handles photo endpoints, including file upload and
// download.
type PhotoHandler struct {
	service *service.PhotoService
	blobs   blobStorage
	maxSize int64
}

// NewPhotoHandler constructs a photo handler.
func NewPhotoHandler(svc *service.PhotoService, blobs blobStorage, maxSize int64) *PhotoHandler {
	return &PhotoHandler{service: svc, blobs: blobs, maxSize: maxSize}
}

// List godoc
// @Summary List photos
// @Tags Photos
// @Produce json
// @Param projectId query string false "Filter by project"
// @Success 200 {object} response.Envelope
// @Router /photos [get]
func (h *PhotoHandler) List(c *gin.Context) {
	photos, err := h.service.ListByProject(c.Request.Context(), c.Query("projectId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, photos)
}

// Get godoc
// @Summary Get photo metadata by id
// @Tags Photos
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} response.Envelope
// @Router /photos/{id} [get]
func (h *PhotoHandler) Get(c *gin.Context) {
	photo, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, photo)
}

// Upload godoc
// @Summary Upload a photo
// @Tags Photos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param projectId formData string true "Owning project"
// @Param description formData string false "Description"
// @Param latitude formData number false "Latitude"
// @Param longitude formData number false "Longitude"
// @Param takenAt formData string false "Capture time (RFC3339)"
// @Success 201 {object} response.Envelope
// @Router /photos [post]
func (h *PhotoHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "file is required"))
		return
	}
	if h.maxSize > 0 && fileHeader.Size > h.maxSize {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("file exceeds %d bytes", h.maxSize)))
		return
	}

	req := service.CreatePhotoRequest{
		ProjectID:   c.PostForm("projectId"),
		Description: c.PostForm("description"),
	}
	lat, lok, err := parseOptionalFloat(c.PostForm("latitude"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "latitude must be a number"))
		return
	}
	lng, gok, err := parseOptionalFloat(c.PostForm("longitude"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "longitude must be a number"))
		return
	}
	if lok {
		req.Latitude = &lat
	}
	if gok {
		req.Longitude = &lng
	}
	if raw := c.PostForm("takenAt"); raw != "" {
		takenAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "takenAt must be RFC3339"))
			return
		}
		req.TakenAt = &takenAt
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to read upload"))
		return
	}
	defer file.Close()

	locator, err := h.blobs.SaveStream(fileHeader.Filename, file)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to store file"))
		return
	}
	req.Filename = locator

	photo, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, photo)
}

// Download godoc
// @Summary Download the photo file
// @Tags Photos
// @Produce octet-stream
// @Param id path string true "Photo ID"
// @Success 200 {file} binary
// @Router /photos/{id}/file [get]
func (h *PhotoHandler) Download(c *gin.Context) {
	photo, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.FileAttachment(h.blobs.Path(photo.Filename), photo.Filename)
}

// Update godoc
// @Summary Update photo metadata
// @Tags Photos
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Param payload body service.UpdatePhotoRequest true "Photo payload"
// @Success 200 {object} response.Envelope
// @Router /photos/{id} [put]
func (h *PhotoHandler) Update(c *gin.Context) {
	var req service.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	photo, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, photo)
}

// Delete godoc
// @Summary Delete photo
// @Tags Photos
// @Param id path string true "Photo ID"
// @Success 204
// @Router /photos/{id} [delete]
func (h *PhotoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func parseOptionalFloat(raw string) (float64, bool, error) {
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}
