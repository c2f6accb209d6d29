package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"restoration-admin-backend/internal/models"
	"restoration-admin-backend/internal/services"
)

const (
	imageKindOriginal = "original"
	imageKindRestored = "restored"
)

type ImagesHandler struct {
	store          *services.RequestStore
	storageService *services.StorageService
	fetcher        *services.ImageFetcher
	maxUploadBytes int64
	log            logrus.FieldLogger
}

func NewImagesHandler(
	store *services.RequestStore,
	storageService *services.StorageService,
	fetcher *services.ImageFetcher,
	maxUploadBytes int64,
	log logrus.FieldLogger,
) *ImagesHandler {
	return &ImagesHandler{
		store:          store,
		storageService: storageService,
		fetcher:        fetcher,
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

// SetRestoredImage godoc
// @Summary     Attach a restored image URL
// @Description Puts the URL at index 1 of the request's image list, keeping the original at index 0
// @Tags        images
// @Accept      json
// @Produce     json
// @Param       request_id path string true "Request ID"
// @Param       request body models.RestoredImageRequest true "Restored image URL"
// @Success     200 {object} models.RequestResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /requests/{request_id}/restored-image [put]
func (h *ImagesHandler) SetRestoredImage(c *gin.Context) {
	var body models.RestoredImageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	updated, err := h.storageService.AttachRestoredURL(c.Param("request_id"), body.URL)
	if err != nil {
		h.writeAttachError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RequestResponse{Request: updated})
}

// UploadRestoredImage godoc
// @Summary     Upload a restored image
// @Description Stores the file in Supabase Storage and attaches its public URL to the request
// @Tags        images
// @Accept      multipart/form-data
// @Produce     json
// @Param       request_id path string true "Request ID"
// @Param       file formData file true "Restored image"
// @Success     200 {object} models.RequestResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /requests/{request_id}/restored-image/upload [post]
func (h *ImagesHandler) UploadRestoredImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "file is required",
			Message: err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open file", Message: err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file", Message: err.Error()})
		return
	}

	updated, err := h.storageService.AttachRestoredUpload(c.Param("request_id"), data)
	if err != nil {
		h.writeAttachError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RequestResponse{Request: updated})
}

// DownloadImage godoc
// @Summary     Download an image
// @Description Streams the original or restored image as an attachment
// @Tags        images
// @Produce     octet-stream
// @Param       request_id path string true "Request ID"
// @Param       kind path string true "original or restored"
// @Success     200 {file} file
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /requests/{request_id}/images/{kind} [get]
func (h *ImagesHandler) DownloadImage(c *gin.Context) {
	kind := c.Param("kind")
	if kind != imageKindOriginal && kind != imageKindRestored {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid image kind", Message: kind})
		return
	}

	req, ok := h.store.Get(c.Param("request_id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "request not found"})
		return
	}

	imageURL := req.OriginalImageURL
	if kind == imageKindRestored {
		imageURL = ""
		if req.RestoredImageURL != nil {
			imageURL = *req.RestoredImageURL
		}
	}
	if imageURL == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "image not available"})
		return
	}

	image, err := h.fetcher.Fetch(c.Request.Context(), imageURL)
	if err != nil {
		h.log.WithError(err).WithFields(logrus.Fields{"request_id": req.ID, "kind": kind}).Warn("image download failed")
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "failed to download image", Message: err.Error()})
		return
	}
	defer image.Body.Close()

	filename := services.DownloadFilename(kind, req.CustomerName, req.ID)
	c.DataFromReader(http.StatusOK, image.ContentLength, image.ContentType, image.Body, map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": filename}),
	})
}

func (h *ImagesHandler) writeAttachError(c *gin.Context, err error) {
	var storeErr *services.StoreError
	switch {
	case errors.Is(err, services.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "request not found"})
	case errors.Is(err, services.ErrUnsupportedImage):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unsupported image type"})
	case errors.Is(err, services.ErrStorageDisabled):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "image storage is not configured"})
	case errors.As(err, &storeErr):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "failed to update restored image", Message: storeErr.Message})
	default:
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "failed to upload restored image", Message: err.Error()})
	}
}
