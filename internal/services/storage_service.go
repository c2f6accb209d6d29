package services

import (
	"errors"
	"fmt"

	"github.com/h2non/filetype"
	"github.com/sirupsen/logrus"
	"restoration-admin-backend/internal/models"
)

var (
	ErrRequestNotFound  = errors.New("request not found")
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrStorageDisabled  = errors.New("image storage is not configured")
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"image/heif": true,
}

// ImageUploader stores a restored image and returns its public URL.
// *supabase.StorageClient implements it.
type ImageUploader interface {
	UploadRestoredImage(requestID string, data []byte, contentType, extension string) (string, error)
}

// StoreError carries the store's error text after a failed mutation.
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

type StorageService struct {
	uploader ImageUploader
	store    *RequestStore
	log      logrus.FieldLogger
}

func NewStorageService(uploader ImageUploader, store *RequestStore, log logrus.FieldLogger) *StorageService {
	return &StorageService{
		uploader: uploader,
		store:    store,
		log:      log,
	}
}

// AttachRestoredUpload uploads a restored image file and attaches its URL to
// the request.
func (s *StorageService) AttachRestoredUpload(requestID string, data []byte) (models.RestorationRequest, error) {
	if s.uploader == nil {
		return models.RestorationRequest{}, ErrStorageDisabled
	}
	if _, ok := s.store.Get(requestID); !ok {
		return models.RestorationRequest{}, ErrRequestNotFound
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown || !allowedImageTypes[kind.MIME.Value] {
		return models.RestorationRequest{}, ErrUnsupportedImage
	}

	publicURL, err := s.uploader.UploadRestoredImage(requestID, data, kind.MIME.Value, kind.Extension)
	if err != nil {
		s.log.WithError(err).WithField("request_id", requestID).Error("failed to upload restored image")
		return models.RestorationRequest{}, fmt.Errorf("failed to upload restored image: %w", err)
	}

	return s.AttachRestoredURL(requestID, publicURL)
}

// AttachRestoredURL attaches an already hosted image.
func (s *StorageService) AttachRestoredURL(requestID, restoredURL string) (models.RestorationRequest, error) {
	if _, ok := s.store.Get(requestID); !ok {
		return models.RestorationRequest{}, ErrRequestNotFound
	}

	if !s.store.UpdateRestoredImage(requestID, restoredURL) {
		msg := "failed to update restored image"
		if e := s.store.Error(); e != nil {
			msg = *e
		}
		return models.RestorationRequest{}, &StoreError{Message: msg}
	}

	updated, _ := s.store.Get(requestID)
	return updated, nil
}
