package supabase

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, apiKey, bucket string) (*StorageClient, error) {
	if supabaseURL == "" || apiKey == "" {
		return nil, fmt.Errorf("storage client needs a supabase url and key")
	}
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", apiKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// RestoredImagePath is the object path for a restored image of one request:
// restored/{request_id}/{random}.{ext}
func RestoredImagePath(requestID, extension string) string {
	ext := strings.TrimPrefix(extension, ".")
	if ext == "" {
		ext = "jpg"
	}
	return fmt.Sprintf("restored/%s/%s.%s", requestID, uuid.NewString(), ext)
}

// UploadRestoredImage stores data in the bucket and returns its public URL.
func (s *StorageClient) UploadRestoredImage(requestID string, data []byte, contentType, extension string) (string, error) {
	storagePath := RestoredImagePath(requestID, extension)

	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return PublicObjectURL(s.baseURL, s.bucket, storagePath)
}

func PublicObjectURL(baseURL, bucket, storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		strings.TrimSuffix(baseURL, "/"), bucket, storagePath)
}
