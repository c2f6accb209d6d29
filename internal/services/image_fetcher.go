package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// FetchedImage is an open remote image. Callers must close Body.
type FetchedImage struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}

type ImageFetcher struct {
	httpClient *http.Client
}

func NewImageFetcher(timeout time.Duration) *ImageFetcher {
	return &ImageFetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (f *ImageFetcher) Fetch(ctx context.Context, imageURL string) (*FetchedImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &FetchedImage{
		Body:          resp.Body,
		ContentType:   contentType,
		ContentLength: resp.ContentLength,
	}, nil
}

// DownloadFilename names a downloaded image {kind}_{customer}_{id}.jpg.
// Path separators in the customer name are dropped.
func DownloadFilename(kind, customerName, id string) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return -1
		}
		return r
	}, customerName)
	return fmt.Sprintf("%s_%s_%s.jpg", kind, name, id)
}
