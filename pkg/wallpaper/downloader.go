package wallpaper

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/dixieflatline76/animewp/pkg/provider"
	"github.com/dixieflatline76/animewp/util/log"
)

// maxImageBytes caps how much of an image response is read into memory.
const maxImageBytes = 64 << 20

// Downloader fetches image bytes over HTTP.
type Downloader struct {
	httpClient *http.Client
}

// NewDownloader creates a Downloader using client.
func NewDownloader(client *http.Client) *Downloader {
	return &Downloader{httpClient: client}
}

// Download returns the body of a GET request to imageURL. A status other than
// 200 is returned as a *provider.APIError.
func (d *Downloader) Download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	log.Debugf("GET %s", imageURL)
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &provider.APIError{StatusCode: resp.StatusCode, Body: body}
	}
	if len(body) > maxImageBytes {
		return nil, fmt.Errorf("image larger than %d bytes", maxImageBytes)
	}

	log.Debugf("downloaded %d bytes (%s)", len(body), resp.Header.Get("Content-Type"))
	return body, nil
}
