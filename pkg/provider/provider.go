package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Image represents a generic wallpaper image.
type Image struct {
	ID        string
	Path      string // URL to download the image
	Extension string // File extension including the dot, as reported by the service (e.g. ".jpg")
	Width     int
	Height    int
	Provider  string // Source provider name
}

// ImageProvider defines the interface for a random image service.
type ImageProvider interface {
	// Name returns the provider name.
	Name() string
	// FetchRandom asks the service for one random image.
	// A non-200 response is returned as an *APIError.
	FetchRandom(ctx context.Context) (Image, error)
}

// ErrNoImages is returned when the service answers successfully with an empty result.
var ErrNoImages = errors.New("no images in response")

// APIError is the failure variant of a provider query: the service answered
// with a status other than 200. Body holds the raw response body.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, body)
}

// NormalizeExtension makes sure a service-reported extension is a bare ".ext"
// that is safe to append to a file name. "PNG" becomes ".png".
func NormalizeExtension(ext string) (string, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if len(ext) < 2 || strings.ContainsAny(ext[1:], `./\`) {
		return "", fmt.Errorf("invalid image extension %q", ext)
	}
	return ext, nil
}
