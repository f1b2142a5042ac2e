package waifuim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dixieflatline76/animewp/config"
	"github.com/dixieflatline76/animewp/pkg/provider"
	"github.com/dixieflatline76/animewp/pkg/wallpaper"
	"github.com/dixieflatline76/animewp/util/log"
)

// Provider implements provider.ImageProvider for waifu.im.
type Provider struct {
	cfg        *config.Config
	httpClient *http.Client
}

func init() {
	wallpaper.RegisterProvider(serviceName, func(cfg *config.Config, client *http.Client) provider.ImageProvider {
		return NewProvider(cfg, client)
	})
}

// NewProvider creates a new waifu.im Provider.
func NewProvider(cfg *config.Config, client *http.Client) *Provider {
	return &Provider{
		cfg:        cfg,
		httpClient: client,
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return serviceName
}

// searchURL builds the search URL with the configured orientation.
func (p *Provider) searchURL() (string, error) {
	u, err := url.Parse(p.cfg.APIURL)
	if err != nil {
		return "", fmt.Errorf("invalid API URL: %w", err)
	}

	q := u.Query()
	q.Set(orientationParam, p.cfg.Orientation)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FetchRandom asks waifu.im for a random image and returns the first result.
func (p *Provider) FetchRandom(ctx context.Context) (provider.Image, error) {
	apiURL, err := p.searchURL()
	if err != nil {
		return provider.Image{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return provider.Image{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(acceptVersionHeader, p.cfg.APIVersion)

	log.Debugf("GET %s", apiURL)
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return provider.Image{}, fmt.Errorf("failed to fetch from waifu.im: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.Image{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return provider.Image{}, &provider.APIError{StatusCode: resp.StatusCode, Body: body}
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return provider.Image{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if len(response.Images) == 0 {
		return provider.Image{}, provider.ErrNoImages
	}

	item := response.Images[0]
	if item.URL == "" {
		return provider.Image{}, fmt.Errorf("image %d has no url", item.ImageID)
	}
	ext, err := provider.NormalizeExtension(item.Extension)
	if err != nil {
		return provider.Image{}, err
	}

	return provider.Image{
		ID:        strconv.Itoa(item.ImageID),
		Path:      item.URL,
		Extension: ext,
		Width:     item.Width,
		Height:    item.Height,
		Provider:  p.Name(),
	}, nil
}

// --- waifu.im JSON Structs ---

// searchResponse is the response from the waifu.im search endpoint.
type searchResponse struct {
	Images []searchImage `json:"images"`
}

// searchImage represents an image from the image service.
type searchImage struct {
	ImageID   int    `json:"image_id"`
	URL       string `json:"url"`
	Extension string `json:"extension"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}
