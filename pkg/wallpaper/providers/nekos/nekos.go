package nekos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/dixieflatline76/animewp/config"
	"github.com/dixieflatline76/animewp/pkg/provider"
	"github.com/dixieflatline76/animewp/pkg/wallpaper"
	"github.com/dixieflatline76/animewp/util/log"
)

// Provider implements provider.ImageProvider for nekosapi.com.
type Provider struct {
	cfg        *config.Config
	httpClient *http.Client
}

func init() {
	wallpaper.RegisterProvider(serviceName, func(cfg *config.Config, client *http.Client) provider.ImageProvider {
		return NewProvider(cfg, client)
	})
}

// NewProvider creates a new nekosapi.com Provider.
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

// randomURL builds the random image URL with the configured ratings.
func (p *Provider) randomURL() (string, error) {
	u, err := url.Parse(p.cfg.NekosAPIURL)
	if err != nil {
		return "", fmt.Errorf("invalid API URL: %w", err)
	}

	q := u.Query()
	q.Del(ratingParam)
	for _, rating := range p.cfg.NekosRatings {
		q.Add(ratingParam, rating)
	}
	q.Set(limitParam, "1")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FetchRandom asks nekosapi.com for one random image.
func (p *Provider) FetchRandom(ctx context.Context) (provider.Image, error) {
	apiURL, err := p.randomURL()
	if err != nil {
		return provider.Image{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return provider.Image{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debugf("GET %s", apiURL)
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return provider.Image{}, fmt.Errorf("failed to fetch from nekosapi.com: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.Image{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return provider.Image{}, &provider.APIError{StatusCode: resp.StatusCode, Body: body}
	}

	var images []randomImage
	if err := json.Unmarshal(body, &images); err != nil {
		return provider.Image{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if len(images) == 0 {
		return provider.Image{}, provider.ErrNoImages
	}

	item := images[0]
	if item.URL == "" {
		return provider.Image{}, fmt.Errorf("image %d has no url", item.ID)
	}
	ext, err := saveExtension(item.URL)
	if err != nil {
		return provider.Image{}, err
	}

	return provider.Image{
		ID:        strconv.Itoa(item.ID),
		Path:      item.URL,
		Extension: ext,
		Provider:  p.Name(),
	}, nil
}

// saveExtension derives the file extension from the image URL. URLs without
// one, and formats the encoder cannot write, are saved as PNG.
func saveExtension(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("invalid image url %q: %w", imageURL, err)
	}

	if path.Ext(u.Path) == "" {
		return fallbackExtension, nil
	}
	ext, err := provider.NormalizeExtension(path.Ext(u.Path))
	if err != nil {
		return "", err
	}
	if !writableExtensions[ext] {
		log.Debugf("%s images are saved as %s", ext, fallbackExtension)
		return fallbackExtension, nil
	}
	return ext, nil
}

// --- nekosapi.com JSON Structs ---

// randomImage is one element of the random image response.
type randomImage struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}
