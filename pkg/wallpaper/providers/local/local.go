package local

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG for DecodeConfig
	_ "image/png"  // register PNG for DecodeConfig
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dixieflatline76/animewp/config"
	"github.com/dixieflatline76/animewp/pkg/provider"
	"github.com/dixieflatline76/animewp/pkg/wallpaper"
	"github.com/dixieflatline76/animewp/util/log"
)

// Provider picks a random image that is already in the wallpaper folder.
type Provider struct {
	dir       string
	imageName string
	intn      func(n int) int
}

func init() {
	wallpaper.RegisterProvider(serviceName, func(cfg *config.Config, _ *http.Client) provider.ImageProvider {
		return NewProvider(cfg)
	})
}

// NewProvider creates a new local Provider for cfg.WallpaperDir.
func NewProvider(cfg *config.Config) *Provider {
	return &Provider{
		dir:       cfg.WallpaperDir,
		imageName: cfg.ImageName,
		intn:      rand.Intn,
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return serviceName
}

// FetchRandom returns a random JPEG or PNG from the wallpaper folder. The
// image's Path is a file URL the application's HTTP client resolves inside
// the same folder. Earlier downloads (anime_wp.*) are not candidates.
func (p *Provider) FetchRandom(ctx context.Context) (provider.Image, error) {
	if err := ctx.Err(); err != nil {
		return provider.Image{}, err
	}

	candidates, err := p.candidates()
	if err != nil {
		return provider.Image{}, err
	}
	if len(candidates) == 0 {
		return provider.Image{}, fmt.Errorf("%w in %s", provider.ErrNoImages, p.dir)
	}

	name := candidates[p.intn(len(candidates))]
	img := provider.Image{
		ID:        name,
		Path:      wallpaper.FileURL(name),
		Extension: strings.ToLower(filepath.Ext(name)),
		Provider:  serviceName,
	}

	img.Width, img.Height, err = dimensions(filepath.Join(p.dir, name))
	if err != nil {
		log.Debugf("reading size of %s: %v", name, err)
	}
	return img, nil
}

// candidates lists the image files in the folder, sorted by name.
func (p *Provider) candidates() ([]string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, fmt.Errorf("reading wallpaper folder: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		switch {
		case !entry.Type().IsRegular():
		case strings.HasPrefix(name, "."):
		case !imageExtensions[ext]:
		case strings.TrimSuffix(name, filepath.Ext(name)) == p.imageName:
		default:
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func dimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
