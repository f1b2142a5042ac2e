package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/animewp/config"
	"github.com/dixieflatline76/animewp/pkg/provider"
	"github.com/dixieflatline76/animewp/util/log"
)

// ErrFetch marks failures talking to the remote image service.
var ErrFetch = errors.New("fetching wallpaper")

// Messages printed to the user.
const (
	msgOSNotSupported      = "OS not supported!"
	msgDesktopNotSupported = "Linux desktop environment not supported!"
	msgDone                = "Check out new wallpaper"
)

// Fetcher downloads the bytes behind an image URL.
type Fetcher interface {
	Download(ctx context.Context, imageURL string) ([]byte, error)
}

// Pipeline runs one wallpaper change from source selection to the OS setter.
type Pipeline struct {
	os        OS
	provider  provider.ImageProvider
	fetcher   Fetcher
	processor ImageProcessor
	files     *FileManager
	out       io.Writer
}

// NewPipeline wires a Pipeline for cfg. Progress messages are written to out.
func NewPipeline(cfg *config.Config, osImpl OS, imgProvider provider.ImageProvider, fetcher Fetcher, processor ImageProcessor, out io.Writer) *Pipeline {
	return &Pipeline{
		os:        osImpl,
		provider:  imgProvider,
		fetcher:   fetcher,
		processor: processor,
		files:     NewFileManager(cfg.WallpaperDir, cfg.ImageName),
		out:       out,
	}
}

// Run changes the wallpaper. args are the positional command line arguments.
//
// Usage errors (ErrMissingExtension, ErrInvalidName, ErrImageNotFound) and
// remote failures (wrapping ErrFetch) are returned before anything is written.
// Failing to apply the wallpaper is reported on out and is not an error.
func (p *Pipeline) Run(ctx context.Context, args []string) error {
	source, err := SelectSource(args)
	if err != nil {
		return err
	}

	if err := p.files.EnsureDirs(); err != nil {
		return err
	}
	log.Debugf("wallpaper folder is ready: %s", p.files.GetDownloadDir())

	width, height, err := p.os.GetDesktopDimension()
	if err != nil {
		return fmt.Errorf("getting desktop dimensions: %w", err)
	}
	log.Debugf("screen is %dx%d", width, height)

	var (
		imgBytes  []byte
		imagePath string
		local     bool
	)
	switch src := source.(type) {
	case LocalSource:
		imagePath, err = p.files.LocalPath(src.Name)
		if err != nil {
			return err
		}
		imgBytes, err = os.ReadFile(imagePath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", imagePath, err)
		}
		local = true
		fmt.Fprintf(p.out, "Using image on: %s\n", imagePath)

	case RandomSource:
		imagePath, imgBytes, err = p.fetchRandom(ctx)
		if err != nil {
			return err
		}
	}

	if err := p.process(ctx, imgBytes, imagePath, width, height, local); err != nil {
		return err
	}

	p.apply(imagePath)
	return nil
}

// fetchRandom asks the provider for an image and downloads it.
func (p *Pipeline) fetchRandom(ctx context.Context) (string, []byte, error) {
	img, err := p.provider.FetchRandom(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("%w from %s: %w", ErrFetch, p.provider.Name(), err)
	}
	log.Debugf("%s picked image %s (%dx%d): %s", img.Provider, img.ID, img.Width, img.Height, img.Path)

	imagePath, err := p.files.DownloadPath(img.Extension)
	if err != nil {
		return "", nil, err
	}
	fmt.Fprintf(p.out, "Wallpaper will be saved as: %s\n", imagePath)

	imgBytes, err := p.fetcher.Download(ctx, img.Path)
	if err != nil {
		return "", nil, fmt.Errorf("%w %s: %w", ErrFetch, img.Path, err)
	}
	return imagePath, imgBytes, nil
}

// process fits the image to the screen and writes it to imagePath. A local
// image that already fits is left untouched.
func (p *Pipeline) process(ctx context.Context, imgBytes []byte, imagePath string, width, height int, local bool) error {
	img, err := p.processor.DecodeImage(ctx, imgBytes)
	if err != nil {
		return err
	}

	fitted, err := p.processor.FitImage(ctx, img, width, height)
	if err != nil {
		return err
	}

	if local && fitted.Bounds().Size() == img.Bounds().Size() {
		log.Debugf("%s already fits %dx%d", imagePath, width, height)
		return nil
	}

	log.Debugf("resized %v to %v", img.Bounds().Size(), fitted.Bounds().Size())
	return p.processor.SaveImage(ctx, fitted, imagePath)
}

// apply hands the image to the OS setter. Every outcome ends with the
// completion message.
func (p *Pipeline) apply(imagePath string) {
	absPath, err := filepath.Abs(imagePath)
	if err != nil {
		absPath = imagePath
	}

	log.Debugf("setting wallpaper with %s", p.os.Mechanism())
	err = p.os.SetWallpaper(absPath)
	switch {
	case err == nil:
	case errors.Is(err, ErrOSNotSupported):
		fmt.Fprintln(p.out, msgOSNotSupported)
	case errors.Is(err, ErrDesktopNotSupported):
		fmt.Fprintln(p.out, msgDesktopNotSupported)
	default:
		fmt.Fprintf(p.out, "Failed to set wallpaper: %v\n", err)
		log.Printf("Failed to set wallpaper %s: %v", absPath, err)
	}

	fmt.Fprintln(p.out, msgDone)
}
