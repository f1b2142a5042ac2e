package wallpaper

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // register the WebP decoder
)

// ImageProcessor interface defines the image processing operations.
type ImageProcessor interface {
	DecodeImage(ctx context.Context, imgBytes []byte) (image.Image, error)
	FitImage(ctx context.Context, img image.Image, maxWidth, maxHeight int) (image.Image, error)
	SaveImage(ctx context.Context, img image.Image, path string) error
}

// imagingProcessor implements ImageProcessor with disintegration/imaging.
type imagingProcessor struct {
	resampler   imaging.ResampleFilter
	jpegQuality int
}

// NewImageProcessor returns an ImageProcessor using Lanczos resampling.
func NewImageProcessor() ImageProcessor {
	return &imagingProcessor{
		resampler:   imaging.Lanczos,
		jpegQuality: 95,
	}
}

// DecodeImage decodes an image from a byte slice, applying EXIF orientation.
func (c *imagingProcessor) DecodeImage(ctx context.Context, imgBytes []byte) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(imgBytes), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// FitImage scales img down so that it fits within maxWidth x maxHeight while
// keeping its aspect ratio. Images that already fit are returned unchanged.
func (c *imagingProcessor) FitImage(ctx context.Context, img image.Image, maxWidth, maxHeight int) (image.Image, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("invalid bounding box %dx%d", maxWidth, maxHeight)
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() <= maxWidth && b.Dy() <= maxHeight {
		return img, nil
	}
	return imaging.Fit(img, maxWidth, maxHeight, c.resampler), nil
}

// SaveImage encodes img in the format implied by the extension of path. The
// image is written to a temporary file in the same directory and renamed over
// path, so a failed run never leaves a truncated wallpaper behind.
func (c *imagingProcessor) SaveImage(ctx context.Context, img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("choosing output format for %s: %w", path, err)
	}
	if err := checkContext(ctx); err != nil {
		return err
	}

	tmpPath := filepath.Join(filepath.Dir(path), "."+uuid.NewString()+".tmp")
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmpPath, err)
	}

	err = imaging.Encode(f, img, format, imaging.JPEGQuality(c.jpegQuality))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("encoding image: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
