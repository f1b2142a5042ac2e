package wallpaper

import (
	"bytes"
	"context"
	"errors"
	"image"
	stdlog "log"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/dixieflatline76/animewp/config"
	"github.com/dixieflatline76/animewp/pkg/provider"
	"github.com/dixieflatline76/animewp/util/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pipelineFixture struct {
	cfg      *config.Config
	os       *MockOS
	provider *MockProvider
	fetcher  *MockFetcher
	out      *bytes.Buffer
	pipeline *Pipeline
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	t.Helper()
	f := &pipelineFixture{
		cfg:      config.Default(t.TempDir()),
		os:       &MockOS{},
		provider: &MockProvider{},
		fetcher:  &MockFetcher{},
		out:      &bytes.Buffer{},
	}
	f.pipeline = NewPipeline(f.cfg, f.os, f.provider, f.fetcher, NewImageProcessor(), f.out)
	return f
}

func (f *pipelineFixture) expectScreen(w, h int) {
	f.os.On("GetDesktopDimension").Return(w, h, nil)
}

func decodedSize(t *testing.T, path string) image.Point {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	cfg, _, err := image.DecodeConfig(file)
	require.NoError(t, err)
	return image.Pt(cfg.Width, cfg.Height)
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRun_RandomSuccess(t *testing.T) {
	f := newPipelineFixture(t)
	f.expectScreen(400, 300)
	f.provider.On("FetchRandom", mock.Anything).
		Return(provider.Image{Path: "https://cdn.example/1.png", Extension: ".png"}, nil)
	f.fetcher.On("Download", mock.Anything, "https://cdn.example/1.png").
		Return(encodePNG(t, newTestImage(800, 600)), nil)

	dest := filepath.Join(f.cfg.WallpaperDir, "anime_wp.png")
	f.os.On("SetWallpaper", dest).Return(nil).Once()

	require.NoError(t, f.pipeline.Run(context.Background(), nil))

	assert.Equal(t, image.Pt(400, 300), decodedSize(t, dest))
	f.os.AssertNumberOfCalls(t, "SetWallpaper", 1)
	assert.Contains(t, f.out.String(), "Wallpaper will be saved as: "+dest)
	assert.Contains(t, f.out.String(), "Check out new wallpaper")
}

func TestRun_RandomTwiceOverwritesSameFile(t *testing.T) {
	f := newPipelineFixture(t)
	f.expectScreen(1920, 1080)
	f.provider.On("FetchRandom", mock.Anything).
		Return(provider.Image{Path: "https://cdn.example/a.jpg", Extension: ".jpg"}, nil)
	f.fetcher.On("Download", mock.Anything, mock.Anything).
		Return(encodePNG(t, newTestImage(64, 48)), nil)
	f.os.On("SetWallpaper", mock.Anything).Return(nil)

	require.NoError(t, f.pipeline.Run(context.Background(), nil))
	require.NoError(t, f.pipeline.Run(context.Background(), nil))

	assert.Equal(t, []string{"anime_wp.jpg"}, dirEntries(t, f.cfg.WallpaperDir))
}

func TestRun_RandomAPIErrorWritesNothing(t *testing.T) {
	f := newPipelineFixture(t)
	f.expectScreen(1920, 1080)
	f.provider.On("FetchRandom", mock.Anything).
		Return(provider.Image{}, &provider.APIError{StatusCode: http.StatusNotFound, Body: []byte(`{"detail":"nope"}`)})

	err := f.pipeline.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)

	var apiErr *provider.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	assert.Empty(t, dirEntries(t, f.cfg.WallpaperDir))
	f.fetcher.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
	f.os.AssertNotCalled(t, "SetWallpaper", mock.Anything)
	assert.NotContains(t, f.out.String(), "Check out new wallpaper")
}

func TestRun_DownloadFailureWritesNothing(t *testing.T) {
	f := newPipelineFixture(t)
	f.expectScreen(1920, 1080)
	f.provider.On("FetchRandom", mock.Anything).
		Return(provider.Image{Path: "https://cdn.example/1.png", Extension: ".png"}, nil)
	f.fetcher.On("Download", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	err := f.pipeline.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Empty(t, dirEntries(t, f.cfg.WallpaperDir))
	f.os.AssertNotCalled(t, "SetWallpaper", mock.Anything)
}

func TestRun_CorruptImageIsFatal(t *testing.T) {
	f := newPipelineFixture(t)
	f.expectScreen(1920, 1080)
	f.provider.On("FetchRandom", mock.Anything).
		Return(provider.Image{Path: "https://cdn.example/1.png", Extension: ".png"}, nil)
	f.fetcher.On("Download", mock.Anything, mock.Anything).Return([]byte("<html>not an image</html>"), nil)

	err := f.pipeline.Run(context.Background(), nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFetch)
	assert.Empty(t, dirEntries(t, f.cfg.WallpaperDir))
	f.os.AssertNotCalled(t, "SetWallpaper", mock.Anything)
}

func TestRun_LocalMissingExtension(t *testing.T) {
	f := newPipelineFixture(t)

	err := f.pipeline.Run(context.Background(), []string{"sunset"})
	assert.ErrorIs(t, err, ErrMissingExtension)

	_, statErr := os.Stat(f.cfg.WallpaperDir)
	assert.True(t, os.IsNotExist(statErr), "usage errors are reported before touching the filesystem")
	f.os.AssertNotCalled(t, "GetDesktopDimension")
	f.provider.AssertNotCalled(t, "FetchRandom", mock.Anything)
}

func TestRun_LocalMissingFile(t *testing.T) {
	f := newPipelineFixture(t)
	f.expectScreen(1920, 1080)

	err := f.pipeline.Run(context.Background(), []string{"missing.png"})
	assert.ErrorIs(t, err, ErrImageNotFound)

	f.provider.AssertNotCalled(t, "FetchRandom", mock.Anything)
	f.fetcher.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
	f.os.AssertNotCalled(t, "SetWallpaper", mock.Anything)
}

func TestRun_LocalResizedInPlace(t *testing.T) {
	f := newPipelineFixture(t)
	f.expectScreen(320, 240)
	require.NoError(t, os.MkdirAll(f.cfg.WallpaperDir, 0755))
	path := filepath.Join(f.cfg.WallpaperDir, "mine.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, newTestImage(640, 480)), 0644))
	f.os.On("SetWallpaper", path).Return(nil).Once()

	require.NoError(t, f.pipeline.Run(context.Background(), []string{"mine.png"}))

	assert.Equal(t, image.Pt(320, 240), decodedSize(t, path))
	assert.Contains(t, f.out.String(), "Using image on: "+path)
	f.provider.AssertNotCalled(t, "FetchRandom", mock.Anything)
	f.os.AssertExpectations(t)
}

func TestRun_LocalAlreadyFitsIsUntouched(t *testing.T) {
	f := newPipelineFixture(t)
	f.expectScreen(1920, 1080)
	require.NoError(t, os.MkdirAll(f.cfg.WallpaperDir, 0755))
	path := filepath.Join(f.cfg.WallpaperDir, "small.png")
	original := encodePNG(t, newTestImage(100, 50))
	require.NoError(t, os.WriteFile(path, original, 0644))
	f.os.On("SetWallpaper", path).Return(nil)

	require.NoError(t, f.pipeline.Run(context.Background(), []string{"small.png"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestRun_LocalNameWithDoubleDot(t *testing.T) {
	f := newPipelineFixture(t)
	f.expectScreen(1920, 1080)
	require.NoError(t, os.MkdirAll(f.cfg.WallpaperDir, 0755))
	path := filepath.Join(f.cfg.WallpaperDir, "sunset..v2.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, newTestImage(40, 30)), 0644))
	f.os.On("SetWallpaper", path).Return(nil).Once()

	require.NoError(t, f.pipeline.Run(context.Background(), []string{"sunset..v2.png"}))

	f.os.AssertExpectations(t)
	assert.Contains(t, f.out.String(), "Using image on: "+path)
}

func TestRun_VerboseLogsPickedImage(t *testing.T) {
	var logs bytes.Buffer
	stdlog.SetOutput(&logs)
	log.SetVerbose(true)
	t.Cleanup(func() {
		stdlog.SetOutput(os.Stderr)
		log.SetVerbose(false)
	})

	f := newPipelineFixture(t)
	f.expectScreen(1920, 1080)
	f.provider.On("FetchRandom", mock.Anything).Return(provider.Image{
		ID:        "8108",
		Path:      "https://cdn.example/8108.png",
		Extension: ".png",
		Width:     3840,
		Height:    2160,
		Provider:  "waifu.im",
	}, nil)
	f.fetcher.On("Download", mock.Anything, mock.Anything).Return(encodePNG(t, newTestImage(10, 10)), nil)
	f.os.On("SetWallpaper", mock.Anything).Return(nil)

	require.NoError(t, f.pipeline.Run(context.Background(), nil))
	assert.Contains(t, logs.String(), "waifu.im picked image 8108 (3840x2160): https://cdn.example/8108.png")
}

func TestRun_ScreenQueryFailure(t *testing.T) {
	f := newPipelineFixture(t)
	f.os.On("GetDesktopDimension").Return(0, 0, errors.New("no display"))

	err := f.pipeline.Run(context.Background(), nil)
	assert.Error(t, err)
	f.provider.AssertNotCalled(t, "FetchRandom", mock.Anything)
}

func TestRun_SetterOutcomesAreNotErrors(t *testing.T) {
	tests := []struct {
		name      string
		setterErr error
		wantOut   string
	}{
		{name: "Unsupported OS", setterErr: ErrOSNotSupported, wantOut: "OS not supported!"},
		{name: "Unsupported desktop", setterErr: ErrDesktopNotSupported, wantOut: "Linux desktop environment not supported!"},
		{name: "Command failure", setterErr: errors.New("gsettings: exit status 1"), wantOut: "Failed to set wallpaper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPipelineFixture(t)
			f.expectScreen(1920, 1080)
			f.provider.On("FetchRandom", mock.Anything).
				Return(provider.Image{Path: "https://cdn.example/1.png", Extension: ".png"}, nil)
			f.fetcher.On("Download", mock.Anything, mock.Anything).Return(encodePNG(t, newTestImage(10, 10)), nil)
			f.os.On("SetWallpaper", mock.Anything).Return(tt.setterErr)

			require.NoError(t, f.pipeline.Run(context.Background(), nil))
			assert.Contains(t, f.out.String(), tt.wantOut)
			assert.Contains(t, f.out.String(), "Check out new wallpaper")
		})
	}
}
