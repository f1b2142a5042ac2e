package wallpaper

import (
	"context"

	"github.com/dixieflatline76/animewp/pkg/provider"
	"github.com/stretchr/testify/mock"
)

// MockOS is a mock implementation of the OS interface.
type MockOS struct {
	mock.Mock
}

func (m *MockOS) GetDesktopDimension() (int, int, error) {
	args := m.Called()
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockOS) SetWallpaper(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockOS) Mechanism() string {
	return "mock"
}

// MockRunner records external commands instead of running them.
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(name string, args ...string) error {
	return m.Called(name, args).Error(0)
}

// MockProvider is a mock implementation of provider.ImageProvider.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) FetchRandom(ctx context.Context) (provider.Image, error) {
	args := m.Called(ctx)
	return args.Get(0).(provider.Image), args.Error(1)
}

// MockFetcher is a mock implementation of the Fetcher interface.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Download(ctx context.Context, imageURL string) ([]byte, error) {
	args := m.Called(ctx, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
