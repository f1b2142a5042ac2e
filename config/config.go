// Package config provides configuration management for animewp.
// A Config is resolved once at startup and passed to every component.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config struct to hold all configuration data
type Config struct {
	HomeDir      string `yaml:"-"`
	WallpaperDir string `yaml:"wallpaper_dir"`
	ImageName    string `yaml:"image_name"`
	Provider     string `yaml:"provider"`
	APIURL       string `yaml:"api_url"`
	APIVersion   string `yaml:"api_version"`
	Orientation  string `yaml:"orientation"`
	UserAgent    string `yaml:"user_agent"`

	// nekosapi.com provider
	NekosAPIURL  string   `yaml:"nekos_api_url"`
	NekosRatings []string `yaml:"nekos_ratings"`
}

// Default returns a configuration with default values rooted at homeDir.
func Default(homeDir string) *Config {
	return &Config{
		HomeDir:      homeDir,
		WallpaperDir: filepath.Join(homeDir, DefaultPicturesDir, DefaultWallpaperDir),
		ImageName:    DefaultImageName,
		Provider:     DefaultProvider,
		APIURL:       DefaultAPIURL,
		APIVersion:   DefaultAPIVersion,
		Orientation:  DefaultOrientation,
		UserAgent:    AppName + "/" + AppVersion,
		NekosAPIURL:  DefaultNekosAPIURL,
		NekosRatings: append([]string(nil), DefaultNekosRatings...),
	}
}

// GetPath returns the path to the user's config directory
func GetPath(homeDir string) string {
	return filepath.Join(homeDir, "."+strings.ToLower(AppName))
}

// GetFilename returns the path to the user's config file
func GetFilename(homeDir string) string {
	return filepath.Join(GetPath(homeDir), ConfigFileName)
}

// Load resolves the configuration for the current user. Values from the YAML
// file at filename override the defaults; an empty filename means the file in
// the user's config directory. A missing file is not an error.
func Load(filename string) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}
	return LoadFrom(homeDir, filename)
}

// LoadFrom is Load with an explicit home directory.
func LoadFrom(homeDir, filename string) (*Config, error) {
	cfg := Default(homeDir)
	if filename == "" {
		filename = GetFilename(homeDir)
	}

	if err := cfg.loadFromFile(filename); err != nil {
		return nil, err
	}

	if !filepath.IsAbs(cfg.WallpaperDir) {
		cfg.WallpaperDir = filepath.Join(homeDir, cfg.WallpaperDir)
	}
	cfg.WallpaperDir = filepath.Clean(cfg.WallpaperDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadFromFile overlays the configuration with the values in filename.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}
	return nil
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.WallpaperDir == "" {
		return fmt.Errorf("wallpaper_dir cannot be empty")
	}

	if c.ImageName == "" || c.ImageName == "." || c.ImageName == ".." || strings.ContainsAny(c.ImageName, `/\`) {
		return fmt.Errorf("invalid image_name: %q", c.ImageName)
	}

	if c.Provider == "" {
		return fmt.Errorf("provider cannot be empty")
	}

	if err := checkHTTPURL("api_url", c.APIURL); err != nil {
		return err
	}
	if err := checkHTTPURL("nekos_api_url", c.NekosAPIURL); err != nil {
		return err
	}

	if c.APIVersion == "" {
		return fmt.Errorf("api_version cannot be empty")
	}
	if c.Orientation == "" {
		return fmt.Errorf("orientation cannot be empty")
	}
	return nil
}

func checkHTTPURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be http or https, got %q", key, raw)
	}
	return nil
}
