package wallpaper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidName is returned for file names that would leave the wallpaper directory.
	ErrInvalidName = errors.New("invalid file name")
	// ErrImageNotFound is returned when a named image is not in the wallpaper directory.
	ErrImageNotFound = errors.New("image not found")
)

// FileManager handles all file system operations for wallpaper images.
// Every path it hands out lives directly inside rootDir.
type FileManager struct {
	rootDir   string
	imageName string
}

// NewFileManager creates a new FileManager for rootDir. imageName is the base
// name given to downloaded wallpapers.
func NewFileManager(rootDir, imageName string) *FileManager {
	return &FileManager{
		rootDir:   rootDir,
		imageName: imageName,
	}
}

// GetDownloadDir returns the wallpaper directory.
func (fm *FileManager) GetDownloadDir() string {
	return fm.rootDir
}

// EnsureDirs creates the wallpaper directory and any missing parents.
func (fm *FileManager) EnsureDirs() error {
	if err := os.MkdirAll(fm.rootDir, 0755); err != nil {
		return fmt.Errorf("failed to create wallpaper directory %s: %w", fm.rootDir, err)
	}
	return nil
}

// validateName ensures the name is a plain file name inside the wallpaper
// directory. Dots inside the name ("sunset..v2.png") are fine.
func (fm *FileManager) validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// LocalPath returns the path of a user supplied image in the wallpaper
// directory. It fails with ErrImageNotFound if the file does not exist.
func (fm *FileManager) LocalPath(name string) (string, error) {
	if err := fm.validateName(name); err != nil {
		return "", err
	}

	path := filepath.Join(fm.rootDir, name)
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrImageNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrImageNotFound, path)
	}
	return path, nil
}

// DownloadPath returns the destination for a downloaded image with the given
// extension (including the dot). The same extension always maps to the same
// file, so consecutive downloads replace each other.
func (fm *FileManager) DownloadPath(ext string) (string, error) {
	if err := fm.validateName(fm.imageName + ext); err != nil {
		return "", err
	}
	return filepath.Join(fm.rootDir, fm.imageName+ext), nil
}
