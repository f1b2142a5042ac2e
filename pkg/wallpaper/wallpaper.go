package wallpaper

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/dixieflatline76/animewp/pkg/sysinfo"
)

// OS interface defines the host operations the pipeline needs: the screen
// query and the desktop wallpaper setter.
type OS interface {
	// GetDesktopDimension returns the primary display size in pixels.
	GetDesktopDimension() (int, int, error)
	// SetWallpaper sets the desktop background to the image at the absolute path.
	SetWallpaper(path string) error
	// Mechanism describes how SetWallpaper changes the background.
	Mechanism() string
}

// CommandRunner runs an external program to completion.
type CommandRunner interface {
	Run(name string, args ...string) error
}

var (
	// ErrOSNotSupported is returned by SetWallpaper on operating systems without a setter.
	ErrOSNotSupported = errors.New("operating system not supported")
	// ErrDesktopNotSupported is returned on Linux when the desktop environment is not recognized.
	ErrDesktopNotSupported = errors.New("linux desktop environment not supported")
)

// screenFunc queries the display size.
type screenFunc func() (int, int, error)

// desktop holds what every OS implementation shares.
type desktop struct {
	screen screenFunc
}

// GetDesktopDimension returns the desktop dimensions.
func (d desktop) GetDesktopDimension() (int, int, error) {
	return d.screen()
}

// execRunner runs commands with os/exec.
type execRunner struct{}

// Run executes the command and folds its output into the error on failure.
func (execRunner) Run(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w (output: %s)", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ExecRunner returns a CommandRunner backed by os/exec.
func ExecRunner() CommandRunner {
	return execRunner{}
}

// GetOS returns the OS implementation for the running host.
func GetOS() OS {
	return NewOS(runtime.GOOS, os.Getenv, ExecRunner())
}

// NewOS selects the OS implementation for goos. getenv is consulted by the
// Linux setter to detect the desktop environment; runner executes the
// external commands used by the macOS and Linux setters.
func NewOS(goos string, getenv func(string) string, runner CommandRunner) OS {
	base := desktop{screen: sysinfo.GetScreenDimensions}

	switch goos {
	case "windows":
		return &windowsOS{desktop: base, setDeskWallpaper: systemParametersInfo}
	case "darwin":
		return &macOS{desktop: base, runner: runner}
	case "linux":
		return &linuxOS{desktop: base, runner: runner, getenv: getenv}
	default:
		return &unsupportedOS{desktop: base, goos: goos}
	}
}
