package wallpaper

import (
	"fmt"
	"strings"
)

// macOS implements the OS interface for macOS.
type macOS struct {
	desktop
	runner CommandRunner
}

// appleScriptQuoter escapes a value for use inside an AppleScript string literal.
var appleScriptQuoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// SetWallpaper sets the desktop wallpaper on macOS through the Finder.
func (m *macOS) SetWallpaper(imagePath string) error {
	script := fmt.Sprintf(`tell application "Finder" to set desktop picture to POSIX file "%s"`,
		appleScriptQuoter.Replace(imagePath))

	if err := m.runner.Run("osascript", "-e", script); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w", err)
	}
	return nil
}

// Mechanism describes the macOS setter.
func (m *macOS) Mechanism() string {
	return "osascript (Finder)"
}
