package wallpaper

import (
	"fmt"
	"strings"
)

// linuxOS implements the OS interface for Linux.
type linuxOS struct {
	desktop
	runner CommandRunner
	getenv func(string) string
}

// kdeScriptQuoter escapes a value for use inside a single-quoted plasma script string.
var kdeScriptQuoter = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// desktopEnvironment returns the value of XDG_CURRENT_DESKTOP, e.g. "ubuntu:GNOME".
func (l *linuxOS) desktopEnvironment() string {
	return l.getenv("XDG_CURRENT_DESKTOP")
}

// SetWallpaper sets the desktop wallpaper for GNOME or KDE Plasma.
func (l *linuxOS) SetWallpaper(imagePath string) error {
	desktopEnv := strings.ToUpper(l.desktopEnvironment())

	switch {
	case strings.Contains(desktopEnv, "GNOME"):
		return l.setWallpaperGNOME(imagePath)
	case strings.Contains(desktopEnv, "KDE"):
		return l.setWallpaperKDE(imagePath)
	default:
		return fmt.Errorf("%w: %q", ErrDesktopNotSupported, l.desktopEnvironment())
	}
}

// Mechanism describes the setter for the detected desktop environment.
func (l *linuxOS) Mechanism() string {
	desktopEnv := strings.ToUpper(l.desktopEnvironment())
	switch {
	case strings.Contains(desktopEnv, "GNOME"):
		return "gsettings (GNOME)"
	case strings.Contains(desktopEnv, "KDE"):
		return "qdbus plasmashell (KDE)"
	default:
		return "none"
	}
}

// setWallpaperGNOME sets the wallpaper for GNOME-based desktop environments.
func (l *linuxOS) setWallpaperGNOME(imagePath string) error {
	return l.runner.Run("gsettings", "set", "org.gnome.desktop.background", "picture-uri", "file://"+imagePath)
}

// setWallpaperKDE points every Plasma desktop at the image.
func (l *linuxOS) setWallpaperKDE(imagePath string) error {
	script := fmt.Sprintf(`var allDesktops = desktops(); for (i=0; i<allDesktops.length; i++) `+
		`{ d = allDesktops[i]; d.wallpaperPlugin = 'org.kde.image'; `+
		`d.currentConfigGroup = ['Wallpaper', 'org.kde.image', 'General']; `+
		`d.writeConfig('Image', 'file://%s') }`, kdeScriptQuoter.Replace(imagePath))

	return l.runner.Run("qdbus", "org.kde.plasmashell", "/PlasmaShell", "org.kde.PlasmaShell.evaluateScript", script)
}
