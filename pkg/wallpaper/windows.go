package wallpaper

// windowsOS implements the OS interface for Windows.
type windowsOS struct {
	desktop
	setDeskWallpaper func(path string) error
}

// SetWallpaper sets the wallpaper to the given image file path, persisting the
// change to the user profile and broadcasting it immediately.
func (w *windowsOS) SetWallpaper(imagePath string) error {
	return w.setDeskWallpaper(imagePath)
}

// Mechanism describes the Windows setter.
func (w *windowsOS) Mechanism() string {
	return "SystemParametersInfoW (SPI_SETDESKWALLPAPER)"
}
