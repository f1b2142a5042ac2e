package wallpaper

import "fmt"

// unsupportedOS is used on hosts without a known wallpaper mechanism.
type unsupportedOS struct {
	desktop
	goos string
}

// SetWallpaper never touches the system.
func (u *unsupportedOS) SetWallpaper(string) error {
	return fmt.Errorf("%w: %s", ErrOSNotSupported, u.goos)
}

// Mechanism describes the (absent) setter.
func (u *unsupportedOS) Mechanism() string {
	return "none"
}
