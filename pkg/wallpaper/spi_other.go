//go:build !windows

package wallpaper

// systemParametersInfo only exists on Windows.
func systemParametersInfo(imagePath string) error {
	return ErrOSNotSupported
}
