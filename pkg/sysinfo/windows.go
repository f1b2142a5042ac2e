//go:build windows

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	getSystemMetrics = user32.NewProc("GetSystemMetrics")
)

const (
	smCXScreen = 0
	smCYScreen = 1
)

// platformScreenDimensions returns the primary desktop dimension (width and height) in pixels.
func platformScreenDimensions() (int, int, error) {
	if err := getSystemMetrics.Find(); err != nil {
		return 0, 0, fmt.Errorf("loading GetSystemMetrics: %w", err)
	}

	// GetSystemMetrics does not set the last error; a zero result is the failure signal.
	width, _, _ := getSystemMetrics.Call(uintptr(smCXScreen))
	height, _, _ := getSystemMetrics.Call(uintptr(smCYScreen))
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("GetSystemMetrics returned %dx%d", width, height)
	}

	return int(width), int(height), nil
}
