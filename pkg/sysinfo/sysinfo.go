// Package sysinfo queries the host for display information.
package sysinfo

import (
	"fmt"

	"github.com/dixieflatline76/animewp/util/log"
	"github.com/kbinani/screenshot"
)

// GetScreenDimensions returns the primary display width and height in pixels.
// It asks the display server directly and falls back to the platform's
// command line tools when no active display can be enumerated.
func GetScreenDimensions() (int, int, error) {
	if screenshot.NumActiveDisplays() > 0 {
		bounds := screenshot.GetDisplayBounds(0)
		if bounds.Dx() > 0 && bounds.Dy() > 0 {
			return bounds.Dx(), bounds.Dy(), nil
		}
	}

	log.Debug("no active display enumerated, falling back to platform query")
	width, height, err := platformScreenDimensions()
	if err != nil {
		return 0, 0, err
	}
	return checkDimensions(width, height)
}

func checkDimensions(width, height int) (int, int, error) {
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid screen dimensions %dx%d", width, height)
	}
	return width, height, nil
}
