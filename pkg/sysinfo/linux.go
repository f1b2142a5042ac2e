//go:build linux

package sysinfo

import (
	"fmt"
	"os/exec"

	"github.com/dixieflatline76/animewp/util/log"
)

// platformScreenDimensions returns the desktop dimensions on Linux.
func platformScreenDimensions() (int, int, error) {
	out, err := exec.Command("xrandr", "--current").Output()
	if err == nil {
		if w, h, perr := parseXrandr(string(out)); perr == nil {
			return w, h, nil
		}
	}
	log.Debugf("xrandr failed (%v), trying xdpyinfo", err)

	out, err = exec.Command("xdpyinfo").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get screen resolution: %w", err)
	}
	return parseXdpyinfo(string(out))
}
