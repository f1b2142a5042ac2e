//go:build !linux && !darwin && !windows

package sysinfo

import (
	"fmt"
	"runtime"
)

func platformScreenDimensions() (int, int, error) {
	return 0, 0, fmt.Errorf("screen query not supported on %s", runtime.GOOS)
}
