//go:build darwin

package sysinfo

import (
	"fmt"
	"os/exec"
)

// platformScreenDimensions returns the primary desktop dimensions on macOS.
func platformScreenDimensions() (int, int, error) {
	cmd := exec.Command("system_profiler", "SPDisplaysDataType", "-json")
	out, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to run system_profiler: %w", err)
	}

	return parseJSONResolution(out)
}
