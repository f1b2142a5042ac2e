package sysinfo

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// resolutionRegex matches strings like "3456 x 2234", "1920x1080" or "1710 x 1107 @ 60.00Hz"
	resolutionRegex = regexp.MustCompile(`(\d+)\s*x\s*(\d+)`)
)

// systemProfilerOutput represents the nested structure of system_profiler -json
type systemProfilerOutput struct {
	Displays []gpuInfo `json:"SPDisplaysDataType"`
}

type gpuInfo struct {
	NDRVs []displayInfo `json:"spdisplays_ndrvs"`
}

type displayInfo struct {
	Resolution string `json:"_spdisplays_pixels"` // Actual resolution (e.g. "3420 x 2214")
	Main       string `json:"spdisplays_main"`    // "spdisplays_yes"
}

func parseJSONResolution(data []byte) (int, int, error) {
	var profiler systemProfilerOutput
	if err := json.Unmarshal(data, &profiler); err != nil {
		return 0, 0, fmt.Errorf("decoding system_profiler JSON: %w", err)
	}

	for _, gpu := range profiler.Displays {
		for _, display := range gpu.NDRVs {
			if display.Main == "spdisplays_yes" {
				return parseResolutionString(display.Resolution)
			}
		}
	}

	// No main display flagged: take the first display of the first GPU
	if len(profiler.Displays) > 0 && len(profiler.Displays[0].NDRVs) > 0 {
		return parseResolutionString(profiler.Displays[0].NDRVs[0].Resolution)
	}

	return 0, 0, fmt.Errorf("no displays found in system_profiler output")
}

// parseXdpyinfo extracts the root window size from xdpyinfo output,
// e.g. "  dimensions:    1920x1080 pixels (508x285 millimeters)".
func parseXdpyinfo(out string) (int, int, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "dimensions:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 2 {
			return parseResolutionString(parts[1])
		}
	}
	return 0, 0, fmt.Errorf("failed to parse screen resolution")
}

// parseXrandr extracts the current mode of the first connected output,
// which xrandr marks with an asterisk.
func parseXrandr(out string) (int, int, error) {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "*") {
			fields := strings.Fields(line)
			if len(fields) > 0 {
				return parseResolutionString(fields[0])
			}
		}
	}
	return 0, 0, fmt.Errorf("no active mode in xrandr output")
}

func parseResolutionString(s string) (int, int, error) {
	matches := resolutionRegex.FindStringSubmatch(s)
	if len(matches) < 3 {
		return 0, 0, fmt.Errorf("failed to parse resolution from string: %s", s)
	}

	width, errW := strconv.Atoi(matches[1])
	height, errH := strconv.Atoi(matches[2])

	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("failed to convert dimensions: %v, %v", errW, errH)
	}

	return width, height, nil
}
