package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/dixieflatline76/animewp/config"
	"github.com/dixieflatline76/animewp/pkg/wallpaper"
	"github.com/jedib0t/go-pretty/v6/table"
)

// printInfo renders the resolved settings as a table.
func printInfo(w io.Writer, cfg *config.Config, configFile string, osImpl wallpaper.OS) {
	var screen string
	if width, height, err := osImpl.GetDesktopDimension(); err == nil {
		screen = fmt.Sprintf("%dx%d", width, height)
	} else {
		screen = fmt.Sprintf("unknown (%v)", err)
	}

	if configFile == "" {
		configFile = config.GetFilename(cfg.HomeDir)
	}

	desktopEnv := os.Getenv("XDG_CURRENT_DESKTOP")
	if desktopEnv == "" {
		desktopEnv = "-"
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("%s %s", config.AppName, config.AppVersion)
	t.AppendHeader(table.Row{"Setting", "Value"})
	t.AppendRows([]table.Row{
		{"OS", runtime.GOOS + "/" + runtime.GOARCH},
		{"Desktop", desktopEnv},
		{"Setter", osImpl.Mechanism()},
		{"Screen", screen},
		{"Wallpaper folder", cfg.WallpaperDir},
		{"Download name", cfg.ImageName + "<ext>"},
		{"Provider", fmt.Sprintf("%s (available: %s)", cfg.Provider, strings.Join(wallpaper.GetRegisteredProviders(), ", "))},
		{"API", fmt.Sprintf("%s (Accept-Version: %s, orientation=%s)", cfg.APIURL, cfg.APIVersion, cfg.Orientation)},
		{"Config file", configFile},
	})
	t.Render()
}
