package config

import "strings"

// AppVersion is the version of the application, set at build time with -ldflags.
var AppVersion = "dev"

// AppName is the name of the application.
const AppName = "animewp"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// ConfigFileName is the name of the optional config file inside the app directory.
const ConfigFileName = "config.yaml"

// Defaults for the wallpaper store and the waifu.im image service.
const (
	// DefaultPicturesDir is the pictures folder under the home directory.
	DefaultPicturesDir = "Pictures"
	// DefaultWallpaperDir is the wallpaper folder under the pictures folder.
	DefaultWallpaperDir = "Wallpapers"
	// DefaultImageName is the base name for downloaded wallpapers.
	DefaultImageName = "anime_wp"
	// DefaultProvider is the name of the random image service.
	DefaultProvider = "waifu.im"
	// DefaultAPIURL is the waifu.im search endpoint.
	DefaultAPIURL = "https://api.waifu.im/search"
	// DefaultAPIVersion is sent in the Accept-Version header.
	DefaultAPIVersion = "v6"
	// DefaultOrientation is the image orientation requested from the API.
	DefaultOrientation = "LANDSCAPE"
	// DefaultNekosAPIURL is the nekosapi.com random image endpoint.
	DefaultNekosAPIURL = "https://api.nekosapi.com/v4/images/random"
)

// DefaultNekosRatings are the content ratings requested from nekosapi.com.
var DefaultNekosRatings = []string{"safe", "suggestive"}
