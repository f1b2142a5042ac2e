package local

// serviceName is the name of the local folder provider
const serviceName = "local"

// imageExtensions are the file types picked from the wallpaper folder.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}
