package nekos

// serviceName is the name of the nekosapi.com image service
const serviceName = "nekos"

// Request parameters for the random image endpoint.
const (
	ratingParam = "rating" // ratingParam filters by content rating, repeatable
	limitParam  = "limit"  // limitParam caps the number of images returned
)

// fallbackExtension is used for images the encoder cannot write (nekosapi.com
// serves most originals as WebP).
const fallbackExtension = ".png"

// writableExtensions are the formats the image processor can encode.
var writableExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}
