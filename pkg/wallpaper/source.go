package wallpaper

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/dixieflatline76/animewp/util/log"
)

// ErrMissingExtension is returned when the named local image has no file extension.
var ErrMissingExtension = errors.New("missing file extension")

// Source is where the wallpaper comes from: a LocalSource or a RandomSource.
type Source interface {
	isSource()
}

// LocalSource is an image the user already has in the wallpaper directory.
type LocalSource struct {
	Name string
}

// RandomSource is a random image from the configured provider.
type RandomSource struct{}

func (LocalSource) isSource()  {}
func (RandomSource) isSource() {}

// SelectSource picks the image source from the positional command line
// arguments. Exactly one argument names a local file; any other count asks
// for a random image. Only the name is checked here, the filesystem is not
// touched.
func SelectSource(args []string) (Source, error) {
	if len(args) != 1 {
		if len(args) > 1 {
			log.Printf("Ignoring %d arguments, fetching a random wallpaper", len(args))
		}
		return RandomSource{}, nil
	}

	name := args[0]
	if !hasExtension(name) {
		return nil, ErrMissingExtension
	}
	return LocalSource{Name: name}, nil
}

// hasExtension reports whether name has an extension. Leading dots belong to
// the base name, so ".png" alone has none.
func hasExtension(name string) bool {
	base := strings.TrimLeft(filepath.Base(name), ".")
	return filepath.Ext(base) != "" && filepath.Ext(base) != "."
}
