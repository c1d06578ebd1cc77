package portfolio

import (
	"io/fs"
	"path"
	"strings"
)

// AssetImages resolves image references against the bundled public files.
// Remote URLs are assumed reachable; the browser handles their failures.
func AssetImages(public fs.FS) ImageResolver {
	return func(image string) ImageState {
		image = strings.TrimSpace(image)
		switch {
		case image == "":
			return ImageUnavailable
		case strings.HasPrefix(image, "http://"), strings.HasPrefix(image, "https://"), strings.HasPrefix(image, "//"):
			return ImageReady
		case public == nil:
			return ImageUnavailable
		}
		name := strings.TrimPrefix(path.Clean("/"+image), "/")
		if !fs.ValidPath(name) {
			return ImageUnavailable
		}
		info, err := fs.Stat(public, name)
		if err != nil || info.IsDir() {
			return ImageUnavailable
		}
		return ImageReady
	}
}
