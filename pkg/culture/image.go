package culture

import (
	"path"
	"strconv"
	"strings"
)

// ImageURL returns the absolute URL of a stored image under uploadsURL. When
// both width and height are positive the resized variant is addressed by
// inserting _w{width}_h{height} before the extension.
func ImageURL(uploadsURL, name string, width, height int) string {
	if uploadsURL != "" && !strings.HasSuffix(uploadsURL, "/") {
		uploadsURL += "/"
	}

	if width <= 0 || height <= 0 {
		return uploadsURL + name
	}

	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)

	return uploadsURL + base + "_w" + strconv.Itoa(width) + "_h" + strconv.Itoa(height) + ext
}
