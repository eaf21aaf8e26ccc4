package constants

import (
	"path/filepath"
	"strings"
)

// IsImageExt reports whether the filename carries a browser-renderable
// image extension. Upload accepts only these.
func IsImageExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".avif":
		return true
	}
	return false
}
