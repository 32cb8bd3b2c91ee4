package constants

import "strings"

// AllowedExtensions holds the default allowed file extensions for document uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

const (
	MIMEPDF = "application/pdf"
	MIMEPNG = "image/png"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsImageMIME reports whether the MIME type names a raster image.
func IsImageMIME(mime string) bool {
	return strings.HasPrefix(mime, "image/")
}

// SupportedMIME reports whether the pipeline can rasterize this MIME type.
func SupportedMIME(mime string) bool {
	return mime == MIMEPDF || IsImageMIME(mime)
}
