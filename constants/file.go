package constants

import "strings"

// Format selects the text acquisition strategy for an upload.
const (
	TEXT  = "TEXT"  // embedded text layer (pdf, docx)
	IMAGE = "IMAGE" // raster image, needs OCR
)

// AllowedExtensions holds the default allowed file extensions for uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"bmp":  {},
	"tiff": {},
}

// MaxFileSize is the default upload size cap (16MB).
const MaxFileSize = 16 << 20

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a (possibly dotted) extension to its extraction format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf", "docx":
		return TEXT
	case "jpg", "jpeg", "png", "bmp", "tiff":
		return IMAGE
	default:
		return ""
	}
}

// IsAllowedFilename reports whether the filename carries an allowed extension.
func IsAllowedFilename(name string) bool {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return false
	}
	_, ok := AllowedExtensions[NormalizeExt(name[i:])]
	return ok
}
