package constants

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// ImageContentTypeFromExt maps a file extension to its image MIME type,
// "" when the extension is not an image we know.
func ImageContentTypeFromExt(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	default:
		return ""
	}
}

func IsImageContentType(ct string) bool {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt, "image/")
}

// DetectContentType picks the declared multipart type when it is usable.
// Otherwise sniffed image types win over the extension, and the extension
// wins over any other sniffed type.
func DetectContentType(declared, filename string, data []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	sniffed := http.DetectContentType(data)
	if IsImageContentType(sniffed) {
		return sniffed
	}
	if ext := ImageContentTypeFromExt(filename); ext != "" {
		return ext
	}
	return sniffed
}
