package fileutil

import (
	"fmt"
	"math"
	"strings"
)

const (
	FileTypePDF      = "pdf"
	FileTypeMarkdown = "md"
)

var allowedMimeTypes = map[string]bool{
	"application/pdf": true,
	"text/markdown":   true,
	"text/x-markdown": true,
	"text/plain":      true, // MD files are often sniffed as plain text
}

// IsAllowedUpload reports whether a file may be attached to a product.
// Markdown files frequently arrive with a generic MIME type, so the
// extension is checked as well.
func IsAllowedUpload(mimeType, filename string) bool {
	return allowedMimeTypes[mimeType] || strings.HasSuffix(strings.ToLower(filename), ".md")
}

// DetectFileType maps an upload to its stored file type. Anything that is
// not a PDF is treated as Markdown; callers must gate with IsAllowedUpload
// first.
func DetectFileType(mimeType string) string {
	if mimeType == "application/pdf" {
		return FileTypePDF
	}
	return FileTypeMarkdown
}

// IsMarkdown reports whether an upload should have its text content
// captured into the attachment record.
func IsMarkdown(mimeType, filename string) bool {
	return mimeType == "text/markdown" ||
		mimeType == "text/x-markdown" ||
		strings.HasSuffix(strings.ToLower(filename), ".md")
}

// FormatSize renders a byte count for display, e.g. "1.5 MB".
func FormatSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(i))
	s := fmt.Sprintf("%.2f", value)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + " " + units[i]
}
