package fileutil

import "testing"

func TestIsAllowedUpload(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		filename string
		want     bool
	}{
		{"pdf", "application/pdf", "guide.pdf", true},
		{"markdown", "text/markdown", "readme.md", true},
		{"x-markdown", "text/x-markdown", "readme.md", true},
		{"plain text", "text/plain", "notes.txt", true},
		{"md extension with generic mime", "application/octet-stream", "README.MD", true},
		{"image rejected", "image/png", "shot.png", false},
		{"executable rejected", "application/x-msdownload", "tool.exe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAllowedUpload(tt.mimeType, tt.filename); got != tt.want {
				t.Errorf("IsAllowedUpload(%q, %q) = %v, want %v", tt.mimeType, tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectFileType(t *testing.T) {
	if got := DetectFileType("application/pdf"); got != FileTypePDF {
		t.Errorf("DetectFileType(pdf) = %q", got)
	}
	if got := DetectFileType("text/markdown"); got != FileTypeMarkdown {
		t.Errorf("DetectFileType(markdown) = %q", got)
	}
	if got := DetectFileType("text/plain"); got != FileTypeMarkdown {
		t.Errorf("DetectFileType(plain) = %q", got)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{10 * 1024 * 1024, "10 MB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
