// Package filex contains small helpers for working with local files on the
// CLI side: reading an upload payload from disk and guessing its MIME type.
package filex

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// extTypes maps common document extensions to MIME types. Extension wins over
// content sniffing because office formats are all zip containers underneath.
var extTypes = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".rtf":  "application/rtf",
	".csv":  "text/csv",
	".json": "application/json",
	".xml":  "application/xml",
	".html": "text/html",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".zip":  "application/zip",
}

// DetectMimeType guesses the MIME type of a file from its name, falling back
// to content sniffing over the first bytes of data. Returns
// "application/octet-stream" when nothing better can be determined.
func DetectMimeType(name string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mt, ok := extTypes[ext]; ok {
		return mt
	}
	if len(data) > 0 {
		if mt := http.DetectContentType(data); mt != "" {
			// DetectContentType appends a charset suffix for text types.
			mt, _, _ = strings.Cut(mt, ";")
			return strings.TrimSpace(mt)
		}
	}
	return "application/octet-stream"
}

// ReadPayload loads a local file and returns its content, base name, and
// detected MIME type.
func ReadPayload(path string) (content []byte, name string, mimeType string, err error) {
	content, err = os.ReadFile(path)
	if err != nil {
		return nil, "", "", fmt.Errorf("read %s: %w", path, err)
	}
	name = filepath.Base(path)
	return content, name, DetectMimeType(name, content), nil
}
