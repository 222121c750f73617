// Package intake validates and captures the user-supplied plan file.
// It owns no network logic; type rejection beyond the picker's accept
// list is the analysis service's job.
package intake

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AcceptedExtensions is the picker-level filter for plan files.
// Order matters only for display.
var AcceptedExtensions = []string{".pdf", ".png", ".jpg", ".jpeg"}

// File is the currently selected plan file. Exactly one may exist at a
// time; a new selection replaces it wholesale.
type File struct {
	Path string
	Name string
	Size int64
	Ext  string // lower-cased, including the dot; "" when the name has none
}

// Select stats the file at path and returns a File handle.
// Any existing regular file is accepted regardless of extension: the
// loose path (the drag-and-drop analogue) defers type rejection to the
// service. Directories and missing paths are rejected here.
func Select(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("selecting file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("selecting file: %s is a directory", path)
	}

	return &File{
		Path: path,
		Name: filepath.Base(path),
		Size: info.Size(),
		Ext:  strings.ToLower(filepath.Ext(path)),
	}, nil
}

// Accepted reports whether the file's extension is on the picker filter.
// Informational only; selection does not hard-block other types.
func (f *File) Accepted() bool {
	for _, ext := range AcceptedExtensions {
		if f.Ext == ext {
			return true
		}
	}
	return false
}

// FormatSize renders a byte count the way the upload zone displays it.
func FormatSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
