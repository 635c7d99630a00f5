package las

import (
	"os"
	"path/filepath"
	"strings"
)

// FileType is the kind of point cloud file found at a path.
type FileType string

const (
	FileTypeLAS     FileType = "LAS"
	FileTypeLAZ     FileType = "LAZ"
	FileTypeUnknown FileType = "UNKNOWN"
)

// DetectFileType tells LAS from LAZ by the header's compression bits, and
// falls back to the extension when the header cannot be read.
func DetectFileType(filename string) FileType {
	file, err := os.Open(filename)
	if err != nil {
		return FileTypeUnknown
	}
	defer file.Close()

	header, err := ReadHeader(file)
	if err != nil {
		return FileTypeUnknown
	}
	if header.Compressed {
		return FileTypeLAZ
	}
	if strings.EqualFold(filepath.Ext(filename), ".laz") {
		if _, err := header.LazVlr(); err == nil {
			return FileTypeLAZ
		}
	}
	return FileTypeLAS
}
