package ports

import (
	"fmt"
	"strings"
)

// FileType is the identifier for each format.
type FileType string

const (
	FileTypeDOCX FileType = "docx"
	FileTypeXLSX FileType = "xlsx"
	FileTypePPTX FileType = "pptx"
	FileTypePDF  FileType = "pdf"
	FileTypePST  FileType = "pst"
	FileTypeZIP  FileType = "zip"
)

// FileTypes lists every supported format in the order shown to users.
var FileTypes = []FileType{
	FileTypeDOCX,
	FileTypeXLSX,
	FileTypePPTX,
	FileTypePDF,
	FileTypePST,
	FileTypeZIP,
}

// ParseFileType validates a user supplied format identifier.
func ParseFileType(s string) (FileType, error) {
	t := FileType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range FileTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: '%s'", ErrUnsupportedType, s)
}

// Extension returns the conventional file extension, without the dot.
func (t FileType) Extension() string {
	return string(t)
}
