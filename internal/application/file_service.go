package application

import (
	"fmt"
	"path/filepath"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/hailam/docpad/internal/ports"
	"github.com/hailam/docpad/internal/utils"
)

var log = logging.Logger("application")

// FileService orchestrates file generation by parsing sizes, selecting
// the correct generator, and invoking it.
type FileService struct {
	factory       ports.GeneratorFactory
	parser        ports.SizeParser
	defaultFormat ports.FileType
}

// Request describes one file to generate.
type Request struct {
	// SizeSpec is the target size expression, e.g. "150KB" or "2.5MB".
	SizeSpec string
	// Format selects the file type. When empty, the output extension decides,
	// then the service default.
	Format ports.FileType
	// OutPath defaults to DefaultOutputPath.
	OutPath string
	// Checksum requests an xxhash64 digest of the finished file.
	Checksum bool
}

// Result reports a finished generation.
type Result struct {
	ports.PadResult
	Path     string
	Format   ports.FileType
	Size     int64
	Checksum string
}

// NewFileService constructs a FileService with the given factory and parser.
func NewFileService(factory ports.GeneratorFactory, parser ports.SizeParser, defaultFormat ports.FileType) *FileService {
	if defaultFormat == "" {
		defaultFormat = ports.FileTypeDOCX
	}
	return &FileService{factory: factory, parser: parser, defaultFormat: defaultFormat}
}

// CreateFile generates the file described by req.
func (s *FileService) CreateFile(req Request) (*Result, error) {
	// 1. Parse human-readable size into bytes
	sizeBytes, err := s.parser.Parse(req.SizeSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid size '%s': %w", req.SizeSpec, err)
	}

	// 2. Determine file type
	fileType, err := s.resolveFormat(req)
	if err != nil {
		return nil, err
	}
	outPath := req.OutPath
	if outPath == "" {
		outPath = DefaultOutputPath(fileType, req.SizeSpec)
	}

	// 3. Retrieve the generator for this type
	generator, err := s.factory.For(fileType)
	if err != nil {
		return nil, fmt.Errorf("no generator for type '%s': %w", fileType, err)
	}

	// 4. Invoke the generator
	log.Debugf("generating %s: format=%s target=%d", outPath, fileType, sizeBytes)
	pad, err := generator.Generate(outPath, sizeBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", outPath, err)
	}

	res := &Result{PadResult: pad, Path: outPath, Format: fileType}
	if res.Size, err = utils.FileSize(outPath); err != nil {
		return nil, err
	}
	if req.Checksum {
		if res.Checksum, err = utils.Checksum(outPath); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *FileService) resolveFormat(req Request) (ports.FileType, error) {
	if req.Format != "" {
		return ports.ParseFileType(string(req.Format))
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(req.OutPath), "."))
	if t, ok := mapExtensionToFileType(ext); ok {
		return t, nil
	}
	return s.defaultFormat, nil
}

// DefaultOutputPath names the output after the format and size expression,
// e.g. output_10MB.docx.
func DefaultOutputPath(t ports.FileType, sizeSpec string) string {
	spec := strings.ToUpper(strings.Join(strings.Fields(sizeSpec), ""))
	return fmt.Sprintf("output_%s.%s", spec, t.Extension())
}

// mapExtensionToFileType maps file extensions to FileType constants.
func mapExtensionToFileType(ext string) (ports.FileType, bool) {
	switch ext {
	case "docx":
		return ports.FileTypeDOCX, true
	case "xlsx":
		return ports.FileTypeXLSX, true
	case "pptx":
		return ports.FileTypePPTX, true
	case "pdf":
		return ports.FileTypePDF, true
	case "pst":
		return ports.FileTypePST, true
	case "zip":
		return ports.FileTypeZIP, true
	default:
		return "", false
	}
}
