package zip

import (
	"archive/zip"
	"os"
	"time"

	"github.com/hailam/docpad/internal/ports"
)

const (
	// EntryName is the placeholder member of a fresh archive.
	EntryName = "dummy.txt"
	// Placeholder is its content.
	Placeholder = "Sample"
)

type ZipBuilder struct{}

func New() ports.SkeletonBuilder {
	return &ZipBuilder{}
}

// Build writes an archive holding one small stored entry.
func (g *ZipBuilder) Build(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(f)

	hdr := &zip.FileHeader{
		Name:     EntryName,
		Method:   zip.Store,
		Modified: time.Now(),
	}
	w, err := zw.CreateHeader(hdr)
	if err != nil {
		zw.Close()
		f.Close()
		return err
	}
	if _, err := w.Write([]byte(Placeholder)); err != nil {
		zw.Close()
		f.Close()
		return err
	}

	// Central directory + EOCD
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
