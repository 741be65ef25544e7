// Package ooxml writes small ZIP packages from in-memory parts.
package ooxml

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"time"
)

// Part is one member of a package.
type Part struct {
	Name string
	Body string
	// Store disables compression for this part.
	Store bool
}

// WritePackage writes parts, in order, as a ZIP archive at path.
func WritePackage(path string, parts []Part) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, parts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes parts as a ZIP archive into w.
func Write(w io.Writer, parts []Part) error {
	zw := zip.NewWriter(w)
	now := time.Now()
	for _, p := range parts {
		method := zip.Deflate
		if p.Store {
			method = zip.Store
		}
		pw, err := zw.CreateHeader(&zip.FileHeader{Name: p.Name, Method: method, Modified: now})
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", p.Name, err)
		}
		if _, err := io.WriteString(pw, p.Body); err != nil {
			return fmt.Errorf("failed to write %s: %w", p.Name, err)
		}
	}
	return zw.Close()
}

// Relationship type and content type constants shared by the OOXML builders.
const (
	RelsContentType = "application/vnd.openxmlformats-package.relationships+xml"
	RelOfficeDoc    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	XMLHeader       = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
)
