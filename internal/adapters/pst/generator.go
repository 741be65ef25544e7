package pst

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/hailam/docpad/internal/ports"
)

// RootFolder is the folder created under the store root.
const RootFolder = "Inbox"

// Header layout of a PST file: dwMagic "!BDN", dwCRCPartial, wMagicClient
// "SM", then wVer.
const (
	headerMagic  = "!BDN"
	clientMagic  = "SM"
	versionAt    = 10
	headerPrefix = 12

	// Unicode stores use wVer 23, or 36 with 4K pages.
	VersionUnicode   = 23
	VersionUnicode4K = 36
)

type PstBuilder struct {
	backend Backend
}

func New(backend Backend) ports.SkeletonBuilder {
	return &PstBuilder{backend: backend}
}

// Build asks the backend for a store with one Inbox folder and checks that
// the result carries a Unicode PST header. path must not exist yet.
func (g *PstBuilder) Build(path string) error {
	if g.backend == nil {
		return fmt.Errorf("%w: no backend", ports.ErrBackendUnavailable)
	}
	if err := g.backend.CreateStore(path, RootFolder); err != nil {
		return err
	}
	return checkHeader(path)
}

func checkHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("mail-store backend produced no file: %w", err)
	}
	defer f.Close()

	hdr := make([]byte, headerPrefix)
	if _, err := io.ReadFull(f, hdr); err != nil {
		return fmt.Errorf("invalid PST header in %s: %w", path, err)
	}
	if string(hdr[:4]) != headerMagic || string(hdr[8:10]) != clientMagic {
		return fmt.Errorf("invalid PST header in %s: bad magic", path)
	}
	switch v := binary.LittleEndian.Uint16(hdr[versionAt:]); v {
	case VersionUnicode, VersionUnicode4K:
		return nil
	default:
		return fmt.Errorf("%s is not a Unicode PST (wVer %d)", path, v)
	}
}
