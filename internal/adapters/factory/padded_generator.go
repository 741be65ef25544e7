package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hailam/docpad/internal/ports"
)

// PaddedGenerator builds a skeleton and grows it to the requested size.
type PaddedGenerator struct {
	Builder ports.SkeletonBuilder
	Padder  ports.Padder
}

func NewPaddedGenerator(b ports.SkeletonBuilder, p ports.Padder) *PaddedGenerator {
	return &PaddedGenerator{Builder: b, Padder: p}
}

// Generate writes a file at outPath exactly sizeBytes long. The file is built
// in a scratch directory next to outPath and renamed into place only once it
// has its final size, so a failure leaves an existing outPath untouched.
func (g *PaddedGenerator) Generate(outPath string, sizeBytes int64) (ports.PadResult, error) {
	scratch, err := os.MkdirTemp(filepath.Dir(outPath), ".genfile-*")
	if err != nil {
		return ports.PadResult{}, err
	}
	defer os.RemoveAll(scratch)

	// Same base name: builders such as excelize check the extension.
	tmp := filepath.Join(scratch, filepath.Base(outPath))
	if err := g.Builder.Build(tmp); err != nil {
		return ports.PadResult{}, fmt.Errorf("failed to build skeleton: %w", err)
	}
	res, err := g.Padder.Pad(tmp, sizeBytes)
	if err != nil {
		return res, err
	}
	if err := os.Rename(tmp, outPath); err != nil {
		return res, err
	}
	return res, nil
}
