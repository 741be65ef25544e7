package factory

import (
	"fmt"

	"github.com/hailam/docpad/internal/adapters/docx"
	"github.com/hailam/docpad/internal/adapters/pdf"
	"github.com/hailam/docpad/internal/adapters/pptx"
	"github.com/hailam/docpad/internal/adapters/pst"
	"github.com/hailam/docpad/internal/adapters/xlsx"
	"github.com/hailam/docpad/internal/adapters/zip"
	"github.com/hailam/docpad/internal/padding"
	"github.com/hailam/docpad/internal/ports"
	"github.com/hailam/docpad/internal/utils"
)

// StaticGeneratorFactory pairs every format with its skeleton builder and
// padding strategy.
type StaticGeneratorFactory struct {
	generators map[ports.FileType]ports.FileGenerator
}

type options struct {
	chunkSize int
	backend   pst.Backend
}

// Option configures NewStaticGeneratorFactory.
type Option func(*options)

// WithChunkSize bounds the size of each filler write.
func WithChunkSize(n int) Option {
	return func(o *options) { o.chunkSize = n }
}

// WithMailStoreBackend sets the backend used to create PST skeletons.
func WithMailStoreBackend(b pst.Backend) Option {
	return func(o *options) { o.backend = b }
}

// NewStaticGeneratorFactory creates a new factory with pre-initialized generators.
func NewStaticGeneratorFactory(opts ...Option) ports.GeneratorFactory {
	o := options{chunkSize: utils.DefaultChunkSize, backend: pst.NewCommandBackend("")}
	for _, opt := range opts {
		opt(&o)
	}
	trailer := padding.NewTrailer(o.chunkSize)

	return &StaticGeneratorFactory{
		generators: map[ports.FileType]ports.FileGenerator{
			ports.FileTypeDOCX: NewPaddedGenerator(docx.New(), padding.NewContainer(docx.MediaDir, true, o.chunkSize)),
			ports.FileTypeXLSX: NewPaddedGenerator(xlsx.New(), padding.NewContainer(xlsx.MediaDir, true, o.chunkSize)),
			ports.FileTypePPTX: NewPaddedGenerator(pptx.New(), padding.NewContainer(pptx.MediaDir, true, o.chunkSize)),
			ports.FileTypeZIP:  NewPaddedGenerator(zip.New(), padding.NewContainer("", false, o.chunkSize)),
			ports.FileTypePDF:  NewPaddedGenerator(pdf.New(), trailer),
			ports.FileTypePST:  NewPaddedGenerator(pst.New(o.backend), trailer),
		},
	}
}

// For returns the appropriate FileGenerator for the given FileType.
func (f *StaticGeneratorFactory) For(t ports.FileType) (ports.FileGenerator, error) {
	gen, ok := f.generators[t]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ports.ErrUnsupportedType, t)
	}
	return gen, nil
}
