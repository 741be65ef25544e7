package factory

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hailam/docpad/internal/padding"
	"github.com/hailam/docpad/internal/ports"
)

// fakeStore writes a Unicode PST header followed by zeros.
type fakeStore struct{}

func (fakeStore) CreateStore(path, folder string) error {
	data := make([]byte, 8192)
	copy(data, "!BDN")
	copy(data[8:], "SM")
	data[10] = 23
	return os.WriteFile(path, data, 0o644)
}

func TestStaticGeneratorFactory_For(t *testing.T) {
	f := NewStaticGeneratorFactory()

	tests := []struct {
		fileType ports.FileType
		mediaDir string
		manifest bool
		trailer  bool
	}{
		{ports.FileTypeDOCX, "word/media", true, false},
		{ports.FileTypeXLSX, "xl/media", true, false},
		{ports.FileTypePPTX, "ppt/media", true, false},
		{ports.FileTypeZIP, "", false, false},
		{ports.FileTypePDF, "", false, true},
		{ports.FileTypePST, "", false, true},
	}
	for _, tc := range tests {
		t.Run(string(tc.fileType), func(t *testing.T) {
			gen, err := f.For(tc.fileType)
			require.NoError(t, err)
			pg, ok := gen.(*PaddedGenerator)
			require.True(t, ok, "For(%s) returned %T", tc.fileType, gen)
			if tc.trailer {
				require.IsType(t, &padding.Trailer{}, pg.Padder)
				return
			}
			c, ok := pg.Padder.(*padding.Container)
			require.True(t, ok, "padder is %T", pg.Padder)
			require.Equal(t, tc.mediaDir, c.MediaDir)
			require.Equal(t, tc.manifest, c.PatchManifest)
		})
	}

	t.Run("Unsupported", func(t *testing.T) {
		_, err := f.For("txt")
		require.ErrorIs(t, err, ports.ErrUnsupportedType)
		require.ErrorContains(t, err, "'txt'")
	})
}

func TestGenerate_ExactSize(t *testing.T) {
	f := NewStaticGeneratorFactory(WithChunkSize(64*1024), WithMailStoreBackend(fakeStore{}))
	const target = 300 * 1024

	for _, ft := range ports.FileTypes {
		t.Run(string(ft), func(t *testing.T) {
			gen, err := f.For(ft)
			require.NoError(t, err)
			outPath := filepath.Join(t.TempDir(), "out."+ft.Extension())

			res, err := gen.Generate(outPath, target)
			require.NoError(t, err)
			info, err := os.Stat(outPath)
			require.NoError(t, err)
			require.Equal(t, int64(target), info.Size())
			require.Less(t, res.SkeletonSize, int64(target))

			if res.Entry != "" {
				zr, err := zip.OpenReader(outPath)
				require.NoError(t, err, "padded %s must stay a valid archive", ft)
				zr.Close()
			}
		})
	}
}

func TestGenerate_TooSmall(t *testing.T) {
	f := NewStaticGeneratorFactory(WithMailStoreBackend(fakeStore{}))

	for _, ft := range ports.FileTypes {
		t.Run(string(ft), func(t *testing.T) {
			gen, err := f.For(ft)
			require.NoError(t, err)
			outPath := filepath.Join(t.TempDir(), "out."+ft.Extension())

			_, err = gen.Generate(outPath, 16)
			require.ErrorIs(t, err, ports.ErrSizeExceeded)
			_, statErr := os.Stat(outPath)
			require.ErrorIs(t, statErr, os.ErrNotExist, "failed output must be removed")
		})
	}
}

func TestGenerate_XlsxOneMegabyte(t *testing.T) {
	gen, err := NewStaticGeneratorFactory().For(ports.FileTypeXLSX)
	require.NoError(t, err)
	outPath := filepath.Join(t.TempDir(), "book.xlsx")

	res, err := gen.Generate(outPath, 1048576)
	require.NoError(t, err)
	require.Equal(t, "xl/media/pad.bin", res.Entry)
	// excelize already declares bin (vbaProject), so the manifest is left alone.
	require.False(t, res.ManifestPatched)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	require.Equal(t, int64(1048576), info.Size())

	zr, err := zip.OpenReader(outPath)
	require.NoError(t, err)
	var sawPad bool
	for _, zf := range zr.File {
		switch zf.Name {
		case "xl/media/pad.bin":
			sawPad = true
		case "[Content_Types].xml":
			rc, err := zf.Open()
			require.NoError(t, err)
			body, err := io.ReadAll(rc)
			rc.Close()
			require.NoError(t, err)
			require.Equal(t, 1, strings.Count(string(body), `Extension="bin"`))
		}
	}
	zr.Close()
	require.True(t, sawPad)

	book, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer book.Close()
	v, err := book.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	require.Equal(t, "Sample", v)
}

func TestGenerate_PstBackendUnavailable(t *testing.T) {
	gen, err := NewStaticGeneratorFactory().For(ports.FileTypePST)
	require.NoError(t, err)
	outPath := filepath.Join(t.TempDir(), "mail.pst")

	_, err = gen.Generate(outPath, 1024*1024)
	require.ErrorIs(t, err, ports.ErrBackendUnavailable)
	_, statErr := os.Stat(outPath)
	require.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestGenerate_FailureKeepsExistingOutput(t *testing.T) {
	f := NewStaticGeneratorFactory()
	tests := []struct {
		name   string
		format ports.FileType
		size   int64
		errIs  error
	}{
		{"PstWithoutHelper", ports.FileTypePST, 1024 * 1024, ports.ErrBackendUnavailable},
		{"DocxTooSmall", ports.FileTypeDOCX, 16, ports.ErrSizeExceeded},
		{"PdfTooSmall", ports.FileTypePDF, 16, ports.ErrSizeExceeded},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			outPath := filepath.Join(dir, "existing."+tc.format.Extension())
			require.NoError(t, os.WriteFile(outPath, []byte("keep me"), 0o644))

			gen, err := f.For(tc.format)
			require.NoError(t, err)
			_, err = gen.Generate(outPath, tc.size)
			require.ErrorIs(t, err, tc.errIs)

			data, err := os.ReadFile(outPath)
			require.NoError(t, err)
			require.Equal(t, "keep me", string(data))
			requireOnlyEntry(t, dir, "existing."+tc.format.Extension())
		})
	}
}

func TestGenerate_ReplacesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "archive.zip")
	require.NoError(t, os.WriteFile(outPath, []byte("old"), 0o644))

	gen, err := NewStaticGeneratorFactory().For(ports.FileTypeZIP)
	require.NoError(t, err)
	_, err = gen.Generate(outPath, 8192)
	require.NoError(t, err)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	require.Equal(t, int64(8192), info.Size())
	requireOnlyEntry(t, dir, "archive.zip")
}

// requireOnlyEntry checks that no scratch files are left beside the output.
func requireOnlyEntry(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, name, entries[0].Name())
}

func TestGenerate_InvalidPathKeepsDirectory(t *testing.T) {
	dir := t.TempDir()
	gen, err := NewStaticGeneratorFactory().For(ports.FileTypeZIP)
	require.NoError(t, err)

	_, err = gen.Generate(dir, 4096)
	require.Error(t, err)
	info, statErr := os.Stat(dir)
	require.NoError(t, statErr)
	require.True(t, info.IsDir())
}
