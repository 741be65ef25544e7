package padding

import (
	"archive/zip"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/hailam/docpad/internal/ports"
	"github.com/hailam/docpad/internal/utils"
)

// PadEntryName is the archive member that carries the filler bytes.
const PadEntryName = "pad.bin"

const (
	maxComment = 1<<16 - 1
	// Below this size no ZIP64 record can appear, so the archive grows
	// byte for byte with the padding entry.
	zip64Limit = 1<<32 - 1
)

// Container pads ZIP-based files (OOXML packages and plain archives) by adding
// a stored padding member. Original members are copied raw.
type Container struct {
	// MediaDir is the folder holding the padding entry; empty means archive root.
	MediaDir string
	// PatchManifest declares the bin extension in [Content_Types].xml.
	PatchManifest bool
	ChunkSize     int
}

// NewContainer returns a Container padder.
func NewContainer(mediaDir string, patchManifest bool, chunkSize int) *Container {
	return &Container{MediaDir: mediaDir, PatchManifest: patchManifest, ChunkSize: chunkSize}
}

// EntryName returns the full archive name of the padding entry.
func (c *Container) EntryName() string {
	if c.MediaDir == "" {
		return PadEntryName
	}
	return path.Join(c.MediaDir, PadEntryName)
}

// Pad rewrites the archive at path so that it is exactly targetSize bytes.
func (c *Container) Pad(archivePath string, targetSize int64) (ports.PadResult, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return ports.PadResult{}, fmt.Errorf("failed to open archive %s: %w", archivePath, err)
	}
	defer zr.Close()

	rw := &rewrite{
		files:    zr.File,
		entry:    c.EntryName(),
		modified: time.Now(),
		chunk:    c.ChunkSize,
	}
	var res ports.PadResult
	for _, f := range zr.File {
		if f.Name == rw.entry {
			return res, fmt.Errorf("%w: %s", ports.ErrEntryExists, f.Name)
		}
		if c.PatchManifest && f.Name == ContentTypesName {
			rw.manifest = f
		}
	}
	if rw.manifest != nil {
		data, err := readEntry(rw.manifest)
		if err != nil {
			return res, err
		}
		if patched, ok := PatchContentTypes(data); ok {
			rw.patched = patched
			res.ManifestPatched = true
		}
	}

	l, base, err := rw.plan(targetSize)
	res.SkeletonSize = base
	if err != nil {
		return res, err
	}
	if l.pad >= 0 {
		res.Entry = rw.entry
		res.Padding = l.pad
	}
	res.Comment = l.comment
	log.Debugf("container %s: skeleton=%d target=%d entry=%s pad=%d comment=%d manifestPatched=%t",
		archivePath, base, targetSize, res.Entry, l.pad, l.comment, res.ManifestPatched)

	tmp := archivePath + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return res, err
	}
	var crc uint32
	if l.pad > 0 {
		if crc, err = zeroCRC(l.pad, c.ChunkSize); err != nil {
			out.Close()
			os.Remove(tmp)
			return res, err
		}
	}
	if _, err := rw.writeTo(out, l, crc); err != nil {
		out.Close()
		os.Remove(tmp)
		return res, err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return res, err
	}
	zr.Close()
	if err := os.Rename(tmp, archivePath); err != nil {
		os.Remove(tmp)
		return res, err
	}

	return res, verifySize(archivePath, targetSize)
}

// layout is one candidate shape of the rewritten archive.
type layout struct {
	// pad is the padding entry length; negative means no entry.
	pad     int64
	comment int
}

// rewrite copies an archive, optionally replacing the manifest and
// appending the padding entry.
type rewrite struct {
	files    []*zip.File
	manifest *zip.File
	patched  []byte
	entry    string
	modified time.Time
	chunk    int
}

// plan finds the layout whose encoded size equals target. It also returns
// the size of the rewritten archive without padding.
func (rw *rewrite) plan(target int64) (layout, int64, error) {
	none := layout{pad: -1}
	base, err := rw.measure(none)
	if err != nil {
		return none, 0, err
	}
	if target < base {
		return none, base, fmt.Errorf("%w: skeleton is %d bytes, target %d bytes", ports.ErrSizeExceeded, base, target)
	}
	if target == base {
		return none, base, nil
	}

	empty, err := rw.measure(layout{pad: 0})
	if err != nil {
		return none, base, err
	}
	if target < empty {
		// Smaller than an empty entry's headers.
		return layout{pad: -1, comment: int(target - base)}, base, nil
	}

	l := layout{pad: target - empty}
	if target < zip64Limit {
		return l, base, nil
	}
	for i := 0; i < 4; i++ {
		got, err := rw.measure(l)
		if err != nil {
			return l, base, err
		}
		switch {
		case got == target:
			return l, base, nil
		case got > target:
			l.pad -= got - target
			if l.pad < 0 {
				l.pad = 0
			}
		default:
			gap := target - got
			if gap <= maxComment {
				l.comment = int(gap)
				return l, base, nil
			}
			l.pad += gap
		}
	}
	return l, base, fmt.Errorf("could not fit padding entry into %d bytes", target)
}

// measure returns the encoded size of the archive for layout l.
func (rw *rewrite) measure(l layout) (int64, error) {
	return rw.writeTo(io.Discard, l, 0)
}

func (rw *rewrite) writeTo(w io.Writer, l layout, crc uint32) (int64, error) {
	cw := &countWriter{w: w}
	zw := zip.NewWriter(cw)

	for _, f := range rw.files {
		if f == rw.manifest && rw.patched != nil {
			if err := rw.writeManifest(zw); err != nil {
				return 0, err
			}
			continue
		}
		if err := zw.Copy(f); err != nil {
			return 0, fmt.Errorf("failed to copy %s: %w", f.Name, err)
		}
	}

	if l.pad >= 0 {
		hdr := &zip.FileHeader{
			Name:               rw.entry,
			Method:             zip.Store,
			CRC32:              crc,
			CompressedSize64:   uint64(l.pad),
			UncompressedSize64: uint64(l.pad),
		}
		hdr.SetModTime(rw.modified) //nolint:staticcheck // CreateRaw does not derive the MS-DOS time fields
		pw, err := zw.CreateRaw(hdr)
		if err != nil {
			return 0, err
		}
		if err := utils.WriteZeros(pw, l.pad, rw.chunk); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", rw.entry, err)
		}
	}
	if l.comment > 0 {
		if err := zw.SetComment(strings.Repeat(" ", l.comment)); err != nil {
			return 0, err
		}
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return cw.n, nil
}

func (rw *rewrite) writeManifest(zw *zip.Writer) error {
	hdr := rw.manifest.FileHeader
	hdr.Extra = nil
	hdr.CRC32 = 0
	hdr.CompressedSize, hdr.UncompressedSize = 0, 0
	hdr.CompressedSize64, hdr.UncompressedSize64 = 0, 0
	w, err := zw.CreateHeader(&hdr)
	if err != nil {
		return err
	}
	if _, err := w.Write(rw.patched); err != nil {
		return fmt.Errorf("failed to write %s: %w", hdr.Name, err)
	}
	return nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Name, err)
	}
	return data, nil
}

func zeroCRC(n int64, chunkSize int) (uint32, error) {
	h := crc32.NewIEEE()
	if err := utils.WriteZeros(h, n, chunkSize); err != nil {
		return 0, err
	}
	return h.Sum32(), nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
