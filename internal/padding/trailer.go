package padding

import (
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/hailam/docpad/internal/ports"
	"github.com/hailam/docpad/internal/utils"
)

var log = logging.Logger("padding")

// Trailer appends zero bytes after the logical end of a file. It serves
// formats whose readers ignore data past their end marker (PDF, PST).
type Trailer struct {
	ChunkSize int
}

// NewTrailer returns a Trailer padder writing in chunks of chunkSize bytes.
func NewTrailer(chunkSize int) *Trailer {
	return &Trailer{ChunkSize: chunkSize}
}

// Pad grows the file at path to exactly targetSize bytes.
func (p *Trailer) Pad(path string, targetSize int64) (ports.PadResult, error) {
	current, err := utils.FileSize(path)
	if err != nil {
		return ports.PadResult{}, err
	}
	res := ports.PadResult{SkeletonSize: current}

	pad := targetSize - current
	if pad < 0 {
		return res, fmt.Errorf("%w: skeleton is %d bytes, target %d bytes", ports.ErrSizeExceeded, current, targetSize)
	}
	log.Debugf("trailer %s: skeleton=%d target=%d pad=%d", path, current, targetSize, pad)
	if pad == 0 {
		return res, nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return res, err
	}
	if err := utils.WriteZeros(f, pad, p.ChunkSize); err != nil {
		f.Close()
		return res, fmt.Errorf("failed to append %d padding bytes: %w", pad, err)
	}
	if err := f.Close(); err != nil {
		return res, err
	}
	res.Padding = pad

	return res, verifySize(path, targetSize)
}

func verifySize(path string, targetSize int64) error {
	got, err := utils.FileSize(path)
	if err != nil {
		return err
	}
	if got != targetSize {
		return fmt.Errorf("internal error: final file size on disk (%d) does not match target size (%d)", got, targetSize)
	}
	return nil
}
