package utils

import (
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/hailam/docpad/internal/ports"
)

const (
	KiB int64 = 1024
	MiB int64 = 1024 * KiB

	// DefaultChunkSize bounds every filler write.
	DefaultChunkSize = 1024 * 1024
)

var sizePattern = regexp.MustCompile(`^(\d+(?:\.\d*)?|\.\d+)\s*([A-Z]*)$`)

// ParseSize parses strings like "150KB", "2.5MB" or "10" into a number of
// bytes. A missing unit means megabytes.
func ParseSize(sizeStr string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(sizeStr))
	if s == "" {
		return 0, fmt.Errorf("%w: size string is empty", ports.ErrInvalidSize)
	}
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: '%s'", ports.ErrInvalidSize, sizeStr)
	}
	var mult int64
	switch m[2] {
	case "KB":
		mult = KiB
	case "MB", "":
		mult = MiB
	default:
		return 0, fmt.Errorf("%w: unknown size suffix '%s'", ports.ErrInvalidSize, m[2])
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ports.ErrInvalidSize, err)
	}
	bytes := math.Round(n * float64(mult))
	if bytes > math.MaxInt64/2 {
		return 0, fmt.Errorf("%w: '%s' is too large", ports.ErrInvalidSize, sizeStr)
	}
	return int64(bytes), nil
}

// WriteZeros writes n zero bytes to w, never allocating more than chunkSize.
func WriteZeros(w io.Writer, n int64, chunkSize int) error {
	if n <= 0 {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if int64(chunkSize) > n {
		chunkSize = int(n)
	}
	zero := make([]byte, chunkSize)
	for n > 0 {
		chunk := int64(len(zero))
		if chunk > n {
			chunk = n
		}
		if _, err := w.Write(zero[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// Checksum returns the hex xxhash64 digest of the file at path.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to checksum %s: %w", path, err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// FileSize returns the size of the file at path.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
