package pst

import (
	"fmt"
	"os/exec"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/hailam/docpad/internal/ports"
)

var log = logging.Logger("adapters/pst")

// Backend creates a Unicode PST holding one top-level folder.
type Backend interface {
	CreateStore(path, folder string) error
}

// CommandBackend delegates store creation to an external helper executable,
// invoked as `<helper> <path> <folder>`.
type CommandBackend struct {
	Helper string
}

// NewCommandBackend returns a backend running helper. An empty helper makes
// every call fail with ErrBackendUnavailable.
func NewCommandBackend(helper string) *CommandBackend {
	return &CommandBackend{Helper: helper}
}

func (b *CommandBackend) CreateStore(path, folder string) error {
	if b.Helper == "" {
		return fmt.Errorf("%w: no helper configured (set BEAVER_GENFILE_PST_HELPER)", ports.ErrBackendUnavailable)
	}
	bin, err := exec.LookPath(b.Helper)
	if err != nil {
		return fmt.Errorf("%w: %v", ports.ErrBackendUnavailable, err)
	}
	log.Debugf("running %s %s %s", bin, path, folder)
	out, err := exec.Command(bin, path, folder).CombinedOutput()
	if err != nil {
		return fmt.Errorf("mail-store helper %s failed: %w: %s", b.Helper, err, strings.TrimSpace(string(out)))
	}
	return nil
}
