package probe

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bnema/ada-wallet-cli/internal/ports"
)

// FileProbe reports ready once Path exists.
type FileProbe struct {
	Path string
}

var _ ports.Probe = FileProbe{}

func NewFileProbe(path string) (FileProbe, error) {
	if strings.TrimSpace(path) == "" {
		return FileProbe{}, errors.New("file path is empty")
	}

	return FileProbe{Path: path}, nil
}

func (p FileProbe) Check(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if _, err := os.Stat(p.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", p.Path, err)
	}

	return true, nil
}

func (p FileProbe) String() string {
	return "file " + p.Path
}
