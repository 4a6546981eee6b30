package probe

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/ada-wallet-cli/internal/ports"
)

// ExecProbe reports ready once the command exits with status 0. A non-zero
// exit means "not yet"; a command that cannot be started is an error.
type ExecProbe struct {
	Name string
	Args []string
}

var _ ports.Probe = ExecProbe{}

var ErrNotRunnable = errors.New("probe command is not runnable")

func NewExecProbe(argv []string) (ExecProbe, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return ExecProbe{}, errors.New("command is empty")
	}

	return ExecProbe{Name: argv[0], Args: append([]string(nil), argv[1:]...)}, nil
}

func (p ExecProbe) Check(ctx context.Context) (bool, error) {
	cmd := exec.CommandContext(ctx, p.Name, p.Args...)
	err := cmd.Run()
	if err == nil {
		return true, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}

	return false, fmt.Errorf("run %s: %w: %w", p.Name, ErrNotRunnable, err)
}

func (p ExecProbe) String() string {
	return strings.TrimSpace("exec " + p.Name + " " + strings.Join(p.Args, " "))
}
