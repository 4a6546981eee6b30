package probe

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/bnema/ada-wallet-cli/internal/ports"
)

const defaultDialTimeout = 2 * time.Second

// TCPProbe reports ready once a TCP connection to Address succeeds.
type TCPProbe struct {
	Address     string
	DialTimeout time.Duration
}

var _ ports.Probe = TCPProbe{}

func NewTCPProbe(address string) (TCPProbe, error) {
	if _, _, err := net.SplitHostPort(address); err != nil {
		return TCPProbe{}, fmt.Errorf("parse tcp address: %w", err)
	}

	return TCPProbe{Address: address}, nil
}

func (p TCPProbe) Check(ctx context.Context) (bool, error) {
	timeout := p.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", p.Address)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, nil
	}
	_ = conn.Close()

	return true, nil
}

func (p TCPProbe) String() string {
	return "tcp " + p.Address
}
