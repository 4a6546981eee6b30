package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/ada-wallet-cli/internal/ports"
)

const (
	defaultRequestTimeout = 5 * time.Second
	maxDrainBytes         = 64 << 10
)

// HTTPProbe reports ready once a GET on URL answers with ExpectStatus.
// Connection failures count as "not yet".
type HTTPProbe struct {
	URL            string
	ExpectStatus   int
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.Probe = HTTPProbe{}

func NewHTTPProbe(rawURL string, expectStatus int) (HTTPProbe, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return HTTPProbe{}, fmt.Errorf("parse probe url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return HTTPProbe{}, fmt.Errorf("probe url must use http or https: %q", rawURL)
	}
	if parsed.Host == "" {
		return HTTPProbe{}, fmt.Errorf("probe url has no host: %q", rawURL)
	}
	if expectStatus == 0 {
		expectStatus = http.StatusOK
	}
	if expectStatus < 100 || expectStatus > 599 {
		return HTTPProbe{}, fmt.Errorf("invalid expected status %d", expectStatus)
	}

	return HTTPProbe{URL: parsed.String(), ExpectStatus: expectStatus}, nil
}

func (p HTTPProbe) Check(ctx context.Context) (bool, error) {
	reqCtx, cancel := p.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, p.URL, nil)
	if err != nil {
		return false, fmt.Errorf("create probe request: %w", err)
	}

	resp, err := p.httpClient().Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, nil
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	return resp.StatusCode == p.expectStatus(), nil
}

func (p HTTPProbe) String() string {
	return fmt.Sprintf("GET %s -> %d", p.URL, p.expectStatus())
}

func (p HTTPProbe) expectStatus() int {
	if p.ExpectStatus == 0 {
		return http.StatusOK
	}
	return p.ExpectStatus
}

func (p HTTPProbe) httpClient() *http.Client {
	if p.HTTPClient != nil {
		return p.HTTPClient
	}
	return http.DefaultClient
}

func (p HTTPProbe) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := p.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, timeout)
}
