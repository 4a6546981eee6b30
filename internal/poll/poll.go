// Package poll waits for an external condition by re-evaluating a predicate
// at a fixed interval until it holds or a logical wait budget is spent.
package poll

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/ada-wallet-cli/internal/domain"
	"go.uber.org/zap"
)

const (
	DefaultTimeout       = 5 * time.Second
	DefaultRetryInterval = time.Second
)

// Predicate reports whether the awaited condition holds. Any error ends the
// wait and is returned to the caller.
type Predicate func(ctx context.Context) (bool, error)

// Config holds the two tunables. Timeout is a cumulative budget advanced by
// RetryInterval per retry, not by measured wall time.
type Config struct {
	Timeout       time.Duration
	RetryInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = DefaultRetryInterval
	}
	return c
}

type Sleeper func(ctx context.Context, d time.Duration) error

type Option func(*options)

type options struct {
	logger *zap.Logger
	sleep  Sleeper
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithSleeper(sleep Sleeper) Option {
	return func(o *options) {
		if sleep != nil {
			o.sleep = sleep
		}
	}
}

// Await invokes predicate immediately and then once per RetryInterval until
// it returns true. It fails with domain.ErrConditionTimeout once the
// accumulated wait reaches Timeout. The budget is checked before each wait,
// so the final attempt may land at or just past the nominal deadline.
func Await(ctx context.Context, predicate Predicate, cfg Config, opts ...Option) error {
	if predicate == nil {
		return fmt.Errorf("predicate is required")
	}

	cfg = cfg.withDefaults()
	o := options{logger: zap.NewNop(), sleep: sleepContext}
	for _, opt := range opts {
		opt(&o)
	}

	var waited time.Duration
	for attempt := 1; ; attempt++ {
		ok, err := predicate(ctx)
		if err != nil {
			return fmt.Errorf("evaluate condition (attempt %d): %w", attempt, err)
		}
		if ok {
			o.logger.Debug("condition met", zap.Int("attempt", attempt), zap.Duration("waited", waited))
			return nil
		}

		if waited >= cfg.Timeout {
			o.logger.Debug("condition wait budget exhausted",
				zap.Int("attempts", attempt),
				zap.Duration("waited", waited),
				zap.Duration("timeout", cfg.Timeout),
			)
			return fmt.Errorf("%w after %d attempts (waited %s of %s)", domain.ErrConditionTimeout, attempt, waited, cfg.Timeout)
		}

		o.logger.Debug("condition not met, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", cfg.RetryInterval),
		)

		if err := o.sleep(ctx, cfg.RetryInterval); err != nil {
			return err
		}
		waited += cfg.RetryInterval
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
