package poll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/ada-wallet-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSleeper struct {
	waits []time.Duration
}

func (r *recordingSleeper) sleep(_ context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)
	return nil
}

func trueAfter(n int32, calls *atomic.Int32) Predicate {
	return func(context.Context) (bool, error) {
		return calls.Add(1) >= n, nil
	}
}

func TestAwaitSucceedsImmediatelyWithoutWaiting(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	sleeper := &recordingSleeper{}

	err := Await(context.Background(), trueAfter(1, &calls), Config{}, WithSleeper(sleeper.sleep))
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Empty(t, sleeper.waits)
}

func TestAwaitRetriesUntilConditionHolds(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	sleeper := &recordingSleeper{}

	err := Await(context.Background(), trueAfter(3, &calls), Config{Timeout: 5 * time.Second, RetryInterval: time.Second}, WithSleeper(sleeper.sleep))
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{time.Second, time.Second}, sleeper.waits)
}

func TestAwaitTimesOutWhenBudgetExhausted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		cfg          Config
		wantAttempts int32
	}{
		{name: "defaults", cfg: Config{}, wantAttempts: 6},
		{name: "even division", cfg: Config{Timeout: 3 * time.Second, RetryInterval: time.Second}, wantAttempts: 4},
		{name: "uneven division overshoots nominal deadline", cfg: Config{Timeout: 2500 * time.Millisecond, RetryInterval: time.Second}, wantAttempts: 4},
		{name: "interval larger than timeout", cfg: Config{Timeout: time.Second, RetryInterval: 5 * time.Second}, wantAttempts: 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			sleeper := &recordingSleeper{}
			never := func(context.Context) (bool, error) {
				calls.Add(1)
				return false, nil
			}

			err := Await(context.Background(), never, tc.cfg, WithSleeper(sleeper.sleep))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConditionTimeout)
			assert.Equal(t, tc.wantAttempts, calls.Load())
			assert.Len(t, sleeper.waits, int(tc.wantAttempts)-1)
		})
	}
}

func TestAwaitPropagatesPredicateError(t *testing.T) {
	t.Parallel()

	boom := errors.New("node unreachable")
	var calls atomic.Int32
	sleeper := &recordingSleeper{}

	err := Await(context.Background(), func(context.Context) (bool, error) {
		if calls.Add(1) == 2 {
			return false, boom
		}
		return false, nil
	}, Config{}, WithSleeper(sleeper.sleep))

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrConditionTimeout)
	assert.Contains(t, err.Error(), "attempt 2")
	assert.Equal(t, int32(2), calls.Load())
}

func TestAwaitRequiresPredicate(t *testing.T) {
	t.Parallel()

	err := Await(context.Background(), nil, Config{})
	assert.ErrorContains(t, err, "predicate is required")
}

func TestAwaitWithRealTimer(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	start := time.Now()

	err := Await(context.Background(), trueAfter(3, &calls), Config{Timeout: time.Second, RetryInterval: 10 * time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestAwaitStopsWhenContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32

	err := Await(ctx, func(context.Context) (bool, error) {
		if calls.Add(1) == 2 {
			cancel()
		}
		return false, nil
	}, Config{Timeout: time.Minute, RetryInterval: 5 * time.Millisecond})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(2), calls.Load())
}

func TestAwaitDoesNotInvokePredicateAfterTimeout(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	err := Await(context.Background(), func(context.Context) (bool, error) {
		calls.Add(1)
		return false, nil
	}, Config{Timeout: 20 * time.Millisecond, RetryInterval: 10 * time.Millisecond})
	require.ErrorIs(t, err, domain.ErrConditionTimeout)

	settled := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, calls.Load())
}

func TestAwaitLogsAttempts(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	var calls atomic.Int32
	sleeper := &recordingSleeper{}

	err := Await(context.Background(), trueAfter(2, &calls), Config{}, WithSleeper(sleeper.sleep), WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("condition not met, retrying").Len())
	met := logs.FilterMessage("condition met").All()
	require.Len(t, met, 1)
	assert.Equal(t, int64(2), met[0].ContextMap()["attempt"])
}
