package retry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStrategy(t *testing.T) {
	strategy := DefaultStrategy()

	assert.Equal(t, 5, strategy.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, strategy.BaseDelay)
	assert.Equal(t, 10*time.Second, strategy.MaxDelay)
	assert.Equal(t, 2.0, strategy.ExponentialBase)
}

func TestStrategy_Delay(t *testing.T) {
	strategy := DefaultStrategy()

	tests := []struct {
		name          string
		failedAttempt int
		expectedDelay time.Duration
	}{
		{name: "zero - base delay", failedAttempt: 0, expectedDelay: 500 * time.Millisecond},
		{name: "first failure - base delay", failedAttempt: 1, expectedDelay: 500 * time.Millisecond},
		{name: "second failure - doubled", failedAttempt: 2, expectedDelay: time.Second},
		{name: "third failure", failedAttempt: 3, expectedDelay: 2 * time.Second},
		{name: "fifth failure", failedAttempt: 5, expectedDelay: 8 * time.Second},
		{name: "sixth failure - capped", failedAttempt: 6, expectedDelay: 10 * time.Second},
		{name: "far beyond - capped", failedAttempt: 50, expectedDelay: 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedDelay, strategy.Delay(tt.failedAttempt))
		})
	}
}

func TestStrategy_IsRetryable(t *testing.T) {
	strategy := Strategy{MaxAttempts: 3}

	assert.True(t, strategy.IsRetryable(0))
	assert.True(t, strategy.IsRetryable(2))
	assert.False(t, strategy.IsRetryable(3))
	assert.False(t, strategy.IsRetryable(4))
}

func TestStrategy_Schedule(t *testing.T) {
	schedule := Strategy{MaxAttempts: 3, BaseDelay: time.Second, MaxDelay: time.Minute, ExponentialBase: 3}.Schedule()

	assert.True(t, strings.HasPrefix(schedule, "Retry Schedule:\n"))
	assert.Contains(t, schedule, "Attempt 1: immediately")
	assert.Contains(t, schedule, "Attempt 2: after 1s")
	assert.Contains(t, schedule, "Attempt 3: after 3s")
	assert.NotContains(t, schedule, "Attempt 4")
}

func fastStrategy(attempts int) Strategy {
	return Strategy{MaxAttempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, ExponentialBase: 2}
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	var retried []int

	err := Do(context.Background(), fastStrategy(5), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not ready")
		}
		return nil
	}, func(attempt int, _ time.Duration, _ error) {
		retried = append(retried, attempt)
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestDo_GivesUp(t *testing.T) {
	boom := errors.New("connection refused")
	calls := 0

	err := Do(context.Background(), fastStrategy(3), func(context.Context) error {
		calls++
		return boom
	}, nil)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestDo_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	err := Do(context.Background(), Strategy{}, func(context.Context) error {
		calls++
		return errors.New("fail")
	}, nil)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	slow := Strategy{MaxAttempts: 10, BaseDelay: time.Hour, MaxDelay: time.Hour, ExponentialBase: 2}

	err := Do(ctx, slow, func(context.Context) error {
		return errors.New("not ready")
	}, func(int, time.Duration, error) {
		cancel()
	})

	assert.ErrorIs(t, err, context.Canceled)
}
