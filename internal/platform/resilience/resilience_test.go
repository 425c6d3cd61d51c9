package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizledger/backoffice/internal/apperrors"
	"github.com/bizledger/backoffice/internal/platform/resilience"
)

func TestDo_Success(t *testing.T) {
	calls := 0
	err := resilience.Do(context.Background(), resilience.Policy{Timeout: time.Second, MaxAttempts: 3}, func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_DeadlineBecomesTimeoutError(t *testing.T) {
	err := resilience.Do(context.Background(), resilience.Policy{Timeout: 10 * time.Millisecond, MaxAttempts: 1}, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTimeout)
}

func TestDo_RetriesStorageErrors(t *testing.T) {
	calls := 0
	policy := resilience.Policy{Timeout: time.Second, MaxAttempts: 3, Backoff: time.Millisecond}
	err := resilience.Do(context.Background(), policy, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return apperrors.NewStorageError("transient failure", nil)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	policy := resilience.Policy{Timeout: time.Second, MaxAttempts: 3, Backoff: time.Millisecond}
	err := resilience.Do(context.Background(), policy, func(ctx context.Context) error {
		calls++
		return apperrors.NewStorageError("still failing", nil)
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.Equal(t, 3, calls)
}

func TestDo_NeverRetriesValidation(t *testing.T) {
	calls := 0
	policy := resilience.Policy{Timeout: time.Second, MaxAttempts: 3, Backoff: time.Millisecond}
	err := resilience.Do(context.Background(), policy, func(ctx context.Context) error {
		calls++
		return apperrors.NewValidationError([]string{"bad input"})
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, 1, calls)
}

func TestDo_NeverRetriesNotFound(t *testing.T) {
	calls := 0
	policy := resilience.Policy{Timeout: time.Second, MaxAttempts: 5, Backoff: time.Millisecond}
	err := resilience.Do(context.Background(), policy, func(ctx context.Context) error {
		calls++
		return apperrors.NewNotFoundError("missing")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 1, calls)
}

func TestDo_SingleAttemptPolicyNeverRetries(t *testing.T) {
	calls := 0
	policy := resilience.Policy{Timeout: time.Second, MaxAttempts: 1}
	err := resilience.Do(context.Background(), policy, func(ctx context.Context) error {
		calls++
		return apperrors.NewStorageError("write failed", nil)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_AbandonsWhenParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	policy := resilience.Policy{Timeout: time.Second, MaxAttempts: 3, Backoff: time.Minute}
	err := resilience.Do(ctx, policy, func(ctx context.Context) error {
		calls++
		cancel()
		return apperrors.NewStorageError("transient failure", nil)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, apperrors.ErrTimeout)
}

func TestDo_ZeroAttemptsTreatedAsOne(t *testing.T) {
	calls := 0
	err := resilience.Do(context.Background(), resilience.Policy{}, func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestNewPolicies(t *testing.T) {
	p := resilience.NewPolicies(8*time.Second, 10*time.Second)

	assert.Equal(t, 8*time.Second, p.Read.Timeout)
	assert.Equal(t, 1, p.Read.MaxAttempts)
	assert.Equal(t, 10*time.Second, p.Write.Timeout)
	assert.Equal(t, 1, p.Write.MaxAttempts)
	assert.Equal(t, 3, p.Bootstrap.MaxAttempts)
}

func TestDo_WrappedDeadlineStillTimeout(t *testing.T) {
	underlying := errors.New("read tcp: i/o timeout")
	err := resilience.Do(context.Background(), resilience.Policy{Timeout: time.Second, MaxAttempts: 1}, func(ctx context.Context) error {
		return apperrors.NewTimeoutError("query timed out", underlying)
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTimeout)
}
