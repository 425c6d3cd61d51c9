// Package resilience provides the single reusable deadline/retry wrapper
// every storage-facing operation runs under. It replaces per-call timeout
// plumbing: callers pick a Policy and hand over the operation.
package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/bizledger/backoffice/internal/apperrors"
)

// Policy bounds one operation: an execution deadline and, for idempotent
// operations only, a retry budget. Writes must always run with
// MaxAttempts 1 — re-submitting a journal entry would duplicate it.
type Policy struct {
	Timeout     time.Duration
	MaxAttempts int
	Backoff     time.Duration // base delay between attempts, grows linearly
}

// Operation is a unit of work bounded by a Policy.
type Operation func(ctx context.Context) error

// Do runs op under the policy's deadline, retrying idempotent failures up
// to MaxAttempts. Deadline expiry surfaces as an apperrors timeout; the
// caller's connection is released by the operation's own defers before Do
// returns. Validation, not-found and referential-integrity failures are
// never retried: retrying cannot fix the input.
func Do(ctx context.Context, p Policy, op Operation) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		opCtx := ctx
		cancel := context.CancelFunc(func() {})
		if p.Timeout > 0 {
			opCtx, cancel = context.WithTimeout(ctx, p.Timeout)
		}
		err = op(opCtx)
		cancel()

		if err == nil {
			return nil
		}
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, apperrors.ErrTimeout) {
			err = apperrors.NewTimeoutError("operation exceeded its deadline", err)
		}
		if !retryable(err) || attempt == attempts {
			return err
		}

		select {
		case <-ctx.Done():
			return apperrors.NewTimeoutError("operation abandoned", ctx.Err())
		case <-time.After(time.Duration(attempt) * p.Backoff):
		}
	}
	return err
}

// Policies groups the standard operation policies derived from config:
// single-attempt reads and writes with their respective deadlines, plus a
// retrying policy reserved for idempotent bootstrap actions such as the
// chart-of-accounts seed.
type Policies struct {
	Read      Policy
	Write     Policy
	Bootstrap Policy
}

// NewPolicies builds the standard policy set from the configured deadlines.
func NewPolicies(readTimeout, writeTimeout time.Duration) Policies {
	return Policies{
		Read:      Policy{Timeout: readTimeout, MaxAttempts: 1},
		Write:     Policy{Timeout: writeTimeout, MaxAttempts: 1},
		Bootstrap: Policy{Timeout: writeTimeout, MaxAttempts: 3, Backoff: 500 * time.Millisecond},
	}
}

func retryable(err error) bool {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrReferentialIntegrity),
		errors.Is(err, context.Canceled):
		return false
	}
	return true
}
