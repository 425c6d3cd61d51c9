package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizledger/backoffice/internal/apperrors"
)

func TestAppError_MatchesSentinelForKind(t *testing.T) {
	cases := []struct {
		kind     apperrors.Kind
		sentinel error
	}{
		{apperrors.KindConfiguration, apperrors.ErrConfiguration},
		{apperrors.KindValidation, apperrors.ErrValidation},
		{apperrors.KindNotFound, apperrors.ErrNotFound},
		{apperrors.KindReferentialIntegrity, apperrors.ErrReferentialIntegrity},
		{apperrors.KindTimeout, apperrors.ErrTimeout},
		{apperrors.KindStorage, apperrors.ErrStorage},
	}

	for _, tc := range cases {
		err := apperrors.New(tc.kind, "boom", nil)
		assert.ErrorIs(t, err, tc.sentinel, "kind %s", tc.kind)
		assert.NotErrorIs(t, err, errors.New("boom"))
	}
}

func TestAppError_UnwrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewStorageError("query failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "query failed")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAppError_WrappedThroughFmt(t *testing.T) {
	err := fmt.Errorf("saving entry: %w", apperrors.NewNotFoundError("account not found"))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestValidationError_CarriesAllViolations(t *testing.T) {
	violations := []string{"entry date is required", "at least one line is required"}
	err := apperrors.NewValidationError(violations)

	require.ErrorIs(t, err, apperrors.ErrValidation)

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, violations, valErr.Violations)
	assert.Contains(t, err.Error(), "entry date is required")
	assert.Contains(t, err.Error(), "at least one line is required")
}

func TestKindOf_DefaultsToStorage(t *testing.T) {
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(errors.New("some driver error")))
}
