package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the stable, machine-readable classification of an error.
// It is what the HTTP boundary serialises; storage-engine internals never
// leave this package unwrapped.
type Kind string

const (
	KindConfiguration        Kind = "configuration"
	KindValidation           Kind = "validation"
	KindNotFound             Kind = "not_found"
	KindReferentialIntegrity Kind = "referential_integrity"
	KindTimeout              Kind = "timeout"
	KindStorage              Kind = "storage"
)

// Sentinel errors for use with errors.Is at the service and handler layers.
var (
	ErrConfiguration        = errors.New("configuration error")
	ErrValidation           = errors.New("validation error")
	ErrNotFound             = errors.New("resource not found")
	ErrReferentialIntegrity = errors.New("resource is still referenced")
	ErrTimeout              = errors.New("operation timed out")
	ErrStorage              = errors.New("storage error")
)

func sentinelFor(kind Kind) error {
	switch kind {
	case KindConfiguration:
		return ErrConfiguration
	case KindValidation:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	case KindReferentialIntegrity:
		return ErrReferentialIntegrity
	case KindTimeout:
		return ErrTimeout
	default:
		return ErrStorage
	}
}

// AppError wraps an underlying cause with a Kind and a human-readable message.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel corresponding to the error's Kind, so callers can
// write errors.Is(err, apperrors.ErrNotFound) without knowing about AppError.
func (e *AppError) Is(target error) bool {
	return target == sentinelFor(e.Kind)
}

// New creates an AppError of the given kind.
func New(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// NewStorageError wraps an unclassified storage engine failure.
func NewStorageError(message string, err error) *AppError {
	return New(KindStorage, message, err)
}

// NewNotFoundError reports a reference to a non-existent resource.
func NewNotFoundError(message string) *AppError {
	return New(KindNotFound, message, nil)
}

// NewTimeoutError reports an operation abandoned after its deadline.
func NewTimeoutError(message string, err error) *AppError {
	return New(KindTimeout, message, err)
}

// NewReferentialIntegrityError reports an attempt to remove a resource that
// other rows still reference.
func NewReferentialIntegrityError(message string, err error) *AppError {
	return New(KindReferentialIntegrity, message, err)
}

// NewConfigurationError reports a misconfigured or unreachable storage target.
// The operation is never attempted.
func NewConfigurationError(message string, err error) *AppError {
	return New(KindConfiguration, message, err)
}

// ValidationError carries the complete list of violated preconditions for a
// rejected request, not just the first one found.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError from the collected violations.
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// KindOf extracts the Kind from any error produced by this package,
// defaulting to storage for unclassified errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return KindValidation
	}
	return KindStorage
}
