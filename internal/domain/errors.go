package domain

import (
	"errors"
	"fmt"
)

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ProviderAbsentErr means the host exposes no implementation for a kind at all.
// It is permanent and not retryable.
type ProviderAbsentErr struct {
	domainErr
	Kind CapabilityKind
}

// NewProviderAbsentErr creates a new ProviderAbsentErr for the given kind.
func NewProviderAbsentErr(kind CapabilityKind) *ProviderAbsentErr {
	return &ProviderAbsentErr{
		domainErr: domainErr{message: fmt.Sprintf("no %s provider is available on this host", kind)},
		Kind:      kind,
	}
}

// UnavailableErr means the provider exists but rejects the configuration.
// A different configuration may succeed.
type UnavailableErr struct {
	domainErr
	Kind CapabilityKind
}

// NewUnavailableErr creates a new UnavailableErr for the given kind.
func NewUnavailableErr(kind CapabilityKind) *UnavailableErr {
	return &UnavailableErr{
		domainErr: domainErr{message: fmt.Sprintf("%s is not available for this configuration", kind)},
		Kind:      kind,
	}
}

// InvalidConfigErr is a schema violation detected before any provider call.
type InvalidConfigErr struct {
	domainErr
	Field string
}

// NewInvalidConfigErr creates a new InvalidConfigErr naming the offending field.
func NewInvalidConfigErr(field, reason string) *InvalidConfigErr {
	return &InvalidConfigErr{
		domainErr: domainErr{message: fmt.Sprintf("invalid config field %q: %s", field, reason)},
		Field:     field,
	}
}

// SessionNotReadyErr is returned when a session is invoked outside the ready state.
type SessionNotReadyErr struct {
	domainErr
	State SessionState
}

// NewSessionNotReadyErr creates a new SessionNotReadyErr for the current state.
func NewSessionNotReadyErr(state SessionState) *SessionNotReadyErr {
	return &SessionNotReadyErr{
		domainErr: domainErr{message: fmt.Sprintf("session is not ready (state: %s)", state)},
		State:     state,
	}
}

// SessionBusyErr is returned when another invocation is already in flight on the session.
type SessionBusyErr struct {
	domainErr
}

// NewSessionBusyErr creates a new SessionBusyErr.
func NewSessionBusyErr() *SessionBusyErr {
	return &SessionBusyErr{
		domainErr: domainErr{message: "session is busy with another invocation"},
	}
}

// SessionReleasedErr is returned when a session is used after it was released.
type SessionReleasedErr struct {
	domainErr
}

// NewSessionReleasedErr creates a new SessionReleasedErr.
func NewSessionReleasedErr() *SessionReleasedErr {
	return &SessionReleasedErr{
		domainErr: domainErr{message: "session has been released"},
	}
}

// UnsupportedLanguagePairErr is a translation policy rejection.
type UnsupportedLanguagePairErr struct {
	domainErr
	Source string
	Target string
}

// NewUnsupportedLanguagePairErr creates a new UnsupportedLanguagePairErr.
func NewUnsupportedLanguagePairErr(source, target string) *UnsupportedLanguagePairErr {
	return &UnsupportedLanguagePairErr{
		domainErr: domainErr{message: fmt.Sprintf("translation from %q to %q is not supported", source, target)},
		Source:    source,
		Target:    target,
	}
}

// ProviderInvocationFailedErr carries an opaque failure of the underlying provider.
type ProviderInvocationFailedErr struct {
	domainErr
	Name    string
	Message string
	cause   error
}

// NewProviderInvocationFailedErr creates a new ProviderInvocationFailedErr.
func NewProviderInvocationFailedErr(name, message string, cause error) *ProviderInvocationFailedErr {
	return &ProviderInvocationFailedErr{
		domainErr: domainErr{message: fmt.Sprintf("provider invocation failed: %s: %s", name, message)},
		Name:      name,
		Message:   message,
		cause:     cause,
	}
}

// Unwrap returns the provider error that caused the failure.
func (e *ProviderInvocationFailedErr) Unwrap() error {
	return e.cause
}

// ErrorName returns the taxonomy name of a domain error, or "Internal" for
// anything else.
func ErrorName(err error) string {
	var (
		providerAbsent *ProviderAbsentErr
		unavailable    *UnavailableErr
		invalidConfig  *InvalidConfigErr
		notReady       *SessionNotReadyErr
		busy           *SessionBusyErr
		released       *SessionReleasedErr
		unsupported    *UnsupportedLanguagePairErr
		failed         *ProviderInvocationFailedErr
		validation     *ValidationErr
		notFound       *NotFoundErr
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &providerAbsent):
		return "ProviderAbsent"
	case errors.As(err, &unavailable):
		return "Unavailable"
	case errors.As(err, &invalidConfig):
		return "InvalidConfig"
	case errors.As(err, &notReady):
		return "SessionNotReady"
	case errors.As(err, &busy):
		return "SessionBusy"
	case errors.As(err, &released):
		return "SessionReleased"
	case errors.As(err, &unsupported):
		return "UnsupportedLanguagePair"
	case errors.As(err, &failed):
		return "ProviderInvocationFailed"
	case errors.As(err, &validation):
		return "Validation"
	case errors.As(err, &notFound):
		return "NotFound"
	default:
		return "Internal"
	}
}
