package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation     ErrKind = "validation"     // 400
	KindAuth           ErrKind = "auth"           // 401
	KindForbidden      ErrKind = "forbidden"      // 403
	KindNotFound       ErrKind = "not_found"      // 404
	KindConflict       ErrKind = "conflict"       // 409
	KindTooLarge       ErrKind = "too_large"      // 413
	KindRateLimited    ErrKind = "rate_limited"   // 429
	KindInfrastructure ErrKind = "infrastructure" // 503
	KindInternal       ErrKind = "internal"       // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (avoid leaking sensitive details)
// - Meta: optional details (field, reason, etc.)
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Meta    map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func WithMeta(err *Error, meta map[string]string) *Error {
	err.Meta = meta
	return err
}

// Is reports whether err carries the given stable code.
func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "invalid JSON body", cause)
}

func ErrMissingField(field string) *Error {
	return WithMeta(New(KindValidation, "missing_field", "missing required field"), map[string]string{
		"field": field,
	})
}

func ErrInvalidField(field, reason string) *Error {
	return WithMeta(New(KindValidation, "invalid_field", "invalid field"), map[string]string{
		"field":  field,
		"reason": reason,
	})
}

func ErrPayloadTooLarge(limit int64) *Error {
	return WithMeta(New(KindTooLarge, "payload_too_large", "request body too large"), map[string]string{
		"limit_bytes": fmt.Sprintf("%d", limit),
	})
}

// ----------------------
// Account flow errors
// ----------------------

// Login rejections carry distinct codes for email-not-found vs bad password.
// The original frontend renders the distinct messages; the enumeration
// trade-off is accepted and documented, not silently changed.
func ErrEmailNotFound() *Error {
	return New(KindAuth, "email_not_found", "email not found")
}

func ErrIncorrectPassword() *Error {
	return New(KindAuth, "incorrect_password", "incorrect password")
}

func ErrNotVerified() *Error {
	return New(KindForbidden, "not_verified", "account is not verified")
}

func ErrAccountNotFound() *Error {
	return New(KindNotFound, "account_not_found", "account not found")
}

func ErrCodeExpired() *Error {
	return New(KindAuth, "code_expired", "verification code has expired")
}

func ErrCodeMismatch() *Error {
	return New(KindAuth, "code_mismatch", "verification code does not match")
}

func ErrAlreadyVerified() *Error {
	return New(KindConflict, "already_verified", "account is already verified")
}

// ----------------------
// Conflict (409)
// ----------------------

func ErrDuplicateEmail() *Error {
	return New(KindConflict, "duplicate_email", "email already registered")
}

func ErrDuplicateAccountID() *Error {
	return New(KindConflict, "duplicate_account_id", "account ID already registered")
}

// ----------------------
// Event errors
// ----------------------

func ErrEventNotFound() *Error {
	return New(KindNotFound, "event_not_found", "event not found")
}

func ErrForbidden() *Error {
	return New(KindForbidden, "forbidden", "forbidden")
}

// ----------------------
// Rate limit (429)
// ----------------------

func ErrRateLimited(scope string) *Error {
	return WithMeta(New(KindRateLimited, "rate_limited", "too many requests"), map[string]string{
		"scope": scope,
	})
}

// ----------------------
// Infrastructure / internal (5xx)
// ----------------------

func ErrDBUnavailable(cause error) *Error {
	return Wrap(KindInfrastructure, "db_unavailable", "database unavailable", cause)
}

// Notifier failure is always non-fatal to the operation that triggered it;
// this error is logged, never returned to the end user as a request failure.
func ErrNotifierUnavailable(cause error) *Error {
	return Wrap(KindInfrastructure, "notifier_unavailable", "notification delivery unavailable", cause)
}

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "password hashing failed", cause)
}

func ErrRandomFailed(cause error) *Error {
	return Wrap(KindInternal, "random_failed", "random generation failed", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "internal error", cause)
}
