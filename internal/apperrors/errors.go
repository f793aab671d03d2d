package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error so callers can branch on it without
// string matching. Expected business failures and infrastructure failures
// carry distinct kinds.
type Kind string

const (
	KindValidation          Kind = "VALIDATION_ERROR"
	KindInvalidCredentials  Kind = "INVALID_CREDENTIALS"
	KindAccountInactive     Kind = "ACCOUNT_INACTIVE"
	KindTooManyAttempts     Kind = "TOO_MANY_ATTEMPTS"
	KindWeakPassword        Kind = "WEAK_PASSWORD"
	KindIdentifierTaken     Kind = "IDENTIFIER_TAKEN"
	KindTokenInvalid        Kind = "TOKEN_INVALID"
	KindTokenExpired        Kind = "TOKEN_EXPIRED"
	KindRefreshTokenExpired Kind = "REFRESH_TOKEN_EXPIRED"
	KindUserNotFound        Kind = "USER_NOT_FOUND"
	KindNotFound            Kind = "NOT_FOUND"
	KindInsufficientStock   Kind = "INSUFFICIENT_STOCK"
	KindForbidden           Kind = "FORBIDDEN"
	KindInvalidStatus       Kind = "INVALID_STATUS"
	KindOrderHasItems       Kind = "ORDER_HAS_ITEMS"
	KindInternal            Kind = "INTERNAL_ERROR"
)

// Error is a classified application error carrying a kind and a
// caller-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a classified error wrapping an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Internal wraps an unclassified infrastructure failure.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindInternal when err is not
// classified.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// MessageOf returns the caller-facing message of err. Internal failures
// get a generic message so infrastructure details never leak to clients.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "an internal error occurred"
}

// HTTPStatus maps an error kind to its HTTP status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindWeakPassword, KindInsufficientStock, KindInvalidStatus, KindOrderHasItems:
		return http.StatusBadRequest
	case KindInvalidCredentials, KindTokenInvalid, KindTokenExpired, KindRefreshTokenExpired:
		return http.StatusUnauthorized
	case KindAccountInactive, KindForbidden:
		return http.StatusForbidden
	case KindUserNotFound, KindNotFound:
		return http.StatusNotFound
	case KindIdentifierTaken:
		return http.StatusConflict
	case KindTooManyAttempts:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
