// Package apierrors defines the user-facing error taxonomy. Services map
// component failures onto these; handlers translate them to HTTP responses.
// Anything that is not an APIError surfaces as a generic internal error, so
// no raw internal detail reaches a caller.
package apierrors

import (
	"fmt"
	"net/http"

	"github.com/dayboard/dayboard-server/internal/model"
)

// APIError is an error carrying the HTTP status it should produce.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, format string, args ...any) *APIError {
	return &APIError{Status: status, Message: fmt.Sprintf(format, args...)}
}

// NewErrInvalidBody reports a request body that could not be decoded.
func NewErrInvalidBody() *APIError {
	return newAPIError(http.StatusBadRequest, "invalid request body")
}

// NewErrInvalidEmail reports a malformed email address.
func NewErrInvalidEmail(email string) *APIError {
	return newAPIError(http.StatusBadRequest, "%s is not a valid email address", email)
}

// NewErrEmailTaken reports a signup attempt for an already registered email.
func NewErrEmailTaken(email string) *APIError {
	return newAPIError(http.StatusConflict, "email %s is already taken", email)
}

// NewErrCodeAlreadySent reports a start request while another verification
// is still pending for the same email.
func NewErrCodeAlreadySent(email string) *APIError {
	return newAPIError(http.StatusConflict, "a verification code was already sent to %s", email)
}

// NewErrUserNotFound reports an operation against an unknown user.
func NewErrUserNotFound(email string) *APIError {
	return newAPIError(http.StatusNotFound, "user with email %s not found", email)
}

// NewErrVerificationNotFound reports a verify attempt with no active
// request, covering both never-sent and expired codes.
func NewErrVerificationNotFound(email string) *APIError {
	return newAPIError(http.StatusNotFound, "no active verification request for %s", email)
}

// NewErrKindMismatch reports a code submitted to the wrong flow. It names
// both kinds so a client can tell "wrong operation" from "no code sent".
func NewErrKindMismatch(got, want model.VerificationKind) *APIError {
	return newAPIError(http.StatusBadRequest, "verification code was issued for %s, not %s", got, want)
}

// NewErrInvalidCode reports a code that does not match the stored hash.
func NewErrInvalidCode() *APIError {
	return newAPIError(http.StatusBadRequest, "incorrect verification code")
}

// NewErrMissingToken reports a request without an Authorization header.
func NewErrMissingToken() *APIError {
	return newAPIError(http.StatusUnauthorized, "no token provided")
}

// NewErrInvalidToken reports a token that failed verification. The message
// deliberately does not say which check failed.
func NewErrInvalidToken() *APIError {
	return newAPIError(http.StatusUnauthorized, "invalid or expired token")
}

// NewErrDeliveryFailed reports that the verification email could not be
// sent. The pending request is left in place.
func NewErrDeliveryFailed(email string) *APIError {
	return newAPIError(http.StatusBadGateway, "failed to send verification code to %s", email)
}

// NewErrTaskNotFound reports an operation against a task the caller does
// not own or that does not exist.
func NewErrTaskNotFound(id string) *APIError {
	return newAPIError(http.StatusNotFound, "task %s not found", id)
}

// NewErrInternal wraps an unexpected failure without exposing its detail.
func NewErrInternal() *APIError {
	return newAPIError(http.StatusInternalServerError, "internal server error")
}
