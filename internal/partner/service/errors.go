package service

import (
	"context"
	"errors"
	"fmt"
)

// Error kinds shared by the invitation, claim and check-in flows. Callers
// classify with errors.Is; the HTTP layer maps them to status codes.
var (
	ErrNotFound              = errors.New("not found")
	ErrExpired               = fmt.Errorf("%w: expired", ErrNotFound)
	ErrAlreadyClaimed        = errors.New("invitation already claimed")
	ErrInvalidToken          = errors.New("invalid token")
	ErrWeakPassword          = errors.New("weak password")
	ErrPasswordMismatch      = errors.New("password confirmation does not match")
	ErrClaimRaceLost         = errors.New("invitation claimed concurrently")
	ErrOutOfWindow           = errors.New("outside check-in window")
	ErrDuplicate             = errors.New("already checked in")
	ErrTransient             = errors.New("temporarily unavailable")
	ErrAccountCreationFailed = errors.New("account creation failed")

	ErrInvalidRequest = errors.New("invalid request")
	ErrForbidden      = errors.New("forbidden")
	ErrCanceled       = errors.New("canceled")
)

// Error pairs an error kind with the message shown to the user.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Kind.Error() + ": " + e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

var defaultMessages = []struct {
	kind error
	msg  string
}{
	{ErrExpired, "Invalid or expired invitation link."},
	{ErrNotFound, "The requested resource was not found."},
	{ErrAlreadyClaimed, "This invitation has already been used."},
	{ErrClaimRaceLost, "This invite may have already been used. Please contact support."},
	{ErrInvalidToken, "The token is missing or malformed."},
	{ErrWeakPassword, "Password must be at least 8 characters with uppercase, lowercase, and number."},
	{ErrPasswordMismatch, "Passwords do not match."},
	{ErrAccountCreationFailed, "We could not create your account. Please contact support."},
	{ErrTransient, "The service is temporarily unavailable. Please try again."},
	{ErrForbidden, "You do not have permission to do that."},
}

// Message returns the user facing message for err. Errors built with
// newError carry their own; known kinds fall back to a default.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	for _, m := range defaultMessages {
		if errors.Is(err, m.kind) {
			return m.msg
		}
	}
	return "An unexpected error occurred. Please try again."
}

// transient marks a store or infrastructure failure as retryable.
func transient(err error) error {
	if err == nil || errors.Is(err, ErrTransient) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransient, err)
}

// isServiceError reports whether err already carries one of the error kinds
// of this package.
func isServiceError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return true
	}
	for _, kind := range []error{
		ErrNotFound, ErrAlreadyClaimed, ErrInvalidToken, ErrWeakPassword, ErrPasswordMismatch,
		ErrClaimRaceLost, ErrTransient, ErrAccountCreationFailed, ErrInvalidRequest, ErrForbidden,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
