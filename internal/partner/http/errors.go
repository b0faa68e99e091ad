package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kidventure/partnerhub/internal/partner/service"
	"github.com/kidventure/partnerhub/pkg/partnersdk"
	"github.com/kidventure/partnerhub/pkg/slogx"
)

// writeError maps a service error to its status and error code. The
// description is always the user facing message of the error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())
	msg := service.Message(err)

	var mfa *service.MFARequiredError
	if errors.As(err, &mfa) {
		(&partnersdk.MFARequiredError{
			MFAToken:  mfa.MFAToken,
			ExpiresIn: int(mfa.ExpiresIn.Seconds()),
		}).WriteError(w)
		return
	}

	var apiErr *partnersdk.APIError
	switch {
	case errors.Is(err, service.ErrExpired):
		apiErr = partnersdk.NewAPIError(http.StatusNotFound, partnersdk.ErrorCodeExpired, msg)
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrPlatformDisabled):
		apiErr = partnersdk.NewAPIError(http.StatusNotFound, partnersdk.ErrorCodeNotFound, msg)
	case errors.Is(err, service.ErrAlreadyClaimed):
		apiErr = partnersdk.NewAPIError(http.StatusConflict, partnersdk.ErrorCodeAlreadyClaimed, msg)
	case errors.Is(err, service.ErrClaimRaceLost):
		apiErr = partnersdk.NewAPIError(http.StatusConflict, partnersdk.ErrorCodeClaimRaceLost, msg)
	case errors.Is(err, service.ErrInvalidToken):
		apiErr = partnersdk.NewAPIError(http.StatusBadRequest, partnersdk.ErrorCodeInvalidToken, msg)
	case errors.Is(err, service.ErrWeakPassword):
		apiErr = partnersdk.NewAPIError(http.StatusBadRequest, partnersdk.ErrorCodeWeakPassword, msg)
	case errors.Is(err, service.ErrPasswordMismatch):
		apiErr = partnersdk.NewAPIError(http.StatusBadRequest, partnersdk.ErrorCodePasswordMismatch, msg)
	case errors.Is(err, service.ErrInvalidRequest):
		apiErr = partnersdk.NewAPIError(http.StatusBadRequest, partnersdk.ErrorCodeInvalidRequest, msg)
	case errors.Is(err, service.ErrForbidden):
		apiErr = partnersdk.NewAPIError(http.StatusForbidden, partnersdk.ErrorCodeForbidden, msg)
	case errors.Is(err, service.ErrPlatformUnauthorized):
		apiErr = partnersdk.NewAPIError(http.StatusUnauthorized, partnersdk.ErrorCodeUnauthorized, "Invalid platform token.")
	case errors.Is(err, service.ErrInvalidCredentials):
		apiErr = partnersdk.NewAPIError(http.StatusUnauthorized, partnersdk.ErrorCodeInvalidGrant, "Invalid email or password.")
	case errors.Is(err, service.ErrTooManyAttempts):
		apiErr = partnersdk.NewAPIError(http.StatusUnauthorized, partnersdk.ErrorCodeInvalidGrant,
			"Too many failed attempts. Please sign in again.")
	case errors.Is(err, service.ErrInvalidRefresh), errors.Is(err, service.ErrInvalidGrant):
		apiErr = partnersdk.ErrInvalidGrant
	case errors.Is(err, service.ErrInvalidTOTPCode):
		apiErr = partnersdk.NewAPIError(http.StatusBadRequest, partnersdk.ErrorCodeInvalidRequest, "The code is not valid.")
	case errors.Is(err, service.ErrMFANotEnrolled),
		errors.Is(err, service.ErrMFANotEnabled),
		errors.Is(err, service.ErrMFAAlreadyEnabled):
		apiErr = partnersdk.NewAPIError(http.StatusConflict, partnersdk.ErrorCodeConflict, err.Error())
	case errors.Is(err, service.ErrTransient):
		log.Error("request failed", slog.Any("error", err))
		w.Header().Set("Retry-After", "5")
		apiErr = partnersdk.NewAPIError(http.StatusServiceUnavailable, partnersdk.ErrorCodeTemporarilyUnavailable, msg)
	case errors.Is(err, service.ErrAccountCreationFailed):
		apiErr = partnersdk.NewAPIError(http.StatusInternalServerError, partnersdk.ErrorCodeAccountCreationFailed, msg)
	default:
		log.Error("unhandled error", slog.Any("error", err))
		apiErr = partnersdk.ErrServerError
	}
	apiErr.WriteError(w)
}

// badRequest answers 400 invalid_request with desc.
func badRequest(w http.ResponseWriter, desc string) {
	partnersdk.NewAPIError(http.StatusBadRequest, partnersdk.ErrorCodeInvalidRequest, desc).WriteError(w)
}
