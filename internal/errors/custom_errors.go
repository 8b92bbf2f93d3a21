package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Common error codes
const (
	ErrCodePropertyNotFound       = "PROPERTY_NOT_FOUND"
	ErrCodeServiceUnavailable     = "SERVICE_UNAVAILABLE"
	ErrCodeRateLimited            = "RATE_LIMITED"
	ErrCodeInvalidParameters      = "INVALID_PARAMETERS"
	ErrCodeUpstreamError          = "UPSTREAM_ERROR"
	ErrCodeInvalidUpstreamPayload = "INVALID_UPSTREAM_PAYLOAD"
	ErrCodeExportFailed           = "EXPORT_FAILED"
	ErrCodeListingNotFound        = "LISTING_NOT_FOUND"
	ErrCodeContentNotFound        = "CONTENT_NOT_FOUND"
	ErrCodeUnauthorized           = "UNAUTHORIZED"
	ErrCodeInternal               = "INTERNAL_ERROR"
)

// Sentinel errors returned by services and repositories.
var (
	ErrValidation      = stderrors.New("invalid input")
	ErrListingNotFound = stderrors.New("listing not found")
	ErrForbidden       = stderrors.New("listing belongs to another user")
	ErrContentNotFound = stderrors.New("content not found")
)
