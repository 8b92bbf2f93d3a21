package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"net/http"

	"hawaiielite-properties/pkg/upstream"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	var (
		netErr     *upstream.NetworkError
		statusErr  *upstream.StatusError
		payloadErr *upstream.PayloadError
		validErrs  validation.Errors
		pathErr    *fs.PathError
	)

	switch {
	case stderrors.As(err, &netErr):
		return NewAppError(technicalMessage, MsgServiceUnavailable, ErrCodeServiceUnavailable, http.StatusServiceUnavailable, err)
	case stderrors.As(err, &statusErr):
		return mapStatusError(statusErr, err)
	case stderrors.As(err, &payloadErr):
		return NewAppError(technicalMessage, MsgInvalidPayload, ErrCodeInvalidUpstreamPayload, http.StatusBadGateway, err)
	case stderrors.As(err, &validErrs), stderrors.Is(err, ErrValidation):
		return NewAppError(technicalMessage, fmt.Sprintf("%s (%s)", MsgInvalidParameters, technicalMessage), ErrCodeInvalidParameters, http.StatusBadRequest, err)
	case stderrors.As(err, &pathErr):
		return NewAppError(technicalMessage, MsgExportFailed, ErrCodeExportFailed, http.StatusInternalServerError, err)
	case stderrors.Is(err, ErrListingNotFound):
		return NewAppError(technicalMessage, MsgListingNotFound, ErrCodeListingNotFound, http.StatusNotFound, err)
	case stderrors.Is(err, ErrForbidden):
		return NewAppError(technicalMessage, MsgUnauthorized, ErrCodeUnauthorized, http.StatusUnauthorized, err)
	case stderrors.Is(err, ErrContentNotFound):
		return NewAppError(technicalMessage, MsgContentNotFound, ErrCodeContentNotFound, http.StatusNotFound, err)
	default:
		return NewAppError(technicalMessage, MsgInternalError, ErrCodeInternal, http.StatusInternalServerError, err)
	}
}

func mapStatusError(statusErr *upstream.StatusError, err error) *AppError {
	technicalMessage := err.Error()
	switch statusErr.StatusCode {
	case http.StatusNotFound:
		return NewAppError(technicalMessage, MsgPropertyNotFound, ErrCodePropertyNotFound, http.StatusNotFound, err)
	case http.StatusTooManyRequests:
		return NewAppError(technicalMessage, MsgRateLimited, ErrCodeRateLimited, http.StatusTooManyRequests, err)
	default:
		return NewAppError(technicalMessage, MsgUpstreamError, ErrCodeUpstreamError, http.StatusBadGateway, err)
	}
}
