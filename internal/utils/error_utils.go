package utils

import (
	"fmt"
	"strings"

	"hawaiielite-properties/internal/errors"
	"hawaiielite-properties/pkg/logger"
)

// LogAndMapError maps err to an AppError and logs the technical details as
// key=value pairs. params are alternating keys and values.
func LogAndMapError(err error, operation string, params ...interface{}) *errors.AppError {
	appErr := errors.MapError(err)
	if appErr == nil {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "operation=%s code=%s status=%d", operation, appErr.Code, appErr.HTTPStatus)
	for i := 0; i+1 < len(params); i += 2 {
		fmt.Fprintf(&b, " %v=%v", params[i], params[i+1])
	}
	fmt.Fprintf(&b, " technical_error=%q", appErr.TechnicalMessage)

	if appErr.HTTPStatus >= 500 {
		logger.GlobalLogger.Error(b.String())
	} else {
		logger.GlobalLogger.Println(b.String())
	}
	return appErr
}

// WrapError adds context to an error while preserving the original.
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(message, args...), err)
}
