package utils

import (
	"context"
	"fmt"
	"net/http"

	"realestate-listings/internal/errors"
	"realestate-listings/pkg/logger"
)

// LogAndMapError logs technical details and returns a user-friendly AppError.
// Client errors are logged at debug level, everything else as an error.
func LogAndMapError(ctx context.Context, err error, operation string) *errors.AppError {
	appErr := errors.MapError(err)
	if appErr == nil {
		return nil
	}

	log := logger.Ctx(ctx)
	event := log.Error()
	if appErr.HTTPStatus < http.StatusInternalServerError {
		event = log.Debug()
	}
	event.
		Str(logger.FieldOperation, operation).
		Str("code", appErr.Code).
		Int(logger.FieldStatus, appErr.HTTPStatus).
		Str("technical_error", appErr.TechnicalMessage).
		Msg("request failed")

	return appErr
}

// WrapError adds context to an error while preserving the original.
func WrapError(err error, message string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(message, args...), err)
}
