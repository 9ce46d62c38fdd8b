package errors

import (
	"context"
	stderrors "errors"
	"net/http"
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
		validationErr *ValidationError
		notFoundErr   *NotFoundError
	)
	switch {
	case stderrors.As(err, &validationErr):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      validationErr.Error(),
			Code:             ErrCodeInvalidInput,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	case stderrors.Is(err, ErrInvalidInput):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInvalidParameters,
			Code:             ErrCodeInvalidInput,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	case stderrors.As(err, &notFoundErr) && notFoundErr.Resource == "property":
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgPropertyNotFound,
			Code:             ErrCodePropertyNotFound,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	case stderrors.Is(err, ErrNotFound):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgNotFound,
			Code:             ErrCodeNotFound,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	case stderrors.Is(err, ErrUnavailable),
		stderrors.Is(err, context.DeadlineExceeded):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgServiceUnavailable,
			Code:             ErrCodeServiceUnavailable,
			HTTPStatus:       http.StatusServiceUnavailable,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             ErrCodeInternal,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
