// errors.go - Structured error handling for API responses
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/internboard/backend/internal/dataset"
	"github.com/internboard/backend/internal/export"
	"github.com/internboard/backend/internal/session"
	"github.com/internboard/backend/internal/status"
)

// APIError represents a structured API error response
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewValidationError creates a 400 validation error for a specific field
func NewValidationError(field string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: fmt.Sprintf("validation failed for field: %s", field),
	}
}

// NewNotFoundError creates a 404 Not Found error
func NewNotFoundError(resource string, id string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// NewConflictError creates a 409 Conflict error
func NewConflictError(message string) *APIError {
	return &APIError{
		Status:  http.StatusConflict,
		Code:    "CONFLICT",
		Message: message,
	}
}

// NewInternalError creates a 500 Internal Server Error
func NewInternalError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// MapCoreError converts errors from the core packages into APIErrors so
// every failed operation reaches the client as a recoverable, user-facing
// message instead of ending the session.
func MapCoreError(err error) *APIError {
	var importErr *dataset.ImportError
	switch {
	case errors.As(err, &importErr):
		return &APIError{
			Status:  http.StatusBadRequest,
			Code:    "IMPORT_ERROR",
			Message: importErr.Error(),
		}
	case errors.Is(err, session.ErrNoDataset):
		return &APIError{
			Status:  http.StatusConflict,
			Code:    "NO_DATASET",
			Message: "no applications file is loaded",
		}
	case errors.Is(err, export.ErrUnknownCandidate):
		return &APIError{
			Status:  http.StatusNotFound,
			Code:    "UNKNOWN_CANDIDATE",
			Message: err.Error(),
		}
	case errors.Is(err, status.ErrEmptyRemark):
		return &APIError{
			Status:  http.StatusBadRequest,
			Code:    "INVALID_REMARK",
			Message: "remark text must not be empty",
		}
	case errors.Is(err, status.ErrRatingRange):
		return &APIError{
			Status:  http.StatusBadRequest,
			Code:    "INVALID_RATING",
			Message: err.Error(),
		}
	case errors.Is(err, status.ErrInvalidContactStatus):
		return &APIError{
			Status:  http.StatusBadRequest,
			Code:    "INVALID_CONTACT_STATUS",
			Message: err.Error(),
		}
	default:
		return NewInternalError("operation failed", err)
	}
}

// ErrorHandler middleware for Echo
// Usage: e.HTTPErrorHandler = api.ErrorHandler
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *APIError

	switch e := err.(type) {
	case *APIError:
		apiErr = e
	case *echo.HTTPError:
		apiErr = &APIError{
			Status:  e.Code,
			Code:    "HTTP_ERROR",
			Message: fmt.Sprintf("%v", e.Message),
		}
	default:
		apiErr = MapCoreError(err)
	}

	if !c.Response().Committed {
		c.JSON(apiErr.Status, apiErr)
	}
}

// RespondWithError is a helper to respond with an APIError
func RespondWithError(c echo.Context, err *APIError) error {
	return c.JSON(err.Status, err)
}
