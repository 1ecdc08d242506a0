package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEventNotFound is returned when an event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrNotFoundOrUnauthorized is returned when a resource is missing or the
	// caller is not its owner. The two cases are deliberately conflated so a
	// response never reveals whether the resource exists.
	ErrNotFoundOrUnauthorized = errors.New("not found or unauthorized")
	// ErrAlreadyEnrolled is returned when the user already holds an enrollment
	// for the event.
	ErrAlreadyEnrolled = errors.New("user is already enrolled in the event")
	// ErrCapacityExceeded is returned when the event has no remaining capacity.
	ErrCapacityExceeded = errors.New("event capacity exceeded")
	// ErrEventAlreadyOccurred is returned when the event's start date has passed.
	ErrEventAlreadyOccurred = errors.New("event has already occurred")
	// ErrEnrollmentDisabled is returned when the event is not accepting enrollments.
	ErrEnrollmentDisabled = errors.New("event is not enabled for enrollment")
	// ErrNotEnrolled is returned when no enrollment exists for the (event, user) pair.
	ErrNotEnrolled = errors.New("user is not enrolled in the event")
	// ErrLocationNotFound is returned when an event location does not exist.
	ErrLocationNotFound = errors.New("event location not found")
	// ErrCategoryNotFound is returned when an event category does not exist.
	ErrCategoryNotFound = errors.New("event category not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the username is already registered.
	ErrUserAlreadyExists = errors.New("username is already registered")
	// ErrInvalidCredentials is returned on a failed login. It never states
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports an input that fails a stated constraint. It is
// always recoverable by the caller correcting the input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse to
// an opaque 500 so storage details never reach the caller.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return NewHTTPError(http.StatusBadRequest, verr.Error(), "VALIDATION_FAILED")
	}
	switch {
	case errors.Is(err, ErrEventNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case errors.Is(err, ErrNotFoundOrUnauthorized):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrAlreadyEnrolled):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_ENROLLED")
	case errors.Is(err, ErrCapacityExceeded):
		return NewHTTPError(http.StatusConflict, err.Error(), "CAPACITY_EXCEEDED")
	case errors.Is(err, ErrEventAlreadyOccurred):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EVENT_ALREADY_OCCURRED")
	case errors.Is(err, ErrEnrollmentDisabled):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ENROLLMENT_DISABLED")
	case errors.Is(err, ErrNotEnrolled):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NOT_ENROLLED")
	case errors.Is(err, ErrLocationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LOCATION_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
