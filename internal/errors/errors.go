package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectIDExists is returned when a project ID is already taken.
	ErrProjectIDExists = errors.New("project ID already exists")
	// ErrImageNotFound is returned when an image is not found.
	ErrImageNotFound = errors.New("image not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrHomepageNotFound is returned when no homepage content exists yet.
	ErrHomepageNotFound = errors.New("no homepage content found")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled is returned when the account is inactive.
	ErrAccountDisabled = errors.New("account is disabled")
	// ErrAdminExists is returned when the bootstrap admin already exists.
	ErrAdminExists = errors.New("admin user already exists")
	// ErrMissingCredentials is returned when username or password is absent.
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrPasswordTooShort is returned when a password fails the length check.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	// ErrWrongPassword is returned when the current password does not match.
	ErrWrongPassword = errors.New("current password is incorrect")
	// ErrNoFiles is returned when an upload carries no usable files.
	ErrNoFiles = errors.New("no files selected")
)

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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrProjectNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROJECT_NOT_FOUND")
	case ErrImageNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "IMAGE_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrHomepageNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "HOMEPAGE_NOT_FOUND")
	case ErrProjectIDExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "PROJECT_ID_EXISTS")
	case ErrAdminExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "ADMIN_EXISTS")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrAccountDisabled:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "ACCOUNT_DISABLED")
	case ErrWrongPassword:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "WRONG_PASSWORD")
	case ErrMissingCredentials:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case ErrPasswordTooShort:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_TOO_SHORT")
	case ErrNoFiles:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_FILES")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
