package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a required registration field is absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username not available")
	// ErrBusinessNameTaken is returned when the business name is already in use.
	ErrBusinessNameTaken = errors.New("business name is already in use")
	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("the passwords do not match")
	// ErrInvalidCredentials is returned on any failed login. Deliberately
	// generic so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid, expired or revoked.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrAccountNotFound is returned when an account lookup fails.
	ErrAccountNotFound = errors.New("account not found")
	// ErrListingNotFound is returned when a listing lookup fails.
	ErrListingNotFound = errors.New("listing not found")
	// ErrNotListingOwner is returned when a caller edits a listing it does not own.
	ErrNotListingOwner = errors.New("listing belongs to another account")
	// ErrRoleNotAllowed is returned when an operation is reserved for the other role.
	ErrRoleNotAllowed = errors.New("operation not allowed for this account role")
	// ErrEmptyOrder is returned when an order is placed with no line items.
	ErrEmptyOrder = errors.New("order has no items")
	// ErrInvalidQuantity is returned when a line item quantity is not positive.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInsufficientStock is returned when a line item exceeds available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrEmptyQuery is returned when a search is submitted without a keyword.
	ErrEmptyQuery = errors.New("missing keyword")
	// ErrNoResults is returned when a search matches no location and no business name.
	ErrNoResults = errors.New("not found")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// (storage failures included) collapses to a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrBusinessNameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "BUSINESS_NAME_TAKEN")
	case errors.Is(err, ErrPasswordMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_MISMATCH")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_REFRESH_TOKEN")
	case errors.Is(err, ErrAccountNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ACCOUNT_NOT_FOUND")
	case errors.Is(err, ErrListingNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LISTING_NOT_FOUND")
	case errors.Is(err, ErrNotListingOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_LISTING_OWNER")
	case errors.Is(err, ErrRoleNotAllowed):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ROLE_NOT_ALLOWED")
	case errors.Is(err, ErrEmptyOrder):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_ORDER")
	case errors.Is(err, ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	case errors.Is(err, ErrInsufficientStock):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "INSUFFICIENT_STOCK")
	case errors.Is(err, ErrEmptyQuery):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_KEYWORD")
	case errors.Is(err, ErrNoResults):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
