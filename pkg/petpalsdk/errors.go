package petpalsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/petpalhq/petpal/pkg/httpx"
)

// Stable error classification codes carried in every failure body.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeUsernameTaken      = "username_taken"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
	ErrorCodeRateLimited        = "rate_limit_exceeded"
)

// ErrSessionExpired is returned by Session methods once the stored token has
// been rejected or has outlived its expiry window. Tokens cannot be
// refreshed or revoked; the only recovery is a fresh login.
var ErrSessionExpired = errors.New("petpalsdk: session expired, log in again")

// APIError is the structured error body every PetPal service returns.
// It implements the error interface and is used both by the servers
// (to write HTTP responses) and by the SDK (to represent failures).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the stable error classification (e.g. "not_found")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

var (
	// ErrInvalidRequest is returned when required input is missing or malformed.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required fields",
	}

	// ErrUsernameTaken is returned when the requested username already exists.
	ErrUsernameTaken = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeUsernameTaken,
		Description: "username is already taken",
	}

	// ErrInvalidCredentials is returned on login failure. The description is
	// identical whether the username is unknown or the password is wrong.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid username or password",
	}

	// ErrInvalidToken is returned when the bearer token is missing, invalid
	// or expired.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token is missing, invalid or expired",
	}

	// ErrNotFound is returned when a record does not exist. A record owned
	// by someone else produces exactly the same error so existence is never
	// leaked across accounts.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "record not found",
	}

	// ErrServerError is returned for unexpected storage or internal faults.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewAPIError creates an APIError with a custom description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

// IsNotFound reports whether err is a not_found APIError.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == ErrorCodeNotFound
}

// IsUnauthorized reports whether err is any 401 APIError.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
