package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrMissingAPIKey = errors.New("gemini API key is missing")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrRateLimited   = errors.New("rate limited")
	ErrBadRequest    = errors.New("bad request")
	ErrServer        = errors.New("server error")
	ErrNetwork       = errors.New("network error")
	ErrDecode        = errors.New("decode error")
)

// APIError carries the full context of a failed Gemini call.
type APIError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gemini: %s (status=%d, code=%s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("gemini: %s", e.Message)
}

// Unwrap returns the classification sentinel for error chaining.
func (e *APIError) Unwrap() error {
	return e.Err
}

// normalizeError converts an HTTP error response into an APIError with the
// appropriate sentinel.
func normalizeError(status int, body []byte) error {
	var errResp errorResponse
	_ = json.Unmarshal(body, &errResp)

	message := errResp.Error.Message
	if message == "" {
		message = http.StatusText(status)
	}

	code := errResp.Error.Status
	if code == "" {
		code = "unknown_error"
	}

	return &APIError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     sentinelForStatus(status),
	}
}

func sentinelForStatus(status int) error {
	switch {
	case status == http.StatusBadRequest || status == http.StatusNotFound:
		return ErrBadRequest
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return ErrServer
	}
}

// newNetworkError wraps transport failures.
func newNetworkError(err error) error {
	return &APIError{Message: err.Error(), Err: ErrNetwork}
}

// newDecodeError wraps JSON encode/decode failures.
func newDecodeError(err error) error {
	return &APIError{Message: err.Error(), Err: ErrDecode}
}
