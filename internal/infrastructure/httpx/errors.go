package httpx

import (
	"fmt"
	"net/http"
)

// Sentinel failures of the market-data transport. Each carries a fixed,
// user-presentable description.
var (
	ErrInvalidURL      = fmt.Errorf("the request URL is invalid")
	ErrInvalidResponse = fmt.Errorf("no valid response was received from the server")
	ErrBadRequest      = fmt.Errorf("the request was malformed")
	ErrUnauthorized    = fmt.Errorf("the API credential was rejected")
	ErrForbidden       = fmt.Errorf("access to this resource is forbidden")
	ErrNotFound        = fmt.Errorf("the requested resource was not found")
	ErrServerError     = fmt.Errorf("the server failed to process the request")
)

// DecodingError wraps a body that could not be parsed into the expected shape.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("the response could not be decoded: %v", e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// APIError is a logical error embedded in the response envelope. The upstream
// API reports these with HTTP 200, so it is checked even on transport success.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("the API reported error %d", e.Code)
	}
	return fmt.Sprintf("the API reported error %d: %s", e.Code, e.Message)
}

// CustomError covers outcomes outside the fixed taxonomy, such as an
// unexpected HTTP status code.
type CustomError struct {
	Message string
}

func (e *CustomError) Error() string { return e.Message }

func classifyStatus(code int) error {
	switch {
	case code >= 200 && code <= 299:
		return nil
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusForbidden:
		return ErrForbidden
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500 && code <= 599:
		return ErrServerError
	default:
		return &CustomError{Message: fmt.Sprintf("unexpected status code: %d", code)}
	}
}
