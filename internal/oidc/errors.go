package oidc

import (
	"errors"
	"fmt"
)

var (
	ErrMissingClientID      = errors.New("client id is required")
	ErrMissingClientSecret  = errors.New("client secret is required")
	ErrMissingRedirectURI   = errors.New("redirect uri is required")
	ErrUnknownEnvironment   = errors.New("unknown environment")
	ErrPKCEVerifierMismatch = errors.New("invalid code_verifier")
)

// APIErrorCode tags every normalized provider failure.
const APIErrorCode = "API_ERROR"

// APIError is the single error kind surfaced for transport failures and
// non-2xx provider responses. StatusCode is zero when no response arrived.
type APIError struct {
	Message    string
	Code       string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func newAPIError(message string, statusCode int, cause error) *APIError {
	return &APIError{
		Message:    message,
		Code:       APIErrorCode,
		StatusCode: statusCode,
		Err:        cause,
	}
}
