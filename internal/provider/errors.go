package provider

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// -- Sentinels --

var (
	ErrContentBlocked     = errors.Base("content blocked by safety filters")
	ErrRateLimit          = errors.Base("rate limit exceeded")
	ErrAuthentication     = errors.Base("authentication failed")
	ErrServiceUnavailable = errors.Base("service unavailable")
	ErrInvalidRequest     = errors.Base("invalid request")
	ErrEmptyResponse      = errors.Base("empty response")
	ErrMalformedResponse  = errors.Base("malformed response")
	ErrNetwork            = errors.Base("network error")
)

// ErrorCode represents a provider error code.
type ErrorCode string

const (
	ErrorCodeContentBlocked ErrorCode = "content_blocked"
	ErrorCodeRateLimit      ErrorCode = "rate_limit"
	ErrorCodeAuth           ErrorCode = "authentication_failed"
	ErrorCodeUnavailable    ErrorCode = "service_unavailable"
	ErrorCodeInvalidRequest ErrorCode = "invalid_request"
	ErrorCodeEmptyResponse  ErrorCode = "empty_response"
	ErrorCodeMalformed      ErrorCode = "malformed_response"
	ErrorCodeNetwork        ErrorCode = "network_error"
)

var codeSentinels = map[ErrorCode]error{
	ErrorCodeContentBlocked: ErrContentBlocked,
	ErrorCodeRateLimit:      ErrRateLimit,
	ErrorCodeAuth:           ErrAuthentication,
	ErrorCodeUnavailable:    ErrServiceUnavailable,
	ErrorCodeInvalidRequest: ErrInvalidRequest,
	ErrorCodeEmptyResponse:  ErrEmptyResponse,
	ErrorCodeMalformed:      ErrMalformedResponse,
	ErrorCodeNetwork:        ErrNetwork,
}

// -- Errors --

// ProviderError wraps backend failures with a stable code.
type ProviderError struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Retryable  bool
}

func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// Is matches the sentinel belonging to the error's code.
func (e *ProviderError) Is(target error) bool {
	sentinel, ok := codeSentinels[e.Code]
	return ok && sentinel == target
}

// IsRetryable returns true if the error is retryable.
func IsRetryable(err error) bool {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	return false
}
