package sheet

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates the access token was rejected.
	ErrUnauthorized = errors.New("sheet api rejected credentials")

	// ErrNotFound indicates the sheet does not exist or is not shared with the token owner.
	ErrNotFound = errors.New("sheet not found")

	// ErrUnavailable indicates the sheet api is unreachable.
	ErrUnavailable = errors.New("sheet api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("sheet api request timed out")

	// ErrMalformedResponse indicates a success response whose body could not be decoded.
	ErrMalformedResponse = errors.New("sheet api returned a malformed response")

	// ErrRetryExhausted indicates all read attempts failed.
	ErrRetryExhausted = errors.New("sheet api retry attempts exhausted")
)

// APIError is a non-success response from the sheet api.
type APIError struct {
	Status    int
	ErrorCode int
	Message   string
	RefID     string
}

func (e *APIError) Error() string {
	if e.ErrorCode != 0 {
		return fmt.Sprintf("sheet api returned status %d (error %d): %s", e.Status, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("sheet api returned status %d: %s", e.Status, e.Message)
}

// Unwrap maps auth and lookup failures onto the package sentinels.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case 401, 403:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	default:
		return nil
	}
}

// retryable reports whether a read may be attempted again after e.
func (e *APIError) retryable() bool {
	return e.Status == 429 || e.Status >= 500
}
