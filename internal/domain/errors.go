package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnknownChartDuration is returned when a chart duration has no storage bucket
	ErrUnknownChartDuration = errors.New("unknown market chart duration")

	// ErrEmptyPayload is returned when an upstream API answers with an empty body or empty series
	ErrEmptyPayload = errors.New("empty upstream payload")

	// ErrMalformedPayload is returned when an upstream payload cannot be decoded
	ErrMalformedPayload = errors.New("malformed upstream payload")

	// ErrJobAlreadyRunning is returned when another run of the same job holds the job lock
	ErrJobAlreadyRunning = errors.New("job already running")

	// ErrUnknownJob is returned when a job name is not registered
	ErrUnknownJob = errors.New("unknown job")

	// ErrCoinNotFound is returned when a coin is not tracked
	ErrCoinNotFound = errors.New("coin not found")

	// ErrTransactionNotFound is returned when a user coin transaction does not exist
	ErrTransactionNotFound = errors.New("transaction not found")
)

// UpstreamError is returned by the HTTP adapter when an upstream API answers with a non-2xx status
type UpstreamError struct {
	Provider   string
	StatusCode int
	URL        string
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s: unexpected status code %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("unexpected status code %d", e.StatusCode)
}

// RateLimited reports whether the upstream rejected the request because of its quota
func (e *UpstreamError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// ServerError reports whether the upstream failed with a 5xx status
func (e *UpstreamError) ServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// IsCoolDownError reports whether err carries an upstream rate-limit or server-error status.
// Callers respond to it by pausing requests to the provider.
func IsCoolDownError(err error) bool {
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		return false
	}
	return upstreamErr.RateLimited() || upstreamErr.ServerError()
}

// IsDataError reports whether err is an empty or malformed upstream payload
func IsDataError(err error) bool {
	return errors.Is(err, ErrEmptyPayload) || errors.Is(err, ErrMalformedPayload)
}
