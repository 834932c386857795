package domain

import (
	"errors"
	"strings"
)

var (
	ErrMissingAPIKey       = errors.New("anthropic api key is not configured")
	ErrUpstreamAuth        = errors.New("upstream rejected the api credential")
	ErrUpstreamRateLimited = errors.New("upstream rate limit exceeded")
	ErrUpstreamBadRequest  = errors.New("upstream rejected the document")
	ErrUpstreamFailed      = errors.New("upstream request failed")
	ErrUpstreamTimeout     = errors.New("upstream request timed out")
	ErrTransport           = errors.New("could not reach upstream")
)

// ValidationError carries the full list of reasons a request was rejected.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "invalid extraction request: " + strings.Join(e.Reasons, "; ")
}

// UpstreamError wraps a classified upstream failure with the detail message
// extracted from the upstream error body. Detail is always empty for
// credential failures so it cannot leak into a caller-facing response.
type UpstreamError struct {
	Kind   error
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Detail
}

func (e *UpstreamError) Unwrap() error {
	return e.Kind
}
