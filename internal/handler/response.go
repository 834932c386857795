package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"remitscan/internal/domain"
	"remitscan/internal/middleware"
)

// APIResponse is the envelope for all error responses. Successful
// extractions bypass it: the upstream JSON body is passed through verbatim.
type APIResponse struct {
	Success   bool      `json:"success"`
	Error     *APIError `json:"error,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
}

// APIError holds error details in the response. Details carries the full
// validation reason list when the request was rejected.
type APIError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string, details []string) {
	c.JSON(status, APIResponse{
		Success:   false,
		Error:     &APIError{Code: code, Message: msg, Details: details},
		RequestID: middleware.GetRequestID(c),
	})
}

// MapRelayError translates relay errors to HTTP status codes, error codes,
// and caller-facing messages. Credential failures never carry upstream
// detail; everything else forwards what upstream said.
func MapRelayError(err error) (status int, code, msg string, details []string) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, "INVALID_REQUEST", "request failed validation", vErr.Reasons
	}

	var uErr *domain.UpstreamError
	detail := ""
	if errors.As(err, &uErr) {
		detail = uErr.Detail
	}

	switch {
	case errors.Is(err, domain.ErrMissingAPIKey):
		return http.StatusInternalServerError, "NOT_CONFIGURED",
			"extraction service is not configured: missing API credential", nil
	case errors.Is(err, domain.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT",
			"extraction timed out; retry with a smaller file, or an image instead of a multi-page PDF", nil
	case errors.Is(err, domain.ErrUpstreamAuth):
		return http.StatusInternalServerError, "INVALID_API_KEY",
			"the configured API credential was rejected upstream", nil
	case errors.Is(err, domain.ErrUpstreamRateLimited):
		return http.StatusTooManyRequests, "RATE_LIMITED",
			"upstream rate limit exceeded; retry later", nil
	case errors.Is(err, domain.ErrUpstreamBadRequest):
		return http.StatusBadRequest, "UPSTREAM_REJECTED",
			withDetail("upstream could not process the document", detail), nil
	case errors.Is(err, domain.ErrUpstreamFailed):
		return http.StatusInternalServerError, "UPSTREAM_ERROR",
			withDetail("upstream request failed", detail), nil
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred", nil
	}
}

func withDetail(msg, detail string) string {
	if detail == "" {
		return msg
	}
	return msg + ": " + detail
}

// HandleError maps a relay error and sends the appropriate error response.
// Server-side causes are logged with the correlation id; stack traces and
// raw errors stay out of the response body.
func HandleError(c *gin.Context, err error) {
	status, code, msg, details := MapRelayError(err)
	if status >= 500 {
		log.Error().
			Str("request_id", middleware.GetRequestID(c)).
			Err(err).
			Msg("extraction failed")
	}
	RespondError(c, status, code, msg, details)
}
